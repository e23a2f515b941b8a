package config

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestFromContext(t *testing.T) {
	is := is.New(t)
	is.True(FromContext(context.TODO()) == nil)

	cfg := DefaultConfig()
	cfg.Jobs.BootstrapRepair = ""
	got := FromContext(WithContext(context.TODO(), cfg))
	is.True(got == cfg) // the same config, not a copy
	is.Equal(got.Jobs.BootstrapRepair, "")

	// A typed nil is still "no config".
	is.True(FromContext(WithContext(context.TODO(), nil)) == nil)
}

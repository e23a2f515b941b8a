package cron

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/matryer/is"
)

func TestCronLogger(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	clogger := cronLogger{logger}
	clogger.Info("schedule", "job", "bootstrap-repair")
	clogger.Error(errors.New("closed"), "job failed")
	is.Equal(buf.String(), "DEBU schedule job=bootstrap-repair\nERRO job failed err=closed\n")
}

func TestSchedulerJobs(t *testing.T) {
	is := is.New(t)
	s := NewScheduler(context.TODO())

	id, err := s.AddFunc("@every 1h", func() {})
	is.NoErr(err)
	is.Equal(len(s.Entries()), 1)

	_, err = s.AddFunc("every hour", func() {})
	is.True(err != nil) // invalid specs are reported, not scheduled
	is.Equal(len(s.Entries()), 1)

	s.Remove(id)
	is.Equal(len(s.Entries()), 0)
}

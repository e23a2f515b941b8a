package db

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestWrapErrorPassthrough(t *testing.T) {
	for _, e := range []error{
		fmt.Errorf("foo"),
		errors.New("bar"),
		&pq.Error{Code: "22001"},
	} {
		if err := WrapError(e); err != e {
			t.Errorf("WrapError(%v) => %v, want %v", e, err, e)
		}
	}
	if err := WrapError(nil); err != nil {
		t.Errorf("WrapError(nil) => %v, want nil", err)
	}
}

func TestWrapErrorGoodNoRows(t *testing.T) {
	if err := WrapError(fmt.Errorf("get: %w", sql.ErrNoRows)); err != ErrRecordNotFound {
		t.Errorf("WrapError(sql.ErrNoRows) => %v, want %v", err, ErrRecordNotFound)
	}
}

func TestWrapErrorPostgres(t *testing.T) {
	cases := map[string]error{
		"23505": ErrDuplicateKey,
		"42501": ErrPermissionDenied,
	}
	for code, want := range cases {
		if err := WrapError(&pq.Error{Code: pq.ErrorCode(code)}); err != want {
			t.Errorf("WrapError(pq %s) => %v, want %v", code, err, want)
		}
	}
}

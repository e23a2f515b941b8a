package backend

import (
	"errors"
	"fmt"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/proto"
)

// storeError maps a store error onto the proto error families. notFound is
// returned in place of db.ErrRecordNotFound.
func storeError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrRecordNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, db.ErrPermissionDenied):
		return fmt.Errorf("%w: %v", proto.ErrPermissionDenied, err)
	default:
		return err
	}
}

// isNotFound reports whether err means the record does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, db.ErrRecordNotFound) || errors.Is(err, proto.ErrNotFound)
}

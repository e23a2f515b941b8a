package database

import (
	"database/sql"

	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/db/models"
)

// requireAffected turns a statement that touched no rows into
// db.ErrRecordNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return db.WrapError(err)
	}
	if n == 0 {
		return db.ErrRecordNotFound
	}
	return nil
}

func statusStrings(statuses []models.ResponseStatus) []string {
	ss := make([]string, len(statuses))
	for i, s := range statuses {
		ss[i] = string(s)
	}
	return ss
}

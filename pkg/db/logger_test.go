package db

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/matryer/is"
)

func TestCompactQuery(t *testing.T) {
	is := is.New(t)
	q := `
		SELECT uid, display_name
		FROM members
		WHERE team_id = ?
			AND is_active = 1
	`
	is.Equal(compactQuery(q), "SELECT uid, display_name FROM members WHERE team_id = ? AND is_active = 1")
	is.Equal(compactQuery(""), "")
}

func TestTraceQueries(t *testing.T) {
	is := is.New(t)
	d := openTestDB(t)

	var buf bytes.Buffer
	d.logger = log.New(&buf)
	d.logger.SetLevel(log.DebugLevel)

	_, err := d.Exec(`INSERT INTO kv (k, v)
		VALUES (?, ?)`, "team", "Dugouts")
	is.NoErr(err)
	is.True(strings.Contains(buf.String(), "INSERT INTO kv (k, v) VALUES (?, ?)"))
	is.True(strings.Contains(buf.String(), "tx=false"))

	buf.Reset()
	is.NoErr(d.TransactionContext(context.TODO(), func(tx *Tx) error {
		_, err := tx.ExecContext(context.TODO(), "UPDATE kv SET v = ? WHERE k = ?", "Bullpen", "team")
		return err
	}))
	is.True(strings.Contains(buf.String(), "tx=true"))

	// Nothing is traced above debug level.
	buf.Reset()
	d.logger.SetLevel(log.InfoLevel)
	var v string
	is.NoErr(d.Get(&v, "SELECT v FROM kv WHERE k = ?", "team"))
	is.Equal(v, "Bullpen")
	is.Equal(buf.Len(), 0)
}

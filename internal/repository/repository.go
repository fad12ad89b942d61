package repository

import (
	"database/sql"
)

// DBTX abstracts *sqlx.DB and *sqlx.Tx so the adapter can run either
// standalone (serving path) or inside the seed job's transaction.
type DBTX interface {
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
	Exec(query string, args ...interface{}) (sql.Result, error)
	NamedExec(query string, arg interface{}) (sql.Result, error)
	Rebind(query string) string
}

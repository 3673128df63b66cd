package store

import (
	"database/sql"
	"errors"
	"log"
	"runtime"

	"github.com/paverbrasil/paveradmin/internal/settings"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func InitDatabase(readonly bool) *sql.DB {
	db, err := sql.Open("sqlite", settings.Settings.SQLiteDbString(readonly))
	if err != nil {
		log.Fatal("fatal error opening sqlite database:", err)
	}

	if readonly {
		db.SetMaxOpenConns(max(4, runtime.NumCPU()))
	} else {
		if _, err := db.Exec("PRAGMA temp_store=memory"); err != nil {
			log.Fatal(err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			log.Fatal(err)
		}
		db.SetMaxOpenConns(1)
	}

	return db
}

func IsUniqueConstraintError(err error) bool {
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		return sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

func IsForeignKeyConstraintError(err error) bool {
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		return sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_TRIGGER ||
			sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return false
}

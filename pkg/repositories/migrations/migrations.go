// Package migrations embeds the schema of each supported database.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

func SQLite() fs.FS {
	sub, _ := fs.Sub(files, "sqlite")
	return sub
}

func Postgres() fs.FS {
	sub, _ := fs.Sub(files, "postgres")
	return sub
}

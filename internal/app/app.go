package app

import (
	"database/sql"
	"html/template"
	"log/slog"

	"sitebase/internal/store"
)

/*
App bundles shared resources like the database connection, template set,
view counter and logger. Handlers receive a pointer to this struct so
they can work with those shared pieces.
*/

type App struct {
	DB        *sql.DB
	Users     *store.Users
	Templates map[string]*template.Template
	Views     *ViewCounter
	Log       *slog.Logger
}

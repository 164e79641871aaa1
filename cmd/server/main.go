package main

// The main package loads configuration, opens the database, applies
// pending migrations, parses the HTML templates and wires together the
// HTTP routes. This entry point stays intentionally small to emphasize
// how the application is composed from smaller packages.

import (
	"context"
	"net/http"
	"os"

	"sitebase/internal/app"
	"sitebase/internal/config"
	"sitebase/internal/db"
	"sitebase/internal/logging"
	"sitebase/internal/server"
	"sitebase/internal/store"
)

/*
main configures the application and starts the HTTP server.

Configuration comes from built-in defaults, overlaid by environment
variables (LISTEN_ADDR, DATABASE_URL, ...) and finally command-line
flags. Migrations run before the listener binds; if they fail the
process exits without ever accepting traffic.
*/
func main() {
	cfg := config.Load()
	if err := cfg.ParseFlags(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	log := logging.New(cfg.LogLevel)

	conn, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Error("unable to open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := db.Migrate(context.Background(), conn); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	tpls, err := server.LoadTemplates(cfg.TemplatesDir)
	if err != nil {
		log.Error("failed loading templates", "dir", cfg.TemplatesDir, "error", err)
		os.Exit(1)
	}

	// Build the application context. All HTTP handlers receive a
	// pointer to this struct so they can access the shared database,
	// templates, view counter and logger.
	a := &app.App{
		DB:        conn,
		Users:     store.NewUsers(conn),
		Templates: tpls,
		Views:     &app.ViewCounter{},
		Log:       log,
	}

	handler := server.New(a, cfg.StaticDir, log)

	log.Info("server listening", "addr", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

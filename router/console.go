// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"
	"net/http"

	"github.com/tailscale/tailsql/server/tailsql"
	"tailscale.com/tsweb"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/middleware"
)

// ConsolePrefix is where the SQL console is mounted
const ConsolePrefix = "/debug/tailsql/"

// AttachSQLConsole mounts a tailsql console over the store's pool.
// The console lives on its own mux so tsweb's /debug/ index cannot clash
// with the {id} routes.
func AttachSQLConsole(mux *http.ServeMux, store *db.Store, cfg cliparse.Config) error {
	debugMux := http.NewServeMux()
	debug := tsweb.Debugger(debugMux)

	tsql, err := tailsql.NewServer(tailsql.Options{
		RoutePrefix: ConsolePrefix,
	})
	if err != nil {
		return fmt.Errorf("failed to create tailsql server: %w", err)
	}
	tsql.SetDB(fmt.Sprintf("%s://polls", store.Dialect()), store.DB(), &tailsql.DBOptions{
		Label: "Polls DB",
	})
	debug.Handle("tailsql/", "SQL live debugging", tsql.NewMux())

	mux.Handle(ConsolePrefix, middleware.RequireAdminKey(auth.ScopeDebug, cfg.AdminKeySalt, debugMux))
	return nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
)

type SchemaHandler struct {
	store *db.Store
}

func NewSchemaHandler(store *db.Store) *SchemaHandler {
	return &SchemaHandler{store: store}
}

// ListTables handles GET /debug/schema
func (h *SchemaHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.SchemaResponse{
		Tables: h.store.Schema().TableNames(),
	})
}

// GetTable handles GET /debug/schema/{table}
// Returns the reflected columns and the current row count
func (h *SchemaHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("table")

	table, err := h.store.Schema().Table(name)
	if errors.Is(err, db.ErrUnknownTable) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Table not found")
		return
	}
	if err != nil {
		slog.Error("failed to look up table", "table", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Schema error")
		return
	}

	sess, err := h.store.Session(r.Context())
	if err != nil {
		slog.Error("failed to open session", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	defer sess.Close()

	count, err := sess.Count(r.Context(), table.Name, db.Predicate{})
	if err != nil {
		slog.Error("failed to count rows", "table", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	info := models.TableInfo{
		Name:     table.Name,
		Columns:  make([]models.ColumnInfo, 0, len(table.Columns)),
		RowCount: count,
	}
	for _, c := range table.Columns {
		info.Columns = append(info.Columns, models.ColumnInfo{
			Name:       c.Name,
			Type:       c.Type,
			NotNull:    c.NotNull,
			PrimaryKey: c.PrimaryKey,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, info)
}

// Package data holds the console's own persistence. The console proxies all
// platform content to the upstream API; the only local state is the audit
// trail of operator actions.
package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sikayet/console-api/internal/apperr"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/migrate"
)

// AuditRepo stores and queries audit log entries.
type AuditRepo struct {
	DB *sql.DB
}

// NewAuditRepo creates an AuditRepo.
func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{DB: db}
}

const auditColumns = `id, actor, action, entity_type, entity_id, outcome, detail, created_at`

// Insert writes one audit entry. A missing ID gets a fresh UUID; a zero
// CreatedAt is filled by the database.
func (r *AuditRepo) Insert(ctx context.Context, entry model.AuditEntry) error {
	if entry.Actor == "" {
		return apperr.ValidationField("actor", "Actor is required.")
	}
	if entry.Action == "" {
		return apperr.ValidationField("action", "Action is required.")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Outcome == "" {
		entry.Outcome = "ok"
	}

	query := `
		INSERT INTO audit_log (id, actor, action, entity_type, entity_id, outcome, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE(NULLIF($8::timestamptz, '0001-01-01T00:00:00Z'::timestamptz), now()))`

	if _, err := r.DB.ExecContext(ctx, query,
		entry.ID, entry.Actor, entry.Action, entry.EntityType, entry.EntityID,
		entry.Outcome, entry.Detail, entry.CreatedAt,
	); err != nil {
		return apperr.MapDBError(err)
	}
	return nil
}

// AuditListOptions filters and paginates audit queries.
type AuditListOptions struct {
	Actor      string
	EntityType string
	EntityID   string
	Limit      int
	Offset     int
}

// List returns entries newest first.
func (r *AuditRepo) List(ctx context.Context, opts AuditListOptions) ([]model.AuditEntry, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 1000 {
		limit = 1000
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	var conds []string
	var args []any
	add := func(expr string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}
	if opts.Actor != "" {
		add("actor = $%d", opts.Actor)
	}
	if opts.EntityType != "" {
		add("entity_type = $%d", opts.EntityType)
	}
	if opts.EntityID != "" {
		add("entity_id = $%d", opts.EntityID)
	}

	query := `SELECT ` + auditColumns + ` FROM audit_log`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.MapDBError(err)
	}
	defer rows.Close()

	var entries []model.AuditEntry
	for rows.Next() {
		var e model.AuditEntry
		if err := rows.Scan(
			&e.ID, &e.Actor, &e.Action, &e.EntityType, &e.EntityID,
			&e.Outcome, &e.Detail, &e.CreatedAt,
		); err != nil {
			return nil, apperr.MapDBError(err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.MapDBError(err)
	}
	return entries, nil
}

// RunMigrations sets up the console schema.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate.Run(ctx, db)
}

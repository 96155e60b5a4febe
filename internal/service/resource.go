// Package service orchestrates console operations: it validates input before
// any network call, proxies to the upstream admin API, normalizes errors,
// and records the audit trail.
package service

import (
	"context"

	"github.com/sikayet/console-api/internal/apperr"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/ports"
	"github.com/sikayet/console-api/internal/upstream"
)

// crudService is the shared core of the entity services. Validation runs
// before the upstream call so obviously bad input never leaves the console;
// mutations are audited on success.
type crudService[T any, C any, U any] struct {
	api        ports.CRUD[T, C, U]
	audit      ports.AuditRecorder
	entityType string

	// validateCreate and validateUpdate may rewrite the request (slug
	// defaulting, domain normalization) before it goes upstream.
	validateCreate func(*C) error
	validateUpdate func(*U) error
}

func (s *crudService[T, C, U]) List(ctx context.Context) ([]T, error) {
	items, err := s.api.List(ctx)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	return items, nil
}

func (s *crudService[T, C, U]) Get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, apperr.ValidationField("id", "ID is required.")
	}
	item, err := s.api.Get(ctx, id)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	return item, nil
}

func (s *crudService[T, C, U]) Create(ctx context.Context, req C) (*T, error) {
	if s.validateCreate != nil {
		if err := s.validateCreate(&req); err != nil {
			return nil, err
		}
	}
	item, err := s.api.Create(ctx, req)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	s.record(ctx, model.AuditActionCreate, itemID(item))
	return item, nil
}

func (s *crudService[T, C, U]) Update(ctx context.Context, id string, req U) (*T, error) {
	if id == "" {
		return nil, apperr.ValidationField("id", "ID is required.")
	}
	if s.validateUpdate != nil {
		if err := s.validateUpdate(&req); err != nil {
			return nil, err
		}
	}
	item, err := s.api.Update(ctx, id, req)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	s.record(ctx, model.AuditActionUpdate, id)
	return item, nil
}

// Delete performs the actual upstream deletion. The delayed-commit flow in
// the HTTP layer calls this only after the undo window has elapsed.
func (s *crudService[T, C, U]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.ValidationField("id", "ID is required.")
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return upstream.NormalizeError(err)
	}
	s.record(ctx, model.AuditActionDelete, id)
	return nil
}

func (s *crudService[T, C, U]) record(ctx context.Context, action model.AuditAction, entityID string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ctx, model.AuditEntry{
		Actor:      ActorFrom(ctx),
		Action:     action,
		EntityType: s.entityType,
		EntityID:   entityID,
	})
}

// recordAction audits non-CRUD mutations (approve, activate, status flips).
func (s *crudService[T, C, U]) recordAction(ctx context.Context, entityID, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ctx, model.AuditEntry{
		Actor:      ActorFrom(ctx),
		Action:     model.AuditActionStatusChange,
		EntityType: s.entityType,
		EntityID:   entityID,
		Detail:     detail,
	})
}

// itemID extracts the ID from any entity via the shared list-item contract.
func itemID(v any) string {
	if it, ok := v.(interface{ ItemID() string }); ok {
		return it.ItemID()
	}
	return ""
}

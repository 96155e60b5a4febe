package service

import (
	"context"
	"strings"

	"github.com/sikayet/console-api/internal/apperr"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/ports"
	"github.com/sikayet/console-api/internal/upstream"
)

// ComplaintService moderates consumer complaints. Complaints are created by
// end users on the public site; the console lists, edits, moderates, and
// deletes them.
type ComplaintService struct {
	api   ports.ComplaintAPI
	audit ports.AuditRecorder
}

// NewComplaintService constructs a ComplaintService.
func NewComplaintService(api ports.ComplaintAPI, audit ports.AuditRecorder) *ComplaintService {
	return &ComplaintService{api: api, audit: audit}
}

// List returns all complaints visible to the console.
func (s *ComplaintService) List(ctx context.Context) ([]model.Complaint, error) {
	items, err := s.api.List(ctx)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	return items, nil
}

// Get returns a single complaint.
func (s *ComplaintService) Get(ctx context.Context, id string) (*model.Complaint, error) {
	if id == "" {
		return nil, apperr.ValidationField("id", "ID is required.")
	}
	item, err := s.api.Get(ctx, id)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	return item, nil
}

// Update applies a moderator edit to a complaint.
func (s *ComplaintService) Update(ctx context.Context, id string, req model.UpdateComplaintRequest) (*model.Complaint, error) {
	if id == "" {
		return nil, apperr.ValidationField("id", "ID is required.")
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, apperr.ValidationField("title", "Title cannot be empty.")
	}
	if req.Body != nil && strings.TrimSpace(*req.Body) == "" {
		return nil, apperr.ValidationField("body", "Body cannot be empty.")
	}
	item, err := s.api.Update(ctx, id, req)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	s.record(ctx, model.AuditActionUpdate, id, "")
	return item, nil
}

// Delete removes a complaint upstream. Called by the delayed-commit flow
// after the undo window.
func (s *ComplaintService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.ValidationField("id", "ID is required.")
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return upstream.NormalizeError(err)
	}
	s.record(ctx, model.AuditActionDelete, id, "")
	return nil
}

// Approve moves a complaint to the approved state.
func (s *ComplaintService) Approve(ctx context.Context, id string) (*model.Complaint, error) {
	if id == "" {
		return nil, apperr.ValidationField("id", "ID is required.")
	}
	item, err := s.api.Approve(ctx, id)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	s.record(ctx, model.AuditActionStatusChange, id, "approved")
	return item, nil
}

// Reject moves a complaint to the rejected state, optionally with a reason
// shown to the complainant.
func (s *ComplaintService) Reject(ctx context.Context, id, reason string) (*model.Complaint, error) {
	if id == "" {
		return nil, apperr.ValidationField("id", "ID is required.")
	}
	item, err := s.api.Reject(ctx, id, strings.TrimSpace(reason))
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	s.record(ctx, model.AuditActionStatusChange, id, "rejected")
	return item, nil
}

func (s *ComplaintService) record(ctx context.Context, action model.AuditAction, id, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ctx, model.AuditEntry{
		Actor:      ActorFrom(ctx),
		Action:     action,
		EntityType: "complaint",
		EntityID:   id,
		Detail:     detail,
	})
}

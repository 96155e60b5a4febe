package service

import (
	"context"
	"strings"

	"github.com/sikayet/console-api/internal/apperr"
	domainauth "github.com/sikayet/console-api/internal/domain/auth"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/ports"
	"github.com/sikayet/console-api/internal/upstream"
)

// minPasswordLength matches the platform's account policy.
const minPasswordLength = 8

// UserService manages platform user accounts from the console.
type UserService struct {
	crudService[model.User, model.CreateUserRequest, model.UpdateUserRequest]
	users ports.UserAPI
}

// NewUserService constructs a UserService.
func NewUserService(api ports.UserAPI, audit ports.AuditRecorder) *UserService {
	s := &UserService{users: api}
	s.api = api
	s.audit = audit
	s.entityType = "user"
	s.validateCreate = func(req *model.CreateUserRequest) error {
		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" {
			return apperr.ValidationField("email", "Email is required.")
		}
		if !strings.Contains(req.Email, "@") {
			return apperr.ValidationField("email", "Email is not valid.")
		}
		if strings.TrimSpace(req.FullName) == "" {
			return apperr.ValidationField("fullName", "Full name is required.")
		}
		if len(req.Password) < minPasswordLength {
			return apperr.ValidationField("password", "Password must be at least 8 characters.")
		}
		req.Role = string(domainauth.ParseRole(req.Role))
		if req.Role == "" {
			req.Role = string(domainauth.RoleUser)
		}
		return nil
	}
	s.validateUpdate = func(req *model.UpdateUserRequest) error {
		if req.Email != nil {
			trimmed := strings.TrimSpace(*req.Email)
			if trimmed == "" || !strings.Contains(trimmed, "@") {
				return apperr.ValidationField("email", "Email is not valid.")
			}
			*req.Email = trimmed
		}
		if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
			return apperr.ValidationField("fullName", "Full name cannot be empty.")
		}
		if req.Role != nil {
			normalized := string(domainauth.ParseRole(*req.Role))
			*req.Role = normalized
		}
		return nil
	}
	return s
}

// SetActive enables or disables a platform account.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*model.User, error) {
	if id == "" {
		return nil, apperr.ValidationField("id", "ID is required.")
	}
	user, err := s.users.SetActive(ctx, id, active)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	s.recordAction(ctx, id, statusDetail(active))
	return user, nil
}

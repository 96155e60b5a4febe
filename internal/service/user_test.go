package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sikayet/console-api/internal/apperr"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/mocks"
	authmocks "github.com/sikayet/console-api/internal/mocks/auth"
)

func TestUserService_Create_NormalizesRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockUserAPI(ctrl)
	svc := NewUserService(api, nil)

	api.EXPECT().
		Create(gomock.Any(), model.CreateUserRequest{
			Email:    "new@example.com",
			FullName: "New Operator",
			Role:     "MODERATOR",
			Password: "long-enough-pass",
		}).
		Return(&model.User{ID: "u1"}, nil)

	user, err := svc.Create(context.Background(), model.CreateUserRequest{
		Email:    " new@example.com ",
		FullName: "New Operator",
		Role:     "moderator",
		Password: "long-enough-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUserService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockUserAPI(ctrl)
	svc := NewUserService(api, nil)

	tests := []struct {
		name      string
		req       model.CreateUserRequest
		wantField string
	}{
		{
			name:      "missing email",
			req:       model.CreateUserRequest{FullName: "X", Password: "password1"},
			wantField: "email",
		},
		{
			name:      "malformed email",
			req:       model.CreateUserRequest{Email: "not-an-email", FullName: "X", Password: "password1"},
			wantField: "email",
		},
		{
			name:      "missing full name",
			req:       model.CreateUserRequest{Email: "a@b.com", Password: "password1"},
			wantField: "fullName",
		},
		{
			name:      "short password",
			req:       model.CreateUserRequest{Email: "a@b.com", FullName: "X", Password: "short"},
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)

			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
			assert.Equal(t, tt.wantField, apperr.GetField(err))
		})
	}
}

func TestUserService_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockUserAPI(ctrl)
	audit := &authmocks.RecorderSpy{}
	svc := NewUserService(api, audit)

	api.EXPECT().SetActive(gomock.Any(), "u1", false).
		Return(&model.User{ID: "u1", Active: false}, nil)

	user, err := svc.SetActive(context.Background(), "u1", false)

	require.NoError(t, err)
	assert.False(t, user.Active)

	entry, ok := audit.Last()
	require.True(t, ok)
	assert.Equal(t, model.AuditActionStatusChange, entry.Action)
	assert.Equal(t, "deactivated", entry.Detail)
}

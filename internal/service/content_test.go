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
	"github.com/sikayet/console-api/internal/upstream"
)

func TestGuideService_Create_DefaultsSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockGuideAPI(ctrl)
	audit := &authmocks.RecorderSpy{}
	svc := NewGuideService(api, audit)

	api.EXPECT().
		Create(gomock.Any(), model.CreateGuideRequest{
			Title:   "Şikayet Nasıl Yazılır",
			Slug:    "sikayet-nasil-yazilir",
			Content: "Adım adım anlatım.",
		}).
		Return(&model.Guide{ID: "g1", Title: "Şikayet Nasıl Yazılır"}, nil)

	guide, err := svc.Create(context.Background(), model.CreateGuideRequest{
		Title:   "  Şikayet Nasıl Yazılır  ",
		Content: "Adım adım anlatım.",
	})

	require.NoError(t, err)
	assert.Equal(t, "g1", guide.ID)

	entry, ok := audit.Last()
	require.True(t, ok)
	assert.Equal(t, model.AuditActionCreate, entry.Action)
	assert.Equal(t, "guide", entry.EntityType)
	assert.Equal(t, "g1", entry.EntityID)
}

func TestGuideService_Create_ValidationShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT: a validation failure must never reach the upstream API.
	api := mocks.NewMockGuideAPI(ctrl)
	svc := NewGuideService(api, nil)

	_, err := svc.Create(context.Background(), model.CreateGuideRequest{Content: "body"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "title", apperr.GetField(err))

	_, err = svc.Create(context.Background(), model.CreateGuideRequest{Title: "A guide"})
	require.Error(t, err)
	assert.Equal(t, "content", apperr.GetField(err))
}

func TestGuideService_Update_RejectsEmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockGuideAPI(ctrl)
	svc := NewGuideService(api, nil)

	empty := "   "
	_, err := svc.Update(context.Background(), "g1", model.UpdateGuideRequest{Title: &empty})

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "title", apperr.GetField(err))
}

func TestGuideService_Update_RequiresID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockGuideAPI(ctrl)
	svc := NewGuideService(api, nil)

	_, err := svc.Update(context.Background(), "", model.UpdateGuideRequest{})

	require.Error(t, err)
	assert.Equal(t, "id", apperr.GetField(err))
}

func TestGuideService_Delete_RecordsActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockGuideAPI(ctrl)
	audit := &authmocks.RecorderSpy{}
	svc := NewGuideService(api, audit)

	api.EXPECT().Delete(gomock.Any(), "g1").Return(nil)

	ctx := WithActor(context.Background(), "mod@example.com")
	require.NoError(t, svc.Delete(ctx, "g1"))

	entry, ok := audit.Last()
	require.True(t, ok)
	assert.Equal(t, model.AuditActionDelete, entry.Action)
	assert.Equal(t, "mod@example.com", entry.Actor)
	assert.Equal(t, "g1", entry.EntityID)
}

func TestGuideService_List_NormalizesUpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockGuideAPI(ctrl)
	svc := NewGuideService(api, nil)

	api.EXPECT().List(gomock.Any()).
		Return(nil, &upstream.APIError{Status: 401, Message: "HTTP 401"})

	_, err := svc.List(context.Background())

	require.Error(t, err)
	assert.True(t, apperr.IsUnauthorized(err))
}

func TestGuideService_Activate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockGuideAPI(ctrl)
	audit := &authmocks.RecorderSpy{}
	svc := NewGuideService(api, audit)

	api.EXPECT().Activate(gomock.Any(), "g1").
		Return(&model.Guide{ID: "g1", Active: true}, nil)

	guide, err := svc.Activate(context.Background(), "g1")

	require.NoError(t, err)
	assert.True(t, guide.Active)

	entry, ok := audit.Last()
	require.True(t, ok)
	assert.Equal(t, model.AuditActionStatusChange, entry.Action)
	assert.Equal(t, "activated", entry.Detail)
}

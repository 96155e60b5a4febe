package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sikayet/console-api/internal/apperr"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/testutil"
)

func TestAuditRepo_Insert(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewAuditRepo(db)

	t.Run("successful insert", func(t *testing.T) {
		entry := model.AuditEntry{
			Actor:      "admin@example.com",
			Action:     model.AuditActionDelete,
			EntityType: "guide",
			EntityID:   "g1",
			Detail:     "committed after undo window",
		}
		require.NoError(t, repo.Insert(context.Background(), entry))

		got, err := repo.List(context.Background(), AuditListOptions{EntityID: "g1"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.NotEmpty(t, got[0].ID)
		assert.Equal(t, "admin@example.com", got[0].Actor)
		assert.Equal(t, model.AuditActionDelete, got[0].Action)
		assert.Equal(t, "ok", got[0].Outcome)
		assert.NotZero(t, got[0].CreatedAt)
	})

	t.Run("keeps caller timestamps and ids", func(t *testing.T) {
		at := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
		entry := model.AuditEntry{
			ID:         "11111111-1111-1111-1111-111111111111",
			Actor:      "mod@example.com",
			Action:     model.AuditActionLogin,
			Outcome:    "denied",
			CreatedAt:  at,
			EntityType: "session",
		}
		require.NoError(t, repo.Insert(context.Background(), entry))

		got, err := repo.List(context.Background(), AuditListOptions{Actor: "mod@example.com"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, entry.ID, got[0].ID)
		assert.Equal(t, "denied", got[0].Outcome)
		assert.True(t, got[0].CreatedAt.Equal(at))
	})

	t.Run("validation errors", func(t *testing.T) {
		err := repo.Insert(context.Background(), model.AuditEntry{Action: model.AuditActionLogin})
		require.True(t, apperr.IsValidation(err))
		assert.Equal(t, "actor", apperr.GetField(err))

		err = repo.Insert(context.Background(), model.AuditEntry{Actor: "admin@example.com"})
		require.True(t, apperr.IsValidation(err))
		assert.Equal(t, "action", apperr.GetField(err))
	})

	t.Run("duplicate id maps to conflict", func(t *testing.T) {
		entry := model.AuditEntry{
			ID:     "22222222-2222-2222-2222-222222222222",
			Actor:  "admin@example.com",
			Action: model.AuditActionCreate,
		}
		require.NoError(t, repo.Insert(context.Background(), entry))

		err := repo.Insert(context.Background(), entry)
		assert.True(t, apperr.IsConflict(err))
	})
}

func TestAuditRepo_List(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewAuditRepo(db)
		base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

		seed := []model.AuditEntry{
			{Actor: "admin@example.com", Action: model.AuditActionCreate, EntityType: "faq", EntityID: "f1", CreatedAt: base},
			{Actor: "admin@example.com", Action: model.AuditActionUpdate, EntityType: "faq", EntityID: "f1", CreatedAt: base.Add(time.Minute)},
			{Actor: "mod@example.com", Action: model.AuditActionDelete, EntityType: "guide", EntityID: "g1", CreatedAt: base.Add(2 * time.Minute)},
		}
		for _, e := range seed {
			require.NoError(t, repo.Insert(context.Background(), e))
		}

		t.Run("newest first", func(t *testing.T) {
			got, err := repo.List(context.Background(), AuditListOptions{})
			require.NoError(t, err)
			require.Len(t, got, 3)
			assert.Equal(t, model.AuditActionDelete, got[0].Action)
			assert.Equal(t, model.AuditActionCreate, got[2].Action)
		})

		t.Run("filter by actor and entity", func(t *testing.T) {
			got, err := repo.List(context.Background(), AuditListOptions{Actor: "admin@example.com", EntityType: "faq"})
			require.NoError(t, err)
			assert.Len(t, got, 2)
		})

		t.Run("pagination", func(t *testing.T) {
			got, err := repo.List(context.Background(), AuditListOptions{Limit: 1, Offset: 1})
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, model.AuditActionUpdate, got[0].Action)
		})

		t.Run("no matches", func(t *testing.T) {
			got, err := repo.List(context.Background(), AuditListOptions{Actor: "nobody@example.com"})
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	})
}

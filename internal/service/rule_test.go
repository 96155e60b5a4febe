package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sikayet/console-api/internal/apperr"
	"github.com/sikayet/console-api/internal/domain/model"
)

// fakeRuleAPI captures the request that would go upstream.
type fakeRuleAPI struct {
	lastCreate model.CreateRuleRequest
	lastUpdate model.UpdateRuleRequest
}

func (f *fakeRuleAPI) List(context.Context) ([]model.Rule, error)      { return nil, nil }
func (f *fakeRuleAPI) Get(context.Context, string) (*model.Rule, error) { return &model.Rule{}, nil }
func (f *fakeRuleAPI) Delete(context.Context, string) error            { return nil }

func (f *fakeRuleAPI) Create(_ context.Context, req model.CreateRuleRequest) (*model.Rule, error) {
	f.lastCreate = req
	return &model.Rule{ID: "r1", Name: req.Name}, nil
}

func (f *fakeRuleAPI) Update(_ context.Context, _ string, req model.UpdateRuleRequest) (*model.Rule, error) {
	f.lastUpdate = req
	return &model.Rule{ID: "r1"}, nil
}

func TestRuleService_Create_NormalizesDomains(t *testing.T) {
	api := &fakeRuleAPI{}
	svc := NewRuleService(api, nil)

	_, err := svc.Create(context.Background(), model.CreateRuleRequest{
		Name: "Banka şikayetleri",
		AllowedDomains: []string{
			"https://www.example.com.tr/complaints?page=2",
			"EXAMPLE.com.tr",
			"  ",
			"shop.example.org:8080",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"example.com.tr", "example.org"}, api.lastCreate.AllowedDomains,
		"duplicates collapse, blanks drop, order is first-seen")
}

func TestRuleService_Create_InvalidDomain(t *testing.T) {
	api := &fakeRuleAPI{}
	svc := NewRuleService(api, nil)

	_, err := svc.Create(context.Background(), model.CreateRuleRequest{
		Name:           "Broken",
		AllowedDomains: []string{"not a domain"},
	})

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "allowedDomains", apperr.GetField(err))
}

func TestRuleService_Create_RequiresName(t *testing.T) {
	api := &fakeRuleAPI{}
	svc := NewRuleService(api, nil)

	_, err := svc.Create(context.Background(), model.CreateRuleRequest{Name: "   "})

	require.Error(t, err)
	assert.Equal(t, "name", apperr.GetField(err))
}

func TestRuleService_Update_NormalizesDomainsWhenSet(t *testing.T) {
	api := &fakeRuleAPI{}
	svc := NewRuleService(api, nil)

	_, err := svc.Update(context.Background(), "r1", model.UpdateRuleRequest{
		AllowedDomains: []string{"www.sikayetvar.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"sikayetvar.com"}, api.lastUpdate.AllowedDomains)
}

package service

import (
	"strings"

	"github.com/sikayet/console-api/internal/apperr"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/ports"
	"github.com/sikayet/console-api/internal/util"
)

// RuleService manages moderation rule entries. Allowed domains are reduced
// to their registrable form before they go upstream so "www.example.com.tr/x"
// and "example.com.tr" dedupe to one entry.
type RuleService struct {
	crudService[model.Rule, model.CreateRuleRequest, model.UpdateRuleRequest]
}

// NewRuleService constructs a RuleService.
func NewRuleService(api ports.RuleAPI, audit ports.AuditRecorder) *RuleService {
	s := &RuleService{}
	s.api = api
	s.audit = audit
	s.entityType = "rule"
	s.validateCreate = func(req *model.CreateRuleRequest) error {
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return apperr.ValidationField("name", "Name is required.")
		}
		domains, err := normalizeDomains(req.AllowedDomains)
		if err != nil {
			return err
		}
		req.AllowedDomains = domains
		return nil
	}
	s.validateUpdate = func(req *model.UpdateRuleRequest) error {
		if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
			return apperr.ValidationField("name", "Name cannot be empty.")
		}
		if req.AllowedDomains != nil {
			domains, err := normalizeDomains(req.AllowedDomains)
			if err != nil {
				return err
			}
			req.AllowedDomains = domains
		}
		return nil
	}
	return s
}

// normalizeDomains maps raw inputs to registrable domains, dropping blanks
// and duplicates while preserving first-seen order.
func normalizeDomains(raw []string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, d := range raw {
		if strings.TrimSpace(d) == "" {
			continue
		}
		normalized := util.NormalizeDomain(d)
		if normalized == "" {
			return nil, apperr.ValidationField("allowedDomains", "Invalid domain: "+d)
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out, nil
}

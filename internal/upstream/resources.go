package upstream

import (
	"context"

	"github.com/sikayet/console-api/internal/domain/model"
)

// Endpoint groups for the admin resources. Each embeds the shared CRUD
// endpoint and adds the resource's status actions.

// ComplaintAPI covers /api/admin/complaints.
type ComplaintAPI struct {
	endpoint[model.Complaint, struct{}, model.UpdateComplaintRequest]
}

// Complaints returns the complaints endpoint group.
func (c *Client) Complaints() *ComplaintAPI {
	return &ComplaintAPI{endpoint[model.Complaint, struct{}, model.UpdateComplaintRequest]{c: c, base: "/api/admin/complaints"}}
}

// Approve moves a complaint to APPROVED.
func (a *ComplaintAPI) Approve(ctx context.Context, id string) (*model.Complaint, error) {
	return a.action(ctx, id, "approve", nil)
}

// Reject moves a complaint to REJECTED.
func (a *ComplaintAPI) Reject(ctx context.Context, id, reason string) (*model.Complaint, error) {
	var body any
	if reason != "" {
		body = map[string]string{"reason": reason}
	}
	return a.action(ctx, id, "reject", body)
}

// CategoryAPI covers /api/admin/categories.
type CategoryAPI struct {
	endpoint[model.Category, model.CreateCategoryRequest, model.UpdateCategoryRequest]
}

// Categories returns the categories endpoint group.
func (c *Client) Categories() *CategoryAPI {
	return &CategoryAPI{endpoint[model.Category, model.CreateCategoryRequest, model.UpdateCategoryRequest]{c: c, base: "/api/admin/categories"}}
}

// FAQCategoryAPI covers /api/admin/faq-categories.
type FAQCategoryAPI struct {
	endpoint[model.FAQCategory, model.CreateFAQCategoryRequest, model.UpdateFAQCategoryRequest]
}

// FAQCategories returns the FAQ categories endpoint group.
func (c *Client) FAQCategories() *FAQCategoryAPI {
	return &FAQCategoryAPI{endpoint[model.FAQCategory, model.CreateFAQCategoryRequest, model.UpdateFAQCategoryRequest]{c: c, base: "/api/admin/faq-categories"}}
}

// FAQAPI covers /api/admin/faqs.
type FAQAPI struct {
	endpoint[model.FAQ, model.CreateFAQRequest, model.UpdateFAQRequest]
}

// FAQs returns the FAQs endpoint group.
func (c *Client) FAQs() *FAQAPI {
	return &FAQAPI{endpoint[model.FAQ, model.CreateFAQRequest, model.UpdateFAQRequest]{c: c, base: "/api/admin/faqs"}}
}

// SetStatus toggles an FAQ's active flag.
func (a *FAQAPI) SetStatus(ctx context.Context, id string, active bool) (*model.FAQ, error) {
	return a.action(ctx, id, "status", map[string]bool{"active": active})
}

// GuideAPI covers /api/admin/guides.
type GuideAPI struct {
	endpoint[model.Guide, model.CreateGuideRequest, model.UpdateGuideRequest]
}

// Guides returns the guide content endpoint group.
func (c *Client) Guides() *GuideAPI {
	return &GuideAPI{endpoint[model.Guide, model.CreateGuideRequest, model.UpdateGuideRequest]{c: c, base: "/api/admin/guides"}}
}

// Activate marks a guide as the active one.
func (a *GuideAPI) Activate(ctx context.Context, id string) (*model.Guide, error) {
	return a.action(ctx, id, "activate", nil)
}

// KVKKAPI covers /api/admin/kvkk.
type KVKKAPI struct {
	endpoint[model.KVKKSection, model.CreateKVKKSectionRequest, model.UpdateKVKKSectionRequest]
}

// KVKK returns the KVKK sections endpoint group.
func (c *Client) KVKK() *KVKKAPI {
	return &KVKKAPI{endpoint[model.KVKKSection, model.CreateKVKKSectionRequest, model.UpdateKVKKSectionRequest]{c: c, base: "/api/admin/kvkk"}}
}

// Activate marks a KVKK section as active.
func (a *KVKKAPI) Activate(ctx context.Context, id string) (*model.KVKKSection, error) {
	return a.action(ctx, id, "activate", nil)
}

// RuleAPI covers /api/admin/rules.
type RuleAPI struct {
	endpoint[model.Rule, model.CreateRuleRequest, model.UpdateRuleRequest]
}

// Rules returns the rules endpoint group.
func (c *Client) Rules() *RuleAPI {
	return &RuleAPI{endpoint[model.Rule, model.CreateRuleRequest, model.UpdateRuleRequest]{c: c, base: "/api/admin/rules"}}
}

// UserAPI covers /api/admin/users.
type UserAPI struct {
	endpoint[model.User, model.CreateUserRequest, model.UpdateUserRequest]
}

// Users returns the users endpoint group.
func (c *Client) Users() *UserAPI {
	return &UserAPI{endpoint[model.User, model.CreateUserRequest, model.UpdateUserRequest]{c: c, base: "/api/admin/users"}}
}

// SetActive toggles a user's active flag.
func (a *UserAPI) SetActive(ctx context.Context, id string, active bool) (*model.User, error) {
	return a.action(ctx, id, "active", map[string]bool{"active": active})
}

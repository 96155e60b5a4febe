package model

// Create/update request payloads sent to the upstream admin API. Pointer
// fields on update requests distinguish "leave unchanged" from "set to zero
// value"; they are serialized as PATCH bodies.

// CreateCategoryRequest creates a complaint category.
type CreateCategoryRequest struct {
	Name   string `json:"name"`
	Slug   string `json:"slug,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// UpdateCategoryRequest patches a complaint category.
type UpdateCategoryRequest struct {
	Name   *string `json:"name,omitempty"`
	Slug   *string `json:"slug,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// CreateFAQCategoryRequest creates an FAQ category.
type CreateFAQCategoryRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug,omitempty"`
	SortOrder int    `json:"sortOrder,omitempty"`
}

// UpdateFAQCategoryRequest patches an FAQ category.
type UpdateFAQCategoryRequest struct {
	Name      *string `json:"name,omitempty"`
	Slug      *string `json:"slug,omitempty"`
	SortOrder *int    `json:"sortOrder,omitempty"`
}

// CreateFAQRequest creates an FAQ entry.
type CreateFAQRequest struct {
	CategoryID string `json:"categoryId"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Active     *bool  `json:"active,omitempty"`
}

// UpdateFAQRequest patches an FAQ entry.
type UpdateFAQRequest struct {
	CategoryID *string `json:"categoryId,omitempty"`
	Question   *string `json:"question,omitempty"`
	Answer     *string `json:"answer,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

// CreateGuideRequest creates a guide content entry.
type CreateGuideRequest struct {
	Title   string `json:"title"`
	Slug    string `json:"slug,omitempty"`
	Content string `json:"content"`
}

// UpdateGuideRequest patches a guide content entry.
type UpdateGuideRequest struct {
	Title   *string `json:"title,omitempty"`
	Slug    *string `json:"slug,omitempty"`
	Content *string `json:"content,omitempty"`
}

// CreateKVKKSectionRequest creates a KVKK text section.
type CreateKVKKSectionRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	SortOrder int    `json:"sortOrder,omitempty"`
}

// UpdateKVKKSectionRequest patches a KVKK text section.
type UpdateKVKKSectionRequest struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	SortOrder *int    `json:"sortOrder,omitempty"`
}

// CreateRuleRequest creates a moderation rule set entry.
type CreateRuleRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	AllowedDomains []string `json:"allowedDomains,omitempty"`
	Active         *bool    `json:"active,omitempty"`
}

// UpdateRuleRequest patches a moderation rule set entry.
type UpdateRuleRequest struct {
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	AllowedDomains []string `json:"allowedDomains,omitempty"`
	Active         *bool    `json:"active,omitempty"`
}

// CreateUserRequest creates a platform user.
type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdateUserRequest patches a platform user.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"fullName,omitempty"`
	Role     *string `json:"role,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// UpdateComplaintRequest patches a complaint (moderator edits).
type UpdateComplaintRequest struct {
	Title      *string `json:"title,omitempty"`
	Body       *string `json:"body,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
}

// Package model defines the console's view of the complaints platform entities.
// Field sets mirror the upstream admin API payloads; the console never owns
// this data, it only renders and mutates it through the upstream client.
package model

import "time"

// ComplaintStatus enumerates the moderation states of a complaint.
type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "PENDING"
	ComplaintStatusApproved ComplaintStatus = "APPROVED"
	ComplaintStatusRejected ComplaintStatus = "REJECTED"
)

// Complaint is a consumer complaint filed against a company.
type Complaint struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Body          string          `json:"body"`
	CompanyName   string          `json:"companyName"`
	CompanyDomain string          `json:"companyDomain,omitempty"`
	CategoryID    string          `json:"categoryId"`
	Status        ComplaintStatus `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ItemID implements the list-item contract used by the delete controller.
func (c Complaint) ItemID() string { return c.ID }

// Category is a complaint category.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Category) ItemID() string { return c.ID }

// FAQCategory groups FAQs on the help pages.
type FAQCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c FAQCategory) ItemID() string { return c.ID }

// FAQ is a single question/answer entry.
type FAQ struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"categoryId"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (f FAQ) ItemID() string { return f.ID }

// Guide is a how-to content entry shown to end users.
type Guide struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (g Guide) ItemID() string { return g.ID }

// KVKKSection is one section of the privacy-law (KVKK) text.
type KVKKSection struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	SortOrder int       `json:"sortOrder"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (k KVKKSection) ItemID() string { return k.ID }

// Rule is a moderation rule set entry. AllowedDomains holds registrable
// domains the rule applies to.
type Rule struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	AllowedDomains []string  `json:"allowedDomains,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (r Rule) ItemID() string { return r.ID }

// User is a platform user as the admin console manages it.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) ItemID() string { return u.ID }

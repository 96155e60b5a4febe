package service

import (
	"context"
	"strings"

	"github.com/sikayet/console-api/internal/apperr"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/ports"
	"github.com/sikayet/console-api/internal/upstream"
	"github.com/sikayet/console-api/internal/util"
)

// CategoryService manages complaint categories.
type CategoryService struct {
	crudService[model.Category, model.CreateCategoryRequest, model.UpdateCategoryRequest]
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(api ports.CategoryAPI, audit ports.AuditRecorder) *CategoryService {
	s := &CategoryService{}
	s.api = api
	s.audit = audit
	s.entityType = "category"
	s.validateCreate = func(req *model.CreateCategoryRequest) error {
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return apperr.ValidationField("name", "Name is required.")
		}
		if req.Slug == "" {
			req.Slug = util.Slugify(req.Name)
		}
		return nil
	}
	s.validateUpdate = func(req *model.UpdateCategoryRequest) error {
		if req.Name != nil {
			trimmed := strings.TrimSpace(*req.Name)
			if trimmed == "" {
				return apperr.ValidationField("name", "Name cannot be empty.")
			}
			*req.Name = trimmed
		}
		return nil
	}
	return s
}

// FAQCategoryService manages the help-page FAQ groups.
type FAQCategoryService struct {
	crudService[model.FAQCategory, model.CreateFAQCategoryRequest, model.UpdateFAQCategoryRequest]
}

// NewFAQCategoryService constructs an FAQCategoryService.
func NewFAQCategoryService(api ports.FAQCategoryAPI, audit ports.AuditRecorder) *FAQCategoryService {
	s := &FAQCategoryService{}
	s.api = api
	s.audit = audit
	s.entityType = "faq_category"
	s.validateCreate = func(req *model.CreateFAQCategoryRequest) error {
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return apperr.ValidationField("name", "Name is required.")
		}
		if req.Slug == "" {
			req.Slug = util.Slugify(req.Name)
		}
		return nil
	}
	s.validateUpdate = func(req *model.UpdateFAQCategoryRequest) error {
		if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
			return apperr.ValidationField("name", "Name cannot be empty.")
		}
		return nil
	}
	return s
}

// FAQService manages question/answer entries.
type FAQService struct {
	crudService[model.FAQ, model.CreateFAQRequest, model.UpdateFAQRequest]
	faqs ports.FAQAPI
}

// NewFAQService constructs an FAQService.
func NewFAQService(api ports.FAQAPI, audit ports.AuditRecorder) *FAQService {
	s := &FAQService{faqs: api}
	s.api = api
	s.audit = audit
	s.entityType = "faq"
	s.validateCreate = func(req *model.CreateFAQRequest) error {
		if req.CategoryID == "" {
			return apperr.ValidationField("categoryId", "Category is required.")
		}
		req.Question = strings.TrimSpace(req.Question)
		if req.Question == "" {
			return apperr.ValidationField("question", "Question is required.")
		}
		if strings.TrimSpace(req.Answer) == "" {
			return apperr.ValidationField("answer", "Answer is required.")
		}
		return nil
	}
	s.validateUpdate = func(req *model.UpdateFAQRequest) error {
		if req.Question != nil && strings.TrimSpace(*req.Question) == "" {
			return apperr.ValidationField("question", "Question cannot be empty.")
		}
		if req.Answer != nil && strings.TrimSpace(*req.Answer) == "" {
			return apperr.ValidationField("answer", "Answer cannot be empty.")
		}
		return nil
	}
	return s
}

// SetStatus toggles an FAQ's visibility.
func (s *FAQService) SetStatus(ctx context.Context, id string, active bool) (*model.FAQ, error) {
	if id == "" {
		return nil, apperr.ValidationField("id", "ID is required.")
	}
	faq, err := s.faqs.SetStatus(ctx, id, active)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	s.recordAction(ctx, id, statusDetail(active))
	return faq, nil
}

// GuideService manages how-to content entries.
type GuideService struct {
	crudService[model.Guide, model.CreateGuideRequest, model.UpdateGuideRequest]
	guides ports.GuideAPI
}

// NewGuideService constructs a GuideService.
func NewGuideService(api ports.GuideAPI, audit ports.AuditRecorder) *GuideService {
	s := &GuideService{guides: api}
	s.api = api
	s.audit = audit
	s.entityType = "guide"
	s.validateCreate = func(req *model.CreateGuideRequest) error {
		req.Title = strings.TrimSpace(req.Title)
		if req.Title == "" {
			return apperr.ValidationField("title", "Title is required.")
		}
		if strings.TrimSpace(req.Content) == "" {
			return apperr.ValidationField("content", "Content is required.")
		}
		if req.Slug == "" {
			req.Slug = util.Slugify(req.Title)
		}
		return nil
	}
	s.validateUpdate = func(req *model.UpdateGuideRequest) error {
		if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
			return apperr.ValidationField("title", "Title cannot be empty.")
		}
		if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
			return apperr.ValidationField("content", "Content cannot be empty.")
		}
		return nil
	}
	return s
}

// Activate publishes a guide.
func (s *GuideService) Activate(ctx context.Context, id string) (*model.Guide, error) {
	if id == "" {
		return nil, apperr.ValidationField("id", "ID is required.")
	}
	guide, err := s.guides.Activate(ctx, id)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	s.recordAction(ctx, id, "activated")
	return guide, nil
}

// KVKKService manages the privacy-law text sections.
type KVKKService struct {
	crudService[model.KVKKSection, model.CreateKVKKSectionRequest, model.UpdateKVKKSectionRequest]
	kvkk ports.KVKKAPI
}

// NewKVKKService constructs a KVKKService.
func NewKVKKService(api ports.KVKKAPI, audit ports.AuditRecorder) *KVKKService {
	s := &KVKKService{kvkk: api}
	s.api = api
	s.audit = audit
	s.entityType = "kvkk_section"
	s.validateCreate = func(req *model.CreateKVKKSectionRequest) error {
		req.Title = strings.TrimSpace(req.Title)
		if req.Title == "" {
			return apperr.ValidationField("title", "Title is required.")
		}
		if strings.TrimSpace(req.Content) == "" {
			return apperr.ValidationField("content", "Content is required.")
		}
		return nil
	}
	s.validateUpdate = func(req *model.UpdateKVKKSectionRequest) error {
		if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
			return apperr.ValidationField("title", "Title cannot be empty.")
		}
		if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
			return apperr.ValidationField("content", "Content cannot be empty.")
		}
		return nil
	}
	return s
}

// Activate publishes a KVKK section.
func (s *KVKKService) Activate(ctx context.Context, id string) (*model.KVKKSection, error) {
	if id == "" {
		return nil, apperr.ValidationField("id", "ID is required.")
	}
	section, err := s.kvkk.Activate(ctx, id)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}
	s.recordAction(ctx, id, "activated")
	return section, nil
}

func statusDetail(active bool) string {
	if active {
		return "activated"
	}
	return "deactivated"
}

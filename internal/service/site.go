package service

import (
	"fmt"
	"strings"
	"time"

	"site-service/internal/apperr"
	"site-service/internal/model"
	"site-service/internal/repository"
	"site-service/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxSlugAttempts bounds the numbered-suffix probe when suggesting an
// alternative slug.
const maxSlugAttempts = 100

// SiteService orchestrates site creation, updates, status transitions and
// slug management over the repository.
type SiteService struct {
	repo repository.SiteRepository
	log  *zap.Logger

	// now is injectable so tests can fix the timestamp fallbacks
	now func() time.Time
}

// NewSiteService creates a site service backed by the given repository
func NewSiteService(repo repository.SiteRepository) *SiteService {
	return &SiteService{
		repo: repo,
		log:  logger.GetLogger(),
		now:  time.Now,
	}
}

// CreateSite creates a new site for an owner. The slug is derived from the
// name when none is supplied, the configuration JSON is validated (the
// original text is stored, not a round-trip), and currency/language tokens
// are resolved case-insensitively. New sites always start in DRAFT.
//
// The slug existence pre-check is advisory only; the store's unique
// constraint is the final arbiter under concurrent creates.
func (s *SiteService) CreateSite(req *CreateSiteRequest, ownerID uuid.UUID) (*model.Site, error) {
	s.log.Info("Creating site", zap.String("owner_id", ownerID.String()), zap.String("name", req.Name))

	var slug string
	var err error
	if strings.TrimSpace(req.Slug) == "" {
		slug, err = s.generateSlug(req.Name)
	} else {
		slug, err = s.normalizeSlug(req.Slug)
	}
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsBySlug(slug)
	if err != nil {
		return nil, err
	}
	if taken {
		s.log.Warn("Slug already taken", zap.String("slug", slug))
		return nil, apperr.New(apperr.SlugTaken, "slug already taken: %s", slug)
	}

	if _, err := ValidateConfig(req.Config); err != nil {
		return nil, err
	}

	currency, ok := model.ParseCurrency(req.Currency)
	if !ok {
		s.log.Warn("Invalid currency", zap.String("currency", req.Currency))
		return nil, apperr.New(apperr.InvalidEnum, "invalid currency: %s", req.Currency)
	}

	language, ok := model.ParseLanguage(req.Language)
	if !ok {
		s.log.Warn("Invalid language", zap.String("language", req.Language))
		return nil, apperr.New(apperr.InvalidEnum, "invalid language: %s", req.Language)
	}

	now := s.now()
	site := &model.Site{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Currency:    currency,
		Language:    language,
		Status:      model.StatusDraft,
		OwnerID:     ownerID,
		Config:      req.Config,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(site); err != nil {
		s.log.Error("Failed to create site", zap.String("owner_id", ownerID.String()), zap.Error(err))
		return nil, err
	}

	s.log.Info("Site created", zap.String("site_id", site.ID.String()), zap.String("slug", site.Slug))
	return site, nil
}

// GetSiteByID fetches a site by its identifier
func (s *SiteService) GetSiteByID(id uuid.UUID) (*model.Site, error) {
	return s.repo.FindByID(id)
}

// GetSiteBySlug fetches a site by its slug
func (s *SiteService) GetSiteBySlug(slug string) (*model.Site, error) {
	return s.repo.FindBySlug(slug)
}

// GetSiteSlug fetches only the slug of a site
func (s *SiteService) GetSiteSlug(id uuid.UUID) (string, error) {
	site, err := s.repo.FindByID(id)
	if err != nil {
		return "", err
	}
	return site.Slug, nil
}

// UpdateSite applies a partial update. Text fields are applied only when
// present and non-blank, description when present, and config when present
// with an empty string rejected. Slug changes are re-normalized and
// re-checked for uniqueness excluding the site's own slug.
func (s *SiteService) UpdateSite(id uuid.UUID, req *UpdateSiteRequest) (*model.Site, error) {
	s.log.Info("Updating site", zap.String("site_id", id.String()))

	site, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		site.Name = *req.Name
	}

	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		slug, err := s.normalizeSlug(*req.Slug)
		if err != nil {
			return nil, err
		}
		if slug != site.Slug {
			taken, err := s.repo.ExistsBySlug(slug)
			if err != nil {
				return nil, err
			}
			if taken {
				s.log.Warn("Slug already taken", zap.String("slug", slug))
				return nil, apperr.New(apperr.SlugTaken, "slug already taken: %s", slug)
			}
		}
		site.Slug = slug
	}

	if req.Description != nil {
		site.Description = *req.Description
	}

	if req.Currency != nil && strings.TrimSpace(*req.Currency) != "" {
		currency, ok := model.ParseCurrency(*req.Currency)
		if !ok {
			s.log.Warn("Invalid currency", zap.String("currency", *req.Currency))
			return nil, apperr.New(apperr.InvalidEnum, "invalid currency: %s", *req.Currency)
		}
		site.Currency = currency
	}

	if req.Language != nil && strings.TrimSpace(*req.Language) != "" {
		language, ok := model.ParseLanguage(*req.Language)
		if !ok {
			s.log.Warn("Invalid language", zap.String("language", *req.Language))
			return nil, apperr.New(apperr.InvalidEnum, "invalid language: %s", *req.Language)
		}
		site.Language = language
	}

	if req.Config != nil {
		if _, err := ValidateConfig(*req.Config); err != nil {
			return nil, err
		}
		site.Config = *req.Config
	}

	site.UpdatedAt = s.now()

	if err := s.repo.Save(site); err != nil {
		s.log.Error("Failed to update site", zap.String("site_id", id.String()), zap.Error(err))
		return nil, err
	}

	s.log.Info("Site updated", zap.String("site_id", id.String()))
	return site, nil
}

// UpdateSiteStatus changes the lifecycle state of a site. Published or
// disabled sites cannot move back to DRAFT.
func (s *SiteService) UpdateSiteStatus(id uuid.UUID, status string) (*model.Site, error) {
	s.log.Info("Updating site status", zap.String("site_id", id.String()), zap.String("status", status))

	site, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	newStatus, ok := model.ParseSiteStatus(status)
	if !ok {
		s.log.Warn("Invalid status", zap.String("status", status))
		return nil, apperr.New(apperr.InvalidEnum, "invalid status: %s", status)
	}

	if !model.CanTransition(site.Status, newStatus) {
		return nil, apperr.New(apperr.InvalidTransition,
			"cannot update status from %s to %s", site.Status, newStatus)
	}

	site.Status = newStatus
	site.UpdatedAt = s.now()

	if err := s.repo.Save(site); err != nil {
		s.log.Error("Failed to update site status", zap.String("site_id", id.String()), zap.Error(err))
		return nil, err
	}

	s.log.Info("Site status updated", zap.String("site_id", id.String()), zap.String("status", string(newStatus)))
	return site, nil
}

// GetSitesByOwner lists all sites for an owner
func (s *SiteService) GetSitesByOwner(ownerID uuid.UUID) ([]model.Site, error) {
	return s.repo.FindByOwner(ownerID)
}

// CountSitesByOwner counts the sites owned by an owner
func (s *SiteService) CountSitesByOwner(ownerID uuid.UUID) (int64, error) {
	return s.repo.CountByOwner(ownerID)
}

// SuggestAlternativeSlug normalizes the requested slug and, if it is taken,
// probes numbered suffixes up to maxSlugAttempts before falling back to a
// timestamp suffix.
func (s *SiteService) SuggestAlternativeSlug(requestedSlug string) (*SlugSuggestion, error) {
	normalized, err := s.normalizeSlug(requestedSlug)
	if err != nil {
		return nil, err
	}

	suggested, err := s.findAvailableSlug(normalized)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("The slug '%s' is available.", normalized)
	if suggested != normalized {
		message = fmt.Sprintf("The slug '%s' is already taken. Suggested alternative: '%s'", normalized, suggested)
	}

	return &SlugSuggestion{
		OriginalSlug:  normalized,
		SuggestedSlug: suggested,
		Message:       message,
	}, nil
}

// IsSlugAvailable reports whether the normalized form of slug is unused
func (s *SiteService) IsSlugAvailable(slug string) (bool, error) {
	normalized, err := s.normalizeSlug(slug)
	if err != nil {
		return false, err
	}
	taken, err := s.repo.ExistsBySlug(normalized)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// DeleteSite removes a site permanently
func (s *SiteService) DeleteSite(id uuid.UUID) error {
	s.log.Info("Deleting site", zap.String("site_id", id.String()))

	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.log.Error("Failed to delete site", zap.String("site_id", id.String()), zap.Error(err))
		return err
	}

	s.log.Info("Site deleted", zap.String("site_id", id.String()))
	return nil
}

func (s *SiteService) findAvailableSlug(baseSlug string) (string, error) {
	taken, err := s.repo.ExistsBySlug(baseSlug)
	if err != nil {
		return "", err
	}
	if !taken {
		return baseSlug, nil
	}

	for i := 1; i <= maxSlugAttempts; i++ {
		candidate := fmt.Sprintf("%s-%d", baseSlug, i)
		taken, err := s.repo.ExistsBySlug(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	// Last resort when every numbered candidate is taken
	return fmt.Sprintf("%s-%d", baseSlug, s.now().UnixMilli()), nil
}

func (s *SiteService) normalizeSlug(text string) (string, error) {
	return normalizeSlug(text, s.now)
}

func (s *SiteService) generateSlug(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", apperr.New(apperr.InvalidInput, "text cannot be null or blank")
	}
	return normalizeSlug(name, s.now)
}

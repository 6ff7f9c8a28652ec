package repository

import (
	"errors"
	"time"

	"site-service/internal/apperr"
	"site-service/internal/model"
	"site-service/prometheus"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteRepository is the persistence boundary for site records. The slug
// unique index is the final arbiter of uniqueness: Create and Save report
// constraint violations as a slug conflict.
type SiteRepository interface {
	Create(site *model.Site) error
	FindByID(id uuid.UUID) (*model.Site, error)
	FindBySlug(slug string) (*model.Site, error)
	FindByOwner(ownerID uuid.UUID) ([]model.Site, error)
	ExistsBySlug(slug string) (bool, error)
	CountByOwner(ownerID uuid.UUID) (int64, error)
	Save(site *model.Site) error
	Delete(id uuid.UUID) error
}

type gormSiteRepository struct {
	db *gorm.DB
}

// NewSiteRepository creates a GORM-backed site repository
func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &gormSiteRepository{db: db}
}

func (r *gormSiteRepository) Create(site *model.Site) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := r.db.Create(site).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Wrap(apperr.SlugTaken, err, "slug already taken: %s", site.Slug)
		}
		return apperr.Wrap(apperr.Storage, err, "failed to create site")
	}
	return nil
}

func (r *gormSiteRepository) FindByID(id uuid.UUID) (*model.Site, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var site model.Site
	if err := r.db.Where("id = ?", id).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "site not found with ID: %s", id)
		}
		return nil, apperr.Wrap(apperr.Storage, err, "failed to fetch site")
	}
	return &site, nil
}

func (r *gormSiteRepository) FindBySlug(slug string) (*model.Site, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var site model.Site
	if err := r.db.Where("slug = ?", slug).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "site not found with slug: %s", slug)
		}
		return nil, apperr.Wrap(apperr.Storage, err, "failed to fetch site")
	}
	return &site, nil
}

func (r *gormSiteRepository) FindByOwner(ownerID uuid.UUID) ([]model.Site, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var sites []model.Site
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&sites).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, err, "failed to list sites")
	}
	return sites, nil
}

func (r *gormSiteRepository) ExistsBySlug(slug string) (bool, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var count int64
	if err := r.db.Model(&model.Site{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, apperr.Wrap(apperr.Storage, err, "failed to check slug existence")
	}
	return count > 0, nil
}

func (r *gormSiteRepository) CountByOwner(ownerID uuid.UUID) (int64, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var count int64
	if err := r.db.Model(&model.Site{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, apperr.Wrap(apperr.Storage, err, "failed to count sites")
	}
	return count, nil
}

func (r *gormSiteRepository) Save(site *model.Site) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	if err := r.db.Save(site).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Wrap(apperr.SlugTaken, err, "slug already taken: %s", site.Slug)
		}
		return apperr.Wrap(apperr.Storage, err, "failed to update site")
	}
	return nil
}

func (r *gormSiteRepository) Delete(id uuid.UUID) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	if err := r.db.Delete(&model.Site{}, "id = ?", id).Error; err != nil {
		return apperr.Wrap(apperr.Storage, err, "failed to delete site")
	}
	return nil
}

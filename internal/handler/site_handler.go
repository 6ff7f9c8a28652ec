package handler

import (
	"net/http"

	"site-service/internal/apperr"
	"site-service/internal/middleware"
	"site-service/internal/model"
	"site-service/internal/service"
	"site-service/pkg/logger"
	"site-service/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SiteHandler maps HTTP requests onto the site service
type SiteHandler struct {
	service *service.SiteService
}

// NewSiteHandler creates a site handler
func NewSiteHandler(svc *service.SiteService) *SiteHandler {
	return &SiteHandler{service: svc}
}

// CreateSite handles site creation for the resolved owner
func (h *SiteHandler) CreateSite(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSiteOperation("create")

	var req service.CreateSiteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return apperr.New(apperr.InvalidInput, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	log.Info("Site creation request",
		zap.String("name", req.Name),
		zap.String("owner_id", ownerID.String()))

	site, err := h.service.CreateSite(&req, ownerID)
	if err != nil {
		return err
	}

	go h.refreshOwnerSiteCount(ownerID)

	log.Info("Site created successfully",
		zap.String("site_id", site.ID.String()),
		zap.String("slug", site.Slug),
		zap.String("owner_id", ownerID.String()))
	return c.JSON(http.StatusCreated, site)
}

// GetSite retrieves a site by ID
func (h *SiteHandler) GetSite(c echo.Context) error {
	prometheus.RecordSiteOperation("get")

	id, err := siteID(c)
	if err != nil {
		return err
	}

	site, err := h.service.GetSiteByID(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, site)
}

// GetSiteBySlug retrieves a site by its slug
func (h *SiteHandler) GetSiteBySlug(c echo.Context) error {
	prometheus.RecordSiteOperation("get_by_slug")

	site, err := h.service.GetSiteBySlug(c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, site)
}

// GetSiteSlug retrieves only the slug of a site
func (h *SiteHandler) GetSiteSlug(c echo.Context) error {
	prometheus.RecordSiteOperation("get_slug")

	id, err := siteID(c)
	if err != nil {
		return err
	}

	slug, err := h.service.GetSiteSlug(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"slug": slug})
}

// UpdateSite applies a partial update to a site
func (h *SiteHandler) UpdateSite(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSiteOperation("update")

	id, err := siteID(c)
	if err != nil {
		return err
	}

	var req service.UpdateSiteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("site_id", id.String()), zap.Error(err))
		return apperr.New(apperr.InvalidInput, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	site, err := h.service.UpdateSite(id, &req)
	if err != nil {
		return err
	}

	log.Info("Site updated successfully", zap.String("site_id", id.String()))
	return c.JSON(http.StatusOK, site)
}

// UpdateSiteStatus changes the lifecycle state of a site
func (h *SiteHandler) UpdateSiteStatus(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSiteOperation("update_status")

	id, err := siteID(c)
	if err != nil {
		return err
	}

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("site_id", id.String()), zap.Error(err))
		return apperr.New(apperr.InvalidInput, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	site, err := h.service.UpdateSiteStatus(id, req.Status)
	if err != nil {
		return err
	}

	log.Info("Site status updated successfully",
		zap.String("site_id", id.String()),
		zap.String("status", string(site.Status)))
	return c.JSON(http.StatusOK, site)
}

// ListSitesByOwner lists all sites for the owner in the query string
func (h *SiteHandler) ListSitesByOwner(c echo.Context) error {
	prometheus.RecordSiteOperation("list")

	ownerID, err := queryOwnerID(c)
	if err != nil {
		return err
	}

	sites, err := h.service.GetSitesByOwner(ownerID)
	if err != nil {
		return err
	}
	if sites == nil {
		sites = []model.Site{}
	}
	return c.JSON(http.StatusOK, sites)
}

// CountSitesByOwner reports how many sites an owner has
func (h *SiteHandler) CountSitesByOwner(c echo.Context) error {
	prometheus.RecordSiteOperation("count")

	ownerID, err := queryOwnerID(c)
	if err != nil {
		return err
	}

	count, err := h.service.CountSitesByOwner(ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"ownerId": ownerID, "count": count})
}

// SuggestSlug suggests an alternative slug when the requested one is taken
func (h *SiteHandler) SuggestSlug(c echo.Context) error {
	prometheus.RecordSiteOperation("suggest_slug")

	slug := c.QueryParam("slug")
	if slug == "" {
		return apperr.New(apperr.InvalidInput, "slug query parameter is required")
	}

	suggestion, err := h.service.SuggestAlternativeSlug(slug)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suggestion)
}

// CheckSlug reports whether a slug is available
func (h *SiteHandler) CheckSlug(c echo.Context) error {
	prometheus.RecordSiteOperation("check_slug")

	slug := c.QueryParam("slug")
	if slug == "" {
		return apperr.New(apperr.InvalidInput, "slug query parameter is required")
	}

	available, err := h.service.IsSlugAvailable(slug)
	if err != nil {
		return err
	}
	prometheus.RecordSlugCheck(available)

	return c.JSON(http.StatusOK, echo.Map{"slug": slug, "available": available})
}

// DeleteSite removes a site permanently
func (h *SiteHandler) DeleteSite(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSiteOperation("delete")

	id, err := siteID(c)
	if err != nil {
		return err
	}

	site, err := h.service.GetSiteByID(id)
	if err != nil {
		return err
	}

	if err := h.service.DeleteSite(id); err != nil {
		return err
	}

	go h.refreshOwnerSiteCount(site.OwnerID)

	log.Info("Site deleted successfully", zap.String("site_id", id.String()))
	return c.NoContent(http.StatusNoContent)
}

// refreshOwnerSiteCount updates the sites-per-owner gauge
func (h *SiteHandler) refreshOwnerSiteCount(ownerID uuid.UUID) {
	count, err := h.service.CountSitesByOwner(ownerID)
	if err != nil {
		return
	}
	prometheus.UpdateSitesPerOwner(ownerID.String(), count)
}

func siteID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.New(apperr.InvalidInput, "invalid site ID")
	}
	return id, nil
}

func queryOwnerID(c echo.Context) (uuid.UUID, error) {
	raw := c.QueryParam("ownerId")
	if raw == "" {
		return uuid.Nil, apperr.New(apperr.InvalidInput, "ownerId query parameter is required")
	}
	ownerID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.New(apperr.InvalidInput, "invalid owner ID")
	}
	return ownerID, nil
}

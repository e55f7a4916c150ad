package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/barracuda-partners/backend/pkg/api/errors"
	"github.com/barracuda-partners/backend/pkg/cache"
	"github.com/barracuda-partners/backend/pkg/conversions"
	"github.com/barracuda-partners/backend/pkg/jobs"
	"github.com/barracuda-partners/backend/pkg/metrics"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AdminConversionHandler handles the back-office conversion endpoints
type AdminConversionHandler struct {
	conversions *conversions.Service
	cache       *cache.Client
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewAdminConversionHandler creates a new admin conversion handler
func NewAdminConversionHandler(conversionsService *conversions.Service, cacheClient *cache.Client, m *metrics.Metrics) *AdminConversionHandler {
	return &AdminConversionHandler{
		conversions: conversionsService,
		cache:       cacheClient,
		metrics:     m,
		validator:   validator.New(),
	}
}

// List godoc
// @Summary List conversions
// @Description Paginated conversion listing with filters and embedded stats
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param goal_type query string false "Goal type filter"
// @Param affiliate_id query string false "Affiliate filter"
// @Param status query string false "Status filter"
// @Success 200 {object} models.ConversionListResponse "Conversions"
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Router /admin/conversions [get]
func (h *AdminConversionHandler) List(c echo.Context) error {
	var filter models.ConversionFilter
	if err := c.Bind(&filter); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid query parameters",
		})
	}

	resp, err := h.conversions.List(c.Request().Context(), filter)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Record a conversion manually
// @Description Upsert a conversion row keyed by click_id and goal_id
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ConversionCreateRequest true "Conversion data"
// @Success 200 {object} models.ConversionResponse "Conversion"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /admin/conversions [post]
func (h *AdminConversionHandler) Create(c echo.Context) error {
	var req models.ConversionCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}
	saleAmount := req.SaleAmount
	if saleAmount == 0 {
		saleAmount = req.Amount
	}

	conv, isNew, err := h.conversions.Upsert(c.Request().Context(), conversions.Record{
		ClickID:         req.ClickID,
		GoalID:          req.GoalID,
		GoalType:        req.GoalType,
		AffiliateID:     req.AffiliateID,
		OfferID:         req.OfferID,
		Amount:          req.Amount,
		SaleAmount:      saleAmount,
		Status:          status,
		Sub1:            req.Sub1,
		Sub2:            req.Sub2,
		Sub3:            req.Sub3,
		Sub4:            req.Sub4,
		Sub5:            req.Sub5,
		UserAgent:       req.UserAgent,
		IPAddress:       req.IPAddress,
		Country:         req.Country,
		Region:          req.Region,
		Source:          req.Source,
		Platform:        req.Platform,
		Browser:         req.Browser,
		OS:              req.OS,
		OSVersion:       req.OSVersion,
		Manufacturer:    req.Manufacturer,
		DeviceType:      req.DeviceType,
		IsTest:          req.IsTest,
		AdvertiserID:    req.AdvertiserID,
		OfferURLID:      req.OfferURLID,
		AffiliateSource: req.AffiliateSource,
		Metadata:        req.Metadata,
	})
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	h.metrics.RecordConversionSaved(isNew)
	h.invalidateStatsCache(c)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":     true,
		"data":        conversions.ToResponse(conv),
		"isDuplicate": !isNew,
	})
}

// Stats godoc
// @Summary Conversion dashboard stats
// @Description Aggregates for the admin dashboard, served from cache when warm
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ConversionDashboard "Dashboard aggregates"
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Router /admin/conversions/stats [get]
func (h *AdminConversionHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, jobs.ConversionStatsCacheKey); err == nil && cached != "" {
			var dashboard models.ConversionDashboard
			if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
				h.metrics.RecordCacheHit("conversion_stats")
				return c.JSON(http.StatusOK, map[string]interface{}{
					"success": true,
					"data":    dashboard,
				})
			}
		}
		h.metrics.RecordCacheMiss("conversion_stats")
	}

	dashboard, err := h.conversions.Dashboard(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	if h.cache != nil {
		if payload, err := json.Marshal(dashboard); err == nil {
			if err := h.cache.Set(ctx, jobs.ConversionStatsCacheKey, payload, statsCacheTTL); err != nil {
				log.Printf("⚠️ Failed to cache conversion stats: %v", err)
			}
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    dashboard,
	})
}

func (h *AdminConversionHandler) invalidateStatsCache(c echo.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(c.Request().Context(), jobs.ConversionStatsCacheKey); err != nil {
		log.Printf("⚠️ Failed to invalidate conversion stats cache: %v", err)
	}
}

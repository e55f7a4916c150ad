package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/barracuda-partners/backend/pkg/api/errors"
	"github.com/barracuda-partners/backend/pkg/cache"
	"github.com/barracuda-partners/backend/pkg/contacts"
	"github.com/barracuda-partners/backend/pkg/jobs"
	"github.com/barracuda-partners/backend/pkg/metrics"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/barracuda-partners/backend/pkg/storage"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const statsCacheTTL = 10 * time.Minute

// AdminContactHandler handles the back-office contact endpoints
type AdminContactHandler struct {
	contacts  *contacts.Service
	storage   *storage.Service
	cache     *cache.Client
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewAdminContactHandler creates a new admin contact handler
func NewAdminContactHandler(contactsService *contacts.Service, storageService *storage.Service, cacheClient *cache.Client, m *metrics.Metrics) *AdminContactHandler {
	return &AdminContactHandler{
		contacts:  contactsService,
		storage:   storageService,
		cache:     cacheClient,
		metrics:   m,
		validator: validator.New(),
	}
}

// List godoc
// @Summary List contacts
// @Description Paginated contact listing with filters and embedded stats
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param type query string false "Type filter"
// @Param status query string false "Status filter"
// @Param search query string false "Free-text search over name, email, company"
// @Success 200 {object} models.ContactListResponse "Contacts"
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Router /admin/contacts [get]
func (h *AdminContactHandler) List(c echo.Context) error {
	var filter models.ContactFilter
	if err := c.Bind(&filter); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid query parameters",
		})
	}

	resp, err := h.contacts.List(c.Request().Context(), filter)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Export godoc
// @Summary Export contacts
// @Description Stream the filtered contact set as CSV, or XLSX with format=xlsx
// @Tags Admin
// @Accept json
// @Produce text/csv
// @Security BearerAuth
// @Param request body models.ContactFilter true "Filters"
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file "Export file"
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Router /admin/contacts/export [post]
func (h *AdminContactHandler) Export(c echo.Context) error {
	var filter models.ContactFilter
	if err := c.Bind(&filter); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()

	rows, err := h.contacts.All(ctx, filter)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	format := c.QueryParam("format")

	var data []byte
	contentType := "text/csv"
	if format == "xlsx" {
		data, err = contacts.ExportXLSX(rows)
		if err != nil {
			return errors.InternalError(c, err)
		}
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	} else {
		format = "csv"
		data = contacts.ExportCSV(rows)
	}

	filename := contacts.ExportFilename(format)
	h.metrics.RecordExportCreated()

	if h.storage != nil {
		if _, err := h.storage.Archive(ctx, filename, data); err != nil {
			log.Printf("⚠️ Export archival failed: %v", err)
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, contentType, data)
}

// Get godoc
// @Summary Get a contact
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} models.ContactResponse "Contact"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /admin/contacts/{id} [get]
func (h *AdminContactHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid contact ID",
		})
	}

	contact, err := h.contacts.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	if contact == nil {
		return errors.NotFoundError(c, "Contact")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    contacts.ToResponse(contact),
	})
}

// Update godoc
// @Summary Update a contact
// @Description Only status, notes and affiliate_status are editable
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body models.ContactUpdateRequest true "Editable fields"
// @Success 200 {object} models.ContactResponse "Updated contact"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /admin/contacts/{id} [put]
func (h *AdminContactHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid contact ID",
		})
	}

	var req models.ContactUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	updated, err := h.contacts.Update(c.Request().Context(), id, req)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	if updated == nil {
		return errors.NotFoundError(c, "Contact")
	}

	h.invalidateStatsCache(c)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    contacts.ToResponse(updated),
	})
}

// Delete godoc
// @Summary Delete a contact
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} models.SuccessResponse "Deleted"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /admin/contacts/{id} [delete]
func (h *AdminContactHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid contact ID",
		})
	}

	deleted, err := h.contacts.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	if !deleted {
		return errors.NotFoundError(c, "Contact")
	}

	h.invalidateStatsCache(c)

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Contact deleted successfully",
	})
}

// Stats godoc
// @Summary Contact dashboard stats
// @Description Aggregates for the admin dashboard, served from cache when warm
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ContactDashboard "Dashboard aggregates"
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Router /admin/contacts/stats [get]
func (h *AdminContactHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, jobs.ContactStatsCacheKey); err == nil && cached != "" {
			var dashboard models.ContactDashboard
			if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
				h.metrics.RecordCacheHit("contact_stats")
				return c.JSON(http.StatusOK, map[string]interface{}{
					"success": true,
					"data":    dashboard,
				})
			}
		}
		h.metrics.RecordCacheMiss("contact_stats")
	}

	dashboard, err := h.contacts.Dashboard(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	if h.cache != nil {
		if payload, err := json.Marshal(dashboard); err == nil {
			if err := h.cache.Set(ctx, jobs.ContactStatsCacheKey, payload, statsCacheTTL); err != nil {
				log.Printf("⚠️ Failed to cache contact stats: %v", err)
			}
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    dashboard,
	})
}

func (h *AdminContactHandler) invalidateStatsCache(c echo.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(c.Request().Context(), jobs.ContactStatsCacheKey); err != nil {
		log.Printf("⚠️ Failed to invalidate contact stats cache: %v", err)
	}
}

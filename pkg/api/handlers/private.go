package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/barracuda-partners/backend/config"
	"github.com/barracuda-partners/backend/pkg/api/errors"
	"github.com/barracuda-partners/backend/pkg/conversions"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/barracuda-partners/backend/pkg/tracker"
	"github.com/labstack/echo/v4"
)

// PrivateHandler bridges the vendor open API and the local conversion log
type PrivateHandler struct {
	api         *tracker.PrivateAPI
	conversions *conversions.Service
	config      *config.Config
}

// NewPrivateHandler creates a new private API handler
func NewPrivateHandler(api *tracker.PrivateAPI, conversionsService *conversions.Service, cfg *config.Config) *PrivateHandler {
	return &PrivateHandler{
		api:         api,
		conversions: conversionsService,
		config:      cfg,
	}
}

// CreateConversion godoc
// @Summary Create a conversion through the vendor open API
// @Description Register the conversion with the tracking platform, then
// @Description upsert the local record with the outcome
// @Tags Private
// @Accept json
// @Produce json
// @Param request body models.PrivateConversionRequest true "Conversion data"
// @Success 200 {object} models.SuccessResponse "Conversion recorded"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /private/conversions [post]
func (h *PrivateHandler) CreateConversion(c echo.Context) error {
	var req models.PrivateConversionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if req.ClickHash == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "click_hash is required",
		})
	}
	if req.GoalTypeID == 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "goal_type_id is required",
		})
	}

	ctx := c.Request().Context()

	params := tracker.AffiliateConversionParams{
		ClickHash:  req.ClickHash,
		GoalTypeID: req.GoalTypeID,
		Unique:     req.Unique,
		IsTest:     req.IsTest,
	}
	if req.DepositAmount > 0 {
		params.DepositAmount = &req.DepositAmount
	}
	if req.SaleAmount > 0 {
		params.SaleAmount = &req.SaleAmount
	}

	apiResult, apiErr := h.api.CreateAffiliateConversion(ctx, params)
	if apiErr != nil {
		log.Printf("❌ Open API conversion failed for hash %s: %v", req.ClickHash, apiErr)
	}

	status := "pending"
	if apiErr == nil {
		status = "approved"
	}

	offerID := req.OfferID
	if offerID == "" {
		offerID = h.config.TrackerOfferID
	}

	metadata := map[string]interface{}{}
	if apiResult != nil {
		metadata["privateApiConversion"] = apiResult.Conversion
	}
	if apiErr != nil {
		metadata["apiError"] = apiErr.Error()
	}

	saleAmount := req.SaleAmount
	if saleAmount == 0 {
		saleAmount = req.DepositAmount
	}

	conv, isNew, err := h.conversions.Upsert(ctx, conversions.Record{
		ClickID:         req.ClickHash,
		ClickHash:       req.ClickHash,
		GoalID:          strconv.Itoa(req.GoalTypeID),
		GoalType:        goalTypeName(req.GoalTypeID),
		AffiliateID:     req.AffiliateID,
		OfferID:         offerID,
		Amount:          req.DepositAmount,
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
		Metadata:        metadata,
	})
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	message := "Conversion saved locally (open API failed)"
	if !isNew {
		message = "Conversion already exists, metadata updated"
	} else if apiErr == nil {
		message = "Conversion created successfully via open API"
	}

	data := map[string]interface{}{
		"id":           conv.ID,
		"click_hash":   req.ClickHash,
		"goal_type_id": req.GoalTypeID,
		"goal_type":    goalTypeName(req.GoalTypeID),
		"amount":       conv.Amount,
		"status":       string(conv.Status),
	}
	if apiResult != nil {
		data["privateApiConversion"] = apiResult.Conversion
	}
	if apiErr != nil {
		data["apiError"] = apiErr.Error()
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":     apiErr == nil,
		"message":     message,
		"data":        data,
		"isDuplicate": !isNew,
	})
}

// ListConversions godoc
// @Summary List conversions from the vendor open API
// @Description Proxy the tracking platform's paginated conversions listing
// @Tags Private
// @Produce json
// @Param affiliate_id query int false "Affiliate filter"
// @Param offer_id query int false "Offer filter"
// @Param goal_type_id query int false "Goal type filter"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} models.SuccessResponse "Conversions"
// @Failure 500 {object} models.ErrorResponse "Upstream failure"
// @Router /private/conversions [get]
func (h *PrivateHandler) ListConversions(c echo.Context) error {
	q := tracker.ConversionQuery{
		AffiliateID:   parseIntParam(c.QueryParam("affiliate_id")),
		OfferID:       parseIntParam(c.QueryParam("offer_id")),
		GoalTypeID:    parseIntParam(c.QueryParam("goal_type_id")),
		CreatedAtFrom: c.QueryParam("created_at_from"),
		CreatedAtTo:   c.QueryParam("created_at_to"),
		Page:          parseIntParam(c.QueryParam("page")),
		PerPage:       parseIntParam(c.QueryParam("per_page")),
	}
	if hash := c.QueryParam("hash"); hash != "" {
		q.Hashes = []string{hash}
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PerPage == 0 {
		q.PerPage = 50
	}

	page, err := h.api.ListConversions(c.Request().Context(), q)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    page.Data,
		"pagination": map[string]interface{}{
			"total": page.Total,
			"page":  page.Page,
			"pages": page.Pages,
		},
	})
}

func goalTypeName(goalTypeID int) string {
	switch goalTypeID {
	case tracker.GoalTypeRegistration:
		return "registration"
	case tracker.GoalTypeDeposit:
		return "deposit"
	default:
		return "other"
	}
}

func parseIntParam(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

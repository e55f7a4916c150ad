package handlers

import (
	"net/http"
	"strconv"

	"github.com/barracuda-partners/backend/config"
	"github.com/barracuda-partners/backend/pkg/api/errors"
	"github.com/barracuda-partners/backend/pkg/goals"
	"github.com/barracuda-partners/backend/pkg/metrics"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// GoalHandler relays goal postbacks to the tracking platform
type GoalHandler struct {
	goals     *goals.Service
	metrics   *metrics.Metrics
	config    *config.Config
	validator *validator.Validate
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalsService *goals.Service, m *metrics.Metrics, cfg *config.Config) *GoalHandler {
	return &GoalHandler{
		goals:     goalsService,
		metrics:   m,
		config:    cfg,
		validator: validator.New(),
	}
}

// SendPostback godoc
// @Summary Send a goal postback
// @Description Relay a registration or deposit goal to the tracking platform
// @Description and persist the conversion with the outcome
// @Tags Goals
// @Accept json
// @Produce json
// @Param request body models.GoalPostbackRequest true "Goal event"
// @Success 200 {object} models.SuccessResponse "Postback accepted"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /goals/postback [post]
func (h *GoalHandler) SendPostback(c echo.Context) error {
	var req models.GoalPostbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if req.ClickID == "" || req.AffiliateID == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "click_id and affiliate_id are required",
		})
	}
	if req.GoalType != "registration" && req.GoalType != "deposit" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: `goal_type must be "registration" or "deposit"`,
		})
	}

	result, err := h.goals.SendPostback(c.Request().Context(), req)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	h.metrics.RecordPostbackSent(req.GoalType, result.Tracker.Success)
	h.metrics.RecordConversionSaved(!result.IsDuplicate)

	message := `Goal "` + req.GoalType + `" postback failed`
	status := result.Tracker.StatusCode
	if result.Tracker.Success {
		message = `Goal "` + req.GoalType + `" postback sent successfully`
		status = http.StatusOK
	}

	return c.JSON(status, map[string]interface{}{
		"success": result.Tracker.Success,
		"message": message,
		"data": map[string]interface{}{
			"id":                 result.Conversion.ID,
			"click_id":           req.ClickID,
			"affiliate_id":       req.AffiliateID,
			"goal_id":            result.GoalID,
			"goal_type":          req.GoalType,
			"amount":             result.Conversion.Amount,
			"status":             string(result.Conversion.Status),
			"postbackResponse":   result.Tracker.Message,
			"postbackStatusCode": result.Tracker.StatusCode,
			"isDuplicate":        result.IsDuplicate,
		},
	})
}

// Config godoc
// @Summary Show the goal relay configuration
// @Description Diagnostics endpoint exposing the configured goal mapping
// @Tags Goals
// @Produce json
// @Success 200 {object} models.SuccessResponse "Configuration"
// @Router /goals/postback [get]
func (h *GoalHandler) Config(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Goals API is working",
		"config": map[string]interface{}{
			"baseUrl":          h.config.TrackerBaseURL,
			"goalRegistration": h.config.GoalRegistration,
			"goalDeposit":      h.config.GoalDeposit,
			"hashSet":          h.config.TrackerHash != "",
		},
		"usage": map[string]string{
			"registration": h.config.TrackerBaseURL + "/goal/" + h.config.GoalRegistration + "?hash=YOUR_HASH&click_id=XXX&affiliate_id=XXX",
			"deposit":      h.config.TrackerBaseURL + "/goal/" + h.config.GoalDeposit + "?hash=YOUR_HASH&click_id=XXX&affiliate_id=XXX",
		},
	})
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

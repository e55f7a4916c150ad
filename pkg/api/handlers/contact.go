package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/barracuda-partners/backend/config"
	"github.com/barracuda-partners/backend/pkg/api/errors"
	"github.com/barracuda-partners/backend/pkg/contacts"
	"github.com/barracuda-partners/backend/pkg/conversions"
	"github.com/barracuda-partners/backend/pkg/email"
	"github.com/barracuda-partners/backend/pkg/goals"
	"github.com/barracuda-partners/backend/pkg/metrics"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/barracuda-partners/backend/pkg/tracker"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ContactHandler handles the site-facing submission endpoints
type ContactHandler struct {
	contacts    *contacts.Service
	goals       *goals.Service
	conversions *conversions.Service
	tracker     *tracker.Client
	notifier    *tracker.Notifier
	email       *email.Service
	metrics     *metrics.Metrics
	config      *config.Config
	validator   *validator.Validate
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactsService *contacts.Service, goalsService *goals.Service, conversionsService *conversions.Service, trackerClient *tracker.Client, notifier *tracker.Notifier, emailService *email.Service, m *metrics.Metrics, cfg *config.Config) *ContactHandler {
	return &ContactHandler{
		contacts:    contactsService,
		goals:       goalsService,
		conversions: conversionsService,
		tracker:     trackerClient,
		notifier:    notifier,
		email:       emailService,
		metrics:     m,
		config:      cfg,
		validator:   validator.New(),
	}
}

// Submit godoc
// @Summary Submit the contact form
// @Description Create a contact from a site form submission
// @Tags Public
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact form data"
// @Success 200 {object} models.SuccessResponse "Contact created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Email already submitted"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	applyContactDefaults(&req)

	ctx := c.Request().Context()

	trackingLink := ""
	if req.Type == "affiliate" {
		trackingLink = h.tracker.OfferURL(h.config.TrackerOfferID, affiliateOfferParams(req.AffiliateID, req.URLID, req.Sub1, req.CampaignID, req.TrackingSource, req.Name, req.Email, req.Company))
	}

	created, err := h.contacts.Create(ctx, contacts.CreateInput{
		Email:          req.Email,
		Type:           req.Type,
		Name:           req.Name,
		Company:        req.Company,
		Messenger:      req.Messenger,
		Username:       req.Username,
		Message:        req.Message,
		AffiliateID:    req.AffiliateID,
		URLID:          req.URLID,
		Sub1:           req.Sub1,
		Sub2:           req.Sub2,
		Sub3:           req.Sub3,
		CampaignID:     req.CampaignID,
		TrackingSource: req.TrackingSource,
		TrackingLink:   trackingLink,
	})
	if err != nil {
		if err == contacts.ErrEmailExists {
			return errors.ConflictError(c, "Contact with this email already exists")
		}
		return errors.DatabaseError(c, err)
	}

	h.metrics.RecordContactCreated(req.Type)

	if err := h.email.NotifyNewContact(req.Name, req.Email, req.Company, req.Type); err != nil {
		log.Printf("⚠️ Contact notification email failed: %v", err)
	}

	// The original system registered and deposited every typed submission.
	// Kept behind the explicit flag so demo behavior stays separable.
	if req.Type != "" && h.config.AutoCompleteRegistrationAndFTD {
		_, _, err := h.goals.CompleteRegistrationAndDeposit(ctx, req.Sub1, req.AffiliateID, req.Sub1, req.DepositAmount)
		if err != nil {
			log.Printf("⚠️ Auto-complete pipeline failed for %s: %v", req.Email, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Contact form submitted successfully",
		"data": map[string]interface{}{
			"id":           created.ID,
			"isAffiliate":  req.Type == "affiliate",
			"trackingLink": trackingLink,
		},
	})
}

// Register godoc
// @Summary Submit the partner application form
// @Description Create a contact from the richer application form; affiliate
// @Description applications fire a background offer notification
// @Tags Public
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Application data"
// @Success 200 {object} models.SuccessResponse "Application recorded"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Email already submitted"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /register [post]
func (h *ContactHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	if req.AffiliateID == "" {
		req.AffiliateID = h.config.TrackerOfferID
	}
	if req.URLID == "" {
		req.URLID = "2"
	}
	if req.TrackingSource == "" {
		req.TrackingSource = "contact_form"
	}

	ctx := c.Request().Context()

	isAffiliate := req.Type == "affiliate"
	trackingLink := ""
	params := affiliateOfferParams(req.AffiliateID, req.URLID, req.Sub1, req.CampaignID, req.TrackingSource, req.Name, req.Email, req.Company)
	if isAffiliate {
		trackingLink = h.tracker.OfferURL(h.config.TrackerOfferID, params)
	}

	created, err := h.contacts.Create(ctx, contacts.CreateInput{
		Email:          req.Email,
		Type:           req.Type,
		Name:           req.Name,
		Company:        req.Company,
		Messenger:      req.Messenger,
		Username:       req.Username,
		Message:        req.Message,
		AffiliateID:    req.AffiliateID,
		URLID:          req.URLID,
		Sub1:           req.Sub1,
		CampaignID:     req.CampaignID,
		TrackingSource: req.TrackingSource,
		TrackingLink:   trackingLink,
	})
	if err != nil {
		if err == contacts.ErrEmailExists {
			return errors.ConflictError(c, "Contact with this email already exists")
		}
		return errors.DatabaseError(c, err)
	}

	h.metrics.RecordContactCreated(req.Type)

	if err := h.email.NotifyNewContact(req.Name, req.Email, req.Company, req.Type); err != nil {
		log.Printf("⚠️ Contact notification email failed: %v", err)
	}

	if !isAffiliate {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Contact form submitted successfully. Our team will contact you within 24 hours.",
			"data": map[string]interface{}{
				"id":          created.ID,
				"posted":      true,
				"isAffiliate": false,
			},
		})
	}

	// Fire-and-forget: the notifier's worker makes the call and its error
	// channel carries any failure to the logging drain.
	if !h.notifier.NotifyOffer(h.config.TrackerOfferID, params) {
		log.Printf("⚠️ Offer notification dropped for %s: queue full", req.Email)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Affiliate application submitted successfully",
		"data": map[string]interface{}{
			"id":              created.ID,
			"affiliatePosted": true,
			"isAffiliate":     true,
			"trackingLink":    trackingLink,
			"affiliateId":     req.AffiliateID,
			"dashboardUrl":    "https://barracuda-pp.irev.com/affiliates/en/app/dashboard",
			"note":            "Your application is under review. You will receive dashboard access within 24 hours via email.",
		},
	})
}

// FTD godoc
// @Summary Record a simulated first deposit
// @Description Fire a best-effort offer call for the deposit and answer with
// @Description the redirect URL plus a commission estimate
// @Tags Public
// @Accept json
// @Produce json
// @Param request body models.FTDRequest true "Deposit data"
// @Success 200 {object} models.SuccessResponse "Deposit recorded"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /ftd [post]
func (h *ContactHandler) FTD(c echo.Context) error {
	var req models.FTDRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	if req.URLID == "" {
		req.URLID = "2"
	}

	ctx := c.Request().Context()

	if req.Sub1 != "" {
		if _, err := h.conversions.RecordFTD(ctx, req.Sub1, req.AffiliateID, h.config.TrackerOfferID, req.DepositAmount, req.DepositAmount); err != nil {
			log.Printf("⚠️ FTD record failed for click %s: %v", req.Sub1, err)
		}
	}

	params := url.Values{}
	params.Set("affiliate_id", req.AffiliateID)
	params.Set("url_id", req.URLID)
	params.Set("deposit_amount", formatAmount(req.DepositAmount))
	if req.Sub1 != "" {
		params.Set("sub1", req.Sub1)
	}
	if !h.notifier.NotifyOffer(h.config.TrackerOfferID, params) {
		log.Printf("⚠️ FTD offer notification dropped for affiliate %s: queue full", req.AffiliateID)
	}

	redirect := url.Values{}
	redirect.Set("affiliate_id", req.AffiliateID)
	redirect.Set("url_id", req.URLID)
	redirectURL := h.tracker.OfferURL(h.config.TrackerOfferID, redirect)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "FTD simulated successfully! Your tracking has been recorded.",
		"redirectUrl": redirectURL,
		"data": map[string]interface{}{
			"ftdPosted":   true,
			"affiliateId": req.AffiliateID,
			"commission":  req.DepositAmount * 0.3,
		},
	})
}

// Postback godoc
// @Summary Receive an inbound S2S postback
// @Description Record a postback event keyed by click id and goal
// @Tags Public
// @Produce json
// @Param aff_click_id query string true "Click identifier"
// @Param goal query string true "Goal name"
// @Success 200 {object} models.SuccessResponse "Postback recorded"
// @Failure 400 {object} models.ErrorResponse "Missing parameters"
// @Router /postback [get]
func (h *ContactHandler) Postback(c echo.Context) error {
	clickID := c.QueryParam("aff_click_id")
	goal := c.QueryParam("goal")

	if clickID == "" || goal == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Missing parameters",
		})
	}
	if goal != "registration" && goal != "deposit" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: `goal must be "registration" or "deposit"`,
		})
	}

	affiliateID := c.QueryParam("affiliate_id")
	offerID := c.QueryParam("offer_id")
	amount := parseAmount(c.QueryParam("amount"))

	log.Printf("🎯 Postback received: %s for click %s", goal, clickID)

	isNew, err := h.conversions.RecordPostback(c.Request().Context(), clickID, goal, affiliateID, offerID, amount,
		c.QueryParam("sub1"), c.QueryParam("sub2"), c.QueryParam("sub3"))
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	if !isNew {
		log.Printf("⚠️ Duplicate postback for click %s goal %s", clickID, goal)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Postback for " + goal + " received.",
	})
}

func applyContactDefaults(req *models.ContactRequest) {
	if req.AffiliateID == "" {
		req.AffiliateID = "2"
	}
	if req.URLID == "" {
		req.URLID = "2"
	}
	if req.TrackingSource == "" {
		req.TrackingSource = "contact_form"
	}
}

func affiliateOfferParams(affiliateID, urlID, sub1, campaignID, source, name, email, company string) url.Values {
	params := url.Values{}
	params.Set("affiliate_id", affiliateID)
	params.Set("url_id", urlID)
	params.Set("source", source)
	if sub1 != "" {
		params.Set("sub1", sub1)
	}
	if campaignID != "" {
		params.Set("campaign_id", campaignID)
	}
	if name != "" {
		params.Set("name", name)
	}
	if email != "" {
		params.Set("email", email)
	}
	if company != "" {
		params.Set("company", company)
	}
	return params
}

package goals

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/barracuda-partners/backend/config"
	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/ent/contact"
	"github.com/barracuda-partners/backend/pkg/conversions"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/barracuda-partners/backend/pkg/tracker"
)

// Service relays goal events to the tracking platform and keeps the
// local conversion and contact records in step with the outcome.
type Service struct {
	db          *ent.Client
	tracker     *tracker.Client
	conversions *conversions.Service
	cfg         *config.Config
}

// NewService creates a new goals service
func NewService(db *ent.Client, trackerClient *tracker.Client, conversionsService *conversions.Service, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		tracker:     trackerClient,
		conversions: conversionsService,
		cfg:         cfg,
	}
}

// Result is the outcome of a relayed goal postback.
type Result struct {
	Conversion  *ent.Conversion
	Tracker     tracker.Result
	GoalID      string
	IsDuplicate bool
}

// GoalID maps a goal type to the tracker's goal identifier.
func (s *Service) GoalID(goalType string) string {
	if goalType == "registration" {
		return s.cfg.GoalRegistration
	}
	return s.cfg.GoalDeposit
}

// SendPostback relays a goal event: the tracker is called first, then the
// conversion is upserted with a status reflecting the tracker's answer.
// Local persistence happens regardless of the tracker being reachable.
func (s *Service) SendPostback(ctx context.Context, req models.GoalPostbackRequest) (*Result, error) {
	goalID := s.GoalID(req.GoalType)

	amount := req.Amount
	if amount == 0 {
		amount = req.DepositAmount
	}

	params := map[string]string{
		"sub1":      req.Sub1,
		"sub2":      req.Sub2,
		"sub3":      req.Sub3,
		"goal_type": req.GoalType,
	}
	if req.DepositAmount > 0 {
		params["deposit_amount"] = formatAmount(req.DepositAmount)
	}
	if req.Amount > 0 {
		params["amount"] = formatAmount(req.Amount)
	}
	if req.SaleAmount > 0 {
		params["sale_amount"] = formatAmount(req.SaleAmount)
	}

	trackerResult := s.tracker.SendGoal(ctx, goalID, req.ClickID, req.AffiliateID, params)
	if trackerResult.Success {
		log.Printf("✅ Goal #%s postback accepted for click %s", goalID, req.ClickID)
	} else {
		log.Printf("❌ Goal #%s postback failed for click %s: status %d", goalID, req.ClickID, trackerResult.StatusCode)
	}

	status := "pending"
	if trackerResult.Success {
		status = "approved"
	}

	offerID := req.OfferID
	if offerID == "" {
		offerID = s.cfg.TrackerOfferID
	}

	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadata["postbackResponse"] = trackerResult.Message

	saleAmount := req.SaleAmount
	if saleAmount == 0 {
		saleAmount = amount
	}

	conv, isNew, err := s.conversions.Upsert(ctx, conversions.Record{
		ClickID:         req.ClickID,
		GoalID:          goalID,
		GoalType:        req.GoalType,
		AffiliateID:     req.AffiliateID,
		OfferID:         offerID,
		Amount:          amount,
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
		return nil, err
	}

	s.propagateToContacts(ctx, req.GoalType, req.Sub1, req.AffiliateID, amount, trackerResult.Success)

	return &Result{
		Conversion:  conv,
		Tracker:     trackerResult,
		GoalID:      goalID,
		IsDuplicate: !isNew,
	}, nil
}

// CompleteRegistrationAndDeposit runs the registration goal and then the
// deposit goal for the same click. Used by the contact form when the
// auto-complete flag is enabled; the deposit amount defaults to the
// configured value when the caller passes zero.
func (s *Service) CompleteRegistrationAndDeposit(ctx context.Context, clickID, affiliateID, sub1 string, depositAmount float64) (*Result, *Result, error) {
	registration, err := s.SendPostback(ctx, models.GoalPostbackRequest{
		ClickID:     clickID,
		AffiliateID: affiliateID,
		GoalType:    "registration",
		Sub1:        sub1,
		Source:      "contact_form",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("registration goal failed: %w", err)
	}

	if depositAmount <= 0 {
		depositAmount = s.cfg.DefaultDepositAmount
	}

	deposit, err := s.SendPostback(ctx, models.GoalPostbackRequest{
		ClickID:       clickID,
		AffiliateID:   affiliateID,
		GoalType:      "deposit",
		Amount:        depositAmount,
		DepositAmount: depositAmount,
		Sub1:          sub1,
		Source:        "contact_form",
	})
	if err != nil {
		return registration, nil, fmt.Errorf("deposit goal failed: %w", err)
	}

	return registration, deposit, nil
}

// propagateToContacts reflects the goal outcome on matching contact rows.
// Failures here never fail the postback; contacts are a convenience view.
func (s *Service) propagateToContacts(ctx context.Context, goalType, sub1, affiliateID string, amount float64, success bool) {
	if sub1 != "" {
		update := s.db.Contact.Update().
			Where(contact.Sub1EQ(sub1)).
			SetUpdatedAt(time.Now())

		if goalType == "registration" {
			update.SetAffiliateRegistered(success)
		} else {
			update.SetFtd(success)
			if success {
				update.SetFtdAmount(amount)
				update.SetFtdDate(time.Now())
			}
		}

		if n, err := update.Save(ctx); err != nil {
			log.Printf("⚠️ Failed to update contacts by sub1 %q: %v", sub1, err)
		} else if n > 0 {
			log.Printf("✅ Updated %d contact(s) by sub1 %q", n, sub1)
		}
	}

	if affiliateID != "" && goalType == "deposit" {
		update := s.db.Contact.Update().
			Where(contact.AffiliateIDEQ(affiliateID)).
			SetFtd(success).
			SetUpdatedAt(time.Now())
		if success {
			update.SetFtdAmount(amount)
			update.SetFtdDate(time.Now())
		}

		if n, err := update.Save(ctx); err != nil {
			log.Printf("⚠️ Failed to update contacts by affiliate_id %q: %v", affiliateID, err)
		} else if n > 0 {
			log.Printf("✅ Updated %d contact(s) by affiliate_id %q", n, affiliateID)
		}
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/ent/contact"
	"github.com/brianvoe/gofakeit/v6"
)

// ContactGeneratorConfig configures contact generation parameters
type ContactGeneratorConfig struct {
	Count           int
	Type            string  // empty = random
	MessengerChance float64 // 0.0-1.0
	TrackingChance  float64 // probability of carrying affiliate tracking params
	FTDChance       float64 // probability of a completed first deposit
	MinDeposit      float64
	MaxDeposit      float64
}

var contactTypes = []contact.Type{
	contact.TypeAffiliate,
	contact.TypePublisher,
	contact.TypeAdvertiser,
	contact.TypeInfluencer,
	contact.TypeMediaBuyer,
	contact.TypeAgency,
	contact.TypeUser,
}

var messengers = []string{"telegram", "skype", "whatsapp", "discord"}

var trafficSources = []string{"contact_form", "landing_page", "banner", "email_campaign", "social"}

// GenerateContacts seeds the database with plausible contact rows.
// Emails are made unique with a numeric suffix so runs don't collide
// with the unique index.
func GenerateContacts(ctx context.Context, db *ent.Client, cfg ContactGeneratorConfig) ([]*ent.Contact, error) {
	if cfg.Count <= 0 {
		cfg.Count = 10
	}
	if cfg.MaxDeposit == 0 {
		cfg.MaxDeposit = 500
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := make([]*ent.Contact, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		contactType := contact.Type(cfg.Type)
		if cfg.Type == "" {
			contactType = contactTypes[rng.Intn(len(contactTypes))]
		}

		name := gofakeit.Name()
		email := fmt.Sprintf("%s+%d@%s",
			strings.ToLower(gofakeit.Username()), rng.Intn(1_000_000), gofakeit.DomainName())

		builder := db.Contact.Create().
			SetEmail(email).
			SetName(name).
			SetCompany(gofakeit.Company()).
			SetType(contactType).
			SetMessage(gofakeit.Sentence(12))

		if rng.Float64() < cfg.MessengerChance {
			builder.
				SetMessenger(messengers[rng.Intn(len(messengers))]).
				SetUsername("@" + strings.ToLower(gofakeit.Username()))
		}

		if rng.Float64() < cfg.TrackingChance {
			builder.
				SetAffiliateID(fmt.Sprintf("%d", rng.Intn(90)+10)).
				SetURLID("2").
				SetSub1(gofakeit.UUID()).
				SetCampaignID(strings.ToLower(gofakeit.Word())).
				SetTrackingSource(trafficSources[rng.Intn(len(trafficSources))])
		}

		if rng.Float64() < cfg.FTDChance {
			amount := cfg.MinDeposit + rng.Float64()*(cfg.MaxDeposit-cfg.MinDeposit)
			builder.
				SetFtd(true).
				SetFtdAmount(float64(int(amount*100)) / 100).
				SetFtdDate(gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now())).
				SetAffiliateRegistered(true)
		}

		c, err := builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return created, fmt.Errorf("failed to generate contact: %w", err)
		}
		created = append(created, c)
	}

	return created, nil
}

package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/barracuda-partners/backend/pkg/cache"
	"github.com/barracuda-partners/backend/pkg/contacts"
	"github.com/barracuda-partners/backend/pkg/conversions"
	"github.com/robfig/cron/v3"
)

// Cache keys for the dashboard warmup job.
const (
	ContactStatsCacheKey    = "stats:contacts"
	ConversionStatsCacheKey = "stats:conversions"
	statsCacheTTL           = 10 * time.Minute
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron        *cron.Cron
	contacts    *contacts.Service
	conversions *conversions.Service
	cache       *cache.Client
	logger      *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(contactsService *contacts.Service, conversionsService *conversions.Service, cacheClient *cache.Client, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:        cron.New(),
		contacts:    contactsService,
		conversions: conversionsService,
		cache:       cacheClient,
		logger:      logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Nightly at 2 AM: warm the dashboard stats cache so the first
	// admin login of the day doesn't pay for the aggregation queries.
	_, err := cm.cron.AddFunc("0 2 * * *", func() {
		cm.logger.Println("🕐 Running nightly stats warmup job...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := cm.WarmStatsCache(ctx); err != nil {
			cm.logger.Printf("❌ Stats warmup failed: %v", err)
			return
		}

		cm.logger.Println("✅ Nightly stats warmup completed")
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured")
	return nil
}

// WarmStatsCache recomputes the admin dashboard aggregates and stores
// them in redis with a short TTL.
func (cm *CronManager) WarmStatsCache(ctx context.Context) error {
	contactStats, err := cm.contacts.Dashboard(ctx)
	if err != nil {
		return err
	}
	if payload, err := json.Marshal(contactStats); err == nil {
		if err := cm.cache.Set(ctx, ContactStatsCacheKey, string(payload), statsCacheTTL); err != nil {
			cm.logger.Printf("⚠️ Failed to cache contact stats: %v", err)
		}
	}

	conversionStats, err := cm.conversions.Dashboard(ctx)
	if err != nil {
		return err
	}
	if payload, err := json.Marshal(conversionStats); err == nil {
		if err := cm.cache.Set(ctx, ConversionStatsCacheKey, string(payload), statsCacheTTL); err != nil {
			cm.logger.Printf("⚠️ Failed to cache conversion stats: %v", err)
		}
	}

	return nil
}

// Start begins running scheduled jobs
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Println("✅ Cron scheduler started")
}

// Stop halts all scheduled jobs
func (cm *CronManager) Stop() {
	cm.cron.Stop()
	cm.logger.Println("🛑 Cron scheduler stopped")
}

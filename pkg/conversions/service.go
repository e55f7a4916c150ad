package conversions

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/ent/conversion"
	"github.com/barracuda-partners/backend/ent/postback"
	"github.com/barracuda-partners/backend/pkg/models"
)

// Service handles conversion, postback and FTD persistence
type Service struct {
	db *ent.Client
}

// NewService creates a new conversion service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Record is the full set of fields for a conversion upsert.
type Record struct {
	ClickID     string
	GoalID      string
	GoalType    string
	AffiliateID string
	OfferID     string
	Amount      float64
	SaleAmount  float64
	Status      string

	Sub1 string
	Sub2 string
	Sub3 string
	Sub4 string
	Sub5 string

	UserAgent    string
	IPAddress    string
	Country      string
	Region       string
	Source       string
	Platform     string
	Browser      string
	OS           string
	OSVersion    string
	Manufacturer string
	DeviceType   string
	IsTest       bool

	ClickHash       string
	AdvertiserID    string
	OfferURLID      string
	AffiliateSource string

	Metadata map[string]interface{}
}

// Upsert writes a conversion keyed by (click_id, goal_id). A repeated pair
// refreshes the existing row instead of inserting; the duplicate signal
// comes from the unique-index violation, not from timestamps.
func (s *Service) Upsert(ctx context.Context, rec Record) (*ent.Conversion, bool, error) {
	create := s.db.Conversion.Create().
		SetClickID(rec.ClickID).
		SetGoalID(rec.GoalID).
		SetGoalType(conversion.GoalType(rec.GoalType)).
		SetAffiliateID(rec.AffiliateID).
		SetOfferID(rec.OfferID).
		SetAmount(rec.Amount).
		SetStatus(conversion.Status(rec.Status)).
		SetSub1(rec.Sub1).
		SetSub2(rec.Sub2).
		SetSub3(rec.Sub3).
		SetSub4(rec.Sub4).
		SetSub5(rec.Sub5).
		SetUserAgent(rec.UserAgent).
		SetIPAddress(rec.IPAddress).
		SetCountry(rec.Country).
		SetRegion(rec.Region).
		SetSource(rec.Source).
		SetPlatform(rec.Platform).
		SetBrowser(rec.Browser).
		SetOs(rec.OS).
		SetOsVersion(rec.OSVersion).
		SetManufacturer(rec.Manufacturer).
		SetDeviceType(rec.DeviceType).
		SetIsTest(rec.IsTest).
		SetClickHash(rec.ClickHash).
		SetAdvertiserID(rec.AdvertiserID).
		SetOfferURLID(rec.OfferURLID).
		SetAffiliateSource(rec.AffiliateSource)
	if rec.SaleAmount > 0 {
		create.SetSaleAmount(rec.SaleAmount)
	}
	if rec.Metadata != nil {
		create.SetMetadata(rec.Metadata)
	}

	conv, err := create.Save(ctx)
	if err == nil {
		return conv, true, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, false, fmt.Errorf("failed to create conversion: %w", err)
	}

	// Duplicate pair: refresh the mutable fields on the existing row.
	existing, err := s.db.Conversion.Query().
		Where(
			conversion.ClickIDEQ(rec.ClickID),
			conversion.GoalIDEQ(rec.GoalID),
		).
		Only(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load duplicate conversion: %w", err)
	}

	update := existing.Update().
		SetAmount(rec.Amount).
		SetStatus(conversion.Status(rec.Status)).
		SetUpdatedAt(time.Now())
	if rec.SaleAmount > 0 {
		update.SetSaleAmount(rec.SaleAmount)
	}
	if rec.Metadata != nil {
		update.SetMetadata(rec.Metadata)
	}
	if rec.ClickHash != "" {
		update.SetClickHash(rec.ClickHash)
	}

	conv, err = update.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update duplicate conversion: %w", err)
	}
	return conv, false, nil
}

// RecordPostback logs an inbound S2S postback. A repeated (click_id, goal)
// pair is acknowledged without writing a second row.
func (s *Service) RecordPostback(ctx context.Context, clickID, goal, affiliateID, offerID string, amount float64, sub1, sub2, sub3 string) (bool, error) {
	_, err := s.db.Postback.Create().
		SetClickID(clickID).
		SetGoal(postback.Goal(goal)).
		SetAffiliateID(affiliateID).
		SetOfferID(offerID).
		SetAmount(amount).
		SetSub1(sub1).
		SetSub2(sub2).
		SetSub3(sub3).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to record postback: %w", err)
	}
	return true, nil
}

// RecordFTD logs a first-time deposit. One row per click_id; repeats are
// acknowledged without writing.
func (s *Service) RecordFTD(ctx context.Context, clickID, affiliateID, offerID string, amount, saleAmount float64) (bool, error) {
	create := s.db.FTD.Create().
		SetClickID(clickID).
		SetAffiliateID(affiliateID).
		SetOfferID(offerID).
		SetAmount(amount)
	if saleAmount > 0 {
		create.SetSaleAmount(saleAmount)
	}

	_, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to record ftd: %w", err)
	}
	return true, nil
}

// FindClickHash looks up a previously stored hash for a click. Used as the
// fallback when the tracker's clicks endpoint is not accessible.
func (s *Service) FindClickHash(ctx context.Context, clickID string) (string, error) {
	conv, err := s.db.Conversion.Query().
		Where(
			conversion.ClickIDEQ(clickID),
			conversion.ClickHashNEQ(""),
		).
		Order(ent.Desc(conversion.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up click hash: %w", err)
	}
	return conv.ClickHash, nil
}

// List returns conversions with filters, pagination and the aggregate
// stats block the admin dashboard embeds.
func (s *Service) List(ctx context.Context, filter models.ConversionFilter) (*models.ConversionListResponse, error) {
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 50
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	query := s.db.Conversion.Query()
	if filter.GoalType != "" {
		query = query.Where(conversion.GoalTypeEQ(conversion.GoalType(filter.GoalType)))
	}
	if filter.AffiliateID != "" {
		query = query.Where(conversion.AffiliateIDEQ(filter.AffiliateID))
	}
	if filter.Status != "" {
		query = query.Where(conversion.StatusEQ(conversion.Status(filter.Status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversions: %w", err)
	}

	order := ent.Desc(conversion.FieldCreatedAt)
	if filter.SortBy != "" {
		field := conversion.FieldCreatedAt
		switch filter.SortBy {
		case "amount":
			field = conversion.FieldAmount
		case "updatedAt":
			field = conversion.FieldUpdatedAt
		}
		if filter.SortOrder == "asc" {
			order = ent.Asc(field)
		} else {
			order = ent.Desc(field)
		}
	}

	rows, err := query.
		Order(order).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}

	stats, err := s.listStats(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]models.ConversionResponse, len(rows))
	for i, row := range rows {
		data[i] = ToResponse(row)
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit
	return &models.ConversionListResponse{
		Success: true,
		Data:    data,
		Stats:   stats,
		Pagination: models.PaginationInfo{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *Service) listStats(ctx context.Context) (*models.ConversionStats, error) {
	total, err := s.db.Conversion.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversions: %w", err)
	}

	byGoalType, err := s.countByGoalType(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.countByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var sums []struct {
		Sum float64 `json:"sum"`
	}
	if err := s.db.Conversion.Query().
		Aggregate(ent.Sum(conversion.FieldAmount)).
		Scan(ctx, &sums); err != nil {
		return nil, fmt.Errorf("failed to sum conversion amounts: %w", err)
	}
	var totalAmount float64
	if len(sums) > 0 {
		totalAmount = sums[0].Sum
	}

	monthStart := startOfMonth(time.Now())
	thisMonth, err := s.db.Conversion.Query().
		Where(conversion.CreatedAtGTE(monthStart)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count this month's conversions: %w", err)
	}

	approved, err := s.db.Conversion.Query().
		Where(conversion.StatusEQ(conversion.StatusApproved)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count approved conversions: %w", err)
	}

	return &models.ConversionStats{
		Total:         total,
		ByGoalType:    byGoalType,
		ByStatus:      byStatus,
		TotalAmount:   totalAmount,
		ThisMonth:     thisMonth,
		ApprovedCount: approved,
	}, nil
}

// Dashboard builds the full admin conversion statistics payload.
func (s *Service) Dashboard(ctx context.Context) (*models.ConversionDashboard, error) {
	total, err := s.db.Conversion.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversions: %w", err)
	}

	byGoalCounts, err := s.countByGoalType(ctx)
	if err != nil {
		return nil, err
	}
	byGoalType := make(map[string]models.GoalTypeBucket, len(byGoalCounts))
	for goalType, count := range byGoalCounts {
		denominator := total
		if denominator == 0 {
			denominator = 1
		}
		byGoalType[goalType] = models.GoalTypeBucket{
			Count:      count,
			Percentage: fmt.Sprintf("%.2f", float64(count)/float64(denominator)*100),
		}
	}

	byStatus, err := s.countByStatus(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.sumAmount(ctx, s.db.Conversion.Query())
	if err != nil {
		return nil, err
	}

	approvedQuery := s.db.Conversion.Query().Where(conversion.StatusEQ(conversion.StatusApproved))
	approvedCount, err := approvedQuery.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count approved conversions: %w", err)
	}
	approvedRevenue, err := s.sumAmount(ctx, approvedQuery)
	if err != nil {
		return nil, err
	}

	monthStart := startOfMonth(time.Now())
	monthQuery := s.db.Conversion.Query().Where(conversion.CreatedAtGTE(monthStart))
	thisMonthCount, err := monthQuery.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count this month's conversions: %w", err)
	}
	thisMonthRevenue, err := s.sumAmount(ctx, monthQuery)
	if err != nil {
		return nil, err
	}

	topAffiliates, err := s.topAffiliates(ctx, 20)
	if err != nil {
		return nil, err
	}

	rate := "0.00"
	if total > 0 {
		rate = fmt.Sprintf("%.2f", float64(approvedCount)/float64(total)*100)
	}

	return &models.ConversionDashboard{
		Total:             total,
		ByGoalType:        byGoalType,
		ByStatus:          byStatus,
		TotalRevenue:      totalRevenue,
		ApprovedCount:     approvedCount,
		ApprovedRevenue:   approvedRevenue,
		ThisMonthCount:    thisMonthCount,
		ThisMonthRevenue:  thisMonthRevenue,
		TopAffiliates:     topAffiliates,
		ConversionRatePct: rate + "%",
	}, nil
}

func (s *Service) countByGoalType(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		GoalType string `json:"goal_type"`
		Count    int    `json:"count"`
	}
	if err := s.db.Conversion.Query().
		GroupBy(conversion.FieldGoalType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to group conversions by goal type: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.GoalType] = row.Count
	}
	return out, nil
}

func (s *Service) countByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := s.db.Conversion.Query().
		GroupBy(conversion.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to group conversions by status: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (s *Service) sumAmount(ctx context.Context, query *ent.ConversionQuery) (float64, error) {
	var sums []struct {
		Sum float64 `json:"sum"`
	}
	if err := query.Aggregate(ent.Sum(conversion.FieldAmount)).Scan(ctx, &sums); err != nil {
		return 0, fmt.Errorf("failed to sum conversion amounts: %w", err)
	}
	if len(sums) == 0 {
		return 0, nil
	}
	return sums[0].Sum, nil
}

func (s *Service) topAffiliates(ctx context.Context, limit int) ([]models.AffiliateTotals, error) {
	var rows []struct {
		AffiliateID string  `json:"affiliate_id"`
		Count       int     `json:"count"`
		Sum         float64 `json:"sum"`
	}
	if err := s.db.Conversion.Query().
		Where(conversion.AffiliateIDNEQ("")).
		GroupBy(conversion.FieldAffiliateID).
		Aggregate(ent.Count(), ent.Sum(conversion.FieldAmount)).
		Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to group conversions by affiliate: %w", err)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	out := make([]models.AffiliateTotals, len(rows))
	for i, row := range rows {
		out[i] = models.AffiliateTotals{
			AffiliateID: row.AffiliateID,
			Conversions: row.Count,
			Revenue:     row.Sum,
		}
	}
	return out, nil
}

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// ToResponse converts a conversion row into its API shape.
func ToResponse(c *ent.Conversion) models.ConversionResponse {
	return models.ConversionResponse{
		ID:              c.ID,
		ClickID:         c.ClickID,
		GoalID:          c.GoalID,
		GoalType:        string(c.GoalType),
		AffiliateID:     c.AffiliateID,
		OfferID:         c.OfferID,
		Amount:          c.Amount,
		SaleAmount:      c.SaleAmount,
		Status:          string(c.Status),
		Sub1:            c.Sub1,
		Sub2:            c.Sub2,
		Sub3:            c.Sub3,
		Sub4:            c.Sub4,
		Sub5:            c.Sub5,
		Country:         c.Country,
		DeviceType:      c.DeviceType,
		IsTest:          c.IsTest,
		ClickHash:       c.ClickHash,
		AffiliateSource: c.AffiliateSource,
		Metadata:        c.Metadata,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

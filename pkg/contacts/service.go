package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/ent/contact"
	"github.com/barracuda-partners/backend/ent/ftd"
	"github.com/barracuda-partners/backend/pkg/models"
	"golang.org/x/text/unicode/norm"
)

// ErrEmailExists is returned when a submission reuses a known email.
// The email uniqueness constraint is the idempotency boundary for
// user-visible submissions.
var ErrEmailExists = errors.New("contact with this email already exists")

// Service handles contact business logic
type Service struct {
	db *ent.Client
}

// NewService creates a new contact service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// CreateInput carries the fields of a new contact submission.
type CreateInput struct {
	Email          string
	Type           string
	Name           string
	Company        string
	Messenger      string
	Username       string
	Message        string
	AffiliateID    string
	URLID          string
	Sub1           string
	Sub2           string
	Sub3           string
	CampaignID     string
	TrackingSource string
	TrackingLink   string
}

// Create inserts a contact. A duplicate email surfaces as ErrEmailExists
// via the unique-index violation; nothing is written in that case.
func (s *Service) Create(ctx context.Context, in CreateInput) (*ent.Contact, error) {
	c, err := s.db.Contact.Create().
		SetEmail(in.Email).
		SetType(contact.Type(in.Type)).
		SetName(in.Name).
		SetCompany(in.Company).
		SetMessenger(in.Messenger).
		SetUsername(in.Username).
		SetMessage(in.Message).
		SetAffiliateID(in.AffiliateID).
		SetURLID(in.URLID).
		SetSub1(in.Sub1).
		SetSub2(in.Sub2).
		SetSub3(in.Sub3).
		SetCampaignID(in.CampaignID).
		SetTrackingSource(in.TrackingSource).
		SetTrackingLink(in.TrackingLink).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return c, nil
}

// GetByID fetches a single contact.
func (s *Service) GetByID(ctx context.Context, id int) (*ent.Contact, error) {
	c, err := s.db.Contact.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return c, nil
}

// Update applies the admin-editable fields. Only status, notes and
// affiliate status can change through this path.
func (s *Service) Update(ctx context.Context, id int, req models.ContactUpdateRequest) (*ent.Contact, error) {
	update := s.db.Contact.UpdateOneID(id).SetUpdatedAt(time.Now())
	if req.Status != nil {
		update.SetStatus(contact.Status(*req.Status))
	}
	if req.Notes != nil {
		update.SetNotes(*req.Notes)
	}
	if req.AffiliateStatus != nil {
		update.SetAffiliateStatus(contact.AffiliateStatus(*req.AffiliateStatus))
	}

	c, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return c, nil
}

// Delete removes a contact. Returns false when the ID is unknown.
func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	err := s.db.Contact.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete contact: %w", err)
	}
	return true, nil
}

// SetAffiliateOutcome records how the affiliate signup notification went.
func (s *Service) SetAffiliateOutcome(ctx context.Context, id int, registered bool, affiliateError string) error {
	update := s.db.Contact.UpdateOneID(id).
		SetAffiliateRegistered(registered).
		SetUpdatedAt(time.Now())
	if affiliateError != "" {
		update.SetAffiliateError(affiliateError)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to record affiliate outcome: %w", err)
	}
	return nil
}

// MarkFTD flags a contact as having completed a first deposit.
func (s *Service) MarkFTD(ctx context.Context, id int, amount float64) error {
	_, err := s.db.Contact.UpdateOneID(id).
		SetFtd(true).
		SetFtdAmount(amount).
		SetFtdDate(time.Now()).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark ftd: %w", err)
	}
	return nil
}

// List returns contacts with filters, pagination and the embedded
// aggregate stats block.
func (s *Service) List(ctx context.Context, filter models.ContactFilter) (*models.ContactListResponse, error) {
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 50
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}

	query := s.filtered(filter)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	order := ent.Desc(contact.FieldCreatedAt)
	if filter.SortBy != "" {
		field := contact.FieldCreatedAt
		switch filter.SortBy {
		case "email":
			field = contact.FieldEmail
		case "name":
			field = contact.FieldName
		case "updatedAt":
			field = contact.FieldUpdatedAt
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
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]models.ContactResponse, len(rows))
	for i, row := range rows {
		data[i] = ToResponse(row)
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit
	return &models.ContactListResponse{
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

// All returns every contact matching the filter, newest first. Used by
// the export path which has no pagination.
func (s *Service) All(ctx context.Context, filter models.ContactFilter) ([]*ent.Contact, error) {
	rows, err := s.filtered(filter).
		Order(ent.Desc(contact.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts for export: %w", err)
	}
	return rows, nil
}

func (s *Service) filtered(filter models.ContactFilter) *ent.ContactQuery {
	query := s.db.Contact.Query()
	if filter.Type != "" {
		query = query.Where(contact.TypeEQ(contact.Type(filter.Type)))
	}
	if filter.Status != "" {
		query = query.Where(contact.StatusEQ(contact.Status(filter.Status)))
	}
	if filter.Search != "" {
		term := removeAccents(strings.TrimSpace(filter.Search))
		query = query.Where(contact.Or(
			contact.NameContainsFold(term),
			contact.EmailContainsFold(term),
			contact.CompanyContainsFold(term),
		))
	}
	return query
}

// Stats computes the aggregate block embedded in admin list responses.
func (s *Service) Stats(ctx context.Context) (*models.ContactStats, error) {
	total, err := s.db.Contact.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	byType, err := s.countByType(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.countByStatus(ctx)
	if err != nil {
		return nil, err
	}
	affiliateStats, err := s.countAffiliateStatuses(ctx)
	if err != nil {
		return nil, err
	}

	monthStart := startOfMonth(time.Now())
	thisMonth, err := s.db.Contact.Query().
		Where(contact.CreatedAtGTE(monthStart)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count this month's contacts: %w", err)
	}

	ftdQuery := s.db.Contact.Query().Where(contact.FtdEQ(true))
	ftdCount, err := ftdQuery.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count ftd contacts: %w", err)
	}

	var sums []struct {
		Sum float64 `json:"sum"`
	}
	if err := ftdQuery.
		Aggregate(ent.Sum(contact.FieldFtdAmount)).
		Scan(ctx, &sums); err != nil {
		return nil, fmt.Errorf("failed to sum ftd amounts: %w", err)
	}
	var totalFtdAmount float64
	if len(sums) > 0 {
		totalFtdAmount = sums[0].Sum
	}

	return &models.ContactStats{
		Total:          total,
		ByType:         byType,
		ByStatus:       byStatus,
		AffiliateStats: affiliateStats,
		ThisMonth:      thisMonth,
		FTDCount:       ftdCount,
		TotalFTDAmount: totalFtdAmount,
	}, nil
}

// Dashboard builds the admin contact stats payload, including the
// first-deposit log totals.
func (s *Service) Dashboard(ctx context.Context) (*models.ContactDashboard, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	ftdTotal, err := s.db.FTD.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count ftds: %w", err)
	}

	var sums []struct {
		Sum float64 `json:"sum"`
	}
	if err := s.db.FTD.Query().
		Aggregate(ent.Sum(ftd.FieldAmount)).
		Scan(ctx, &sums); err != nil {
		return nil, fmt.Errorf("failed to sum ftd revenue: %w", err)
	}
	var revenue float64
	if len(sums) > 0 {
		revenue = sums[0].Sum
	}

	return &models.ContactDashboard{
		Total:          stats.Total,
		ThisMonth:      stats.ThisMonth,
		ByType:         stats.ByType,
		ByStatus:       stats.ByStatus,
		AffiliateStats: stats.AffiliateStats,
		FTD: models.FTDSummary{
			Total:   ftdTotal,
			Revenue: revenue,
		},
	}, nil
}

func (s *Service) countByType(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Type  string `json:"type"`
		Count int    `json:"count"`
	}
	if err := s.db.Contact.Query().
		GroupBy(contact.FieldType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to group contacts by type: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Type] = row.Count
	}
	return out, nil
}

func (s *Service) countByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := s.db.Contact.Query().
		GroupBy(contact.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to group contacts by status: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (s *Service) countAffiliateStatuses(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		AffiliateStatus string `json:"affiliate_status"`
		Count           int    `json:"count"`
	}
	if err := s.db.Contact.Query().
		Where(contact.TypeEQ(contact.TypeAffiliate)).
		GroupBy(contact.FieldAffiliateStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to group affiliate statuses: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.AffiliateStatus] = row.Count
	}
	return out, nil
}

// removeAccents strips diacritical marks so "José" matches "jose".
func removeAccents(s string) string {
	// NFD breaks "é" into "e" + combining acute
	t := norm.NFD.String(s)

	result := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, t)

	return norm.NFC.String(result)
}

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// ToResponse converts a contact row to its API shape.
func ToResponse(c *ent.Contact) models.ContactResponse {
	return models.ContactResponse{
		ID:                  c.ID,
		Email:               c.Email,
		Name:                c.Name,
		Company:             c.Company,
		Type:                string(c.Type),
		Status:              string(c.Status),
		AffiliateStatus:     string(c.AffiliateStatus),
		Messenger:           c.Messenger,
		Username:            c.Username,
		Message:             c.Message,
		Notes:               c.Notes,
		AffiliateID:         c.AffiliateID,
		URLID:               c.URLID,
		Sub1:                c.Sub1,
		Sub2:                c.Sub2,
		Sub3:                c.Sub3,
		CampaignID:          c.CampaignID,
		TrackingSource:      c.TrackingSource,
		TrackingLink:        c.TrackingLink,
		AffiliateRegistered: c.AffiliateRegistered,
		AffiliateError:      c.AffiliateError,
		FTD:                 c.Ftd,
		FTDAmount:           c.FtdAmount,
		FTDDate:             c.FtdDate,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

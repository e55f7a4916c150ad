package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Goal type IDs assigned by the tracking platform.
const (
	GoalTypeRegistration = 5
	GoalTypeDeposit      = 6
)

// PrivateAPI is the authenticated client for the tracking platform's
// open API. Admin-side only, never exposed to affiliates.
type PrivateAPI struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewPrivateAPI creates a client for the tracker's open API
// (e.g. https://hooplaseft.com/backend/open-api/v1).
func NewPrivateAPI(baseURL, token string, timeout time.Duration) *PrivateAPI {
	return &PrivateAPI{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Click is a click record as reported by the tracker.
type Click struct {
	ID              int    `json:"id"`
	OfferName       string `json:"offer_name"`
	OfferID         int    `json:"offer_id"`
	OfferURLID      int    `json:"offer_url_id"`
	Hash            string `json:"hash"`
	DeviceModel     string `json:"device_model"`
	DeviceBrand     string `json:"device_brand"`
	DeviceOS        string `json:"device_os"`
	DeviceOSVersion string `json:"device_os_version"`
	CountryCode     string `json:"country_code"`
	AffSub          string `json:"aff_sub"`
	AffSub2         string `json:"aff_sub2"`
	AffSub3         string `json:"aff_sub3"`
	AffSub4         string `json:"aff_sub4"`
	AffSub5         string `json:"aff_sub5"`
	AffiliateSource string `json:"affiliate_source"`
	UserAgent       string `json:"user_agent"`
	Browser         string `json:"browser"`
	CreatedAt       string `json:"created_at"`
}

// ClickPage is a paginated clicks listing.
type ClickPage struct {
	Data    []Click `json:"data"`
	Total   int     `json:"total"`
	PerPage int     `json:"per_page"`
	Page    int     `json:"page"`
	Pages   int     `json:"pages"`
}

// ConversionQuery filters a conversions listing.
type ConversionQuery struct {
	AffiliateID   int
	OfferID       int
	GoalTypeID    int
	Hashes        []string
	CreatedAtFrom string
	CreatedAtTo   string
	Page          int
	PerPage       int
}

// ConversionPage is a paginated conversions listing.
type ConversionPage struct {
	Data  []map[string]interface{} `json:"data"`
	Total int                      `json:"total"`
	Page  int                      `json:"page"`
	Pages int                      `json:"pages"`
}

// ConversionInput is a conversion to register with the tracker.
type ConversionInput struct {
	Hash          string   `json:"hash"`
	GoalTypeID    int      `json:"goal_type_id"`
	Unique        string   `json:"unique,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
	Payout        *float64 `json:"payout,omitempty"`
	Revenue       *float64 `json:"revenue,omitempty"`
	SaleAmount    *float64 `json:"sale_amount,omitempty"`
	DepositAmount *float64 `json:"deposit_amount,omitempty"`
	IsTest        bool     `json:"is_test,omitempty"`
}

// ConversionUpdate amends an existing tracker conversion by ID.
type ConversionUpdate struct {
	ID            int      `json:"id"`
	CreatedAt     string   `json:"created_at,omitempty"`
	Payout        *float64 `json:"payout,omitempty"`
	Revenue       *float64 `json:"revenue,omitempty"`
	SaleAmount    *float64 `json:"sale_amount,omitempty"`
	DepositAmount *float64 `json:"deposit_amount,omitempty"`
	IsTest        *bool    `json:"is_test,omitempty"`
}

// GoalInput configures a goal on an offer.
type GoalInput struct {
	Name                  string `json:"name"`
	EnableExtraPayout     bool   `json:"enable_extra_payout"`
	HideFromAffiliates    bool   `json:"hide_from_affiliates"`
	ConversionAutoApprove bool   `json:"conversion_auto_approve"`
	IsActive              bool   `json:"is_active"`
	IsMultipleConversion  bool   `json:"is_multiple_conversion"`
	IsUnique              bool   `json:"is_unique"`
	IsUniqueNotEmpty      bool   `json:"is_unique_not_empty"`
	TypeID                int    `json:"type_id"`
}

// ListConversions lists tracker conversions with optional filters.
func (p *PrivateAPI) ListConversions(ctx context.Context, q ConversionQuery) (*ConversionPage, error) {
	v := url.Values{}
	if q.AffiliateID > 0 {
		v.Set("affiliate_id", strconv.Itoa(q.AffiliateID))
	}
	if q.OfferID > 0 {
		v.Set("offer_id", strconv.Itoa(q.OfferID))
	}
	if q.GoalTypeID > 0 {
		v.Set("goal_type_id", strconv.Itoa(q.GoalTypeID))
	}
	if len(q.Hashes) > 0 {
		v.Set("hash", strings.Join(q.Hashes, ","))
	}
	if q.CreatedAtFrom != "" {
		v.Set("created_at_from", q.CreatedAtFrom)
	}
	if q.CreatedAtTo != "" {
		v.Set("created_at_to", q.CreatedAtTo)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}

	var page ConversionPage
	if err := p.do(ctx, http.MethodGet, "/users/conversions?"+v.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetConversion fetches a single tracker conversion by ID.
func (p *PrivateAPI) GetConversion(ctx context.Context, id int) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodGet, fmt.Sprintf("/users/conversions/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateConversions registers conversions with the tracker. The platform
// caps a single request at 100 conversions.
func (p *PrivateAPI) CreateConversions(ctx context.Context, conversions []ConversionInput) (map[string]interface{}, error) {
	if len(conversions) > 100 {
		return nil, fmt.Errorf("maximum 100 conversions per request, got %d", len(conversions))
	}

	var out map[string]interface{}
	body := map[string]interface{}{"conversions": conversions}
	if err := p.do(ctx, http.MethodPost, "/users/conversions", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateConversions amends existing tracker conversions.
func (p *PrivateAPI) UpdateConversions(ctx context.Context, updates []ConversionUpdate) (map[string]interface{}, error) {
	var out map[string]interface{}
	body := map[string]interface{}{"conversions": updates}
	if err := p.do(ctx, http.MethodPost, "/users/conversions_update", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListGoals lists the goals configured on an offer.
func (p *PrivateAPI) ListGoals(ctx context.Context, offerID int) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodGet, fmt.Sprintf("/users/offers/%d/goals", offerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetGoal fetches one goal of an offer.
func (p *PrivateAPI) GetGoal(ctx context.Context, offerID, goalID int) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodGet, fmt.Sprintf("/users/offers/%d/goals/%d", offerID, goalID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateGoal adds a goal to an offer.
func (p *PrivateAPI) CreateGoal(ctx context.Context, offerID int, goal GoalInput) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodPost, fmt.Sprintf("/users/offers/%d/goals", offerID), goal, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateGoal edits a goal on an offer.
func (p *PrivateAPI) UpdateGoal(ctx context.Context, offerID, goalID int, goal GoalInput) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodPut, fmt.Sprintf("/users/offers/%d/goals/%d", offerID, goalID), goal, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AffiliateRisks lists the risk rules attached to an affiliate.
func (p *PrivateAPI) AffiliateRisks(ctx context.Context, affiliateID int) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodGet, fmt.Sprintf("/users/affiliates/%d/risks", affiliateID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAffiliateRisk attaches a risk rule to an affiliate.
func (p *PrivateAPI) CreateAffiliateRisk(ctx context.Context, affiliateID int, risk map[string]interface{}) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodPost, fmt.Sprintf("/users/affiliates/%d/risks", affiliateID), risk, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OfferRisks lists the risk rules attached to an offer.
func (p *PrivateAPI) OfferRisks(ctx context.Context, offerID int) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodGet, fmt.Sprintf("/users/offers/%d/risks", offerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOfferRisk attaches a risk rule to an offer.
func (p *PrivateAPI) CreateOfferRisk(ctx context.Context, offerID int, risk map[string]interface{}) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodPost, fmt.Sprintf("/users/offers/%d/risks", offerID), risk, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AffiliateQualifications lists the qualification rules of an affiliate.
func (p *PrivateAPI) AffiliateQualifications(ctx context.Context, affiliateID int) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodGet, fmt.Sprintf("/users/affiliates/%d/qualifications", affiliateID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAffiliateQualification attaches a qualification rule to an affiliate.
func (p *PrivateAPI) CreateAffiliateQualification(ctx context.Context, affiliateID int, qualification map[string]interface{}) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodPost, fmt.Sprintf("/users/affiliates/%d/qualifications", affiliateID), qualification, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OfferQualifications lists the qualification rules of an offer.
func (p *PrivateAPI) OfferQualifications(ctx context.Context, offerID int) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodGet, fmt.Sprintf("/users/offers/%d/qualifications", offerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOfferQualification attaches a qualification rule to an offer.
func (p *PrivateAPI) CreateOfferQualification(ctx context.Context, offerID int, qualification map[string]interface{}) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := p.do(ctx, http.MethodPost, fmt.Sprintf("/users/offers/%d/qualifications", offerID), qualification, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListClicks lists clicks with optional filters.
func (p *PrivateAPI) ListClicks(ctx context.Context, affiliateID, offerID, page, perPage int) (*ClickPage, error) {
	v := url.Values{}
	if affiliateID > 0 {
		v.Set("affiliate_id", strconv.Itoa(affiliateID))
	}
	if offerID > 0 {
		v.Set("offer_id", strconv.Itoa(offerID))
	}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		v.Set("per_page", strconv.Itoa(perPage))
	}

	var out ClickPage
	if err := p.do(ctx, http.MethodGet, "/affiliates/clicks?"+v.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetClick finds a click by ID. The tracker has no single-click endpoint,
// so the first page of the listing is scanned.
func (p *PrivateAPI) GetClick(ctx context.Context, clickID int) (*Click, error) {
	page, err := p.ListClicks(ctx, 0, 0, 1, 200)
	if err != nil {
		return nil, err
	}
	for i := range page.Data {
		if page.Data[i].ID == clickID {
			return &page.Data[i], nil
		}
	}
	return nil, nil
}

// HashByClickID resolves the click hash needed for conversion postbacks.
// Returns "" without error when the click is not visible to us; the
// caller falls back to previously stored hashes.
func (p *PrivateAPI) HashByClickID(ctx context.Context, clickID int) (string, error) {
	click, err := p.GetClick(ctx, clickID)
	if err != nil {
		return "", err
	}
	if click == nil || click.Hash == "" {
		return "", nil
	}
	return click.Hash, nil
}

// AffiliateConversionParams describes a conversion to register on behalf
// of an affiliate signup.
type AffiliateConversionParams struct {
	ClickHash     string
	GoalTypeID    int
	DepositAmount *float64
	SaleAmount    *float64
	Unique        string
	IsTest        bool
}

// AffiliateConversionResult reports whether the conversion already existed.
type AffiliateConversionResult struct {
	Conversion  map[string]interface{} `json:"conversion"`
	IsDuplicate bool                   `json:"is_duplicate"`
}

// CreateAffiliateConversion registers a conversion unless the tracker
// already holds one for the same hash and goal type.
func (p *PrivateAPI) CreateAffiliateConversion(ctx context.Context, params AffiliateConversionParams) (*AffiliateConversionResult, error) {
	existing, err := p.ListConversions(ctx, ConversionQuery{
		Hashes:     []string{params.ClickHash},
		GoalTypeID: params.GoalTypeID,
		PerPage:    1,
	})
	if err != nil {
		return nil, err
	}
	if len(existing.Data) > 0 {
		return &AffiliateConversionResult{Conversion: existing.Data[0], IsDuplicate: true}, nil
	}

	unique := params.Unique
	if unique == "" {
		unique = "API"
	}
	result, err := p.CreateConversions(ctx, []ConversionInput{{
		Hash:          params.ClickHash,
		GoalTypeID:    params.GoalTypeID,
		Unique:        unique,
		DepositAmount: params.DepositAmount,
		SaleAmount:    params.SaleAmount,
		IsTest:        params.IsTest,
	}})
	if err != nil {
		return nil, err
	}

	out := &AffiliateConversionResult{IsDuplicate: false}
	if created, ok := result["conversions"].([]interface{}); ok && len(created) > 0 {
		if first, ok := created[0].(map[string]interface{}); ok {
			out.Conversion = first
		}
	}
	return out, nil
}

func (p *PrivateAPI) do(ctx context.Context, method, endpoint string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tracker API request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read tracker response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("tracker API error: %s", apiErr.Message)
		}
		return fmt.Errorf("tracker API request failed: %d", resp.StatusCode)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode tracker response: %w", err)
		}
	}
	return nil
}

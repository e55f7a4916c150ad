package models

import "time"

// GoalPostbackRequest is the body of POST /api/goals/postback
type GoalPostbackRequest struct {
	ClickID     string  `json:"click_id" validate:"required"`
	AffiliateID string  `json:"affiliate_id" validate:"required"`
	GoalType    string  `json:"goal_type" validate:"required,oneof=registration deposit"`
	OfferID     string  `json:"offer_id"`
	Amount      float64 `json:"amount"`
	SaleAmount  float64 `json:"sale_amount"`
	// DepositAmount is an alias for Amount kept for older callers
	DepositAmount float64 `json:"deposit_amount"`

	Sub1 string `json:"sub1"`
	Sub2 string `json:"sub2"`
	Sub3 string `json:"sub3"`
	Sub4 string `json:"sub4"`
	Sub5 string `json:"sub5"`

	UserAgent    string `json:"user_agent"`
	IPAddress    string `json:"ip_address"`
	Country      string `json:"country"`
	Region       string `json:"region"`
	Source       string `json:"source"`
	Platform     string `json:"platform"`
	Browser      string `json:"browser"`
	OS           string `json:"os"`
	OSVersion    string `json:"os_version"`
	Manufacturer string `json:"manufacturer"`
	DeviceType   string `json:"device_type"`
	IsTest       bool   `json:"is_test"`

	AdvertiserID    string `json:"advertiser_id"`
	OfferURLID      string `json:"offer_url_id"`
	AffiliateSource string `json:"affiliate_source"`

	Metadata map[string]interface{} `json:"metadata"`
}

// ConversionCreateRequest is the admin manual-conversion body
type ConversionCreateRequest struct {
	ClickID     string  `json:"click_id" validate:"required"`
	AffiliateID string  `json:"affiliate_id" validate:"required"`
	GoalID      string  `json:"goal_id" validate:"required"`
	GoalType    string  `json:"goal_type" validate:"required,oneof=registration deposit other"`
	OfferID     string  `json:"offer_id"`
	Amount      float64 `json:"amount"`
	SaleAmount  float64 `json:"sale_amount"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending approved rejected"`

	Sub1 string `json:"sub1"`
	Sub2 string `json:"sub2"`
	Sub3 string `json:"sub3"`
	Sub4 string `json:"sub4"`
	Sub5 string `json:"sub5"`

	UserAgent    string `json:"user_agent"`
	IPAddress    string `json:"ip_address"`
	Country      string `json:"country"`
	Region       string `json:"region"`
	Source       string `json:"source"`
	Platform     string `json:"platform"`
	Browser      string `json:"browser"`
	OS           string `json:"os"`
	OSVersion    string `json:"os_version"`
	Manufacturer string `json:"manufacturer"`
	DeviceType   string `json:"device_type"`
	IsTest       bool   `json:"is_test"`

	AdvertiserID    string `json:"advertiser_id"`
	OfferURLID      string `json:"offer_url_id"`
	AffiliateSource string `json:"affiliate_source"`

	Metadata map[string]interface{} `json:"metadata"`
}

// PrivateConversionRequest is the body of POST /api/private/conversions
type PrivateConversionRequest struct {
	ClickHash     string  `json:"click_hash" validate:"required"`
	GoalTypeID    int     `json:"goal_type_id" validate:"required"`
	AffiliateID   string  `json:"affiliate_id"`
	OfferID       string  `json:"offer_id"`
	DepositAmount float64 `json:"deposit_amount"`
	SaleAmount    float64 `json:"sale_amount"`
	Unique        string  `json:"unique"`
	IsTest        bool    `json:"is_test"`

	Sub1 string `json:"sub1"`
	Sub2 string `json:"sub2"`
	Sub3 string `json:"sub3"`
	Sub4 string `json:"sub4"`
	Sub5 string `json:"sub5"`

	UserAgent    string `json:"user_agent"`
	IPAddress    string `json:"ip_address"`
	Country      string `json:"country"`
	Region       string `json:"region"`
	Source       string `json:"source"`
	Platform     string `json:"platform"`
	Browser      string `json:"browser"`
	OS           string `json:"os"`
	OSVersion    string `json:"os_version"`
	Manufacturer string `json:"manufacturer"`
	DeviceType   string `json:"device_type"`

	AdvertiserID    string `json:"advertiser_id"`
	OfferURLID      string `json:"offer_url_id"`
	AffiliateSource string `json:"affiliate_source"`
}

// ConversionFilter bundles admin conversion list filters
type ConversionFilter struct {
	GoalType    string `json:"goal_type" query:"goal_type"`
	AffiliateID string `json:"affiliate_id" query:"affiliate_id"`
	Status      string `json:"status" query:"status"`
	Page        int    `json:"page" query:"page"`
	Limit       int    `json:"limit" query:"limit"`
	SortBy      string `json:"sortBy" query:"sortBy"`
	SortOrder   string `json:"sortOrder" query:"sortOrder"`
}

// ConversionResponse is the API shape of a conversion record
type ConversionResponse struct {
	ID              int                    `json:"id"`
	ClickID         string                 `json:"click_id"`
	GoalID          string                 `json:"goal_id"`
	GoalType        string                 `json:"goal_type"`
	AffiliateID     string                 `json:"affiliate_id,omitempty"`
	OfferID         string                 `json:"offer_id,omitempty"`
	Amount          float64                `json:"amount"`
	SaleAmount      float64                `json:"sale_amount,omitempty"`
	Status          string                 `json:"status"`
	Sub1            string                 `json:"sub1,omitempty"`
	Sub2            string                 `json:"sub2,omitempty"`
	Sub3            string                 `json:"sub3,omitempty"`
	Sub4            string                 `json:"sub4,omitempty"`
	Sub5            string                 `json:"sub5,omitempty"`
	Country         string                 `json:"country,omitempty"`
	DeviceType      string                 `json:"device_type,omitempty"`
	IsTest          bool                   `json:"is_test,omitempty"`
	ClickHash       string                 `json:"click_hash,omitempty"`
	AffiliateSource string                 `json:"affiliate_source,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// ConversionStats is the aggregate block for conversion lists
type ConversionStats struct {
	Total         int            `json:"total"`
	ByGoalType    map[string]int `json:"byGoalType"`
	ByStatus      map[string]int `json:"byStatus"`
	TotalAmount   float64        `json:"totalAmount"`
	ThisMonth     int            `json:"thisMonth"`
	ApprovedCount int            `json:"approvedCount"`
}

// AffiliateTotals is one row of the top-affiliates dashboard table
type AffiliateTotals struct {
	AffiliateID string  `json:"affiliate_id"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// ConversionDashboard is the full stats payload for the admin dashboard
type ConversionDashboard struct {
	Total             int                       `json:"total"`
	ByGoalType        map[string]GoalTypeBucket `json:"byGoalType"`
	ByStatus          map[string]int            `json:"byStatus"`
	TotalRevenue      float64                   `json:"totalRevenue"`
	ApprovedCount     int                       `json:"approvedConversions"`
	ApprovedRevenue   float64                   `json:"approvedRevenue"`
	ThisMonthCount    int                       `json:"thisMonthCount"`
	ThisMonthRevenue  float64                   `json:"thisMonthRevenue"`
	TopAffiliates     []AffiliateTotals         `json:"topAffiliates"`
	ConversionRatePct string                    `json:"conversionRate"`
}

// GoalTypeBucket pairs a count with its share of the total
type GoalTypeBucket struct {
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

// ConversionListResponse is the admin conversion list payload
type ConversionListResponse struct {
	Success    bool                 `json:"success"`
	Data       []ConversionResponse `json:"data"`
	Stats      *ConversionStats     `json:"stats,omitempty"`
	Pagination PaginationInfo       `json:"pagination"`
}

package models

import "time"

// ContactRequest represents a site contact-form submission
type ContactRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	Type           string  `json:"type" validate:"required,oneof=affiliate publisher advertiser influencer media_buyer agency user"`
	Name           string  `json:"name"`
	Company        string  `json:"company"`
	Messenger      string  `json:"messenger"`
	Username       string  `json:"username"`
	Message        string  `json:"message"`
	AffiliateID    string  `json:"affiliate_id"`
	URLID          string  `json:"url_id"`
	Sub1           string  `json:"sub1"`
	Sub2           string  `json:"sub2"`
	Sub3           string  `json:"sub3"`
	CampaignID     string  `json:"campaign_id"`
	TrackingSource string  `json:"trackingSource"`
	DepositAmount  float64 `json:"deposit_amount"`
}

// RegisterRequest is the richer application-form variant of ContactRequest
type RegisterRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Company        string `json:"company" validate:"required"`
	Type           string `json:"type" validate:"required,oneof=affiliate publisher advertiser influencer media_buyer agency user"`
	Messenger      string `json:"messenger"`
	Username       string `json:"username"`
	Message        string `json:"message"`
	AffiliateID    string `json:"affiliate_id"`
	URLID          string `json:"url_id"`
	Sub1           string `json:"sub1"`
	TrackingSource string `json:"trackingSource"`
	CampaignID     string `json:"campaignId"`
}

// FTDRequest represents a first-deposit postback submission
type FTDRequest struct {
	AffiliateID   string  `json:"affiliate_id" validate:"required"`
	URLID         string  `json:"url_id"`
	Sub1          string  `json:"sub1"`
	DepositAmount float64 `json:"deposit_amount" validate:"required,gt=0"`
}

// ContactUpdateRequest carries the admin-editable contact fields
type ContactUpdateRequest struct {
	Status          *string `json:"status" validate:"omitempty,oneof=new contacted qualified rejected"`
	Notes           *string `json:"notes"`
	AffiliateStatus *string `json:"affiliate_status" validate:"omitempty,oneof=pending approved rejected"`
}

// ContactFilter bundles list/export filters for admin queries
type ContactFilter struct {
	Type      string `json:"type" query:"type"`
	Status    string `json:"status" query:"status"`
	Search    string `json:"search" query:"search"`
	Page      int    `json:"page" query:"page"`
	Limit     int    `json:"limit" query:"limit"`
	SortBy    string `json:"sortBy" query:"sortBy"`
	SortOrder string `json:"sortOrder" query:"sortOrder"`
}

// ContactResponse is the API shape of a contact record
type ContactResponse struct {
	ID                  int        `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name,omitempty"`
	Company             string     `json:"company,omitempty"`
	Type                string     `json:"type"`
	Status              string     `json:"status"`
	AffiliateStatus     string     `json:"affiliate_status"`
	Messenger           string     `json:"messenger,omitempty"`
	Username            string     `json:"username,omitempty"`
	Message             string     `json:"message,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	AffiliateID         string     `json:"affiliate_id,omitempty"`
	URLID               string     `json:"url_id,omitempty"`
	Sub1                string     `json:"sub1,omitempty"`
	Sub2                string     `json:"sub2,omitempty"`
	Sub3                string     `json:"sub3,omitempty"`
	CampaignID          string     `json:"campaign_id,omitempty"`
	TrackingSource      string     `json:"tracking_source,omitempty"`
	TrackingLink        string     `json:"tracking_link,omitempty"`
	AffiliateRegistered bool       `json:"affiliateRegistered"`
	AffiliateError      string     `json:"affiliateError,omitempty"`
	FTD                 bool       `json:"ftd"`
	FTDAmount           float64    `json:"ftd_amount,omitempty"`
	FTDDate             *time.Time `json:"ftd_date,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// ContactStats is the aggregate block embedded in admin list responses
type ContactStats struct {
	Total          int            `json:"total"`
	ByType         map[string]int `json:"byType"`
	ByStatus       map[string]int `json:"byStatus"`
	AffiliateStats map[string]int `json:"affiliateStats"`
	ThisMonth      int            `json:"thisMonth"`
	FTDCount       int            `json:"ftdCount"`
	TotalFTDAmount float64        `json:"totalFtdAmount"`
}

// FTDSummary aggregates the first-deposit log
type FTDSummary struct {
	Total   int     `json:"total"`
	Revenue float64 `json:"revenue"`
}

// ContactDashboard is the payload of the admin contact stats endpoint
type ContactDashboard struct {
	Total          int            `json:"total"`
	ThisMonth      int            `json:"thisMonth"`
	ByType         map[string]int `json:"byType"`
	ByStatus       map[string]int `json:"byStatus"`
	AffiliateStats map[string]int `json:"affiliateStats"`
	FTD            FTDSummary     `json:"ftd"`
}

// ContactListResponse is the admin contact list payload
type ContactListResponse struct {
	Success    bool              `json:"success"`
	Data       []ContactResponse `json:"data"`
	Stats      *ContactStats     `json:"stats,omitempty"`
	Pagination PaginationInfo    `json:"pagination"`
}

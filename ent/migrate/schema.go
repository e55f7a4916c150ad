// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdminsColumns holds the columns for the "admins" table.
	AdminsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Default: "Admin"},
		{Name: "role", Type: field.TypeString, Default: "admin"},
		{Name: "token_hash", Type: field.TypeString, Nullable: true},
		{Name: "last_login", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AdminsTable holds the schema information for the "admins" table.
	AdminsTable = &schema.Table{
		Name:       "admins",
		Columns:    AdminsColumns,
		PrimaryKey: []*schema.Column{AdminsColumns[0]},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"affiliate", "publisher", "advertiser", "influencer", "media_buyer", "agency", "user"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "qualified", "rejected"}, Default: "new"},
		{Name: "affiliate_status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "messenger", Type: field.TypeString, Nullable: true},
		{Name: "username", Type: field.TypeString, Nullable: true},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "affiliate_id", Type: field.TypeString, Nullable: true},
		{Name: "url_id", Type: field.TypeString, Nullable: true},
		{Name: "sub1", Type: field.TypeString, Nullable: true},
		{Name: "sub2", Type: field.TypeString, Nullable: true},
		{Name: "sub3", Type: field.TypeString, Nullable: true},
		{Name: "campaign_id", Type: field.TypeString, Nullable: true},
		{Name: "tracking_source", Type: field.TypeString, Nullable: true},
		{Name: "tracking_link", Type: field.TypeString, Nullable: true},
		{Name: "affiliate_registered", Type: field.TypeBool, Default: false},
		{Name: "affiliate_error", Type: field.TypeString, Nullable: true},
		{Name: "ftd", Type: field.TypeBool, Default: false},
		{Name: "ftd_amount", Type: field.TypeFloat64, Nullable: true},
		{Name: "ftd_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contact_type",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[4]},
			},
			{
				Name:    "contact_status",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[5]},
			},
			{
				Name:    "contact_affiliate_id",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[11]},
			},
			{
				Name:    "contact_sub1",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[13]},
			},
			{
				Name:    "contact_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[24]},
			},
		},
	}
	// ConversionsColumns holds the columns for the "conversions" table.
	ConversionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "click_id", Type: field.TypeString},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "goal_type", Type: field.TypeEnum, Enums: []string{"registration", "deposit", "other"}},
		{Name: "affiliate_id", Type: field.TypeString, Nullable: true},
		{Name: "offer_id", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64, Default: 0},
		{Name: "sale_amount", Type: field.TypeFloat64, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "sub1", Type: field.TypeString, Nullable: true},
		{Name: "sub2", Type: field.TypeString, Nullable: true},
		{Name: "sub3", Type: field.TypeString, Nullable: true},
		{Name: "sub4", Type: field.TypeString, Nullable: true},
		{Name: "sub5", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "region", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "platform", Type: field.TypeString, Nullable: true},
		{Name: "browser", Type: field.TypeString, Nullable: true},
		{Name: "os", Type: field.TypeString, Nullable: true},
		{Name: "os_version", Type: field.TypeString, Nullable: true},
		{Name: "manufacturer", Type: field.TypeString, Nullable: true},
		{Name: "device_type", Type: field.TypeString, Nullable: true},
		{Name: "is_test", Type: field.TypeBool, Default: false},
		{Name: "click_hash", Type: field.TypeString, Nullable: true},
		{Name: "advertiser_id", Type: field.TypeString, Nullable: true},
		{Name: "offer_url_id", Type: field.TypeString, Nullable: true},
		{Name: "affiliate_source", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversionsTable holds the schema information for the "conversions" table.
	ConversionsTable = &schema.Table{
		Name:       "conversions",
		Columns:    ConversionsColumns,
		PrimaryKey: []*schema.Column{ConversionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversion_click_id_goal_id",
				Unique:  true,
				Columns: []*schema.Column{ConversionsColumns[1], ConversionsColumns[2]},
			},
			{
				Name:    "conversion_affiliate_id",
				Unique:  false,
				Columns: []*schema.Column{ConversionsColumns[4]},
			},
			{
				Name:    "conversion_goal_type",
				Unique:  false,
				Columns: []*schema.Column{ConversionsColumns[3]},
			},
			{
				Name:    "conversion_status",
				Unique:  false,
				Columns: []*schema.Column{ConversionsColumns[8]},
			},
			{
				Name:    "conversion_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversionsColumns[31]},
			},
		},
	}
	// FtDsColumns holds the columns for the "ft_ds" table.
	FtDsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "click_id", Type: field.TypeString, Unique: true},
		{Name: "affiliate_id", Type: field.TypeString, Nullable: true},
		{Name: "offer_id", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "sale_amount", Type: field.TypeFloat64, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "received"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FtDsTable holds the schema information for the "ft_ds" table.
	FtDsTable = &schema.Table{
		Name:       "ft_ds",
		Columns:    FtDsColumns,
		PrimaryKey: []*schema.Column{FtDsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ftd_affiliate_id",
				Unique:  false,
				Columns: []*schema.Column{FtDsColumns[2]},
			},
			{
				Name:    "ftd_created_at",
				Unique:  false,
				Columns: []*schema.Column{FtDsColumns[7]},
			},
		},
	}
	// PostbacksColumns holds the columns for the "postbacks" table.
	PostbacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "click_id", Type: field.TypeString},
		{Name: "goal", Type: field.TypeEnum, Enums: []string{"registration", "deposit"}},
		{Name: "affiliate_id", Type: field.TypeString, Nullable: true},
		{Name: "offer_id", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64, Default: 0},
		{Name: "sale_amount", Type: field.TypeFloat64, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "received"},
		{Name: "sub1", Type: field.TypeString, Nullable: true},
		{Name: "sub2", Type: field.TypeString, Nullable: true},
		{Name: "sub3", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PostbacksTable holds the schema information for the "postbacks" table.
	PostbacksTable = &schema.Table{
		Name:       "postbacks",
		Columns:    PostbacksColumns,
		PrimaryKey: []*schema.Column{PostbacksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "postback_click_id_goal",
				Unique:  true,
				Columns: []*schema.Column{PostbacksColumns[1], PostbacksColumns[2]},
			},
			{
				Name:    "postback_affiliate_id",
				Unique:  false,
				Columns: []*schema.Column{PostbacksColumns[3]},
			},
			{
				Name:    "postback_created_at",
				Unique:  false,
				Columns: []*schema.Column{PostbacksColumns[11]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdminsTable,
		ContactsTable,
		ConversionsTable,
		FtDsTable,
		PostbacksTable,
		SettingsTable,
	}
)

func init() {
}

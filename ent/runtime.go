// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/barracuda-partners/backend/ent/admin"
	"github.com/barracuda-partners/backend/ent/contact"
	"github.com/barracuda-partners/backend/ent/conversion"
	"github.com/barracuda-partners/backend/ent/ftd"
	"github.com/barracuda-partners/backend/ent/postback"
	"github.com/barracuda-partners/backend/ent/schema"
	"github.com/barracuda-partners/backend/ent/setting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adminFields := schema.Admin{}.Fields()
	_ = adminFields
	// adminDescEmail is the schema descriptor for email field.
	adminDescEmail := adminFields[0].Descriptor()
	// admin.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	admin.EmailValidator = adminDescEmail.Validators[0].(func(string) error)
	// adminDescName is the schema descriptor for name field.
	adminDescName := adminFields[2].Descriptor()
	// admin.DefaultName holds the default value on creation for the name field.
	admin.DefaultName = adminDescName.Default.(string)
	// adminDescRole is the schema descriptor for role field.
	adminDescRole := adminFields[3].Descriptor()
	// admin.DefaultRole holds the default value on creation for the role field.
	admin.DefaultRole = adminDescRole.Default.(string)
	// adminDescCreatedAt is the schema descriptor for created_at field.
	adminDescCreatedAt := adminFields[6].Descriptor()
	// admin.DefaultCreatedAt holds the default value on creation for the created_at field.
	admin.DefaultCreatedAt = adminDescCreatedAt.Default.(func() time.Time)
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescEmail is the schema descriptor for email field.
	contactDescEmail := contactFields[0].Descriptor()
	// contact.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	contact.EmailValidator = contactDescEmail.Validators[0].(func(string) error)
	// contactDescAffiliateRegistered is the schema descriptor for affiliate_registered field.
	contactDescAffiliateRegistered := contactFields[18].Descriptor()
	// contact.DefaultAffiliateRegistered holds the default value on creation for the affiliate_registered field.
	contact.DefaultAffiliateRegistered = contactDescAffiliateRegistered.Default.(bool)
	// contactDescFtd is the schema descriptor for ftd field.
	contactDescFtd := contactFields[20].Descriptor()
	// contact.DefaultFtd holds the default value on creation for the ftd field.
	contact.DefaultFtd = contactDescFtd.Default.(bool)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[23].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[24].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversionFields := schema.Conversion{}.Fields()
	_ = conversionFields
	// conversionDescClickID is the schema descriptor for click_id field.
	conversionDescClickID := conversionFields[0].Descriptor()
	// conversion.ClickIDValidator is a validator for the "click_id" field. It is called by the builders before save.
	conversion.ClickIDValidator = conversionDescClickID.Validators[0].(func(string) error)
	// conversionDescGoalID is the schema descriptor for goal_id field.
	conversionDescGoalID := conversionFields[1].Descriptor()
	// conversion.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	conversion.GoalIDValidator = conversionDescGoalID.Validators[0].(func(string) error)
	// conversionDescAmount is the schema descriptor for amount field.
	conversionDescAmount := conversionFields[5].Descriptor()
	// conversion.DefaultAmount holds the default value on creation for the amount field.
	conversion.DefaultAmount = conversionDescAmount.Default.(float64)
	// conversionDescIsTest is the schema descriptor for is_test field.
	conversionDescIsTest := conversionFields[24].Descriptor()
	// conversion.DefaultIsTest holds the default value on creation for the is_test field.
	conversion.DefaultIsTest = conversionDescIsTest.Default.(bool)
	// conversionDescCreatedAt is the schema descriptor for created_at field.
	conversionDescCreatedAt := conversionFields[30].Descriptor()
	// conversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversion.DefaultCreatedAt = conversionDescCreatedAt.Default.(func() time.Time)
	// conversionDescUpdatedAt is the schema descriptor for updated_at field.
	conversionDescUpdatedAt := conversionFields[31].Descriptor()
	// conversion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversion.DefaultUpdatedAt = conversionDescUpdatedAt.Default.(func() time.Time)
	// conversion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversion.UpdateDefaultUpdatedAt = conversionDescUpdatedAt.UpdateDefault.(func() time.Time)
	ftdFields := schema.FTD{}.Fields()
	_ = ftdFields
	// ftdDescClickID is the schema descriptor for click_id field.
	ftdDescClickID := ftdFields[0].Descriptor()
	// ftd.ClickIDValidator is a validator for the "click_id" field. It is called by the builders before save.
	ftd.ClickIDValidator = ftdDescClickID.Validators[0].(func(string) error)
	// ftdDescStatus is the schema descriptor for status field.
	ftdDescStatus := ftdFields[5].Descriptor()
	// ftd.DefaultStatus holds the default value on creation for the status field.
	ftd.DefaultStatus = ftdDescStatus.Default.(string)
	// ftdDescCreatedAt is the schema descriptor for created_at field.
	ftdDescCreatedAt := ftdFields[6].Descriptor()
	// ftd.DefaultCreatedAt holds the default value on creation for the created_at field.
	ftd.DefaultCreatedAt = ftdDescCreatedAt.Default.(func() time.Time)
	postbackFields := schema.Postback{}.Fields()
	_ = postbackFields
	// postbackDescClickID is the schema descriptor for click_id field.
	postbackDescClickID := postbackFields[0].Descriptor()
	// postback.ClickIDValidator is a validator for the "click_id" field. It is called by the builders before save.
	postback.ClickIDValidator = postbackDescClickID.Validators[0].(func(string) error)
	// postbackDescAmount is the schema descriptor for amount field.
	postbackDescAmount := postbackFields[4].Descriptor()
	// postback.DefaultAmount holds the default value on creation for the amount field.
	postback.DefaultAmount = postbackDescAmount.Default.(float64)
	// postbackDescStatus is the schema descriptor for status field.
	postbackDescStatus := postbackFields[6].Descriptor()
	// postback.DefaultStatus holds the default value on creation for the status field.
	postback.DefaultStatus = postbackDescStatus.Default.(string)
	// postbackDescCreatedAt is the schema descriptor for created_at field.
	postbackDescCreatedAt := postbackFields[10].Descriptor()
	// postback.DefaultCreatedAt holds the default value on creation for the created_at field.
	postback.DefaultCreatedAt = postbackDescCreatedAt.Default.(func() time.Time)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[2].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
}

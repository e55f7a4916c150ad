// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Admin is the predicate function for admin builders.
type Admin func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// Conversion is the predicate function for conversion builders.
type Conversion func(*sql.Selector)

// FTD is the predicate function for ftd builders.
type FTD func(*sql.Selector)

// Postback is the predicate function for postback builders.
type Postback func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ComparisonSnapshot is the predicate function for comparisonsnapshot builders.
type ComparisonSnapshot func(*sql.Selector)

// ExistingContact is the predicate function for existingcontact builders.
type ExistingContact func(*sql.Selector)

// ExtractedNumber is the predicate function for extractednumber builders.
type ExtractedNumber func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// Screenshot is the predicate function for screenshot builders.
type Screenshot func(*sql.Selector)

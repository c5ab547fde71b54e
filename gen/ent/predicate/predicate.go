// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EnrichedRecord is the predicate function for enrichedrecord builders.
type EnrichedRecord func(*sql.Selector)

// ProcessingJob is the predicate function for processingjob builders.
type ProcessingJob func(*sql.Selector)

// Upload is the predicate function for upload builders.
type Upload func(*sql.Selector)

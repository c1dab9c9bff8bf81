// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// UsageRecord is the predicate function for usagerecord builders.
type UsageRecord func(*sql.Selector)

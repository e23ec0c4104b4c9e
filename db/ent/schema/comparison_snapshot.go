package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ComparisonSnapshot keeps the aggregate outcome of each comparison run.
// Per-number verdicts are recomputed on demand and never stored.
type ComparisonSnapshot struct {
	ent.Schema
}

func (ComparisonSnapshot) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "comparison_snapshots"},
	}
}

func (ComparisonSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Int("total_extracted").NonNegative(),
		field.Int("total_contacts").NonNegative(),
		field.Int("exact_matches").NonNegative(),
		field.Int("partial_matches").NonNegative(),
		field.Int("new_numbers").NonNegative(),
		field.Int("not_compared").NonNegative(),
		field.Float("match_rate"),
		field.Time("compared_at").Default(time.Now),
	}
}

func (ComparisonSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("compared_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ExtractedNumber struct {
	ent.Schema
}

func (ExtractedNumber) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_numbers"},
	}
}

func (ExtractedNumber) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so the dedup index below can include it
		field.UUID("screenshot_id", uuid.UUID{}),
		field.String("raw_number").NotEmpty().MaxLen(50),
		// nil for rejected candidates; rows with a value are deduplicated
		// per screenshot by the unique index
		field.String("normalized_number").Optional().Nillable().MaxLen(20),
		field.String("country_code").Optional().Nillable().MaxLen(5),
		field.String("country_name").Optional().Nillable().MaxLen(100),
		field.String("carrier").Optional().Nillable().MaxLen(100),
		field.String("number_type").Optional().Nillable().MaxLen(50),
		field.Bool("is_valid").Default(false),
		field.Time("extracted_at").Default(time.Now),
	}
}

func (ExtractedNumber) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY numbers -> ONE screenshot
		edge.From("screenshot", Screenshot.Type).
			Ref("numbers").
			Field("screenshot_id").
			Required().
			Unique(),
		edge.From("groups", Group.Type).
			Ref("numbers"),
	}
}

func (ExtractedNumber) Indexes() []ent.Index {
	return []ent.Index{
		// canonical-level dedup; NULL normalized_number rows never collide
		index.Fields("screenshot_id", "normalized_number").Unique(),
		index.Fields("normalized_number"),
		index.Fields("country_code"),
		index.Fields("is_valid"),
	}
}

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

type ExistingContact struct {
	ent.Schema
}

func (ExistingContact) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "existing_contacts"},
	}
}

func (ExistingContact) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("normalized_number").NotEmpty().MaxLen(20),
		field.String("raw_number").NotEmpty().MaxLen(50),
		field.String("name").Optional().Nillable().MaxLen(255),
		field.String("email").Optional().Nillable().MaxLen(255),
		field.String("company").Optional().Nillable().MaxLen(255),
		field.String("source").Default("csv").MaxLen(100),
		field.String("external_id").Optional().Nillable().MaxLen(100),
		field.Time("imported_at").Default(time.Now),
	}
}

func (ExistingContact) Indexes() []ent.Index {
	return []ent.Index{
		// re-importing the same export updates rather than duplicates
		index.Fields("normalized_number", "source").Unique(),
		index.Fields("normalized_number"),
	}
}

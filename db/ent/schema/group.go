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

type Group struct {
	ent.Schema
}

func (Group) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "groups"},
	}
}

func (Group) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty().Unique().MaxLen(100),
		field.String("description").Optional().Nillable(),
		field.String("color").MaxLen(7),
		field.Bool("is_system").Default(false),
		field.String("country_code").Optional().Nillable().MaxLen(5),
		field.Time("created_at").Default(time.Now),
	}
}

func (Group) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY groups <-> MANY numbers
		edge.To("numbers", ExtractedNumber.Type),
	}
}

func (Group) Indexes() []ent.Index {
	return []ent.Index{
		// one system group per country
		index.Fields("country_code").
			Unique().
			Annotations(entsql.IndexWhere("is_system")),
	}
}

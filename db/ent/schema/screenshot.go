package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/reconkit/phone-recon/constants"
	"github.com/reconkit/phone-recon/db/ent/schema/utils"
)

type Screenshot struct {
	ent.Schema
}

func (Screenshot) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "screenshots"},
	}
}

func (Screenshot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty().MaxLen(255),
		field.String("file_path").NotEmpty().MaxLen(500),
		field.String("source").
			Optional().
			Nillable().
			MaxLen(50).
			Validate(utils.EnumValidator(constants.Sources()...)),
		field.String("ocr_text").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text", dialect.SQLite: "text"}),
		field.Bool("processed").Default(false),
		field.String("notes").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (Screenshot) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE screenshot -> MANY numbers; numbers die with their screenshot
		edge.To("numbers", ExtractedNumber.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Screenshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("processed"),
		index.Fields("uploaded_at"),
	}
}

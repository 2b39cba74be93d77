package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Score is one uploaded piece of sheet music and its recognition results.
type Score struct{ ent.Schema }

func (Score) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scores"},
	}
}

func (Score) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("title").NotEmpty().MaxLen(100),
		field.String("composer").Default("Anonymous").MaxLen(100),
		field.Int("year").Optional().Nillable(),
		field.String("lyrics").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("processed").Default(false),
		// analysis features (key, meter, parts, notable elements)
		field.JSON("results", json.RawMessage{}).Optional(),
		field.String("summary").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (Score) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY scores <-> MANY categories
		edge.To("categories", Category.Type),
		// ONE score -> MANY jobs (resubmission creates a fresh job)
		edge.To("jobs", ProcessingJob.Type),
	}
}

func (Score) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uploaded_at"),
	}
}

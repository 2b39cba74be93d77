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

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/db/ent/schema/utils"
)

// ProcessingJob is one asynchronous run of the score pipeline.
// Workers mutate rows only while holding the lease, and every mutation
// is a compare-and-swap on the version column.
type ProcessingJob struct{ ent.Schema }

func (ProcessingJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_jobs"},
	}
}

func (ProcessingJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("score_id", uuid.UUID{}),
		field.String("source_key").NotEmpty(),
		field.String("source_format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("stage").Default(string(constants.StageQueued)).
			Validate(utils.EnumValidator(stageStrings()...)),
		field.Int("attempt_count").Default(0).NonNegative(),
		// kind -> artifact store key; entries are write-once
		field.JSON("artifacts", map[string]string{}).Optional(),
		field.String("error_kind").Optional().Nillable(),
		field.String("error_stage").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("cancel_requested").Default(false),
		field.String("lease_owner").Optional().Nillable(),
		field.Time("lease_expires_at").Optional().Nillable(),
		field.Time("not_before").Optional().Nillable(),
		field.Int("version").Default(0).NonNegative(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ProcessingJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("score", Score.Type).
			Ref("jobs").
			Field("score_id").
			Unique().
			Required(),
	}
}

func (ProcessingJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage", "not_before", "lease_expires_at"),
		index.Fields("score_id"),
		index.Fields("created_at"),
	}
}

func stageStrings() []string {
	stages := constants.AllStages()
	out := make([]string, len(stages))
	for i, s := range stages {
		out[i] = string(s)
	}
	return out
}

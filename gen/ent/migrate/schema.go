// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100, SchemaType: map[string]string{"postgres": "text"}},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// ProcessingJobsColumns holds the columns for the "processing_jobs" table.
	ProcessingJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_key", Type: field.TypeString},
		{Name: "source_format", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString, Default: "QUEUED"},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_stage", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "lease_owner", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "not_before", Type: field.TypeTime, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "score_id", Type: field.TypeUUID},
	}
	// ProcessingJobsTable holds the schema information for the "processing_jobs" table.
	ProcessingJobsTable = &schema.Table{
		Name:       "processing_jobs",
		Columns:    ProcessingJobsColumns,
		PrimaryKey: []*schema.Column{ProcessingJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_jobs_scores_jobs",
				Columns:    []*schema.Column{ProcessingJobsColumns[16]},
				RefColumns: []*schema.Column{ScoresColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processingjob_stage_not_before_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[3], ProcessingJobsColumns[12], ProcessingJobsColumns[11]},
			},
			{
				Name:    "processingjob_score_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[16]},
			},
			{
				Name:    "processingjob_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[14]},
			},
		},
	}
	// ScoresColumns holds the columns for the "scores" table.
	ScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 100},
		{Name: "composer", Type: field.TypeString, Size: 100, Default: "Anonymous"},
		{Name: "year", Type: field.TypeInt, Nullable: true},
		{Name: "lyrics", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// ScoresTable holds the schema information for the "scores" table.
	ScoresTable = &schema.Table{
		Name:       "scores",
		Columns:    ScoresColumns,
		PrimaryKey: []*schema.Column{ScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "score_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ScoresColumns[8]},
			},
		},
	}
	// ScoreCategoriesColumns holds the columns for the "score_categories" table.
	ScoreCategoriesColumns = []*schema.Column{
		{Name: "score_id", Type: field.TypeUUID},
		{Name: "category_id", Type: field.TypeUUID},
	}
	// ScoreCategoriesTable holds the schema information for the "score_categories" table.
	ScoreCategoriesTable = &schema.Table{
		Name:       "score_categories",
		Columns:    ScoreCategoriesColumns,
		PrimaryKey: []*schema.Column{ScoreCategoriesColumns[0], ScoreCategoriesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "score_categories_score_id",
				Columns:    []*schema.Column{ScoreCategoriesColumns[0]},
				RefColumns: []*schema.Column{ScoresColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "score_categories_category_id",
				Columns:    []*schema.Column{ScoreCategoriesColumns[1]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		ProcessingJobsTable,
		ScoresTable,
		ScoreCategoriesTable,
	}
)

func init() {
	CategoriesTable.Annotation = &entsql.Annotation{
		Table: "categories",
	}
	ProcessingJobsTable.ForeignKeys[0].RefTable = ScoresTable
	ProcessingJobsTable.Annotation = &entsql.Annotation{
		Table: "processing_jobs",
	}
	ScoresTable.Annotation = &entsql.Annotation{
		Table: "scores",
	}
	ScoreCategoriesTable.ForeignKeys[0].RefTable = ScoresTable
	ScoreCategoriesTable.ForeignKeys[1].RefTable = CategoriesTable
}

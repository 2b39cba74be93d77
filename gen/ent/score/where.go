// Code generated by ent, DO NOT EDIT.

package score

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/nota-music/nota-pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldTitle, v))
}

// Composer applies equality check predicate on the "composer" field. It's identical to ComposerEQ.
func Composer(v string) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldComposer, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldYear, v))
}

// Lyrics applies equality check predicate on the "lyrics" field. It's identical to LyricsEQ.
func Lyrics(v string) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldLyrics, v))
}

// Processed applies equality check predicate on the "processed" field. It's identical to ProcessedEQ.
func Processed(v bool) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldProcessed, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldSummary, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldUploadedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Score {
	return predicate.Score(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Score {
	return predicate.Score(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Score {
	return predicate.Score(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Score {
	return predicate.Score(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Score {
	return predicate.Score(sql.FieldContainsFold(FieldTitle, v))
}

// ComposerEQ applies the EQ predicate on the "composer" field.
func ComposerEQ(v string) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldComposer, v))
}

// ComposerNEQ applies the NEQ predicate on the "composer" field.
func ComposerNEQ(v string) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldComposer, v))
}

// ComposerIn applies the In predicate on the "composer" field.
func ComposerIn(vs ...string) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldComposer, vs...))
}

// ComposerNotIn applies the NotIn predicate on the "composer" field.
func ComposerNotIn(vs ...string) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldComposer, vs...))
}

// ComposerGT applies the GT predicate on the "composer" field.
func ComposerGT(v string) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldComposer, v))
}

// ComposerGTE applies the GTE predicate on the "composer" field.
func ComposerGTE(v string) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldComposer, v))
}

// ComposerLT applies the LT predicate on the "composer" field.
func ComposerLT(v string) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldComposer, v))
}

// ComposerLTE applies the LTE predicate on the "composer" field.
func ComposerLTE(v string) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldComposer, v))
}

// ComposerContains applies the Contains predicate on the "composer" field.
func ComposerContains(v string) predicate.Score {
	return predicate.Score(sql.FieldContains(FieldComposer, v))
}

// ComposerHasPrefix applies the HasPrefix predicate on the "composer" field.
func ComposerHasPrefix(v string) predicate.Score {
	return predicate.Score(sql.FieldHasPrefix(FieldComposer, v))
}

// ComposerHasSuffix applies the HasSuffix predicate on the "composer" field.
func ComposerHasSuffix(v string) predicate.Score {
	return predicate.Score(sql.FieldHasSuffix(FieldComposer, v))
}

// ComposerEqualFold applies the EqualFold predicate on the "composer" field.
func ComposerEqualFold(v string) predicate.Score {
	return predicate.Score(sql.FieldEqualFold(FieldComposer, v))
}

// ComposerContainsFold applies the ContainsFold predicate on the "composer" field.
func ComposerContainsFold(v string) predicate.Score {
	return predicate.Score(sql.FieldContainsFold(FieldComposer, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldYear, v))
}

// YearIsNil applies the IsNil predicate on the "year" field.
func YearIsNil() predicate.Score {
	return predicate.Score(sql.FieldIsNull(FieldYear))
}

// YearNotNil applies the NotNil predicate on the "year" field.
func YearNotNil() predicate.Score {
	return predicate.Score(sql.FieldNotNull(FieldYear))
}

// LyricsEQ applies the EQ predicate on the "lyrics" field.
func LyricsEQ(v string) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldLyrics, v))
}

// LyricsNEQ applies the NEQ predicate on the "lyrics" field.
func LyricsNEQ(v string) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldLyrics, v))
}

// LyricsIn applies the In predicate on the "lyrics" field.
func LyricsIn(vs ...string) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldLyrics, vs...))
}

// LyricsNotIn applies the NotIn predicate on the "lyrics" field.
func LyricsNotIn(vs ...string) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldLyrics, vs...))
}

// LyricsGT applies the GT predicate on the "lyrics" field.
func LyricsGT(v string) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldLyrics, v))
}

// LyricsGTE applies the GTE predicate on the "lyrics" field.
func LyricsGTE(v string) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldLyrics, v))
}

// LyricsLT applies the LT predicate on the "lyrics" field.
func LyricsLT(v string) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldLyrics, v))
}

// LyricsLTE applies the LTE predicate on the "lyrics" field.
func LyricsLTE(v string) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldLyrics, v))
}

// LyricsContains applies the Contains predicate on the "lyrics" field.
func LyricsContains(v string) predicate.Score {
	return predicate.Score(sql.FieldContains(FieldLyrics, v))
}

// LyricsHasPrefix applies the HasPrefix predicate on the "lyrics" field.
func LyricsHasPrefix(v string) predicate.Score {
	return predicate.Score(sql.FieldHasPrefix(FieldLyrics, v))
}

// LyricsHasSuffix applies the HasSuffix predicate on the "lyrics" field.
func LyricsHasSuffix(v string) predicate.Score {
	return predicate.Score(sql.FieldHasSuffix(FieldLyrics, v))
}

// LyricsIsNil applies the IsNil predicate on the "lyrics" field.
func LyricsIsNil() predicate.Score {
	return predicate.Score(sql.FieldIsNull(FieldLyrics))
}

// LyricsNotNil applies the NotNil predicate on the "lyrics" field.
func LyricsNotNil() predicate.Score {
	return predicate.Score(sql.FieldNotNull(FieldLyrics))
}

// LyricsEqualFold applies the EqualFold predicate on the "lyrics" field.
func LyricsEqualFold(v string) predicate.Score {
	return predicate.Score(sql.FieldEqualFold(FieldLyrics, v))
}

// LyricsContainsFold applies the ContainsFold predicate on the "lyrics" field.
func LyricsContainsFold(v string) predicate.Score {
	return predicate.Score(sql.FieldContainsFold(FieldLyrics, v))
}

// ProcessedEQ applies the EQ predicate on the "processed" field.
func ProcessedEQ(v bool) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldProcessed, v))
}

// ProcessedNEQ applies the NEQ predicate on the "processed" field.
func ProcessedNEQ(v bool) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldProcessed, v))
}

// ResultsIsNil applies the IsNil predicate on the "results" field.
func ResultsIsNil() predicate.Score {
	return predicate.Score(sql.FieldIsNull(FieldResults))
}

// ResultsNotNil applies the NotNil predicate on the "results" field.
func ResultsNotNil() predicate.Score {
	return predicate.Score(sql.FieldNotNull(FieldResults))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Score {
	return predicate.Score(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Score {
	return predicate.Score(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Score {
	return predicate.Score(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Score {
	return predicate.Score(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Score {
	return predicate.Score(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Score {
	return predicate.Score(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Score {
	return predicate.Score(sql.FieldContainsFold(FieldSummary, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.Score {
	return predicate.Score(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.Score {
	return predicate.Score(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.Score {
	return predicate.Score(sql.FieldLTE(FieldUploadedAt, v))
}

// HasCategories applies the HasEdge predicate on the "categories" edge.
func HasCategories() predicate.Score {
	return predicate.Score(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, CategoriesTable, CategoriesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoriesWith applies the HasEdge predicate on the "categories" edge with a given conditions (other predicates).
func HasCategoriesWith(preds ...predicate.Category) predicate.Score {
	return predicate.Score(func(s *sql.Selector) {
		step := newCategoriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Score {
	return predicate.Score(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ProcessingJob) predicate.Score {
	return predicate.Score(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Score) predicate.Score {
	return predicate.Score(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Score) predicate.Score {
	return predicate.Score(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Score) predicate.Score {
	return predicate.Score(sql.NotPredicates(p))
}

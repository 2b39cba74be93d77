// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nota-music/nota-pipeline/gen/ent/category"
	"github.com/nota-music/nota-pipeline/gen/ent/predicate"
	"github.com/nota-music/nota-pipeline/gen/ent/processingjob"
	"github.com/nota-music/nota-pipeline/gen/ent/score"
)

// ScoreUpdate is the builder for updating Score entities.
type ScoreUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreMutation
}

// Where appends a list predicates to the ScoreUpdate builder.
func (_u *ScoreUpdate) Where(ps ...predicate.Score) *ScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ScoreUpdate) SetTitle(v string) *ScoreUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillableTitle(v *string) *ScoreUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetComposer sets the "composer" field.
func (_u *ScoreUpdate) SetComposer(v string) *ScoreUpdate {
	_u.mutation.SetComposer(v)
	return _u
}

// SetNillableComposer sets the "composer" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillableComposer(v *string) *ScoreUpdate {
	if v != nil {
		_u.SetComposer(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *ScoreUpdate) SetYear(v int) *ScoreUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillableYear(v *int) *ScoreUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *ScoreUpdate) AddYear(v int) *ScoreUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *ScoreUpdate) ClearYear() *ScoreUpdate {
	_u.mutation.ClearYear()
	return _u
}

// SetLyrics sets the "lyrics" field.
func (_u *ScoreUpdate) SetLyrics(v string) *ScoreUpdate {
	_u.mutation.SetLyrics(v)
	return _u
}

// SetNillableLyrics sets the "lyrics" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillableLyrics(v *string) *ScoreUpdate {
	if v != nil {
		_u.SetLyrics(*v)
	}
	return _u
}

// ClearLyrics clears the value of the "lyrics" field.
func (_u *ScoreUpdate) ClearLyrics() *ScoreUpdate {
	_u.mutation.ClearLyrics()
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *ScoreUpdate) SetProcessed(v bool) *ScoreUpdate {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillableProcessed(v *bool) *ScoreUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetResults sets the "results" field.
func (_u *ScoreUpdate) SetResults(v json.RawMessage) *ScoreUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *ScoreUpdate) AppendResults(v json.RawMessage) *ScoreUpdate {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *ScoreUpdate) ClearResults() *ScoreUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ScoreUpdate) SetSummary(v string) *ScoreUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillableSummary(v *string) *ScoreUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ScoreUpdate) ClearSummary() *ScoreUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ScoreUpdate) SetUploadedAt(v time.Time) *ScoreUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillableUploadedAt(v *time.Time) *ScoreUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (_u *ScoreUpdate) AddCategoryIDs(ids ...uuid.UUID) *ScoreUpdate {
	_u.mutation.AddCategoryIDs(ids...)
	return _u
}

// AddCategories adds the "categories" edges to the Category entity.
func (_u *ScoreUpdate) AddCategories(v ...*Category) *ScoreUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCategoryIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_u *ScoreUpdate) AddJobIDs(ids ...uuid.UUID) *ScoreUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_u *ScoreUpdate) AddJobs(v ...*ProcessingJob) *ScoreUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ScoreMutation object of the builder.
func (_u *ScoreUpdate) Mutation() *ScoreMutation {
	return _u.mutation
}

// ClearCategories clears all "categories" edges to the Category entity.
func (_u *ScoreUpdate) ClearCategories() *ScoreUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// RemoveCategoryIDs removes the "categories" edge to Category entities by IDs.
func (_u *ScoreUpdate) RemoveCategoryIDs(ids ...uuid.UUID) *ScoreUpdate {
	_u.mutation.RemoveCategoryIDs(ids...)
	return _u
}

// RemoveCategories removes "categories" edges to Category entities.
func (_u *ScoreUpdate) RemoveCategories(v ...*Category) *ScoreUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCategoryIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ProcessingJob entity.
func (_u *ScoreUpdate) ClearJobs() *ScoreUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessingJob entities by IDs.
func (_u *ScoreUpdate) RemoveJobIDs(ids ...uuid.UUID) *ScoreUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessingJob entities.
func (_u *ScoreUpdate) RemoveJobs(v ...*ProcessingJob) *ScoreUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := score.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Score.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Composer(); ok {
		if err := score.ComposerValidator(v); err != nil {
			return &ValidationError{Name: "composer", err: fmt.Errorf(`ent: validator failed for field "Score.composer": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(score.Table, score.Columns, sqlgraph.NewFieldSpec(score.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(score.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Composer(); ok {
		_spec.SetField(score.FieldComposer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(score.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(score.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(score.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Lyrics(); ok {
		_spec.SetField(score.FieldLyrics, field.TypeString, value)
	}
	if _u.mutation.LyricsCleared() {
		_spec.ClearField(score.FieldLyrics, field.TypeString)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(score.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(score.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, score.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(score.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(score.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(score.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(score.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   score.CategoriesTable,
			Columns: score.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCategoriesIDs(); len(nodes) > 0 && !_u.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   score.CategoriesTable,
			Columns: score.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   score.CategoriesTable,
			Columns: score.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   score.JobsTable,
			Columns: []string{score.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   score.JobsTable,
			Columns: []string{score.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   score.JobsTable,
			Columns: []string{score.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{score.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreUpdateOne is the builder for updating a single Score entity.
type ScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreMutation
}

// SetTitle sets the "title" field.
func (_u *ScoreUpdateOne) SetTitle(v string) *ScoreUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillableTitle(v *string) *ScoreUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetComposer sets the "composer" field.
func (_u *ScoreUpdateOne) SetComposer(v string) *ScoreUpdateOne {
	_u.mutation.SetComposer(v)
	return _u
}

// SetNillableComposer sets the "composer" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillableComposer(v *string) *ScoreUpdateOne {
	if v != nil {
		_u.SetComposer(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *ScoreUpdateOne) SetYear(v int) *ScoreUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillableYear(v *int) *ScoreUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *ScoreUpdateOne) AddYear(v int) *ScoreUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *ScoreUpdateOne) ClearYear() *ScoreUpdateOne {
	_u.mutation.ClearYear()
	return _u
}

// SetLyrics sets the "lyrics" field.
func (_u *ScoreUpdateOne) SetLyrics(v string) *ScoreUpdateOne {
	_u.mutation.SetLyrics(v)
	return _u
}

// SetNillableLyrics sets the "lyrics" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillableLyrics(v *string) *ScoreUpdateOne {
	if v != nil {
		_u.SetLyrics(*v)
	}
	return _u
}

// ClearLyrics clears the value of the "lyrics" field.
func (_u *ScoreUpdateOne) ClearLyrics() *ScoreUpdateOne {
	_u.mutation.ClearLyrics()
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *ScoreUpdateOne) SetProcessed(v bool) *ScoreUpdateOne {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillableProcessed(v *bool) *ScoreUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetResults sets the "results" field.
func (_u *ScoreUpdateOne) SetResults(v json.RawMessage) *ScoreUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *ScoreUpdateOne) AppendResults(v json.RawMessage) *ScoreUpdateOne {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *ScoreUpdateOne) ClearResults() *ScoreUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ScoreUpdateOne) SetSummary(v string) *ScoreUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillableSummary(v *string) *ScoreUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ScoreUpdateOne) ClearSummary() *ScoreUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ScoreUpdateOne) SetUploadedAt(v time.Time) *ScoreUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillableUploadedAt(v *time.Time) *ScoreUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (_u *ScoreUpdateOne) AddCategoryIDs(ids ...uuid.UUID) *ScoreUpdateOne {
	_u.mutation.AddCategoryIDs(ids...)
	return _u
}

// AddCategories adds the "categories" edges to the Category entity.
func (_u *ScoreUpdateOne) AddCategories(v ...*Category) *ScoreUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCategoryIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_u *ScoreUpdateOne) AddJobIDs(ids ...uuid.UUID) *ScoreUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_u *ScoreUpdateOne) AddJobs(v ...*ProcessingJob) *ScoreUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ScoreMutation object of the builder.
func (_u *ScoreUpdateOne) Mutation() *ScoreMutation {
	return _u.mutation
}

// ClearCategories clears all "categories" edges to the Category entity.
func (_u *ScoreUpdateOne) ClearCategories() *ScoreUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// RemoveCategoryIDs removes the "categories" edge to Category entities by IDs.
func (_u *ScoreUpdateOne) RemoveCategoryIDs(ids ...uuid.UUID) *ScoreUpdateOne {
	_u.mutation.RemoveCategoryIDs(ids...)
	return _u
}

// RemoveCategories removes "categories" edges to Category entities.
func (_u *ScoreUpdateOne) RemoveCategories(v ...*Category) *ScoreUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCategoryIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ProcessingJob entity.
func (_u *ScoreUpdateOne) ClearJobs() *ScoreUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessingJob entities by IDs.
func (_u *ScoreUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *ScoreUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessingJob entities.
func (_u *ScoreUpdateOne) RemoveJobs(v ...*ProcessingJob) *ScoreUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the ScoreUpdate builder.
func (_u *ScoreUpdateOne) Where(ps ...predicate.Score) *ScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreUpdateOne) Select(field string, fields ...string) *ScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Score entity.
func (_u *ScoreUpdateOne) Save(ctx context.Context) (*Score, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreUpdateOne) SaveX(ctx context.Context) *Score {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := score.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Score.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Composer(); ok {
		if err := score.ComposerValidator(v); err != nil {
			return &ValidationError{Name: "composer", err: fmt.Errorf(`ent: validator failed for field "Score.composer": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreUpdateOne) sqlSave(ctx context.Context) (_node *Score, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(score.Table, score.Columns, sqlgraph.NewFieldSpec(score.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Score.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, score.FieldID)
		for _, f := range fields {
			if !score.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != score.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(score.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Composer(); ok {
		_spec.SetField(score.FieldComposer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(score.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(score.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(score.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Lyrics(); ok {
		_spec.SetField(score.FieldLyrics, field.TypeString, value)
	}
	if _u.mutation.LyricsCleared() {
		_spec.ClearField(score.FieldLyrics, field.TypeString)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(score.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(score.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, score.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(score.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(score.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(score.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(score.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   score.CategoriesTable,
			Columns: score.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCategoriesIDs(); len(nodes) > 0 && !_u.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   score.CategoriesTable,
			Columns: score.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   score.CategoriesTable,
			Columns: score.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   score.JobsTable,
			Columns: []string{score.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   score.JobsTable,
			Columns: []string{score.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   score.JobsTable,
			Columns: []string{score.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Score{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{score.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nota-music/nota-pipeline/gen/ent/category"
	"github.com/nota-music/nota-pipeline/gen/ent/processingjob"
	"github.com/nota-music/nota-pipeline/gen/ent/score"
)

// ScoreCreate is the builder for creating a Score entity.
type ScoreCreate struct {
	config
	mutation *ScoreMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *ScoreCreate) SetTitle(v string) *ScoreCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetComposer sets the "composer" field.
func (_c *ScoreCreate) SetComposer(v string) *ScoreCreate {
	_c.mutation.SetComposer(v)
	return _c
}

// SetNillableComposer sets the "composer" field if the given value is not nil.
func (_c *ScoreCreate) SetNillableComposer(v *string) *ScoreCreate {
	if v != nil {
		_c.SetComposer(*v)
	}
	return _c
}

// SetYear sets the "year" field.
func (_c *ScoreCreate) SetYear(v int) *ScoreCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *ScoreCreate) SetNillableYear(v *int) *ScoreCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetLyrics sets the "lyrics" field.
func (_c *ScoreCreate) SetLyrics(v string) *ScoreCreate {
	_c.mutation.SetLyrics(v)
	return _c
}

// SetNillableLyrics sets the "lyrics" field if the given value is not nil.
func (_c *ScoreCreate) SetNillableLyrics(v *string) *ScoreCreate {
	if v != nil {
		_c.SetLyrics(*v)
	}
	return _c
}

// SetProcessed sets the "processed" field.
func (_c *ScoreCreate) SetProcessed(v bool) *ScoreCreate {
	_c.mutation.SetProcessed(v)
	return _c
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_c *ScoreCreate) SetNillableProcessed(v *bool) *ScoreCreate {
	if v != nil {
		_c.SetProcessed(*v)
	}
	return _c
}

// SetResults sets the "results" field.
func (_c *ScoreCreate) SetResults(v json.RawMessage) *ScoreCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ScoreCreate) SetSummary(v string) *ScoreCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ScoreCreate) SetNillableSummary(v *string) *ScoreCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *ScoreCreate) SetUploadedAt(v time.Time) *ScoreCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *ScoreCreate) SetNillableUploadedAt(v *time.Time) *ScoreCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScoreCreate) SetID(v uuid.UUID) *ScoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScoreCreate) SetNillableID(v *uuid.UUID) *ScoreCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (_c *ScoreCreate) AddCategoryIDs(ids ...uuid.UUID) *ScoreCreate {
	_c.mutation.AddCategoryIDs(ids...)
	return _c
}

// AddCategories adds the "categories" edges to the Category entity.
func (_c *ScoreCreate) AddCategories(v ...*Category) *ScoreCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCategoryIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_c *ScoreCreate) AddJobIDs(ids ...uuid.UUID) *ScoreCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_c *ScoreCreate) AddJobs(v ...*ProcessingJob) *ScoreCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the ScoreMutation object of the builder.
func (_c *ScoreCreate) Mutation() *ScoreMutation {
	return _c.mutation
}

// Save creates the Score in the database.
func (_c *ScoreCreate) Save(ctx context.Context) (*Score, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoreCreate) SaveX(ctx context.Context) *Score {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoreCreate) defaults() {
	if _, ok := _c.mutation.Composer(); !ok {
		v := score.DefaultComposer
		_c.mutation.SetComposer(v)
	}
	if _, ok := _c.mutation.Processed(); !ok {
		v := score.DefaultProcessed
		_c.mutation.SetProcessed(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := score.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := score.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoreCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Score.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := score.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Score.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Composer(); !ok {
		return &ValidationError{Name: "composer", err: errors.New(`ent: missing required field "Score.composer"`)}
	}
	if v, ok := _c.mutation.Composer(); ok {
		if err := score.ComposerValidator(v); err != nil {
			return &ValidationError{Name: "composer", err: fmt.Errorf(`ent: validator failed for field "Score.composer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Processed(); !ok {
		return &ValidationError{Name: "processed", err: errors.New(`ent: missing required field "Score.processed"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Score.uploaded_at"`)}
	}
	return nil
}

func (_c *ScoreCreate) sqlSave(ctx context.Context) (*Score, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScoreCreate) createSpec() (*Score, *sqlgraph.CreateSpec) {
	var (
		_node = &Score{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(score.Table, sqlgraph.NewFieldSpec(score.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(score.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Composer(); ok {
		_spec.SetField(score.FieldComposer, field.TypeString, value)
		_node.Composer = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(score.FieldYear, field.TypeInt, value)
		_node.Year = &value
	}
	if value, ok := _c.mutation.Lyrics(); ok {
		_spec.SetField(score.FieldLyrics, field.TypeString, value)
		_node.Lyrics = &value
	}
	if value, ok := _c.mutation.Processed(); ok {
		_spec.SetField(score.FieldProcessed, field.TypeBool, value)
		_node.Processed = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(score.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(score.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(score.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.CategoriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScoreCreateBulk is the builder for creating many Score entities in bulk.
type ScoreCreateBulk struct {
	config
	err      error
	builders []*ScoreCreate
}

// Save creates the Score entities in the database.
func (_c *ScoreCreateBulk) Save(ctx context.Context) ([]*Score, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Score, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoreMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScoreCreateBulk) SaveX(ctx context.Context) []*Score {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

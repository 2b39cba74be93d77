// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nota-music/nota-pipeline/gen/ent/processingjob"
	"github.com/nota-music/nota-pipeline/gen/ent/score"
)

// ProcessingJobCreate is the builder for creating a ProcessingJob entity.
type ProcessingJobCreate struct {
	config
	mutation *ProcessingJobMutation
	hooks    []Hook
}

// SetScoreID sets the "score_id" field.
func (_c *ProcessingJobCreate) SetScoreID(v uuid.UUID) *ProcessingJobCreate {
	_c.mutation.SetScoreID(v)
	return _c
}

// SetSourceKey sets the "source_key" field.
func (_c *ProcessingJobCreate) SetSourceKey(v string) *ProcessingJobCreate {
	_c.mutation.SetSourceKey(v)
	return _c
}

// SetSourceFormat sets the "source_format" field.
func (_c *ProcessingJobCreate) SetSourceFormat(v string) *ProcessingJobCreate {
	_c.mutation.SetSourceFormat(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ProcessingJobCreate) SetStage(v string) *ProcessingJobCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableStage(v *string) *ProcessingJobCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *ProcessingJobCreate) SetAttemptCount(v int) *ProcessingJobCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableAttemptCount(v *int) *ProcessingJobCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetArtifacts sets the "artifacts" field.
func (_c *ProcessingJobCreate) SetArtifacts(v map[string]string) *ProcessingJobCreate {
	_c.mutation.SetArtifacts(v)
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *ProcessingJobCreate) SetErrorKind(v string) *ProcessingJobCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableErrorKind(v *string) *ProcessingJobCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorStage sets the "error_stage" field.
func (_c *ProcessingJobCreate) SetErrorStage(v string) *ProcessingJobCreate {
	_c.mutation.SetErrorStage(v)
	return _c
}

// SetNillableErrorStage sets the "error_stage" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableErrorStage(v *string) *ProcessingJobCreate {
	if v != nil {
		_c.SetErrorStage(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProcessingJobCreate) SetErrorMessage(v string) *ProcessingJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableErrorMessage(v *string) *ProcessingJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *ProcessingJobCreate) SetCancelRequested(v bool) *ProcessingJobCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableCancelRequested(v *bool) *ProcessingJobCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetLeaseOwner sets the "lease_owner" field.
func (_c *ProcessingJobCreate) SetLeaseOwner(v string) *ProcessingJobCreate {
	_c.mutation.SetLeaseOwner(v)
	return _c
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableLeaseOwner(v *string) *ProcessingJobCreate {
	if v != nil {
		_c.SetLeaseOwner(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *ProcessingJobCreate) SetLeaseExpiresAt(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableLeaseExpiresAt(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetNotBefore sets the "not_before" field.
func (_c *ProcessingJobCreate) SetNotBefore(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetNotBefore(v)
	return _c
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableNotBefore(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetNotBefore(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProcessingJobCreate) SetVersion(v int) *ProcessingJobCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableVersion(v *int) *ProcessingJobCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessingJobCreate) SetCreatedAt(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableCreatedAt(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProcessingJobCreate) SetUpdatedAt(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableUpdatedAt(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessingJobCreate) SetID(v uuid.UUID) *ProcessingJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableID(v *uuid.UUID) *ProcessingJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetScore sets the "score" edge to the Score entity.
func (_c *ProcessingJobCreate) SetScore(v *Score) *ProcessingJobCreate {
	return _c.SetScoreID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_c *ProcessingJobCreate) Mutation() *ProcessingJobMutation {
	return _c.mutation
}

// Save creates the ProcessingJob in the database.
func (_c *ProcessingJobCreate) Save(ctx context.Context) (*ProcessingJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingJobCreate) SaveX(ctx context.Context) *ProcessingJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingJobCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := processingjob.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := processingjob.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := processingjob.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := processingjob.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processingjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := processingjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processingjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingJobCreate) check() error {
	if _, ok := _c.mutation.ScoreID(); !ok {
		return &ValidationError{Name: "score_id", err: errors.New(`ent: missing required field "ProcessingJob.score_id"`)}
	}
	if _, ok := _c.mutation.SourceKey(); !ok {
		return &ValidationError{Name: "source_key", err: errors.New(`ent: missing required field "ProcessingJob.source_key"`)}
	}
	if v, ok := _c.mutation.SourceKey(); ok {
		if err := processingjob.SourceKeyValidator(v); err != nil {
			return &ValidationError{Name: "source_key", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.source_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceFormat(); !ok {
		return &ValidationError{Name: "source_format", err: errors.New(`ent: missing required field "ProcessingJob.source_format"`)}
	}
	if v, ok := _c.mutation.SourceFormat(); ok {
		if err := processingjob.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.source_format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ProcessingJob.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := processingjob.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "ProcessingJob.attempt_count"`)}
	}
	if v, ok := _c.mutation.AttemptCount(); ok {
		if err := processingjob.AttemptCountValidator(v); err != nil {
			return &ValidationError{Name: "attempt_count", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.attempt_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "ProcessingJob.cancel_requested"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ProcessingJob.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := processingjob.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessingJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProcessingJob.updated_at"`)}
	}
	if len(_c.mutation.ScoreIDs()) == 0 {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required edge "ProcessingJob.score"`)}
	}
	return nil
}

func (_c *ProcessingJobCreate) sqlSave(ctx context.Context) (*ProcessingJob, error) {
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

func (_c *ProcessingJobCreate) createSpec() (*ProcessingJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processingjob.Table, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourceKey(); ok {
		_spec.SetField(processingjob.FieldSourceKey, field.TypeString, value)
		_node.SourceKey = value
	}
	if value, ok := _c.mutation.SourceFormat(); ok {
		_spec.SetField(processingjob.FieldSourceFormat, field.TypeString, value)
		_node.SourceFormat = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(processingjob.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(processingjob.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.Artifacts(); ok {
		_spec.SetField(processingjob.FieldArtifacts, field.TypeJSON, value)
		_node.Artifacts = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(processingjob.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorStage(); ok {
		_spec.SetField(processingjob.FieldErrorStage, field.TypeString, value)
		_node.ErrorStage = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(processingjob.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.LeaseOwner(); ok {
		_spec.SetField(processingjob.FieldLeaseOwner, field.TypeString, value)
		_node.LeaseOwner = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(processingjob.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.NotBefore(); ok {
		_spec.SetField(processingjob.FieldNotBefore, field.TypeTime, value)
		_node.NotBefore = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(processingjob.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processingjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(processingjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ScoreIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.ScoreTable,
			Columns: []string{processingjob.ScoreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(score.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ScoreID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessingJobCreateBulk is the builder for creating many ProcessingJob entities in bulk.
type ProcessingJobCreateBulk struct {
	config
	err      error
	builders []*ProcessingJobCreate
}

// Save creates the ProcessingJob entities in the database.
func (_c *ProcessingJobCreateBulk) Save(ctx context.Context) ([]*ProcessingJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingJobMutation)
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
func (_c *ProcessingJobCreateBulk) SaveX(ctx context.Context) []*ProcessingJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

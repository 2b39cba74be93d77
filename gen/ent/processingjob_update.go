// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nota-music/nota-pipeline/gen/ent/predicate"
	"github.com/nota-music/nota-pipeline/gen/ent/processingjob"
	"github.com/nota-music/nota-pipeline/gen/ent/score"
)

// ProcessingJobUpdate is the builder for updating ProcessingJob entities.
type ProcessingJobUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdate) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScoreID sets the "score_id" field.
func (_u *ProcessingJobUpdate) SetScoreID(v uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetScoreID(v)
	return _u
}

// SetNillableScoreID sets the "score_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableScoreID(v *uuid.UUID) *ProcessingJobUpdate {
	if v != nil {
		_u.SetScoreID(*v)
	}
	return _u
}

// SetSourceKey sets the "source_key" field.
func (_u *ProcessingJobUpdate) SetSourceKey(v string) *ProcessingJobUpdate {
	_u.mutation.SetSourceKey(v)
	return _u
}

// SetNillableSourceKey sets the "source_key" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableSourceKey(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetSourceKey(*v)
	}
	return _u
}

// SetSourceFormat sets the "source_format" field.
func (_u *ProcessingJobUpdate) SetSourceFormat(v string) *ProcessingJobUpdate {
	_u.mutation.SetSourceFormat(v)
	return _u
}

// SetNillableSourceFormat sets the "source_format" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableSourceFormat(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetSourceFormat(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ProcessingJobUpdate) SetStage(v string) *ProcessingJobUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableStage(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *ProcessingJobUpdate) SetAttemptCount(v int) *ProcessingJobUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableAttemptCount(v *int) *ProcessingJobUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *ProcessingJobUpdate) AddAttemptCount(v int) *ProcessingJobUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *ProcessingJobUpdate) SetArtifacts(v map[string]string) *ProcessingJobUpdate {
	_u.mutation.SetArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *ProcessingJobUpdate) ClearArtifacts() *ProcessingJobUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ProcessingJobUpdate) SetErrorKind(v string) *ProcessingJobUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableErrorKind(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ProcessingJobUpdate) ClearErrorKind() *ProcessingJobUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorStage sets the "error_stage" field.
func (_u *ProcessingJobUpdate) SetErrorStage(v string) *ProcessingJobUpdate {
	_u.mutation.SetErrorStage(v)
	return _u
}

// SetNillableErrorStage sets the "error_stage" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableErrorStage(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetErrorStage(*v)
	}
	return _u
}

// ClearErrorStage clears the value of the "error_stage" field.
func (_u *ProcessingJobUpdate) ClearErrorStage() *ProcessingJobUpdate {
	_u.mutation.ClearErrorStage()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingJobUpdate) SetErrorMessage(v string) *ProcessingJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableErrorMessage(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingJobUpdate) ClearErrorMessage() *ProcessingJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *ProcessingJobUpdate) SetCancelRequested(v bool) *ProcessingJobUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableCancelRequested(v *bool) *ProcessingJobUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *ProcessingJobUpdate) SetLeaseOwner(v string) *ProcessingJobUpdate {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableLeaseOwner(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *ProcessingJobUpdate) ClearLeaseOwner() *ProcessingJobUpdate {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *ProcessingJobUpdate) SetLeaseExpiresAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableLeaseExpiresAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *ProcessingJobUpdate) ClearLeaseExpiresAt() *ProcessingJobUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetNotBefore sets the "not_before" field.
func (_u *ProcessingJobUpdate) SetNotBefore(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetNotBefore(v)
	return _u
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableNotBefore(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetNotBefore(*v)
	}
	return _u
}

// ClearNotBefore clears the value of the "not_before" field.
func (_u *ProcessingJobUpdate) ClearNotBefore() *ProcessingJobUpdate {
	_u.mutation.ClearNotBefore()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProcessingJobUpdate) SetVersion(v int) *ProcessingJobUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableVersion(v *int) *ProcessingJobUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProcessingJobUpdate) AddVersion(v int) *ProcessingJobUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessingJobUpdate) SetUpdatedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScore sets the "score" edge to the Score entity.
func (_u *ProcessingJobUpdate) SetScore(v *Score) *ProcessingJobUpdate {
	return _u.SetScoreID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdate) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// ClearScore clears the "score" edge to the Score entity.
func (_u *ProcessingJobUpdate) ClearScore() *ProcessingJobUpdate {
	_u.mutation.ClearScore()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessingJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processingjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdate) check() error {
	if v, ok := _u.mutation.SourceKey(); ok {
		if err := processingjob.SourceKeyValidator(v); err != nil {
			return &ValidationError{Name: "source_key", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.source_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFormat(); ok {
		if err := processingjob.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.source_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := processingjob.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptCount(); ok {
		if err := processingjob.AttemptCountValidator(v); err != nil {
			return &ValidationError{Name: "attempt_count", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.attempt_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := processingjob.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.version": %w`, err)}
		}
	}
	if _u.mutation.ScoreCleared() && len(_u.mutation.ScoreIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingJob.score"`)
	}
	return nil
}

func (_u *ProcessingJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceKey(); ok {
		_spec.SetField(processingjob.FieldSourceKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFormat(); ok {
		_spec.SetField(processingjob.FieldSourceFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(processingjob.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(processingjob.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(processingjob.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(processingjob.FieldArtifacts, field.TypeJSON, value)
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(processingjob.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(processingjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(processingjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorStage(); ok {
		_spec.SetField(processingjob.FieldErrorStage, field.TypeString, value)
	}
	if _u.mutation.ErrorStageCleared() {
		_spec.ClearField(processingjob.FieldErrorStage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processingjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(processingjob.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(processingjob.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(processingjob.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(processingjob.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(processingjob.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NotBefore(); ok {
		_spec.SetField(processingjob.FieldNotBefore, field.TypeTime, value)
	}
	if _u.mutation.NotBeforeCleared() {
		_spec.ClearField(processingjob.FieldNotBefore, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(processingjob.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(processingjob.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processingjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ScoreCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoreIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingJobUpdateOne is the builder for updating a single ProcessingJob entity.
type ProcessingJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// SetScoreID sets the "score_id" field.
func (_u *ProcessingJobUpdateOne) SetScoreID(v uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetScoreID(v)
	return _u
}

// SetNillableScoreID sets the "score_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableScoreID(v *uuid.UUID) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetScoreID(*v)
	}
	return _u
}

// SetSourceKey sets the "source_key" field.
func (_u *ProcessingJobUpdateOne) SetSourceKey(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetSourceKey(v)
	return _u
}

// SetNillableSourceKey sets the "source_key" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableSourceKey(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetSourceKey(*v)
	}
	return _u
}

// SetSourceFormat sets the "source_format" field.
func (_u *ProcessingJobUpdateOne) SetSourceFormat(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetSourceFormat(v)
	return _u
}

// SetNillableSourceFormat sets the "source_format" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableSourceFormat(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetSourceFormat(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ProcessingJobUpdateOne) SetStage(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableStage(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *ProcessingJobUpdateOne) SetAttemptCount(v int) *ProcessingJobUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableAttemptCount(v *int) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *ProcessingJobUpdateOne) AddAttemptCount(v int) *ProcessingJobUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *ProcessingJobUpdateOne) SetArtifacts(v map[string]string) *ProcessingJobUpdateOne {
	_u.mutation.SetArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *ProcessingJobUpdateOne) ClearArtifacts() *ProcessingJobUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ProcessingJobUpdateOne) SetErrorKind(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableErrorKind(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ProcessingJobUpdateOne) ClearErrorKind() *ProcessingJobUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorStage sets the "error_stage" field.
func (_u *ProcessingJobUpdateOne) SetErrorStage(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetErrorStage(v)
	return _u
}

// SetNillableErrorStage sets the "error_stage" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableErrorStage(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetErrorStage(*v)
	}
	return _u
}

// ClearErrorStage clears the value of the "error_stage" field.
func (_u *ProcessingJobUpdateOne) ClearErrorStage() *ProcessingJobUpdateOne {
	_u.mutation.ClearErrorStage()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingJobUpdateOne) SetErrorMessage(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableErrorMessage(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingJobUpdateOne) ClearErrorMessage() *ProcessingJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *ProcessingJobUpdateOne) SetCancelRequested(v bool) *ProcessingJobUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableCancelRequested(v *bool) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *ProcessingJobUpdateOne) SetLeaseOwner(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableLeaseOwner(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *ProcessingJobUpdateOne) ClearLeaseOwner() *ProcessingJobUpdateOne {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *ProcessingJobUpdateOne) SetLeaseExpiresAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *ProcessingJobUpdateOne) ClearLeaseExpiresAt() *ProcessingJobUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetNotBefore sets the "not_before" field.
func (_u *ProcessingJobUpdateOne) SetNotBefore(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetNotBefore(v)
	return _u
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableNotBefore(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetNotBefore(*v)
	}
	return _u
}

// ClearNotBefore clears the value of the "not_before" field.
func (_u *ProcessingJobUpdateOne) ClearNotBefore() *ProcessingJobUpdateOne {
	_u.mutation.ClearNotBefore()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProcessingJobUpdateOne) SetVersion(v int) *ProcessingJobUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableVersion(v *int) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProcessingJobUpdateOne) AddVersion(v int) *ProcessingJobUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessingJobUpdateOne) SetUpdatedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScore sets the "score" edge to the Score entity.
func (_u *ProcessingJobUpdateOne) SetScore(v *Score) *ProcessingJobUpdateOne {
	return _u.SetScoreID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdateOne) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// ClearScore clears the "score" edge to the Score entity.
func (_u *ProcessingJobUpdateOne) ClearScore() *ProcessingJobUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdateOne) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingJobUpdateOne) Select(field string, fields ...string) *ProcessingJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingJob entity.
func (_u *ProcessingJobUpdateOne) Save(ctx context.Context) (*ProcessingJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) SaveX(ctx context.Context) *ProcessingJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessingJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processingjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdateOne) check() error {
	if v, ok := _u.mutation.SourceKey(); ok {
		if err := processingjob.SourceKeyValidator(v); err != nil {
			return &ValidationError{Name: "source_key", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.source_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFormat(); ok {
		if err := processingjob.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.source_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := processingjob.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptCount(); ok {
		if err := processingjob.AttemptCountValidator(v); err != nil {
			return &ValidationError{Name: "attempt_count", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.attempt_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := processingjob.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.version": %w`, err)}
		}
	}
	if _u.mutation.ScoreCleared() && len(_u.mutation.ScoreIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingJob.score"`)
	}
	return nil
}

func (_u *ProcessingJobUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingjob.FieldID)
		for _, f := range fields {
			if !processingjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingjob.FieldID {
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
	if value, ok := _u.mutation.SourceKey(); ok {
		_spec.SetField(processingjob.FieldSourceKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFormat(); ok {
		_spec.SetField(processingjob.FieldSourceFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(processingjob.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(processingjob.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(processingjob.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(processingjob.FieldArtifacts, field.TypeJSON, value)
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(processingjob.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(processingjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(processingjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorStage(); ok {
		_spec.SetField(processingjob.FieldErrorStage, field.TypeString, value)
	}
	if _u.mutation.ErrorStageCleared() {
		_spec.ClearField(processingjob.FieldErrorStage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processingjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(processingjob.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(processingjob.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(processingjob.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(processingjob.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(processingjob.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NotBefore(); ok {
		_spec.SetField(processingjob.FieldNotBefore, field.TypeTime, value)
	}
	if _u.mutation.NotBeforeCleared() {
		_spec.ClearField(processingjob.FieldNotBefore, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(processingjob.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(processingjob.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processingjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ScoreCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoreIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessingJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

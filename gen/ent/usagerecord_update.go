// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/scribepipe/scribepipe/gen/ent/predicate"
	"github.com/scribepipe/scribepipe/gen/ent/usagerecord"
)

// UsageRecordUpdate is the builder for updating UsageRecord entities.
type UsageRecordUpdate struct {
	config
	hooks    []Hook
	mutation *UsageRecordMutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdate) Where(ps ...predicate.UsageRecord) *UsageRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *UsageRecordUpdate) SetJobID(v uuid.UUID) *UsageRecordUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableJobID(v *uuid.UUID) *UsageRecordUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *UsageRecordUpdate) ClearJobID() *UsageRecordUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetAudioSeconds sets the "audio_seconds" field.
func (_u *UsageRecordUpdate) SetAudioSeconds(v float64) *UsageRecordUpdate {
	_u.mutation.ResetAudioSeconds()
	_u.mutation.SetAudioSeconds(v)
	return _u
}

// SetNillableAudioSeconds sets the "audio_seconds" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableAudioSeconds(v *float64) *UsageRecordUpdate {
	if v != nil {
		_u.SetAudioSeconds(*v)
	}
	return _u
}

// AddAudioSeconds adds value to the "audio_seconds" field.
func (_u *UsageRecordUpdate) AddAudioSeconds(v float64) *UsageRecordUpdate {
	_u.mutation.AddAudioSeconds(v)
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *UsageRecordUpdate) SetTokensUsed(v int64) *UsageRecordUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableTokensUsed(v *int64) *UsageRecordUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *UsageRecordUpdate) AddTokensUsed(v int64) *UsageRecordUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCharactersProcessed sets the "characters_processed" field.
func (_u *UsageRecordUpdate) SetCharactersProcessed(v int64) *UsageRecordUpdate {
	_u.mutation.ResetCharactersProcessed()
	_u.mutation.SetCharactersProcessed(v)
	return _u
}

// SetNillableCharactersProcessed sets the "characters_processed" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableCharactersProcessed(v *int64) *UsageRecordUpdate {
	if v != nil {
		_u.SetCharactersProcessed(*v)
	}
	return _u
}

// AddCharactersProcessed adds value to the "characters_processed" field.
func (_u *UsageRecordUpdate) AddCharactersProcessed(v int64) *UsageRecordUpdate {
	_u.mutation.AddCharactersProcessed(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *UsageRecordUpdate) SetCostUsd(v float64) *UsageRecordUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableCostUsd(v *float64) *UsageRecordUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *UsageRecordUpdate) AddCostUsd(v float64) *UsageRecordUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdate) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageRecordUpdate) check() error {
	if v, ok := _u.mutation.AudioSeconds(); ok {
		if err := usagerecord.AudioSecondsValidator(v); err != nil {
			return &ValidationError{Name: "audio_seconds", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.audio_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokensUsed(); ok {
		if err := usagerecord.TokensUsedValidator(v); err != nil {
			return &ValidationError{Name: "tokens_used", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.tokens_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CharactersProcessed(); ok {
		if err := usagerecord.CharactersProcessedValidator(v); err != nil {
			return &ValidationError{Name: "characters_processed", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.characters_processed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CostUsd(); ok {
		if err := usagerecord.CostUsdValidator(v); err != nil {
			return &ValidationError{Name: "cost_usd", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.cost_usd": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(usagerecord.FieldJobID, field.TypeUUID, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(usagerecord.FieldJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AudioSeconds(); ok {
		_spec.SetField(usagerecord.FieldAudioSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAudioSeconds(); ok {
		_spec.AddField(usagerecord.FieldAudioSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(usagerecord.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(usagerecord.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CharactersProcessed(); ok {
		_spec.SetField(usagerecord.FieldCharactersProcessed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCharactersProcessed(); ok {
		_spec.AddField(usagerecord.FieldCharactersProcessed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(usagerecord.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(usagerecord.FieldCostUsd, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageRecordUpdateOne is the builder for updating a single UsageRecord entity.
type UsageRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageRecordMutation
}

// SetJobID sets the "job_id" field.
func (_u *UsageRecordUpdateOne) SetJobID(v uuid.UUID) *UsageRecordUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableJobID(v *uuid.UUID) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *UsageRecordUpdateOne) ClearJobID() *UsageRecordUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetAudioSeconds sets the "audio_seconds" field.
func (_u *UsageRecordUpdateOne) SetAudioSeconds(v float64) *UsageRecordUpdateOne {
	_u.mutation.ResetAudioSeconds()
	_u.mutation.SetAudioSeconds(v)
	return _u
}

// SetNillableAudioSeconds sets the "audio_seconds" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableAudioSeconds(v *float64) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetAudioSeconds(*v)
	}
	return _u
}

// AddAudioSeconds adds value to the "audio_seconds" field.
func (_u *UsageRecordUpdateOne) AddAudioSeconds(v float64) *UsageRecordUpdateOne {
	_u.mutation.AddAudioSeconds(v)
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *UsageRecordUpdateOne) SetTokensUsed(v int64) *UsageRecordUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableTokensUsed(v *int64) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *UsageRecordUpdateOne) AddTokensUsed(v int64) *UsageRecordUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCharactersProcessed sets the "characters_processed" field.
func (_u *UsageRecordUpdateOne) SetCharactersProcessed(v int64) *UsageRecordUpdateOne {
	_u.mutation.ResetCharactersProcessed()
	_u.mutation.SetCharactersProcessed(v)
	return _u
}

// SetNillableCharactersProcessed sets the "characters_processed" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableCharactersProcessed(v *int64) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetCharactersProcessed(*v)
	}
	return _u
}

// AddCharactersProcessed adds value to the "characters_processed" field.
func (_u *UsageRecordUpdateOne) AddCharactersProcessed(v int64) *UsageRecordUpdateOne {
	_u.mutation.AddCharactersProcessed(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *UsageRecordUpdateOne) SetCostUsd(v float64) *UsageRecordUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableCostUsd(v *float64) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *UsageRecordUpdateOne) AddCostUsd(v float64) *UsageRecordUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdateOne) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdateOne) Where(ps ...predicate.UsageRecord) *UsageRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageRecordUpdateOne) Select(field string, fields ...string) *UsageRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageRecord entity.
func (_u *UsageRecordUpdateOne) Save(ctx context.Context) (*UsageRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) SaveX(ctx context.Context) *UsageRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageRecordUpdateOne) check() error {
	if v, ok := _u.mutation.AudioSeconds(); ok {
		if err := usagerecord.AudioSecondsValidator(v); err != nil {
			return &ValidationError{Name: "audio_seconds", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.audio_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokensUsed(); ok {
		if err := usagerecord.TokensUsedValidator(v); err != nil {
			return &ValidationError{Name: "tokens_used", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.tokens_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CharactersProcessed(); ok {
		if err := usagerecord.CharactersProcessedValidator(v); err != nil {
			return &ValidationError{Name: "characters_processed", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.characters_processed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CostUsd(); ok {
		if err := usagerecord.CostUsdValidator(v); err != nil {
			return &ValidationError{Name: "cost_usd", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.cost_usd": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageRecordUpdateOne) sqlSave(ctx context.Context) (_node *UsageRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagerecord.FieldID)
		for _, f := range fields {
			if !usagerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagerecord.FieldID {
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
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(usagerecord.FieldJobID, field.TypeUUID, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(usagerecord.FieldJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AudioSeconds(); ok {
		_spec.SetField(usagerecord.FieldAudioSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAudioSeconds(); ok {
		_spec.AddField(usagerecord.FieldAudioSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(usagerecord.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(usagerecord.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CharactersProcessed(); ok {
		_spec.SetField(usagerecord.FieldCharactersProcessed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCharactersProcessed(); ok {
		_spec.AddField(usagerecord.FieldCharactersProcessed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(usagerecord.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(usagerecord.FieldCostUsd, field.TypeFloat64, value)
	}
	_node = &UsageRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

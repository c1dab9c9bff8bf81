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
	"github.com/scribepipe/scribepipe/gen/ent/usagerecord"
)

// UsageRecordCreate is the builder for creating a UsageRecord entity.
type UsageRecordCreate struct {
	config
	mutation *UsageRecordMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *UsageRecordCreate) SetOwnerID(v string) *UsageRecordCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *UsageRecordCreate) SetJobID(v uuid.UUID) *UsageRecordCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableJobID(v *uuid.UUID) *UsageRecordCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetService sets the "service" field.
func (_c *UsageRecordCreate) SetService(v string) *UsageRecordCreate {
	_c.mutation.SetService(v)
	return _c
}

// SetBackend sets the "backend" field.
func (_c *UsageRecordCreate) SetBackend(v string) *UsageRecordCreate {
	_c.mutation.SetBackend(v)
	return _c
}

// SetAudioSeconds sets the "audio_seconds" field.
func (_c *UsageRecordCreate) SetAudioSeconds(v float64) *UsageRecordCreate {
	_c.mutation.SetAudioSeconds(v)
	return _c
}

// SetNillableAudioSeconds sets the "audio_seconds" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableAudioSeconds(v *float64) *UsageRecordCreate {
	if v != nil {
		_c.SetAudioSeconds(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *UsageRecordCreate) SetTokensUsed(v int64) *UsageRecordCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableTokensUsed(v *int64) *UsageRecordCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCharactersProcessed sets the "characters_processed" field.
func (_c *UsageRecordCreate) SetCharactersProcessed(v int64) *UsageRecordCreate {
	_c.mutation.SetCharactersProcessed(v)
	return _c
}

// SetNillableCharactersProcessed sets the "characters_processed" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableCharactersProcessed(v *int64) *UsageRecordCreate {
	if v != nil {
		_c.SetCharactersProcessed(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *UsageRecordCreate) SetCostUsd(v float64) *UsageRecordCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableCostUsd(v *float64) *UsageRecordCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageRecordCreate) SetCreatedAt(v time.Time) *UsageRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableCreatedAt(v *time.Time) *UsageRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsageRecordCreate) SetID(v uuid.UUID) *UsageRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableID(v *uuid.UUID) *UsageRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_c *UsageRecordCreate) Mutation() *UsageRecordMutation {
	return _c.mutation
}

// Save creates the UsageRecord in the database.
func (_c *UsageRecordCreate) Save(ctx context.Context) (*UsageRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageRecordCreate) SaveX(ctx context.Context) *UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageRecordCreate) defaults() {
	if _, ok := _c.mutation.AudioSeconds(); !ok {
		v := usagerecord.DefaultAudioSeconds
		_c.mutation.SetAudioSeconds(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := usagerecord.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CharactersProcessed(); !ok {
		v := usagerecord.DefaultCharactersProcessed
		_c.mutation.SetCharactersProcessed(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := usagerecord.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usagerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := usagerecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageRecordCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "UsageRecord.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := usagerecord.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Service(); !ok {
		return &ValidationError{Name: "service", err: errors.New(`ent: missing required field "UsageRecord.service"`)}
	}
	if v, ok := _c.mutation.Service(); ok {
		if err := usagerecord.ServiceValidator(v); err != nil {
			return &ValidationError{Name: "service", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.service": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Backend(); !ok {
		return &ValidationError{Name: "backend", err: errors.New(`ent: missing required field "UsageRecord.backend"`)}
	}
	if v, ok := _c.mutation.Backend(); ok {
		if err := usagerecord.BackendValidator(v); err != nil {
			return &ValidationError{Name: "backend", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.backend": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AudioSeconds(); !ok {
		return &ValidationError{Name: "audio_seconds", err: errors.New(`ent: missing required field "UsageRecord.audio_seconds"`)}
	}
	if v, ok := _c.mutation.AudioSeconds(); ok {
		if err := usagerecord.AudioSecondsValidator(v); err != nil {
			return &ValidationError{Name: "audio_seconds", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.audio_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "UsageRecord.tokens_used"`)}
	}
	if v, ok := _c.mutation.TokensUsed(); ok {
		if err := usagerecord.TokensUsedValidator(v); err != nil {
			return &ValidationError{Name: "tokens_used", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.tokens_used": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CharactersProcessed(); !ok {
		return &ValidationError{Name: "characters_processed", err: errors.New(`ent: missing required field "UsageRecord.characters_processed"`)}
	}
	if v, ok := _c.mutation.CharactersProcessed(); ok {
		if err := usagerecord.CharactersProcessedValidator(v); err != nil {
			return &ValidationError{Name: "characters_processed", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.characters_processed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "UsageRecord.cost_usd"`)}
	}
	if v, ok := _c.mutation.CostUsd(); ok {
		if err := usagerecord.CostUsdValidator(v); err != nil {
			return &ValidationError{Name: "cost_usd", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.cost_usd": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageRecord.created_at"`)}
	}
	return nil
}

func (_c *UsageRecordCreate) sqlSave(ctx context.Context) (*UsageRecord, error) {
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

func (_c *UsageRecordCreate) createSpec() (*UsageRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagerecord.Table, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(usagerecord.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(usagerecord.FieldJobID, field.TypeUUID, value)
		_node.JobID = &value
	}
	if value, ok := _c.mutation.Service(); ok {
		_spec.SetField(usagerecord.FieldService, field.TypeString, value)
		_node.Service = value
	}
	if value, ok := _c.mutation.Backend(); ok {
		_spec.SetField(usagerecord.FieldBackend, field.TypeString, value)
		_node.Backend = value
	}
	if value, ok := _c.mutation.AudioSeconds(); ok {
		_spec.SetField(usagerecord.FieldAudioSeconds, field.TypeFloat64, value)
		_node.AudioSeconds = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(usagerecord.FieldTokensUsed, field.TypeInt64, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.CharactersProcessed(); ok {
		_spec.SetField(usagerecord.FieldCharactersProcessed, field.TypeInt64, value)
		_node.CharactersProcessed = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(usagerecord.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usagerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UsageRecordCreateBulk is the builder for creating many UsageRecord entities in bulk.
type UsageRecordCreateBulk struct {
	config
	err      error
	builders []*UsageRecordCreate
}

// Save creates the UsageRecord entities in the database.
func (_c *UsageRecordCreateBulk) Save(ctx context.Context) ([]*UsageRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageRecordMutation)
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
func (_c *UsageRecordCreateBulk) SaveX(ctx context.Context) []*UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sarveshai94-commits/academyquest/ent/bellevent"
)

// BellEventCreate is the builder for creating a BellEvent entity.
type BellEventCreate struct {
	config
	mutation *BellEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *BellEventCreate) SetSequence(v int64) *BellEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BellEventCreate) SetTimestamp(v time.Time) *BellEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *BellEventCreate) SetNillableTimestamp(v *time.Time) *BellEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *BellEventCreate) SetSessionID(v string) *BellEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSessionName sets the "session_name" field.
func (_c *BellEventCreate) SetSessionName(v string) *BellEventCreate {
	_c.mutation.SetSessionName(v)
	return _c
}

// SetIsBreak sets the "is_break" field.
func (_c *BellEventCreate) SetIsBreak(v bool) *BellEventCreate {
	_c.mutation.SetIsBreak(v)
	return _c
}

// SetNillableIsBreak sets the "is_break" field if the given value is not nil.
func (_c *BellEventCreate) SetNillableIsBreak(v *bool) *BellEventCreate {
	if v != nil {
		_c.SetIsBreak(*v)
	}
	return _c
}

// SetTopicCount sets the "topic_count" field.
func (_c *BellEventCreate) SetTopicCount(v int) *BellEventCreate {
	_c.mutation.SetTopicCount(v)
	return _c
}

// SetNillableTopicCount sets the "topic_count" field if the given value is not nil.
func (_c *BellEventCreate) SetNillableTopicCount(v *int) *BellEventCreate {
	if v != nil {
		_c.SetTopicCount(*v)
	}
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *BellEventCreate) SetDurationMinutes(v int) *BellEventCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *BellEventCreate) SetNillableDurationMinutes(v *int) *BellEventCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetXpAwarded sets the "xp_awarded" field.
func (_c *BellEventCreate) SetXpAwarded(v int) *BellEventCreate {
	_c.mutation.SetXpAwarded(v)
	return _c
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_c *BellEventCreate) SetNillableXpAwarded(v *int) *BellEventCreate {
	if v != nil {
		_c.SetXpAwarded(*v)
	}
	return _c
}

// Mutation returns the BellEventMutation object of the builder.
func (_c *BellEventCreate) Mutation() *BellEventMutation {
	return _c.mutation
}

// Save creates the BellEvent in the database.
func (_c *BellEventCreate) Save(ctx context.Context) (*BellEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BellEventCreate) SaveX(ctx context.Context) *BellEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BellEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BellEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BellEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := bellevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.IsBreak(); !ok {
		v := bellevent.DefaultIsBreak
		_c.mutation.SetIsBreak(v)
	}
	if _, ok := _c.mutation.TopicCount(); !ok {
		v := bellevent.DefaultTopicCount
		_c.mutation.SetTopicCount(v)
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := bellevent.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		v := bellevent.DefaultXpAwarded
		_c.mutation.SetXpAwarded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BellEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BellEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BellEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "BellEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := bellevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "BellEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionName(); !ok {
		return &ValidationError{Name: "session_name", err: errors.New(`ent: missing required field "BellEvent.session_name"`)}
	}
	if v, ok := _c.mutation.SessionName(); ok {
		if err := bellevent.SessionNameValidator(v); err != nil {
			return &ValidationError{Name: "session_name", err: fmt.Errorf(`ent: validator failed for field "BellEvent.session_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsBreak(); !ok {
		return &ValidationError{Name: "is_break", err: errors.New(`ent: missing required field "BellEvent.is_break"`)}
	}
	if _, ok := _c.mutation.TopicCount(); !ok {
		return &ValidationError{Name: "topic_count", err: errors.New(`ent: missing required field "BellEvent.topic_count"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "BellEvent.duration_minutes"`)}
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		return &ValidationError{Name: "xp_awarded", err: errors.New(`ent: missing required field "BellEvent.xp_awarded"`)}
	}
	return nil
}

func (_c *BellEventCreate) sqlSave(ctx context.Context) (*BellEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BellEventCreate) createSpec() (*BellEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BellEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bellevent.Table, sqlgraph.NewFieldSpec(bellevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(bellevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(bellevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(bellevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SessionName(); ok {
		_spec.SetField(bellevent.FieldSessionName, field.TypeString, value)
		_node.SessionName = value
	}
	if value, ok := _c.mutation.IsBreak(); ok {
		_spec.SetField(bellevent.FieldIsBreak, field.TypeBool, value)
		_node.IsBreak = value
	}
	if value, ok := _c.mutation.TopicCount(); ok {
		_spec.SetField(bellevent.FieldTopicCount, field.TypeInt, value)
		_node.TopicCount = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(bellevent.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.XpAwarded(); ok {
		_spec.SetField(bellevent.FieldXpAwarded, field.TypeInt, value)
		_node.XpAwarded = value
	}
	return _node, _spec
}

// BellEventCreateBulk is the builder for creating many BellEvent entities in bulk.
type BellEventCreateBulk struct {
	config
	err      error
	builders []*BellEventCreate
}

// Save creates the BellEvent entities in the database.
func (_c *BellEventCreateBulk) Save(ctx context.Context) ([]*BellEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BellEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BellEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *BellEventCreateBulk) SaveX(ctx context.Context) []*BellEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BellEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BellEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

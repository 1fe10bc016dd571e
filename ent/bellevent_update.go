// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sarveshai94-commits/academyquest/ent/bellevent"
	"github.com/sarveshai94-commits/academyquest/ent/predicate"
)

// BellEventUpdate is the builder for updating BellEvent entities.
type BellEventUpdate struct {
	config
	hooks    []Hook
	mutation *BellEventMutation
}

// Where appends a list predicates to the BellEventUpdate builder.
func (_u *BellEventUpdate) Where(ps ...predicate.BellEvent) *BellEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *BellEventUpdate) SetSessionID(v string) *BellEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *BellEventUpdate) SetNillableSessionID(v *string) *BellEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSessionName sets the "session_name" field.
func (_u *BellEventUpdate) SetSessionName(v string) *BellEventUpdate {
	_u.mutation.SetSessionName(v)
	return _u
}

// SetNillableSessionName sets the "session_name" field if the given value is not nil.
func (_u *BellEventUpdate) SetNillableSessionName(v *string) *BellEventUpdate {
	if v != nil {
		_u.SetSessionName(*v)
	}
	return _u
}

// SetIsBreak sets the "is_break" field.
func (_u *BellEventUpdate) SetIsBreak(v bool) *BellEventUpdate {
	_u.mutation.SetIsBreak(v)
	return _u
}

// SetNillableIsBreak sets the "is_break" field if the given value is not nil.
func (_u *BellEventUpdate) SetNillableIsBreak(v *bool) *BellEventUpdate {
	if v != nil {
		_u.SetIsBreak(*v)
	}
	return _u
}

// SetTopicCount sets the "topic_count" field.
func (_u *BellEventUpdate) SetTopicCount(v int) *BellEventUpdate {
	_u.mutation.ResetTopicCount()
	_u.mutation.SetTopicCount(v)
	return _u
}

// SetNillableTopicCount sets the "topic_count" field if the given value is not nil.
func (_u *BellEventUpdate) SetNillableTopicCount(v *int) *BellEventUpdate {
	if v != nil {
		_u.SetTopicCount(*v)
	}
	return _u
}

// AddTopicCount adds value to the "topic_count" field.
func (_u *BellEventUpdate) AddTopicCount(v int) *BellEventUpdate {
	_u.mutation.AddTopicCount(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *BellEventUpdate) SetDurationMinutes(v int) *BellEventUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *BellEventUpdate) SetNillableDurationMinutes(v *int) *BellEventUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *BellEventUpdate) AddDurationMinutes(v int) *BellEventUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *BellEventUpdate) SetXpAwarded(v int) *BellEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *BellEventUpdate) SetNillableXpAwarded(v *int) *BellEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *BellEventUpdate) AddXpAwarded(v int) *BellEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// Mutation returns the BellEventMutation object of the builder.
func (_u *BellEventUpdate) Mutation() *BellEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BellEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BellEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BellEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BellEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BellEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := bellevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "BellEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionName(); ok {
		if err := bellevent.SessionNameValidator(v); err != nil {
			return &ValidationError{Name: "session_name", err: fmt.Errorf(`ent: validator failed for field "BellEvent.session_name": %w`, err)}
		}
	}
	return nil
}

func (_u *BellEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bellevent.Table, bellevent.Columns, sqlgraph.NewFieldSpec(bellevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(bellevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionName(); ok {
		_spec.SetField(bellevent.FieldSessionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsBreak(); ok {
		_spec.SetField(bellevent.FieldIsBreak, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TopicCount(); ok {
		_spec.SetField(bellevent.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicCount(); ok {
		_spec.AddField(bellevent.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(bellevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(bellevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(bellevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(bellevent.FieldXpAwarded, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bellevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BellEventUpdateOne is the builder for updating a single BellEvent entity.
type BellEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BellEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *BellEventUpdateOne) SetSessionID(v string) *BellEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *BellEventUpdateOne) SetNillableSessionID(v *string) *BellEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSessionName sets the "session_name" field.
func (_u *BellEventUpdateOne) SetSessionName(v string) *BellEventUpdateOne {
	_u.mutation.SetSessionName(v)
	return _u
}

// SetNillableSessionName sets the "session_name" field if the given value is not nil.
func (_u *BellEventUpdateOne) SetNillableSessionName(v *string) *BellEventUpdateOne {
	if v != nil {
		_u.SetSessionName(*v)
	}
	return _u
}

// SetIsBreak sets the "is_break" field.
func (_u *BellEventUpdateOne) SetIsBreak(v bool) *BellEventUpdateOne {
	_u.mutation.SetIsBreak(v)
	return _u
}

// SetNillableIsBreak sets the "is_break" field if the given value is not nil.
func (_u *BellEventUpdateOne) SetNillableIsBreak(v *bool) *BellEventUpdateOne {
	if v != nil {
		_u.SetIsBreak(*v)
	}
	return _u
}

// SetTopicCount sets the "topic_count" field.
func (_u *BellEventUpdateOne) SetTopicCount(v int) *BellEventUpdateOne {
	_u.mutation.ResetTopicCount()
	_u.mutation.SetTopicCount(v)
	return _u
}

// SetNillableTopicCount sets the "topic_count" field if the given value is not nil.
func (_u *BellEventUpdateOne) SetNillableTopicCount(v *int) *BellEventUpdateOne {
	if v != nil {
		_u.SetTopicCount(*v)
	}
	return _u
}

// AddTopicCount adds value to the "topic_count" field.
func (_u *BellEventUpdateOne) AddTopicCount(v int) *BellEventUpdateOne {
	_u.mutation.AddTopicCount(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *BellEventUpdateOne) SetDurationMinutes(v int) *BellEventUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *BellEventUpdateOne) SetNillableDurationMinutes(v *int) *BellEventUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *BellEventUpdateOne) AddDurationMinutes(v int) *BellEventUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *BellEventUpdateOne) SetXpAwarded(v int) *BellEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *BellEventUpdateOne) SetNillableXpAwarded(v *int) *BellEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *BellEventUpdateOne) AddXpAwarded(v int) *BellEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// Mutation returns the BellEventMutation object of the builder.
func (_u *BellEventUpdateOne) Mutation() *BellEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BellEventUpdate builder.
func (_u *BellEventUpdateOne) Where(ps ...predicate.BellEvent) *BellEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BellEventUpdateOne) Select(field string, fields ...string) *BellEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BellEvent entity.
func (_u *BellEventUpdateOne) Save(ctx context.Context) (*BellEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BellEventUpdateOne) SaveX(ctx context.Context) *BellEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BellEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BellEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BellEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := bellevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "BellEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionName(); ok {
		if err := bellevent.SessionNameValidator(v); err != nil {
			return &ValidationError{Name: "session_name", err: fmt.Errorf(`ent: validator failed for field "BellEvent.session_name": %w`, err)}
		}
	}
	return nil
}

func (_u *BellEventUpdateOne) sqlSave(ctx context.Context) (_node *BellEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bellevent.Table, bellevent.Columns, sqlgraph.NewFieldSpec(bellevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BellEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bellevent.FieldID)
		for _, f := range fields {
			if !bellevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bellevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(bellevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionName(); ok {
		_spec.SetField(bellevent.FieldSessionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsBreak(); ok {
		_spec.SetField(bellevent.FieldIsBreak, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TopicCount(); ok {
		_spec.SetField(bellevent.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicCount(); ok {
		_spec.AddField(bellevent.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(bellevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(bellevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(bellevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(bellevent.FieldXpAwarded, field.TypeInt, value)
	}
	_node = &BellEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bellevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"digitflow/ent/accesskey"
	"digitflow/ent/bounddevice"
	"digitflow/ent/predicate"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BoundDeviceUpdate is the builder for updating BoundDevice entities.
type BoundDeviceUpdate struct {
	config
	hooks    []Hook
	mutation *BoundDeviceMutation
}

// Where appends a list predicates to the BoundDeviceUpdate builder.
func (_u *BoundDeviceUpdate) Where(ps ...predicate.BoundDevice) *BoundDeviceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *BoundDeviceUpdate) SetFingerprint(v string) *BoundDeviceUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *BoundDeviceUpdate) SetNillableFingerprint(v *string) *BoundDeviceUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BoundDeviceUpdate) SetIsActive(v bool) *BoundDeviceUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BoundDeviceUpdate) SetNillableIsActive(v *bool) *BoundDeviceUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *BoundDeviceUpdate) SetLastSeenAt(v time.Time) *BoundDeviceUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetKeyID sets the "key" edge to the AccessKey entity by ID.
func (_u *BoundDeviceUpdate) SetKeyID(id uuid.UUID) *BoundDeviceUpdate {
	_u.mutation.SetKeyID(id)
	return _u
}

// SetKey sets the "key" edge to the AccessKey entity.
func (_u *BoundDeviceUpdate) SetKey(v *AccessKey) *BoundDeviceUpdate {
	return _u.SetKeyID(v.ID)
}

// Mutation returns the BoundDeviceMutation object of the builder.
func (_u *BoundDeviceUpdate) Mutation() *BoundDeviceMutation {
	return _u.mutation
}

// ClearKey clears the "key" edge to the AccessKey entity.
func (_u *BoundDeviceUpdate) ClearKey() *BoundDeviceUpdate {
	_u.mutation.ClearKey()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BoundDeviceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BoundDeviceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BoundDeviceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BoundDeviceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BoundDeviceUpdate) defaults() {
	if _, ok := _u.mutation.LastSeenAt(); !ok {
		v := bounddevice.UpdateDefaultLastSeenAt()
		_u.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BoundDeviceUpdate) check() error {
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := bounddevice.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "BoundDevice.fingerprint": %w`, err)}
		}
	}
	if _u.mutation.KeyCleared() && len(_u.mutation.KeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BoundDevice.key"`)
	}
	return nil
}

func (_u *BoundDeviceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bounddevice.Table, bounddevice.Columns, sqlgraph.NewFieldSpec(bounddevice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(bounddevice.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(bounddevice.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(bounddevice.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.KeyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bounddevice.KeyTable,
			Columns: []string{bounddevice.KeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(accesskey.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KeyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bounddevice.KeyTable,
			Columns: []string{bounddevice.KeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(accesskey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bounddevice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BoundDeviceUpdateOne is the builder for updating a single BoundDevice entity.
type BoundDeviceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BoundDeviceMutation
}

// SetFingerprint sets the "fingerprint" field.
func (_u *BoundDeviceUpdateOne) SetFingerprint(v string) *BoundDeviceUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *BoundDeviceUpdateOne) SetNillableFingerprint(v *string) *BoundDeviceUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BoundDeviceUpdateOne) SetIsActive(v bool) *BoundDeviceUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BoundDeviceUpdateOne) SetNillableIsActive(v *bool) *BoundDeviceUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *BoundDeviceUpdateOne) SetLastSeenAt(v time.Time) *BoundDeviceUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetKeyID sets the "key" edge to the AccessKey entity by ID.
func (_u *BoundDeviceUpdateOne) SetKeyID(id uuid.UUID) *BoundDeviceUpdateOne {
	_u.mutation.SetKeyID(id)
	return _u
}

// SetKey sets the "key" edge to the AccessKey entity.
func (_u *BoundDeviceUpdateOne) SetKey(v *AccessKey) *BoundDeviceUpdateOne {
	return _u.SetKeyID(v.ID)
}

// Mutation returns the BoundDeviceMutation object of the builder.
func (_u *BoundDeviceUpdateOne) Mutation() *BoundDeviceMutation {
	return _u.mutation
}

// ClearKey clears the "key" edge to the AccessKey entity.
func (_u *BoundDeviceUpdateOne) ClearKey() *BoundDeviceUpdateOne {
	_u.mutation.ClearKey()
	return _u
}

// Where appends a list predicates to the BoundDeviceUpdate builder.
func (_u *BoundDeviceUpdateOne) Where(ps ...predicate.BoundDevice) *BoundDeviceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BoundDeviceUpdateOne) Select(field string, fields ...string) *BoundDeviceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BoundDevice entity.
func (_u *BoundDeviceUpdateOne) Save(ctx context.Context) (*BoundDevice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BoundDeviceUpdateOne) SaveX(ctx context.Context) *BoundDevice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BoundDeviceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BoundDeviceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BoundDeviceUpdateOne) defaults() {
	if _, ok := _u.mutation.LastSeenAt(); !ok {
		v := bounddevice.UpdateDefaultLastSeenAt()
		_u.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BoundDeviceUpdateOne) check() error {
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := bounddevice.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "BoundDevice.fingerprint": %w`, err)}
		}
	}
	if _u.mutation.KeyCleared() && len(_u.mutation.KeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BoundDevice.key"`)
	}
	return nil
}

func (_u *BoundDeviceUpdateOne) sqlSave(ctx context.Context) (_node *BoundDevice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bounddevice.Table, bounddevice.Columns, sqlgraph.NewFieldSpec(bounddevice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BoundDevice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bounddevice.FieldID)
		for _, f := range fields {
			if !bounddevice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bounddevice.FieldID {
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
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(bounddevice.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(bounddevice.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(bounddevice.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.KeyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bounddevice.KeyTable,
			Columns: []string{bounddevice.KeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(accesskey.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KeyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bounddevice.KeyTable,
			Columns: []string{bounddevice.KeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(accesskey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BoundDevice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bounddevice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

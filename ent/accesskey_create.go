// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"digitflow/ent/accesskey"
	"digitflow/ent/bounddevice"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// AccessKeyCreate is the builder for creating a AccessKey entity.
type AccessKeyCreate struct {
	config
	mutation *AccessKeyMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *AccessKeyCreate) SetKey(v string) *AccessKeyCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AccessKeyCreate) SetIsActive(v bool) *AccessKeyCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AccessKeyCreate) SetNillableIsActive(v *bool) *AccessKeyCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *AccessKeyCreate) SetExpiresAt(v time.Time) *AccessKeyCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *AccessKeyCreate) SetNillableExpiresAt(v *time.Time) *AccessKeyCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetDeviceLimit sets the "device_limit" field.
func (_c *AccessKeyCreate) SetDeviceLimit(v int) *AccessKeyCreate {
	_c.mutation.SetDeviceLimit(v)
	return _c
}

// SetNillableDeviceLimit sets the "device_limit" field if the given value is not nil.
func (_c *AccessKeyCreate) SetNillableDeviceLimit(v *int) *AccessKeyCreate {
	if v != nil {
		_c.SetDeviceLimit(*v)
	}
	return _c
}

// SetDeviceCount sets the "device_count" field.
func (_c *AccessKeyCreate) SetDeviceCount(v int) *AccessKeyCreate {
	_c.mutation.SetDeviceCount(v)
	return _c
}

// SetNillableDeviceCount sets the "device_count" field if the given value is not nil.
func (_c *AccessKeyCreate) SetNillableDeviceCount(v *int) *AccessKeyCreate {
	if v != nil {
		_c.SetDeviceCount(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *AccessKeyCreate) SetLastUsedAt(v time.Time) *AccessKeyCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *AccessKeyCreate) SetNillableLastUsedAt(v *time.Time) *AccessKeyCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AccessKeyCreate) SetCreatedAt(v time.Time) *AccessKeyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AccessKeyCreate) SetNillableCreatedAt(v *time.Time) *AccessKeyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AccessKeyCreate) SetID(v uuid.UUID) *AccessKeyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AccessKeyCreate) SetNillableID(v *uuid.UUID) *AccessKeyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDeviceIDs adds the "devices" edge to the BoundDevice entity by IDs.
func (_c *AccessKeyCreate) AddDeviceIDs(ids ...uuid.UUID) *AccessKeyCreate {
	_c.mutation.AddDeviceIDs(ids...)
	return _c
}

// AddDevices adds the "devices" edges to the BoundDevice entity.
func (_c *AccessKeyCreate) AddDevices(v ...*BoundDevice) *AccessKeyCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeviceIDs(ids...)
}

// Mutation returns the AccessKeyMutation object of the builder.
func (_c *AccessKeyCreate) Mutation() *AccessKeyMutation {
	return _c.mutation
}

// Save creates the AccessKey in the database.
func (_c *AccessKeyCreate) Save(ctx context.Context) (*AccessKey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AccessKeyCreate) SaveX(ctx context.Context) *AccessKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccessKeyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccessKeyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AccessKeyCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := accesskey.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.DeviceLimit(); !ok {
		v := accesskey.DefaultDeviceLimit
		_c.mutation.SetDeviceLimit(v)
	}
	if _, ok := _c.mutation.DeviceCount(); !ok {
		v := accesskey.DefaultDeviceCount
		_c.mutation.SetDeviceCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := accesskey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := accesskey.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AccessKeyCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "AccessKey.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := accesskey.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "AccessKey.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "AccessKey.is_active"`)}
	}
	if _, ok := _c.mutation.DeviceLimit(); !ok {
		return &ValidationError{Name: "device_limit", err: errors.New(`ent: missing required field "AccessKey.device_limit"`)}
	}
	if v, ok := _c.mutation.DeviceLimit(); ok {
		if err := accesskey.DeviceLimitValidator(v); err != nil {
			return &ValidationError{Name: "device_limit", err: fmt.Errorf(`ent: validator failed for field "AccessKey.device_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeviceCount(); !ok {
		return &ValidationError{Name: "device_count", err: errors.New(`ent: missing required field "AccessKey.device_count"`)}
	}
	if v, ok := _c.mutation.DeviceCount(); ok {
		if err := accesskey.DeviceCountValidator(v); err != nil {
			return &ValidationError{Name: "device_count", err: fmt.Errorf(`ent: validator failed for field "AccessKey.device_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AccessKey.created_at"`)}
	}
	return nil
}

func (_c *AccessKeyCreate) sqlSave(ctx context.Context) (*AccessKey, error) {
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

func (_c *AccessKeyCreate) createSpec() (*AccessKey, *sqlgraph.CreateSpec) {
	var (
		_node = &AccessKey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(accesskey.Table, sqlgraph.NewFieldSpec(accesskey.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(accesskey.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(accesskey.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(accesskey.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.DeviceLimit(); ok {
		_spec.SetField(accesskey.FieldDeviceLimit, field.TypeInt, value)
		_node.DeviceLimit = value
	}
	if value, ok := _c.mutation.DeviceCount(); ok {
		_spec.SetField(accesskey.FieldDeviceCount, field.TypeInt, value)
		_node.DeviceCount = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(accesskey.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(accesskey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DevicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   accesskey.DevicesTable,
			Columns: []string{accesskey.DevicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bounddevice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AccessKeyCreateBulk is the builder for creating many AccessKey entities in bulk.
type AccessKeyCreateBulk struct {
	config
	err      error
	builders []*AccessKeyCreate
}

// Save creates the AccessKey entities in the database.
func (_c *AccessKeyCreateBulk) Save(ctx context.Context) ([]*AccessKey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AccessKey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccessKeyMutation)
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
func (_c *AccessKeyCreateBulk) SaveX(ctx context.Context) []*AccessKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccessKeyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccessKeyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

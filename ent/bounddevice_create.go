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

// BoundDeviceCreate is the builder for creating a BoundDevice entity.
type BoundDeviceCreate struct {
	config
	mutation *BoundDeviceMutation
	hooks    []Hook
}

// SetFingerprint sets the "fingerprint" field.
func (_c *BoundDeviceCreate) SetFingerprint(v string) *BoundDeviceCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *BoundDeviceCreate) SetIsActive(v bool) *BoundDeviceCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *BoundDeviceCreate) SetNillableIsActive(v *bool) *BoundDeviceCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *BoundDeviceCreate) SetFirstSeenAt(v time.Time) *BoundDeviceCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *BoundDeviceCreate) SetNillableFirstSeenAt(v *time.Time) *BoundDeviceCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *BoundDeviceCreate) SetLastSeenAt(v time.Time) *BoundDeviceCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *BoundDeviceCreate) SetNillableLastSeenAt(v *time.Time) *BoundDeviceCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BoundDeviceCreate) SetID(v uuid.UUID) *BoundDeviceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BoundDeviceCreate) SetNillableID(v *uuid.UUID) *BoundDeviceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetKeyID sets the "key" edge to the AccessKey entity by ID.
func (_c *BoundDeviceCreate) SetKeyID(id uuid.UUID) *BoundDeviceCreate {
	_c.mutation.SetKeyID(id)
	return _c
}

// SetKey sets the "key" edge to the AccessKey entity.
func (_c *BoundDeviceCreate) SetKey(v *AccessKey) *BoundDeviceCreate {
	return _c.SetKeyID(v.ID)
}

// Mutation returns the BoundDeviceMutation object of the builder.
func (_c *BoundDeviceCreate) Mutation() *BoundDeviceMutation {
	return _c.mutation
}

// Save creates the BoundDevice in the database.
func (_c *BoundDeviceCreate) Save(ctx context.Context) (*BoundDevice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BoundDeviceCreate) SaveX(ctx context.Context) *BoundDevice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BoundDeviceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BoundDeviceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BoundDeviceCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := bounddevice.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := bounddevice.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := bounddevice.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bounddevice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BoundDeviceCreate) check() error {
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "BoundDevice.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := bounddevice.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "BoundDevice.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "BoundDevice.is_active"`)}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "BoundDevice.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "BoundDevice.last_seen_at"`)}
	}
	if len(_c.mutation.KeyIDs()) == 0 {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required edge "BoundDevice.key"`)}
	}
	return nil
}

func (_c *BoundDeviceCreate) sqlSave(ctx context.Context) (*BoundDevice, error) {
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

func (_c *BoundDeviceCreate) createSpec() (*BoundDevice, *sqlgraph.CreateSpec) {
	var (
		_node = &BoundDevice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bounddevice.Table, sqlgraph.NewFieldSpec(bounddevice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(bounddevice.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(bounddevice.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(bounddevice.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(bounddevice.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if nodes := _c.mutation.KeyIDs(); len(nodes) > 0 {
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
		_node.access_key_devices = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BoundDeviceCreateBulk is the builder for creating many BoundDevice entities in bulk.
type BoundDeviceCreateBulk struct {
	config
	err      error
	builders []*BoundDeviceCreate
}

// Save creates the BoundDevice entities in the database.
func (_c *BoundDeviceCreateBulk) Save(ctx context.Context) ([]*BoundDevice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BoundDevice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BoundDeviceMutation)
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
func (_c *BoundDeviceCreateBulk) SaveX(ctx context.Context) []*BoundDevice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BoundDeviceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BoundDeviceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

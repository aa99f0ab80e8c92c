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

// AccessKeyUpdate is the builder for updating AccessKey entities.
type AccessKeyUpdate struct {
	config
	hooks    []Hook
	mutation *AccessKeyMutation
}

// Where appends a list predicates to the AccessKeyUpdate builder.
func (_u *AccessKeyUpdate) Where(ps ...predicate.AccessKey) *AccessKeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *AccessKeyUpdate) SetKey(v string) *AccessKeyUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *AccessKeyUpdate) SetNillableKey(v *string) *AccessKeyUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AccessKeyUpdate) SetIsActive(v bool) *AccessKeyUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AccessKeyUpdate) SetNillableIsActive(v *bool) *AccessKeyUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *AccessKeyUpdate) SetExpiresAt(v time.Time) *AccessKeyUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *AccessKeyUpdate) SetNillableExpiresAt(v *time.Time) *AccessKeyUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *AccessKeyUpdate) ClearExpiresAt() *AccessKeyUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetDeviceLimit sets the "device_limit" field.
func (_u *AccessKeyUpdate) SetDeviceLimit(v int) *AccessKeyUpdate {
	_u.mutation.ResetDeviceLimit()
	_u.mutation.SetDeviceLimit(v)
	return _u
}

// SetNillableDeviceLimit sets the "device_limit" field if the given value is not nil.
func (_u *AccessKeyUpdate) SetNillableDeviceLimit(v *int) *AccessKeyUpdate {
	if v != nil {
		_u.SetDeviceLimit(*v)
	}
	return _u
}

// AddDeviceLimit adds value to the "device_limit" field.
func (_u *AccessKeyUpdate) AddDeviceLimit(v int) *AccessKeyUpdate {
	_u.mutation.AddDeviceLimit(v)
	return _u
}

// SetDeviceCount sets the "device_count" field.
func (_u *AccessKeyUpdate) SetDeviceCount(v int) *AccessKeyUpdate {
	_u.mutation.ResetDeviceCount()
	_u.mutation.SetDeviceCount(v)
	return _u
}

// SetNillableDeviceCount sets the "device_count" field if the given value is not nil.
func (_u *AccessKeyUpdate) SetNillableDeviceCount(v *int) *AccessKeyUpdate {
	if v != nil {
		_u.SetDeviceCount(*v)
	}
	return _u
}

// AddDeviceCount adds value to the "device_count" field.
func (_u *AccessKeyUpdate) AddDeviceCount(v int) *AccessKeyUpdate {
	_u.mutation.AddDeviceCount(v)
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *AccessKeyUpdate) SetLastUsedAt(v time.Time) *AccessKeyUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *AccessKeyUpdate) SetNillableLastUsedAt(v *time.Time) *AccessKeyUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *AccessKeyUpdate) ClearLastUsedAt() *AccessKeyUpdate {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// AddDeviceIDs adds the "devices" edge to the BoundDevice entity by IDs.
func (_u *AccessKeyUpdate) AddDeviceIDs(ids ...uuid.UUID) *AccessKeyUpdate {
	_u.mutation.AddDeviceIDs(ids...)
	return _u
}

// AddDevices adds the "devices" edges to the BoundDevice entity.
func (_u *AccessKeyUpdate) AddDevices(v ...*BoundDevice) *AccessKeyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeviceIDs(ids...)
}

// Mutation returns the AccessKeyMutation object of the builder.
func (_u *AccessKeyUpdate) Mutation() *AccessKeyMutation {
	return _u.mutation
}

// ClearDevices clears all "devices" edges to the BoundDevice entity.
func (_u *AccessKeyUpdate) ClearDevices() *AccessKeyUpdate {
	_u.mutation.ClearDevices()
	return _u
}

// RemoveDeviceIDs removes the "devices" edge to BoundDevice entities by IDs.
func (_u *AccessKeyUpdate) RemoveDeviceIDs(ids ...uuid.UUID) *AccessKeyUpdate {
	_u.mutation.RemoveDeviceIDs(ids...)
	return _u
}

// RemoveDevices removes "devices" edges to BoundDevice entities.
func (_u *AccessKeyUpdate) RemoveDevices(v ...*BoundDevice) *AccessKeyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeviceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccessKeyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccessKeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccessKeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccessKeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccessKeyUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := accesskey.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "AccessKey.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeviceLimit(); ok {
		if err := accesskey.DeviceLimitValidator(v); err != nil {
			return &ValidationError{Name: "device_limit", err: fmt.Errorf(`ent: validator failed for field "AccessKey.device_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeviceCount(); ok {
		if err := accesskey.DeviceCountValidator(v); err != nil {
			return &ValidationError{Name: "device_count", err: fmt.Errorf(`ent: validator failed for field "AccessKey.device_count": %w`, err)}
		}
	}
	return nil
}

func (_u *AccessKeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(accesskey.Table, accesskey.Columns, sqlgraph.NewFieldSpec(accesskey.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(accesskey.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(accesskey.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(accesskey.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(accesskey.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeviceLimit(); ok {
		_spec.SetField(accesskey.FieldDeviceLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeviceLimit(); ok {
		_spec.AddField(accesskey.FieldDeviceLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeviceCount(); ok {
		_spec.SetField(accesskey.FieldDeviceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeviceCount(); ok {
		_spec.AddField(accesskey.FieldDeviceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(accesskey.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(accesskey.FieldLastUsedAt, field.TypeTime)
	}
	if _u.mutation.DevicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDevicesIDs(); len(nodes) > 0 && !_u.mutation.DevicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DevicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accesskey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccessKeyUpdateOne is the builder for updating a single AccessKey entity.
type AccessKeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccessKeyMutation
}

// SetKey sets the "key" field.
func (_u *AccessKeyUpdateOne) SetKey(v string) *AccessKeyUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *AccessKeyUpdateOne) SetNillableKey(v *string) *AccessKeyUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AccessKeyUpdateOne) SetIsActive(v bool) *AccessKeyUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AccessKeyUpdateOne) SetNillableIsActive(v *bool) *AccessKeyUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *AccessKeyUpdateOne) SetExpiresAt(v time.Time) *AccessKeyUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *AccessKeyUpdateOne) SetNillableExpiresAt(v *time.Time) *AccessKeyUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *AccessKeyUpdateOne) ClearExpiresAt() *AccessKeyUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetDeviceLimit sets the "device_limit" field.
func (_u *AccessKeyUpdateOne) SetDeviceLimit(v int) *AccessKeyUpdateOne {
	_u.mutation.ResetDeviceLimit()
	_u.mutation.SetDeviceLimit(v)
	return _u
}

// SetNillableDeviceLimit sets the "device_limit" field if the given value is not nil.
func (_u *AccessKeyUpdateOne) SetNillableDeviceLimit(v *int) *AccessKeyUpdateOne {
	if v != nil {
		_u.SetDeviceLimit(*v)
	}
	return _u
}

// AddDeviceLimit adds value to the "device_limit" field.
func (_u *AccessKeyUpdateOne) AddDeviceLimit(v int) *AccessKeyUpdateOne {
	_u.mutation.AddDeviceLimit(v)
	return _u
}

// SetDeviceCount sets the "device_count" field.
func (_u *AccessKeyUpdateOne) SetDeviceCount(v int) *AccessKeyUpdateOne {
	_u.mutation.ResetDeviceCount()
	_u.mutation.SetDeviceCount(v)
	return _u
}

// SetNillableDeviceCount sets the "device_count" field if the given value is not nil.
func (_u *AccessKeyUpdateOne) SetNillableDeviceCount(v *int) *AccessKeyUpdateOne {
	if v != nil {
		_u.SetDeviceCount(*v)
	}
	return _u
}

// AddDeviceCount adds value to the "device_count" field.
func (_u *AccessKeyUpdateOne) AddDeviceCount(v int) *AccessKeyUpdateOne {
	_u.mutation.AddDeviceCount(v)
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *AccessKeyUpdateOne) SetLastUsedAt(v time.Time) *AccessKeyUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *AccessKeyUpdateOne) SetNillableLastUsedAt(v *time.Time) *AccessKeyUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *AccessKeyUpdateOne) ClearLastUsedAt() *AccessKeyUpdateOne {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// AddDeviceIDs adds the "devices" edge to the BoundDevice entity by IDs.
func (_u *AccessKeyUpdateOne) AddDeviceIDs(ids ...uuid.UUID) *AccessKeyUpdateOne {
	_u.mutation.AddDeviceIDs(ids...)
	return _u
}

// AddDevices adds the "devices" edges to the BoundDevice entity.
func (_u *AccessKeyUpdateOne) AddDevices(v ...*BoundDevice) *AccessKeyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeviceIDs(ids...)
}

// Mutation returns the AccessKeyMutation object of the builder.
func (_u *AccessKeyUpdateOne) Mutation() *AccessKeyMutation {
	return _u.mutation
}

// ClearDevices clears all "devices" edges to the BoundDevice entity.
func (_u *AccessKeyUpdateOne) ClearDevices() *AccessKeyUpdateOne {
	_u.mutation.ClearDevices()
	return _u
}

// RemoveDeviceIDs removes the "devices" edge to BoundDevice entities by IDs.
func (_u *AccessKeyUpdateOne) RemoveDeviceIDs(ids ...uuid.UUID) *AccessKeyUpdateOne {
	_u.mutation.RemoveDeviceIDs(ids...)
	return _u
}

// RemoveDevices removes "devices" edges to BoundDevice entities.
func (_u *AccessKeyUpdateOne) RemoveDevices(v ...*BoundDevice) *AccessKeyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeviceIDs(ids...)
}

// Where appends a list predicates to the AccessKeyUpdate builder.
func (_u *AccessKeyUpdateOne) Where(ps ...predicate.AccessKey) *AccessKeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccessKeyUpdateOne) Select(field string, fields ...string) *AccessKeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AccessKey entity.
func (_u *AccessKeyUpdateOne) Save(ctx context.Context) (*AccessKey, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccessKeyUpdateOne) SaveX(ctx context.Context) *AccessKey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccessKeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccessKeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccessKeyUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := accesskey.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "AccessKey.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeviceLimit(); ok {
		if err := accesskey.DeviceLimitValidator(v); err != nil {
			return &ValidationError{Name: "device_limit", err: fmt.Errorf(`ent: validator failed for field "AccessKey.device_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeviceCount(); ok {
		if err := accesskey.DeviceCountValidator(v); err != nil {
			return &ValidationError{Name: "device_count", err: fmt.Errorf(`ent: validator failed for field "AccessKey.device_count": %w`, err)}
		}
	}
	return nil
}

func (_u *AccessKeyUpdateOne) sqlSave(ctx context.Context) (_node *AccessKey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(accesskey.Table, accesskey.Columns, sqlgraph.NewFieldSpec(accesskey.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AccessKey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, accesskey.FieldID)
		for _, f := range fields {
			if !accesskey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != accesskey.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(accesskey.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(accesskey.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(accesskey.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(accesskey.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeviceLimit(); ok {
		_spec.SetField(accesskey.FieldDeviceLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeviceLimit(); ok {
		_spec.AddField(accesskey.FieldDeviceLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeviceCount(); ok {
		_spec.SetField(accesskey.FieldDeviceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeviceCount(); ok {
		_spec.AddField(accesskey.FieldDeviceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(accesskey.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(accesskey.FieldLastUsedAt, field.TypeTime)
	}
	if _u.mutation.DevicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDevicesIDs(); len(nodes) > 0 && !_u.mutation.DevicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DevicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AccessKey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accesskey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"digitflow/ent/accesskey"
	"digitflow/ent/bounddevice"
	"digitflow/ent/predicate"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccessKey   = "AccessKey"
	TypeBoundDevice = "BoundDevice"
)

// AccessKeyMutation represents an operation that mutates the AccessKey nodes in the graph.
type AccessKeyMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	key             *string
	is_active       *bool
	expires_at      *time.Time
	device_limit    *int
	adddevice_limit *int
	device_count    *int
	adddevice_count *int
	last_used_at    *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	devices         map[uuid.UUID]struct{}
	removeddevices  map[uuid.UUID]struct{}
	cleareddevices  bool
	done            bool
	oldValue        func(context.Context) (*AccessKey, error)
	predicates      []predicate.AccessKey
}

var _ ent.Mutation = (*AccessKeyMutation)(nil)

// accesskeyOption allows management of the mutation configuration using functional options.
type accesskeyOption func(*AccessKeyMutation)

// newAccessKeyMutation creates new mutation for the AccessKey entity.
func newAccessKeyMutation(c config, op Op, opts ...accesskeyOption) *AccessKeyMutation {
	m := &AccessKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeAccessKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccessKeyID sets the ID field of the mutation.
func withAccessKeyID(id uuid.UUID) accesskeyOption {
	return func(m *AccessKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *AccessKey
		)
		m.oldValue = func(ctx context.Context) (*AccessKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AccessKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccessKey sets the old AccessKey of the mutation.
func withAccessKey(node *AccessKey) accesskeyOption {
	return func(m *AccessKeyMutation) {
		m.oldValue = func(context.Context) (*AccessKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccessKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccessKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AccessKey entities.
func (m *AccessKeyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccessKeyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccessKeyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AccessKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *AccessKeyMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *AccessKeyMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the AccessKey entity.
// If the AccessKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessKeyMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *AccessKeyMutation) ResetKey() {
	m.key = nil
}

// SetIsActive sets the "is_active" field.
func (m *AccessKeyMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AccessKeyMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the AccessKey entity.
// If the AccessKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessKeyMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AccessKeyMutation) ResetIsActive() {
	m.is_active = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *AccessKeyMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *AccessKeyMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the AccessKey entity.
// If the AccessKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessKeyMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *AccessKeyMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[accesskey.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *AccessKeyMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[accesskey.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *AccessKeyMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, accesskey.FieldExpiresAt)
}

// SetDeviceLimit sets the "device_limit" field.
func (m *AccessKeyMutation) SetDeviceLimit(i int) {
	m.device_limit = &i
	m.adddevice_limit = nil
}

// DeviceLimit returns the value of the "device_limit" field in the mutation.
func (m *AccessKeyMutation) DeviceLimit() (r int, exists bool) {
	v := m.device_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceLimit returns the old "device_limit" field's value of the AccessKey entity.
// If the AccessKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessKeyMutation) OldDeviceLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceLimit: %w", err)
	}
	return oldValue.DeviceLimit, nil
}

// AddDeviceLimit adds i to the "device_limit" field.
func (m *AccessKeyMutation) AddDeviceLimit(i int) {
	if m.adddevice_limit != nil {
		*m.adddevice_limit += i
	} else {
		m.adddevice_limit = &i
	}
}

// AddedDeviceLimit returns the value that was added to the "device_limit" field in this mutation.
func (m *AccessKeyMutation) AddedDeviceLimit() (r int, exists bool) {
	v := m.adddevice_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeviceLimit resets all changes to the "device_limit" field.
func (m *AccessKeyMutation) ResetDeviceLimit() {
	m.device_limit = nil
	m.adddevice_limit = nil
}

// SetDeviceCount sets the "device_count" field.
func (m *AccessKeyMutation) SetDeviceCount(i int) {
	m.device_count = &i
	m.adddevice_count = nil
}

// DeviceCount returns the value of the "device_count" field in the mutation.
func (m *AccessKeyMutation) DeviceCount() (r int, exists bool) {
	v := m.device_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceCount returns the old "device_count" field's value of the AccessKey entity.
// If the AccessKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessKeyMutation) OldDeviceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceCount: %w", err)
	}
	return oldValue.DeviceCount, nil
}

// AddDeviceCount adds i to the "device_count" field.
func (m *AccessKeyMutation) AddDeviceCount(i int) {
	if m.adddevice_count != nil {
		*m.adddevice_count += i
	} else {
		m.adddevice_count = &i
	}
}

// AddedDeviceCount returns the value that was added to the "device_count" field in this mutation.
func (m *AccessKeyMutation) AddedDeviceCount() (r int, exists bool) {
	v := m.adddevice_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeviceCount resets all changes to the "device_count" field.
func (m *AccessKeyMutation) ResetDeviceCount() {
	m.device_count = nil
	m.adddevice_count = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *AccessKeyMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *AccessKeyMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the AccessKey entity.
// If the AccessKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessKeyMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *AccessKeyMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[accesskey.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *AccessKeyMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[accesskey.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *AccessKeyMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, accesskey.FieldLastUsedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AccessKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccessKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AccessKey entity.
// If the AccessKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccessKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddDeviceIDs adds the "devices" edge to the BoundDevice entity by ids.
func (m *AccessKeyMutation) AddDeviceIDs(ids ...uuid.UUID) {
	if m.devices == nil {
		m.devices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.devices[ids[i]] = struct{}{}
	}
}

// ClearDevices clears the "devices" edge to the BoundDevice entity.
func (m *AccessKeyMutation) ClearDevices() {
	m.cleareddevices = true
}

// DevicesCleared reports if the "devices" edge to the BoundDevice entity was cleared.
func (m *AccessKeyMutation) DevicesCleared() bool {
	return m.cleareddevices
}

// RemoveDeviceIDs removes the "devices" edge to the BoundDevice entity by IDs.
func (m *AccessKeyMutation) RemoveDeviceIDs(ids ...uuid.UUID) {
	if m.removeddevices == nil {
		m.removeddevices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.devices, ids[i])
		m.removeddevices[ids[i]] = struct{}{}
	}
}

// RemovedDevices returns the removed IDs of the "devices" edge to the BoundDevice entity.
func (m *AccessKeyMutation) RemovedDevicesIDs() (ids []uuid.UUID) {
	for id := range m.removeddevices {
		ids = append(ids, id)
	}
	return
}

// DevicesIDs returns the "devices" edge IDs in the mutation.
func (m *AccessKeyMutation) DevicesIDs() (ids []uuid.UUID) {
	for id := range m.devices {
		ids = append(ids, id)
	}
	return
}

// ResetDevices resets all changes to the "devices" edge.
func (m *AccessKeyMutation) ResetDevices() {
	m.devices = nil
	m.cleareddevices = false
	m.removeddevices = nil
}

// Where appends a list predicates to the AccessKeyMutation builder.
func (m *AccessKeyMutation) Where(ps ...predicate.AccessKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccessKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccessKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AccessKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccessKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccessKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AccessKey).
func (m *AccessKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccessKeyMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.key != nil {
		fields = append(fields, accesskey.FieldKey)
	}
	if m.is_active != nil {
		fields = append(fields, accesskey.FieldIsActive)
	}
	if m.expires_at != nil {
		fields = append(fields, accesskey.FieldExpiresAt)
	}
	if m.device_limit != nil {
		fields = append(fields, accesskey.FieldDeviceLimit)
	}
	if m.device_count != nil {
		fields = append(fields, accesskey.FieldDeviceCount)
	}
	if m.last_used_at != nil {
		fields = append(fields, accesskey.FieldLastUsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, accesskey.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccessKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case accesskey.FieldKey:
		return m.Key()
	case accesskey.FieldIsActive:
		return m.IsActive()
	case accesskey.FieldExpiresAt:
		return m.ExpiresAt()
	case accesskey.FieldDeviceLimit:
		return m.DeviceLimit()
	case accesskey.FieldDeviceCount:
		return m.DeviceCount()
	case accesskey.FieldLastUsedAt:
		return m.LastUsedAt()
	case accesskey.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccessKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case accesskey.FieldKey:
		return m.OldKey(ctx)
	case accesskey.FieldIsActive:
		return m.OldIsActive(ctx)
	case accesskey.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case accesskey.FieldDeviceLimit:
		return m.OldDeviceLimit(ctx)
	case accesskey.FieldDeviceCount:
		return m.OldDeviceCount(ctx)
	case accesskey.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case accesskey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AccessKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccessKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case accesskey.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case accesskey.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case accesskey.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case accesskey.FieldDeviceLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceLimit(v)
		return nil
	case accesskey.FieldDeviceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceCount(v)
		return nil
	case accesskey.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case accesskey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AccessKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccessKeyMutation) AddedFields() []string {
	var fields []string
	if m.adddevice_limit != nil {
		fields = append(fields, accesskey.FieldDeviceLimit)
	}
	if m.adddevice_count != nil {
		fields = append(fields, accesskey.FieldDeviceCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccessKeyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case accesskey.FieldDeviceLimit:
		return m.AddedDeviceLimit()
	case accesskey.FieldDeviceCount:
		return m.AddedDeviceCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccessKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case accesskey.FieldDeviceLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeviceLimit(v)
		return nil
	case accesskey.FieldDeviceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeviceCount(v)
		return nil
	}
	return fmt.Errorf("unknown AccessKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccessKeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(accesskey.FieldExpiresAt) {
		fields = append(fields, accesskey.FieldExpiresAt)
	}
	if m.FieldCleared(accesskey.FieldLastUsedAt) {
		fields = append(fields, accesskey.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccessKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccessKeyMutation) ClearField(name string) error {
	switch name {
	case accesskey.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case accesskey.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown AccessKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccessKeyMutation) ResetField(name string) error {
	switch name {
	case accesskey.FieldKey:
		m.ResetKey()
		return nil
	case accesskey.FieldIsActive:
		m.ResetIsActive()
		return nil
	case accesskey.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case accesskey.FieldDeviceLimit:
		m.ResetDeviceLimit()
		return nil
	case accesskey.FieldDeviceCount:
		m.ResetDeviceCount()
		return nil
	case accesskey.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case accesskey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AccessKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccessKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.devices != nil {
		edges = append(edges, accesskey.EdgeDevices)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccessKeyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case accesskey.EdgeDevices:
		ids := make([]ent.Value, 0, len(m.devices))
		for id := range m.devices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccessKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddevices != nil {
		edges = append(edges, accesskey.EdgeDevices)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccessKeyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case accesskey.EdgeDevices:
		ids := make([]ent.Value, 0, len(m.removeddevices))
		for id := range m.removeddevices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccessKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddevices {
		edges = append(edges, accesskey.EdgeDevices)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccessKeyMutation) EdgeCleared(name string) bool {
	switch name {
	case accesskey.EdgeDevices:
		return m.cleareddevices
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccessKeyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AccessKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccessKeyMutation) ResetEdge(name string) error {
	switch name {
	case accesskey.EdgeDevices:
		m.ResetDevices()
		return nil
	}
	return fmt.Errorf("unknown AccessKey edge %s", name)
}

// BoundDeviceMutation represents an operation that mutates the BoundDevice nodes in the graph.
type BoundDeviceMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	fingerprint   *string
	is_active     *bool
	first_seen_at *time.Time
	last_seen_at  *time.Time
	clearedFields map[string]struct{}
	key           *uuid.UUID
	clearedkey    bool
	done          bool
	oldValue      func(context.Context) (*BoundDevice, error)
	predicates    []predicate.BoundDevice
}

var _ ent.Mutation = (*BoundDeviceMutation)(nil)

// bounddeviceOption allows management of the mutation configuration using functional options.
type bounddeviceOption func(*BoundDeviceMutation)

// newBoundDeviceMutation creates new mutation for the BoundDevice entity.
func newBoundDeviceMutation(c config, op Op, opts ...bounddeviceOption) *BoundDeviceMutation {
	m := &BoundDeviceMutation{
		config:        c,
		op:            op,
		typ:           TypeBoundDevice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBoundDeviceID sets the ID field of the mutation.
func withBoundDeviceID(id uuid.UUID) bounddeviceOption {
	return func(m *BoundDeviceMutation) {
		var (
			err   error
			once  sync.Once
			value *BoundDevice
		)
		m.oldValue = func(ctx context.Context) (*BoundDevice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BoundDevice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBoundDevice sets the old BoundDevice of the mutation.
func withBoundDevice(node *BoundDevice) bounddeviceOption {
	return func(m *BoundDeviceMutation) {
		m.oldValue = func(context.Context) (*BoundDevice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BoundDeviceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BoundDeviceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BoundDevice entities.
func (m *BoundDeviceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BoundDeviceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BoundDeviceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BoundDevice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFingerprint sets the "fingerprint" field.
func (m *BoundDeviceMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *BoundDeviceMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the BoundDevice entity.
// If the BoundDevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoundDeviceMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *BoundDeviceMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetIsActive sets the "is_active" field.
func (m *BoundDeviceMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *BoundDeviceMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the BoundDevice entity.
// If the BoundDevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoundDeviceMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *BoundDeviceMutation) ResetIsActive() {
	m.is_active = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *BoundDeviceMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *BoundDeviceMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the BoundDevice entity.
// If the BoundDevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoundDeviceMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *BoundDeviceMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *BoundDeviceMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *BoundDeviceMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the BoundDevice entity.
// If the BoundDevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoundDeviceMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *BoundDeviceMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetKeyID sets the "key" edge to the AccessKey entity by id.
func (m *BoundDeviceMutation) SetKeyID(id uuid.UUID) {
	m.key = &id
}

// ClearKey clears the "key" edge to the AccessKey entity.
func (m *BoundDeviceMutation) ClearKey() {
	m.clearedkey = true
}

// KeyCleared reports if the "key" edge to the AccessKey entity was cleared.
func (m *BoundDeviceMutation) KeyCleared() bool {
	return m.clearedkey
}

// KeyID returns the "key" edge ID in the mutation.
func (m *BoundDeviceMutation) KeyID() (id uuid.UUID, exists bool) {
	if m.key != nil {
		return *m.key, true
	}
	return
}

// KeyIDs returns the "key" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// KeyID instead. It exists only for internal usage by the builders.
func (m *BoundDeviceMutation) KeyIDs() (ids []uuid.UUID) {
	if id := m.key; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetKey resets all changes to the "key" edge.
func (m *BoundDeviceMutation) ResetKey() {
	m.key = nil
	m.clearedkey = false
}

// Where appends a list predicates to the BoundDeviceMutation builder.
func (m *BoundDeviceMutation) Where(ps ...predicate.BoundDevice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BoundDeviceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BoundDeviceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BoundDevice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BoundDeviceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BoundDeviceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BoundDevice).
func (m *BoundDeviceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BoundDeviceMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.fingerprint != nil {
		fields = append(fields, bounddevice.FieldFingerprint)
	}
	if m.is_active != nil {
		fields = append(fields, bounddevice.FieldIsActive)
	}
	if m.first_seen_at != nil {
		fields = append(fields, bounddevice.FieldFirstSeenAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, bounddevice.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BoundDeviceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bounddevice.FieldFingerprint:
		return m.Fingerprint()
	case bounddevice.FieldIsActive:
		return m.IsActive()
	case bounddevice.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case bounddevice.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BoundDeviceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bounddevice.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case bounddevice.FieldIsActive:
		return m.OldIsActive(ctx)
	case bounddevice.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case bounddevice.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown BoundDevice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoundDeviceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bounddevice.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case bounddevice.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case bounddevice.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case bounddevice.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown BoundDevice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BoundDeviceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BoundDeviceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoundDeviceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BoundDevice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BoundDeviceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BoundDeviceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BoundDeviceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BoundDevice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BoundDeviceMutation) ResetField(name string) error {
	switch name {
	case bounddevice.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case bounddevice.FieldIsActive:
		m.ResetIsActive()
		return nil
	case bounddevice.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case bounddevice.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown BoundDevice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BoundDeviceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.key != nil {
		edges = append(edges, bounddevice.EdgeKey)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BoundDeviceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bounddevice.EdgeKey:
		if id := m.key; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BoundDeviceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BoundDeviceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BoundDeviceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedkey {
		edges = append(edges, bounddevice.EdgeKey)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BoundDeviceMutation) EdgeCleared(name string) bool {
	switch name {
	case bounddevice.EdgeKey:
		return m.clearedkey
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BoundDeviceMutation) ClearEdge(name string) error {
	switch name {
	case bounddevice.EdgeKey:
		m.ClearKey()
		return nil
	}
	return fmt.Errorf("unknown BoundDevice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BoundDeviceMutation) ResetEdge(name string) error {
	switch name {
	case bounddevice.EdgeKey:
		m.ResetKey()
		return nil
	}
	return fmt.Errorf("unknown BoundDevice edge %s", name)
}

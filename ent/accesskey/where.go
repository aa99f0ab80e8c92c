// Code generated by ent, DO NOT EDIT.

package accesskey

import (
	"digitflow/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLTE(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldKey, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldIsActive, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldExpiresAt, v))
}

// DeviceLimit applies equality check predicate on the "device_limit" field. It's identical to DeviceLimitEQ.
func DeviceLimit(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldDeviceLimit, v))
}

// DeviceCount applies equality check predicate on the "device_count" field. It's identical to DeviceCountEQ.
func DeviceCount(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldDeviceCount, v))
}

// LastUsedAt applies equality check predicate on the "last_used_at" field. It's identical to LastUsedAtEQ.
func LastUsedAt(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldLastUsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldCreatedAt, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldContainsFold(FieldKey, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNEQ(FieldIsActive, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.AccessKey {
	return predicate.AccessKey(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNotNull(FieldExpiresAt))
}

// DeviceLimitEQ applies the EQ predicate on the "device_limit" field.
func DeviceLimitEQ(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldDeviceLimit, v))
}

// DeviceLimitNEQ applies the NEQ predicate on the "device_limit" field.
func DeviceLimitNEQ(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNEQ(FieldDeviceLimit, v))
}

// DeviceLimitIn applies the In predicate on the "device_limit" field.
func DeviceLimitIn(vs ...int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldIn(FieldDeviceLimit, vs...))
}

// DeviceLimitNotIn applies the NotIn predicate on the "device_limit" field.
func DeviceLimitNotIn(vs ...int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNotIn(FieldDeviceLimit, vs...))
}

// DeviceLimitGT applies the GT predicate on the "device_limit" field.
func DeviceLimitGT(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGT(FieldDeviceLimit, v))
}

// DeviceLimitGTE applies the GTE predicate on the "device_limit" field.
func DeviceLimitGTE(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGTE(FieldDeviceLimit, v))
}

// DeviceLimitLT applies the LT predicate on the "device_limit" field.
func DeviceLimitLT(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLT(FieldDeviceLimit, v))
}

// DeviceLimitLTE applies the LTE predicate on the "device_limit" field.
func DeviceLimitLTE(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLTE(FieldDeviceLimit, v))
}

// DeviceCountEQ applies the EQ predicate on the "device_count" field.
func DeviceCountEQ(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldDeviceCount, v))
}

// DeviceCountNEQ applies the NEQ predicate on the "device_count" field.
func DeviceCountNEQ(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNEQ(FieldDeviceCount, v))
}

// DeviceCountIn applies the In predicate on the "device_count" field.
func DeviceCountIn(vs ...int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldIn(FieldDeviceCount, vs...))
}

// DeviceCountNotIn applies the NotIn predicate on the "device_count" field.
func DeviceCountNotIn(vs ...int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNotIn(FieldDeviceCount, vs...))
}

// DeviceCountGT applies the GT predicate on the "device_count" field.
func DeviceCountGT(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGT(FieldDeviceCount, v))
}

// DeviceCountGTE applies the GTE predicate on the "device_count" field.
func DeviceCountGTE(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGTE(FieldDeviceCount, v))
}

// DeviceCountLT applies the LT predicate on the "device_count" field.
func DeviceCountLT(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLT(FieldDeviceCount, v))
}

// DeviceCountLTE applies the LTE predicate on the "device_count" field.
func DeviceCountLTE(v int) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLTE(FieldDeviceCount, v))
}

// LastUsedAtEQ applies the EQ predicate on the "last_used_at" field.
func LastUsedAtEQ(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldLastUsedAt, v))
}

// LastUsedAtNEQ applies the NEQ predicate on the "last_used_at" field.
func LastUsedAtNEQ(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNEQ(FieldLastUsedAt, v))
}

// LastUsedAtIn applies the In predicate on the "last_used_at" field.
func LastUsedAtIn(vs ...time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldIn(FieldLastUsedAt, vs...))
}

// LastUsedAtNotIn applies the NotIn predicate on the "last_used_at" field.
func LastUsedAtNotIn(vs ...time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNotIn(FieldLastUsedAt, vs...))
}

// LastUsedAtGT applies the GT predicate on the "last_used_at" field.
func LastUsedAtGT(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGT(FieldLastUsedAt, v))
}

// LastUsedAtGTE applies the GTE predicate on the "last_used_at" field.
func LastUsedAtGTE(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGTE(FieldLastUsedAt, v))
}

// LastUsedAtLT applies the LT predicate on the "last_used_at" field.
func LastUsedAtLT(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLT(FieldLastUsedAt, v))
}

// LastUsedAtLTE applies the LTE predicate on the "last_used_at" field.
func LastUsedAtLTE(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLTE(FieldLastUsedAt, v))
}

// LastUsedAtIsNil applies the IsNil predicate on the "last_used_at" field.
func LastUsedAtIsNil() predicate.AccessKey {
	return predicate.AccessKey(sql.FieldIsNull(FieldLastUsedAt))
}

// LastUsedAtNotNil applies the NotNil predicate on the "last_used_at" field.
func LastUsedAtNotNil() predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNotNull(FieldLastUsedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AccessKey {
	return predicate.AccessKey(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDevices applies the HasEdge predicate on the "devices" edge.
func HasDevices() predicate.AccessKey {
	return predicate.AccessKey(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DevicesTable, DevicesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDevicesWith applies the HasEdge predicate on the "devices" edge with a given conditions (other predicates).
func HasDevicesWith(preds ...predicate.BoundDevice) predicate.AccessKey {
	return predicate.AccessKey(func(s *sql.Selector) {
		step := newDevicesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AccessKey) predicate.AccessKey {
	return predicate.AccessKey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AccessKey) predicate.AccessKey {
	return predicate.AccessKey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AccessKey) predicate.AccessKey {
	return predicate.AccessKey(sql.NotPredicates(p))
}

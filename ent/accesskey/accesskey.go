// Code generated by ent, DO NOT EDIT.

package accesskey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the accesskey type in the database.
	Label = "access_key"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldDeviceLimit holds the string denoting the device_limit field in the database.
	FieldDeviceLimit = "device_limit"
	// FieldDeviceCount holds the string denoting the device_count field in the database.
	FieldDeviceCount = "device_count"
	// FieldLastUsedAt holds the string denoting the last_used_at field in the database.
	FieldLastUsedAt = "last_used_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDevices holds the string denoting the devices edge name in mutations.
	EdgeDevices = "devices"
	// Table holds the table name of the accesskey in the database.
	Table = "access_keys"
	// DevicesTable is the table that holds the devices relation/edge.
	DevicesTable = "bound_devices"
	// DevicesInverseTable is the table name for the BoundDevice entity.
	// It exists in this package in order to avoid circular dependency with the "bounddevice" package.
	DevicesInverseTable = "bound_devices"
	// DevicesColumn is the table column denoting the devices relation/edge.
	DevicesColumn = "access_key_devices"
)

// Columns holds all SQL columns for accesskey fields.
var Columns = []string{
	FieldID,
	FieldKey,
	FieldIsActive,
	FieldExpiresAt,
	FieldDeviceLimit,
	FieldDeviceCount,
	FieldLastUsedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// KeyValidator is a validator for the "key" field. It is called by the builders before save.
	KeyValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultDeviceLimit holds the default value on creation for the "device_limit" field.
	DefaultDeviceLimit int
	// DeviceLimitValidator is a validator for the "device_limit" field. It is called by the builders before save.
	DeviceLimitValidator func(int) error
	// DefaultDeviceCount holds the default value on creation for the "device_count" field.
	DefaultDeviceCount int
	// DeviceCountValidator is a validator for the "device_count" field. It is called by the builders before save.
	DeviceCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AccessKey queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByDeviceLimit orders the results by the device_limit field.
func ByDeviceLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceLimit, opts...).ToFunc()
}

// ByDeviceCount orders the results by the device_count field.
func ByDeviceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceCount, opts...).ToFunc()
}

// ByLastUsedAt orders the results by the last_used_at field.
func ByLastUsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUsedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDevicesCount orders the results by devices count.
func ByDevicesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDevicesStep(), opts...)
	}
}

// ByDevices orders the results by devices terms.
func ByDevices(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDevicesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDevicesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DevicesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DevicesTable, DevicesColumn),
	)
}

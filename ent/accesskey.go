// Code generated by ent, DO NOT EDIT.

package ent

import (
	"digitflow/ent/accesskey"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// AccessKey is the model entity for the AccessKey schema.
type AccessKey struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// DeviceLimit holds the value of the "device_limit" field.
	DeviceLimit int `json:"device_limit,omitempty"`
	// DeviceCount holds the value of the "device_count" field.
	DeviceCount int `json:"device_count,omitempty"`
	// LastUsedAt holds the value of the "last_used_at" field.
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AccessKeyQuery when eager-loading is set.
	Edges        AccessKeyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AccessKeyEdges holds the relations/edges for other nodes in the graph.
type AccessKeyEdges struct {
	// Devices holds the value of the devices edge.
	Devices []*BoundDevice `json:"devices,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DevicesOrErr returns the Devices value or an error if the edge
// was not loaded in eager-loading.
func (e AccessKeyEdges) DevicesOrErr() ([]*BoundDevice, error) {
	if e.loadedTypes[0] {
		return e.Devices, nil
	}
	return nil, &NotLoadedError{edge: "devices"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AccessKey) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case accesskey.FieldIsActive:
			values[i] = new(sql.NullBool)
		case accesskey.FieldDeviceLimit, accesskey.FieldDeviceCount:
			values[i] = new(sql.NullInt64)
		case accesskey.FieldKey:
			values[i] = new(sql.NullString)
		case accesskey.FieldExpiresAt, accesskey.FieldLastUsedAt, accesskey.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case accesskey.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AccessKey fields.
func (_m *AccessKey) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case accesskey.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case accesskey.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case accesskey.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case accesskey.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case accesskey.FieldDeviceLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field device_limit", values[i])
			} else if value.Valid {
				_m.DeviceLimit = int(value.Int64)
			}
		case accesskey.FieldDeviceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field device_count", values[i])
			} else if value.Valid {
				_m.DeviceCount = int(value.Int64)
			}
		case accesskey.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = new(time.Time)
				*_m.LastUsedAt = value.Time
			}
		case accesskey.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AccessKey.
// This includes values selected through modifiers, order, etc.
func (_m *AccessKey) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDevices queries the "devices" edge of the AccessKey entity.
func (_m *AccessKey) QueryDevices() *BoundDeviceQuery {
	return NewAccessKeyClient(_m.config).QueryDevices(_m)
}

// Update returns a builder for updating this AccessKey.
// Note that you need to call AccessKey.Unwrap() before calling this method if this AccessKey
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AccessKey) Update() *AccessKeyUpdateOne {
	return NewAccessKeyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AccessKey entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AccessKey) Unwrap() *AccessKey {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AccessKey is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AccessKey) String() string {
	var builder strings.Builder
	builder.WriteString("AccessKey(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("device_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeviceLimit))
	builder.WriteString(", ")
	builder.WriteString("device_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeviceCount))
	builder.WriteString(", ")
	if v := _m.LastUsedAt; v != nil {
		builder.WriteString("last_used_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AccessKeys is a parsable slice of AccessKey.
type AccessKeys []*AccessKey

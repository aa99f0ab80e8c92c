// Code generated by ent, DO NOT EDIT.

package ent

import (
	"digitflow/ent/accesskey"
	"digitflow/ent/bounddevice"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// BoundDevice is the model entity for the BoundDevice schema.
type BoundDevice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BoundDeviceQuery when eager-loading is set.
	Edges              BoundDeviceEdges `json:"edges"`
	access_key_devices *uuid.UUID
	selectValues       sql.SelectValues
}

// BoundDeviceEdges holds the relations/edges for other nodes in the graph.
type BoundDeviceEdges struct {
	// Key holds the value of the key edge.
	Key *AccessKey `json:"key,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// KeyOrErr returns the Key value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BoundDeviceEdges) KeyOrErr() (*AccessKey, error) {
	if e.Key != nil {
		return e.Key, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: accesskey.Label}
	}
	return nil, &NotLoadedError{edge: "key"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BoundDevice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bounddevice.FieldIsActive:
			values[i] = new(sql.NullBool)
		case bounddevice.FieldFingerprint:
			values[i] = new(sql.NullString)
		case bounddevice.FieldFirstSeenAt, bounddevice.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		case bounddevice.FieldID:
			values[i] = new(uuid.UUID)
		case bounddevice.ForeignKeys[0]: // access_key_devices
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BoundDevice fields.
func (_m *BoundDevice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bounddevice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case bounddevice.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case bounddevice.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case bounddevice.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case bounddevice.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case bounddevice.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field access_key_devices", values[i])
			} else if value.Valid {
				_m.access_key_devices = new(uuid.UUID)
				*_m.access_key_devices = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BoundDevice.
// This includes values selected through modifiers, order, etc.
func (_m *BoundDevice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryKey queries the "key" edge of the BoundDevice entity.
func (_m *BoundDevice) QueryKey() *AccessKeyQuery {
	return NewBoundDeviceClient(_m.config).QueryKey(_m)
}

// Update returns a builder for updating this BoundDevice.
// Note that you need to call BoundDevice.Unwrap() before calling this method if this BoundDevice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BoundDevice) Update() *BoundDeviceUpdateOne {
	return NewBoundDeviceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BoundDevice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BoundDevice) Unwrap() *BoundDevice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BoundDevice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BoundDevice) String() string {
	var builder strings.Builder
	builder.WriteString("BoundDevice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BoundDevices is a parsable slice of BoundDevice.
type BoundDevices []*BoundDevice

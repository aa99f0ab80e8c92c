// Code generated by ent, DO NOT EDIT.

package ent

import (
	"digitflow/ent/accesskey"
	"digitflow/ent/bounddevice"
	"digitflow/ent/schema"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accesskeyFields := schema.AccessKey{}.Fields()
	_ = accesskeyFields
	// accesskeyDescKey is the schema descriptor for key field.
	accesskeyDescKey := accesskeyFields[1].Descriptor()
	// accesskey.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	accesskey.KeyValidator = func() func(string) error {
		validators := accesskeyDescKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(key string) error {
			for _, fn := range fns {
				if err := fn(key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// accesskeyDescIsActive is the schema descriptor for is_active field.
	accesskeyDescIsActive := accesskeyFields[2].Descriptor()
	// accesskey.DefaultIsActive holds the default value on creation for the is_active field.
	accesskey.DefaultIsActive = accesskeyDescIsActive.Default.(bool)
	// accesskeyDescDeviceLimit is the schema descriptor for device_limit field.
	accesskeyDescDeviceLimit := accesskeyFields[4].Descriptor()
	// accesskey.DefaultDeviceLimit holds the default value on creation for the device_limit field.
	accesskey.DefaultDeviceLimit = accesskeyDescDeviceLimit.Default.(int)
	// accesskey.DeviceLimitValidator is a validator for the "device_limit" field. It is called by the builders before save.
	accesskey.DeviceLimitValidator = accesskeyDescDeviceLimit.Validators[0].(func(int) error)
	// accesskeyDescDeviceCount is the schema descriptor for device_count field.
	accesskeyDescDeviceCount := accesskeyFields[5].Descriptor()
	// accesskey.DefaultDeviceCount holds the default value on creation for the device_count field.
	accesskey.DefaultDeviceCount = accesskeyDescDeviceCount.Default.(int)
	// accesskey.DeviceCountValidator is a validator for the "device_count" field. It is called by the builders before save.
	accesskey.DeviceCountValidator = accesskeyDescDeviceCount.Validators[0].(func(int) error)
	// accesskeyDescCreatedAt is the schema descriptor for created_at field.
	accesskeyDescCreatedAt := accesskeyFields[7].Descriptor()
	// accesskey.DefaultCreatedAt holds the default value on creation for the created_at field.
	accesskey.DefaultCreatedAt = accesskeyDescCreatedAt.Default.(func() time.Time)
	// accesskeyDescID is the schema descriptor for id field.
	accesskeyDescID := accesskeyFields[0].Descriptor()
	// accesskey.DefaultID holds the default value on creation for the id field.
	accesskey.DefaultID = accesskeyDescID.Default.(func() uuid.UUID)
	bounddeviceFields := schema.BoundDevice{}.Fields()
	_ = bounddeviceFields
	// bounddeviceDescFingerprint is the schema descriptor for fingerprint field.
	bounddeviceDescFingerprint := bounddeviceFields[1].Descriptor()
	// bounddevice.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	bounddevice.FingerprintValidator = func() func(string) error {
		validators := bounddeviceDescFingerprint.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(fingerprint string) error {
			for _, fn := range fns {
				if err := fn(fingerprint); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// bounddeviceDescIsActive is the schema descriptor for is_active field.
	bounddeviceDescIsActive := bounddeviceFields[2].Descriptor()
	// bounddevice.DefaultIsActive holds the default value on creation for the is_active field.
	bounddevice.DefaultIsActive = bounddeviceDescIsActive.Default.(bool)
	// bounddeviceDescFirstSeenAt is the schema descriptor for first_seen_at field.
	bounddeviceDescFirstSeenAt := bounddeviceFields[3].Descriptor()
	// bounddevice.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	bounddevice.DefaultFirstSeenAt = bounddeviceDescFirstSeenAt.Default.(func() time.Time)
	// bounddeviceDescLastSeenAt is the schema descriptor for last_seen_at field.
	bounddeviceDescLastSeenAt := bounddeviceFields[4].Descriptor()
	// bounddevice.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	bounddevice.DefaultLastSeenAt = bounddeviceDescLastSeenAt.Default.(func() time.Time)
	// bounddevice.UpdateDefaultLastSeenAt holds the default value on update for the last_seen_at field.
	bounddevice.UpdateDefaultLastSeenAt = bounddeviceDescLastSeenAt.UpdateDefault.(func() time.Time)
	// bounddeviceDescID is the schema descriptor for id field.
	bounddeviceDescID := bounddeviceFields[0].Descriptor()
	// bounddevice.DefaultID holds the default value on creation for the id field.
	bounddevice.DefaultID = bounddeviceDescID.Default.(func() uuid.UUID)
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccessKeysColumns holds the columns for the "access_keys" table.
	AccessKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "key", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "device_limit", Type: field.TypeInt, Default: 1},
		{Name: "device_count", Type: field.TypeInt, Default: 0},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AccessKeysTable holds the schema information for the "access_keys" table.
	AccessKeysTable = &schema.Table{
		Name:       "access_keys",
		Columns:    AccessKeysColumns,
		PrimaryKey: []*schema.Column{AccessKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "accesskey_is_active",
				Unique:  false,
				Columns: []*schema.Column{AccessKeysColumns[2]},
			},
			{
				Name:    "accesskey_created_at",
				Unique:  false,
				Columns: []*schema.Column{AccessKeysColumns[7]},
			},
		},
	}
	// BoundDevicesColumns holds the columns for the "bound_devices" table.
	BoundDevicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "fingerprint", Type: field.TypeString, Size: 512},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "access_key_devices", Type: field.TypeUUID},
	}
	// BoundDevicesTable holds the schema information for the "bound_devices" table.
	BoundDevicesTable = &schema.Table{
		Name:       "bound_devices",
		Columns:    BoundDevicesColumns,
		PrimaryKey: []*schema.Column{BoundDevicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bound_devices_access_keys_devices",
				Columns:    []*schema.Column{BoundDevicesColumns[5]},
				RefColumns: []*schema.Column{AccessKeysColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bounddevice_fingerprint_access_key_devices",
				Unique:  true,
				Columns: []*schema.Column{BoundDevicesColumns[1], BoundDevicesColumns[5]},
			},
			{
				Name:    "bounddevice_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{BoundDevicesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccessKeysTable,
		BoundDevicesTable,
	}
)

func init() {
	BoundDevicesTable.ForeignKeys[0].RefTable = AccessKeysTable
}

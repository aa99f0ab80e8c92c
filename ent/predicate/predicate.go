// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AccessKey is the predicate function for accesskey builders.
type AccessKey func(*sql.Selector)

// BoundDevice is the predicate function for bounddevice builders.
type BoundDevice func(*sql.Selector)

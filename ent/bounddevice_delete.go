// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"digitflow/ent/bounddevice"
	"digitflow/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// BoundDeviceDelete is the builder for deleting a BoundDevice entity.
type BoundDeviceDelete struct {
	config
	hooks    []Hook
	mutation *BoundDeviceMutation
}

// Where appends a list predicates to the BoundDeviceDelete builder.
func (_d *BoundDeviceDelete) Where(ps ...predicate.BoundDevice) *BoundDeviceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BoundDeviceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BoundDeviceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BoundDeviceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(bounddevice.Table, sqlgraph.NewFieldSpec(bounddevice.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BoundDeviceDeleteOne is the builder for deleting a single BoundDevice entity.
type BoundDeviceDeleteOne struct {
	_d *BoundDeviceDelete
}

// Where appends a list predicates to the BoundDeviceDelete builder.
func (_d *BoundDeviceDeleteOne) Where(ps ...predicate.BoundDevice) *BoundDeviceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BoundDeviceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{bounddevice.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BoundDeviceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

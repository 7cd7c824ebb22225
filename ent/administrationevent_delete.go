// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ksuri/mindtriage/ent/administrationevent"
	"github.com/ksuri/mindtriage/ent/predicate"
)

// AdministrationEventDelete is the builder for deleting a AdministrationEvent entity.
type AdministrationEventDelete struct {
	config
	hooks    []Hook
	mutation *AdministrationEventMutation
}

// Where appends a list predicates to the AdministrationEventDelete builder.
func (_d *AdministrationEventDelete) Where(ps ...predicate.AdministrationEvent) *AdministrationEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdministrationEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdministrationEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdministrationEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(administrationevent.Table, sqlgraph.NewFieldSpec(administrationevent.FieldID, field.TypeInt))
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

// AdministrationEventDeleteOne is the builder for deleting a single AdministrationEvent entity.
type AdministrationEventDeleteOne struct {
	_d *AdministrationEventDelete
}

// Where appends a list predicates to the AdministrationEventDelete builder.
func (_d *AdministrationEventDeleteOne) Where(ps ...predicate.AdministrationEvent) *AdministrationEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdministrationEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{administrationevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdministrationEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

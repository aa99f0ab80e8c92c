// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"digitflow/ent/accesskey"
	"digitflow/ent/bounddevice"
	"digitflow/ent/predicate"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BoundDeviceQuery is the builder for querying BoundDevice entities.
type BoundDeviceQuery struct {
	config
	ctx        *QueryContext
	order      []bounddevice.OrderOption
	inters     []Interceptor
	predicates []predicate.BoundDevice
	withKey    *AccessKeyQuery
	withFKs    bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BoundDeviceQuery builder.
func (_q *BoundDeviceQuery) Where(ps ...predicate.BoundDevice) *BoundDeviceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BoundDeviceQuery) Limit(limit int) *BoundDeviceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BoundDeviceQuery) Offset(offset int) *BoundDeviceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BoundDeviceQuery) Unique(unique bool) *BoundDeviceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BoundDeviceQuery) Order(o ...bounddevice.OrderOption) *BoundDeviceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryKey chains the current query on the "key" edge.
func (_q *BoundDeviceQuery) QueryKey() *AccessKeyQuery {
	query := (&AccessKeyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(bounddevice.Table, bounddevice.FieldID, selector),
			sqlgraph.To(accesskey.Table, accesskey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, bounddevice.KeyTable, bounddevice.KeyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BoundDevice entity from the query.
// Returns a *NotFoundError when no BoundDevice was found.
func (_q *BoundDeviceQuery) First(ctx context.Context) (*BoundDevice, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{bounddevice.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BoundDeviceQuery) FirstX(ctx context.Context) *BoundDevice {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BoundDevice ID from the query.
// Returns a *NotFoundError when no BoundDevice ID was found.
func (_q *BoundDeviceQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{bounddevice.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BoundDeviceQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BoundDevice entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BoundDevice entity is found.
// Returns a *NotFoundError when no BoundDevice entities are found.
func (_q *BoundDeviceQuery) Only(ctx context.Context) (*BoundDevice, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{bounddevice.Label}
	default:
		return nil, &NotSingularError{bounddevice.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BoundDeviceQuery) OnlyX(ctx context.Context) *BoundDevice {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BoundDevice ID in the query.
// Returns a *NotSingularError when more than one BoundDevice ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BoundDeviceQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{bounddevice.Label}
	default:
		err = &NotSingularError{bounddevice.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BoundDeviceQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BoundDevices.
func (_q *BoundDeviceQuery) All(ctx context.Context) ([]*BoundDevice, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BoundDevice, *BoundDeviceQuery]()
	return withInterceptors[[]*BoundDevice](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BoundDeviceQuery) AllX(ctx context.Context) []*BoundDevice {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BoundDevice IDs.
func (_q *BoundDeviceQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(bounddevice.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BoundDeviceQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BoundDeviceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BoundDeviceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BoundDeviceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BoundDeviceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *BoundDeviceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BoundDeviceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BoundDeviceQuery) Clone() *BoundDeviceQuery {
	if _q == nil {
		return nil
	}
	return &BoundDeviceQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]bounddevice.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.BoundDevice{}, _q.predicates...),
		withKey:    _q.withKey.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithKey tells the query-builder to eager-load the nodes that are connected to
// the "key" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BoundDeviceQuery) WithKey(opts ...func(*AccessKeyQuery)) *BoundDeviceQuery {
	query := (&AccessKeyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withKey = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Fingerprint string `json:"fingerprint,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BoundDevice.Query().
//		GroupBy(bounddevice.FieldFingerprint).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BoundDeviceQuery) GroupBy(field string, fields ...string) *BoundDeviceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BoundDeviceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = bounddevice.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Fingerprint string `json:"fingerprint,omitempty"`
//	}
//
//	client.BoundDevice.Query().
//		Select(bounddevice.FieldFingerprint).
//		Scan(ctx, &v)
func (_q *BoundDeviceQuery) Select(fields ...string) *BoundDeviceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BoundDeviceSelect{BoundDeviceQuery: _q}
	sbuild.label = bounddevice.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BoundDeviceSelect configured with the given aggregations.
func (_q *BoundDeviceQuery) Aggregate(fns ...AggregateFunc) *BoundDeviceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BoundDeviceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !bounddevice.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *BoundDeviceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BoundDevice, error) {
	var (
		nodes       = []*BoundDevice{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withKey != nil,
		}
	)
	if _q.withKey != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, bounddevice.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BoundDevice).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BoundDevice{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withKey; query != nil {
		if err := _q.loadKey(ctx, query, nodes, nil,
			func(n *BoundDevice, e *AccessKey) { n.Edges.Key = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BoundDeviceQuery) loadKey(ctx context.Context, query *AccessKeyQuery, nodes []*BoundDevice, init func(*BoundDevice), assign func(*BoundDevice, *AccessKey)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*BoundDevice)
	for i := range nodes {
		if nodes[i].access_key_devices == nil {
			continue
		}
		fk := *nodes[i].access_key_devices
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(accesskey.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "access_key_devices" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *BoundDeviceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BoundDeviceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(bounddevice.Table, bounddevice.Columns, sqlgraph.NewFieldSpec(bounddevice.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bounddevice.FieldID)
		for i := range fields {
			if fields[i] != bounddevice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *BoundDeviceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(bounddevice.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = bounddevice.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// BoundDeviceGroupBy is the group-by builder for BoundDevice entities.
type BoundDeviceGroupBy struct {
	selector
	build *BoundDeviceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BoundDeviceGroupBy) Aggregate(fns ...AggregateFunc) *BoundDeviceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BoundDeviceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BoundDeviceQuery, *BoundDeviceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BoundDeviceGroupBy) sqlScan(ctx context.Context, root *BoundDeviceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BoundDeviceSelect is the builder for selecting fields of BoundDevice entities.
type BoundDeviceSelect struct {
	*BoundDeviceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BoundDeviceSelect) Aggregate(fns ...AggregateFunc) *BoundDeviceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BoundDeviceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BoundDeviceQuery, *BoundDeviceSelect](ctx, _s.BoundDeviceQuery, _s, _s.inters, v)
}

func (_s *BoundDeviceSelect) sqlScan(ctx context.Context, root *BoundDeviceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

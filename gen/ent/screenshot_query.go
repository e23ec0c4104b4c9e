// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/reconkit/phone-recon/gen/ent/extractednumber"
	"github.com/reconkit/phone-recon/gen/ent/predicate"
	"github.com/reconkit/phone-recon/gen/ent/screenshot"
)

// ScreenshotQuery is the builder for querying Screenshot entities.
type ScreenshotQuery struct {
	config
	ctx         *QueryContext
	order       []screenshot.OrderOption
	inters      []Interceptor
	predicates  []predicate.Screenshot
	withNumbers *ExtractedNumberQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ScreenshotQuery builder.
func (_q *ScreenshotQuery) Where(ps ...predicate.Screenshot) *ScreenshotQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ScreenshotQuery) Limit(limit int) *ScreenshotQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ScreenshotQuery) Offset(offset int) *ScreenshotQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ScreenshotQuery) Unique(unique bool) *ScreenshotQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ScreenshotQuery) Order(o ...screenshot.OrderOption) *ScreenshotQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryNumbers chains the current query on the "numbers" edge.
func (_q *ScreenshotQuery) QueryNumbers() *ExtractedNumberQuery {
	query := (&ExtractedNumberClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(screenshot.Table, screenshot.FieldID, selector),
			sqlgraph.To(extractednumber.Table, extractednumber.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, screenshot.NumbersTable, screenshot.NumbersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Screenshot entity from the query.
// Returns a *NotFoundError when no Screenshot was found.
func (_q *ScreenshotQuery) First(ctx context.Context) (*Screenshot, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{screenshot.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ScreenshotQuery) FirstX(ctx context.Context) *Screenshot {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Screenshot ID from the query.
// Returns a *NotFoundError when no Screenshot ID was found.
func (_q *ScreenshotQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{screenshot.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ScreenshotQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Screenshot entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Screenshot entity is found.
// Returns a *NotFoundError when no Screenshot entities are found.
func (_q *ScreenshotQuery) Only(ctx context.Context) (*Screenshot, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{screenshot.Label}
	default:
		return nil, &NotSingularError{screenshot.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ScreenshotQuery) OnlyX(ctx context.Context) *Screenshot {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Screenshot ID in the query.
// Returns a *NotSingularError when more than one Screenshot ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ScreenshotQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{screenshot.Label}
	default:
		err = &NotSingularError{screenshot.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ScreenshotQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Screenshots.
func (_q *ScreenshotQuery) All(ctx context.Context) ([]*Screenshot, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Screenshot, *ScreenshotQuery]()
	return withInterceptors[[]*Screenshot](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ScreenshotQuery) AllX(ctx context.Context) []*Screenshot {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Screenshot IDs.
func (_q *ScreenshotQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(screenshot.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ScreenshotQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ScreenshotQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ScreenshotQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ScreenshotQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ScreenshotQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ScreenshotQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ScreenshotQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ScreenshotQuery) Clone() *ScreenshotQuery {
	if _q == nil {
		return nil
	}
	return &ScreenshotQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]screenshot.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.Screenshot{}, _q.predicates...),
		withNumbers: _q.withNumbers.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithNumbers tells the query-builder to eager-load the nodes that are connected to
// the "numbers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScreenshotQuery) WithNumbers(opts ...func(*ExtractedNumberQuery)) *ScreenshotQuery {
	query := (&ExtractedNumberClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNumbers = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Filename string `json:"filename,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Screenshot.Query().
//		GroupBy(screenshot.FieldFilename).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ScreenshotQuery) GroupBy(field string, fields ...string) *ScreenshotGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ScreenshotGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = screenshot.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Filename string `json:"filename,omitempty"`
//	}
//
//	client.Screenshot.Query().
//		Select(screenshot.FieldFilename).
//		Scan(ctx, &v)
func (_q *ScreenshotQuery) Select(fields ...string) *ScreenshotSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ScreenshotSelect{ScreenshotQuery: _q}
	sbuild.label = screenshot.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ScreenshotSelect configured with the given aggregations.
func (_q *ScreenshotQuery) Aggregate(fns ...AggregateFunc) *ScreenshotSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ScreenshotQuery) prepareQuery(ctx context.Context) error {
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
		if !screenshot.ValidColumn(f) {
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

func (_q *ScreenshotQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Screenshot, error) {
	var (
		nodes       = []*Screenshot{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withNumbers != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Screenshot).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Screenshot{config: _q.config}
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
	if query := _q.withNumbers; query != nil {
		if err := _q.loadNumbers(ctx, query, nodes,
			func(n *Screenshot) { n.Edges.Numbers = []*ExtractedNumber{} },
			func(n *Screenshot, e *ExtractedNumber) { n.Edges.Numbers = append(n.Edges.Numbers, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ScreenshotQuery) loadNumbers(ctx context.Context, query *ExtractedNumberQuery, nodes []*Screenshot, init func(*Screenshot), assign func(*Screenshot, *ExtractedNumber)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Screenshot)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractednumber.FieldScreenshotID)
	}
	query.Where(predicate.ExtractedNumber(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(screenshot.NumbersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ScreenshotID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "screenshot_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ScreenshotQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ScreenshotQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(screenshot.Table, screenshot.Columns, sqlgraph.NewFieldSpec(screenshot.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, screenshot.FieldID)
		for i := range fields {
			if fields[i] != screenshot.FieldID {
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

func (_q *ScreenshotQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(screenshot.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = screenshot.Columns
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

// ScreenshotGroupBy is the group-by builder for Screenshot entities.
type ScreenshotGroupBy struct {
	selector
	build *ScreenshotQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ScreenshotGroupBy) Aggregate(fns ...AggregateFunc) *ScreenshotGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ScreenshotGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScreenshotQuery, *ScreenshotGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ScreenshotGroupBy) sqlScan(ctx context.Context, root *ScreenshotQuery, v any) error {
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

// ScreenshotSelect is the builder for selecting fields of Screenshot entities.
type ScreenshotSelect struct {
	*ScreenshotQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ScreenshotSelect) Aggregate(fns ...AggregateFunc) *ScreenshotSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ScreenshotSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScreenshotQuery, *ScreenshotSelect](ctx, _s.ScreenshotQuery, _s, _s.inters, v)
}

func (_s *ScreenshotSelect) sqlScan(ctx context.Context, root *ScreenshotQuery, v any) error {
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

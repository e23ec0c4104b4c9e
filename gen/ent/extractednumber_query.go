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
	"github.com/reconkit/phone-recon/gen/ent/group"
	"github.com/reconkit/phone-recon/gen/ent/predicate"
	"github.com/reconkit/phone-recon/gen/ent/screenshot"
)

// ExtractedNumberQuery is the builder for querying ExtractedNumber entities.
type ExtractedNumberQuery struct {
	config
	ctx            *QueryContext
	order          []extractednumber.OrderOption
	inters         []Interceptor
	predicates     []predicate.ExtractedNumber
	withScreenshot *ScreenshotQuery
	withGroups     *GroupQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExtractedNumberQuery builder.
func (_q *ExtractedNumberQuery) Where(ps ...predicate.ExtractedNumber) *ExtractedNumberQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExtractedNumberQuery) Limit(limit int) *ExtractedNumberQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExtractedNumberQuery) Offset(offset int) *ExtractedNumberQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExtractedNumberQuery) Unique(unique bool) *ExtractedNumberQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExtractedNumberQuery) Order(o ...extractednumber.OrderOption) *ExtractedNumberQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryScreenshot chains the current query on the "screenshot" edge.
func (_q *ExtractedNumberQuery) QueryScreenshot() *ScreenshotQuery {
	query := (&ScreenshotClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractednumber.Table, extractednumber.FieldID, selector),
			sqlgraph.To(screenshot.Table, screenshot.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractednumber.ScreenshotTable, extractednumber.ScreenshotColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGroups chains the current query on the "groups" edge.
func (_q *ExtractedNumberQuery) QueryGroups() *GroupQuery {
	query := (&GroupClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractednumber.Table, extractednumber.FieldID, selector),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, extractednumber.GroupsTable, extractednumber.GroupsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExtractedNumber entity from the query.
// Returns a *NotFoundError when no ExtractedNumber was found.
func (_q *ExtractedNumberQuery) First(ctx context.Context) (*ExtractedNumber, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{extractednumber.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExtractedNumberQuery) FirstX(ctx context.Context) *ExtractedNumber {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExtractedNumber ID from the query.
// Returns a *NotFoundError when no ExtractedNumber ID was found.
func (_q *ExtractedNumberQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{extractednumber.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExtractedNumberQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExtractedNumber entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExtractedNumber entity is found.
// Returns a *NotFoundError when no ExtractedNumber entities are found.
func (_q *ExtractedNumberQuery) Only(ctx context.Context) (*ExtractedNumber, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{extractednumber.Label}
	default:
		return nil, &NotSingularError{extractednumber.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExtractedNumberQuery) OnlyX(ctx context.Context) *ExtractedNumber {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExtractedNumber ID in the query.
// Returns a *NotSingularError when more than one ExtractedNumber ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExtractedNumberQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{extractednumber.Label}
	default:
		err = &NotSingularError{extractednumber.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExtractedNumberQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExtractedNumbers.
func (_q *ExtractedNumberQuery) All(ctx context.Context) ([]*ExtractedNumber, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExtractedNumber, *ExtractedNumberQuery]()
	return withInterceptors[[]*ExtractedNumber](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExtractedNumberQuery) AllX(ctx context.Context) []*ExtractedNumber {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExtractedNumber IDs.
func (_q *ExtractedNumberQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(extractednumber.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExtractedNumberQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExtractedNumberQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExtractedNumberQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExtractedNumberQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExtractedNumberQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExtractedNumberQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExtractedNumberQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExtractedNumberQuery) Clone() *ExtractedNumberQuery {
	if _q == nil {
		return nil
	}
	return &ExtractedNumberQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]extractednumber.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.ExtractedNumber{}, _q.predicates...),
		withScreenshot: _q.withScreenshot.Clone(),
		withGroups:     _q.withGroups.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithScreenshot tells the query-builder to eager-load the nodes that are connected to
// the "screenshot" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExtractedNumberQuery) WithScreenshot(opts ...func(*ScreenshotQuery)) *ExtractedNumberQuery {
	query := (&ScreenshotClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withScreenshot = query
	return _q
}

// WithGroups tells the query-builder to eager-load the nodes that are connected to
// the "groups" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExtractedNumberQuery) WithGroups(opts ...func(*GroupQuery)) *ExtractedNumberQuery {
	query := (&GroupClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGroups = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ScreenshotID uuid.UUID `json:"screenshot_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ExtractedNumber.Query().
//		GroupBy(extractednumber.FieldScreenshotID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExtractedNumberQuery) GroupBy(field string, fields ...string) *ExtractedNumberGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExtractedNumberGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = extractednumber.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ScreenshotID uuid.UUID `json:"screenshot_id,omitempty"`
//	}
//
//	client.ExtractedNumber.Query().
//		Select(extractednumber.FieldScreenshotID).
//		Scan(ctx, &v)
func (_q *ExtractedNumberQuery) Select(fields ...string) *ExtractedNumberSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExtractedNumberSelect{ExtractedNumberQuery: _q}
	sbuild.label = extractednumber.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExtractedNumberSelect configured with the given aggregations.
func (_q *ExtractedNumberQuery) Aggregate(fns ...AggregateFunc) *ExtractedNumberSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExtractedNumberQuery) prepareQuery(ctx context.Context) error {
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
		if !extractednumber.ValidColumn(f) {
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

func (_q *ExtractedNumberQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExtractedNumber, error) {
	var (
		nodes       = []*ExtractedNumber{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withScreenshot != nil,
			_q.withGroups != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExtractedNumber).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExtractedNumber{config: _q.config}
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
	if query := _q.withScreenshot; query != nil {
		if err := _q.loadScreenshot(ctx, query, nodes, nil,
			func(n *ExtractedNumber, e *Screenshot) { n.Edges.Screenshot = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGroups; query != nil {
		if err := _q.loadGroups(ctx, query, nodes,
			func(n *ExtractedNumber) { n.Edges.Groups = []*Group{} },
			func(n *ExtractedNumber, e *Group) { n.Edges.Groups = append(n.Edges.Groups, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExtractedNumberQuery) loadScreenshot(ctx context.Context, query *ScreenshotQuery, nodes []*ExtractedNumber, init func(*ExtractedNumber), assign func(*ExtractedNumber, *Screenshot)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ExtractedNumber)
	for i := range nodes {
		fk := nodes[i].ScreenshotID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(screenshot.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "screenshot_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ExtractedNumberQuery) loadGroups(ctx context.Context, query *GroupQuery, nodes []*ExtractedNumber, init func(*ExtractedNumber), assign func(*ExtractedNumber, *Group)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[uuid.UUID]*ExtractedNumber)
	nids := make(map[uuid.UUID]map[*ExtractedNumber]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(extractednumber.GroupsTable)
		s.Join(joinT).On(s.C(group.FieldID), joinT.C(extractednumber.GroupsPrimaryKey[0]))
		s.Where(sql.InValues(joinT.C(extractednumber.GroupsPrimaryKey[1]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(extractednumber.GroupsPrimaryKey[1]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(uuid.UUID)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := *values[0].(*uuid.UUID)
				inValue := *values[1].(*uuid.UUID)
				if nids[inValue] == nil {
					nids[inValue] = map[*ExtractedNumber]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*Group](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "groups" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}

func (_q *ExtractedNumberQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExtractedNumberQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(extractednumber.Table, extractednumber.Columns, sqlgraph.NewFieldSpec(extractednumber.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractednumber.FieldID)
		for i := range fields {
			if fields[i] != extractednumber.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withScreenshot != nil {
			_spec.Node.AddColumnOnce(extractednumber.FieldScreenshotID)
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

func (_q *ExtractedNumberQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(extractednumber.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = extractednumber.Columns
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

// ExtractedNumberGroupBy is the group-by builder for ExtractedNumber entities.
type ExtractedNumberGroupBy struct {
	selector
	build *ExtractedNumberQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExtractedNumberGroupBy) Aggregate(fns ...AggregateFunc) *ExtractedNumberGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExtractedNumberGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractedNumberQuery, *ExtractedNumberGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExtractedNumberGroupBy) sqlScan(ctx context.Context, root *ExtractedNumberQuery, v any) error {
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

// ExtractedNumberSelect is the builder for selecting fields of ExtractedNumber entities.
type ExtractedNumberSelect struct {
	*ExtractedNumberQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExtractedNumberSelect) Aggregate(fns ...AggregateFunc) *ExtractedNumberSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExtractedNumberSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractedNumberQuery, *ExtractedNumberSelect](ctx, _s.ExtractedNumberQuery, _s, _s.inters, v)
}

func (_s *ExtractedNumberSelect) sqlScan(ctx context.Context, root *ExtractedNumberQuery, v any) error {
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

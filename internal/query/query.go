// Package query builds validated list query specifications from raw,
// caller-supplied parameters. Sort fields map through a per-resource
// whitelist to statically declared column references; caller input is never
// interpolated into a query construct, so injection is impossible by
// construction rather than by escaping.
package query

import (
	"strconv"
	"strings"
)

const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"

	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Whitelist is the fixed set of sortable fields a resource owner declares for
// its list endpoint, mapping each accepted field name to a column reference.
type Whitelist struct {
	columns      map[string]string
	defaultField string
}

// NewWhitelist declares a whitelist over the given fields, each mapping to a
// column of the same name. defaultField must be one of fields; it is used
// whenever the caller supplies nothing or something outside the whitelist.
func NewWhitelist(defaultField string, fields ...string) Whitelist {
	columns := make(map[string]string, len(fields))
	for _, f := range fields {
		columns[f] = f
	}
	if _, ok := columns[defaultField]; !ok {
		columns[defaultField] = defaultField
	}
	return Whitelist{columns: columns, defaultField: defaultField}
}

// Column resolves a field name to its declared column reference.
func (w Whitelist) Column(field string) (string, bool) {
	col, ok := w.columns[field]
	return col, ok
}

// DefaultField returns the declared default sort field.
func (w Whitelist) DefaultField() string {
	return w.defaultField
}

// Params are the raw, untrusted list parameters as they arrive from the
// transport layer.
type Params struct {
	Sort      string
	Direction string
	Page      string
	PageSize  string
}

// Spec is a validated query specification. SortColumn is always a member of
// the declared whitelist, Direction is always asc or desc, and PageSize is
// clamped to 1..MaxPageSize.
type Spec struct {
	SortField  string
	SortColumn string
	Direction  string
	Page       int
	PageSize   int
}

// Build validates raw params against a whitelist and produces a Spec. Invalid
// sort or direction input degrades to the declared defaults rather than
// erroring: listing parameters are a convenience, not a correctness-critical
// input.
func Build(w Whitelist, raw Params) Spec {
	field := strings.TrimSpace(raw.Sort)
	column, ok := w.Column(field)
	if !ok {
		field = w.defaultField
		column, _ = w.Column(field)
	}

	direction := strings.ToLower(strings.TrimSpace(raw.Direction))
	if direction != DirectionAsc && direction != DirectionDesc {
		direction = DirectionAsc
	}

	page, err := strconv.Atoi(raw.Page)
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(raw.PageSize)
	if err != nil || pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return Spec{
		SortField:  field,
		SortColumn: column,
		Direction:  direction,
		Page:       page,
		PageSize:   pageSize,
	}
}

// OrderClause renders the ORDER BY fragment. Both parts come from declared
// constants, never from caller input.
func (s Spec) OrderClause() string {
	return s.SortColumn + " " + s.Direction
}

// Offset returns the row offset for the requested page.
func (s Spec) Offset() int {
	return (s.Page - 1) * s.PageSize
}

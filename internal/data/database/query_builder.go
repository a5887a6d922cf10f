// Package database builds parameterized SQL listing queries from typed
// predicate trees. User input is never concatenated into query text; every
// value travels as a bind parameter and every identifier is sanitized.
package database

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionType string

const (
	Equal    ConditionType = "="
	NotEqual ConditionType = "!="
	Like     ConditionType = "LIKE"
	ILike    ConditionType = "ILIKE"
	In       ConditionType = "IN"
	NotIn    ConditionType = "NOT IN"
	IsNull   ConditionType = "IS NULL"
	Or       ConditionType = "OR"

	defaultLimit  = -1
	defaultOffset = -1
)

// Condition is a single node of the predicate tree. Leaf nodes compare a
// field against a value; Or nodes group subconditions with logical OR.
type Condition struct {
	Field string
	Type  ConditionType
	Value any
	group []Condition
}

// WhereCond builds a leaf comparison condition.
func WhereCond(field string, condType ConditionType, value any) Condition {
	return Condition{
		Field: field,
		Type:  condType,
		Value: value,
	}
}

// WhereNull builds an IS NULL condition on a field.
func WhereNull(field string) Condition {
	return Condition{
		Field: field,
		Type:  IsNull,
		Value: nil,
	}
}

// WhereOr groups conditions with logical OR. Subconditions that produce no
// SQL (e.g. an IN over an empty slice) are dropped from the group; a group
// that loses every member produces no SQL at all.
func WhereOr(conds ...Condition) Condition {
	return Condition{
		Type:  Or,
		group: conds,
	}
}

// ContainsPattern wraps a term for case-insensitive substring matching via ILIKE.
func ContainsPattern(term string) string {
	return "%" + escapeLikeTerm(term) + "%"
}

// PrefixPattern wraps a term for case-insensitive prefix matching via ILIKE.
func PrefixPattern(term string) string {
	return escapeLikeTerm(term) + "%"
}

// escapeLikeTerm escapes LIKE metacharacters so user input matches literally.
func escapeLikeTerm(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `%`, `\%`)
	return strings.ReplaceAll(term, `_`, `\_`)
}

// ListQueryOptions describes a filtered, ordered, paginated listing query or
// its matching count query.
type ListQueryOptions struct {
	Table      string
	Columns    []string
	Joins      []string
	CountOnly  bool
	Conditions []Condition
	OrderBy    []string
	Limit      int
	Offset     int
}

type ListQueryOption func(*ListQueryOptions)

func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	options := &ListQueryOptions{
		Table:      table,
		Columns:    []string{},
		Joins:      []string{},
		CountOnly:  false,
		Conditions: []Condition{},
		OrderBy:    []string{},
		Limit:      defaultLimit,
		Offset:     defaultOffset,
	}

	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithColumns sets the columns to select. Each entry is either a plain
// (optionally qualified) column name or "column AS alias".
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Columns = cols
	}
}

// WithJoin appends a LEFT JOIN clause. The join text is static query
// structure supplied by the repository, never user input.
func WithJoin(join string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Joins = append(o.Joins, join)
	}
}

// WithCondition adds a single condition.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = append(o.Conditions, cond)
	}
}

// WithConditions sets the entire list of conditions.
func WithConditions(conds ...Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = conds
	}
}

// WithOrderBy sets the ordering keys. Each entry is "column" or
// "column direction"; identifiers are sanitized and directions validated.
func WithOrderBy(keys ...string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.OrderBy = keys
	}
}

// WithLimit sets the limit. Accepts 0.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if limit >= 0 {
			o.Limit = limit
		}
	}
}

// WithOffset sets the offset. Accepts 0.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if offset >= 0 {
			o.Offset = offset
		}
	}
}

// WithCountOnly sets the query to count only.
func WithCountOnly() ListQueryOption {
	return func(o *ListQueryOptions) {
		o.CountOnly = true
	}
}

// CountOptions clones listing options into the matching count query: same
// table, joins, and conditions, no ordering or pagination. Counting with any
// other predicate than the listing's own is a correctness bug.
func CountOptions(listing *ListQueryOptions) *ListQueryOptions {
	if listing == nil {
		return nil
	}
	return &ListQueryOptions{
		Table:      listing.Table,
		Columns:    []string{},
		Joins:      listing.Joins,
		CountOnly:  true,
		Conditions: listing.Conditions,
		OrderBy:    []string{},
		Limit:      defaultLimit,
		Offset:     defaultOffset,
	}
}

// sanitizeIdentifier wraps a single string identifier for sanitization.
func sanitizeIdentifier(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

// sanitizeQualifiedIdentifier sanitizes qualified identifiers like "table.column".
// It splits on '.' and uses pgx.Identifier to properly quote each part.
func sanitizeQualifiedIdentifier(ident string) string {
	parts := strings.Split(ident, ".")
	return pgx.Identifier(parts).Sanitize()
}

const maxAliasParts = 2

// processColumnSpec sanitizes a column specification, handling "expr AS alias".
func processColumnSpec(columnSpec string) string {
	parts := strings.SplitN(columnSpec, " AS ", maxAliasParts)
	if len(parts) == maxAliasParts {
		expr := sanitizeQualifiedIdentifier(strings.TrimSpace(parts[0]))
		alias := sanitizeIdentifier(strings.TrimSpace(parts[1]))
		return expr + " AS " + alias
	}
	return sanitizeQualifiedIdentifier(strings.TrimSpace(columnSpec))
}

// buildSelectClause generates the SELECT part of the query with sanitized columns.
func buildSelectClause(options *ListQueryOptions) string {
	if options.CountOnly {
		return "SELECT COUNT(*) "
	}
	if len(options.Columns) == 0 {
		return "SELECT * "
	}

	processedColumns := make([]string, len(options.Columns))
	for i, col := range options.Columns {
		processedColumns[i] = processColumnSpec(col)
	}

	return fmt.Sprintf("SELECT %s ", strings.Join(processedColumns, ", "))
}

// buildOrderByClause generates the ORDER BY part with sanitized keys.
func buildOrderByClause(keys []string) string {
	if len(keys) == 0 {
		return ""
	}

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		fields := strings.Fields(key)
		if len(fields) == 0 {
			continue
		}
		clause := sanitizeQualifiedIdentifier(fields[0])
		if len(fields) > 1 {
			dir := strings.ToUpper(fields[1])
			if dir == "ASC" || dir == "DESC" {
				clause += " " + dir
			}
		}
		parts = append(parts, clause)
	}
	if len(parts) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// buildPaginationClause generates LIMIT and OFFSET with bind parameters.
func buildPaginationClause(
	options *ListQueryOptions,
	startParamIndex int,
	initialArgs []any,
) (string, []any) {
	var clause strings.Builder
	args := initialArgs
	paramCount := startParamIndex

	// LIMIT and OFFSET are emitted only when explicitly set (not the sentinel).
	if options.Limit != defaultLimit {
		clause.WriteString(fmt.Sprintf(" LIMIT $%d", paramCount))
		args = append(args, options.Limit)
		paramCount++
	}

	if options.Offset != defaultOffset {
		clause.WriteString(fmt.Sprintf(" OFFSET $%d", paramCount))
		args = append(args, options.Offset)
	}

	return clause.String(), args
}

// BuildListQuery constructs a SQL query string and arguments from options,
// sanitizing identifiers. It handles SELECT, JOIN, WHERE, ORDER BY, LIMIT,
// and OFFSET clauses.
//
// Example usage:
//
//	options := NewListQueryOptions("jobs",
//		WithColumns("id", "trade", "postcode"),
//		WithCondition(WhereCond("status", Equal, "approved")),
//		WithCondition(WhereOr(
//			WhereCond("trade", Equal, "Plumber"),
//			WhereCond("trade", ILike, ContainsPattern("Plumb")),
//		)),
//		WithOrderBy("created_at DESC", "id DESC"),
//		WithLimit(10),
//		WithOffset(0),
//	)
//
//	query, args := BuildListQuery(options)
func BuildListQuery(options *ListQueryOptions) (string, []any) {
	if options == nil {
		return "", nil
	}

	var query strings.Builder

	query.WriteString(buildSelectClause(options))
	query.WriteString("FROM ")
	query.WriteString(sanitizeIdentifier(options.Table))

	for _, join := range options.Joins {
		query.WriteString(" ")
		query.WriteString(join)
	}

	whereClause, whereArgs, nextParamCount := buildWhereClause(options.Conditions, 1)
	if whereClause != "" {
		query.WriteString(" ")
		query.WriteString(whereClause)
	}

	// ORDER BY, LIMIT, and OFFSET never apply to a count.
	if options.CountOnly {
		return query.String(), whereArgs
	}

	query.WriteString(buildOrderByClause(options.OrderBy))

	paginationClause, finalArgs := buildPaginationClause(options, nextParamCount, whereArgs)
	if paginationClause != "" {
		query.WriteString(paginationClause)
	}

	return query.String(), finalArgs
}

func handleStandardCondition(
	cond Condition,
	sanitizedField string,
	paramCount int,
) (string, []any, int) {
	conditionStr := fmt.Sprintf("%s %s $%d", sanitizedField, cond.Type, paramCount)
	args := []any{cond.Value}
	return conditionStr, args, paramCount + 1
}

// handleListCondition builds IN / NOT IN conditions. An empty value slice
// produces no SQL: NOT IN over an empty set must be skipped entirely rather
// than emitted as a no-op clause many engines reject.
func handleListCondition(cond Condition, sanitizedField string, paramCount int) (string, []any, int) {
	// Accept any slice type via reflection
	rv := reflect.ValueOf(cond.Value)
	if rv.Kind() != reflect.Slice || rv.Len() == 0 {
		return "", []any{}, paramCount
	}

	placeholders := make([]string, rv.Len())
	args := make([]any, rv.Len())
	currentParam := paramCount
	for i := range rv.Len() {
		placeholders[i] = fmt.Sprintf("$%d", currentParam)
		args[i] = rv.Index(i).Interface()
		currentParam++
	}
	conditionStr := fmt.Sprintf(
		"%s %s (%s)",
		sanitizedField,
		cond.Type,
		strings.Join(placeholders, ", "),
	)
	return conditionStr, args, currentParam
}

// handleOrCondition builds an OR group from subconditions, dropping members
// that produce no SQL.
func handleOrCondition(cond Condition, paramCount int) (string, []any, int) {
	parts := make([]string, 0, len(cond.group))
	args := []any{}
	currentParam := paramCount

	for _, sub := range cond.group {
		subStr, subArgs, nextParam := processCondition(sub, currentParam)
		if subStr == "" {
			continue
		}
		parts = append(parts, subStr)
		args = append(args, subArgs...)
		currentParam = nextParam
	}

	switch len(parts) {
	case 0:
		return "", []any{}, paramCount
	case 1:
		return parts[0], args, currentParam
	default:
		return "(" + strings.Join(parts, " OR ") + ")", args, currentParam
	}
}

// processCondition processes a single condition and returns the SQL string,
// args, and next param count.
func processCondition(cond Condition, paramCount int) (string, []any, int) {
	if cond.Type == Or {
		return handleOrCondition(cond, paramCount)
	}

	if cond.Field == "" {
		return "", []any{}, paramCount
	}
	sanitizedField := sanitizeQualifiedIdentifier(cond.Field)

	switch cond.Type {
	case IsNull:
		return sanitizedField + " IS NULL", []any{}, paramCount
	case In, NotIn:
		return handleListCondition(cond, sanitizedField, paramCount)
	case Equal, NotEqual, Like, ILike:
		return handleStandardCondition(cond, sanitizedField, paramCount)
	}
	return "", []any{}, paramCount
}

// buildWhereClause generates the WHERE part of the query with sanitized
// fields and manages parameters. Top-level conditions combine with AND.
func buildWhereClause(inputConditions []Condition, startParamIndex int) (string, []any, int) {
	conditions := make([]string, 0, len(inputConditions))
	args := []any{}
	paramCount := startParamIndex

	for _, cond := range inputConditions {
		conditionStr, newArgs, nextParamCount := processCondition(cond, paramCount)
		if conditionStr != "" {
			conditions = append(conditions, conditionStr)
			args = append(args, newArgs...)
			paramCount = nextParamCount
		}
	}

	if len(conditions) == 0 {
		return "", args, paramCount
	}
	return "WHERE " + strings.Join(conditions, " AND "), args, paramCount
}

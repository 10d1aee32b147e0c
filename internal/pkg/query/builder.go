package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction is an ORDER BY direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

type orderTerm struct {
	column    string
	direction Direction
}

// Builder builds parameterized Spanner SELECT statements.
// Every method returns a copy, so a base builder can be shared between
// a row query and its Count.
type Builder struct {
	table      string
	selectCols []string
	conditions []Condition
	orderBy    []orderTerm
	limitVal   int64
}

// From starts a query on table.
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select appends columns to the projection. No columns means SELECT *.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Where adds a condition. Conditions are joined with AND.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.conditions = append(nb.conditions, condition)
	return nb
}

// OrderBy adds a sort term. Later calls break ties of earlier ones.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	nb := b.clone()
	nb.orderBy = append(nb.orderBy, orderTerm{column: column, direction: direction})
	return nb
}

// Limit caps the number of rows. Zero means no limit.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Count returns a COUNT(*) query over the same table and conditions.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.selectCols = []string{"COUNT(*)"}
	nb.orderBy = nil
	nb.limitVal = 0
	return nb
}

// Build renders the statement. Condition parameters are named @p0, @p1, ...
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.conditions) > 0 {
		parts := make([]string, 0, len(b.conditions))
		next := 0
		for _, cond := range b.conditions {
			fragment, condParams := cond.SQL(next)
			parts = append(parts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			next += len(condParams)
		}
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if len(b.orderBy) > 0 {
		terms := make([]string, 0, len(b.orderBy))
		for _, term := range b.orderBy {
			dir := "ASC"
			if term.direction == Desc {
				dir = "DESC"
			}
			terms = append(terms, term.column+" "+dir)
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(terms, ", "))
	}

	if b.limitVal > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limitVal
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

func (b *Builder) clone() *Builder {
	nb := &Builder{
		table:      b.table,
		selectCols: make([]string, len(b.selectCols)),
		conditions: make([]Condition, len(b.conditions)),
		orderBy:    make([]orderTerm, len(b.orderBy)),
		limitVal:   b.limitVal,
	}
	copy(nb.selectCols, b.selectCols)
	copy(nb.conditions, b.conditions)
	copy(nb.orderBy, b.orderBy)
	return nb
}

// String renders the statement for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}

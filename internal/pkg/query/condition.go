package query

import "fmt"

// Condition renders one WHERE predicate.
// paramIndex is the first free @pN index; a condition consumes one index per
// entry in the returned map.
type Condition interface {
	SQL(paramIndex int) (string, map[string]interface{})
}

type binaryCondition struct {
	field string
	op    string
	value interface{}
}

func (c *binaryCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, name), map[string]interface{}{name: c.value}
}

// Eq renders "field = @pN".
func Eq(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: "=", value: value}
}

// Lt renders "field < @pN".
func Lt(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: "<", value: value}
}

type inCondition struct {
	field  string
	values []string
}

// In renders "field IN UNNEST(@pN)" with values bound as an ARRAY<STRING>.
func In(field string, values []string) Condition {
	return &inCondition{field: field, values: values}
}

func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s IN UNNEST(@%s)", c.field, name), map[string]interface{}{name: c.values}
}

type isNullCondition struct {
	field string
}

// IsNull renders "field IS NULL".
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

func (c *isNullCondition) SQL(int) (string, map[string]interface{}) {
	return c.field + " IS NULL", map[string]interface{}{}
}

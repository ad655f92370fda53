package schematype

// Operator describes how an assertion compared its actual and expected values.
// Use these constants in Properties: schematype.Properties{Operator: schematype.OpEqual}
type Operator string

const (
	// OpEqual compares for strict equality.
	OpEqual Operator = "==="

	// OpNotEqual compares for strict inequality.
	OpNotEqual Operator = "!=="

	// OpLess requires actual < expected.
	OpLess Operator = "<"

	// OpLessEqual requires actual <= expected.
	OpLessEqual Operator = "<="

	// OpGreater requires actual > expected.
	OpGreater Operator = ">"

	// OpGreaterEqual requires actual >= expected.
	OpGreaterEqual Operator = ">="

	// OpIn requires actual to be a member of expected.
	OpIn Operator = "in"

	// OpMatch requires actual to match the pattern in expected.
	OpMatch Operator = "match"

	// OpTypeOf compares the dynamic type of actual with expected.
	OpTypeOf Operator = "typeof"
)

// validOperators contains all known operators.
var validOperators = map[Operator]bool{
	OpEqual:        true,
	OpNotEqual:     true,
	OpLess:         true,
	OpLessEqual:    true,
	OpGreater:      true,
	OpGreaterEqual: true,
	OpIn:           true,
	OpMatch:        true,
	OpTypeOf:       true,
}

// IsValidOperator returns true if the operator is a known comparison operator.
// Unknown operators are still carried by AssertionError unchanged.
func IsValidOperator(op Operator) bool {
	return validOperators[op]
}

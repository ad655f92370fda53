package schematype

// Properties carries the comparison metadata recognized by assertions.
// Anything else a hook knows about the failure belongs in the message.
type Properties struct {
	Actual   any
	Expected any
	Operator Operator
}

// Recognized property keys for PropertiesFrom.
const (
	PropActual   = "actual"
	PropExpected = "expected"
	PropOperator = "operator"
)

// PropertiesFrom selects the recognized keys out of an untyped bag.
// Unrecognized keys are dropped. A non-string operator is ignored.
func PropertiesFrom(bag map[string]any) Properties {
	var p Properties
	if bag == nil {
		return p
	}
	p.Actual = bag[PropActual]
	p.Expected = bag[PropExpected]
	switch op := bag[PropOperator].(type) {
	case Operator:
		p.Operator = op
	case string:
		p.Operator = Operator(op)
	}
	return p
}

// AssertionError is the normalized validation failure.
//
// It is produced by Assert and surfaced unchanged by Rejected. Topic holds
// the value that was under test; Rejected fills it in for failures Assert
// built without one. Values constructed directly are left as they are.
type AssertionError struct {
	Message  string
	Actual   any
	Expected any
	Operator Operator
	Topic    any

	fresh bool // built by Assert and still awaiting a topic
}

// Name identifies the failure kind, distinct from generic errors.
func (e *AssertionError) Name() string {
	return "AssertionError"
}

func (e *AssertionError) Error() string {
	if e.Message == "" {
		return ErrAssertion.Error()
	}
	return e.Message
}

func (e *AssertionError) Unwrap() error {
	return ErrAssertion
}

// Properties returns the recognized comparison metadata of the failure.
func (e *AssertionError) Properties() Properties {
	return Properties{
		Actual:   e.Actual,
		Expected: e.Expected,
		Operator: e.Operator,
	}
}

// Assert returns nil when test holds, otherwise an *AssertionError built from
// message and exactly the recognized properties.
//
// This is the sanctioned way for a Validate hook to signal a failure:
//
//	func (c *Custom) Validate(value any, _ Spec) error {
//	    _, ok := value.(string)
//	    return schematype.Assert(ok, "expected a string", schematype.Properties{
//	        Actual:   fmt.Sprintf("%T", value),
//	        Expected: "string",
//	        Operator: schematype.OpTypeOf,
//	    })
//	}
func Assert(test bool, message string, props Properties) error {
	return assertTopic(test, message, props, nil)
}

func assertTopic(test bool, message string, props Properties, topic any) error {
	if test {
		return nil
	}
	return &AssertionError{
		Message:  message,
		Actual:   props.Actual,
		Expected: props.Expected,
		Operator: props.Operator,
		Topic:    topic,
		fresh:    topic == nil,
	}
}

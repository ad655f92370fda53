package types

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zoobzio/schematype"
)

// UUIDSpec restricts the accepted version. Zero accepts any.
type UUIDSpec struct {
	Version int
}

// UUID carries an identifier string as a parsed uuid.UUID. Unwrap returns
// the canonical lowercase hyphenated form.
type UUID struct {
	*schematype.Contract[string, uuid.UUID, UUIDSpec]
}

// NewUUID returns a UUID named "uuid".
func NewUUID() *UUID {
	return &UUID{
		Contract: schematype.New[string, uuid.UUID, UUIDSpec]("uuid", uuidHooks{}),
	}
}

type uuidHooks struct{}

func (uuidHooks) Validate(value string, spec UUIDSpec) error {
	id, parseErr := uuid.Parse(value)
	if err := schematype.Assert(parseErr == nil, fmt.Sprintf("expected a UUID but got %q", value), schematype.Properties{
		Actual:   value,
		Expected: "uuid",
		Operator: schematype.OpMatch,
	}); err != nil {
		return err
	}

	if spec.Version != 0 {
		return schematype.Assert(int(id.Version()) == spec.Version, fmt.Sprintf("expected UUID version %d but got %d", spec.Version, id.Version()), schematype.Properties{
			Actual:   int(id.Version()),
			Expected: spec.Version,
			Operator: schematype.OpEqual,
		})
	}
	return nil
}

func (uuidHooks) Cast(value string, _ UUIDSpec) (uuid.UUID, error) {
	return uuid.Parse(value)
}

func (uuidHooks) Extract(wire uuid.UUID, _ UUIDSpec) (string, error) {
	return wire.String(), nil
}

package types

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/zoobzio/schematype"
	"github.com/zoobzio/sentinel"
)

func init() {
	sentinel.Tag("schema")
	sentinel.Tag("json")
}

// RecordSpec configures Record.
type RecordSpec struct {
	OmitZero bool // leave zero-valued fields out of the wire map
}

// Record carries a struct as a map keyed by field name. Keys come from the
// json tag when present. Fields tagged schema:"required" must be non-zero.
type Record[T any] struct {
	*schematype.Contract[T, map[string]any, RecordSpec]
}

type recordField struct {
	name     string
	key      string
	index    []int
	required bool
}

// NewRecord scans T and returns a Record named after it.
func NewRecord[T any]() (*Record[T], error) {
	if reflect.TypeFor[T]().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, reflect.TypeFor[T]())
	}

	meta := sentinel.Scan[T]()
	hooks := &recordHooks[T]{fields: make([]recordField, 0, len(meta.Fields))}
	for _, field := range meta.Fields {
		key := field.Name
		if tag, ok := field.Tags["json"]; ok {
			name, _, _ := strings.Cut(tag, ",")
			if name == "-" {
				continue
			}
			if name != "" {
				key = name
			}
		}
		hooks.fields = append(hooks.fields, recordField{
			name:     field.Name,
			key:      key,
			index:    field.Index,
			required: hasOption(field.Tags["schema"], "required"),
		})
	}

	return &Record[T]{
		Contract: schematype.New[T, map[string]any, RecordSpec](meta.TypeName, hooks),
	}, nil
}

func hasOption(tag, option string) bool {
	for _, part := range strings.Split(tag, ",") {
		if strings.TrimSpace(part) == option {
			return true
		}
	}
	return false
}

type recordHooks[T any] struct {
	fields []recordField
}

func (h *recordHooks[T]) Validate(value T, _ RecordSpec) error {
	rv := reflect.ValueOf(value)
	for _, f := range h.fields {
		if !f.required {
			continue
		}
		fv := rv.FieldByIndex(f.index)
		if err := schematype.Assert(!fv.IsZero(), fmt.Sprintf("field %s is required", f.name), schematype.Properties{
			Actual:   fv.Interface(),
			Expected: "non-zero",
			Operator: schematype.OpNotEqual,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (h *recordHooks[T]) Cast(value T, spec RecordSpec) (map[string]any, error) {
	rv := reflect.ValueOf(value)
	out := make(map[string]any, len(h.fields))
	for _, f := range h.fields {
		fv := rv.FieldByIndex(f.index)
		if spec.OmitZero && fv.IsZero() {
			continue
		}
		out[f.key] = fv.Interface()
	}
	return out, nil
}

func (h *recordHooks[T]) Extract(wire map[string]any, _ RecordSpec) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	for _, f := range h.fields {
		raw, ok := wire[f.key]
		if !ok || raw == nil {
			continue
		}
		if err := assign(rv.FieldByIndex(f.index), reflect.ValueOf(raw)); err != nil {
			return out, fmt.Errorf("field %s: %w", f.name, err)
		}
	}
	return out, nil
}

// assign stores src into dst, converting between numeric kinds and
// element-wise between slices since decoded wire maps lose static types.
func assign(dst, src reflect.Value) error {
	dt := dst.Type()
	switch {
	case src.Type().AssignableTo(dt):
		dst.Set(src)
		return nil
	case src.Kind() == reflect.Interface || src.Kind() == reflect.Pointer:
		if src.IsNil() {
			return nil
		}
		return assign(dst, src.Elem())
	case isNumeric(src.Kind()) && isNumeric(dt.Kind()):
		return assignNumber(dst, src)
	case src.Kind() == dt.Kind() && src.Type().ConvertibleTo(dt) && src.Kind() != reflect.Slice:
		dst.Set(src.Convert(dt))
		return nil
	case src.Kind() == reflect.Slice && dt.Kind() == reflect.Slice:
		out := reflect.MakeSlice(dt, src.Len(), src.Len())
		for i := range src.Len() {
			if err := assign(out.Index(i), src.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		dst.Set(out)
		return nil
	default:
		return fmt.Errorf("%w: cannot use %s as %s", ErrFieldType, src.Type(), dt)
	}
}

// assignNumber stores src into the numeric dst, refusing fractions and
// values dst cannot hold.
func assignNumber(dst, src reflect.Value) error {
	lossy := func() error {
		return fmt.Errorf("%w: %v does not fit %s", ErrFieldType, src.Interface(), dst.Type())
	}

	switch {
	case isInt(dst.Kind()):
		var i int64
		switch {
		case isInt(src.Kind()):
			i = src.Int()
		case isUint(src.Kind()):
			if src.Uint() > math.MaxInt64 {
				return lossy()
			}
			i = int64(src.Uint())
		default:
			f := src.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return lossy()
			}
			i = int64(f)
		}
		if dst.OverflowInt(i) {
			return lossy()
		}
		dst.SetInt(i)

	case isUint(dst.Kind()):
		var u uint64
		switch {
		case isInt(src.Kind()):
			if src.Int() < 0 {
				return lossy()
			}
			u = uint64(src.Int())
		case isUint(src.Kind()):
			u = src.Uint()
		default:
			f := src.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return lossy()
			}
			u = uint64(f)
		}
		if dst.OverflowUint(u) {
			return lossy()
		}
		dst.SetUint(u)

	default:
		var f float64
		switch {
		case isInt(src.Kind()):
			f = float64(src.Int())
		case isUint(src.Kind()):
			f = float64(src.Uint())
		default:
			f = src.Float()
		}
		if dst.OverflowFloat(f) {
			return lossy()
		}
		dst.SetFloat(f)
	}
	return nil
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

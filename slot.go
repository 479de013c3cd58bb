package permute

import (
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/egdaemon/permute/internal/errorsx"
)

type slotKind int

const (
	slotField slotKind = iota
	slotSetter
)

// Slot is a resolved, bindable location on a subject type: either an exported
// field or a single-argument setter method following the Set<Name> convention.
type Slot struct {
	name   string
	kind   slotKind
	field  reflect.StructField
	method reflect.Method
}

// resolveSlots maps every attribute name to a bindable slot on the subject
// type. Resolution is exact and case sensitive: an exported field with the
// attribute's name wins, otherwise a setter method accepting exactly one
// argument. A name with neither fails, identifying the missing attribute.
// Resolution runs once per declaration, before any combination is bound.
func resolveSlots(typ reflect.Type, names []string) (map[string]Slot, error) {
	slots := make(map[string]Slot, len(names))
	for _, name := range names {
		if field, ok := typ.FieldByName(name); ok && field.IsExported() {
			slots[name] = Slot{name: name, kind: slotField, field: field}
			continue
		}

		if method, ok := reflect.PointerTo(typ).MethodByName(setterName(name)); ok && method.Type.NumIn() == 2 {
			slots[name] = Slot{name: name, kind: slotSetter, method: method}
			continue
		}

		return nil, errorsx.Errorf("no accessible field or set method for attribute %s", name)
	}

	return slots, nil
}

// setterName derives the conventional setter for an attribute: Set plus the
// attribute name with its first rune upper cased.
func setterName(name string) string {
	r, n := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "Set" + name
	}

	return "Set" + string(unicode.ToUpper(r)) + name[n:]
}

// bind applies a single value to the slot on the given subject instance.
// subject must be a pointer to the resolved type. Mismatched value types are
// reported as errors rather than panics so a bad combination only fails its
// own case.
func (t Slot) bind(subject reflect.Value, value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorsx.Errorf("attribute %s: %v", t.name, r)
		}
	}()

	switch t.kind {
	case slotField:
		dst := subject.Elem().FieldByIndex(t.field.Index)
		v, err := coerce(value, dst.Type())
		if err != nil {
			return errorsx.Wrapf(err, "attribute %s", t.name)
		}

		dst.Set(v)
		return nil
	default:
		fn := subject.Method(t.method.Index)
		v, err := coerce(value, fn.Type().In(0))
		if err != nil {
			return errorsx.Wrapf(err, "attribute %s", t.name)
		}

		fn.Call([]reflect.Value{v})
		return nil
	}
}

// coerce checks a candidate value against the slot's expected type, mapping
// nil to the type's zero value when the type permits it.
func coerce(value any, typ reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch typ.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(typ), nil
		default:
			return reflect.Value{}, errorsx.Errorf("nil is not assignable to %s", typ)
		}
	}

	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(typ) {
		return reflect.Value{}, errorsx.Errorf("%s is not assignable to %s", v.Type(), typ)
	}

	return v, nil
}

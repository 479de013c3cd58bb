package permute

import (
	"reflect"

	"github.com/egdaemon/permute/internal/errorsx"
)

// binder turns one combination into one fresh subject instance. the binding
// strategy is fixed per declaration: attribute injection when attribute names
// were declared, constructor otherwise.
type binder interface {
	bind(c Combination) (any, error)
}

// newBinder validates a declaration against the subject and resolves its
// binding strategy. Failures here are declaration level: they surface once,
// before any combination is enumerated.
func newBinder(s Subject, decl Declaration) (binder, error) {
	if len(decl.Attributes) == 0 {
		fn, err := constructor(s.New, -1)
		if err != nil {
			return nil, err
		}

		return ctorbinder{fn: fn}, nil
	}

	if s.Type == nil {
		return nil, errorsx.New("attribute binding requires a subject type")
	}

	if s.Type.Kind() != reflect.Struct {
		return nil, errorsx.Errorf("attribute binding requires a struct subject, got %s", s.Type)
	}

	if size := decl.Source.Size(); size != len(decl.Attributes) {
		return nil, errorsx.Errorf("%d attribute names declared against %d dimensions", len(decl.Attributes), size)
	}

	slots, err := resolveSlots(s.Type, decl.Attributes)
	if err != nil {
		return nil, err
	}

	b := attrbinder{typ: s.Type, names: decl.Attributes, slots: slots}
	if s.New != nil {
		if b.fresh, err = constructor(s.New, 0); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// constructor validates the subject factory function; arity below zero skips
// the argument count check (constructor strategy checks it per combination).
func constructor(fn any, arity int) (v reflect.Value, err error) {
	if fn == nil {
		return v, errorsx.New("subject constructor is required")
	}

	if v = reflect.ValueOf(fn); v.Kind() != reflect.Func {
		return v, errorsx.Errorf("subject constructor must be a function, got %T", fn)
	}

	if t := v.Type(); t.NumOut() != 1 {
		return v, errorsx.Errorf("subject constructor must return exactly one value, returns %d", t.NumOut())
	}

	if v.Type().IsVariadic() {
		return v, errorsx.New("variadic subject constructors are not supported")
	}

	if arity >= 0 && v.Type().NumIn() != arity {
		return v, errorsx.Errorf("subject constructor must accept %d arguments, accepts %d", arity, v.Type().NumIn())
	}

	return v, nil
}

// attrbinder builds a fresh instance per combination and applies each value
// through the slot resolved for the attribute at the same position.
type attrbinder struct {
	typ   reflect.Type
	names []string
	slots map[string]Slot
	fresh reflect.Value
}

func (t attrbinder) bind(c Combination) (any, error) {
	if len(c.Values) != len(t.names) {
		return nil, errorsx.Errorf("combination of width %d against %d attributes", len(c.Values), len(t.names))
	}

	instance, err := t.instance()
	if err != nil {
		return nil, err
	}

	for i, name := range t.names {
		if err := t.slots[name].bind(instance, c.Values[i]); err != nil {
			return nil, err
		}
	}

	return instance.Interface(), nil
}

func (t attrbinder) instance() (v reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorsx.Errorf("subject constructor: %v", r)
		}
	}()

	if !t.fresh.IsValid() {
		return reflect.New(t.typ), nil
	}

	v = t.fresh.Call(nil)[0]
	if v.Kind() != reflect.Pointer || v.Type().Elem() != t.typ {
		return v, errorsx.Errorf("subject constructor must return *%s, returns %s", t.typ, v.Type())
	}

	return v, nil
}

// ctorbinder invokes the subject factory with the combination's values as
// positional arguments, in declaration order.
type ctorbinder struct {
	fn reflect.Value
}

func (t ctorbinder) bind(c Combination) (subject any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorsx.Errorf("subject constructor: %v", r)
		}
	}()

	ft := t.fn.Type()
	if ft.NumIn() != len(c.Values) {
		return nil, errorsx.Errorf("combination of width %d against %d constructor arguments", len(c.Values), ft.NumIn())
	}

	args := make([]reflect.Value, len(c.Values))
	for i, value := range c.Values {
		v, err := coerce(value, ft.In(i))
		if err != nil {
			return nil, errorsx.Wrapf(err, "argument %d", i)
		}

		args[i] = v
	}

	return t.fn.Call(args)[0].Interface(), nil
}

package permute

import (
	"context"
	"iter"
	"reflect"

	"github.com/egdaemon/permute/internal/debugx"
	"github.com/egdaemon/permute/internal/errorsx"
	"github.com/egdaemon/permute/internal/iterx"
	"github.com/gofrs/uuid"
)

// ErrNoDeclarations is the terminal error when no enumeration source was
// provided at all.
var ErrNoDeclarations = errorsx.New("no declarations provided")

// Op is a named test operation the host framework executes against a bound
// subject. The engine only selects operations; it never invokes them.
type Op struct {
	Name string
	Fn   func(ctx context.Context, subject any) error
}

// Subject describes the type under test: how instances are built and the
// operations declared against them.
type Subject struct {
	// Type is the subject struct type, required for attribute injection.
	Type reflect.Type
	// New builds instances. constructor strategy invokes it with a
	// combination's values; attribute strategy, when New is provided, expects
	// a zero argument factory returning *Type.
	New any
	Ops []Op
}

// Declaration is one named source of dimensions plus its operation selection
// rule, name template and optional ordered attribute names. Declarations are
// independent; each produces its own set of cases.
type Declaration struct {
	Name     string
	Source   Source
	Tests    string // regexp over operation names, empty matches everything
	Template string // case name template, empty renders the index list
	// Attributes maps combination positions to subject attributes; when empty
	// the constructor strategy applies.
	Attributes []string
}

// Source produces the combination stream for a declaration. Each call to
// Combinations starts a fresh single pass enumeration.
type Source interface {
	Size() int
	Combinations() iter.Seq[Combination]
}

type product struct {
	dims Set
}

// Product enumerates the full cross product of the given dimensions.
func Product(dims ...Dimension) Source {
	return product{dims: NewSet(dims...)}
}

func (t product) Size() int {
	return len(t.dims)
}

func (t product) Combinations() iter.Seq[Combination] {
	return NewOdometer(t.dims).All()
}

type rows struct {
	dims Set
}

// Rows zips the given dimensions positionally, one combination per row,
// instead of taking their cross product.
func Rows(dims ...Dimension) Source {
	return rows{dims: NewSet(dims...)}
}

func (t rows) Size() int {
	return len(t.dims)
}

func (t rows) Combinations() iter.Seq[Combination] {
	return NewLockstep(t.dims).All()
}

// Declare builds a cross product declaration from named dimensions, binding
// each dimension to the attribute it is named for.
func Declare(name string, dims ...Dimension) Declaration {
	set := NewSet(dims...)
	return Declaration{Name: name, Source: product{dims: set}, Attributes: set.Names()}
}

// Case is one bound subject instance, the operations selected for it and its
// rendered display name. A case with Err set represents a failure the host
// framework reports instead of executing: either a single declaration level
// configuration error or an individual combination that could not bind.
type Case struct {
	ID          uuid.UUID
	Declaration string
	Name        string
	Subject     any
	Ops         []Op
	Err         error
}

// Failed reports whether the case carries an error instead of a runnable
// subject.
func (t Case) Failed() bool {
	return t.Err != nil
}

// Cases enumerates every declaration against the subject, yielding one case
// per combination. Declaration level configuration errors yield a single
// failing case attributed to the declaration; a combination that fails to
// bind yields a failing case without suppressing its siblings. The returned
// sequence is single pass and single reader; enumeration stops as soon as the
// consumer stops pulling.
func Cases(s Subject, decls ...Declaration) iterx.Seq[Case] {
	if len(decls) == 0 {
		return iterx.Error[Case](ErrNoDeclarations)
	}

	return iterx.New(func(yield func(Case) bool) error {
		for _, decl := range decls {
			if !enumerate(s, decl, yield) {
				return nil
			}
		}

		return nil
	})
}

func enumerate(s Subject, decl Declaration, yield func(Case) bool) bool {
	if decl.Source == nil {
		return yield(failure(decl, errorsx.New("no combination source")))
	}

	b, err := newBinder(s, decl)
	if err != nil {
		return yield(failure(decl, err))
	}

	ops, err := selectOps(decl.Tests, s.Ops)
	if err != nil {
		return yield(failure(decl, err))
	}

	if len(ops) == 0 {
		debugx.Println("declaration selected no operations", label(decl))
		return true
	}

	for c := range decl.Source.Combinations() {
		bound := Case{
			ID:          id(),
			Declaration: decl.Name,
			Name:        CaseName(decl.Template, c),
			Ops:         ops,
		}

		if bound.Subject, bound.Err = b.bind(c); bound.Err != nil {
			debugx.Println("combination failed to bind", label(decl), bound.Name, bound.Err)
		}

		if !yield(bound) {
			return false
		}
	}

	return true
}

// failure reports a declaration level error as if it were itself a failing
// case so the problem is visible exactly once in test output.
func failure(decl Declaration, err error) Case {
	debugx.Println("declaration failed", label(decl), err)
	return Case{
		ID:          id(),
		Declaration: decl.Name,
		Name:        label(decl),
		Err:         errorsx.Wrapf(err, "declaration %s", label(decl)),
	}
}

func label(decl Declaration) string {
	if decl.Name == "" {
		return "unnamed"
	}

	return decl.Name
}

func id() uuid.UUID {
	return errorsx.Zero(uuid.NewV4())
}

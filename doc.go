/*
Package permute enumerates parameter combinations and binds each one to a
fresh instance of a test subject, producing a stream of runnable cases for a
hosting test framework.

A declaration names a source of dimensions (ordered lists of candidate
values), a pattern selecting which of the subject's operations apply, a
template deriving a display name for each case, and optionally the subject
attributes the values bind to.

# Cross products

Product enumerates every combination of its dimensions, last dimension
varying fastest:

	subject := permute.Subject{
		New: func(input int, name string) *Fixture { return &Fixture{Input: input, Name: name} },
		Ops: []permute.Op{{Name: "test", Fn: run}},
	}

	seq := permute.Cases(subject, permute.Declaration{
		Name:   "inputs",
		Source: permute.Product(permute.Values(1, 2), permute.Values("A", "B")),
	})

	for c := range seq.Each() {
		// yields 4 cases: (1,A) (1,B) (2,A) (2,B)
	}

# Attribute injection

Declaring attribute names switches from constructor binding to attribute
injection: each name resolves to an exported field or a Set method on the
subject type, once per declaration:

	permute.Declaration{
		Source:     permute.Product(permute.Values(1, 2), permute.Values("A", "B")),
		Attributes: []string{"Input", "Name"},
	}

# Lockstep rows

Rows zips its dimensions positionally instead of combining them, one case per
row, for pre-paired argument tuples:

	permute.Rows(permute.Values(1, 2), permute.Values("A", "B"))

# Case names

Templates recognize {list} (the per-dimension index list), {index} (the
combination's ordinal) and {0}, {1}, ... (the combination's values). The
default template renders the index list.
*/
package permute

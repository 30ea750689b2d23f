package namedvec

import "fmt"

// Lookup identifies an element either by its name or by its position.
//
// It is a closed two-variant sum: the only implementations are [Name] and
// [Index]. Construct one inline at the call site:
//
//	v.Get(namedvec.Name("foo"))
//	v.Get(namedvec.Index(3))
//
// A Lookup is consumed at call time and never stored by the vec.
type Lookup interface {
	lookup() // marker; restricts implementations to this package
}

// Name looks an element up by its [Named] name.
type Name string

// Index looks an element up by its 0-based position.
type Index int

func (Name) lookup()  {}
func (Index) lookup() {}

// lookupString renders a key for panic and error messages.
func lookupString(key Lookup) string {
	switch k := key.(type) {
	case Name:
		return fmt.Sprintf("name %q", string(k))
	case Index:
		return fmt.Sprintf("index %d", int(k))
	}
	return fmt.Sprintf("%v", key)
}

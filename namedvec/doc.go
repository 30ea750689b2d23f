// Package namedvec provides NamedVec, an ordered, generic collection whose
// elements can also be looked up in O(1) by a unique string name.
//
// # Overview
//
// A NamedVec[T] behaves like a slice — elements keep insertion order and are
// addressable by position — while also maintaining a name-to-position index
// so that any element can be fetched by its name in constant time. Element
// types declare their name by implementing the single-method [Named]
// interface:
//
//	type Server struct {
//	    Host string
//	    Port int
//	}
//
//	func (s Server) Name() string { return s.Host }
//
//	v := namedvec.New[Server]()
//	v.Push(Server{Host: "alpha", Port: 8080})
//	v.Push(Server{Host: "beta", Port: 9090})
//
//	s, ok := v.Get(namedvec.Name("beta"))  // by name
//	s, ok  = v.Get(namedvec.Index(0))      // by position
//
// # Names are unique
//
// [NamedVec.Push] is an upsert: pushing an element whose name is already in
// use replaces the existing element at its current position instead of
// appending. The sequence therefore never contains two elements with the
// same name, and the index map always holds exactly one entry per element.
//
// # Lookup keys
//
// Methods that accept "either form" access take a [Lookup], a two-variant
// sum type constructed from a raw string or int at the call site:
//
//	v.Get(namedvec.Name("alpha"))
//	v.GetMut(namedvec.Index(1))
//	v.Swap(namedvec.Name("alpha"), namedvec.Index(1))
//
// # Error reporting
//
// Lookup misses and popping an empty vec are ordinary, recoverable outcomes
// reported through (value, ok) returns, or through sentinel errors via
// [NamedVec.GetOrFail]. Caller programming errors — swapping with a key that
// does not resolve, slicing out of range, reserving a negative or
// overflowing capacity — panic.
//
// # Concurrency
//
// A NamedVec is not internally synchronized. Like a plain map or slice it is
// safe for any number of concurrent readers, but concurrent mutation
// requires external locking. Pointers returned by [NamedVec.GetMut] and
// views returned by the slice accessors alias the backing storage and must
// not be retained across a mutating call.
package namedvec

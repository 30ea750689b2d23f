package namedvec_test

import (
	"fmt"

	"github.com/sector-f/namedvec-go/namedvec"
)

type server struct {
	host string
	port int
}

func (s server) Name() string { return s.host }

func ExampleNamedVec_Push() {
	v := namedvec.New[server]()
	v.Push(server{host: "alpha", port: 8080})
	v.Push(server{host: "beta", port: 9090})
	v.Push(server{host: "alpha", port: 8081}) // replaces alpha in place

	fmt.Println(v.Len(), v.Names())
	// Output: 2 [alpha beta]
}

func ExampleNamedVec_Get() {
	v := namedvec.Collect(
		server{host: "alpha", port: 8080},
		server{host: "beta", port: 9090},
	)

	byName, _ := v.Get(namedvec.Name("beta"))
	byPos, _ := v.Get(namedvec.Index(0))
	fmt.Println(byName.port, byPos.port)
	// Output: 9090 8080
}

func ExampleNamedVec_Swap() {
	v := namedvec.Collect(
		server{host: "alpha"},
		server{host: "beta"},
		server{host: "gamma"},
	)
	v.Swap(namedvec.Name("alpha"), namedvec.Index(2))

	fmt.Println(v.Names())
	// Output: [gamma beta alpha]
}

func ExampleNamedVec_Truncate() {
	v := namedvec.Collect(
		server{host: "alpha"},
		server{host: "beta"},
		server{host: "gamma"},
	)
	v.Truncate(1)

	_, ok := v.Get(namedvec.Name("gamma"))
	fmt.Println(v.Names(), ok)
	// Output: [alpha] false
}

func ExampleNamedVec_GetMut() {
	v := namedvec.Collect(server{host: "alpha", port: 8080})

	if s, ok := v.GetMut(namedvec.Name("alpha")); ok {
		s.port = 8443
	}
	s, _ := v.Get(namedvec.Index(0))
	fmt.Println(s.port)
	// Output: 8443
}

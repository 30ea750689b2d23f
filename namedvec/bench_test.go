package namedvec_test

import (
	"fmt"
	"testing"

	"github.com/sector-f/namedvec-go/namedvec"
)

// makeVec creates a NamedVec of size n for benchmarks.
func makeVec(n int) *namedvec.NamedVec[host] {
	v := namedvec.WithCapacity[host](n)
	for i := 0; i < n; i++ {
		v.Push(host{name: fmt.Sprintf("host-%05d", i), port: i})
	}
	return v
}

func BenchmarkPushAppend(b *testing.B) {
	names := make([]string, b.N)
	for i := range names {
		names[i] = fmt.Sprintf("host-%d", i)
	}
	v := namedvec.WithCapacity[host](b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Push(host{name: names[i]})
	}
}

func BenchmarkPushReplace(b *testing.B) {
	v := makeVec(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Push(host{name: "host-05000", port: i})
	}
}

func BenchmarkGetByName(b *testing.B) {
	v := makeVec(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Get(namedvec.Name("host-09999"))
	}
}

func BenchmarkGetByIndex(b *testing.B) {
	v := makeVec(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Get(namedvec.Index(9_999))
	}
}

func BenchmarkSwap(b *testing.B) {
	v := makeVec(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Swap(namedvec.Index(0), namedvec.Index(9_999))
	}
}

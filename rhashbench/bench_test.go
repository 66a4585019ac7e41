// Package rhashbench compares hashmap.Map against Go's builtin map, in
// the same impl=x/t=y/len=z benchmark tree shape the teacher's own
// bench_test.go uses for its swissMap-vs-runtimeMap comparisons.
package rhashbench

import (
	"fmt"
	"io"
	"strconv"
	"testing"

	"github.com/zhangdinet/hppcrt/hashmap"
)

type benchTypes interface {
	int32 | int64 | string
}

func benchSizes[T benchTypes](
	f func(b *testing.B, n int, genKeys func(start, end int) []T), genKeys func(start, end int) []T,
) func(*testing.B) {
	cases := []int{64, 256, 1024, 4096, 1 << 16}
	return func(b *testing.B) {
		for _, n := range cases {
			b.Run("len="+strconv.Itoa(n), func(b *testing.B) { f(b, n, genKeys) })
		}
	}
}

func genKeys[T benchTypes](start, end int) []T {
	var t T
	switch any(t).(type) {
	case int32:
		keys := make([]int32, end-start)
		for i := range keys {
			keys[i] = int32(start + i)
		}
		return any(keys).([]T)
	case int64:
		keys := make([]int64, end-start)
		for i := range keys {
			keys[i] = int64(start + i)
		}
		return any(keys).([]T)
	case string:
		keys := make([]string, end-start)
		for i := range keys {
			keys[i] = strconv.Itoa(start + i)
		}
		return any(keys).([]T)
	default:
		panic("not reached")
	}
}

func BenchmarkMapGetHit(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapGetHit[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapGetHit[string], genKeys[string]))
	})
	b.Run("impl=rhashMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRhashMapGetHit[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRhashMapGetHit[string], genKeys[string]))
	})
}

func BenchmarkMapGetMiss(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapGetMiss[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapGetMiss[string], genKeys[string]))
	})
	b.Run("impl=rhashMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRhashMapGetMiss[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRhashMapGetMiss[string], genKeys[string]))
	})
}

func BenchmarkMapPutGrow(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapPutGrow[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapPutGrow[string], genKeys[string]))
	})
	b.Run("impl=rhashMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRhashMapPutGrow[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRhashMapPutGrow[string], genKeys[string]))
	})
}

func BenchmarkMapPutPreAllocate(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapPutPreAllocate[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapPutPreAllocate[string], genKeys[string]))
	})
	b.Run("impl=rhashMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRhashMapPutPreAllocate[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRhashMapPutPreAllocate[string], genKeys[string]))
	})
}

func BenchmarkMapIter(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapIter[int64], genKeys[int64]))
	})
	b.Run("impl=rhashMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRhashMapIter[int64], genKeys[int64]))
	})
}

func benchmarkRuntimeMapGetHit[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	m := make(map[T]T, n)
	keys := genKeys(0, n)
	for _, k := range keys {
		m[k] = k
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i&(n-1)]]
	}
}

func benchmarkRhashMapGetHit[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	m, err := hashmap.New[T, T](n)
	if err != nil {
		b.Fatal(err)
	}
	keys := genKeys(0, n)
	for _, k := range keys {
		if _, err := m.Put(k, k); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	var ok bool
	for i := 0; i < b.N; i++ {
		_, ok = m.Get(keys[i&(n-1)])
	}
	b.StopTimer()
	fmt.Fprint(io.Discard, ok)
}

func benchmarkRuntimeMapGetMiss[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	m := make(map[T]T, n)
	keys := genKeys(0, n)
	miss := genKeys(-n, 0)
	for _, k := range keys {
		m[k] = k
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[miss[i%len(miss)]]
	}
}

func benchmarkRhashMapGetMiss[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	m, err := hashmap.New[T, T](n)
	if err != nil {
		b.Fatal(err)
	}
	keys := genKeys(0, n)
	miss := genKeys(-n, 0)
	for _, k := range keys {
		if _, err := m.Put(k, k); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	var ok bool
	for i := 0; i < b.N; i++ {
		_, ok = m.Get(miss[i%len(miss)])
	}
	b.StopTimer()
	fmt.Fprint(io.Discard, ok)
}

func benchmarkRuntimeMapPutGrow[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	keys := genKeys(0, n)
	for i := 0; i < b.N; i++ {
		m := make(map[T]T)
		for _, k := range keys {
			m[k] = k
		}
	}
}

func benchmarkRhashMapPutGrow[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	keys := genKeys(0, n)
	for i := 0; i < b.N; i++ {
		m, err := hashmap.New[T, T](0)
		if err != nil {
			b.Fatal(err)
		}
		for _, k := range keys {
			if _, err := m.Put(k, k); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func benchmarkRuntimeMapPutPreAllocate[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	keys := genKeys(0, n)
	for i := 0; i < b.N; i++ {
		m := make(map[T]T, n)
		for _, k := range keys {
			m[k] = k
		}
	}
}

func benchmarkRhashMapPutPreAllocate[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	keys := genKeys(0, n)
	for i := 0; i < b.N; i++ {
		m, err := hashmap.New[T, T](n)
		if err != nil {
			b.Fatal(err)
		}
		for _, k := range keys {
			if _, err := m.Put(k, k); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func benchmarkRuntimeMapIter[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	m := make(map[T]T, n)
	keys := genKeys(0, n)
	for _, k := range keys {
		m[k] = k
	}
	b.ResetTimer()
	var tmp T
	for i := 0; i < b.N; i++ {
		for k, v := range m {
			tmp += k + v
		}
	}
	fmt.Fprint(io.Discard, tmp)
}

func benchmarkRhashMapIter[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	m, err := hashmap.New[T, T](n)
	if err != nil {
		b.Fatal(err)
	}
	keys := genKeys(0, n)
	for _, k := range keys {
		if _, err := m.Put(k, k); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	var tmp T
	for i := 0; i < b.N; i++ {
		for k, v := range m.All() {
			tmp += k + v
		}
	}
	fmt.Fprint(io.Discard, tmp)
}

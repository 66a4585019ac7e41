package hashmap

import "github.com/zhangdinet/hppcrt/internal/rhash"

// Cursor is an entry handle returned by Map.Lookup, exposing HPPC-RT's
// classic l* accessors (as Key/LGet/LSet/LSlot) without a second probe.
// See internal/rhash.Cursor for the implementation.
type Cursor[K comparable, V any] = rhash.Cursor[K, V]

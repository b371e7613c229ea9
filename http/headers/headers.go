package headers

import (
	"iter"
	"math"
	"strings"

	"github.com/inflow-http/inflow/http/status"
	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Headers is an ordered multimap of header names to values. Names are
// normalized to their lowercase trimmed form on insertion, values are
// trimmed; duplicates are kept in insertion order. Backed by a plain pair
// slice, as linear search beats a map on the header counts real requests
// carry.
type Headers struct {
	pairs      []Pair
	valuesBuff []string
	uniqueBuff []string
}

func New() *Headers {
	return new(Headers)
}

// NewPrealloc returns an instance with pre-allocated underlying storage.
func NewPrealloc(n int) *Headers {
	return &Headers{
		pairs: make([]Pair, 0, n),
	}
}

// NewFromMap returns a new instance filled from the given map. As maps are
// unordered, so will be the resulting pairs.
func NewFromMap(m map[string][]string) *Headers {
	h := NewPrealloc(len(m))

	for key, values := range m {
		for _, value := range values {
			h.Add(key, value)
		}
	}

	return h
}

// Add stores a new pair, normalizing the name and trimming the value.
func (h *Headers) Add(key, value string) *Headers {
	h.pairs = append(h.pairs, Pair{
		Key:   strings.ToLower(strings.TrimSpace(key)),
		Value: strings.TrimSpace(value),
	})
	return h
}

// Get returns the first value corresponding to the key and whether it was
// found at all. Lookup is case-insensitive.
func (h *Headers) Get(key string) (value string, found bool) {
	for _, pair := range h.pairs {
		if strcomp.EqualFold(pair.Key, key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Value returns the first value corresponding to the key, or an empty string.
func (h *Headers) Value(key string) string {
	return h.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or the
// fallback.
func (h *Headers) ValueOr(key, or string) string {
	value, found := h.Get(key)
	if !found {
		return or
	}

	return value
}

// Values returns all values by the key, in insertion order. Returns nil if
// the key isn't present.
//
// WARNING: the returned slice is reused by the next call. Copy it for safe
// keeping.
func (h *Headers) Values(key string) []string {
	h.valuesBuff = h.valuesBuff[:0]

	for _, pair := range h.pairs {
		if strcomp.EqualFold(pair.Key, key) {
			h.valuesBuff = append(h.valuesBuff, pair.Value)
		}
	}

	if len(h.valuesBuff) == 0 {
		return nil
	}

	return h.valuesBuff
}

// Keys returns all unique keys, in order of first appearance.
//
// WARNING: the returned slice is reused by the next call. Copy it for safe
// keeping.
func (h *Headers) Keys() []string {
	h.uniqueBuff = h.uniqueBuff[:0]

	for _, pair := range h.pairs {
		if !contains(h.uniqueBuff, pair.Key) {
			h.uniqueBuff = append(h.uniqueBuff, pair.Key)
		}
	}

	return h.uniqueBuff
}

// Has indicates whether there's at least one entry of the key.
func (h *Headers) Has(key string) bool {
	_, found := h.Get(key)
	return found
}

// Len returns the number of stored pairs.
func (h *Headers) Len() int {
	return len(h.pairs)
}

// Iter returns an iterator over the pairs.
func (h *Headers) Iter() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range h.pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

// Unwrap exposes the underlying pairs slice.
func (h *Headers) Unwrap() []Pair {
	return h.pairs
}

// Clear removes all the entries, keeping the allocated space.
func (h *Headers) Clear() *Headers {
	h.pairs = h.pairs[:0]
	return h
}

// ContentLength reports the framing promised by the Content-Length header.
// Absent header yields has=false. A literal which isn't a plain non-negative
// decimal integer is a protocol violation rather than a silently missing
// header.
func (h *Headers) ContentLength() (length int, has bool, err error) {
	value, found := h.Get("content-length")
	if !found {
		return 0, false, nil
	}

	if len(value) == 0 {
		return 0, false, status.ErrInvalidContentLength
	}

	for i := 0; i < len(value); i++ {
		char := value[i]
		if char < '0' || char > '9' {
			return 0, false, status.ErrInvalidContentLength
		}

		if length > (math.MaxInt-int(char-'0'))/10 {
			return 0, false, status.ErrInvalidContentLength
		}

		length = length*10 + int(char-'0')
	}

	return length, true, nil
}

// IsChunked tells whether any Transfer-Encoding value carries the chunked
// token. Tokens are comma-separated and compared case-insensitively.
func (h *Headers) IsChunked() bool {
	for _, pair := range h.pairs {
		if !strcomp.EqualFold(pair.Key, "transfer-encoding") {
			continue
		}

		value := pair.Value
		for len(value) > 0 {
			var token string
			comma := strings.IndexByte(value, ',')
			if comma == -1 {
				token, value = value, ""
			} else {
				token, value = value[:comma], value[comma+1:]
			}

			if strcomp.EqualFold(strings.TrimSpace(token), "chunked") {
				return true
			}
		}
	}

	return false
}

func contains(collection []string, key string) bool {
	for _, element := range collection {
		if element == key {
			return true
		}
	}

	return false
}

// Package query is the derived-view pipeline shared by every record
// page: an equality filter, then a stable sort over a chosen key.
// Keys resolve through field accessor functions so computed fields and
// parse-before-compare dates sort the same way raw fields do.
package query

import (
	"sort"
	"strconv"
	"time"

	"github.com/NirunaShyamal/farm-sub001/internal/util"
)

// All is the filter sentinel meaning "no filtering".
const All = "all"

// Kind discriminates comparable value types.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindTime
)

// Value is one comparable cell produced by a field accessor.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Time time.Time
}

// Number builds a numeric value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// Int builds a numeric value from an int.
func Int(n int) Value {
	return Value{Kind: KindNumber, Num: float64(n)}
}

// Text builds a string value.
func Text(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Date parses s as a date in any supported layout. Unparseable dates
// become the zero time so the sort stays total.
func Date(s string) Value {
	t, err := util.ParseFlexibleDate(s)
	if err != nil {
		t = time.Time{}
	}
	return Value{Kind: KindTime, Time: t, Str: s}
}

// Coerce parses s as a number, coercing non-numeric or absent input
// to 0. This is policy, not leniency: it keeps sorting total over
// sparse data.
func Coerce(s string) Value {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f = 0
	}
	return Value{Kind: KindNumber, Num: f, Str: s}
}

// Less orders values of the same kind; mismatched kinds fall back to
// kind order so the comparator is still total.
func (v Value) Less(o Value) bool {
	if v.Kind != o.Kind {
		return v.Kind < o.Kind
	}
	switch v.Kind {
	case KindNumber:
		return v.Num < o.Num
	case KindTime:
		return v.Time.Before(o.Time)
	default:
		return v.Str < o.Str
	}
}

// Matches reports equality against a filter value string.
func (v Value) Matches(s string) bool {
	switch v.Kind {
	case KindNumber:
		f, err := strconv.ParseFloat(s, 64)
		return err == nil && f == v.Num
	default:
		return v.Str == s
	}
}

// Field extracts a comparable value from a record. The map of fields
// per collection covers raw fields, computed fields and date fields
// alike.
type Field[T any] func(T) Value

// Filter is an equality predicate on one field. A Value of All (or an
// empty key) disables filtering.
type Filter struct {
	Key   string
	Value string
}

// Active reports whether the filter excludes anything.
func (f Filter) Active() bool {
	return f.Key != "" && f.Value != "" && f.Value != All
}

// Sort holds the active sort key and direction.
type Sort struct {
	Key  string
	Desc bool
}

// Toggle flips direction when key is already active, and resets to
// ascending when a new key is chosen.
func (s *Sort) Toggle(key string) {
	if s.Key == key {
		s.Desc = !s.Desc
		return
	}
	s.Key = key
	s.Desc = false
}

// View produces the rendered row sequence: filter, then stable sort.
// The input slice is never mutated. An unknown sort key leaves the
// filtered sequence in input order.
func View[T any](records []T, filter Filter, fields map[string]Field[T], s Sort) []T {
	out := make([]T, 0, len(records))

	if filter.Active() {
		field, ok := fields[filter.Key]
		for _, r := range records {
			if !ok || field(r).Matches(filter.Value) {
				out = append(out, r)
			}
		}
	} else {
		out = append(out, records...)
	}

	field, ok := fields[s.Key]
	if !ok {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := field(out[i]), field(out[j])
		if s.Desc {
			return b.Less(a)
		}
		return a.Less(b)
	})

	return out
}

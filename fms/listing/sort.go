package listing

import (
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection treats anything but "desc" as ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// SortSpec is caller-owned list state. An empty Key means input order.
type SortSpec struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

func (s SortSpec) Active() bool {
	return s.Key != ""
}

// Toggle returns the spec after the user selects key: the same key flips the
// direction, a different key starts ascending.
func (s SortSpec) Toggle(key string) SortSpec {
	if s.Key == key && s.Direction == Asc {
		return SortSpec{Key: key, Direction: Desc}
	}
	return SortSpec{Key: key, Direction: Asc}
}

// Record exposes sortable and filterable fields by key. A nil value, or an
// empty string, counts as absent.
type Record interface {
	FieldValue(key string) any
}

// Language drives string collation.
var Language = language.Korean

type keyed[T any] struct {
	rec T
	val value
}

// SortRecords returns a new slice ordered by spec. Equal keys keep input order
// and absent values go last in either direction.
func SortRecords[T Record](records []T, spec SortSpec) []T {
	out := make([]T, len(records))
	if !spec.Active() {
		copy(out, records)
		return out
	}

	items := make([]keyed[T], len(records))
	for i, r := range records {
		items[i] = keyed[T]{rec: r, val: normalize(r.FieldValue(spec.Key))}
	}

	col := collate.New(Language)
	desc := spec.Direction == Desc
	slices.SortStableFunc(items, func(a, b keyed[T]) int {
		switch {
		case a.val.null && b.val.null:
			return 0
		case a.val.null:
			return 1
		case b.val.null:
			return -1
		}
		c := compare(a.val, b.val, col)
		if desc {
			return -c
		}
		return c
	})

	for i, it := range items {
		out[i] = it.rec
	}
	return out
}

package listing

import (
	"strings"

	"golang.org/x/text/cases"
)

// DateRange bounds are YYYY-MM-DD and inclusive. An empty bound is open.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r DateRange) empty() bool {
	return strings.TrimSpace(r.From) == "" && strings.TrimSpace(r.To) == ""
}

// Filters narrow a list. Keys are record field keys; empty values impose no constraint.
type Filters struct {
	Equals   map[string]string    `json:"equals,omitempty"`
	Contains map[string]string    `json:"contains,omitempty"`
	Ranges   map[string]DateRange `json:"ranges,omitempty"`
}

func (f Filters) Empty() bool {
	for _, v := range f.Equals {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	for _, v := range f.Contains {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	for _, r := range f.Ranges {
		if !r.empty() {
			return false
		}
	}
	return true
}

// FilterRecords returns the records matching every active filter, in input order.
func FilterRecords[T Record](records []T, f Filters) []T {
	out := make([]T, 0, len(records))
	if f.Empty() {
		return append(out, records...)
	}

	fold := cases.Fold()
	needles := make(map[string]string, len(f.Contains))
	for k, v := range f.Contains {
		if v = strings.TrimSpace(v); v != "" {
			needles[k] = fold.String(v)
		}
	}

	for _, r := range records {
		if matches(r, f, needles, fold) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r Record, f Filters, needles map[string]string, fold cases.Caser) bool {
	for key, want := range f.Equals {
		want = strings.TrimSpace(want)
		if want == "" {
			continue
		}
		v := normalize(r.FieldValue(key))
		if v.null || v.text() != want {
			return false
		}
	}

	for key, needle := range needles {
		v := normalize(r.FieldValue(key))
		if v.null || !strings.Contains(fold.String(v.text()), needle) {
			return false
		}
	}

	for key, rng := range f.Ranges {
		if rng.empty() {
			continue
		}
		d, ok := normalize(r.FieldValue(key)).date()
		if !ok {
			return false
		}
		if from := strings.TrimSpace(rng.From); from != "" && d < from {
			return false
		}
		if to := strings.TrimSpace(rng.To); to != "" && d > to {
			return false
		}
	}
	return true
}

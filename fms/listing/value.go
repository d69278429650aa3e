package listing

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/collate"
)

type kind int

const (
	kindString kind = iota
	kindNumber
	kindTime
	kindDate
)

type value struct {
	null bool
	kind kind
	num  float64
	t    time.Time
	str  string
}

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

func normalize(v any) value {
	switch x := v.(type) {
	case nil:
		return value{null: true}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return value{null: true}
		}
		if isoDate.MatchString(s) {
			return value{kind: kindDate, str: s}
		}
		return value{kind: kindString, str: s}
	case *string:
		if x == nil {
			return value{null: true}
		}
		return normalize(*x)
	case int:
		return value{kind: kindNumber, num: float64(x)}
	case int32:
		return value{kind: kindNumber, num: float64(x)}
	case int64:
		return value{kind: kindNumber, num: float64(x)}
	case uint:
		return value{kind: kindNumber, num: float64(x)}
	case float32:
		return value{kind: kindNumber, num: float64(x)}
	case float64:
		return value{kind: kindNumber, num: x}
	case *float64:
		if x == nil {
			return value{null: true}
		}
		return value{kind: kindNumber, num: *x}
	case *int:
		if x == nil {
			return value{null: true}
		}
		return value{kind: kindNumber, num: float64(*x)}
	case time.Time:
		if x.IsZero() {
			return value{null: true}
		}
		return value{kind: kindTime, t: x}
	case *time.Time:
		if x == nil || x.IsZero() {
			return value{null: true}
		}
		return value{kind: kindTime, t: *x}
	case fmt.Stringer:
		return normalize(x.String())
	default:
		return normalize(fmt.Sprint(x))
	}
}

func (v value) text() string {
	switch v.kind {
	case kindNumber:
		return fmt.Sprint(v.num)
	case kindTime:
		return v.t.Format(time.RFC3339)
	default:
		return v.str
	}
}

// date returns the YYYY-MM-DD part of a date-like value.
func (v value) date() (string, bool) {
	switch v.kind {
	case kindTime:
		return v.t.Format("2006-01-02"), true
	case kindDate:
		return v.str[:10], true
	default:
		return "", false
	}
}

func compare(a, b value, col *collate.Collator) int {
	if a.kind == b.kind {
		switch a.kind {
		case kindNumber:
			return compareFloat(a.num, b.num)
		case kindTime:
			return a.t.Compare(b.t)
		case kindDate:
			return strings.Compare(a.str, b.str)
		}
	}
	return col.CompareString(a.text(), b.text())
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

package booking

import (
	"strings"

	"github.com/go-playground/validator"
)

const (
	GroupRequired = "required"
	GroupOptional = "optional"
)

var validate = validator.New()

// Rule checks one field of T with a validator tag such as "required" or "required,gt=0".
type Rule[T any] struct {
	Field   string
	Group   string
	Tag     string
	Message string
	Value   func(T) any
}

// RuleSet is evaluated in declared order.
type RuleSet[T any] struct {
	Name  string
	Rules []Rule[T]
}

type ValidationResult struct {
	Errors            map[string]string `json:"errors"`
	Fields            []string          `json:"fields"`
	FirstInvalidGroup string            `json:"first_invalid_group"`
}

func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate runs every rule against record. It has no side effects.
func Validate[T any](record T, rs RuleSet[T]) ValidationResult {
	res := ValidationResult{Errors: map[string]string{}, Fields: []string{}}
	for _, rule := range rs.Rules {
		v := rule.Value(record)
		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
		}
		if err := validate.Var(v, rule.Tag); err == nil {
			continue
		}
		if _, seen := res.Errors[rule.Field]; seen {
			continue
		}
		res.Errors[rule.Field] = rule.Message
		res.Fields = append(res.Fields, rule.Field)
		if res.FirstInvalidGroup == "" {
			res.FirstInvalidGroup = rule.Group
		}
	}
	return res
}

// ValidateBooking checks the create/edit/submit required set.
func ValidateBooking(b Booking) ValidationResult {
	return Validate(b, BookingRules)
}

// ValidateShippingRequest checks the S/R send gate.
func ValidateShippingRequest(sr ShippingRequest) ValidationResult {
	return Validate(sr, ShippingRequestRules)
}

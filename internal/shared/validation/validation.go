package validation

import (
	"errors"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"book-management/internal/shared"
)

// Rule is a single field rule. Every rule carries the violation key it
// reports, so validation output is a stable list of keys the message catalog
// can resolve.
type Rule = ozzo.Rule

// Field binds a request field to its ordered rule list.
type Field struct {
	Name  string
	Value interface{}
	Rules []Rule
}

// Check runs the rule table and returns the violation keys in declaration
// order. Within a field only the first failing rule is reported; the
// remaining rules usually presuppose the earlier ones (size checks on a
// missing value, temporal checks on an absent date).
func Check(fields ...Field) []string {
	var keys []string
	for _, f := range fields {
		for _, rule := range f.Rules {
			if err := ozzo.Validate(f.Value, rule); err != nil {
				keys = append(keys, err.Error())
				break
			}
		}
	}
	return keys
}

// NotBlank fails with key when a text value is absent or only whitespace.
func NotBlank(key string) Rule {
	return ozzo.By(func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return errors.New(key)
		}
		return nil
	})
}

// MaxRunes fails with key when a text value exceeds n characters. Absent
// values pass; presence is NotBlank's concern.
func MaxRunes(n int, key string) Rule {
	return ozzo.RuneLength(0, n).Error(key)
}

// RequiredDate fails with key when the date is absent.
func RequiredDate(key string) Rule {
	return ozzo.By(func(value interface{}) error {
		d, ok := value.(shared.Date)
		if !ok || d.IsZero() {
			return errors.New(key)
		}
		return nil
	})
}

// PastOrPresent fails with key when the date lies after the server's current
// calendar date. Absent dates pass.
func PastOrPresent(key string) Rule {
	return ozzo.By(func(value interface{}) error {
		d, ok := value.(shared.Date)
		if !ok || d.IsZero() {
			return nil
		}
		if d.Time.After(shared.Today().Time) {
			return errors.New(key)
		}
		return nil
	})
}

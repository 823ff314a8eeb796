package domain

import "fmt"

const (
	MinSkillRating = 1
	MaxSkillRating = 99
	MinAttribute   = 1
	MaxAttribute   = 20
)

// ValidationError reports a field whose value violates its bound.
type ValidationError struct {
	Field string
	Value int64
	Min   int64
	Max   int64
}

func (e *ValidationError) Error() string {
	if e.Max == 0 {
		return fmt.Sprintf("%s: %d below minimum %d", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s: %d out of range [%d,%d]", e.Field, e.Value, e.Min, e.Max)
}

// IsValidSkillRating reports whether v is a legal footballer rating.
func IsValidSkillRating(v int) bool {
	return v >= MinSkillRating && v <= MaxSkillRating
}

// IsValidAttribute reports whether v is a legal staff attribute.
func IsValidAttribute(v int) bool {
	return v >= MinAttribute && v <= MaxAttribute
}

func checkAttributes(attrs []struct {
	field string
	value int
}) error {
	for _, a := range attrs {
		if !IsValidAttribute(a.value) {
			return &ValidationError{Field: a.field, Value: int64(a.value), Min: MinAttribute, Max: MaxAttribute}
		}
	}
	return nil
}

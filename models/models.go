package models

import (
	"fmt"

	"github.com/yeremiapane/review-app/serializer"
)

// All lists the models in migration order.
func All() []interface{} {
	return []interface{}{&Customer{}, &Item{}, &Review{}}
}

// ToDict serializes a customer, item or review (or a pointer to one) with
// the exclusion rules declared on the model.
func ToDict(v interface{}) map[string]interface{} {
	return serializer.ToDict(v)
}

// ToDictList serializes a slice of models.
func ToDictList(v interface{}) []interface{} {
	return serializer.ToDictList(v)
}

// Ptr returns a pointer to v, for filling nullable columns.
func Ptr[T any](v T) *T {
	return &v
}

// orNone formats a nullable column, printing NULL as None.
func orNone[T any](v *T) string {
	if v == nil {
		return "None"
	}
	return fmt.Sprint(*v)
}

package domain

import "errors"

// Определяем переменные-ошибки, которые могут быть возвращены из Use Cases.
var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrInvalidPropertyType = errors.New("invalid property type")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)

// ValidPropertyType проверяет значение против перечня допустимых типов.
func ValidPropertyType(t string) bool {
	switch t {
	case PropertyTypeResidential, PropertyTypeCommercial, PropertyTypeLand, PropertyTypeMixedUse:
		return true
	}
	return false
}

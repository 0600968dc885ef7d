package domain

import "strings"

// PropertyFilters - структура для передачи всех возможных фильтров поиска.
// Все поля опциональны: nil означает, что критерий не задан и не
// накладывает ограничений. Заданный нулевой указатель (например, Bedrooms=0)
// является полноценным критерием точного совпадения.
type PropertyFilters struct {
	PropertyType *string
	Location     *string
	MinPrice     *int64
	MaxPrice     *int64
	Bedrooms     *int
	Bathrooms    *int
}

// IsEmpty сообщает, задан ли хотя бы один критерий.
func (f PropertyFilters) IsEmpty() bool {
	return f.PropertyType == nil && f.Location == nil &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.Bedrooms == nil && f.Bathrooms == nil
}

// Matches проверяет объект против всех заданных критериев (логическое И).
// Критерии, равные nil, пропускаются. Границы цены включительные.
// Bedrooms/Bathrooms - точное совпадение; объект без значения (nil)
// никогда не проходит заданный критерий.
func (f PropertyFilters) Matches(p Property) bool {
	if f.PropertyType != nil && p.PropertyType != *f.PropertyType {
		return false
	}
	if f.Location != nil && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(*f.Location)) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Bedrooms != nil && (p.Bedrooms == nil || *p.Bedrooms != *f.Bedrooms) {
		return false
	}
	if f.Bathrooms != nil && (p.Bathrooms == nil || *p.Bathrooms != *f.Bathrooms) {
		return false
	}
	return true
}

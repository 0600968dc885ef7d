package domain

import (
	"time"
)

// Перечень допустимых типов недвижимости в каталоге.
const (
	PropertyTypeResidential = "residential"
	PropertyTypeCommercial  = "commercial"
	PropertyTypeLand        = "land"
	PropertyTypeMixedUse    = "mixed use"
)

// Property - объект недвижимости в каталоге агентства.
// ID и CreatedAt назначаются хранилищем ровно один раз при создании.
type Property struct {
	ID           string
	Title        string
	Description  string
	Price        int64 // цена в целых единицах валюты, без минорных единиц
	Location     string
	PropertyType string
	Bedrooms     *int
	Bathrooms    *int
	Area         *int // площадь в квадратных метрах
	Amenities    []string
	Images       []string
	Featured     bool
	Available    bool
	CreatedAt    time.Time
}

// NewProperty - входные данные для создания объекта.
// Опциональные поля передаются указателями: nil означает "не задано".
type NewProperty struct {
	Title        string
	Description  string
	Price        int64
	Location     string
	PropertyType string
	Bedrooms     *int
	Bathrooms    *int
	Area         *int
	Amenities    []string
	Images       []string
	Featured     *bool
	Available    *bool
}

// Inquiry - заявка (лид) с формы обратной связи.
// PropertyID - необязательная ссылка на объект, ссылочная целостность не проверяется.
type Inquiry struct {
	ID         string
	FirstName  string
	LastName   *string
	Email      string
	Phone      string
	Budget     *string
	Interest   *string
	Message    *string
	PropertyID *string
	CreatedAt  time.Time
}

// NewInquiry - входные данные заявки.
type NewInquiry struct {
	FirstName  string
	LastName   *string
	Email      string
	Phone      string
	Budget     *string
	Interest   *string
	Message    *string
	PropertyID *string
}

// TeamMember - сотрудник агентства для страницы "команда".
// Order - ключ сортировки при выводе списка.
type TeamMember struct {
	ID       string
	Name     string
	Role     string
	Image    string
	Bio      *string
	LinkedIn *string
	Twitter  *string
	Order    int
}

// NewTeamMember - входные данные для добавления сотрудника.
type NewTeamMember struct {
	Name     string
	Role     string
	Image    string
	Bio      *string
	LinkedIn *string
	Twitter  *string
	Order    *int
}

// Testimonial - отзыв клиента. Rating по умолчанию 5.
type Testimonial struct {
	ID       string
	Name     string
	Role     string
	Content  string
	Image    string
	Rating   int
	Featured bool
}

// NewTestimonial - входные данные отзыва.
type NewTestimonial struct {
	Name     string
	Role     string
	Content  string
	Image    string
	Rating   *int
	Featured *bool
}

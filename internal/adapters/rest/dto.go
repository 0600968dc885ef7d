package rest

import (
	"time"

	"catalog-service/internal/core/domain"
)

// --- DTO запросов ---

type CreatePropertyRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        int64    `json:"price"`
	Location     string   `json:"location"`
	PropertyType string   `json:"propertyType"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	Area         *int     `json:"area"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
	Featured     *bool    `json:"featured"`
	Available    *bool    `json:"available"`
}

type CreateInquiryRequest struct {
	FirstName  string  `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Budget     *string `json:"budget"`
	Interest   *string `json:"interest"`
	Message    *string `json:"message"`
	PropertyID *string `json:"propertyId"`
}

type CreateTeamMemberRequest struct {
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Image    string  `json:"image"`
	Bio      *string `json:"bio"`
	LinkedIn *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
	Order    *int    `json:"order"`
}

type CreateTestimonialRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Rating   *int   `json:"rating"`
	Featured *bool  `json:"featured"`
}

// --- DTO ответов ---
// Необязательные поля сериализуются как null, чтобы форма ответа
// была стабильной для фронтенда.

type PropertyResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        int64     `json:"price"`
	Location     string    `json:"location"`
	PropertyType string    `json:"propertyType"`
	Bedrooms     *int      `json:"bedrooms"`
	Bathrooms    *int      `json:"bathrooms"`
	Area         *int      `json:"area"`
	Amenities    []string  `json:"amenities"`
	Images       []string  `json:"images"`
	Featured     bool      `json:"featured"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"createdAt"`
}

type InquiryResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   *string   `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Budget     *string   `json:"budget"`
	Interest   *string   `json:"interest"`
	Message    *string   `json:"message"`
	PropertyID *string   `json:"propertyId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TeamMemberResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Image    string  `json:"image"`
	Bio      *string `json:"bio"`
	LinkedIn *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
	Order    int     `json:"order"`
}

type TestimonialResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Rating   int    `json:"rating"`
	Featured bool   `json:"featured"`
}

// --- Маппинг domain -> DTO ---

func toPropertyResponse(p domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		Location:     p.Location,
		PropertyType: p.PropertyType,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Area:         p.Area,
		Amenities:    p.Amenities,
		Images:       p.Images,
		Featured:     p.Featured,
		Available:    p.Available,
		CreatedAt:    p.CreatedAt,
	}
}

func toPropertyResponseList(properties []domain.Property) []PropertyResponse {
	response := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		response[i] = toPropertyResponse(p)
	}
	return response
}

func toInquiryResponse(inq domain.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:         inq.ID,
		FirstName:  inq.FirstName,
		LastName:   inq.LastName,
		Email:      inq.Email,
		Phone:      inq.Phone,
		Budget:     inq.Budget,
		Interest:   inq.Interest,
		Message:    inq.Message,
		PropertyID: inq.PropertyID,
		CreatedAt:  inq.CreatedAt,
	}
}

func toTeamMemberResponse(m domain.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:       m.ID,
		Name:     m.Name,
		Role:     m.Role,
		Image:    m.Image,
		Bio:      m.Bio,
		LinkedIn: m.LinkedIn,
		Twitter:  m.Twitter,
		Order:    m.Order,
	}
}

func toTestimonialResponse(t domain.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:       t.ID,
		Name:     t.Name,
		Role:     t.Role,
		Content:  t.Content,
		Image:    t.Image,
		Rating:   t.Rating,
		Featured: t.Featured,
	}
}

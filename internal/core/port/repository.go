package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// CatalogRepositoryPort - контракт хранилища каталога. За ним скрываются
// взаимозаменяемые реализации: in-memory (dev и тесты) и PostgreSQL.
// Хранилище назначает идентификаторы и серверные поля (ID, CreatedAt),
// нормализует незаданные опциональные поля и сохраняет порядок вставки
// для всех списочных выборок (кроме команды, которая сортируется по Order).
type CatalogRepositoryPort interface {
	// Properties
	ListProperties(ctx context.Context) ([]domain.Property, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	ListFeaturedProperties(ctx context.Context) ([]domain.Property, error)
	SearchProperties(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error)
	CreateProperty(ctx context.Context, input domain.NewProperty) (*domain.Property, error)

	// Inquiries
	CreateInquiry(ctx context.Context, input domain.NewInquiry) (*domain.Inquiry, error)
	ListInquiries(ctx context.Context) ([]domain.Inquiry, error)

	// Team members
	ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	CreateTeamMember(ctx context.Context, input domain.NewTeamMember) (*domain.TeamMember, error)

	// Testimonials
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	ListFeaturedTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, input domain.NewTestimonial) (*domain.Testimonial, error)
}

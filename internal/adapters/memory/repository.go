package memory_adapter

import (
	"context"
	"sort"
	"sync"
	"time"

	"catalog-service/internal/core/domain"

	"github.com/google/uuid"
)

// MemoryCatalogRepository - реализация порта хранилища поверх карт в памяти.
// Коллекции живут только в рамках процесса: рестарт молча возвращает
// каталог к посевным данным. Порядок вставки сохраняется отдельными
// срезами идентификаторов, т.к. обход карты в Go не упорядочен.
type MemoryCatalogRepository struct {
	mu sync.RWMutex

	properties   map[string]domain.Property
	inquiries    map[string]domain.Inquiry
	teamMembers  map[string]domain.TeamMember
	testimonials map[string]domain.Testimonial

	propertyOrder    []string
	inquiryOrder     []string
	teamMemberOrder  []string
	testimonialOrder []string
}

// NewMemoryCatalogRepository создает пустое хранилище.
func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		properties:   make(map[string]domain.Property),
		inquiries:    make(map[string]domain.Inquiry),
		teamMembers:  make(map[string]domain.TeamMember),
		testimonials: make(map[string]domain.Testimonial),
	}
}

// NewSeededCatalogRepository создает хранилище, заполненное посевными
// данными сайта (объекты, команда, отзывы).
func NewSeededCatalogRepository() *MemoryCatalogRepository {
	repo := NewMemoryCatalogRepository()
	repo.seed()
	return repo
}

// --- Properties ---

func (r *MemoryCatalogRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Property, 0, len(r.propertyOrder))
	for _, id := range r.propertyOrder {
		out = append(out, cloneProperty(r.properties[id]))
	}
	return out, nil
}

func (r *MemoryCatalogRepository) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	clone := cloneProperty(p)
	return &clone, nil
}

func (r *MemoryCatalogRepository) ListFeaturedProperties(ctx context.Context) ([]domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Property
	for _, id := range r.propertyOrder {
		if p := r.properties[id]; p.Featured {
			out = append(out, cloneProperty(p))
		}
	}
	return out, nil
}

// SearchProperties выполняет один линейный проход по коллекции в порядке
// вставки. Результат детерминирован для неизменной коллекции.
func (r *MemoryCatalogRepository) SearchProperties(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Property
	for _, id := range r.propertyOrder {
		if p := r.properties[id]; filters.Matches(p) {
			out = append(out, cloneProperty(p))
		}
	}
	return out, nil
}

func (r *MemoryCatalogRepository) CreateProperty(ctx context.Context, input domain.NewProperty) (*domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	property := domain.Property{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Location:     input.Location,
		PropertyType: input.PropertyType,
		Bedrooms:     cloneIntPtr(input.Bedrooms),
		Bathrooms:    cloneIntPtr(input.Bathrooms),
		Area:         cloneIntPtr(input.Area),
		Amenities:    normalizeStrings(input.Amenities),
		Images:       normalizeStrings(input.Images),
		Featured:     boolOrDefault(input.Featured, false),
		Available:    boolOrDefault(input.Available, true),
		CreatedAt:    time.Now().UTC(),
	}

	r.properties[property.ID] = property
	r.propertyOrder = append(r.propertyOrder, property.ID)

	clone := cloneProperty(property)
	return &clone, nil
}

// --- Inquiries ---

func (r *MemoryCatalogRepository) CreateInquiry(ctx context.Context, input domain.NewInquiry) (*domain.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inquiry := domain.Inquiry{
		ID:         uuid.NewString(),
		FirstName:  input.FirstName,
		LastName:   cloneStringPtr(input.LastName),
		Email:      input.Email,
		Phone:      input.Phone,
		Budget:     cloneStringPtr(input.Budget),
		Interest:   cloneStringPtr(input.Interest),
		Message:    cloneStringPtr(input.Message),
		PropertyID: cloneStringPtr(input.PropertyID),
		CreatedAt:  time.Now().UTC(),
	}

	r.inquiries[inquiry.ID] = inquiry
	r.inquiryOrder = append(r.inquiryOrder, inquiry.ID)

	clone := cloneInquiry(inquiry)
	return &clone, nil
}

func (r *MemoryCatalogRepository) ListInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Inquiry, 0, len(r.inquiryOrder))
	for _, id := range r.inquiryOrder {
		out = append(out, cloneInquiry(r.inquiries[id]))
	}
	return out, nil
}

// --- Team members ---

// ListTeamMembers - единственная выборка с сортировкой: по ключу Order,
// при равенстве - по имени, чтобы порядок был стабильным.
func (r *MemoryCatalogRepository) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.TeamMember, 0, len(r.teamMemberOrder))
	for _, id := range r.teamMemberOrder {
		out = append(out, cloneTeamMember(r.teamMembers[id]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *MemoryCatalogRepository) CreateTeamMember(ctx context.Context, input domain.NewTeamMember) (*domain.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	member := domain.TeamMember{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Role:     input.Role,
		Image:    input.Image,
		Bio:      cloneStringPtr(input.Bio),
		LinkedIn: cloneStringPtr(input.LinkedIn),
		Twitter:  cloneStringPtr(input.Twitter),
		Order:    intOrDefault(input.Order, 0),
	}

	r.teamMembers[member.ID] = member
	r.teamMemberOrder = append(r.teamMemberOrder, member.ID)

	clone := cloneTeamMember(member)
	return &clone, nil
}

// --- Testimonials ---

func (r *MemoryCatalogRepository) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Testimonial, 0, len(r.testimonialOrder))
	for _, id := range r.testimonialOrder {
		out = append(out, r.testimonials[id])
	}
	return out, nil
}

func (r *MemoryCatalogRepository) ListFeaturedTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Testimonial
	for _, id := range r.testimonialOrder {
		if t := r.testimonials[id]; t.Featured {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *MemoryCatalogRepository) CreateTestimonial(ctx context.Context, input domain.NewTestimonial) (*domain.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	testimonial := domain.Testimonial{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Role:     input.Role,
		Content:  input.Content,
		Image:    input.Image,
		Rating:   intOrDefault(input.Rating, 5),
		Featured: boolOrDefault(input.Featured, false),
	}

	r.testimonials[testimonial.ID] = testimonial
	r.testimonialOrder = append(r.testimonialOrder, testimonial.ID)

	clone := testimonial
	return &clone, nil
}

// --- Копирование и нормализация ---
// Хранилище отдает и принимает только копии: вызывающий код не должен
// иметь возможности мутировать внутреннее состояние через срезы и указатели.

func cloneProperty(p domain.Property) domain.Property {
	p.Bedrooms = cloneIntPtr(p.Bedrooms)
	p.Bathrooms = cloneIntPtr(p.Bathrooms)
	p.Area = cloneIntPtr(p.Area)
	p.Amenities = cloneStrings(p.Amenities)
	p.Images = cloneStrings(p.Images)
	return p
}

func cloneInquiry(i domain.Inquiry) domain.Inquiry {
	i.LastName = cloneStringPtr(i.LastName)
	i.Budget = cloneStringPtr(i.Budget)
	i.Interest = cloneStringPtr(i.Interest)
	i.Message = cloneStringPtr(i.Message)
	i.PropertyID = cloneStringPtr(i.PropertyID)
	return i
}

func cloneTeamMember(m domain.TeamMember) domain.TeamMember {
	m.Bio = cloneStringPtr(m.Bio)
	m.LinkedIn = cloneStringPtr(m.LinkedIn)
	m.Twitter = cloneStringPtr(m.Twitter)
	return m
}

func cloneIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneStringPtr(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneStrings(v []string) []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

// normalizeStrings приводит незаданный срез к явному пустому значению,
// чтобы в JSON всегда уходил [], а не null.
func normalizeStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

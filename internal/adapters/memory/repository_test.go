package memory_adapter

import (
	"context"
	"reflect"
	"testing"

	"catalog-service/internal/core/domain"
)

func int64Ptr(v int64) *int64 { return &v }

// fixtureProperties - небольшой каталог для проверки поиска: цены
// подобраны так, чтобы диапазон 100-200 млн отсекал ровно два объекта.
func fixtureProperties() []domain.NewProperty {
	return []domain.NewProperty{
		{
			Title:        "Serviced Plot",
			Description:  "Dry land inside a gated scheme",
			Price:        85000000,
			Location:     "Epe, Lagos",
			PropertyType: domain.PropertyTypeLand,
		},
		{
			Title:        "Detached Duplex",
			Description:  "Five bedroom duplex with BQ",
			Price:        125000000,
			Location:     "Thomas Estate, Ajah, Lagos",
			PropertyType: domain.PropertyTypeResidential,
			Bedrooms:     intPtr(5),
			Bathrooms:    intPtr(6),
			Featured:     boolPtr(true),
		},
		{
			Title:        "Terrace Townhouse",
			Description:  "Four bedroom terrace in a serviced estate",
			Price:        150000000,
			Location:     "Ikate, Lekki",
			PropertyType: domain.PropertyTypeResidential,
			Bedrooms:     intPtr(4),
			Bathrooms:    intPtr(4),
		},
		{
			Title:        "Corner Shop Complex",
			Description:  "Retail units on a major road",
			Price:        250000000,
			Location:     "Ajah, Lagos",
			PropertyType: domain.PropertyTypeCommercial,
			Featured:     boolPtr(true),
		},
	}
}

func newFixtureRepository(t *testing.T) *MemoryCatalogRepository {
	t.Helper()
	repo := NewMemoryCatalogRepository()
	for _, input := range fixtureProperties() {
		if _, err := repo.CreateProperty(context.Background(), input); err != nil {
			t.Fatalf("CreateProperty: %v", err)
		}
	}
	return repo
}

func propertyTitles(properties []domain.Property) []string {
	titles := make([]string, len(properties))
	for i, p := range properties {
		titles[i] = p.Title
	}
	return titles
}

func TestCreatePropertyAssignsUniqueIDs(t *testing.T) {
	repo := newFixtureRepository(t)

	properties, err := repo.ListProperties(context.Background())
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if len(properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(properties))
	}

	seen := make(map[string]bool)
	for _, p := range properties {
		if p.ID == "" {
			t.Fatalf("property %q has empty id", p.Title)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate property id %q", p.ID)
		}
		seen[p.ID] = true
		if p.CreatedAt.IsZero() {
			t.Fatalf("property %q has zero CreatedAt", p.Title)
		}
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	repo := newFixtureRepository(t)

	if _, err := repo.GetProperty(context.Background(), "no-such-id"); err != domain.ErrPropertyNotFound {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestSearchPropertiesMatchesBruteForce(t *testing.T) {
	repo := newFixtureRepository(t)
	ctx := context.Background()

	filtersList := []domain.PropertyFilters{
		{},
		{Location: strPtr("ajah")},
		{PropertyType: strPtr(domain.PropertyTypeResidential)},
		{MinPrice: int64Ptr(100000000), MaxPrice: int64Ptr(200000000)},
		{Bedrooms: intPtr(4)},
		{Location: strPtr("Lagos"), MaxPrice: int64Ptr(130000000)},
	}

	all, err := repo.ListProperties(ctx)
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}

	for _, filters := range filtersList {
		got, err := repo.SearchProperties(ctx, filters)
		if err != nil {
			t.Fatalf("SearchProperties: %v", err)
		}

		// Эталон: прямой перебор всей коллекции теми же критериями
		var want []domain.Property
		for _, p := range all {
			if filters.Matches(p) {
				want = append(want, p)
			}
		}
		if !reflect.DeepEqual(propertyTitles(got), propertyTitles(want)) {
			t.Fatalf("filters %+v: got %v, want %v", filters, propertyTitles(got), propertyTitles(want))
		}
	}
}

func TestSearchPropertiesIdempotent(t *testing.T) {
	repo := newFixtureRepository(t)
	ctx := context.Background()
	filters := domain.PropertyFilters{Location: strPtr("lagos")}

	first, err := repo.SearchProperties(ctx, filters)
	if err != nil {
		t.Fatalf("SearchProperties: %v", err)
	}
	second, err := repo.SearchProperties(ctx, filters)
	if err != nil {
		t.Fatalf("SearchProperties: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated search returned different results")
	}
}

func TestSearchPropertiesPriceBandInclusive(t *testing.T) {
	repo := newFixtureRepository(t)

	got, err := repo.SearchProperties(context.Background(), domain.PropertyFilters{
		MinPrice: int64Ptr(100000000),
		MaxPrice: int64Ptr(200000000),
	})
	if err != nil {
		t.Fatalf("SearchProperties: %v", err)
	}

	want := []string{"Detached Duplex", "Terrace Townhouse"}
	if !reflect.DeepEqual(propertyTitles(got), want) {
		t.Fatalf("price band 100M-200M: got %v, want %v", propertyTitles(got), want)
	}

	// Границы включительные: точное совпадение цены проходит фильтр
	exact, err := repo.SearchProperties(context.Background(), domain.PropertyFilters{
		MinPrice: int64Ptr(125000000),
		MaxPrice: int64Ptr(125000000),
	})
	if err != nil {
		t.Fatalf("SearchProperties: %v", err)
	}
	if len(exact) != 1 || exact[0].Title != "Detached Duplex" {
		t.Fatalf("exact price bounds: got %v", propertyTitles(exact))
	}
}

func TestSearchPropertiesLocationCaseInsensitive(t *testing.T) {
	repo := newFixtureRepository(t)
	ctx := context.Background()

	for _, query := range []string{"ajah", "AJAH", "Ajah"} {
		got, err := repo.SearchProperties(ctx, domain.PropertyFilters{Location: strPtr(query)})
		if err != nil {
			t.Fatalf("SearchProperties(%q): %v", query, err)
		}
		want := []string{"Detached Duplex", "Corner Shop Complex"}
		if !reflect.DeepEqual(propertyTitles(got), want) {
			t.Fatalf("location %q: got %v, want %v", query, propertyTitles(got), want)
		}
	}
}

func TestSearchPropertiesExactBedrooms(t *testing.T) {
	repo := newFixtureRepository(t)

	got, err := repo.SearchProperties(context.Background(), domain.PropertyFilters{Bedrooms: intPtr(4)})
	if err != nil {
		t.Fatalf("SearchProperties: %v", err)
	}
	// Точное равенство: пять спален не подходят под запрос четырех,
	// объекты без спален не подходят никогда
	want := []string{"Terrace Townhouse"}
	if !reflect.DeepEqual(propertyTitles(got), want) {
		t.Fatalf("bedrooms=4: got %v, want %v", propertyTitles(got), want)
	}
}

func TestListFeaturedPropertiesPreservesOrder(t *testing.T) {
	repo := newFixtureRepository(t)

	got, err := repo.ListFeaturedProperties(context.Background())
	if err != nil {
		t.Fatalf("ListFeaturedProperties: %v", err)
	}
	want := []string{"Detached Duplex", "Corner Shop Complex"}
	if !reflect.DeepEqual(propertyTitles(got), want) {
		t.Fatalf("featured order: got %v, want %v", propertyTitles(got), want)
	}
}

func TestCreatePropertyDefaults(t *testing.T) {
	repo := NewMemoryCatalogRepository()

	created, err := repo.CreateProperty(context.Background(), domain.NewProperty{
		Title:        "Bare Plot",
		Description:  "Land without extras",
		Price:        10000000,
		Location:     "Ibeju-Lekki",
		PropertyType: domain.PropertyTypeLand,
	})
	if err != nil {
		t.Fatalf("CreateProperty: %v", err)
	}

	if created.Featured {
		t.Fatalf("Featured must default to false")
	}
	if !created.Available {
		t.Fatalf("Available must default to true")
	}
	if created.Amenities == nil || created.Images == nil {
		t.Fatalf("nil slices must be normalized to empty, got %v / %v", created.Amenities, created.Images)
	}
}

func TestCreateInquiryAndList(t *testing.T) {
	repo := NewMemoryCatalogRepository()
	ctx := context.Background()

	created, err := repo.CreateInquiry(ctx, domain.NewInquiry{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Phone:     "+2348012345678",
		Message:   strPtr("Interested in the duplex"),
	})
	if err != nil {
		t.Fatalf("CreateInquiry: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("inquiry must get id and timestamp, got %+v", created)
	}

	inquiries, err := repo.ListInquiries(ctx)
	if err != nil {
		t.Fatalf("ListInquiries: %v", err)
	}
	if len(inquiries) != 1 || inquiries[0].ID != created.ID {
		t.Fatalf("expected single stored inquiry %q, got %+v", created.ID, inquiries)
	}
}

func TestListTeamMembersSortedByOrder(t *testing.T) {
	repo := NewMemoryCatalogRepository()
	ctx := context.Background()

	// Вставляем не по порядку, выборка должна отсортировать по Order
	inputs := []domain.NewTeamMember{
		{Name: "Chidi Nwosu", Role: "Head of Sales", Image: "chidi.jpg", Order: intPtr(3)},
		{Name: "Olumide Adeyemi", Role: "Managing Director", Image: "olumide.jpg", Order: intPtr(1)},
		{Name: "Funmi Olateju", Role: "Lead Agent", Image: "funmi.jpg", Order: intPtr(2)},
	}
	for _, input := range inputs {
		if _, err := repo.CreateTeamMember(ctx, input); err != nil {
			t.Fatalf("CreateTeamMember: %v", err)
		}
	}

	members, err := repo.ListTeamMembers(ctx)
	if err != nil {
		t.Fatalf("ListTeamMembers: %v", err)
	}
	want := []string{"Olumide Adeyemi", "Funmi Olateju", "Chidi Nwosu"}
	for i, name := range want {
		if members[i].Name != name {
			t.Fatalf("team order: got %s at %d, want %s", members[i].Name, i, name)
		}
	}
}

func TestCreateTestimonialDefaultRating(t *testing.T) {
	repo := NewMemoryCatalogRepository()

	created, err := repo.CreateTestimonial(context.Background(), domain.NewTestimonial{
		Name:    "Ngozi Eze",
		Role:    "Homeowner",
		Content: "Smooth transaction from start to finish.",
		Image:   "ngozi.jpg",
	})
	if err != nil {
		t.Fatalf("CreateTestimonial: %v", err)
	}
	if created.Rating != 5 {
		t.Fatalf("rating must default to 5, got %d", created.Rating)
	}
	if created.Featured {
		t.Fatalf("featured must default to false")
	}
}

func TestSeededRepositoryCounts(t *testing.T) {
	repo := NewSeededCatalogRepository()
	ctx := context.Background()

	properties, err := repo.ListProperties(ctx)
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if len(properties) != 5 {
		t.Fatalf("expected 5 seeded properties, got %d", len(properties))
	}

	members, err := repo.ListTeamMembers(ctx)
	if err != nil {
		t.Fatalf("ListTeamMembers: %v", err)
	}
	if len(members) != 4 {
		t.Fatalf("expected 4 seeded team members, got %d", len(members))
	}

	testimonials, err := repo.ListTestimonials(ctx)
	if err != nil {
		t.Fatalf("ListTestimonials: %v", err)
	}
	if len(testimonials) != 3 {
		t.Fatalf("expected 3 seeded testimonials, got %d", len(testimonials))
	}
}

// Изменение результата выборки не должно протекать во внутреннее состояние.
func TestListPropertiesReturnsCopies(t *testing.T) {
	repo := newFixtureRepository(t)
	ctx := context.Background()

	first, err := repo.ListProperties(ctx)
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	first[0].Title = "mutated"
	if first[0].Bedrooms != nil {
		*first[0].Bedrooms = 99
	}

	second, err := repo.ListProperties(ctx)
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if second[0].Title == "mutated" {
		t.Fatalf("mutation of returned slice leaked into the repository")
	}
	if second[0].Bedrooms != nil && *second[0].Bedrooms == 99 {
		t.Fatalf("mutation through pointer leaked into the repository")
	}
}

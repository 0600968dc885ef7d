package memory_adapter

import (
	"context"

	"catalog-service/internal/core/domain"
)

// seed наполняет хранилище витринными данными сайта. Вызывается только из
// конструктора, поэтому ошибки create-операций здесь невозможны
// (in-memory создание не падает) и намеренно игнорируются.
func (r *MemoryCatalogRepository) seed() {
	ctx := context.Background()

	for _, p := range seedProperties() {
		r.CreateProperty(ctx, p)
	}
	for _, m := range seedTeamMembers() {
		r.CreateTeamMember(ctx, m)
	}
	for _, t := range seedTestimonials() {
		r.CreateTestimonial(ctx, t)
	}
}

func seedProperties() []domain.NewProperty {
	return []domain.NewProperty{
		{
			Title:        "Luxury Waterfront Villa",
			Description:  "Stunning 5-bedroom waterfront villa with private pool and generator. Perfect for high-net-worth individuals seeking premium living in Victoria Island.",
			Price:        185000000,
			Location:     "Victoria Island, Lagos",
			PropertyType: domain.PropertyTypeResidential,
			Bedrooms:     intPtr(5),
			Bathrooms:    intPtr(6),
			Area:         intPtr(450),
			Amenities:    []string{"Swimming Pool", "Generator", "Security", "Parking", "Garden"},
			Images:       []string{"https://images.unsplash.com/photo-1613977257363-707ba9348227?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
			Featured:     boolPtr(true),
		},
		{
			Title:        "Premium Office Complex",
			Description:  "Modern 12-floor commercial building in Abuja CBD with 24/7 security and ample parking. Ideal for corporate headquarters and investment.",
			Price:        450000000,
			Location:     "Abuja CBD",
			PropertyType: domain.PropertyTypeCommercial,
			Bedrooms:     intPtr(0),
			Bathrooms:    intPtr(24),
			Area:         intPtr(2500),
			Amenities:    []string{"24/7 Security", "Parking", "Elevator", "Generator", "Air Conditioning"},
			Images:       []string{"https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
			Featured:     boolPtr(true),
		},
		{
			Title:        "Gated Estate Development",
			Description:  "Elegant 4-bedroom homes in a secure gated estate with clubhouse and golf course. Perfect for families seeking luxury and security in Abeokuta.",
			Price:        95000000,
			Location:     "Abeokuta, Ogun",
			PropertyType: domain.PropertyTypeResidential,
			Bedrooms:     intPtr(4),
			Bathrooms:    intPtr(5),
			Area:         intPtr(320),
			Amenities:    []string{"Clubhouse", "Golf Course", "Security", "Playground", "Generator"},
			Images:       []string{"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
			Featured:     boolPtr(true),
		},
		{
			Title:        "Modern Apartment Complex",
			Description:  "Contemporary 3-bedroom apartments with city views and modern amenities in the heart of Lagos.",
			Price:        75000000,
			Location:     "Ikeja, Lagos",
			PropertyType: domain.PropertyTypeResidential,
			Bedrooms:     intPtr(3),
			Bathrooms:    intPtr(4),
			Area:         intPtr(180),
			Amenities:    []string{"Gym", "Swimming Pool", "Security", "Parking", "Generator"},
			Images:       []string{"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
		},
		{
			Title:        "Commercial Land",
			Description:  "Prime commercial land in Asaba suitable for shopping mall or office complex development.",
			Price:        120000000,
			Location:     "Asaba, Delta",
			PropertyType: domain.PropertyTypeLand,
			Bedrooms:     intPtr(0),
			Bathrooms:    intPtr(0),
			Area:         intPtr(1000),
			Amenities:    []string{"Corner Plot", "Access Road", "Electricity", "Water"},
			Images:       []string{"https://images.unsplash.com/photo-1500382017468-9049fed747ef?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
		},
	}
}

func seedTeamMembers() []domain.NewTeamMember {
	return []domain.NewTeamMember{
		{
			Name:     "Olumide Adeyemi",
			Role:     "Founder & Investment Advisor",
			Image:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Bio:      strPtr("15+ years of experience in real estate investment and financial advisory"),
			LinkedIn: strPtr("#"),
			Twitter:  strPtr("#"),
			Order:    intPtr(1),
		},
		{
			Name:     "Funmi Olateju",
			Role:     "Head of Sales & Client Relations",
			Image:    "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Bio:      strPtr("Expert in client relationship management and luxury property sales"),
			LinkedIn: strPtr("#"),
			Twitter:  strPtr("#"),
			Order:    intPtr(2),
		},
		{
			Name:     "Chidi Nwosu",
			Role:     "Legal & Documentation Specialist",
			Image:    "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Bio:      strPtr("Specialized in real estate law and property documentation"),
			LinkedIn: strPtr("#"),
			Twitter:  strPtr("#"),
			Order:    intPtr(3),
		},
		{
			Name:     "Aisha Bello",
			Role:     "Market Research & Analysis",
			Image:    "https://images.unsplash.com/photo-1551836022-deb4988cc6c0?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Bio:      strPtr("Market analyst with deep insights into Nigerian real estate trends"),
			LinkedIn: strPtr("#"),
			Twitter:  strPtr("#"),
			Order:    intPtr(4),
		},
	}
}

func seedTestimonials() []domain.NewTestimonial {
	return []domain.NewTestimonial{
		{
			Name:     "Adunni Adebayo",
			Role:     "CEO, Lagos",
			Content:  "Safehold Properties helped me acquire three investment properties in Lagos. Their expertise and market knowledge are unmatched. The ROI has exceeded my expectations, and their after-sales service is exceptional.",
			Image:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
			Rating:   intPtr(5),
			Featured: boolPtr(true),
		},
		{
			Name:     "Emeka Okafor",
			Role:     "Investment Banker",
			Content:  "As a first-time property investor, I was nervous about making such a significant investment. The team at Safehold made the process seamless and transparent. I'm now a proud owner of a commercial property in Abuja.",
			Image:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
			Rating:   intPtr(5),
			Featured: boolPtr(true),
		},
		{
			Name:     "The Johnsons",
			Role:     "Diaspora Investors",
			Content:  "Living in the UK, we needed a trusted partner to help us invest back home. Safehold Properties handled everything from property selection to legal documentation. We now own beautiful properties in both Nigeria and South Africa.",
			Image:    "https://images.unsplash.com/photo-1509475826633-fed577a2c71b?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
			Rating:   intPtr(5),
			Featured: boolPtr(true),
		},
	}
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

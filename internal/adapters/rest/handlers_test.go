package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	logger_adapter "catalog-service/internal/adapters/logger"
	memory_adapter "catalog-service/internal/adapters/memory"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/usecase"
)

// noopNotifier подменяет SMTP-отправку в тестах.
type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, inquiry domain.Inquiry) error { return nil }

func newTestServer(t *testing.T) (*Server, *memory_adapter.MemoryCatalogRepository) {
	t.Helper()

	repo := memory_adapter.NewSeededCatalogRepository()
	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Writer: io.Discard,
		Level:  slog.LevelError,
	})

	propertyHandler := NewPropertyHandler(
		usecase.NewGetPropertiesUseCase(repo),
		usecase.NewGetFeaturedPropertiesUseCase(repo),
		usecase.NewSearchPropertiesUseCase(repo),
		usecase.NewGetPropertyDetailsUseCase(repo),
		usecase.NewCreatePropertyUseCase(repo),
	)
	inquiryHandler := NewInquiryHandler(
		usecase.NewCreateInquiryUseCase(repo, noopNotifier{}),
		usecase.NewGetInquiriesUseCase(repo),
	)
	contentHandler := NewContentHandler(
		usecase.NewGetTeamMembersUseCase(repo),
		usecase.NewCreateTeamMemberUseCase(repo),
		usecase.NewGetTestimonialsUseCase(repo),
		usecase.NewGetFeaturedTestimonialsUseCase(repo),
		usecase.NewCreateTestimonialUseCase(repo),
	)

	server := NewServer("0", []string{"*"}, propertyHandler, inquiryHandler, contentHandler, logger)
	return server, repo
}

func doRequest(t *testing.T, server *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz: got status %d", rec.Code)
	}
}

func TestListPropertiesEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/properties", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}

	var properties []PropertyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &properties); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(properties) != 5 {
		t.Fatalf("expected 5 seeded properties, got %d", len(properties))
	}
	for _, p := range properties {
		if p.ID == "" {
			t.Fatalf("property %q returned without id", p.Title)
		}
	}
}

func TestGetPropertyUnknownID(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/properties/does-not-exist", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d, body %s", rec.Code, rec.Body.String())
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] == "" {
		t.Fatalf("404 body must carry an error message, got %s", rec.Body.String())
	}
}

func TestSearchPropertiesEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/properties/search?location=abuja", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}

	var properties []PropertyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &properties); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(properties) != 1 || properties[0].Title != "Premium Office Complex" {
		t.Fatalf("search location=abuja: got %+v", properties)
	}

	// Диапазон цен включительный и комбинируется с другими критериями по И
	rec = doRequest(t, server, http.MethodGet,
		"/api/v1/properties/search?propertyType=residential&minPrice=75000000&maxPrice=100000000", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &properties); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	titles := make([]string, len(properties))
	for i, p := range properties {
		titles[i] = p.Title
	}
	if len(titles) != 2 || titles[0] != "Gated Estate Development" || titles[1] != "Modern Apartment Complex" {
		t.Fatalf("residential 75M-100M: got %v", titles)
	}
}

func TestFeaturedPropertiesEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/properties/featured", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}

	var properties []PropertyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &properties); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(properties) != 3 {
		t.Fatalf("expected 3 featured seeded properties, got %d", len(properties))
	}
	for _, p := range properties {
		if !p.Featured {
			t.Fatalf("non-featured property %q in featured listing", p.Title)
		}
	}
}

func TestCreatePropertyEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	body := `{
		"title": "Smart Duplex",
		"description": "Automated four bedroom duplex",
		"price": 98000000,
		"location": "Gwarinpa, Abuja",
		"propertyType": "residential",
		"bedrooms": 4,
		"bathrooms": 5
	}`
	rec := doRequest(t, server, http.MethodPost, "/api/v1/properties", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body %s", rec.Code, rec.Body.String())
	}

	var created PropertyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" || created.Title != "Smart Duplex" {
		t.Fatalf("unexpected created property: %+v", created)
	}
	if !created.Available {
		t.Fatalf("available must default to true")
	}

	// Созданный объект сразу доступен по id
	rec = doRequest(t, server, http.MethodGet, "/api/v1/properties/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("created property not retrievable: %d", rec.Code)
	}
}

func TestCreatePropertyValidation(t *testing.T) {
	server, repo := newTestServer(t)

	before, err := repo.ListProperties(context.Background())
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			"missing price",
			`{"title": "No Price", "description": "d", "location": "Lagos", "propertyType": "land"}`,
			"price",
		},
		{
			"unknown property type",
			`{"title": "Odd", "description": "d", "price": 1, "location": "Lagos", "propertyType": "castle"}`,
			"propertyType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, server, http.MethodPost, "/api/v1/properties", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d, body %s", rec.Code, rec.Body.String())
			}

			var payload struct {
				Error   string            `json:"error"`
				Details map[string]string `json:"details"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if _, ok := payload.Details[tt.wantField]; !ok {
				t.Fatalf("details must name field %q, got %v", tt.wantField, payload.Details)
			}
		})
	}

	after, err := repo.ListProperties(context.Background())
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("rejected payloads must not create records: %d -> %d", len(before), len(after))
	}
}

func TestCreateInquiryEndpoint(t *testing.T) {
	server, repo := newTestServer(t)

	body := `{
		"firstName": "Ada",
		"lastName": "Obi",
		"email": "ada@example.com",
		"phone": "+2348012345678",
		"interest": "Buying",
		"message": "Interested in the waterfront villa"
	}`
	rec := doRequest(t, server, http.MethodPost, "/api/v1/inquiries", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body %s", rec.Code, rec.Body.String())
	}

	var created InquiryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" || created.FirstName != "Ada" {
		t.Fatalf("unexpected created inquiry: %+v", created)
	}

	inquiries, err := repo.ListInquiries(context.Background())
	if err != nil {
		t.Fatalf("ListInquiries: %v", err)
	}
	if len(inquiries) != 1 {
		t.Fatalf("expected 1 stored inquiry, got %d", len(inquiries))
	}
}

func TestCreateInquiryMissingEmail(t *testing.T) {
	server, repo := newTestServer(t)

	body := `{"firstName": "Ada", "phone": "+2348012345678"}`
	rec := doRequest(t, server, http.MethodPost, "/api/v1/inquiries", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d, body %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := payload.Details["email"]; !ok {
		t.Fatalf("details must name the email field, got %v", payload.Details)
	}

	// Отклоненная заявка не должна попасть в хранилище
	inquiries, err := repo.ListInquiries(context.Background())
	if err != nil {
		t.Fatalf("ListInquiries: %v", err)
	}
	if len(inquiries) != 0 {
		t.Fatalf("rejected inquiry must not be stored, got %d records", len(inquiries))
	}
}

func TestCreateInquiryMalformedJSON(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/v1/inquiries", `{"firstName":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestTeamEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/team", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}

	var members []TeamMemberResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &members); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(members) != 4 {
		t.Fatalf("expected 4 seeded team members, got %d", len(members))
	}
	for i := 1; i < len(members); i++ {
		if members[i-1].Order > members[i].Order {
			t.Fatalf("team members must be sorted by order, got %+v", members)
		}
	}
}

func TestTestimonialsEndpoints(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/testimonials", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}
	var testimonials []TestimonialResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &testimonials); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(testimonials) != 3 {
		t.Fatalf("expected 3 seeded testimonials, got %d", len(testimonials))
	}

	rec = doRequest(t, server, http.MethodGet, "/api/v1/testimonials/featured", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &testimonials); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, item := range testimonials {
		if !item.Featured {
			t.Fatalf("non-featured testimonial in featured listing: %+v", item)
		}
	}
}

func TestCreateTestimonialInvalidRating(t *testing.T) {
	server, _ := newTestServer(t)

	body := `{"name": "N", "role": "Client", "content": "Great", "image": "n.jpg", "rating": 9}`
	rec := doRequest(t, server, http.MethodPost, "/api/v1/testimonials", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for rating out of range, got %d, body %s", rec.Code, rec.Body.String())
	}
}

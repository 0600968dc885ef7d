package contracts

import (
	"errors"
	"testing"
)

func TestGenerateKeyFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"schemas/payloads/inquiry-create/v1.json", "InquiryCreate/1.0.0"},
		{"schemas/payloads/property-create/v1.json", "PropertyCreate/1.0.0"},
		{"schemas/payloads/team-member-create/v1.json", "TeamMemberCreate/1.0.0"},
		{"schemas/payloads/bad-path.json", ""},
	}
	for _, tt := range tests {
		if got := generateKeyFromPath(tt.path); got != tt.want {
			t.Fatalf("generateKeyFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestValidatePayloadAccepts(t *testing.T) {
	body := []byte(`{"firstName": "Ada", "email": "ada@example.com", "phone": "+2348012345678"}`)
	if err := ValidatePayload("InquiryCreate", "1.0.0", body); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestValidatePayloadMissingFields(t *testing.T) {
	body := []byte(`{"firstName": "Ada"}`)
	err := ValidatePayload("InquiryCreate", "1.0.0", body)
	if err == nil {
		t.Fatalf("payload without email and phone must be rejected")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	for _, field := range []string{"email", "phone"} {
		if _, ok := validationErr.Fields[field]; !ok {
			t.Fatalf("missing field %q must be reported, got %v", field, validationErr.Fields)
		}
	}
}

func TestValidatePayloadFieldViolation(t *testing.T) {
	body := []byte(`{"title": "T", "description": "d", "price": -5, "location": "Lagos", "propertyType": "land"}`)
	err := ValidatePayload("PropertyCreate", "1.0.0", body)
	if err == nil {
		t.Fatalf("negative price must be rejected")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if _, ok := validationErr.Fields["price"]; !ok {
		t.Fatalf("violation must be attributed to price, got %v", validationErr.Fields)
	}
}

func TestValidatePayloadUnknownSchema(t *testing.T) {
	err := ValidatePayload("Nope", "1.0.0", []byte(`{}`))
	if err == nil {
		t.Fatalf("unknown schema must be an error")
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		t.Fatalf("unknown schema must not be a field validation error")
	}
}

func TestValidatePayloadMalformedJSON(t *testing.T) {
	if err := ValidatePayload("InquiryCreate", "1.0.0", []byte(`{"firstName":`)); err == nil {
		t.Fatalf("malformed JSON must be rejected")
	}
}

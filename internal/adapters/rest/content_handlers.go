package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"
)

// ContentHandler отвечает за контентные разделы сайта: команда и отзывы.
type ContentHandler struct {
	getTeamMembersUC          usecases_port.GetTeamMembersUseCase
	createTeamMemberUC        usecases_port.CreateTeamMemberUseCase
	getTestimonialsUC         usecases_port.GetTestimonialsUseCase
	getFeaturedTestimonialsUC usecases_port.GetFeaturedTestimonialsUseCase
	createTestimonialUC       usecases_port.CreateTestimonialUseCase
}

func NewContentHandler(getTeamMembersUC usecases_port.GetTeamMembersUseCase,
	createTeamMemberUC usecases_port.CreateTeamMemberUseCase,
	getTestimonialsUC usecases_port.GetTestimonialsUseCase,
	getFeaturedTestimonialsUC usecases_port.GetFeaturedTestimonialsUseCase,
	createTestimonialUC usecases_port.CreateTestimonialUseCase) *ContentHandler {
	return &ContentHandler{
		getTeamMembersUC:          getTeamMembersUC,
		createTeamMemberUC:        createTeamMemberUC,
		getTestimonialsUC:         getTestimonialsUC,
		getFeaturedTestimonialsUC: getFeaturedTestimonialsUC,
		createTestimonialUC:       createTestimonialUC,
	}
}

// ListTeamMembers обрабатывает GET /api/v1/team
func (h *ContentHandler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "ListTeamMembers"})
	handlerLogger.Debug("Processing request to list team members", nil)

	members, err := h.getTeamMembersUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch team members")
		return
	}

	response := make([]TeamMemberResponse, len(members))
	for i, m := range members {
		response[i] = toTeamMemberResponse(m)
	}

	handlerLogger.Info("Successfully listed team members", port.Fields{"total": len(members)})
	RespondWithJSON(w, http.StatusOK, response)
}

// CreateTeamMember обрабатывает POST /api/v1/team
func (h *ContentHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "CreateTeamMember"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		handlerLogger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := contracts.ValidatePayload("TeamMemberCreate", "1.0.0", body); err != nil {
		var validationErr *contracts.ValidationError
		if errors.As(err, &validationErr) {
			handlerLogger.Warn("Team member payload failed validation", port.Fields{"details": validationErr.Fields})
			WriteJSONValidationError(w, "Invalid team member data", validationErr.Fields)
			return
		}
		handlerLogger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req CreateTeamMemberRequest
	if err := json.Unmarshal(body, &req); err != nil {
		handlerLogger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := domain.NewTeamMember{
		Name:     req.Name,
		Role:     req.Role,
		Image:    req.Image,
		Bio:      req.Bio,
		LinkedIn: req.LinkedIn,
		Twitter:  req.Twitter,
		Order:    req.Order,
	}

	member, err := h.createTeamMemberUC.Execute(r.Context(), input)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create team member")
		return
	}

	handlerLogger.Info("Successfully created team member", port.Fields{"team_member_id": member.ID})
	RespondWithJSON(w, http.StatusCreated, toTeamMemberResponse(*member))
}

// ListTestimonials обрабатывает GET /api/v1/testimonials
func (h *ContentHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "ListTestimonials"})
	handlerLogger.Debug("Processing request to list testimonials", nil)

	testimonials, err := h.getTestimonialsUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch testimonials")
		return
	}

	response := make([]TestimonialResponse, len(testimonials))
	for i, t := range testimonials {
		response[i] = toTestimonialResponse(t)
	}

	handlerLogger.Info("Successfully listed testimonials", port.Fields{"total": len(testimonials)})
	RespondWithJSON(w, http.StatusOK, response)
}

// ListFeaturedTestimonials обрабатывает GET /api/v1/testimonials/featured
func (h *ContentHandler) ListFeaturedTestimonials(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "ListFeaturedTestimonials"})
	handlerLogger.Debug("Processing request to list featured testimonials", nil)

	testimonials, err := h.getFeaturedTestimonialsUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch featured testimonials")
		return
	}

	response := make([]TestimonialResponse, len(testimonials))
	for i, t := range testimonials {
		response[i] = toTestimonialResponse(t)
	}

	handlerLogger.Info("Successfully listed featured testimonials", port.Fields{"total": len(testimonials)})
	RespondWithJSON(w, http.StatusOK, response)
}

// CreateTestimonial обрабатывает POST /api/v1/testimonials
func (h *ContentHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "CreateTestimonial"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		handlerLogger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := contracts.ValidatePayload("TestimonialCreate", "1.0.0", body); err != nil {
		var validationErr *contracts.ValidationError
		if errors.As(err, &validationErr) {
			handlerLogger.Warn("Testimonial payload failed validation", port.Fields{"details": validationErr.Fields})
			WriteJSONValidationError(w, "Invalid testimonial data", validationErr.Fields)
			return
		}
		handlerLogger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req CreateTestimonialRequest
	if err := json.Unmarshal(body, &req); err != nil {
		handlerLogger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := domain.NewTestimonial{
		Name:     req.Name,
		Role:     req.Role,
		Content:  req.Content,
		Image:    req.Image,
		Rating:   req.Rating,
		Featured: req.Featured,
	}

	testimonial, err := h.createTestimonialUC.Execute(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRating) {
			handlerLogger.Warn("Rejected testimonial with invalid rating", nil)
			WriteJSONValidationError(w, "Invalid testimonial data", map[string]string{
				"rating": "must be between 1 and 5",
			})
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create testimonial")
		return
	}

	handlerLogger.Info("Successfully created testimonial", port.Fields{"testimonial_id": testimonial.ID})
	RespondWithJSON(w, http.StatusCreated, toTestimonialResponse(*testimonial))
}

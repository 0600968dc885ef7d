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

type InquiryHandler struct {
	createInquiryUC usecases_port.CreateInquiryUseCase
	getInquiriesUC  usecases_port.GetInquiriesUseCase
}

func NewInquiryHandler(createInquiryUC usecases_port.CreateInquiryUseCase,
	getInquiriesUC usecases_port.GetInquiriesUseCase) *InquiryHandler {
	return &InquiryHandler{
		createInquiryUC: createInquiryUC,
		getInquiriesUC:  getInquiriesUC,
	}
}

// CreateInquiry обрабатывает POST /api/v1/inquiries.
// Уведомление по заявке отправляется асинхронно внутри use case и
// на код ответа не влияет.
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "CreateInquiry"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		handlerLogger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := contracts.ValidatePayload("InquiryCreate", "1.0.0", body); err != nil {
		var validationErr *contracts.ValidationError
		if errors.As(err, &validationErr) {
			handlerLogger.Warn("Inquiry payload failed validation", port.Fields{"details": validationErr.Fields})
			WriteJSONValidationError(w, "Invalid inquiry data", validationErr.Fields)
			return
		}
		handlerLogger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req CreateInquiryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		handlerLogger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := domain.NewInquiry{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Budget:     req.Budget,
		Interest:   req.Interest,
		Message:    req.Message,
		PropertyID: req.PropertyID,
	}

	inquiry, err := h.createInquiryUC.Execute(r.Context(), input)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create inquiry")
		return
	}

	handlerLogger.Info("Successfully created inquiry", port.Fields{"inquiry_id": inquiry.ID})
	RespondWithJSON(w, http.StatusCreated, toInquiryResponse(*inquiry))
}

// ListInquiries обрабатывает GET /api/v1/inquiries
func (h *InquiryHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "ListInquiries"})
	handlerLogger.Debug("Processing request to list inquiries", nil)

	inquiries, err := h.getInquiriesUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch inquiries")
		return
	}

	response := make([]InquiryResponse, len(inquiries))
	for i, inq := range inquiries {
		response[i] = toInquiryResponse(inq)
	}

	handlerLogger.Info("Successfully listed inquiries", port.Fields{"total": len(inquiries)})
	RespondWithJSON(w, http.StatusOK, response)
}

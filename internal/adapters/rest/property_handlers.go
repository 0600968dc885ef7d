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

	"github.com/go-chi/chi/v5"
)

type PropertyHandler struct {
	getPropertiesUC         usecases_port.GetPropertiesUseCase
	getFeaturedPropertiesUC usecases_port.GetFeaturedPropertiesUseCase
	searchPropertiesUC      usecases_port.SearchPropertiesUseCase
	getPropertyDetailsUC    usecases_port.GetPropertyDetailsUseCase
	createPropertyUC        usecases_port.CreatePropertyUseCase
}

func NewPropertyHandler(getPropertiesUC usecases_port.GetPropertiesUseCase,
	getFeaturedPropertiesUC usecases_port.GetFeaturedPropertiesUseCase,
	searchPropertiesUC usecases_port.SearchPropertiesUseCase,
	getPropertyDetailsUC usecases_port.GetPropertyDetailsUseCase,
	createPropertyUC usecases_port.CreatePropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		getPropertiesUC:         getPropertiesUC,
		getFeaturedPropertiesUC: getFeaturedPropertiesUC,
		searchPropertiesUC:      searchPropertiesUC,
		getPropertyDetailsUC:    getPropertyDetailsUC,
		createPropertyUC:        createPropertyUC,
	}
}

// ListProperties обрабатывает GET /api/v1/properties
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "ListProperties"})
	handlerLogger.Debug("Processing request to list properties", nil)

	properties, err := h.getPropertiesUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch properties")
		return
	}

	handlerLogger.Info("Successfully listed properties", port.Fields{"total": len(properties)})
	RespondWithJSON(w, http.StatusOK, toPropertyResponseList(properties))
}

// ListFeaturedProperties обрабатывает GET /api/v1/properties/featured
func (h *PropertyHandler) ListFeaturedProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "ListFeaturedProperties"})
	handlerLogger.Debug("Processing request to list featured properties", nil)

	properties, err := h.getFeaturedPropertiesUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch featured properties")
		return
	}

	handlerLogger.Info("Successfully listed featured properties", port.Fields{"total": len(properties)})
	RespondWithJSON(w, http.StatusOK, toPropertyResponseList(properties))
}

// SearchProperties обрабатывает GET /api/v1/properties/search
func (h *PropertyHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	// Собираем фильтры: отсутствующий параметр остается nil и не
	// участвует в отборе
	query := r.URL.Query()
	filters := domain.PropertyFilters{
		PropertyType: parseString(query, "propertyType"),
		Location:     parseString(query, "location"),
		MinPrice:     parseInt64(query, "minPrice"),
		MaxPrice:     parseInt64(query, "maxPrice"),
		Bedrooms:     parseInt(query, "bedrooms"),
		Bathrooms:    parseInt(query, "bathrooms"),
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "SearchProperties",
		"filters": filters,
	})
	handlerLogger.Debug("Processing request to search properties", nil)

	properties, err := h.searchPropertiesUC.Execute(r.Context(), filters)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search properties")
		return
	}

	handlerLogger.Info("Successfully searched properties", port.Fields{"total_found": len(properties)})
	RespondWithJSON(w, http.StatusOK, toPropertyResponseList(properties))
}

// GetPropertyDetails обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID := chi.URLParam(r, "propertyID")
	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "GetPropertyDetails",
		"property_id": propertyID,
	})
	handlerLogger.Debug("Processing request to find property details", nil)

	property, err := h.getPropertyDetailsUC.Execute(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			handlerLogger.Warn("Property not found", nil)
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch property")
		return
	}

	handlerLogger.Info("Successfully found property details", nil)
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

// CreateProperty обрабатывает POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "CreateProperty"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		handlerLogger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := contracts.ValidatePayload("PropertyCreate", "1.0.0", body); err != nil {
		var validationErr *contracts.ValidationError
		if errors.As(err, &validationErr) {
			handlerLogger.Warn("Property payload failed validation", port.Fields{"details": validationErr.Fields})
			WriteJSONValidationError(w, "Invalid property data", validationErr.Fields)
			return
		}
		handlerLogger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req CreatePropertyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		handlerLogger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := domain.NewProperty{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Location:     req.Location,
		PropertyType: req.PropertyType,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Area:         req.Area,
		Amenities:    req.Amenities,
		Images:       req.Images,
		Featured:     req.Featured,
		Available:    req.Available,
	}

	property, err := h.createPropertyUC.Execute(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPropertyType) {
			handlerLogger.Warn("Rejected property with unknown type", port.Fields{"property_type": req.PropertyType})
			WriteJSONValidationError(w, "Invalid property data", map[string]string{
				"propertyType": "unknown property type",
			})
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}

	handlerLogger.Info("Successfully created property", port.Fields{"property_id": property.ID})
	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(*property))
}

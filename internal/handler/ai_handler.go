package handler

import (
	"carmarket/internal/models"
	"carmarket/internal/service"
	"carmarket/pkg/response"

	"github.com/gin-gonic/gin"
)

// AIHandler handles HTTP requests for generated listing content.
type AIHandler struct {
	service service.ContentServicer
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(service service.ContentServicer) *AIHandler {
	return &AIHandler{service: service}
}

// ListingDetails godoc
// @Summary      Draft listing copy
// @Description  Generate a title, description and key features from vehicle details and photos
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request  body      models.ListingDetailsRequest  true  "Vehicle details"
// @Success      200      {object}  models.ListingDetails
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      502      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /ai/listing-details [post]
func (h *AIHandler) ListingDetails(c *gin.Context) {
	var req models.ListingDetailsRequest
	if !bindJSON(c, &req) {
		return
	}

	details, err := h.service.ListingDetails(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, details)
}

// AssessCondition godoc
// @Summary      Assess condition
// @Description  Assess the visible condition of a vehicle from photos
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request  body      models.ConditionRequest  true  "Photos and notes"
// @Success      200      {object}  models.ConditionReport
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      502      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /ai/condition [post]
func (h *AIHandler) AssessCondition(c *gin.Context) {
	var req models.ConditionRequest
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.service.AssessCondition(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, report)
}

// SuggestPrice godoc
// @Summary      Suggest a price
// @Description  Estimate an asking price range for a vehicle
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request  body      models.PriceSuggestionRequest  true  "Vehicle details"
// @Success      200      {object}  models.PriceSuggestion
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      502      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /ai/price-suggestion [post]
func (h *AIHandler) SuggestPrice(c *gin.Context) {
	var req models.PriceSuggestionRequest
	if !bindJSON(c, &req) {
		return
	}

	price, err := h.service.SuggestPrice(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, price)
}

// SearchFilters godoc
// @Summary      Parse a search query
// @Description  Extract structured listing filters from free text
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request  body      models.SearchFiltersRequest  true  "Query"
// @Success      200      {object}  models.SearchFilters
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      502      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /ai/search-filters [post]
func (h *AIHandler) SearchFilters(c *gin.Context) {
	var req models.SearchFiltersRequest
	if !bindJSON(c, &req) {
		return
	}

	filters, err := h.service.SearchFilters(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, filters)
}

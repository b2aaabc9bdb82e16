package handler

import (
	"carmarket/internal/middleware"
	"carmarket/internal/models"
	"carmarket/internal/service"
	"carmarket/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListingHandler handles HTTP requests for listings.
type ListingHandler struct {
	service service.ListingServicer
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(service service.ListingServicer) *ListingHandler {
	return &ListingHandler{service: service}
}

// CreateListing godoc
// @Summary      Create a listing
// @Description  Publish a vehicle for sale. Unknown top-level fields are kept on the listing.
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateListingRequest  true  "Listing fields"
// @Success      200      {object}  models.CreateListingResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /listings [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var req models.CreateListingRequest
	if !bindJSON(c, &req) {
		return
	}

	listing, err := h.service.Create(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, models.CreateListingResponse{ListingID: listing.ID.Hex()})
}

// ListListings godoc
// @Summary      List listings
// @Description  Return every listing, newest first, each with its seller
// @Tags         listings
// @Produce      json
// @Success      200  {object}  models.ListingsResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /listings [get]
func (h *ListingHandler) ListListings(c *gin.Context) {
	listings, err := h.service.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, models.ListingsResponse{Listings: listings})
}

// UpdateListing godoc
// @Summary      Update a listing
// @Description  Merge fields into a listing the caller owns. id, userId and createdAt cannot change.
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        request  body      models.UpdateListingRequest  true  "Listing id and fields to change"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /listings [patch]
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	var req models.UpdateListingRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), middleware.GetUserID(c), req.ListingID, req.Update); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Message(c, "Listing updated successfully")
}

// DeleteListing godoc
// @Summary      Delete a listing
// @Description  Remove a listing the caller owns
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        request  body      models.DeleteListingRequest  true  "Listing id"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /listings [delete]
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	var req models.DeleteListingRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.GetUserID(c), req.ListingID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Message(c, "Listing deleted successfully")
}

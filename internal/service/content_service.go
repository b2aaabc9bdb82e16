package service

import (
	"context"
	"fmt"
	"log"

	"carmarket/internal/ai"
	apperrors "carmarket/internal/errors"
	"carmarket/internal/models"
)

// ContentService generates listing content through an ai.Generator.
type ContentService struct {
	generator ai.Generator
}

// NewContentService creates a new ContentService.
func NewContentService(generator ai.Generator) *ContentService {
	return &ContentService{generator: generator}
}

// ListingDetails drafts a title, description and key features.
func (s *ContentService) ListingDetails(ctx context.Context, req *models.ListingDetailsRequest) (*models.ListingDetails, error) {
	photos, err := ai.ParseDataURIs(req.PhotoDataURIs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidBody, err)
	}

	details, err := s.generator.ListingDetails(ctx, req, photos)
	if err != nil {
		return nil, unavailable("listing details", err)
	}
	if details.KeyFeatures == nil {
		details.KeyFeatures = []string{}
	}
	return details, nil
}

// AssessCondition reports the visible condition of the vehicle in the photos.
func (s *ContentService) AssessCondition(ctx context.Context, req *models.ConditionRequest) (*models.ConditionReport, error) {
	if len(req.PhotoDataURIs) == 0 {
		return nil, apperrors.ErrMissingFields
	}

	photos, err := ai.ParseDataURIs(req.PhotoDataURIs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidBody, err)
	}

	report, err := s.generator.AssessCondition(ctx, photos, req.Notes)
	if err != nil {
		return nil, unavailable("condition assessment", err)
	}
	if report.Issues == nil {
		report.Issues = []string{}
	}
	return report, nil
}

// SuggestPrice estimates an asking price.
func (s *ContentService) SuggestPrice(ctx context.Context, req *models.PriceSuggestionRequest) (*models.PriceSuggestion, error) {
	price, err := s.generator.SuggestPrice(ctx, req)
	if err != nil {
		return nil, unavailable("price suggestion", err)
	}
	if price.Currency == "" {
		price.Currency = ai.DefaultCurrency
	}
	return price, nil
}

// SearchFilters extracts structured filters from a free-text query.
func (s *ContentService) SearchFilters(ctx context.Context, req *models.SearchFiltersRequest) (*models.SearchFilters, error) {
	filters, err := s.generator.SearchFilters(ctx, req.Query)
	if err != nil {
		return nil, unavailable("search filters", err)
	}
	if filters.Keywords == nil {
		filters.Keywords = []string{}
	}
	return filters, nil
}

// unavailable logs the generator failure and hides it behind ErrAIUnavailable.
func unavailable(op string, err error) error {
	log.Printf("ai %s failed: %v", op, err)
	return fmt.Errorf("%w: %s", apperrors.ErrAIUnavailable, op)
}

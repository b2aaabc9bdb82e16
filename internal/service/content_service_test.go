package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"carmarket/internal/ai"
	aimocks "carmarket/internal/ai/mocks"
	apperrors "carmarket/internal/errors"
	"carmarket/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var jpegDataURI = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8, 0xFF})

func TestContentService_ListingDetails(t *testing.T) {
	req := &models.ListingDetailsRequest{
		Make:          "Honda",
		Model:         "City",
		Year:          2020,
		PhotoDataURIs: []string{jpegDataURI},
	}

	t.Run("decodes photos and returns generated copy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gen := aimocks.NewMockGenerator(ctrl)
		gen.EXPECT().
			ListingDetails(gomock.Any(), req, gomock.Any()).
			DoAndReturn(func(ctx context.Context, r *models.ListingDetailsRequest, photos []ai.Image) (*models.ListingDetails, error) {
				require.Len(t, photos, 1)
				assert.Equal(t, "image/jpeg", photos[0].MIMEType)
				return &models.ListingDetails{Title: "2020 Honda City"}, nil
			})

		svc := NewContentService(gen)

		details, err := svc.ListingDetails(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "2020 Honda City", details.Title)
		assert.NotNil(t, details.KeyFeatures)
	})

	t.Run("malformed photo is an invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewContentService(aimocks.NewMockGenerator(ctrl))
		bad := *req
		bad.PhotoDataURIs = []string{"https://cdn.example.com/1.jpg"}

		_, err := svc.ListingDetails(context.Background(), &bad)

		assert.ErrorIs(t, err, apperrors.ErrInvalidBody)
	})

	t.Run("generator failure is reported as unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gen := aimocks.NewMockGenerator(ctrl)
		gen.EXPECT().ListingDetails(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("quota exceeded"))

		svc := NewContentService(gen)

		_, err := svc.ListingDetails(context.Background(), req)

		assert.ErrorIs(t, err, apperrors.ErrAIUnavailable)
		assert.NotContains(t, err.Error(), "quota")
	})
}

func TestContentService_AssessCondition(t *testing.T) {
	t.Run("passes notes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gen := aimocks.NewMockGenerator(ctrl)
		gen.EXPECT().
			AssessCondition(gomock.Any(), gomock.Len(2), "door dent").
			Return(&models.ConditionReport{OverallCondition: "Fair"}, nil)

		svc := NewContentService(gen)

		report, err := svc.AssessCondition(context.Background(), &models.ConditionRequest{
			PhotoDataURIs: []string{jpegDataURI, jpegDataURI},
			Notes:         "door dent",
		})

		require.NoError(t, err)
		assert.Equal(t, "Fair", report.OverallCondition)
		assert.NotNil(t, report.Issues)
	})

	t.Run("requires photos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewContentService(aimocks.NewMockGenerator(ctrl))

		_, err := svc.AssessCondition(context.Background(), &models.ConditionRequest{})

		assert.ErrorIs(t, err, apperrors.ErrMissingFields)
	})
}

func TestContentService_SuggestPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := aimocks.NewMockGenerator(ctrl)
	gen.EXPECT().SuggestPrice(gomock.Any(), gomock.Any()).Return(&models.PriceSuggestion{SuggestedPrice: 500000}, nil)

	svc := NewContentService(gen)

	price, err := svc.SuggestPrice(context.Background(), &models.PriceSuggestionRequest{Make: "Honda", Model: "City", Year: 2020})

	require.NoError(t, err)
	assert.Equal(t, 500000.0, price.SuggestedPrice)
	assert.Equal(t, ai.DefaultCurrency, price.Currency)
}

func TestContentService_SearchFilters(t *testing.T) {
	t.Run("keywords are never null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gen := aimocks.NewMockGenerator(ctrl)
		gen.EXPECT().SearchFilters(gomock.Any(), "diesel suv").Return(&models.SearchFilters{FuelType: "Diesel"}, nil)

		svc := NewContentService(gen)

		filters, err := svc.SearchFilters(context.Background(), &models.SearchFiltersRequest{Query: "diesel suv"})

		require.NoError(t, err)
		assert.Equal(t, "Diesel", filters.FuelType)
		assert.NotNil(t, filters.Keywords)
	})

	t.Run("works end to end with the offline generator", func(t *testing.T) {
		svc := NewContentService(ai.NewOffline())

		filters, err := svc.SearchFilters(context.Background(), &models.SearchFiltersRequest{Query: "manual diesel"})

		require.NoError(t, err)
		assert.Equal(t, "Diesel", filters.FuelType)
		assert.Equal(t, "Manual", filters.Transmission)
	})
}

package ai

import (
	"context"
	"testing"
	"time"

	"carmarket/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOffline() *Offline {
	return &Offline{now: func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }}
}

func intPtr(i int) *int { return &i }

func TestOffline_ListingDetails(t *testing.T) {
	o := newTestOffline()

	details, err := o.ListingDetails(context.Background(), &models.ListingDetailsRequest{
		Make:    "Honda",
		Model:   "City",
		Year:    2020,
		Mileage: intPtr(42000),
		Notes:   "single owner, service records available",
	}, []Image{{MIMEType: "image/jpeg", Data: []byte{1}}})

	require.NoError(t, err)
	assert.Equal(t, "2020 Honda City", details.Title)
	assert.Contains(t, details.Description, "42,000 km")
	assert.Contains(t, details.Description, "single owner")
	assert.Equal(t, []string{"Low mileage", "Single owner", "Service records available", "1 photos"}, details.KeyFeatures)
}

func TestOffline_AssessCondition(t *testing.T) {
	o := newTestOffline()

	tests := []struct {
		notes       string
		wantOverall string
		wantIssues  int
	}{
		{"", "Good", 0},
		{"small scratch on bumper", "Fair", 1},
		{"dent, rust near wheel arch, cracked windshield", "Poor", 3},
	}

	for _, tt := range tests {
		t.Run(tt.wantOverall, func(t *testing.T) {
			report, err := o.AssessCondition(context.Background(), []Image{{}, {}}, tt.notes)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOverall, report.OverallCondition)
			assert.Len(t, report.Issues, tt.wantIssues)
			assert.Contains(t, report.Summary, "2 photo(s)")
		})
	}
}

func TestOffline_SuggestPrice(t *testing.T) {
	o := newTestOffline()

	t.Run("depreciates by age and mileage", func(t *testing.T) {
		price, err := o.SuggestPrice(context.Background(), &models.PriceSuggestionRequest{
			Make: "Honda", Model: "City", Year: 2020, Mileage: intPtr(40000), Condition: "Good",
		})

		require.NoError(t, err)
		assert.Equal(t, 510000.0, price.SuggestedPrice)
		assert.Equal(t, 469000.0, price.MinPrice)
		assert.Equal(t, 551000.0, price.MaxPrice)
		assert.Equal(t, "INR", price.Currency)
		assert.Contains(t, price.Reasoning, "good condition")
	})

	t.Run("poor condition lowers price", func(t *testing.T) {
		good, _ := o.SuggestPrice(context.Background(), &models.PriceSuggestionRequest{Year: 2020, Condition: "Good"})
		poor, _ := o.SuggestPrice(context.Background(), &models.PriceSuggestionRequest{Year: 2020, Condition: "Poor"})

		assert.Less(t, poor.SuggestedPrice, good.SuggestedPrice)
	})

	t.Run("very old cars keep a floor value", func(t *testing.T) {
		price, _ := o.SuggestPrice(context.Background(), &models.PriceSuggestionRequest{Year: 1990})

		assert.Equal(t, 150000.0, price.SuggestedPrice)
	})
}

func TestOffline_SearchFilters(t *testing.T) {
	o := newTestOffline()

	t.Run("extracts price, year, fuel and transmission", func(t *testing.T) {
		f, err := o.SearchFilters(context.Background(), "Automatic petrol SUV under 10 lakh after 2018")

		require.NoError(t, err)
		require.NotNil(t, f.MaxPrice)
		assert.Equal(t, 1_000_000.0, *f.MaxPrice)
		require.NotNil(t, f.MinYear)
		assert.Equal(t, 2019, *f.MinYear)
		assert.Nil(t, f.MaxYear)
		assert.Equal(t, "Petrol", f.FuelType)
		assert.Equal(t, "Automatic", f.Transmission)
		assert.Equal(t, []string{"suv"}, f.Keywords)
	})

	t.Run("detects make and plain price", func(t *testing.T) {
		f, err := o.SearchFilters(context.Background(), "honda city below 800000 before 2021")

		require.NoError(t, err)
		assert.Equal(t, "Honda", f.Make)
		assert.Equal(t, 800000.0, *f.MaxPrice)
		assert.Equal(t, 2020, *f.MaxYear)
		assert.Equal(t, []string{"city"}, f.Keywords)
	})

	t.Run("empty query gives empty keywords", func(t *testing.T) {
		f, err := o.SearchFilters(context.Background(), "")

		require.NoError(t, err)
		assert.NotNil(t, f.Keywords)
		assert.Empty(t, f.Keywords)
	})
}

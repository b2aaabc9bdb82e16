package ai

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"carmarket/internal/models"
)

// Offline is a deterministic rule-based Generator used when no model API key
// is configured. Output is plausible but not model quality.
type Offline struct {
	now func() time.Time
}

// NewOffline creates an Offline generator.
func NewOffline() *Offline {
	return &Offline{now: time.Now}
}

var _ Generator = (*Offline)(nil)
var _ Generator = (*Gemini)(nil)

// Reference price of a new mid-segment car, in DefaultCurrency.
const offlineBasePrice = 1_000_000

func (o *Offline) ListingDetails(_ context.Context, req *models.ListingDetailsRequest, photos []Image) (*models.ListingDetails, error) {
	title := fmt.Sprintf("%d %s %s", req.Year, req.Make, req.Model)
	features := []string{}

	var desc strings.Builder
	fmt.Fprintf(&desc, "%s available for sale", title)
	if req.Mileage != nil {
		fmt.Fprintf(&desc, " with %s km on the odometer", groupThousands(*req.Mileage))
		if perYear := *req.Mileage / o.ageYears(req.Year); perYear < 10_000 {
			features = append(features, "Low mileage")
		}
	}
	desc.WriteString(".")
	if req.Notes != "" {
		desc.WriteString(" " + strings.TrimSpace(req.Notes))
		if !strings.HasSuffix(desc.String(), ".") {
			desc.WriteString(".")
		}
		for _, note := range strings.Split(req.Notes, ",") {
			note = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(note), "."))
			if note != "" && len(features) < 5 {
				features = append(features, capitalize(note))
			}
		}
	}
	if len(photos) > 0 {
		fmt.Fprintf(&desc, " %d photos attached.", len(photos))
		features = append(features, fmt.Sprintf("%d photos", len(photos)))
	}

	return &models.ListingDetails{
		Title:       title,
		Description: desc.String(),
		KeyFeatures: features,
	}, nil
}

var issueWords = []string{"scratch", "dent", "rust", "crack", "leak", "tear", "faded", "broken"}

func (o *Offline) AssessCondition(_ context.Context, photos []Image, notes string) (*models.ConditionReport, error) {
	lower := strings.ToLower(notes)
	issues := []string{}
	for _, w := range issueWords {
		if strings.Contains(lower, w) {
			issues = append(issues, fmt.Sprintf("Reported %s", w))
		}
	}

	overall := "Good"
	switch {
	case len(issues) >= 3:
		overall = "Poor"
	case len(issues) > 0:
		overall = "Fair"
	}

	return &models.ConditionReport{
		OverallCondition: overall,
		Summary: fmt.Sprintf("Rule-based assessment from %d photo(s) and seller notes: %d issue(s) noted.",
			len(photos), len(issues)),
		Issues: issues,
	}, nil
}

var conditionFactor = map[string]float64{
	"excellent": 1.05,
	"good":      1.0,
	"fair":      0.9,
	"poor":      0.8,
}

func (o *Offline) SuggestPrice(_ context.Context, req *models.PriceSuggestionRequest) (*models.PriceSuggestion, error) {
	age := o.ageYears(req.Year)

	// 10% per year, floored at 15% of new
	factor := math.Max(0.15, math.Pow(0.9, float64(age)))

	if req.Mileage != nil {
		// 1% per 10,000 km, capped at 30%
		factor *= 1 - math.Min(0.30, float64(*req.Mileage)/1_000_000)
	}
	if f, ok := conditionFactor[strings.ToLower(req.Condition)]; ok {
		factor *= f
	}

	suggested := roundTo(offlineBasePrice*factor, 1000)
	return &models.PriceSuggestion{
		SuggestedPrice: suggested,
		MinPrice:       roundTo(suggested*0.92, 1000),
		MaxPrice:       roundTo(suggested*1.08, 1000),
		Currency:       DefaultCurrency,
		Reasoning: fmt.Sprintf("Estimated from a %d-year age depreciation curve%s.",
			age, conditionNote(req.Condition)),
	}, nil
}

var (
	knownMakes = []string{
		"maruti", "suzuki", "hyundai", "honda", "toyota", "tata", "mahindra", "kia", "ford",
		"volkswagen", "skoda", "renault", "nissan", "mg", "bmw", "mercedes", "audi", "jeep",
	}
	fuelTypes = map[string]string{
		"petrol": "Petrol", "diesel": "Diesel", "cng": "CNG",
		"electric": "Electric", "ev": "Electric", "hybrid": "Hybrid",
	}
	transmissions = map[string]string{
		"automatic": "Automatic", "auto": "Automatic", "amt": "Automatic", "cvt": "Automatic",
		"manual": "Manual",
	}
	stopWords = map[string]bool{
		"a": true, "an": true, "the": true, "car": true, "cars": true, "for": true, "with": true,
		"in": true, "and": true, "or": true, "i": true, "want": true, "need": true, "looking": true,
		"show": true, "me": true, "model": true, "year": true, "price": true, "budget": true,
		"rs": true, "inr": true,
	}

	priceRe = regexp.MustCompile(`(?:under|below|less than|upto|up to|within|max)\s*(?:rs\.?|₹|inr)?\s*([\d.,]+)\s*(lakhs?|lacs?|l|crores?|cr|k)?\b`)
	yearRe  = regexp.MustCompile(`(after|from|since|newer than|before|older than|till|until)?\s*\b((?:19|20)\d{2})\b`)
	wordRe  = regexp.MustCompile(`[a-z0-9]+`)
)

func (o *Offline) SearchFilters(_ context.Context, query string) (*models.SearchFilters, error) {
	q := strings.ToLower(query)
	f := &models.SearchFilters{Keywords: []string{}}

	if m := priceRe.FindStringSubmatch(q); m != nil {
		if amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			amount *= priceUnit(m[2])
			f.MaxPrice = &amount
		}
		q = strings.Replace(q, m[0], " ", 1)
	}

	for _, m := range yearRe.FindAllStringSubmatch(q, -1) {
		year, _ := strconv.Atoi(m[2])
		switch m[1] {
		case "after", "newer than":
			year++
			f.MinYear = &year
		case "from", "since", "":
			f.MinYear = &year
		case "before", "older than":
			year--
			f.MaxYear = &year
		case "till", "until":
			f.MaxYear = &year
		}
		q = strings.Replace(q, m[0], " ", 1)
	}

	for _, word := range wordRe.FindAllString(q, -1) {
		switch {
		case f.Make == "" && slices.Contains(knownMakes, word):
			f.Make = capitalize(word)
		case fuelTypes[word] != "" && f.FuelType == "":
			f.FuelType = fuelTypes[word]
		case transmissions[word] != "" && f.Transmission == "":
			f.Transmission = transmissions[word]
		case stopWords[word], priceWords[word]:
		default:
			f.Keywords = append(f.Keywords, word)
		}
	}

	return f, nil
}

var priceWords = map[string]bool{"under": true, "below": true, "lakh": true, "lakhs": true, "after": true, "before": true}

func (o *Offline) ageYears(year int) int {
	age := o.now().Year() - year
	if age < 1 {
		return 1
	}
	return age
}

func priceUnit(unit string) float64 {
	switch {
	case strings.HasPrefix(unit, "l"):
		return 100_000
	case strings.HasPrefix(unit, "cr"):
		return 10_000_000
	case unit == "k":
		return 1_000
	}
	return 1
}

func conditionNote(condition string) string {
	if condition == "" {
		return ""
	}
	return fmt.Sprintf(", adjusted for %s condition", strings.ToLower(condition))
}

func roundTo(v, step float64) float64 {
	return math.Round(v/step) * step
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}


package ai

import (
	"fmt"
	"strings"

	"carmarket/internal/models"
)

// DefaultCurrency is used for price suggestions.
const DefaultCurrency = "INR"

const systemInstruction = `You help private sellers list used cars on a consumer-to-consumer marketplace in India.
Be factual and concise. Never invent service history, accident history or ownership details that were not given.
Always answer with a single JSON object matching the requested schema and nothing else.`

func vehicleLine(brand, model string, year int, mileage *int) string {
	line := fmt.Sprintf("%d %s %s", year, brand, model)
	if mileage != nil {
		line += fmt.Sprintf(", %d km driven", *mileage)
	}
	return line
}

func listingDetailsPrompt(req *models.ListingDetailsRequest, photos int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a marketplace listing for this car: %s.\n", vehicleLine(req.Make, req.Model, req.Year, req.Mileage))
	if req.Notes != "" {
		fmt.Fprintf(&b, "Seller notes: %s\n", req.Notes)
	}
	if photos > 0 {
		fmt.Fprintf(&b, "%d photos of the car are attached; mention only what is visible.\n", photos)
	}
	b.WriteString(`Respond with JSON: {"title": string (max 80 chars), "description": string (2-4 short paragraphs), "keyFeatures": [string] (3-6 items)}`)
	return b.String()
}

func conditionPrompt(notes string, photos int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Assess the visible condition of the car in the %d attached photos.\n", photos)
	if notes != "" {
		fmt.Fprintf(&b, "Seller notes: %s\n", notes)
	}
	b.WriteString(`Respond with JSON: {"overallCondition": "Excellent" | "Good" | "Fair" | "Poor", "summary": string, "issues": [string]}`)
	return b.String()
}

func pricePrompt(req *models.PriceSuggestionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest a fair asking price in %s for this used car: %s.\n", DefaultCurrency, vehicleLine(req.Make, req.Model, req.Year, req.Mileage))
	if req.Condition != "" {
		fmt.Fprintf(&b, "Condition: %s\n", req.Condition)
	}
	if req.Pincode != "" {
		fmt.Fprintf(&b, "Seller pincode: %s\n", req.Pincode)
	}
	b.WriteString(`Respond with JSON: {"suggestedPrice": number, "minPrice": number, "maxPrice": number, "currency": "INR", "reasoning": string}`)
	return b.String()
}

func searchPrompt(query string) string {
	return fmt.Sprintf(`Turn this used-car search into filters: %q
Respond with JSON: {"make": string, "model": string, "minYear": number, "maxYear": number, "maxPrice": number (INR), "fuelType": string, "transmission": "Automatic" | "Manual", "keywords": [string]}
Omit any filter the query does not mention.`, query)
}

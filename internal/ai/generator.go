// Package ai generates listing content with a language model.
package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"carmarket/internal/models"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks carmarket/internal/ai Generator

// Generator produces structured listing content. Calls are synchronous and
// are not retried.
type Generator interface {
	ListingDetails(ctx context.Context, req *models.ListingDetailsRequest, photos []Image) (*models.ListingDetails, error)
	AssessCondition(ctx context.Context, photos []Image, notes string) (*models.ConditionReport, error)
	SuggestPrice(ctx context.Context, req *models.PriceSuggestionRequest) (*models.PriceSuggestion, error)
	SearchFilters(ctx context.Context, query string) (*models.SearchFilters, error)
}

// Image is a decoded photo sent to the model.
type Image struct {
	MIMEType string
	Data     []byte
}

// Format returns the image subtype, e.g. "jpeg" for image/jpeg.
func (i Image) Format() string {
	_, sub, _ := strings.Cut(i.MIMEType, "/")
	return sub
}

// ErrInvalidDataURI is returned for photos that are not base64 image data URIs.
var ErrInvalidDataURI = errors.New("invalid image data URI")

// ParseDataURI decodes a "data:image/<type>;base64,<payload>" URI.
func ParseDataURI(uri string) (Image, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return Image{}, fmt.Errorf("%w: missing data: scheme", ErrInvalidDataURI)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Image{}, fmt.Errorf("%w: missing payload", ErrInvalidDataURI)
	}

	params := strings.Split(meta, ";")
	mimeType := strings.ToLower(strings.TrimSpace(params[0]))
	if !strings.HasPrefix(mimeType, "image/") {
		return Image{}, fmt.Errorf("%w: %q is not an image type", ErrInvalidDataURI, mimeType)
	}

	isBase64 := false
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			isBase64 = true
		}
	}

	var data []byte
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return Image{}, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return Image{}, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
		}
		data = []byte(unescaped)
	}

	if len(data) == 0 {
		return Image{}, fmt.Errorf("%w: empty payload", ErrInvalidDataURI)
	}

	return Image{MIMEType: mimeType, Data: data}, nil
}

// ParseDataURIs decodes every URI, failing on the first invalid one.
func ParseDataURIs(uris []string) ([]Image, error) {
	images := make([]Image, 0, len(uris))
	for i, uri := range uris {
		img, err := ParseDataURI(uri)
		if err != nil {
			return nil, fmt.Errorf("photo %d: %w", i+1, err)
		}
		images = append(images, img)
	}
	return images, nil
}

package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing status values. Any other string is stored as given.
const (
	ListingStatusActive = "Active"
	ListingStatusSold   = "Sold"
)

// ListingFields are the typed attributes a seller controls.
type ListingFields struct {
	Make      string   `json:"make" bson:"make" binding:"required" example:"Honda"`
	Model     string   `json:"model" bson:"model" binding:"required" example:"City"`
	Year      int      `json:"year" bson:"year" binding:"required" example:"2020"`
	PhotoURLs []string `json:"photoUrls" bson:"photoUrls" binding:"required,min=1,dive,required" example:"https://cdn.example.com/listings/1.jpg"`

	VIN                 string           `json:"vin,omitempty" bson:"vin,omitempty" binding:"omitempty,vin" example:"1HGCM82633A004352"`
	Title               string           `json:"title,omitempty" bson:"title,omitempty" example:"2020 Honda City VX, single owner"`
	Description         string           `json:"description,omitempty" bson:"description,omitempty"`
	KeyFeatures         []string         `json:"keyFeatures,omitempty" bson:"keyFeatures,omitempty"`
	Price               *float64         `json:"price,omitempty" bson:"price,omitempty" example:"850000"`
	SuggestedPrice      *float64         `json:"suggestedPrice,omitempty" bson:"suggestedPrice,omitempty" example:"820000"`
	Mileage             *int             `json:"mileage,omitempty" bson:"mileage,omitempty" example:"42000"`
	FuelType            string           `json:"fuelType,omitempty" bson:"fuelType,omitempty" example:"Petrol"`
	Transmission        string           `json:"transmission,omitempty" bson:"transmission,omitempty" example:"Manual"`
	ConditionAssessment *ConditionReport `json:"conditionAssessment,omitempty" bson:"conditionAssessment,omitempty"`
	MarketAnalysis      string           `json:"marketAnalysis,omitempty" bson:"marketAnalysis,omitempty"`
	Pincode             string           `json:"pincode,omitempty" bson:"pincode,omitempty" binding:"omitempty,pincode" example:"560001"`
	Location            string           `json:"location,omitempty" bson:"location,omitempty" example:"Bengaluru"`
}

// Listing is a vehicle offered for sale.
//
// Top-level keys outside the typed set are kept in Extra: stored inline in
// the document and flattened into the JSON object.
type Listing struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	ListingFields `bson:",inline"`
	Status        string    `json:"status" bson:"status" example:"Active"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T10:00:00Z"`

	Seller *Seller                `json:"seller,omitempty" bson:"-"`
	Extra  map[string]interface{} `json:"-" bson:",inline"`
}

// ServerOwnedListingKeys are set by the server and cannot be written by clients.
var ServerOwnedListingKeys = []string{"_id", "id", "userId", "createdAt", "updatedAt", "status", "seller"}

type listingJSON Listing

var listingKeys = jsonKeys(reflect.TypeOf(Listing{}))

// MarshalJSON flattens Extra into the listing object. Typed fields win on
// key collisions.
func (l Listing) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(listingJSON(l), l.Extra)
}

// UnmarshalJSON decodes the typed fields and collects the remaining keys into Extra.
func (l *Listing) UnmarshalJSON(data []byte) error {
	var typed listingJSON
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}
	extra, err := collectExtra(data, listingKeys)
	if err != nil {
		return err
	}
	*l = Listing(typed)
	l.Extra = extra
	return nil
}

// CreateListingRequest is the body of a listing creation. Server-owned keys
// (id, userId, status, timestamps) are dropped during decoding.
type CreateListingRequest struct {
	ListingFields
	Extra map[string]interface{} `json:"-"`
}

var createListingKeys = func() map[string]struct{} {
	keys := jsonKeys(reflect.TypeOf(ListingFields{}))
	for _, k := range ServerOwnedListingKeys {
		keys[k] = struct{}{}
	}
	return keys
}()

// UnmarshalJSON decodes the typed fields and keeps unknown keys as extras.
func (r *CreateListingRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	typed := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		if err := checkFieldName(k); err != nil {
			return err
		}
		if _, owned := serverOwned[k]; owned {
			continue
		}
		typed[k] = v
	}
	body, err := json.Marshal(typed)
	if err != nil {
		return err
	}

	var fields ListingFields
	if err := json.Unmarshal(body, &fields); err != nil {
		return err
	}
	extra, err := collectExtra(body, createListingKeys)
	if err != nil {
		return err
	}
	r.ListingFields = fields
	r.Extra = extra
	return nil
}

// MarshalJSON flattens Extra into the request object.
func (r CreateListingRequest) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(r.ListingFields, r.Extra)
}

// UpdateListingRequest is the body of a listing update. Update is applied as
// a partial merge.
type UpdateListingRequest struct {
	ListingID string                 `json:"listingId" binding:"required" example:"507f1f77bcf86cd799439011"`
	Update    map[string]interface{} `json:"update" binding:"required" swaggertype:"object"`
}

// DeleteListingRequest is the body of a listing deletion.
type DeleteListingRequest struct {
	ListingID string `json:"listingId" binding:"required" example:"507f1f77bcf86cd799439011"`
}

// CreateListingResponse carries the id of the new listing.
type CreateListingResponse struct {
	ListingID string `json:"listingId" example:"507f1f77bcf86cd799439011"`
}

// ListingsResponse wraps the marketplace listing feed.
type ListingsResponse struct {
	Listings []Listing `json:"listings"`
}

var serverOwned = func() map[string]struct{} {
	m := make(map[string]struct{}, len(ServerOwnedListingKeys))
	for _, k := range ServerOwnedListingKeys {
		m[k] = struct{}{}
	}
	return m
}()

// checkFieldName rejects keys the document store would treat as operators or paths.
func checkFieldName(key string) error {
	if key == "" || strings.HasPrefix(key, "$") || strings.Contains(key, ".") {
		return fmt.Errorf("invalid field name %q", key)
	}
	return nil
}

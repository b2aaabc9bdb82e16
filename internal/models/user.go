// Package models defines data structures for the application.
package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seller view defaults applied at read time when the user document has no value.
const (
	DefaultSellerRating = 4.9
	DefaultSellerAvatar = "https://placehold.co/100x100.png"
)

// User represents a registered buyer or seller.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email     string             `json:"email" bson:"email" example:"alice@example.com"`
	Password  string             `json:"-" bson:"password"`
	FullName  string             `json:"fullName" bson:"fullName" example:"Alice Kumar"`
	Phone     *string            `json:"phone" bson:"phone" example:"+91 98765 43210"` // stored as null when absent
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`

	// Display fields. Never written with defaults; see SellerView.
	Rating       *float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewsCount *int     `json:"reviewsCount,omitempty" bson:"reviewsCount,omitempty"`
	Verified     *bool    `json:"verified,omitempty" bson:"verified,omitempty"`
	MemberSince  string   `json:"memberSince,omitempty" bson:"memberSince,omitempty"`
	Avatar       string   `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

// Seller is the public view of a listing's owner.
type Seller struct {
	Name         string  `json:"name" example:"Alice Kumar"`
	Phone        *string `json:"phone" example:"+91 98765 43210"`
	Email        string  `json:"email" example:"alice@example.com"`
	Rating       float64 `json:"rating" example:"4.9"`
	ReviewsCount int     `json:"reviewsCount" example:"0"`
	Verified     bool    `json:"verified" example:"true"`
	MemberSince  string  `json:"memberSince" example:"2024"`
	ProfileURL   string  `json:"profileUrl" example:"/profile/507f1f77bcf86cd799439011"`
	Avatar       string  `json:"avatar" example:"https://placehold.co/100x100.png"`
}

// SellerView builds the seller snapshot attached to listings, filling
// unset display fields with their defaults.
func (u *User) SellerView() *Seller {
	s := &Seller{
		Name:         u.FullName,
		Phone:        u.Phone,
		Email:        u.Email,
		Rating:       DefaultSellerRating,
		ReviewsCount: 0,
		Verified:     true,
		MemberSince:  u.MemberSince,
		ProfileURL:   "/profile/" + u.ID.Hex(),
		Avatar:       u.Avatar,
	}
	if u.Rating != nil {
		s.Rating = *u.Rating
	}
	if u.ReviewsCount != nil {
		s.ReviewsCount = *u.ReviewsCount
	}
	if u.Verified != nil {
		s.Verified = *u.Verified
	}
	if s.MemberSince == "" && !u.CreatedAt.IsZero() {
		s.MemberSince = strconv.Itoa(u.CreatedAt.Year())
	}
	if s.Avatar == "" {
		s.Avatar = DefaultSellerAvatar
	}
	return s
}

// SignupRequest is the payload for creating an account.
type SignupRequest struct {
	FullName string  `json:"fullName" binding:"required" example:"Alice Kumar"`
	Email    string  `json:"email" binding:"required" example:"alice@example.com"`
	Password string  `json:"password" binding:"required" example:"secret123"`
	Phone    *string `json:"phone" example:"+91 98765 43210"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UserSummary is the user identity returned after login.
type UserSummary struct {
	ID       string `json:"id" example:"507f1f77bcf86cd799439011"`
	Email    string `json:"email" example:"alice@example.com"`
	FullName string `json:"fullName" example:"Alice Kumar"`
}

// LoginResponse is the response after successful login. The token itself
// travels only in the HttpOnly cookie.
type LoginResponse struct {
	Message string      `json:"message" example:"Login successful"`
	User    UserSummary `json:"user"`
}

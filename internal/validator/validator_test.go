package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVINRegex(t *testing.T) {
	tests := []struct {
		name  string
		vin   string
		valid bool
	}{
		{"honda accord", "1HGCM82633A004352", true},
		{"all digits", "12345678901234567", true},
		{"lowercase", "1hgcm82633a004352", false},
		{"contains I", "1HGCM82633I004352", false},
		{"contains O", "1HGCM82633O004352", false},
		{"contains Q", "1HGCM82633Q004352", false},
		{"16 characters", "1HGCM82633A00435", false},
		{"18 characters", "1HGCM82633A0043521", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, vinRegex.MatchString(tt.vin), "vin: %q", tt.vin)
		})
	}
}

func TestPincodeRegex(t *testing.T) {
	tests := []struct {
		pincode string
		valid   bool
	}{
		{"560001", true},
		{"1010", true},
		{"1234567890", true},
		{"123", false},
		{"12345678901", false},
		{"56 001", false},
		{"ABC123", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.pincode, func(t *testing.T) {
			assert.Equal(t, tt.valid, pincodeRegex.MatchString(tt.pincode))
		})
	}
}

func TestRegisterCustomValidators(t *testing.T) {
	RegisterCustomValidators()

	_, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type listing struct {
		VIN     string `binding:"omitempty,vin"`
		Pincode string `binding:"omitempty,pincode"`
		Owner   string `binding:"omitempty,objectid"`
	}

	tests := []struct {
		name    string
		input   listing
		wantErr bool
	}{
		{"empty optional fields", listing{}, false},
		{"valid values", listing{VIN: "1HGCM82633A004352", Pincode: "560001", Owner: "507f1f77bcf86cd799439011"}, false},
		{"bad vin", listing{VIN: "SHORT"}, true},
		{"bad pincode", listing{Pincode: "56-001"}, true},
		{"bad object id", listing{Owner: "alice"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

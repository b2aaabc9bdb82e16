package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Run("hashes with cost 10", func(t *testing.T) {
		hash, err := HashPassword("hunter22")

		require.NoError(t, err)
		assert.NotEqual(t, "hunter22", hash)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, 10, cost)
	})

	t.Run("salts every hash", func(t *testing.T) {
		hash1, err1 := HashPassword("samepassword")
		hash2, err2 := HashPassword("samepassword")

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, hash1, hash2)
	})

	t.Run("rejects passwords over 72 bytes", func(t *testing.T) {
		_, err := HashPassword(string(make([]byte, 100)))

		assert.Error(t, err)
	})

	t.Run("hashes unicode passwords", func(t *testing.T) {
		password := "पासवर्ड🚗"

		hash, err := HashPassword(password)

		require.NoError(t, err)
		assert.NoError(t, CheckPassword(password, hash))
	})
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("CorrectHorse")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  bool
	}{
		{"matching password", "CorrectHorse", hash, false},
		{"wrong password", "WrongHorse", hash, true},
		{"case differs", "correcthorse", hash, true},
		{"empty password", "", hash, true},
		{"malformed hash", "CorrectHorse", "notavalidhash", true},
		{"empty hash", "CorrectHorse", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.password, tt.hash)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func BenchmarkCheckPassword(b *testing.B) {
	hash, _ := HashPassword("benchmarkpassword")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CheckPassword("benchmarkpassword", hash)
	}
}

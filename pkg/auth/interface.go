package auth

//go:generate mockgen -destination=mocks/mock_jwt.go -package=mocks carmarket/pkg/auth TokenManager

// TokenManager defines the interface for JWT token operations.
type TokenManager interface {
	// GenerateToken signs a session token carrying the given identity.
	GenerateToken(identity Identity) (string, error)
	// ValidateToken parses and validates a JWT token, returning the claims if valid.
	ValidateToken(tokenString string) (*Claims, error)
}

// Ensure JWTManager implements TokenManager interface
var _ TokenManager = (*JWTManager)(nil)

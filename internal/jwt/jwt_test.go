package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetUserID(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	uid, err := j.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), uid)
}

func TestJWT_DefaultExpirationIsSevenDays(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	assert.Equal(t, 7*24*time.Hour, j.Exp)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute)) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, 7)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	err = j.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	uid, err := j.GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Zero(t, uid)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	issuer := New(WithSecretKey("secret-a"), WithExpiration(time.Minute))
	verifier := New(WithSecretKey("secret-b"), WithExpiration(time.Minute))

	token, err := issuer.Generate(ctx, 1)
	assert.NoError(t, err)

	err = verifier.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	err := j.Validate(ctx, "invalid.token.string")
	assert.Error(t, err)

	uid, err := j.GetUserID(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Zero(t, uid)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

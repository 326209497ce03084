package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laredo-ist/workorder-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)
	employee := &domain.Employee{
		ID:         "emp-123",
		EmployeeID: "LRD-1001",
		Department: "Finance",
	}

	token, expiresAt, err := tm.GenerateToken(employee)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-123", claims.SubjectID)
	assert.Equal(t, domain.SubjectTypeEmployee, claims.Subject)
	assert.Equal(t, "Finance", claims.Department)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 30)
	verifier := NewTokenManager("secret-b", 30)

	token, _, err := issuer.GenerateToken(&domain.Employee{ID: "emp-123"})
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)
	_, err := tm.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("Laredo2024!", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "Laredo2024!", hash)

	assert.NoError(t, ComparePassword(hash, "Laredo2024!"))
	assert.Error(t, ComparePassword(hash, "wrong-password"))
}

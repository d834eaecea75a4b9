package auth_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"

	"github.com/Ezhilarasu1330/React-Todo-App/pkg/auth"
)

func TestIssueAndVerify(t *testing.T) {
	RegisterTestingT(t)

	manager := auth.NewTokenManager("secret", time.Hour)

	token, err := manager.Issue("user-123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := manager.Verify(token)

	assert.NoError(t, err)
	Expect(userID).To(Equal("user-123"))
}

func TestIssueProducesUniqueTokens(t *testing.T) {
	manager := auth.NewTokenManager("secret", time.Hour)

	first, err := manager.Issue("user-123")
	assert.NoError(t, err)

	second, err := manager.Issue("user-123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", time.Hour)
	verifier := auth.NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("user-123")
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := auth.NewTokenManager("secret", -time.Minute)

	token, err := manager.Issue("user-123")
	assert.NoError(t, err)

	_, err = manager.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := auth.NewTokenManager("secret", time.Hour)

	_, err := manager.Verify("not-a-token")
	assert.Error(t, err)
}

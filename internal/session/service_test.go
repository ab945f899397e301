package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/civic-issue-service/internal/config"
	"github.com/spec-kit/civic-issue-service/internal/domain"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		BcryptCost:            4, // keep tests fast
		CitizenDemoOTP:        "123456",
		OfficialCredentials:   "MO8881:PS8882,MO8882:PS8883",
	})
	require.NoError(t, err)
	return svc
}

func TestVerifyCitizenOTPIssuesCitizenToken(t *testing.T) {
	svc := newTestService(t)

	issued, err := svc.VerifyCitizenOTP("resident@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCitizen, issued.Role)
	assert.Equal(t, "resident@example.com", issued.Identity)

	claims, err := svc.TokenManager().ParseToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCitizen, claims.Role)
	assert.Equal(t, "resident@example.com", claims.Identity)
}

func TestVerifyCitizenOTPRejectsBadInput(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.VerifyCitizenOTP("not-an-email", "123456")
	require.Error(t, err)

	_, err = svc.VerifyCitizenOTP("resident@example.com", "000000")
	require.Error(t, err)

	_, err = svc.VerifyCitizenOTP("resident@example.com", "12345")
	require.Error(t, err)
}

func TestLoginOfficial(t *testing.T) {
	svc := newTestService(t)

	issued, err := svc.LoginOfficial("MO8881", "PS8882")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOfficial, issued.Role)
	assert.Equal(t, "MO8881", issued.Identity)

	_, err = svc.LoginOfficial("MO8881", "wrong")
	require.Error(t, err)

	_, err = svc.LoginOfficial("MO9999", "PS8882")
	require.Error(t, err)
}

func TestNewServiceRejectsMalformedSeed(t *testing.T) {
	_, err := NewService(config.AuthConfig{
		JWTSecret:           "test-secret",
		BcryptCost:          4,
		OfficialCredentials: "MO8881",
	})
	require.Error(t, err)
}

func TestTokenRoundTripRejectsTamperedRole(t *testing.T) {
	svc := newTestService(t)
	other := NewTokenManager("different-secret", 15)

	token, _, err := other.GenerateToken("MO8881", domain.RoleOfficial)
	require.NoError(t, err)

	_, err = svc.TokenManager().ParseToken(token)
	require.Error(t, err, "tokens signed with another secret are rejected")
}

package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanggarku_backend/internals/configs"
	userModel "sanggarku_backend/internals/features/users/user/model"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	configs.JWTSecret = "test-secret"

	user := userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Budi",
		Email:    "budi@gmail.com",
		Role:     userModel.RoleTeacher,
	}

	token, err := IssueAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, userModel.RoleTeacher, claims["role"])
	assert.Equal(t, "Budi", claims["user_name"])

	expiry := AccessTokenExpiry(claims)
	assert.True(t, expiry.After(time.Now()), "token langsung kadaluarsa")
}

func TestIssueAccessTokenWithoutSecret(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = ""
	defer func() { configs.JWTSecret = old }()

	_, err := IssueAccessToken(userModel.UserModel{ID: uuid.New()})
	assert.Error(t, err)
}

package sec

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueToken(t *testing.T, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   float64(42),
		"name": "alice",
		"nick": "Alice",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestReadUserToken(t *testing.T) {
	viper.Set("security.access_token_secret", "unit-test-secret")

	user, err := ReadUserToken(issueToken(t, "unit-test-secret"))
	require.NoError(t, err)
	assert.EqualValues(t, 42, user.ID)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "Alice", user.Nick)
}

func TestReadUserTokenRejectsBadSignature(t *testing.T) {
	viper.Set("security.access_token_secret", "unit-test-secret")

	_, err := ReadUserToken(issueToken(t, "some-other-secret"))
	require.Error(t, err)
}

package jwt

import (
  "testing"
  "time"

  "github.com/stretchr/testify/require"
)

func TestAccessTokenVerify(t *testing.T) {
  tokens := &TokenRepository{Secret: "secret"}
  token, err := tokens.AccessToken("1@twitter.com", time.Hour)
  require.NoError(t, err)

  claims, err := tokens.Verify(token)
  require.NoError(t, err)
  require.Equal(t, "1@twitter.com", claims.Subject)
  require.Greater(t, claims.ExpiresAt, claims.IssuedAt)

  _, err = (&TokenRepository{Secret: "other"}).Verify(token)
  require.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
  tokens := &TokenRepository{Secret: "secret"}
  token, err := tokens.AccessToken("1@twitter.com", -time.Minute)
  require.NoError(t, err)

  _, err = tokens.Verify(token)
  require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenSecretEmpty(t *testing.T) {
  tokens := &TokenRepository{}
  _, err := tokens.AccessToken("1@twitter.com", time.Hour)
  require.ErrorIs(t, err, ErrTokenSecretEmpty)

  _, err = tokens.Verify("a.b.c")
  require.ErrorIs(t, err, ErrTokenSecretEmpty)
}

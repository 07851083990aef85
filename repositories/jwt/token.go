package jwt

import (
  "encoding/json"
  "errors"
  "time"

  "github.com/lestrrat/go-jwx/jwa"
  "github.com/lestrrat/go-jwx/jws"
)

var (
  ErrTokenSecretEmpty = errors.New("token secret is empty")
  ErrTokenExpired     = errors.New("token expired")
)

type Claims struct {
  Subject   string `json:"sub"`
  IssuedAt  int64  `json:"iat"`
  ExpiresAt int64  `json:"exp"`
}

type TokenRepository struct {
  Secret string
}

func (r *TokenRepository) AccessToken(accountKey string, ttl time.Duration) (string, error) {
  if r.Secret == "" {
    return "", ErrTokenSecretEmpty
  }
  now := time.Now()
  payload, err := json.Marshal(&Claims{
    Subject:   accountKey,
    IssuedAt:  now.Unix(),
    ExpiresAt: now.Add(ttl).Unix(),
  })
  if err != nil {
    return "", err
  }
  buf, err := jws.Sign(payload, jwa.HS256, []byte(r.Secret))
  if err != nil {
    return "", err
  }
  return string(buf), nil
}

func (r *TokenRepository) Verify(token string) (claims *Claims, err error) {
  if r.Secret == "" {
    err = ErrTokenSecretEmpty
    return
  }
  payload, err := jws.Verify([]byte(token), jwa.HS256, []byte(r.Secret))
  if err != nil {
    return
  }
  if err = json.Unmarshal(payload, &claims); err != nil {
    return
  }
  if claims.ExpiresAt > 0 && time.Now().Unix() > claims.ExpiresAt {
    err = ErrTokenExpired
  }
  return
}

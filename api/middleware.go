package api

import (
  "context"
  "net/http"
  "strings"

  "twiderex.local/twiderex/models"
  jwtRepositories "twiderex.local/twiderex/repositories/jwt"
)

type contextKey string

const accountKeyContext contextKey = "account_key"

// Authenticator accepts "Authorization: Bearer <token>" signed by tokens and
// puts the account key it names on the request context.
func Authenticator(tokens *jwtRepositories.TokenRepository) func(http.Handler) http.Handler {
  return func(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
      response := &ResponseHandler{Writer: w}
      header := r.Header.Get("Authorization")
      token := strings.TrimPrefix(header, "Bearer ")
      if header == "" || token == header {
        response.Error(http.StatusUnauthorized, 1001, "token is empty")
        return
      }
      claims, err := tokens.Verify(token)
      if err != nil {
        response.Error(http.StatusUnauthorized, 1002, "token is invalid")
        return
      }
      ctx := context.WithValue(r.Context(), accountKeyContext, models.ValueOf(claims.Subject))
      next.ServeHTTP(w, r.WithContext(ctx))
    })
  }
}

func AccountKey(ctx context.Context) (models.MicroBlogKey, bool) {
  key, ok := ctx.Value(accountKeyContext).(models.MicroBlogKey)
  return key, ok
}

package common

import (
  "testing"

  "github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
  sealed, err := Seal("secret", []byte("access-token"))
  require.NoError(t, err)
  require.NotContains(t, sealed, "access-token")

  again, err := Seal("secret", []byte("access-token"))
  require.NoError(t, err)
  require.NotEqual(t, sealed, again)

  plaintext, err := Open("secret", sealed)
  require.NoError(t, err)
  require.Equal(t, []byte("access-token"), plaintext)

  _, err = Open("other", sealed)
  require.ErrorIs(t, err, ErrSealedInvalid)

  _, err = Open("secret", "c2hvcnQ")
  require.ErrorIs(t, err, ErrSealedInvalid)

  _, err = Open("secret", "not base64!")
  require.Error(t, err)
}

package common

import (
  "crypto/rand"
  "encoding/base64"
  "errors"
  "io"

  "golang.org/x/crypto/nacl/secretbox"
  "golang.org/x/crypto/scrypt"
)

var ErrSealedInvalid = errors.New("sealed value invalid")

func secretKey(secret string, salt []byte) (key *[32]byte, err error) {
  buf, err := scrypt.Key([]byte(secret), salt, 32768, 8, 1, 32)
  if err != nil {
    return
  }
  key = new([32]byte)
  copy(key[:], buf)
  return
}

func Seal(secret string, plaintext []byte) (string, error) {
  salt := make([]byte, 16)
  if _, err := io.ReadFull(rand.Reader, salt); err != nil {
    return "", err
  }
  var nonce [24]byte
  if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
    return "", err
  }
  key, err := secretKey(secret, salt)
  if err != nil {
    return "", err
  }
  out := append(salt, nonce[:]...)
  out = secretbox.Seal(out, plaintext, &nonce, key)
  return base64.RawURLEncoding.EncodeToString(out), nil
}

func Open(secret string, sealed string) ([]byte, error) {
  buf, err := base64.RawURLEncoding.DecodeString(sealed)
  if err != nil {
    return nil, err
  }
  if len(buf) < 16+24+secretbox.Overhead {
    return nil, ErrSealedInvalid
  }
  var nonce [24]byte
  copy(nonce[:], buf[16:40])
  key, err := secretKey(secret, buf[:16])
  if err != nil {
    return nil, err
  }
  plaintext, ok := secretbox.Open(nil, buf[40:], &nonce, key)
  if !ok {
    return nil, ErrSealedInvalid
  }
  return plaintext, nil
}

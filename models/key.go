package models

import (
  "database/sql/driver"
  "errors"
  "fmt"
  "strings"

  "twiderex.local/twiderex/config"
)

type PlatformType int

const (
  PlatformTwitter PlatformType = iota + 1
  PlatformMastodon
  PlatformStatusNet
  PlatformFanfou
)

func (t PlatformType) String() string {
  switch t {
  case PlatformTwitter:
    return "twitter"
  case PlatformMastodon:
    return "mastodon"
  case PlatformStatusNet:
    return "statusnet"
  case PlatformFanfou:
    return "fanfou"
  }
  return "unknown"
}

func ParsePlatformType(value string) (PlatformType, error) {
  switch strings.ToLower(value) {
  case "twitter":
    return PlatformTwitter, nil
  case "mastodon":
    return PlatformMastodon, nil
  case "statusnet":
    return PlatformStatusNet, nil
  case "fanfou":
    return PlatformFanfou, nil
  }
  return 0, errors.New(fmt.Sprintf("platform not supported: %v", value))
}

// MicroBlogKey identifies an entity as id@host. Backslash, '@' and ',' are
// escaped in the serialized form so any id or host round-trips.
type MicroBlogKey struct {
  ID   string
  Host string
}

func Twitter(id string) MicroBlogKey {
  return MicroBlogKey{
    ID:   id,
    Host: config.TWITTER_HOST,
  }
}

func Empty() MicroBlogKey {
  return MicroBlogKey{}
}

func (k MicroBlogKey) IsEmpty() bool {
  return k.ID == "" && k.Host == ""
}

func (k MicroBlogKey) String() string {
  if k.Host == "" {
    return escape(k.ID)
  }
  return fmt.Sprintf("%v@%v", escape(k.ID), escape(k.Host))
}

func escape(value string) string {
  var b strings.Builder
  for _, c := range value {
    if c == '\\' || c == '@' || c == ',' {
      b.WriteRune('\\')
    }
    b.WriteRune(c)
  }
  return b.String()
}

func ValueOf(value string) MicroBlogKey {
  var id, host strings.Builder
  escaping := false
  idFinished := false
  for _, c := range value {
    if escaping {
      escaping = false
    } else if c == '\\' {
      escaping = true
      continue
    } else if c == '@' && !idFinished {
      idFinished = true
      continue
    }
    if idFinished {
      host.WriteRune(c)
    } else {
      id.WriteRune(c)
    }
  }
  return MicroBlogKey{
    ID:   id.String(),
    Host: host.String(),
  }
}

func ValuesOf(value string) []MicroBlogKey {
  var keys []MicroBlogKey
  var current strings.Builder
  escaping := false
  for _, c := range value {
    if escaping {
      escaping = false
    } else if c == '\\' {
      escaping = true
    } else if c == ',' {
      keys = append(keys, ValueOf(current.String()))
      current.Reset()
      continue
    }
    current.WriteRune(c)
  }
  if current.Len() > 0 {
    keys = append(keys, ValueOf(current.String()))
  }
  return keys
}

func JoinKeys(keys []MicroBlogKey) string {
  items := make([]string, len(keys))
  for i, key := range keys {
    items[i] = key.String()
  }
  return strings.Join(items, ",")
}

func (k MicroBlogKey) GormDataType() string {
  return "string"
}

func (k MicroBlogKey) Value() (driver.Value, error) {
  return k.String(), nil
}

func (k *MicroBlogKey) Scan(value interface{}) error {
  switch v := value.(type) {
  case nil:
    *k = MicroBlogKey{}
  case string:
    *k = ValueOf(v)
  case []byte:
    *k = ValueOf(string(v))
  default:
    return errors.New(fmt.Sprintf("failed to scan micro blog key: %v", value))
  }
  return nil
}

func (k MicroBlogKey) MarshalText() ([]byte, error) {
  return []byte(k.String()), nil
}

func (k *MicroBlogKey) UnmarshalText(text []byte) error {
  *k = ValueOf(string(text))
  return nil
}

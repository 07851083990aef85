package common

import (
  "os"
  "strconv"
  "strings"
)

func GetEnvString(key string) string {
  return os.Getenv(key)
}

func GetEnvStringOr(key string, fallback string) string {
  if value, ok := os.LookupEnv(key); ok && value != "" {
    return value
  }
  return fallback
}

func GetEnvInt(key string) int {
  value, _ := strconv.Atoi(os.Getenv(key))
  return value
}

func GetEnvFloat(key string) float64 {
  value, _ := strconv.ParseFloat(os.Getenv(key), 64)
  return value
}

func GetEnvBool(key string) bool {
  value, _ := strconv.ParseBool(os.Getenv(key))
  return value
}

func GetEnvArray(key string) []string {
  var items []string
  for _, item := range strings.Split(os.Getenv(key), ";") {
    item = strings.TrimSpace(item)
    if item != "" {
      items = append(items, item)
    }
  }
  return items
}

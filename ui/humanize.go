package ui

import (
  "fmt"
  "strconv"
  "strings"
  "time"
)

func HumanizedCount(count int64) string {
  switch {
  case count < 1000:
    return strconv.FormatInt(count, 10)
  case count < 1000000:
    return shorten(float64(count)/1000) + "K"
  case count < 1000000000:
    return shorten(float64(count)/1000000) + "M"
  }
  return shorten(float64(count)/1000000000) + "B"
}

func shorten(value float64) string {
  text := strconv.FormatFloat(float64(int64(value*10))/10, 'f', 1, 64)
  return strings.TrimSuffix(text, ".0")
}

func HumanizedTimestamp(timestamp int64) string {
  return humanizedTimestampAt(timestamp, time.Now())
}

func humanizedTimestampAt(timestamp int64, now time.Time) string {
  t := time.UnixMilli(timestamp)
  diff := now.Sub(t)
  switch {
  case diff < time.Minute:
    return "now"
  case diff < time.Hour:
    return fmt.Sprintf("%dm", int(diff/time.Minute))
  case diff < 24*time.Hour:
    return fmt.Sprintf("%dh", int(diff/time.Hour))
  case diff < 7*24*time.Hour:
    return fmt.Sprintf("%dd", int(diff/(24*time.Hour)))
  case t.Year() == now.Year():
    return t.Format("Jan 2")
  }
  return t.Format("2006-01-02")
}

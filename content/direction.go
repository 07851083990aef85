package content

import (
  "golang.org/x/text/unicode/bidi"
)

type Direction string

const (
  DirectionLtr Direction = "ltr"
  DirectionRtl Direction = "rtl"
)

// DirectionOf follows the first strong character in text.
func DirectionOf(text string) Direction {
  for _, r := range text {
    props, _ := bidi.LookupRune(r)
    switch props.Class() {
    case bidi.L:
      return DirectionLtr
    case bidi.R, bidi.AL:
      return DirectionRtl
    }
  }
  return DirectionLtr
}

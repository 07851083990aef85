package viewmodels

type TextRange struct {
  Start int `json:"start"`
  End   int `json:"end"`
}

func Cursor(position int) TextRange {
  return TextRange{Start: position, End: position}
}

func (r TextRange) Min() int {
  if r.Start < r.End {
    return r.Start
  }
  return r.End
}

func (r TextRange) Max() int {
  if r.Start > r.End {
    return r.Start
  }
  return r.End
}

// TextFieldValue is the editor text with a selection counted in runes.
type TextFieldValue struct {
  Text      string    `json:"text"`
  Selection TextRange `json:"selection"`
}

func (v TextFieldValue) clamp(position int) int {
  length := len([]rune(v.Text))
  if position < 0 {
    return 0
  }
  if position > length {
    return length
  }
  return position
}

func (v TextFieldValue) TextBeforeSelection() string {
  return string([]rune(v.Text)[:v.clamp(v.Selection.Min())])
}

func (v TextFieldValue) TextAfterSelection() string {
  return string([]rune(v.Text)[v.clamp(v.Selection.Max()):])
}

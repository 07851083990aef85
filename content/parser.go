package content

import (
  "regexp"
  "strings"
  "unicode"
  "unicode/utf8"
)

type TokenKind string

const (
  TokenText     TokenKind = "text"
  TokenUrl      TokenKind = "url"
  TokenUserName TokenKind = "user_name"
  TokenHashTag  TokenKind = "hash_tag"
  TokenCashTag  TokenKind = "cash_tag"
)

type Token struct {
  Kind  TokenKind `json:"kind"`
  Value string    `json:"value"`
}

var tokenPattern = regexp.MustCompile(
  `(https?://[^\s<>"]+)|@([A-Za-z0-9_]+(?:@[A-Za-z0-9\-]+(?:\.[A-Za-z0-9\-]+)+)?)|#([\p{L}\p{N}_]+)|\$([A-Za-z]{1,6})\b`,
)

func Parse(text string) []Token {
  var tokens []Token
  last := 0
  for _, m := range tokenPattern.FindAllStringSubmatchIndex(text, -1) {
    start, end := m[0], m[1]
    if start > 0 && text[start] != 'h' {
      prev, _ := utf8.DecodeLastRuneInString(text[:start])
      if prev == '_' || unicode.IsLetter(prev) || unicode.IsDigit(prev) {
        continue
      }
    }
    if start > last {
      tokens = append(tokens, Token{Kind: TokenText, Value: text[last:start]})
    }
    kind := TokenText
    switch {
    case m[2] >= 0:
      kind = TokenUrl
    case m[4] >= 0:
      kind = TokenUserName
    case m[6] >= 0:
      kind = TokenHashTag
    case m[8] >= 0:
      kind = TokenCashTag
    }
    tokens = append(tokens, Token{Kind: kind, Value: text[start:end]})
    last = end
  }
  if last < len(text) {
    tokens = append(tokens, Token{Kind: TokenText, Value: text[last:]})
  }
  return tokens
}

// ExtractMentions returns the screen names mentioned in text, without the
// leading '@', in order of first appearance.
func ExtractMentions(text string) []string {
  var names []string
  seen := map[string]bool{}
  for _, token := range Parse(text) {
    if token.Kind != TokenUserName {
      continue
    }
    name := strings.TrimPrefix(token.Value, "@")
    if seen[strings.ToLower(name)] {
      continue
    }
    seen[strings.ToLower(name)] = true
    names = append(names, name)
  }
  return names
}

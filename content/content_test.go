package content

import (
  "testing"

  "github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
  tokens := Parse("hi @bob see #golang at https://example.com/a?b=1 $TSLA")
  require.Equal(t, []Token{
    {Kind: TokenText, Value: "hi "},
    {Kind: TokenUserName, Value: "@bob"},
    {Kind: TokenText, Value: " see "},
    {Kind: TokenHashTag, Value: "#golang"},
    {Kind: TokenText, Value: " at "},
    {Kind: TokenUrl, Value: "https://example.com/a?b=1"},
    {Kind: TokenText, Value: " "},
    {Kind: TokenCashTag, Value: "$TSLA"},
  }, tokens)
}

func TestParseSkipsEmbeddedMarks(t *testing.T) {
  tokens := Parse("mail me at me@example.com or tag#notatag")
  for _, token := range tokens {
    require.Equal(t, TokenText, token.Kind, token.Value)
  }
}

func TestParseFediverseName(t *testing.T) {
  tokens := Parse("@alice@mastodon.social hello")
  require.Equal(t, Token{Kind: TokenUserName, Value: "@alice@mastodon.social"}, tokens[0])
}

func TestExtractMentions(t *testing.T) {
  names := ExtractMentions("@Alice @bob hey @alice and @carol")
  require.Equal(t, []string{"Alice", "bob", "carol"}, names)
  require.Nil(t, ExtractMentions("nobody here"))
}

func TestHtmlToText(t *testing.T) {
  require.Equal(t, "plain", HtmlToText("plain"))
  require.Equal(t, "one\ntwo\n\nthree", HtmlToText("<p>one<br>two</p><p>three</p>"))
  require.Equal(t, "no paragraphs", HtmlToText("<span>no paragraphs</span>"))
}

func TestHtmlLinks(t *testing.T) {
  links := HtmlLinks(`<p><a href="https://mastodon.social/@bob">@bob</a> <a href="https://example.com">example.com</a></p>`)
  require.Equal(t, map[string]string{
    "@bob":        "https://mastodon.social/@bob",
    "example.com": "https://example.com",
  }, links)
}

func TestDirectionOf(t *testing.T) {
  require.Equal(t, DirectionLtr, DirectionOf("hello"))
  require.Equal(t, DirectionRtl, DirectionOf("שלום"))
  require.Equal(t, DirectionRtl, DirectionOf("123 مرحبا"))
  require.Equal(t, DirectionLtr, DirectionOf("123"))
}

package models

type Emoji struct {
  Shortcode       string `json:"shortcode"`
  Url             string `json:"url"`
  StaticUrl       string `json:"static_url"`
  VisibleInPicker bool   `json:"visible_in_picker"`
  Category        string `json:"category,omitempty"`
}

type Mention struct {
  ID       string `json:"id"`
  Username string `json:"username"`
  Acct     string `json:"acct"`
  Url      string `json:"url"`
}

type PollOption struct {
  Text  string `json:"text"`
  Count int64  `json:"count"`
}

type Poll struct {
  ID         string       `json:"id"`
  Options    []PollOption `json:"options"`
  ExpiresAt  int64        `json:"expires_at,omitempty"`
  Expired    bool         `json:"expired"`
  Multiple   bool         `json:"multiple"`
  Voted      bool         `json:"voted"`
  OwnVotes   []int        `json:"own_votes,omitempty"`
  VotesCount int64        `json:"votes_count"`
}

type Card struct {
  Link        string `json:"link"`
  DisplayLink string `json:"display_link,omitempty"`
  Title       string `json:"title,omitempty"`
  Description string `json:"description,omitempty"`
  Image       string `json:"image,omitempty"`
}

type UrlEntity struct {
  Url         string `json:"url"`
  ExpandedUrl string `json:"expanded_url"`
  DisplayUrl  string `json:"display_url"`
  Title       string `json:"title,omitempty"`
  Description string `json:"description,omitempty"`
  Image       string `json:"image,omitempty"`
}

type Visibility string

const (
  VisibilityPublic   Visibility = "public"
  VisibilityUnlisted Visibility = "unlisted"
  VisibilityPrivate  Visibility = "private"
  VisibilityDirect   Visibility = "direct"
)

type StatusExtra struct {
  ReplySettings    string      `json:"reply_settings,omitempty"`
  SpoilerText      string      `json:"spoiler_text,omitempty"`
  Visibility       Visibility  `json:"visibility,omitempty"`
  NotificationType string      `json:"notification_type,omitempty"`
  Mentions         []Mention   `json:"mentions,omitempty"`
  Emojis           []Emoji     `json:"emojis,omitempty"`
  Poll             *Poll       `json:"poll,omitempty"`
  Card             *Card       `json:"card,omitempty"`
  Urls             []UrlEntity `json:"urls,omitempty"`
}

package models

type StatusBundle struct {
  Statuses []*Status
  Users    []*User
  Media    []*Media
}

func (b *StatusBundle) Merge(other *StatusBundle) {
  if other == nil {
    return
  }
  b.Statuses = append(b.Statuses, other.Statuses...)
  b.Users = append(b.Users, other.Users...)
  b.Media = append(b.Media, other.Media...)
}

type StatusDetail struct {
  Status  *Status
  User    *User
  Media   []*Media
  Retweet *StatusDetail
  Quote   *StatusDetail
}

type TimelineItem struct {
  Paging *PagingTimeline
  Detail *StatusDetail
}

type DMConversationDetail struct {
  Conversation *DMConversation
  Latest       *DMEvent
  Sender       *User
  Recipient    *User
}

type DMEventDetail struct {
  Event  *DMEvent
  Sender *User
}

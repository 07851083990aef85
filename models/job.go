package models

type ComposeData struct {
  AccountKey           MicroBlogKey  `json:"account_key"`
  Content              string        `json:"content"`
  DraftID              string        `json:"draft_id"`
  Images               []string      `json:"images,omitempty"`
  ComposeType          ComposeType   `json:"compose_type"`
  StatusKey            *MicroBlogKey `json:"status_key,omitempty"`
  Lat                  *float64      `json:"lat,omitempty"`
  Long                 *float64      `json:"long,omitempty"`
  ExcludedReplyUserIds []string      `json:"excluded_reply_user_ids,omitempty"`
  VoteOptions          []string      `json:"vote_options,omitempty"`
  VoteExpired          *int64        `json:"vote_expired,omitempty"`
  VoteMultiple         *bool         `json:"vote_multiple,omitempty"`
  Visibility           Visibility    `json:"visibility,omitempty"`
  IsSensitive          bool          `json:"is_sensitive"`
  ContentWarningText   string        `json:"content_warning_text,omitempty"`
  IsThreadMode         bool          `json:"is_thread_mode"`
}

type ComposeResult struct {
  AccountKey   MicroBlogKey `json:"account_key"`
  DraftID      string       `json:"draft_id"`
  StatusKey    MicroBlogKey `json:"status_key"`
  IsThreadMode bool         `json:"is_thread_mode"`
}

type TimelineCached struct {
  AccountKey MicroBlogKey `json:"account_key"`
  PagingKey  string       `json:"paging_key"`
  Total      int64        `json:"total"`
}

package services

import (
  "context"
  "io"

  "twiderex.local/twiderex/models"
)

type TimelineService interface {
  HomeTimeline(ctx context.Context, count int, paging Paging) ([]*Status, error)
  MentionsTimeline(ctx context.Context, count int, paging Paging) ([]*Status, error)
  UserTimeline(ctx context.Context, userID string, count int, paging Paging, excludeReplies bool) ([]*Status, error)
}

type SearchService interface {
  SearchStatuses(ctx context.Context, query string, count int, nextPage string) (*SearchResult, error)
  SearchMedia(ctx context.Context, query string, count int, nextPage string) (*SearchResult, error)
  SearchUsers(ctx context.Context, query string, page int, count int) ([]*User, error)
}

type DirectMessageService interface {
  GetDirectMessages(ctx context.Context, cursor string, count int) (*DirectMessagePage, error)
}

type LookupService interface {
  LookupUser(ctx context.Context, id string) (*User, error)
  LookupUsers(ctx context.Context, ids []string) ([]*User, error)
  LookupUsersByName(ctx context.Context, names []string) ([]*User, error)
  LookupStatus(ctx context.Context, id string) (*Status, error)
}

type StatusService interface {
  Compose(ctx context.Context, req *ComposeRequest) (*Status, error)
  UploadMedia(ctx context.Context, r io.Reader, name string, mime string) (string, error)
}

type AccountService interface {
  VerifyCredentials(ctx context.Context) (*User, error)
}

type EmojiService interface {
  Emojis(ctx context.Context) ([]models.Emoji, error)
}

type MicroBlogService interface {
  TimelineService
  SearchService
  LookupService
  StatusService
  AccountService
}

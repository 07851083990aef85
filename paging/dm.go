package paging

import (
  "context"
  "fmt"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/transform"
)

type DirectMessageFetcher func(ctx context.Context, cursor string) (*services.DirectMessagePage, error)

// DirectMessageMediator stores whole DM pages: events grouped into
// conversations and the participants the page did not carry, looked up
// before the write.
type DirectMessageMediator[T any] struct {
  Cache      *repositories.CacheRepository
  AccountKey models.MicroBlogKey
  PagingKey  string
  Fetch      DirectMessageFetcher
  Lookup     services.LookupService
  Locker     Locker
}

type DMConversationMediator = DirectMessageMediator[*models.DMConversationDetail]

type DMEventMediator = DirectMessageMediator[*models.DMEventDetail]

func NewDMConversationMediator(
  cache *repositories.CacheRepository,
  accountKey models.MicroBlogKey,
  service services.DirectMessageService,
  lookup services.LookupService,
  locker Locker,
) *DMConversationMediator {
  return &DMConversationMediator{
    Cache:      cache,
    AccountKey: accountKey,
    PagingKey:  config.PAGING_KEY_DM_CONVERSATIONS,
    Fetch: func(ctx context.Context, cursor string) (*services.DirectMessagePage, error) {
      return service.GetDirectMessages(ctx, cursor, config.DM_LOAD_COUNT)
    },
    Lookup: lookup,
    Locker: locker,
  }
}

func NewDMEventMediator(
  cache *repositories.CacheRepository,
  accountKey models.MicroBlogKey,
  conversationKey models.MicroBlogKey,
  service services.DirectMessageService,
  lookup services.LookupService,
  locker Locker,
) *DMEventMediator {
  return &DMEventMediator{
    Cache:      cache,
    AccountKey: accountKey,
    PagingKey:  fmt.Sprintf(config.PAGING_KEY_DM_EVENTS, conversationKey.String()),
    Fetch: func(ctx context.Context, cursor string) (*services.DirectMessagePage, error) {
      return service.GetDirectMessages(ctx, cursor, config.DM_LOAD_COUNT)
    },
    Lookup: lookup,
    Locker: locker,
  }
}

func (m *DirectMessageMediator[T]) Load(ctx context.Context, loadType LoadType, state PagingState[T]) MediatorResult {
  cursor := ""
  switch loadType {
  case Prepend:
    return Success{EndOfPaginationReached: true}
  case Append:
    var err error
    cursor, err = m.Cache.Cursor(ctx, m.AccountKey, m.PagingKey)
    if err != nil {
      return Error{Err: err}
    }
    if cursor == "" {
      return Success{EndOfPaginationReached: true}
    }
  }

  key := fmt.Sprintf(config.LOCKS_PAGING_REFRESH, m.AccountKey.String(), m.PagingKey)
  unlock, result := lockPaging(ctx, m.Locker, key, m.PagingKey)
  if result != nil {
    return result
  }
  defer unlock()

  page, err := m.Fetch(ctx, cursor)
  if err != nil {
    return Error{Err: err}
  }
  if err := m.lookupParticipants(ctx, page); err != nil {
    return Error{Err: err}
  }
  conversations, events, users := transform.DirectMessagesToDb(m.AccountKey, page)
  nextKey := page.NextCursor
  err = m.Cache.SaveDirectMessages(ctx, &repositories.DirectMessageWrite{
    AccountKey:    m.AccountKey,
    PagingKey:     m.PagingKey,
    Conversations: conversations,
    Events:        events,
    Users:         users,
    NextKey:       &nextKey,
  })
  if err != nil {
    return Error{Err: err}
  }
  return Success{EndOfPaginationReached: nextKey == "" || len(page.Events) == 0}
}

func (m *DirectMessageMediator[T]) lookupParticipants(ctx context.Context, page *services.DirectMessagePage) error {
  known := map[string]bool{}
  for _, user := range page.Users {
    if user != nil {
      known[user.ID] = true
    }
  }
  var keys []models.MicroBlogKey
  for _, event := range page.Events {
    for _, id := range []string{event.SenderID, event.RecipientID} {
      if id == "" || known[id] {
        continue
      }
      known[id] = true
      keys = append(keys, models.MicroBlogKey{ID: id, Host: m.AccountKey.Host})
    }
  }
  if len(keys) == 0 {
    return nil
  }
  cached, err := m.Cache.UsersByKeys(ctx, keys)
  if err != nil {
    return err
  }
  var missing []string
  for _, key := range keys {
    if _, ok := cached[key.String()]; !ok {
      missing = append(missing, key.ID)
    }
  }
  if len(missing) == 0 || m.Lookup == nil {
    return nil
  }
  users, err := m.Lookup.LookupUsers(ctx, missing)
  if err != nil {
    return err
  }
  page.Users = append(page.Users, users...)
  return nil
}

package paging

import (
  "context"

  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/ui"
)

func NewTimelinePager(config PagingConfig, cache *repositories.CacheRepository, accountKey models.MicroBlogKey, pagingKey string, mediator RemoteMediator[*models.TimelineItem]) *Pager[*models.TimelineItem] {
  return NewMediatorPager(config, mediator, func(ctx context.Context, offset int, limit int) ([]*models.TimelineItem, error) {
    return cache.TimelineItems(ctx, accountKey, pagingKey, offset, limit)
  })
}

func NewDMConversationPager(
  cache *repositories.CacheRepository,
  accountKey models.MicroBlogKey,
  service services.DirectMessageService,
  lookup services.LookupService,
  locker Locker,
) *Pager[*models.DMConversationDetail] {
  mediator := NewDMConversationMediator(cache, accountKey, service, lookup, locker)
  return NewMediatorPager[*models.DMConversationDetail](DefaultConfig(), mediator, func(ctx context.Context, offset int, limit int) ([]*models.DMConversationDetail, error) {
    return cache.Conversations(ctx, accountKey, offset, limit)
  })
}

func NewDMEventPager(
  cache *repositories.CacheRepository,
  accountKey models.MicroBlogKey,
  conversationKey models.MicroBlogKey,
  service services.DirectMessageService,
  lookup services.LookupService,
  locker Locker,
) *Pager[*models.DMEventDetail] {
  mediator := NewDMEventMediator(cache, accountKey, conversationKey, service, lookup, locker)
  return NewMediatorPager[*models.DMEventDetail](DefaultConfig(), mediator, func(ctx context.Context, offset int, limit int) ([]*models.DMEventDetail, error) {
    return cache.ConversationEvents(ctx, accountKey, conversationKey, offset, limit)
  })
}

func NewSearchUserPager(query string, service services.SearchService) *Pager[ui.User] {
  return NewSourcePager[ui.User](DefaultConfig(), &SearchUserPagingSource{Query: query, Service: service})
}

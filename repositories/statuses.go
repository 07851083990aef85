package repositories

import (
  "context"
  "errors"

  "gorm.io/gorm"

  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/transform"
  "twiderex.local/twiderex/ui"
)

type StatusesRepository struct {
  Cache *CacheRepository
}

// LoadStatus reads the status from the cache and falls back to the network
// when it was never cached.
func (r *StatusesRepository) LoadStatus(ctx context.Context, statusKey models.MicroBlogKey, accountKey models.MicroBlogKey, lookup services.LookupService) (ui.Timeline, error) {
  detail, err := r.Cache.LoadStatus(ctx, accountKey, statusKey)
  if err == nil {
    return transform.StatusToUi(detail), nil
  }
  if !errors.Is(err, gorm.ErrRecordNotFound) || lookup == nil {
    return nil, err
  }
  status, err := lookup.LookupStatus(ctx, statusKey.ID)
  if err != nil {
    return nil, err
  }
  if err = r.Cache.SaveStatuses(ctx, transform.StatusToDb(accountKey, status)); err != nil {
    return nil, err
  }
  detail, err = r.Cache.LoadStatus(ctx, accountKey, statusKey)
  if err != nil {
    return nil, err
  }
  return transform.StatusToUi(detail), nil
}

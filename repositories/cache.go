package repositories

import (
  "context"
  "database/sql"
  "errors"

  "github.com/rs/xid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"

  "twiderex.local/twiderex/models"
)

type CacheRepository struct {
  Db *gorm.DB
}

type TimelineWrite struct {
  AccountKey models.MicroBlogKey
  PagingKey  string
  Bundle     *models.StatusBundle
  Entries    []*models.PagingTimeline
  Clear      bool
  ClearGap   *models.MicroBlogKey
  NextKey    *string
}

type DirectMessageWrite struct {
  AccountKey    models.MicroBlogKey
  PagingKey     string
  Conversations []*models.DMConversation
  Events        []*models.DMEvent
  Users         []*models.User
  NextKey       *string
}

func (r *CacheRepository) SaveTimeline(ctx context.Context, w *TimelineWrite) error {
  return r.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if w.Clear {
      err := tx.Where("account_key = ? AND paging_key = ?", w.AccountKey, w.PagingKey).
        Delete(&models.PagingTimeline{}).Error
      if err != nil {
        return err
      }
    }
    if w.Bundle != nil {
      if err := saveUsers(tx, w.Bundle.Users); err != nil {
        return err
      }
      if err := saveStatuses(tx, w.Bundle.Statuses); err != nil {
        return err
      }
      if err := saveMedia(tx, w.Bundle.Media); err != nil {
        return err
      }
    }
    if entries := uniqueEntries(w.Entries); len(entries) > 0 {
      err := tx.Clauses(clause.OnConflict{
        Columns:   []clause.Column{{Name: "account_key"}, {Name: "paging_key"}, {Name: "status_key"}},
        DoUpdates: clause.AssignmentColumns([]string{"timestamp", "sort_id", "updated_at"}),
      }).Create(&entries).Error
      if err != nil {
        return err
      }
    }
    if w.ClearGap != nil {
      err := tx.Model(&models.PagingTimeline{}).
        Where("account_key = ? AND paging_key = ? AND status_key = ?", w.AccountKey, w.PagingKey, *w.ClearGap).
        Update("is_gap", false).Error
      if err != nil {
        return err
      }
    }
    if w.NextKey != nil {
      return saveCursor(tx, w.AccountKey, w.PagingKey, *w.NextKey)
    }
    return nil
  })
}

func (r *CacheRepository) ClearTimeline(ctx context.Context, accountKey models.MicroBlogKey, pagingKey string) error {
  return r.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    err := tx.Where("account_key = ? AND paging_key = ?", accountKey, pagingKey).
      Delete(&models.PagingTimeline{}).Error
    if err != nil {
      return err
    }
    return tx.Where("account_key = ? AND paging_key = ?", accountKey, pagingKey).
      Delete(&models.PagingCursor{}).Error
  })
}

func (r *CacheRepository) TimelineCount(ctx context.Context, accountKey models.MicroBlogKey, pagingKey string) int64 {
  var total int64
  r.Db.WithContext(ctx).Model(&models.PagingTimeline{}).
    Where("account_key = ? AND paging_key = ?", accountKey, pagingKey).
    Count(&total)
  return total
}

func (r *CacheRepository) ExistingCount(ctx context.Context, accountKey models.MicroBlogKey, pagingKey string, keys []models.MicroBlogKey) int64 {
  var total int64
  if len(keys) == 0 {
    return total
  }
  r.Db.WithContext(ctx).Model(&models.PagingTimeline{}).
    Where("account_key = ? AND paging_key = ? AND status_key IN ?", accountKey, pagingKey, keys).
    Count(&total)
  return total
}

func (r *CacheRepository) MinSortID(ctx context.Context, accountKey models.MicroBlogKey, pagingKey string) (int64, error) {
  var min sql.NullInt64
  err := r.Db.WithContext(ctx).Model(&models.PagingTimeline{}).
    Select("MIN(sort_id)").
    Where("account_key = ? AND paging_key = ?", accountKey, pagingKey).
    Scan(&min).Error
  if err != nil {
    return 0, err
  }
  return min.Int64, nil
}

func (r *CacheRepository) TimelineItems(ctx context.Context, accountKey models.MicroBlogKey, pagingKey string, offset int, limit int) ([]*models.TimelineItem, error) {
  var entries []*models.PagingTimeline
  err := r.Db.WithContext(ctx).
    Where("account_key = ? AND paging_key = ?", accountKey, pagingKey).
    Order("sort_id DESC").
    Offset(offset).
    Limit(limit).
    Find(&entries).Error
  if err != nil {
    return nil, err
  }
  keys := make([]models.MicroBlogKey, len(entries))
  for i, entry := range entries {
    keys[i] = entry.StatusKey
  }
  details, err := r.statusDetails(ctx, accountKey, keys)
  if err != nil {
    return nil, err
  }
  items := make([]*models.TimelineItem, len(entries))
  for i, entry := range entries {
    items[i] = &models.TimelineItem{
      Paging: entry,
      Detail: details[entry.StatusKey.String()],
    }
  }
  return items, nil
}

func (r *CacheRepository) LoadStatus(ctx context.Context, accountKey models.MicroBlogKey, statusKey models.MicroBlogKey) (*models.StatusDetail, error) {
  details, err := r.statusDetails(ctx, accountKey, []models.MicroBlogKey{statusKey})
  if err != nil {
    return nil, err
  }
  detail, ok := details[statusKey.String()]
  if !ok {
    return nil, gorm.ErrRecordNotFound
  }
  return detail, nil
}

func (r *CacheRepository) SaveStatuses(ctx context.Context, bundle *models.StatusBundle) error {
  return r.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if err := saveUsers(tx, bundle.Users); err != nil {
      return err
    }
    if err := saveStatuses(tx, bundle.Statuses); err != nil {
      return err
    }
    return saveMedia(tx, bundle.Media)
  })
}

func (r *CacheRepository) SaveUsers(ctx context.Context, users []*models.User) error {
  return saveUsers(r.Db.WithContext(ctx), users)
}

func (r *CacheRepository) UsersByKeys(ctx context.Context, keys []models.MicroBlogKey) (map[string]*models.User, error) {
  users := map[string]*models.User{}
  if len(keys) == 0 {
    return users, nil
  }
  var items []*models.User
  if err := r.Db.WithContext(ctx).Where("user_key IN ?", keys).Find(&items).Error; err != nil {
    return nil, err
  }
  for _, user := range items {
    users[user.UserKey.String()] = user
  }
  return users, nil
}

func (r *CacheRepository) Cursor(ctx context.Context, accountKey models.MicroBlogKey, pagingKey string) (string, error) {
  var cursor models.PagingCursor
  err := r.Db.WithContext(ctx).
    Where("account_key = ? AND paging_key = ?", accountKey, pagingKey).
    Take(&cursor).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return "", nil
  }
  if err != nil {
    return "", err
  }
  return cursor.NextKey, nil
}

func (r *CacheRepository) SaveCursor(ctx context.Context, accountKey models.MicroBlogKey, pagingKey string, nextKey string) error {
  return saveCursor(r.Db.WithContext(ctx), accountKey, pagingKey, nextKey)
}

func (r *CacheRepository) statusDetails(ctx context.Context, accountKey models.MicroBlogKey, keys []models.MicroBlogKey) (map[string]*models.StatusDetail, error) {
  statuses := map[string]*models.Status{}
  pending := keys
  for depth := 0; depth < 3 && len(pending) > 0; depth++ {
    var items []*models.Status
    err := r.Db.WithContext(ctx).
      Where("account_key = ? AND status_key IN ?", accountKey, pending).
      Find(&items).Error
    if err != nil {
      return nil, err
    }
    pending = nil
    for _, item := range items {
      statuses[item.StatusKey.String()] = item
    }
    for _, item := range items {
      for _, key := range []models.MicroBlogKey{item.RetweetKey, item.QuoteKey} {
        if key.IsEmpty() {
          continue
        }
        if _, ok := statuses[key.String()]; !ok {
          pending = append(pending, key)
        }
      }
    }
  }

  var userKeys, statusKeys []models.MicroBlogKey
  for _, status := range statuses {
    userKeys = append(userKeys, status.UserKey)
    statusKeys = append(statusKeys, status.StatusKey)
  }
  users, err := r.UsersByKeys(ctx, userKeys)
  if err != nil {
    return nil, err
  }
  media := map[string][]*models.Media{}
  if len(statusKeys) > 0 {
    var items []*models.Media
    err = r.Db.WithContext(ctx).
      Where("belong_to_key IN ?", statusKeys).
      Order("position ASC").
      Find(&items).Error
    if err != nil {
      return nil, err
    }
    for _, item := range items {
      media[item.BelongToKey.String()] = append(media[item.BelongToKey.String()], item)
    }
  }

  var build func(key models.MicroBlogKey, depth int) *models.StatusDetail
  build = func(key models.MicroBlogKey, depth int) *models.StatusDetail {
    status, ok := statuses[key.String()]
    if !ok || depth > 2 {
      return nil
    }
    detail := &models.StatusDetail{
      Status: status,
      User:   users[status.UserKey.String()],
      Media:  media[key.String()],
    }
    if !status.RetweetKey.IsEmpty() {
      detail.Retweet = build(status.RetweetKey, depth+1)
    }
    if !status.QuoteKey.IsEmpty() {
      detail.Quote = build(status.QuoteKey, depth+1)
    }
    return detail
  }

  details := map[string]*models.StatusDetail{}
  for _, key := range keys {
    if detail := build(key, 0); detail != nil {
      details[key.String()] = detail
    }
  }
  return details, nil
}

func saveUsers(tx *gorm.DB, users []*models.User) error {
  seen := map[string]int{}
  var items []*models.User
  for _, user := range users {
    if i, ok := seen[user.UserKey.String()]; ok {
      items[i] = user
      continue
    }
    seen[user.UserKey.String()] = len(items)
    items = append(items, user)
  }
  if len(items) == 0 {
    return nil
  }
  return tx.Clauses(clause.OnConflict{
    Columns: []clause.Column{{Name: "user_key"}},
    DoUpdates: clause.AssignmentColumns([]string{
      "name",
      "screen_name",
      "acct",
      "profile_image",
      "profile_background_image",
      "html_description",
      "raw_description",
      "website",
      "location",
      "followers_count",
      "friends_count",
      "listed_count",
      "statuses_count",
      "favourites_count",
      "verified",
      "is_protected",
      "updated_at",
    }),
  }).Create(&items).Error
}

func saveStatuses(tx *gorm.DB, statuses []*models.Status) error {
  seen := map[string]int{}
  var items []*models.Status
  for _, status := range statuses {
    if i, ok := seen[status.StatusKey.String()]; ok {
      items[i] = status
      continue
    }
    seen[status.StatusKey.String()] = len(items)
    items = append(items, status)
  }
  if len(items) == 0 {
    return nil
  }
  return tx.Clauses(clause.OnConflict{
    Columns: []clause.Column{{Name: "account_key"}, {Name: "status_key"}},
    DoUpdates: clause.AssignmentColumns([]string{
      "html_text",
      "raw_text",
      "retweet_count",
      "like_count",
      "reply_count",
      "quote_count",
      "liked",
      "retweeted",
      "extra",
      "updated_at",
    }),
  }).Create(&items).Error
}

func saveMedia(tx *gorm.DB, media []*models.Media) error {
  seen := map[string]bool{}
  var owners []models.MicroBlogKey
  var items []*models.Media
  for _, item := range media {
    owner := item.BelongToKey.String()
    if !seen[owner] {
      seen[owner] = true
      owners = append(owners, item.BelongToKey)
    }
    items = append(items, item)
  }
  if len(items) == 0 {
    return nil
  }
  if err := tx.Where("belong_to_key IN ?", owners).Delete(&models.Media{}).Error; err != nil {
    return err
  }
  return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&items).Error
}

func uniqueEntries(entries []*models.PagingTimeline) []*models.PagingTimeline {
  seen := map[string]bool{}
  var items []*models.PagingTimeline
  for _, entry := range entries {
    if seen[entry.StatusKey.String()] {
      continue
    }
    seen[entry.StatusKey.String()] = true
    if entry.ID == "" {
      entry.ID = xid.New().String()
    }
    items = append(items, entry)
  }
  return items
}

func saveCursor(tx *gorm.DB, accountKey models.MicroBlogKey, pagingKey string, nextKey string) error {
  cursor := &models.PagingCursor{
    ID:         xid.New().String(),
    AccountKey: accountKey,
    PagingKey:  pagingKey,
    NextKey:    nextKey,
  }
  return tx.Clauses(clause.OnConflict{
    Columns:   []clause.Column{{Name: "account_key"}, {Name: "paging_key"}},
    DoUpdates: clause.AssignmentColumns([]string{"next_key", "updated_at"}),
  }).Create(cursor).Error
}

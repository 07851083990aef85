package repositories

import (
  "context"
  "strconv"
  "sync"

  "github.com/go-redis/redis/v8"
  "github.com/nats-io/nats.go"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/transform"
  "twiderex.local/twiderex/ui"
)

type DraftsRepository struct {
  Db    *gorm.DB
  Rdb   *redis.Client
  Nats  *nats.Conn
  once  sync.Once
  count *flow.StateFlow[int64]
}

func (r *DraftsRepository) Get(ctx context.Context, id string) (draft *ui.Draft, err error) {
  var entity *models.Draft
  err = r.Db.WithContext(ctx).Where("draft_id = ?", id).Take(&entity).Error
  if err != nil {
    return
  }
  d := transform.DraftToUi(entity)
  draft = &d
  return
}

func (r *DraftsRepository) Listings(ctx context.Context) ([]ui.Draft, error) {
  var entities []*models.Draft
  err := r.Db.WithContext(ctx).Order("timestamp DESC").Find(&entities).Error
  if err != nil {
    return nil, err
  }
  drafts := make([]ui.Draft, len(entities))
  for i, entity := range entities {
    drafts[i] = transform.DraftToUi(entity)
  }
  return drafts, nil
}

func (r *DraftsRepository) Paginate(ctx context.Context, current int, pageSize int) ([]ui.Draft, error) {
  var entities []*models.Draft
  err := r.Db.WithContext(ctx).
    Order("timestamp DESC").
    Offset((current - 1) * pageSize).
    Limit(pageSize).
    Find(&entities).Error
  if err != nil {
    return nil, err
  }
  drafts := make([]ui.Draft, len(entities))
  for i, entity := range entities {
    drafts[i] = transform.DraftToUi(entity)
  }
  return drafts, nil
}

func (r *DraftsRepository) Count(ctx context.Context) int64 {
  if r.Rdb != nil {
    if value, err := r.Rdb.Get(ctx, config.REDIS_KEY_DRAFTS_COUNT).Result(); err == nil {
      if total, err := strconv.ParseInt(value, 10, 64); err == nil {
        return total
      }
    }
  }
  var total int64
  r.Db.WithContext(ctx).Model(&models.Draft{}).Count(&total)
  if r.Rdb != nil {
    r.Rdb.Set(ctx, config.REDIS_KEY_DRAFTS_COUNT, total, 0)
  }
  return total
}

// SourceCount emits the number of drafts and follows every save and delete.
func (r *DraftsRepository) SourceCount() *flow.StateFlow[int64] {
  r.once.Do(func() {
    r.count = flow.NewStateFlow(r.Count(context.Background()))
  })
  return r.count
}

func (r *DraftsRepository) Save(ctx context.Context, draft ui.Draft) error {
  entity := transform.DraftToDb(draft)
  err := r.Db.WithContext(ctx).Clauses(clause.OnConflict{
    Columns: []clause.Column{{Name: "draft_id"}},
    DoUpdates: clause.AssignmentColumns([]string{
      "content",
      "media",
      "compose_type",
      "status_key",
      "excluded_reply_user_ids",
      "timestamp",
      "updated_at",
    }),
  }).Create(entity).Error
  if err != nil {
    return err
  }
  r.changed(ctx, draft.DraftID)
  return nil
}

func (r *DraftsRepository) Delete(ctx context.Context, id string) error {
  err := r.Db.WithContext(ctx).Where("draft_id = ?", id).Delete(&models.Draft{}).Error
  if err != nil {
    return err
  }
  r.changed(ctx, id)
  return nil
}

func (r *DraftsRepository) changed(ctx context.Context, id string) {
  if r.Rdb != nil {
    r.Rdb.Del(ctx, config.REDIS_KEY_DRAFTS_COUNT)
  }
  if r.count != nil {
    r.count.Set(r.Count(ctx))
  }
  if r.Nats != nil {
    r.Nats.Publish(config.NATS_DRAFTS_CHANGED, []byte(id))
  }
}

// Refresh re-reads the count after another process changed the drafts.
func (r *DraftsRepository) Refresh(ctx context.Context) {
  if r.count != nil {
    r.count.Set(r.Count(ctx))
  }
}

package repositories

import (
  "context"

  "gorm.io/gorm"

  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/transform"
  "twiderex.local/twiderex/ui"
)

type UsersRepository struct {
  Db *gorm.DB
}

func (r *UsersRepository) Find(ctx context.Context, userKey models.MicroBlogKey) (entity *models.User, err error) {
  err = r.Db.WithContext(ctx).Where("user_key = ?", userKey).Take(&entity).Error
  return
}

func (r *UsersRepository) GetByScreenName(ctx context.Context, host string, screenName string) (entity *models.User, err error) {
  err = r.Db.WithContext(ctx).
    Where("screen_name = ? AND user_key LIKE ?", screenName, "%@"+host).
    Take(&entity).Error
  return
}

// LookupUsersByName resolves screen names through the platform and refreshes
// the cached rows.
func (r *UsersRepository) LookupUsersByName(ctx context.Context, names []string, accountKey models.MicroBlogKey, lookup services.LookupService) ([]ui.User, error) {
  if len(names) == 0 {
    return []ui.User{}, nil
  }
  found, err := lookup.LookupUsersByName(ctx, names)
  if err != nil {
    return nil, err
  }
  entities := make([]*models.User, 0, len(found))
  users := make([]ui.User, 0, len(found))
  for _, user := range found {
    if user == nil {
      continue
    }
    entity := transform.UserToDb(user)
    entities = append(entities, entity)
    users = append(users, transform.UserToUi(entity))
  }
  if err := saveUsers(r.Db.WithContext(ctx), entities); err != nil {
    return nil, err
  }
  return users, nil
}

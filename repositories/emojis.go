package repositories

import (
  "context"
  "encoding/json"
  "fmt"
  "sort"
  "strings"
  "time"

  "github.com/agnivade/levenshtein"
  "github.com/go-redis/redis/v8"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
)

type EmojiRepository struct {
  Rdb *redis.Client
}

func (r *EmojiRepository) Get(ctx context.Context, host string, service services.EmojiService) ([]models.Emoji, error) {
  key := fmt.Sprintf(config.REDIS_KEY_EMOJIS, host)
  if r.Rdb != nil {
    if buf, err := r.Rdb.Get(ctx, key).Bytes(); err == nil {
      var emojis []models.Emoji
      if err = json.Unmarshal(buf, &emojis); err == nil {
        return emojis, nil
      }
    }
  }
  emojis, err := service.Emojis(ctx)
  if err != nil {
    return nil, err
  }
  if r.Rdb != nil {
    buf, _ := json.Marshal(emojis)
    r.Rdb.Set(ctx, key, buf, config.REDIS_EMOJIS_TTL_HOURS*time.Hour)
  }
  return emojis, nil
}

// SearchEmojis ranks shortcodes containing query first, then by edit
// distance.
func SearchEmojis(emojis []models.Emoji, query string, limit int) []models.Emoji {
  query = strings.ToLower(strings.Trim(query, ":"))
  type ranked struct {
    emoji    models.Emoji
    contains bool
    distance int
  }
  var items []ranked
  for _, emoji := range emojis {
    if !emoji.VisibleInPicker {
      continue
    }
    code := strings.ToLower(emoji.Shortcode)
    items = append(items, ranked{
      emoji:    emoji,
      contains: strings.Contains(code, query),
      distance: levenshtein.ComputeDistance(code, query),
    })
  }
  sort.SliceStable(items, func(i, j int) bool {
    if items[i].contains != items[j].contains {
      return items[i].contains
    }
    return items[i].distance < items[j].distance
  })
  if limit > 0 && len(items) > limit {
    items = items[:limit]
  }
  result := make([]models.Emoji, len(items))
  for i, item := range items {
    result[i] = item.emoji
  }
  return result
}

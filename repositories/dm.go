package repositories

import (
  "context"

  "gorm.io/gorm"
  "gorm.io/gorm/clause"

  "twiderex.local/twiderex/models"
)

func (r *CacheRepository) SaveDirectMessages(ctx context.Context, w *DirectMessageWrite) error {
  return r.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if err := saveUsers(tx, w.Users); err != nil {
      return err
    }
    var named, unnamed []*models.DMConversation
    for _, conversation := range w.Conversations {
      if conversation.ConversationName == "" {
        unnamed = append(unnamed, conversation)
      } else {
        named = append(named, conversation)
      }
    }
    if len(named) > 0 {
      err := tx.Clauses(clause.OnConflict{
        Columns: []clause.Column{{Name: "account_key"}, {Name: "conversation_key"}},
        DoUpdates: clause.AssignmentColumns([]string{
          "conversation_avatar",
          "conversation_name",
          "conversation_sub_name",
          "updated_at",
        }),
      }).Create(&named).Error
      if err != nil {
        return err
      }
    }
    // a page that did not carry the recipient keeps the cached name
    if len(unnamed) > 0 {
      err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&unnamed).Error
      if err != nil {
        return err
      }
    }
    if len(w.Events) > 0 {
      err := tx.Clauses(clause.OnConflict{
        Columns: []clause.Column{{Name: "account_key"}, {Name: "message_key"}},
        DoUpdates: clause.AssignmentColumns([]string{
          "html_text",
          "origin_text",
          "send_status",
          "updated_at",
        }),
      }).Create(&w.Events).Error
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

func (r *CacheRepository) ConversationCount(ctx context.Context, accountKey models.MicroBlogKey) int64 {
  var total int64
  r.Db.WithContext(ctx).Model(&models.DMConversation{}).
    Where("account_key = ?", accountKey).
    Count(&total)
  return total
}

type latestEvent struct {
  ConversationKey models.MicroBlogKey
  SortID          int64
}

// Conversations lists conversations ordered by their latest message.
func (r *CacheRepository) Conversations(ctx context.Context, accountKey models.MicroBlogKey, offset int, limit int) ([]*models.DMConversationDetail, error) {
  var rows []latestEvent
  err := r.Db.WithContext(ctx).Model(&models.DMEvent{}).
    Select("conversation_key, MAX(sort_id) AS sort_id").
    Where("account_key = ?", accountKey).
    Group("conversation_key").
    Order("MAX(sort_id) DESC").
    Offset(offset).
    Limit(limit).
    Scan(&rows).Error
  if err != nil {
    return nil, err
  }
  if len(rows) == 0 {
    return nil, nil
  }

  keys := make([]models.MicroBlogKey, len(rows))
  for i, row := range rows {
    keys[i] = row.ConversationKey
  }
  var conversations []*models.DMConversation
  err = r.Db.WithContext(ctx).
    Where("account_key = ? AND conversation_key IN ?", accountKey, keys).
    Find(&conversations).Error
  if err != nil {
    return nil, err
  }
  byKey := map[string]*models.DMConversation{}
  for _, conversation := range conversations {
    byKey[conversation.ConversationKey.String()] = conversation
  }

  var details []*models.DMConversationDetail
  var userKeys []models.MicroBlogKey
  for _, row := range rows {
    conversation, ok := byKey[row.ConversationKey.String()]
    if !ok {
      continue
    }
    var latest *models.DMEvent
    err = r.Db.WithContext(ctx).
      Where("account_key = ? AND conversation_key = ? AND sort_id = ?", accountKey, row.ConversationKey, row.SortID).
      Take(&latest).Error
    if err != nil {
      return nil, err
    }
    details = append(details, &models.DMConversationDetail{
      Conversation: conversation,
      Latest:       latest,
    })
    userKeys = append(userKeys, conversation.RecipientKey, latest.SenderAccountKey)
  }
  users, err := r.UsersByKeys(ctx, userKeys)
  if err != nil {
    return nil, err
  }
  for _, detail := range details {
    detail.Recipient = users[detail.Conversation.RecipientKey.String()]
    detail.Sender = users[detail.Latest.SenderAccountKey.String()]
  }
  return details, nil
}

func (r *CacheRepository) ConversationEvents(ctx context.Context, accountKey models.MicroBlogKey, conversationKey models.MicroBlogKey, offset int, limit int) ([]*models.DMEventDetail, error) {
  var events []*models.DMEvent
  err := r.Db.WithContext(ctx).
    Where("account_key = ? AND conversation_key = ?", accountKey, conversationKey).
    Order("sort_id DESC").
    Offset(offset).
    Limit(limit).
    Find(&events).Error
  if err != nil {
    return nil, err
  }
  keys := make([]models.MicroBlogKey, len(events))
  for i, event := range events {
    keys[i] = event.SenderAccountKey
  }
  users, err := r.UsersByKeys(ctx, keys)
  if err != nil {
    return nil, err
  }
  details := make([]*models.DMEventDetail, len(events))
  for i, event := range events {
    details[i] = &models.DMEventDetail{
      Event:  event,
      Sender: users[event.SenderAccountKey.String()],
    }
  }
  return details, nil
}

package transform

import (
  "sort"
  "strings"

  "github.com/rs/xid"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/ui"
)

// ConversationID is stable for the pair of participants regardless of the
// message direction.
func ConversationID(a string, b string) string {
  ids := []string{a, b}
  sort.Strings(ids)
  return strings.Join(ids, "-")
}

func DirectMessagesToDb(
  accountKey models.MicroBlogKey,
  page *services.DirectMessagePage,
) (conversations []*models.DMConversation, events []*models.DMEvent, users []*models.User) {
  known := map[string]*services.User{}
  for _, user := range page.Users {
    if user == nil {
      continue
    }
    known[user.ID] = user
    users = append(users, UserToDb(user))
  }
  seen := map[string]bool{}
  for _, event := range page.Events {
    conversationID := ConversationID(event.SenderID, event.RecipientID)
    conversationKey := models.MicroBlogKey{ID: conversationID, Host: accountKey.Host}
    recipientID := event.RecipientID
    if recipientID == accountKey.ID {
      recipientID = event.SenderID
    }
    media := make([]*models.Media, len(event.Media))
    for i, m := range event.Media {
      media[i] = MediaToDb(models.MicroBlogKey{ID: event.ID, Host: accountKey.Host}, i, m)
    }
    events = append(events, &models.DMEvent{
      ID:                  xid.New().String(),
      AccountKey:          accountKey,
      MessageKey:          models.MicroBlogKey{ID: event.ID, Host: accountKey.Host},
      ConversationKey:     conversationKey,
      MessageID:           event.ID,
      SortID:              event.CreatedAt.UnixMilli(),
      HtmlText:            event.Text,
      OriginText:          event.Text,
      CreatedTimestamp:    event.CreatedAt.UnixMilli(),
      MessageType:         "message_create",
      SenderAccountKey:    models.MicroBlogKey{ID: event.SenderID, Host: accountKey.Host},
      RecipientAccountKey: models.MicroBlogKey{ID: event.RecipientID, Host: accountKey.Host},
      Media:               common.JSON(media),
      Urls:                common.JSON(event.Urls),
    })
    if seen[conversationID] {
      continue
    }
    seen[conversationID] = true
    conversation := &models.DMConversation{
      ID:               xid.New().String(),
      AccountKey:       accountKey,
      ConversationKey:  conversationKey,
      ConversationID:   conversationID,
      ConversationType: models.DMConversationOneToOne,
      RecipientKey:     models.MicroBlogKey{ID: recipientID, Host: accountKey.Host},
    }
    if recipient, ok := known[recipientID]; ok {
      conversation.ConversationAvatar = recipient.ProfileImage
      conversation.ConversationName = recipient.Name
      conversation.ConversationSubName = recipient.ScreenName
    }
    conversations = append(conversations, conversation)
  }
  return
}

func DMEventToUi(event *models.DMEvent, sender *models.User) ui.DMEvent {
  e := ui.DMEvent{
    AccountKey:       event.AccountKey,
    MessageKey:       event.MessageKey,
    ConversationKey:  event.ConversationKey,
    SortID:           event.SortID,
    Content:          event.OriginText,
    HumanizedTime:    ui.HumanizedTimestamp(event.CreatedTimestamp),
    CreatedTimestamp: event.CreatedTimestamp,
    MessageType:      event.MessageType,
    SenderKey:        event.SenderAccountKey,
    RecipientKey:     event.RecipientAccountKey,
    SendStatus:       event.SendStatus,
    IsInCome:         event.SenderAccountKey != event.AccountKey,
  }
  var media []*models.Media
  common.FromJSON(event.Media, &media)
  e.Media = MediaToUi(media)
  common.FromJSON(event.Urls, &e.Urls)
  if sender != nil {
    user := UserToUi(sender)
    e.Sender = &user
  }
  return e
}

func DMConversationToUi(detail *models.DMConversationDetail) ui.DMConversationWithLatestMessage {
  c := detail.Conversation
  item := ui.DMConversationWithLatestMessage{
    Conversation: ui.DMConversation{
      AccountKey:      c.AccountKey,
      ConversationKey: c.ConversationKey,
      ConversationID:  c.ConversationID,
      Avatar:          c.ConversationAvatar,
      Name:            c.ConversationName,
      SubName:         c.ConversationSubName,
      Type:            c.ConversationType,
      RecipientKey:    c.RecipientKey,
    },
  }
  if detail.Recipient != nil {
    item.Conversation.Avatar = detail.Recipient.ProfileImage
    item.Conversation.Name = detail.Recipient.Name
    item.Conversation.SubName = detail.Recipient.ScreenName
  }
  if detail.Latest != nil {
    item.Latest = DMEventToUi(detail.Latest, detail.Sender)
  }
  return item
}

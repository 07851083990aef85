package transform

import (
  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/ui"
)

func DraftToDb(draft ui.Draft) *models.Draft {
  m := &models.Draft{
    DraftID:     draft.DraftID,
    Content:     draft.Content,
    Media:       common.JSON(draft.Media),
    ComposeType: draft.ComposeType,
    Timestamp:   draft.CreatedAt,
  }
  if draft.StatusKey != nil {
    m.StatusKey = draft.StatusKey.String()
  }
  if draft.ExcludedReplyUserIds != nil {
    m.ExcludedReplyUserIds = common.JSON(draft.ExcludedReplyUserIds)
  }
  return m
}

func DraftToUi(draft *models.Draft) ui.Draft {
  d := ui.Draft{
    DraftID:     draft.DraftID,
    Content:     draft.Content,
    CreatedAt:   draft.Timestamp,
    ComposeType: draft.ComposeType,
  }
  common.FromJSON(draft.Media, &d.Media)
  common.FromJSON(draft.ExcludedReplyUserIds, &d.ExcludedReplyUserIds)
  if draft.StatusKey != "" {
    key := models.ValueOf(draft.StatusKey)
    d.StatusKey = &key
  }
  return d
}

package actions

import (
  "context"
  "time"

  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/ui"
)

type DraftAction interface {
  Save(ctx context.Context, data *models.ComposeData) error
}

type RepositoryDraftAction struct {
  Repository *repositories.DraftsRepository
}

func (a *RepositoryDraftAction) Save(ctx context.Context, data *models.ComposeData) error {
  return a.Repository.Save(ctx, ComposeDataToDraft(data))
}

func ComposeDataToDraft(data *models.ComposeData) ui.Draft {
  return ui.Draft{
    DraftID:              data.DraftID,
    Content:              data.Content,
    Media:                data.Images,
    CreatedAt:            time.Now().UnixMilli(),
    ComposeType:          data.ComposeType,
    StatusKey:            data.StatusKey,
    ExcludedReplyUserIds: data.ExcludedReplyUserIds,
  }
}

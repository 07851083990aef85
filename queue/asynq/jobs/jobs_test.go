package jobs

import (
  "encoding/json"
  "testing"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
)

func TestComposeCommit(t *testing.T) {
  statusKey := models.Twitter("42")
  data := &models.ComposeData{
    AccountKey:  models.Twitter("1"),
    Content:     "hello",
    DraftID:     "draft",
    ComposeType: models.ComposeReply,
    StatusKey:   &statusKey,
  }
  task, err := (&Compose{}).Commit(data)
  require.NoError(t, err)
  require.Equal(t, config.ASYNQ_JOBS_COMPOSE_COMMIT, task.Type())

  var payload models.ComposeData
  require.NoError(t, json.Unmarshal(task.Payload(), &payload))
  require.Equal(t, *data, payload)
}

func TestTimelinesRefresh(t *testing.T) {
  key := models.MicroBlogKey{ID: "7", Host: "mastodon.social"}
  task, err := (&Timelines{}).Refresh(key)
  require.NoError(t, err)
  require.Equal(t, config.ASYNQ_JOBS_TIMELINES_REFRESH, task.Type())

  var payload TimelinesRefreshPayload
  require.NoError(t, json.Unmarshal(task.Payload(), &payload))
  require.Equal(t, key, payload.AccountKey)
}

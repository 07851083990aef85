package workers

import (
  "context"
  "encoding/json"
  "fmt"
  "log"
  "time"

  "github.com/hibiken/asynq"

  "twiderex.local/twiderex/actions"
  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/transform"
)

type Compose struct {
  AnsqContext        *common.AnsqServerContext
  AccountsRepository *repositories.AccountsRepository
  DraftsRepository   *repositories.DraftsRepository
  Cache              *repositories.CacheRepository
  DraftAction        actions.DraftAction
  Notification       *actions.InAppNotification
}

func NewCompose(ansqContext *common.AnsqServerContext) *Compose {
  h := &Compose{
    AnsqContext: ansqContext,
  }
  h.AccountsRepository = &repositories.AccountsRepository{
    Db:     h.AnsqContext.Db,
    Secret: common.GetEnvString("TWIDEREX_SECRET"),
  }
  h.DraftsRepository = &repositories.DraftsRepository{
    Db:   h.AnsqContext.Db,
    Rdb:  h.AnsqContext.Rdb,
    Nats: h.AnsqContext.Nats,
  }
  h.Cache = &repositories.CacheRepository{
    Db: h.AnsqContext.Db,
  }
  h.DraftAction = &actions.RepositoryDraftAction{
    Repository: h.DraftsRepository,
  }
  h.Notification = actions.NewInAppNotification(h.AnsqContext.Nats)
  return h
}

// Commit posts the status. A failed post is kept as a draft and reported
// without failing the task. Only a lock store failure fails the task so asynq
// retries it; on the last attempt the post is kept as a draft too.
func (h *Compose) Commit(ctx context.Context, t *asynq.Task) error {
  var data models.ComposeData
  if err := json.Unmarshal(t.Payload(), &data); err != nil {
    log.Println("compose payload error:", err)
    return nil
  }

  mutex := common.NewMutex(
    h.AnsqContext.Rdb,
    h.AnsqContext.Ctx,
    fmt.Sprintf(config.LOCKS_COMPOSE_COMMIT, data.DraftID),
  )
  locked, err := mutex.TryLock(time.Duration(config.LOCKS_COMPOSE_TTL) * time.Second)
  if err != nil {
    err = fmt.Errorf("compose lock %s: %w", data.DraftID, err)
    if lastAttempt(ctx) {
      h.failed(ctx, &data, err)
      return nil
    }
    return err
  }
  if !locked {
    log.Println("compose already committing:", data.DraftID)
    return nil
  }
  defer mutex.Unlock()

  status, err := h.commit(ctx, &data)
  if err != nil {
    h.failed(ctx, &data, err)
    return nil
  }

  if err := h.Cache.SaveStatuses(ctx, transform.StatusToDb(data.AccountKey, status)); err != nil {
    log.Println("compose cache error:", err)
  }
  if err := h.DraftsRepository.Delete(ctx, data.DraftID); err != nil {
    log.Println("compose draft delete error:", data.DraftID, err)
  }
  h.published(&data, status)
  h.Notification.Show("status sent")
  return nil
}

func (h *Compose) failed(ctx context.Context, data *models.ComposeData, err error) {
  log.Println("compose commit error:", data.DraftID, err)
  if err := h.DraftAction.Save(ctx, data); err != nil {
    log.Println("compose draft save error:", data.DraftID, err)
  }
  h.Notification.NotifyError(err)
}

// lastAttempt is true outside asynq too, where nothing would retry.
func lastAttempt(ctx context.Context) bool {
  retried, ok := asynq.GetRetryCount(ctx)
  if !ok {
    return true
  }
  max, ok := asynq.GetMaxRetry(ctx)
  return !ok || retried >= max
}

func (h *Compose) commit(ctx context.Context, data *models.ComposeData) (*services.Status, error) {
  account, err := h.AccountsRepository.Find(ctx, data.AccountKey)
  if err != nil {
    return nil, err
  }
  details, err := h.AccountsRepository.Details(ctx, account)
  if err != nil {
    return nil, err
  }
  return actions.Publish(ctx, details.Service, data)
}

func (h *Compose) published(data *models.ComposeData, status *services.Status) {
  if h.AnsqContext.Nats == nil {
    return
  }
  payload, err := json.Marshal(&models.ComposeResult{
    AccountKey:   data.AccountKey,
    DraftID:      data.DraftID,
    StatusKey:    status.Key(),
    IsThreadMode: data.IsThreadMode,
  })
  if err != nil {
    return
  }
  h.AnsqContext.Nats.Publish(config.NATS_COMPOSE_COMMITTED, payload)
}

func (h *Compose) Register() error {
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_COMPOSE_COMMIT, h.Commit)
  return nil
}

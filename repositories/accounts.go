package repositories

import (
  "context"
  "encoding/json"
  "errors"
  "sync"
  "time"

  "github.com/rs/xid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/services/mastodon"
  "twiderex.local/twiderex/services/twitter"
  "twiderex.local/twiderex/transform"
  "twiderex.local/twiderex/ui"
)

var ErrAccountSecretEmpty = errors.New("account secret is empty")

type AccountCredentials struct {
  AccessToken string `json:"access_token"`
}

type AccountDetails struct {
  AccountKey models.MicroBlogKey
  Type       models.PlatformType
  Host       string
  User       ui.User
  Service    services.MicroBlogService
}

type AccountsRepository struct {
  Db     *gorm.DB
  Secret string
  once   sync.Once
  active *flow.StateFlow[*AccountDetails]
}

func (r *AccountsRepository) Find(ctx context.Context, accountKey models.MicroBlogKey) (entity *models.Account, err error) {
  err = r.Db.WithContext(ctx).Where("account_key = ?", accountKey).Take(&entity).Error
  return
}

func (r *AccountsRepository) Listings(ctx context.Context) ([]*models.Account, error) {
  var accounts []*models.Account
  err := r.Db.WithContext(ctx).Order("last_active DESC").Find(&accounts).Error
  return accounts, err
}

func (r *AccountsRepository) Active(ctx context.Context) (entity *models.Account, err error) {
  err = r.Db.WithContext(ctx).Order("last_active DESC").Take(&entity).Error
  return
}

// Add verifies the access token against the platform and stores the sealed
// credentials.
func (r *AccountsRepository) Add(ctx context.Context, platform models.PlatformType, host string, accessToken string) (*models.Account, error) {
  if r.Secret == "" {
    return nil, ErrAccountSecretEmpty
  }
  service, err := NewService(platform, host, accessToken)
  if err != nil {
    return nil, err
  }
  user, err := service.VerifyCredentials(ctx)
  if err != nil {
    return nil, err
  }
  buf, _ := json.Marshal(&AccountCredentials{AccessToken: accessToken})
  credentials, err := common.Seal(r.Secret, buf)
  if err != nil {
    return nil, err
  }
  account := &models.Account{
    ID:           xid.New().String(),
    AccountKey:   user.Key(),
    Type:         platform,
    Host:         host,
    Credentials:  credentials,
    ScreenName:   user.ScreenName,
    Name:         user.Name,
    ProfileImage: user.ProfileImage,
    LastActive:   time.Now().UnixMilli(),
  }
  err = r.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if err := saveUsers(tx, []*models.User{transform.UserToDb(user)}); err != nil {
      return err
    }
    return tx.Clauses(clause.OnConflict{
      Columns: []clause.Column{{Name: "account_key"}},
      DoUpdates: clause.AssignmentColumns([]string{
        "host",
        "credentials",
        "screen_name",
        "name",
        "profile_image",
        "last_active",
        "updated_at",
      }),
    }).Create(account).Error
  })
  if err != nil {
    return nil, err
  }
  r.refresh(ctx)
  return account, nil
}

func (r *AccountsRepository) Activate(ctx context.Context, accountKey models.MicroBlogKey) error {
  result := r.Db.WithContext(ctx).Model(&models.Account{}).
    Where("account_key = ?", accountKey).
    Update("last_active", time.Now().UnixMilli())
  if result.Error != nil {
    return result.Error
  }
  if result.RowsAffected == 0 {
    return gorm.ErrRecordNotFound
  }
  r.refresh(ctx)
  return nil
}

func (r *AccountsRepository) Delete(ctx context.Context, accountKey models.MicroBlogKey) error {
  err := r.Db.WithContext(ctx).Where("account_key = ?", accountKey).Delete(&models.Account{}).Error
  if err != nil {
    return err
  }
  r.refresh(ctx)
  return nil
}

func (r *AccountsRepository) Details(ctx context.Context, account *models.Account) (*AccountDetails, error) {
  buf, err := common.Open(r.Secret, account.Credentials)
  if err != nil {
    return nil, err
  }
  var credentials AccountCredentials
  if err = json.Unmarshal(buf, &credentials); err != nil {
    return nil, err
  }
  service, err := NewService(account.Type, account.Host, credentials.AccessToken)
  if err != nil {
    return nil, err
  }
  details := &AccountDetails{
    AccountKey: account.AccountKey,
    Type:       account.Type,
    Host:       account.Host,
    Service:    service,
    User: ui.User{
      UserKey:      account.AccountKey,
      ID:           account.AccountKey.ID,
      Name:         account.Name,
      ScreenName:   account.ScreenName,
      ProfileImage: account.ProfileImage,
      Platform:     account.Type,
    },
  }
  var user *models.User
  if err := r.Db.WithContext(ctx).Where("user_key = ?", account.AccountKey).Take(&user).Error; err == nil {
    details.User = transform.UserToUi(user)
  }
  return details, nil
}

// ActiveAccount emits the most recently activated account, or nil when none
// is signed in.
func (r *AccountsRepository) ActiveAccount() *flow.StateFlow[*AccountDetails] {
  r.once.Do(func() {
    r.active = flow.NewStateFlow[*AccountDetails](nil)
    r.refresh(context.Background())
  })
  return r.active
}

func (r *AccountsRepository) refresh(ctx context.Context) {
  if r.active == nil {
    return
  }
  account, err := r.Active(ctx)
  if err != nil {
    r.active.Set(nil)
    return
  }
  details, err := r.Details(ctx, account)
  if err != nil {
    r.active.Set(nil)
    return
  }
  r.active.Set(details)
}

func NewService(platform models.PlatformType, host string, accessToken string) (services.MicroBlogService, error) {
  switch platform {
  case models.PlatformTwitter:
    return twitter.New(accessToken), nil
  case models.PlatformMastodon:
    return mastodon.New(host, accessToken), nil
  }
  return nil, services.ErrUnsupported
}

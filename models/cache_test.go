package models_test

import (
  "testing"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/models"
)

func TestCacheResetKeepsAccountsAndDrafts(t *testing.T) {
  db, err := common.NewSqliteDB(":memory:")
  require.NoError(t, err)
  cache := models.NewCache()
  require.NoError(t, cache.AutoMigrate(db))

  require.NoError(t, db.Create(&models.Draft{DraftID: "d1", Content: "keep"}).Error)
  require.NoError(t, db.Create(&models.PagingCursor{
    ID:         "c1",
    AccountKey: models.Twitter("1"),
    PagingKey:  "search:cat",
    NextKey:    "next",
  }).Error)

  require.NoError(t, cache.Reset(db))

  var drafts, cursors int64
  require.NoError(t, db.Model(&models.Draft{}).Count(&drafts).Error)
  require.NoError(t, db.Model(&models.PagingCursor{}).Count(&cursors).Error)
  require.Equal(t, int64(1), drafts)
  require.Equal(t, int64(0), cursors)
}

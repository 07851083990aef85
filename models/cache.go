package models

import (
  "gorm.io/gorm"
)

type Cache struct{}

func NewCache() *Cache {
  return &Cache{}
}

// Refreshable lists the tables rebuilt from the network on refresh.
func (m *Cache) Refreshable() []interface{} {
  return []interface{}{
    &User{},
    &Status{},
    &Media{},
    &PagingTimeline{},
    &PagingCursor{},
    &DMConversation{},
    &DMEvent{},
  }
}

func (m *Cache) AutoMigrate(db *gorm.DB) error {
  tables := append([]interface{}{&Account{}, &Draft{}}, m.Refreshable()...)
  return db.AutoMigrate(tables...)
}

// Reset drops the refreshable tables and recreates them. Accounts and drafts
// are kept.
func (m *Cache) Reset(db *gorm.DB) error {
  if err := db.Migrator().DropTable(m.Refreshable()...); err != nil {
    return err
  }
  return m.AutoMigrate(db)
}

package common

import (
  "context"
  "database/sql"
  "errors"
  "fmt"
  "log"
  "time"

  "gorm.io/driver/mysql"
  "gorm.io/driver/postgres"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  "gorm.io/gorm/logger"
)

const dbOpenAttempts = 3

var (
  dbPool *sql.DB
)

func NewDBPool(driver string) *sql.DB {
  if dbPool != nil {
    return dbPool
  }
  pool, err := sql.Open(driver, GetEnvString("DB_DSN"))
  if err != nil {
    panic(err)
  }
  maxOpen := GetEnvInt("DB_MAX_OPEN_CONNS")
  if maxOpen == 0 {
    maxOpen = 20
  }
  pool.SetMaxOpenConns(maxOpen)
  pool.SetMaxIdleConns(maxOpen / 2)
  pool.SetConnMaxLifetime(5 * time.Minute)
  dbPool = pool
  return dbPool
}

func dialector(driver string) (gorm.Dialector, error) {
  switch driver {
  case "postgres":
    return postgres.New(postgres.Config{Conn: NewDBPool("pgx")}), nil
  case "mysql":
    return mysql.New(mysql.Config{Conn: NewDBPool("mysql")}), nil
  }
  return nil, fmt.Errorf("db driver not supported: %v", driver)
}

// NewDB opens the cache database named by DB_DRIVER. Postgres and mysql share
// one *sql.DB pool per process; sqlite opens DB_DSN as a file.
func NewDB() *gorm.DB {
  driver := GetEnvStringOr("DB_DRIVER", "postgres")
  if driver == "sqlite" {
    db, err := NewSqliteDB(GetEnvStringOr("DB_DSN", "twiderex.db"))
    if err != nil {
      panic(err)
    }
    return db
  }

  d, err := dialector(driver)
  if err != nil {
    panic(err)
  }
  for attempt := 1; ; attempt++ {
    db, err := gorm.Open(d, &gorm.Config{})
    if err == nil {
      return db
    }
    if !errors.Is(err, context.DeadlineExceeded) || attempt == dbOpenAttempts {
      panic(err)
    }
    log.Println("db open timeout, retrying", attempt)
    time.Sleep(time.Duration(attempt) * time.Second)
  }
}

// NewSqliteDB keeps a single connection so ":memory:" databases survive
// between queries.
func NewSqliteDB(dsn string) (*gorm.DB, error) {
  db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
    Logger: logger.Default.LogMode(logger.Silent),
  })
  if err != nil {
    return nil, err
  }
  pool, err := db.DB()
  if err != nil {
    return nil, err
  }
  pool.SetMaxOpenConns(1)
  return db, nil
}

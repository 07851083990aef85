package common

import (
  "testing"

  "github.com/stretchr/testify/require"
)

func TestAsynqQueues(t *testing.T) {
  queues := asynqQueues([]string{"compose,6", "timelines", "bad,x", " ,3", "low,0"})
  require.Equal(t, map[string]int{
    "compose":   6,
    "timelines": 1,
    "bad":       1,
    "low":       1,
  }, queues)
}

func TestGetEnvArray(t *testing.T) {
  t.Setenv("TWIDEREX_TEST_ARRAY", "compose,6; timelines;;")
  require.Equal(t, []string{"compose,6", "timelines"}, GetEnvArray("TWIDEREX_TEST_ARRAY"))

  t.Setenv("TWIDEREX_TEST_ARRAY", "")
  require.Nil(t, GetEnvArray("TWIDEREX_TEST_ARRAY"))
}

func TestNewSqliteDB(t *testing.T) {
  db, err := NewSqliteDB(":memory:")
  require.NoError(t, err)
  pool, err := db.DB()
  require.NoError(t, err)
  require.Equal(t, 1, pool.Stats().MaxOpenConnections)
}

package preferences

import (
  "fmt"
  "os"
  "path/filepath"
  "sync"

  "github.com/spf13/viper"

  "twiderex.local/twiderex/flow"
)

type section interface {
  settings() map[string]interface{}
}

// file is one TOML document shared by every data store of a holder.
type file struct {
  mu   sync.Mutex
  v    *viper.Viper
  path string
}

func (f *file) write() error {
  if f.path == "" {
    return nil
  }
  if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
    return fmt.Errorf("mkdir preferences dir: %w", err)
  }
  if err := f.v.WriteConfigAs(f.path); err != nil {
    return fmt.Errorf("write preferences: %w", err)
  }
  return nil
}

type DataStore[T section] struct {
  key  string
  file *file
  data *flow.StateFlow[T]
}

func setDefaults(v *viper.Viper, key string, defaults section) {
  for name, value := range defaults.settings() {
    v.SetDefault(key+"."+name, value)
  }
}

func newDataStore[T section](f *file, key string, value T) *DataStore[T] {
  return &DataStore[T]{
    key:  key,
    file: f,
    data: flow.NewStateFlow(value),
  }
}

func (s *DataStore[T]) Data() *flow.StateFlow[T] {
  return s.data
}

func (s *DataStore[T]) UpdateData(fn func(T) T) (T, error) {
  s.file.mu.Lock()
  defer s.file.mu.Unlock()
  value := fn(s.data.Value())
  for name, setting := range value.settings() {
    s.file.v.Set(s.key+"."+name, setting)
  }
  if err := s.file.write(); err != nil {
    return s.data.Value(), err
  }
  s.data.Set(value)
  return value, nil
}

type document struct {
  Appearance AppearancePreferences `mapstructure:"appearance"`
  Display    DisplayPreferences    `mapstructure:"display"`
}

type Holder struct {
  AppearancePreferences *DataStore[AppearancePreferences]
  DisplayPreferences    *DataStore[DisplayPreferences]
}

// NewHolder reads preferences from path. An empty path keeps them in memory.
func NewHolder(path string) (*Holder, error) {
  v := viper.New()
  v.SetConfigType("toml")
  if path != "" {
    v.SetConfigFile(path)
    if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
      if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
        return nil, fmt.Errorf("read preferences: %w", err)
      }
    }
  }
  setDefaults(v, "appearance", DefaultAppearance())
  setDefaults(v, "display", DefaultDisplay())
  var doc document
  if err := v.Unmarshal(&doc); err != nil {
    return nil, fmt.Errorf("unmarshal preferences: %w", err)
  }
  f := &file{v: v, path: path}
  return &Holder{
    AppearancePreferences: newDataStore(f, "appearance", doc.Appearance),
    DisplayPreferences:    newDataStore(f, "display", doc.Display),
  }, nil
}

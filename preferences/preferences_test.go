package preferences

import (
  "os"
  "path/filepath"
  "testing"

  "github.com/stretchr/testify/require"
)

func TestNewHolderDefaults(t *testing.T) {
  holder, err := NewHolder("")
  require.NoError(t, err)
  require.Equal(t, DefaultAppearance(), holder.AppearancePreferences.Data().Value())
  require.Equal(t, DefaultDisplay(), holder.DisplayPreferences.Data().Value())

  value, err := holder.DisplayPreferences.UpdateData(func(p DisplayPreferences) DisplayPreferences {
    p.FontScale = 1.5
    return p
  })
  require.NoError(t, err)
  require.Equal(t, 1.5, value.FontScale)
  require.Equal(t, 1.5, holder.DisplayPreferences.Data().Value().FontScale)
}

func TestHolderPersists(t *testing.T) {
  path := filepath.Join(t.TempDir(), "prefs", "preferences.toml")

  holder, err := NewHolder(path)
  require.NoError(t, err)
  _, err = holder.AppearancePreferences.UpdateData(func(p AppearancePreferences) AppearancePreferences {
    p.Theme = ThemeDark
    p.PrimaryColorIndex = 2
    return p
  })
  require.NoError(t, err)
  _, err = holder.DisplayPreferences.UpdateData(func(p DisplayPreferences) DisplayPreferences {
    p.AvatarStyle = AvatarStyleSquare
    return p
  })
  require.NoError(t, err)
  _, err = os.Stat(path)
  require.NoError(t, err)

  reopened, err := NewHolder(path)
  require.NoError(t, err)
  appearance := reopened.AppearancePreferences.Data().Value()
  require.Equal(t, ThemeDark, appearance.Theme)
  require.Equal(t, 2, appearance.PrimaryColorIndex)
  require.True(t, appearance.HideFabWhenScroll)
  require.Equal(t, AvatarStyleSquare, reopened.DisplayPreferences.Data().Value().AvatarStyle)
}

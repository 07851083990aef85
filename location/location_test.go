package location

import (
  "testing"

  "github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
  location, err := Parse(" 35.6895, 139.6917 ")
  require.NoError(t, err)
  require.Equal(t, &Location{Latitude: 35.6895, Longitude: 139.6917}, location)

  location, err = Parse("")
  require.NoError(t, err)
  require.Nil(t, location)

  _, err = Parse("35.6895")
  require.Error(t, err)
  _, err = Parse("95,10")
  require.Error(t, err)
}

func TestStaticProvider(t *testing.T) {
  fixed := &Location{Latitude: 1, Longitude: 2}
  provider := NewStaticProvider(fixed)
  require.Nil(t, provider.Location().Value())

  provider.Enable()
  provider.Enable()
  require.Equal(t, fixed, provider.Location().Value())

  provider.Disable()
  require.Equal(t, fixed, provider.Location().Value())
  provider.Disable()
  require.Nil(t, provider.Location().Value())
  provider.Disable()
  require.Nil(t, provider.Location().Value())
}

package presenters

import (
  "context"
  "testing"
  "time"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/preferences"
)

func TestParseAppearanceEvent(t *testing.T) {
  tests := []struct {
    payload string
    want    AppearanceEvent
  }{
    {`{"type":"show_primary_color_dialog"}`, ShowPrimaryColorDialog{}},
    {`{"type":"hide_primary_color_dialog"}`, HidePrimaryColorDialog{}},
    {`{"type":"select_primary_color","value":3}`, SelectPrimaryColor{Color: 3}},
    {`{"type":"set_tab_position","value":"top"}`, SetTabPosition{Position: preferences.TabPositionTop}},
    {`{"type":"set_theme","value":"dark"}`, SetTheme{Theme: preferences.ThemeDark}},
    {`{"type":"set_hide_tab_bar_when_scrolling","value":true}`, SetHideTabBarWhenScrolling{Hide: true}},
    {`{"type":"set_hide_fab_when_scrolling","value":false}`, SetHideFabWhenScrolling{Hide: false}},
    {`{"type":"set_hide_app_bar_when_scrolling","value":true}`, SetHideAppBarWhenScrolling{Hide: true}},
    {`{"type":"set_is_dark_mode_pure_black","value":true}`, SetIsDarkModePureBlack{IsDarkModePureBlack: true}},
  }
  for _, tt := range tests {
    event, err := ParseAppearanceEvent([]byte(tt.payload))
    require.NoError(t, err, tt.payload)
    require.Equal(t, tt.want, event)
  }

  for _, payload := range []string{
    `{"type":"set_theme","value":"sepia"}`,
    `{"type":"set_tab_position","value":"left"}`,
    `{"type":"unknown"}`,
  } {
    _, err := ParseAppearanceEvent([]byte(payload))
    require.Error(t, err, payload)
  }
}

func TestReduceAppearance(t *testing.T) {
  prefs := preferences.DefaultAppearance()
  prefs = ReduceAppearance(prefs, SetTheme{Theme: preferences.ThemeLight})
  prefs = ReduceAppearance(prefs, SelectPrimaryColor{Color: 5})
  prefs = ReduceAppearance(prefs, SetHideFabWhenScrolling{Hide: false})
  prefs = ReduceAppearance(prefs, ShowPrimaryColorDialog{})

  want := preferences.DefaultAppearance()
  want.Theme = preferences.ThemeLight
  want.PrimaryColorIndex = 5
  want.HideFabWhenScroll = false
  require.Equal(t, want, prefs)
}

func TestAppearancePresenter(t *testing.T) {
  ctx, cancel := context.WithCancel(context.Background())
  defer cancel()

  holder, err := preferences.NewHolder("")
  require.NoError(t, err)
  events := make(chan AppearanceEvent)
  state := AppearancePresenter(ctx, events, holder)
  require.False(t, state.Value().ShowPrimaryColorDialog)

  events <- ShowPrimaryColorDialog{}
  require.Eventually(t, func() bool {
    return state.Value().ShowPrimaryColorDialog
  }, time.Second, 10*time.Millisecond)

  events <- SetIsDarkModePureBlack{IsDarkModePureBlack: true}
  require.Eventually(t, func() bool {
    return state.Value().Appearance.IsDarkModePureBlack
  }, time.Second, 10*time.Millisecond)
  require.True(t, holder.AppearancePreferences.Data().Value().IsDarkModePureBlack)
}

func TestAppearanceRequestReplies(t *testing.T) {
  ctx, cancel := context.WithCancel(context.Background())
  defer cancel()

  holder, err := preferences.NewHolder("")
  require.NoError(t, err)
  events := make(chan AppearanceEvent)
  AppearancePresenter(ctx, events, holder)

  reply := make(chan AppearanceState, 1)
  events <- AppearanceRequest{Event: SetTheme{Theme: preferences.ThemeDark}, Reply: reply}
  state := <-reply
  require.Equal(t, preferences.ThemeDark, state.Appearance.Theme)
  require.False(t, state.ShowPrimaryColorDialog)

  events <- AppearanceRequest{Event: ShowPrimaryColorDialog{}, Reply: reply}
  state = <-reply
  require.True(t, state.ShowPrimaryColorDialog)
  require.Equal(t, preferences.ThemeDark, state.Appearance.Theme)
}

func TestSettings(t *testing.T) {
  sections := Settings()
  require.Len(t, sections, 3)
  require.Equal(t, RouteSettingsAppearance, sections[1].Items[0].Route)
}

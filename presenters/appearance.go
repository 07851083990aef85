package presenters

import (
  "context"
  "fmt"
  "log"

  "github.com/tidwall/gjson"

  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/preferences"
)

type AppearanceEvent interface {
  appearanceEvent()
}

type ShowPrimaryColorDialog struct{}

type HidePrimaryColorDialog struct{}

type SelectPrimaryColor struct {
  Color int
}

type SetTabPosition struct {
  Position preferences.TabPosition
}

type SetTheme struct {
  Theme preferences.Theme
}

type SetHideTabBarWhenScrolling struct {
  Hide bool
}

type SetHideFabWhenScrolling struct {
  Hide bool
}

type SetHideAppBarWhenScrolling struct {
  Hide bool
}

type SetIsDarkModePureBlack struct {
  IsDarkModePureBlack bool
}

// AppearanceRequest wraps an event and receives the state produced by it.
type AppearanceRequest struct {
  Event AppearanceEvent
  Reply chan<- AppearanceState
}

func (AppearanceRequest) appearanceEvent()         {}
func (ShowPrimaryColorDialog) appearanceEvent()     {}
func (HidePrimaryColorDialog) appearanceEvent()     {}
func (SelectPrimaryColor) appearanceEvent()         {}
func (SetTabPosition) appearanceEvent()             {}
func (SetTheme) appearanceEvent()                   {}
func (SetHideTabBarWhenScrolling) appearanceEvent() {}
func (SetHideFabWhenScrolling) appearanceEvent()    {}
func (SetHideAppBarWhenScrolling) appearanceEvent() {}
func (SetIsDarkModePureBlack) appearanceEvent()     {}

type AppearanceState struct {
  ShowPrimaryColorDialog bool                              `json:"show_primary_color_dialog"`
  Appearance             preferences.AppearancePreferences `json:"appearance"`
}

// ReduceAppearance applies a preference event. Dialog events leave the
// preferences untouched.
func ReduceAppearance(prefs preferences.AppearancePreferences, event AppearanceEvent) preferences.AppearancePreferences {
  switch e := event.(type) {
  case SelectPrimaryColor:
    prefs.PrimaryColorIndex = e.Color
  case SetTabPosition:
    prefs.TabPosition = e.Position
  case SetTheme:
    prefs.Theme = e.Theme
  case SetHideTabBarWhenScrolling:
    prefs.HideTabBarWhenScroll = e.Hide
  case SetHideFabWhenScrolling:
    prefs.HideFabWhenScroll = e.Hide
  case SetHideAppBarWhenScrolling:
    prefs.HideAppBarWhenScroll = e.Hide
  case SetIsDarkModePureBlack:
    prefs.IsDarkModePureBlack = e.IsDarkModePureBlack
  }
  return prefs
}

// AppearancePresenter folds events into the stored appearance preferences
// until ctx is done or events is closed. An AppearanceRequest gets the state
// right after its event is applied, without waiting for the returned flow.
func AppearancePresenter(ctx context.Context, events <-chan AppearanceEvent, holder *preferences.Holder) *flow.StateFlow[AppearanceState] {
  dialog := flow.NewStateFlow(false)
  store := holder.AppearancePreferences
  state := flow.Combine(ctx, dialog, store.Data(), func(show bool, appearance preferences.AppearancePreferences) AppearanceState {
    return AppearanceState{
      ShowPrimaryColorDialog: show,
      Appearance:             appearance,
    }
  })
  current := func() AppearanceState {
    return AppearanceState{
      ShowPrimaryColorDialog: dialog.Value(),
      Appearance:             store.Data().Value(),
    }
  }
  apply := func(event AppearanceEvent) {
    switch event.(type) {
    case ShowPrimaryColorDialog:
      dialog.Set(true)
    case HidePrimaryColorDialog:
      dialog.Set(false)
    default:
      _, err := store.UpdateData(func(prefs preferences.AppearancePreferences) preferences.AppearancePreferences {
        return ReduceAppearance(prefs, event)
      })
      if err != nil {
        log.Println("appearance update error:", err)
      }
    }
  }
  go func() {
    for {
      select {
      case <-ctx.Done():
        return
      case event, ok := <-events:
        if !ok {
          return
        }
        request, isRequest := event.(AppearanceRequest)
        if !isRequest {
          apply(event)
          continue
        }
        apply(request.Event)
        select {
        case request.Reply <- current():
        case <-ctx.Done():
          return
        }
      }
    }
  }()
  return state
}

// ParseAppearanceEvent reads {"type": "...", "value": ...} as sent by the
// settings API.
func ParseAppearanceEvent(payload []byte) (AppearanceEvent, error) {
  body := gjson.ParseBytes(payload)
  value := body.Get("value")
  switch kind := body.Get("type").String(); kind {
  case "show_primary_color_dialog":
    return ShowPrimaryColorDialog{}, nil
  case "hide_primary_color_dialog":
    return HidePrimaryColorDialog{}, nil
  case "select_primary_color":
    return SelectPrimaryColor{Color: int(value.Int())}, nil
  case "set_tab_position":
    position := preferences.TabPosition(value.String())
    if position != preferences.TabPositionTop && position != preferences.TabPositionBottom {
      return nil, fmt.Errorf("invalid tab position: %s", value.String())
    }
    return SetTabPosition{Position: position}, nil
  case "set_theme":
    theme := preferences.Theme(value.String())
    if theme != preferences.ThemeAuto && theme != preferences.ThemeLight && theme != preferences.ThemeDark {
      return nil, fmt.Errorf("invalid theme: %s", value.String())
    }
    return SetTheme{Theme: theme}, nil
  case "set_hide_tab_bar_when_scrolling":
    return SetHideTabBarWhenScrolling{Hide: value.Bool()}, nil
  case "set_hide_fab_when_scrolling":
    return SetHideFabWhenScrolling{Hide: value.Bool()}, nil
  case "set_hide_app_bar_when_scrolling":
    return SetHideAppBarWhenScrolling{Hide: value.Bool()}, nil
  case "set_is_dark_mode_pure_black":
    return SetIsDarkModePureBlack{IsDarkModePureBlack: value.Bool()}, nil
  default:
    return nil, fmt.Errorf("unknown appearance event: %s", kind)
  }
}

package preferences

type Theme string

const (
  ThemeAuto  Theme = "auto"
  ThemeLight Theme = "light"
  ThemeDark  Theme = "dark"
)

type TabPosition string

const (
  TabPositionTop    TabPosition = "top"
  TabPositionBottom TabPosition = "bottom"
)

type AvatarStyle string

const (
  AvatarStyleRound  AvatarStyle = "round"
  AvatarStyleSquare AvatarStyle = "square"
)

type AutoPlayback string

const (
  AutoPlaybackAuto   AutoPlayback = "auto"
  AutoPlaybackAlways AutoPlayback = "always"
  AutoPlaybackOff    AutoPlayback = "off"
)

type AppearancePreferences struct {
  Theme                Theme       `mapstructure:"theme" json:"theme"`
  PrimaryColorIndex    int         `mapstructure:"primary_color_index" json:"primary_color_index"`
  TabPosition          TabPosition `mapstructure:"tab_position" json:"tab_position"`
  HideTabBarWhenScroll bool        `mapstructure:"hide_tab_bar_when_scroll" json:"hide_tab_bar_when_scroll"`
  HideFabWhenScroll    bool        `mapstructure:"hide_fab_when_scroll" json:"hide_fab_when_scroll"`
  HideAppBarWhenScroll bool        `mapstructure:"hide_app_bar_when_scroll" json:"hide_app_bar_when_scroll"`
  IsDarkModePureBlack  bool        `mapstructure:"is_dark_mode_pure_black" json:"is_dark_mode_pure_black"`
}

func DefaultAppearance() AppearancePreferences {
  return AppearancePreferences{
    Theme:                ThemeAuto,
    TabPosition:          TabPositionBottom,
    HideTabBarWhenScroll: false,
    HideFabWhenScroll:    true,
    HideAppBarWhenScroll: true,
  }
}

func (p AppearancePreferences) settings() map[string]interface{} {
  return map[string]interface{}{
    "theme":                    string(p.Theme),
    "primary_color_index":      p.PrimaryColorIndex,
    "tab_position":             string(p.TabPosition),
    "hide_tab_bar_when_scroll": p.HideTabBarWhenScroll,
    "hide_fab_when_scroll":     p.HideFabWhenScroll,
    "hide_app_bar_when_scroll": p.HideAppBarWhenScroll,
    "is_dark_mode_pure_black":  p.IsDarkModePureBlack,
  }
}

type DisplayPreferences struct {
  UseSystemFontSize bool         `mapstructure:"use_system_font_size" json:"use_system_font_size"`
  FontScale         float64      `mapstructure:"font_scale" json:"font_scale"`
  AvatarStyle       AvatarStyle  `mapstructure:"avatar_style" json:"avatar_style"`
  ShowNumbers       bool         `mapstructure:"show_numbers" json:"show_numbers"`
  UrlPreview        bool         `mapstructure:"url_preview" json:"url_preview"`
  MediaPreview      bool         `mapstructure:"media_preview" json:"media_preview"`
  AutoPlayback      AutoPlayback `mapstructure:"auto_playback" json:"auto_playback"`
}

func DefaultDisplay() DisplayPreferences {
  return DisplayPreferences{
    UseSystemFontSize: true,
    FontScale:         1,
    AvatarStyle:       AvatarStyleRound,
    ShowNumbers:       true,
    UrlPreview:        true,
    MediaPreview:      true,
    AutoPlayback:      AutoPlaybackAuto,
  }
}

func (p DisplayPreferences) settings() map[string]interface{} {
  return map[string]interface{}{
    "use_system_font_size": p.UseSystemFontSize,
    "font_scale":           p.FontScale,
    "avatar_style":         string(p.AvatarStyle),
    "show_numbers":         p.ShowNumbers,
    "url_preview":          p.UrlPreview,
    "media_preview":        p.MediaPreview,
    "auto_playback":        string(p.AutoPlayback),
  }
}

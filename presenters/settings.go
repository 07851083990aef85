package presenters

type SettingItem struct {
  Name  string `json:"name"`
  Icon  string `json:"icon"`
  Route string `json:"route"`
}

type SettingSection struct {
  Title string        `json:"title"`
  Items []SettingItem `json:"items"`
}

const (
  RouteSettings                 = "/settings"
  RouteSettingsPrivacyAndSafety = "/settings/privacy-and-safety"
  RouteSettingsAppearance       = "/settings/appearance"
  RouteSettingsDisplay          = "/settings/display"
  RouteSettingsLayout           = "/settings/layout"
  RouteSettingsNotification     = "/settings/notification"
  RouteSettingsStorage          = "/settings/storage"
  RouteSettingsMisc             = "/settings/misc"
  RouteSettingsAbout            = "/settings/about"
)

func Settings() []SettingSection {
  return []SettingSection{
    {
      Title: "Account",
      Items: []SettingItem{
        {Name: "Privacy and safety", Icon: "ic_shield", Route: RouteSettingsPrivacyAndSafety},
      },
    },
    {
      Title: "General",
      Items: []SettingItem{
        {Name: "Appearance", Icon: "ic_shirt", Route: RouteSettingsAppearance},
        {Name: "Display", Icon: "ic_template", Route: RouteSettingsDisplay},
        {Name: "Layout", Icon: "ic_layout_sidebar", Route: RouteSettingsLayout},
        {Name: "Notification", Icon: "ic_notification", Route: RouteSettingsNotification},
        {Name: "Storage", Icon: "ic_database", Route: RouteSettingsStorage},
        {Name: "Misc", Icon: "ic_triangle_square_circle", Route: RouteSettingsMisc},
      },
    },
    {
      Title: "About",
      Items: []SettingItem{
        {Name: "About", Icon: "ic_info_circle", Route: RouteSettingsAbout},
      },
    },
  }
}

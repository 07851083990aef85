package ui

import (
  "fmt"

  "twiderex.local/twiderex/models"
)

type User struct {
  UserKey                models.MicroBlogKey `json:"user_key"`
  ID                     string              `json:"id"`
  Name                   string              `json:"name"`
  ScreenName             string              `json:"screen_name"`
  ProfileImage           string              `json:"profile_image"`
  ProfileBackgroundImage string              `json:"profile_background_image,omitempty"`
  Description            string              `json:"description,omitempty"`
  Website                string              `json:"website,omitempty"`
  Location               string              `json:"location,omitempty"`
  FollowersCount         int64               `json:"followers_count"`
  FriendsCount           int64               `json:"friends_count"`
  StatusesCount          int64               `json:"statuses_count"`
  Verified               bool                `json:"verified"`
  IsProtected            bool                `json:"is_protected"`
  Platform               models.PlatformType `json:"platform"`
}

// DisplayScreenName qualifies the screen name with its host when the user
// lives on another instance than host.
func (u User) DisplayScreenName(host string) string {
  if u.UserKey.Host != "" && u.UserKey.Host != host {
    return fmt.Sprintf("@%v@%v", u.ScreenName, u.UserKey.Host)
  }
  return fmt.Sprintf("@%v", u.ScreenName)
}

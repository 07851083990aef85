package transform

import (
  "github.com/rs/xid"

  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/ui"
)

func UserToDb(user *services.User) *models.User {
  return &models.User{
    ID:                     xid.New().String(),
    UserKey:                user.Key(),
    UserID:                 user.ID,
    PlatformType:           user.Platform,
    Name:                   user.Name,
    ScreenName:             user.ScreenName,
    Acct:                   user.Acct,
    ProfileImage:           user.ProfileImage,
    ProfileBackgroundImage: user.ProfileBackgroundImage,
    HtmlDescription:        user.HtmlDescription,
    RawDescription:         user.RawDescription,
    Website:                user.Website,
    Location:               user.Location,
    FollowersCount:         user.FollowersCount,
    FriendsCount:           user.FriendsCount,
    ListedCount:            user.ListedCount,
    StatusesCount:          user.StatusesCount,
    FavouritesCount:        user.FavouritesCount,
    Verified:               user.Verified,
    IsProtected:            user.Protected,
  }
}

func UserToUi(user *models.User) ui.User {
  if user == nil {
    return ui.User{}
  }
  return ui.User{
    UserKey:                user.UserKey,
    ID:                     user.UserID,
    Name:                   user.Name,
    ScreenName:             user.ScreenName,
    ProfileImage:           user.ProfileImage,
    ProfileBackgroundImage: user.ProfileBackgroundImage,
    Description:            user.RawDescription,
    Website:                user.Website,
    Location:               user.Location,
    FollowersCount:         user.FollowersCount,
    FriendsCount:           user.FriendsCount,
    StatusesCount:          user.StatusesCount,
    Verified:               user.Verified,
    IsProtected:            user.IsProtected,
    Platform:               user.PlatformType,
  }
}

func ServiceUserToUi(user *services.User) ui.User {
  return UserToUi(UserToDb(user))
}

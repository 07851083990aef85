package api

import (
  "twiderex.local/twiderex/actions"
  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/location"
  "twiderex.local/twiderex/preferences"
  "twiderex.local/twiderex/repositories"
  jwtRepositories "twiderex.local/twiderex/repositories/jwt"
)

// Context carries what every v1 router shares on top of the connections.
type Context struct {
  *common.ApiContext
  Sessions     *Sessions
  Drafts       *repositories.DraftsRepository
  Preferences  *preferences.Holder
  Notification *actions.InAppNotification
  Location     location.Provider
  Tokens       *jwtRepositories.TokenRepository
}

package config

const (
  REDIS_KEY_EMOJIS       = "twiderex:emojis:%v"
  REDIS_KEY_DRAFTS_COUNT = "twiderex:drafts:count"

  LOCKS_PAGING_REFRESH   = "twiderex:locks:paging:%v:%v"
  LOCKS_COMPOSE_COMMIT   = "twiderex:locks:compose:%v"
  LOCKS_TIMELINES_SYNC   = "twiderex:locks:timelines:%v"
  LOCKS_PAGING_TTL       = 30
  LOCKS_COMPOSE_TTL      = 300
  COMPOSE_MAX_RETRY      = 3
  LOCKS_TIMELINES_TTL    = 120
  REDIS_EMOJIS_TTL_HOURS = 24
  TOKEN_TTL              = 604800

  NATS_IN_APP_NOTIFICATIONS = "twiderex.notifications"
  NATS_STATUSES_CACHED      = "twiderex.statuses.cached"
  NATS_DRAFTS_CHANGED       = "twiderex.drafts.changed"
  NATS_COMPOSE_COMMITTED    = "twiderex.compose.committed"

  ASYNQ_QUEUE_COMPOSE          = "compose"
  ASYNQ_QUEUE_TIMELINES        = "timelines"
  ASYNQ_JOBS_COMPOSE_COMMIT    = "compose:commit"
  ASYNQ_JOBS_TIMELINES_REFRESH = "timelines:refresh"

  PAGING_KEY_HOME             = "home"
  PAGING_KEY_MENTIONS         = "mentions"
  PAGING_KEY_USER             = "user:%v"
  PAGING_KEY_SEARCH_STATUS    = "search:status:%v"
  PAGING_KEY_SEARCH_MEDIA     = "search:media:%v"
  PAGING_KEY_DM_CONVERSATIONS = "dm:conversations"
  PAGING_KEY_DM_EVENTS        = "dm:events:%v"

  DEFAULT_LOAD_COUNT = 20
  DM_LOAD_COUNT      = 50
  IMAGE_LIMIT        = 4
  VOTE_OPTIONS_MIN   = 2
  VOTE_OPTIONS_MAX   = 4

  TWITTER_HOST     = "twitter.com"
  TWITTER_ENDPOINT = "https://api.twitter.com"
  TWITTER_UPLOAD   = "https://upload.twitter.com"
)

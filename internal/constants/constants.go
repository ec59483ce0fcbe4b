package constants

import "time"

// Session
const (
	SessionCookieName     = "volunteer_directory_session"
	ContextKeyModeratorID = "moderator_id"
	ContextKeyRequestID   = "request_id"
)

// Search paging
const (
	MaxSearchPageSize = 100
)

// Moderators
const (
	MinPasswordLength = 8
)

// Lookup cache
const (
	LookupCacheKeyPrefix  = "directory:lookup:"
	DefaultLookupCacheTTL = 10 * time.Minute
)

// Redis
const (
	RedisPoolSize     = 10
	SessionMaxAgeSecs = 86400 * 7
)

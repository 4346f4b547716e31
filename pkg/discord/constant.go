package discord

import "time"

const (
	// DefaultChannelCacheSize bounds the channel-type cache
	DefaultChannelCacheSize = 256

	// DefaultChannelCacheTTL is how long a resolved channel type is trusted
	DefaultChannelCacheTTL = 10 * time.Minute

	tokenPrefix = "Bot "
)

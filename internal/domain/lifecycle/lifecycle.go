// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start-up checks and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second

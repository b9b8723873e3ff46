// Package lifecycle holds shared deadlines for starting and stopping
// long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations.
const DefaultTimeout = 10 * time.Second

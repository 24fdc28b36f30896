// Package shared provides cross-cutting helpers used across the claims client.
package shared

import "time"

// Now returns the current time in milliseconds since the Unix epoch.
// Cache bookkeeping stores fetch times in this representation.
func Now() int64 {
	return time.Now().UnixMilli()
}

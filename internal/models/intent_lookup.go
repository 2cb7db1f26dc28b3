package models

import "time"

// IntentLookup represents the hit count of one chat intent.
type IntentLookup struct {
	Intent     string
	Count      int64
	LastSeenAt time.Time
}

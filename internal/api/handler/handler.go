// Package handler contains the HTTP handlers for the admin API. Handlers
// reject unauthenticated requests through the Auth middleware before any
// repository is touched; everything here may assume an identity is present
// on routes mounted underneath it.
package handler

import "time"

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

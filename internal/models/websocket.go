package models

import "time"

// WebSocketMessage is pushed to change-feed subscribers after each mutation.
type WebSocketMessage struct {
	Type      string                 `json:"type"`  // entity_update, layout_update, view_update
	Event     string                 `json:"event"` // created, updated, deleted, moved
	Resource  map[string]interface{} `json:"resource"`
	Revision  uint64                 `json:"revision"`
	Timestamp time.Time              `json:"timestamp"`
}

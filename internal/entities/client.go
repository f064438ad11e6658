package entities

import "time"

// Client is a connection known to the game session
type Client struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	ConnectedAt time.Time `json:"connected_at"`
}

package model

import (
	"github.com/google/uuid"
)

// MessageType is an alert category (e.g. CRITICAL, WARNING). The catalog
// service owns these rows; the router only reads them.
type MessageType struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Priority int       `json:"priority"` // 1 is highest, 5 is lowest
	Color    string    `json:"color"`
	IsActive bool      `json:"is_active"`
}

// Group is a named set of recipients plus the routing rules applied to it:
// source filters, a receive window and an optional mute window.
type Group struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"is_active"`
	HostFilter    string    `json:"host_filter"`    // comma-separated glob patterns, empty = no filter
	ServiceFilter string    `json:"service_filter"` // same format as HostFilter
	ReceiveStart  string    `json:"receive_start"`  // "HH:MM", 24-hour clock
	ReceiveEnd    string    `json:"receive_end"`    // "HH:MM", "24:00" means end of day
	MuteStart     string    `json:"mute_start"`     // optional, empty = no mute window
	MuteEnd       string    `json:"mute_end"`

	// Per-group duplicate policy. The catalog service owns these settings;
	// the router carries them but applies its own global dedup window.
	AllowDuplicates        bool `json:"allow_duplicates"`
	DuplicateWindowMinutes int  `json:"duplicate_window_minutes"`

	Members []Recipient `json:"members"`
}

// Recipient is a user that can receive pushed alerts. LineAccessToken is the
// subscription credential checked during matching; LineUserID is the push
// address used by the gateway. A recipient may hold a token without having
// a push address yet.
type Recipient struct {
	ID              uuid.UUID `json:"id"`
	DisplayName     string    `json:"display_name"`
	LineUserID      string    `json:"line_user_id"`
	LineAccessToken string    `json:"-"`
	IsActive        bool      `json:"is_active"`
}

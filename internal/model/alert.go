package model

import "time"

// Category is the alert kind published by the signal feed.
type Category string

const (
	CategoryEntry  Category = "ENTRY"
	CategoryUpdate Category = "UPDATE"
	CategoryExit   Category = "EXIT"
)

// Alert is a single trading alert surfaced to the user. It is built once
// at the feed boundary and never mutated afterwards.
type Alert struct {
	// ID is the unique identifier assigned by the feed, if any.
	ID string `json:"id" mapstructure:"id"`

	// Category is the raw category tag. Unrecognised tags are kept as-is
	// and rendered with the fallback style.
	Category Category `json:"category" mapstructure:"category"`

	// Ticker is the instrument symbol the alert is about.
	Ticker string `json:"ticker" mapstructure:"ticker"`

	// Label is the short identifying label (e.g. "Breakout").
	Label string `json:"label" mapstructure:"label"`

	// Message is the human-readable alert text.
	Message string `json:"message" mapstructure:"message"`

	// CreatedAt is when the alert was published.
	CreatedAt time.Time `json:"created_at" mapstructure:"created_at"`
}

// Severity selects the treatment of an error banner.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

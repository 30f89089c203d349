// Package domain defines the core domain models for echod.
package domain

import "time"

// Role identifies who authored a journal entry.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// QuietHours is a daily window during which follow-ups are suppressed.
// Start and End are wall-clock times in "HH:MM" form; an empty window
// means follow-ups may be delivered at any time. A window may cross
// midnight (Start > End).
type QuietHours struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// User is a registered journaling subject.
type User struct {
	UserID             string     `json:"user_id"`
	Name               string     `json:"name"`
	DiscordID          string     `json:"discord_id"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	PreferredFrequency string     `json:"preferred_frequency,omitempty"`
	NextUpdateTime     *time.Time `json:"next_update_time,omitempty"`
	QuietHours         QuietHours `json:"quiet_hours"`
	Persona            string     `json:"persona"`
	SummaryLength      string     `json:"summary_length"`
	Voice              string     `json:"voice"`
	CreatedAt          time.Time  `json:"created_at"`
}

// Entry is a single journal record. Entries are immutable once created.
type Entry struct {
	EntryID   string    `json:"entry_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Notes     string    `json:"notes,omitempty"`
	Source    string    `json:"source,omitempty"`
}

// Summary is the cached daily narrative for one user and calendar day.
// At most one summary exists per (UserID, Date).
type Summary struct {
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Content   string    `json:"content"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// InboundMessage is a user status update delivered by the messaging
// front end. The sender is identified by UserID or, failing that, by
// DiscordID.
type InboundMessage struct {
	UserID    string `json:"user_id,omitempty"`
	DiscordID string `json:"discord_id,omitempty"`
	ChannelID string `json:"channel_id"`
	Content   string `json:"content"`
	Source    string `json:"source,omitempty"`
}

// CheckIn is the per-message pipeline result: an immediate reply plus a
// follow-up nudge deferred by Delay.
type CheckIn struct {
	Reply       string        `json:"reply"`
	Delay       time.Duration `json:"-"`
	DelayLabel  string        `json:"time"`
	NextCheckIn string        `json:"next_check_in"`
}

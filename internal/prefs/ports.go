package prefs

import "context"

// Conversation styles offered by the AI backend.
const (
	StyleBalanced = "balanced"
	StyleCreative = "creative"
	StylePrecise  = "precise"
)

const (
	DefaultVoice = "en-US-AriaNeural"
	DefaultStyle = StyleBalanced
)

// Styles returns the fixed style set, sorted for rendering.
func Styles() []string {
	return []string{StyleBalanced, StyleCreative, StylePrecise}
}

func ValidStyle(style string) bool {
	for _, s := range Styles() {
		if s == style {
			return true
		}
	}
	return false
}

// Preference is the per-chat voice settings record. Created lazily on the
// first settings access and kept for the lifetime of the account.
type Preference struct {
	ChatID     int64  `json:"chat_id"`
	Voice      string `json:"voice"`
	Style      string `json:"style"`
	TTSEnabled bool   `json:"tts_enabled"`
}

// Repo — DB access. Get returns (nil, nil) when the chat has no record.
type Repo interface {
	Get(ctx context.Context, chatID int64) (*Preference, error)
	Create(ctx context.Context, pref *Preference) error
	UpdateVoice(ctx context.Context, chatID int64, voice string) error
	UpdateStyle(ctx context.Context, chatID int64, style string) error
	UpdateTTS(ctx context.Context, chatID int64, enabled bool) error
}

// Service — business operations over the preference record. Lookup is
// the read-only counterpart of Get: it never creates and returns
// (nil, nil) for chats without a record.
type Service interface {
	Get(ctx context.Context, chatID int64) (*Preference, error)
	Lookup(ctx context.Context, chatID int64) (*Preference, error)
	SetVoice(ctx context.Context, chatID int64, voice string) error
	SetStyle(ctx context.Context, chatID int64, style string) error
	ToggleTTS(ctx context.Context, chatID int64) (bool, error)
}

package store

import "time"

// Turn is a single user/bot exchange. Turns are append-only.
type Turn struct {
	UserText  string    `json:"user_text"`
	BotText   string    `json:"bot_text"`
	Intent    string    `json:"intent"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the per-conversation state kept between requests. History is a
// bounded ring: once MaxTurns is reached the oldest turn is dropped, so memory
// stays flat no matter how long a conversation runs.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	History   []Turn    `json:"history"`

	MaxTurns int `json:"max_turns"`
}

func NewSession(id string, maxTurns int) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		MaxTurns:  maxTurns,
	}
}

// Clone returns an independent copy with its own History slice. In-memory
// session storage hands out clones so concurrent requests for the same
// session never mutate shared state.
func (s *Session) Clone() *Session {
	c := *s
	c.History = append([]Turn(nil), s.History...)
	return &c
}

// Append adds a turn, evicting the oldest when the ring is full.
func (s *Session) Append(turn Turn) {
	s.History = append(s.History, turn)
	if s.MaxTurns > 0 && len(s.History) > s.MaxTurns {
		s.History = s.History[len(s.History)-s.MaxTurns:]
	}
}

// LastTurns returns up to n most recent turns, oldest first.
func (s *Session) LastTurns(n int) []Turn {
	if n <= 0 || len(s.History) == 0 {
		return nil
	}
	if len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}

package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Logger writes rendered messages to slog
type Logger struct {
	catalog *Catalog
	logger  *slog.Logger
}

// NewLogger returns a Logger. A nil logger uses slog.Default.
func NewLogger(catalog *Catalog, logger *slog.Logger) *Logger {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{catalog: catalog, logger: logger}
}

// Notify logs the rendered message
func (l *Logger) Notify(ctx context.Context, token Token, heroName string) {
	l.logger.InfoContext(ctx, l.catalog.Render(token, heroName),
		"token", string(token),
		"hero", heroName,
	)
}

// Message is a rendered notification
type Message struct {
	Token Token  `json:"token"`
	Hero  string `json:"hero"`
	Text  string `json:"text"`
}

// Recorder keeps every rendered message in order
type Recorder struct {
	catalog *Catalog

	mu       sync.Mutex
	messages []Message
}

// NewRecorder returns an empty Recorder
func NewRecorder(catalog *Catalog) *Recorder {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Recorder{catalog: catalog}
}

// Notify records the rendered message
func (r *Recorder) Notify(_ context.Context, token Token, heroName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, Message{
		Token: token,
		Hero:  heroName,
		Text:  r.catalog.Render(token, heroName),
	})
}

// Messages returns a copy of the recorded messages
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Notifier is anything that accepts a slot message
type Notifier interface {
	Notify(ctx context.Context, token Token, heroName string)
}

// Multi delivers to every notifier in order
type Multi []Notifier

// Notify fans out to each notifier
func (m Multi) Notify(ctx context.Context, token Token, heroName string) {
	for _, n := range m {
		n.Notify(ctx, token, heroName)
	}
}

package dashboard

import (
	"errors"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/kirbygold/goldsuite/internal/feed"
	"github.com/kirbygold/goldsuite/internal/fixtures"
	"github.com/kirbygold/goldsuite/internal/viewstate"
)

// Options configures a Dashboard.
type Options struct {
	Source fixtures.Source
	Feed   feed.Feed
	Auth   viewstate.Authenticator

	// TokenSecret signs session cookies; TokenTTL bounds their lifetime.
	TokenSecret []byte
	TokenTTL    time.Duration

	// FeedInterval is the delay between quote pushes on /ws/prices.
	FeedInterval time.Duration

	Logger zerolog.Logger
}

// Dashboard serves the trading dashboard as server-rendered HTML, a JSON
// mirror under /api and a websocket quote stream.
type Dashboard struct {
	source   fixtures.Source
	feed     feed.Feed
	auth     viewstate.Authenticator
	sessions *Sessions
	views    *renderer
	interval time.Duration
	logger   zerolog.Logger
}

// New creates a new Dashboard.
func New(opts Options) (*Dashboard, error) {
	if opts.Source == nil {
		return nil, errors.New("dashboard: fixture source is required")
	}
	if len(opts.TokenSecret) == 0 {
		return nil, errors.New("dashboard: token secret is required")
	}
	if opts.Feed == nil {
		opts.Feed = feed.NewFixtureFeed(opts.Source, nil)
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 12 * time.Hour
	}
	if opts.FeedInterval <= 0 {
		opts.FeedInterval = 2 * time.Second
	}

	views, err := newRenderer(newMarkdown())
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		source:   opts.Source,
		feed:     opts.Feed,
		auth:     opts.Auth,
		sessions: NewSessions(opts.Auth, opts.TokenSecret, opts.TokenTTL),
		views:    views,
		interval: opts.FeedInterval,
		logger:   opts.Logger.With().Str("component", "dashboard").Logger(),
	}, nil
}

// Sessions returns the session registry.
func (d *Dashboard) Sessions() *Sessions { return d.sessions }

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.handleIndex)
	r.Post("/login", d.handleLogin)
	r.Post("/logout", d.handleLogout)
	r.Post("/nav/{page}", d.handleNav)
	r.Post("/action", d.handleAction)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", d.apiState)
		r.Post("/login", d.apiLogin)
		r.Post("/logout", d.apiLogout)
		r.Post("/nav/{page}", d.apiNav)
		r.Post("/action", d.apiAction)
		r.Get("/navigation", d.apiNavigation)
		r.Get("/products", d.apiProducts)
		r.Get("/quotes", d.apiQuotes)
	})

	r.Get("/ws/prices", d.handlePriceStream)
}

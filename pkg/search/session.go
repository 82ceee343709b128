package search

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/bornholm/websearch/internal/logx"
	"github.com/bornholm/websearch/pkg/scraper"
	"github.com/pkg/errors"
)

// SessionOptions holds the initial state of a Session
type SessionOptions struct {
	Engine  Engine
	Scraper scraper.Scraper
}

type SessionOptionFunc func(opts *SessionOptions)

// WithEngine sets the engine used by the session until changed
func WithEngine(engine Engine) SessionOptionFunc {
	return func(opts *SessionOptions) {
		opts.Engine = engine
	}
}

// WithScraper sets the transport used to fetch result pages
func WithScraper(scraper scraper.Scraper) SessionOptionFunc {
	return func(opts *SessionOptions) {
		opts.Scraper = scraper
	}
}

// Session issues searches against the currently selected engine.
//
// The selected engine is plain mutable state read at search time: a Session
// must not be shared between goroutines without external synchronization.
type Session struct {
	engine  Engine
	scraper scraper.Scraper
}

func (s *Session) Engine() Engine {
	return s.engine
}

func (s *Session) Use(engine Engine) {
	s.engine = engine
}

func (s *Session) UseGoogle() {
	s.Use(EngineGoogle)
}

func (s *Session) UseBing() {
	s.Use(EngineBing)
}

func (s *Session) UseDuckDuckGo() {
	s.Use(EngineDuckDuckGo)
}

func (s *Session) UseYahoo() {
	s.Use(EngineYahoo)
}

// Search fetches the given result page of the selected engine and extracts
// its results. Exactly one request is issued; transport failures are returned
// as-is, without retry.
func (s *Session) Search(ctx context.Context, searchTerm string, startPage int) ([]Result, error) {
	engine := s.engine

	req, err := NewRequest(engine, searchTerm, startPage)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	ctx = logx.WithAttrs(ctx, slog.String("engine", engine.String()), slog.Int("page", startPage))

	slog.DebugContext(ctx, "executing search", slog.String("method", req.Method), slog.String("url", req.Target()))

	body, err := s.fetch(ctx, req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer body.Close()

	results, err := Parse(engine, body, startPage)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "search completed", slog.Int("results", len(results)))

	return results, nil
}

func (s *Session) fetch(ctx context.Context, req *Request) (io.ReadCloser, error) {
	userAgent := scraper.WithUserAgent(req.UserAgent)

	switch req.Method {
	case http.MethodPost:
		return s.scraper.Post(ctx, req.Endpoint, req.Params, userAgent)
	default:
		return s.scraper.Get(ctx, req.Target(), userAgent)
	}
}

func NewSession(funcs ...SessionOptionFunc) *Session {
	opts := &SessionOptions{
		Engine:  EngineGoogle,
		Scraper: scraper.DefaultScraper(),
	}
	for _, fn := range funcs {
		fn(opts)
	}

	return &Session{
		engine:  opts.Engine,
		scraper: opts.Scraper,
	}
}

var _ Client = &Session{}

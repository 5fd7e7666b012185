package atrium

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atrium-ui/atrium/internal/errors"
	"github.com/atrium-ui/atrium/pkg/boundary"
	"github.com/atrium-ui/atrium/pkg/flags"
	"github.com/atrium-ui/atrium/pkg/live"
	"github.com/atrium-ui/atrium/pkg/middleware"
	"github.com/atrium-ui/atrium/pkg/theme"
	"github.com/atrium-ui/atrium/pkg/ui"
)

// themeCookie carries the visitor's saved theme choice.
const themeCookie = "atrium_theme"

// PageContext is what a page handler receives for one request.
type PageContext struct {
	// Request is the incoming HTTP request.
	Request *http.Request

	// Theme is the resolved theme for this visitor.
	Theme theme.Theme

	// Flags is the application's feature-flag store.
	Flags *flags.Store
}

// Param returns a chi route parameter by name.
func (pc *PageContext) Param(name string) string {
	return chi.URLParam(pc.Request, name)
}

// PageHandler renders one page.
type PageHandler func(pc *PageContext) *ui.Node

// App wires pages, static files, the live metric stream and
// observability endpoints into a single http.Handler.
type App struct {
	config   Config
	router   chi.Router
	renderer *ui.Renderer
	hub      *live.Hub
	logger   *slog.Logger
	server   *http.Server
}

// New creates an application from the given configuration.
func New(cfg Config) *App {
	cfg.applyDefaults()

	app := &App{
		config: cfg,
		logger: cfg.Logger,
		renderer: ui.NewRenderer(ui.RendererConfig{
			Pretty: cfg.DevMode,
		}),
	}

	// Request metrics live in a per-app registry so multiple Apps in
	// one process don't collide; /metrics also exposes the default
	// registry (resource and boundary collectors).
	registry := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.Tracing(middleware.WithFilter(func(req *http.Request) bool {
		return req.URL.Path != "/healthz" && req.URL.Path != "/metrics"
	})))
	r.Use(middleware.Metrics(middleware.WithRegistry(registry)))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(
		prometheus.Gatherers{registry, prometheus.DefaultGatherer},
		promhttp.HandlerOpts{},
	))

	if cfg.Static.Dir != "" {
		fs := http.StripPrefix(cfg.Static.Prefix, http.FileServer(http.Dir(cfg.Static.Dir)))
		r.Handle(cfg.Static.Prefix+"/*", fs)
	}

	if cfg.Live.Enabled && cfg.Live.Source != nil {
		app.hub = live.NewHub(cfg.Live.Source, live.HubConfig{
			Interval:    cfg.Live.Interval,
			Logger:      cfg.Logger,
			CheckOrigin: cfg.devCheckOrigin(),
		})
		app.hub.Start()
		r.Handle(cfg.Live.Path, app.hub.Handler())
	}

	app.router = r
	return app
}

// Page registers a page handler at the given chi route pattern.
// Each request renders inside a fresh error boundary; a render panic
// produces the fallback page with status 500 instead of tearing down
// the connection.
func (a *App) Page(pattern string, handler PageHandler) {
	a.router.Get(pattern, func(w http.ResponseWriter, req *http.Request) {
		a.renderPage(w, req, pattern, handler)
	})
}

// NotFound sets the page rendered when no route matches.
func (a *App) NotFound(handler PageHandler) {
	a.router.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		a.writePage(w, req, "404", handler)
	})
}

func (a *App) renderPage(w http.ResponseWriter, req *http.Request, pattern string, handler PageHandler) {
	b := boundary.New(
		boundary.WithLabel(pattern),
		boundary.WithReporter(a.reporter()),
	)

	pc := a.pageContext(req)
	node := b.Render(func() *ui.Node {
		return handler(pc)
	})

	if node == nil {
		a.logger.Error("page returned nil", "page", pattern, "error", errors.New("A001"))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	html, err := a.renderer.RenderDocument(node)
	if err != nil {
		a.logger.Error("render failed", "page", pattern, "error", errors.New("A002").Wrap(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if b.Tripped() {
		w.WriteHeader(http.StatusInternalServerError)
	}
	w.Write([]byte(html))
}

// writePage renders without a status-200 assumption; used for the 404
// page where the status is already written.
func (a *App) writePage(w http.ResponseWriter, req *http.Request, label string, handler PageHandler) {
	b := boundary.New(
		boundary.WithLabel(label),
		boundary.WithReporter(a.reporter()),
	)

	pc := a.pageContext(req)
	node := b.Render(func() *ui.Node {
		return handler(pc)
	})
	if node == nil {
		return
	}

	html, err := a.renderer.RenderDocument(node)
	if err != nil {
		a.logger.Error("render failed", "page", label, "error", errors.New("A002").Wrap(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func (a *App) pageContext(req *http.Request) *PageContext {
	th := a.config.Theme
	if c, err := req.Cookie(themeCookie); err == nil {
		if saved := theme.Theme(c.Value); saved.Valid() {
			th = saved
		}
	}
	return &PageContext{
		Request: req,
		Theme:   th,
		Flags:   a.config.Flags,
	}
}

func (a *App) reporter() boundary.Reporter {
	if a.config.Reporter != nil {
		return a.config.Reporter
	}
	return func(err error, info boundary.CaptureInfo) {
		a.logger.Error("page render failed",
			"page", info.Label,
			"incident", info.Incident,
			"error", err,
		)
	}
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Router exposes the underlying chi router for additional routes.
func (a *App) Router() chi.Router {
	return a.router
}

// Config returns the app configuration.
func (a *App) Config() Config {
	return a.config
}

// Run starts the HTTP server and blocks until it stops.
func (a *App) Run(addr string) error {
	a.server = &http.Server{Addr: addr, Handler: a}
	a.logger.Info("listening", "addr", addr)

	err := a.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server and the live hub.
func (a *App) Shutdown(ctx context.Context) error {
	if a.hub != nil {
		a.hub.Stop()
	}
	if a.server != nil {
		return a.server.Shutdown(ctx)
	}
	return nil
}

// Close releases background resources for apps that never called Run.
func (a *App) Close() {
	if a.hub != nil {
		a.hub.Stop()
	}
}

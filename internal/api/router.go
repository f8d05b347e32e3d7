package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/peterbuiltwl/portal/docs"
	"github.com/peterbuiltwl/portal/internal/api/handler"
	"github.com/peterbuiltwl/portal/internal/api/middleware"
	"github.com/peterbuiltwl/portal/internal/core/ports"
	infrahttp "github.com/peterbuiltwl/portal/internal/infrastructure/http"
	"github.com/peterbuiltwl/portal/internal/infrastructure/http/handlers"
)

// Services are the core services the HTTP layer consumes.
type Services struct {
	Sessions    ports.SessionService
	Profiles    ports.ProfileService
	Catalog     ports.CatalogService
	Checkout    ports.CheckoutService
	Wizards     ports.WizardService
	StressTests ports.StressTestService
	Library     ports.LibraryService
	Dashboards  ports.DashboardService
}

type Options struct {
	Logger       zerolog.Logger
	RateLimitRPS float64
	SecureCookie bool
	Checks       map[string]handlers.Check
	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	log := opts.Logger
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "portal",
		Registerer: opts.Registerer,
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || p == "/health" || p == "/health/ready"
		},
	}))

	// --- Operational routes (no identity) ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	infrahttp.RegisterProbes(e, opts.Checks)

	// --- Dependencies ---
	shell := handler.NewShell(svc.Profiles, svc.Catalog, log)
	authHandler := handler.NewAuthHandler(svc.Sessions, opts.SecureCookie)
	profileHandler := handler.NewProfileHandler(svc.Profiles)
	pageHandler := handler.NewPageHandler(shell, svc.Catalog, svc.Dashboards, svc.Checkout)
	wizardHandler := handler.NewWizardHandler(shell, svc.Wizards, svc.Catalog)
	libraryHandler := handler.NewLibraryHandler(shell, svc.Library, svc.Checkout)
	stressTestHandler := handler.NewStressTestHandler(shell, svc.StressTests)

	limit := rateLimiter(opts.RateLimitRPS)
	authed := middleware.RequireIdentity()
	admin := middleware.RequireAdmin(svc.Sessions)

	app := e.Group("", middleware.Identify(svc.Sessions, handler.SessionCookie))

	// --- Auth routes ---
	app.POST("/auth/login", authHandler.Login, limit)
	app.POST("/auth/logout", authHandler.Logout)
	app.GET("/auth/me", authHandler.Me, authed)

	// --- Profile ---
	profile := app.Group("/profile", authed)
	profile.GET("", profileHandler.Get)
	profile.POST("/setup", profileHandler.Setup)
	profile.PUT("", profileHandler.Save)

	// --- Pages ---
	app.GET("/", pageHandler.Home)
	app.GET("/about", pageHandler.About)
	app.GET("/apps", pageHandler.Apps)
	app.GET("/dashboard", pageHandler.Dashboard)
	app.GET("/payments", pageHandler.Payments)
	app.GET("/donations", pageHandler.Donations)
	app.POST("/donations", pageHandler.Donate)
	app.GET("/payment-success", pageHandler.PaymentSuccess)
	app.GET("/payment-failure", pageHandler.PaymentFailure)

	// --- App wizard ---
	app.GET("/app-wizard", wizardHandler.AppWizard)
	appWizard := app.Group("/app-wizard", authed)
	appWizard.PUT("/fields", wizardHandler.UpdateApp)
	appWizard.POST("/next", wizardHandler.NextApp)
	appWizard.POST("/back", wizardHandler.BackApp)
	appWizard.POST("/submit", wizardHandler.SubmitApp)

	// --- Blog generator ---
	app.GET("/blog-generator", wizardHandler.BlogGenerator)
	blog := app.Group("/blog-generator", authed)
	blog.POST("/input", wizardHandler.SubmitBlogInput)
	blog.POST("/checkout", wizardHandler.CheckoutBlog, limit)
	blog.POST("/generate", wizardHandler.GenerateBlog)
	blog.POST("/back", wizardHandler.BackBlog)
	blog.POST("/reset", wizardHandler.ResetBlog)

	// --- Implementation library ---
	app.GET("/implementation-library", libraryHandler.Library)
	app.GET("/implementation-library/defaults", libraryHandler.Defaults)
	library := app.Group("/implementation-library", authed, admin)
	library.POST("/goals", libraryHandler.AddGoal)
	library.POST("/future-goals", libraryHandler.AddFutureGoal)
	library.DELETE("/goals/:name", libraryHandler.RemoveGoal)

	// --- Admin ---
	app.PUT("/admin/stripe-configuration", libraryHandler.ConfigureStripe, authed, admin)

	// --- Stress test ---
	app.GET("/stress-test", stressTestHandler.Page)
	stress := app.Group("/stress-test", authed)
	stress.POST("/run", stressTestHandler.Start, limit)
	stress.GET("/run", stressTestHandler.Current)
	stress.DELETE("/run", stressTestHandler.Cancel)
	stress.GET("/report", stressTestHandler.Report)
	stress.GET("/history", stressTestHandler.History)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

// rateLimiter throttles per principal, or per client IP for anonymous
// callers. A non-positive rate disables it.
func rateLimiter(rps float64) echo.MiddlewareFunc {
	if rps <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     max(int(rps), 1),
		ExpiresIn: 3 * time.Minute,
	})
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if p, _ := c.Get("principal").(string); p != "" {
				return "principal:" + p, nil
			}
			return "ip:" + c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(429, "rate limit exceeded")
		},
	})
}

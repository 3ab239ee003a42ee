// Package web wires the fiber application: templates, middleware and the
// handler packages.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/auth"
	"github.com/tablecraft/tablecraft/internal/cache"
	"github.com/tablecraft/tablecraft/internal/config"
	accesslog "github.com/tablecraft/tablecraft/internal/logger/adapter/fiber"
	"github.com/tablecraft/tablecraft/internal/storage"
	"github.com/tablecraft/tablecraft/internal/tenantctx"
	"github.com/tablecraft/tablecraft/internal/web/handler/api/articles"
	apicontent "github.com/tablecraft/tablecraft/internal/web/handler/api/content"
	apimedia "github.com/tablecraft/tablecraft/internal/web/handler/api/media"
	apiusers "github.com/tablecraft/tablecraft/internal/web/handler/api/users"
	"github.com/tablecraft/tablecraft/internal/web/handler/dashboard"
	"github.com/tablecraft/tablecraft/internal/web/handler/editor"
	"github.com/tablecraft/tablecraft/internal/web/handler/lang"
	"github.com/tablecraft/tablecraft/internal/web/handler/login"
	"github.com/tablecraft/tablecraft/internal/web/handler/logout"
	"github.com/tablecraft/tablecraft/internal/web/handler/site"
	"github.com/tablecraft/tablecraft/internal/web/middleware/metrics"
)

const checkAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration. The storage
// service and content cache may be nil when disabled.
func New(cfg *config.Config, db *gorm.DB, store *storage.Service, contentCache *cache.ContentCache) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	// Add template helper functions
	templateEngine.AddFunc("iterate", func(count int) []int {
		result := make([]int, count)
		for i := range result {
			result[i] = i
		}

		return result
	})
	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	templateEngine.AddFunc("sub", func(a, b int) int {
		return a - b
	})

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
			BodyLimit:      32 * 1024 * 1024, // media uploads
		},
	)

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	// access logging
	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: checkAlivePath,
	}))

	// request metrics
	app.Use(metrics.Middleware("tablecraft"))

	// load the session user into locals
	app.Use(auth.LoadUser())

	// propagate tenant context into the database session
	app.Use(tenantctx.Middleware(db))

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	app.Get(checkAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/metrics", metrics.Handler())

	// everything below these prefixes requires a login
	for _, prefix := range []string{"/dashboard", "/editor", "/api/content", "/api/media", "/api/upload", "/api/users"} {
		app.Use(prefix, auth.RequireUser(login.Path))
	}

	// init handlers (they register their own routes)
	initOrFail(login.Handler.Init(app, cfg, db))
	logout.Handler.Init(app, cfg)
	initOrFail(lang.Handler.Init(app, cfg))
	initOrFail(site.Handler.Init(app, cfg, db))
	dashboard.Handler.Init(app, cfg, db)
	initOrFail(editor.Handler.Init(app, cfg, db))
	initOrFail(apicontent.Handler.Init(app, cfg, db, contentCache))
	initOrFail(apimedia.Handler.Init(app, cfg, db, store))
	initOrFail(apiusers.Handler.Init(app, cfg, db))
	initOrFail(articles.Handler.Init(app, cfg, db))

	return service
}

func initOrFail(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("handler initialization failed")
	}
}

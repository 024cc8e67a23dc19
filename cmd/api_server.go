package cmd

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Depado/ginprom"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rm-hull/batch-effects/internal"
	"github.com/rm-hull/batch-effects/internal/batch"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hc_config "github.com/tavsec/gin-healthcheck/config"
)

type ServerOptions struct {
	RootDir  string
	InputDir string
	At       string
	Port     int
	Debug    bool
	Quality  int
}

func ApiServer(opts ServerOptions) {

	if opts.Debug {
		internal.UserInfo()
	}

	if opts.InputDir != "" {
		if err := validateQuality(opts.Quality); err != nil {
			log.Fatal(err)
		}

		runner := batch.NewRunner(batch.Options{Quality: opts.Quality, KeepGoing: true})
		sched, err := internal.NewScheduler(opts.At, scheduledBatch(runner, opts.InputDir, opts.RootDir))
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := sched.Shutdown(); err != nil {
				log.Fatalf("failed to shutdown scheduler: %v", err)
			}
		}()
	}

	r, err := NewRouter(opts.RootDir, opts.Debug)
	if err != nil {
		log.Fatal(err)
	}

	addr := fmt.Sprintf(":%d", opts.Port)
	log.Printf("Starting HTTP API Server on port %d...", opts.Port)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("HTTP API Server failed to start on port %d: %v", opts.Port, err)
	}
}

// scheduledBatch wraps a keep-going run for the scheduler. Images that fail to
// process are logged and skipped; only directory level failures are returned.
func scheduledBatch(runner *batch.Runner, inputDir, outputDir string) func() error {
	return func() error {
		stats, err := runner.Run(inputDir, outputDir)
		if errors.Is(err, batch.ErrEffectsFailed) {
			log.Printf("Batch run finished with %d failed effects across %d files", stats.Failed, stats.Files)
			return nil
		}
		return err
	}
}

// NewRouter serves the generated images under /v1/gallery and the effect
// catalog under /v1/effects, alongside health and metrics endpoints.
func NewRouter(rootDir string, debug bool) (*gin.Engine, error) {
	r := gin.New()

	prometheus := ginprom.New(
		ginprom.Engine(r),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/healthz"),
	)

	r.Use(
		gin.Recovery(),
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		prometheus.Instrument(),
	)

	if debug {
		log.Println("WARNING: pprof endpoints are enabled and exposed. Do not run with this flag in production.")
		pprof.Register(r)
	}

	if err := healthcheck.New(r, hc_config.DefaultConfig(), []checks.Check{}); err != nil {
		return nil, fmt.Errorf("failed to initialize healthcheck: %w", err)
	}

	r.GET("/v1/effects", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"effects": batch.Catalog()})
	})
	r.Static("/v1/gallery", rootDir)

	return r, nil
}

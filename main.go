package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"yt-brief/config"
	"yt-brief/handlers"
	"yt-brief/logger"
	"yt-brief/services/speech"
	"yt-brief/services/summary"
	"yt-brief/services/transcript"
	"yt-brief/services/video"
	"yt-brief/tools"
	"yt-brief/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logConfig, err := logger.Init(cfg.LogDir, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize external tool runner
	runner, err := tools.NewRunner(tools.Config{
		YtdlpPath:        cfg.Video.YtdlpPath,
		FFmpegPath:       cfg.Video.FFmpegPath,
		WhisperPath:      cfg.Whisper.BinaryPath,
		WhisperModelPath: cfg.Whisper.ModelPath,
		WhisperLanguage:  cfg.Whisper.Language,
		WhisperThreads:   cfg.Whisper.Threads,
		SubtitleLang:     cfg.Video.SubtitleLang,
		TempDir:          cfg.TempDir,
		Timeout:          cfg.Video.ProcessTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to initialize tool runner: %v", err)
	}

	// Initialize summarizer (creates the Gemini client)
	summaryService, err := summary.NewService(context.Background(), summary.Config{
		APIKey:            cfg.Gemini.APIKey,
		Model:             cfg.Gemini.Model,
		ChunkSize:         cfg.Gemini.ChunkSize,
		RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
	})
	if err != nil {
		log.Fatalf("Failed to initialize summarizer: %v", err)
	}

	// Initialize pipeline services
	transcriptService := transcript.NewService(runner, transcript.Config{
		Language: cfg.Video.SubtitleLang,
		TempDir:  cfg.TempDir,
	})
	speechService := speech.NewService(runner, speech.Config{
		TempDir: cfg.TempDir,
	})
	videoService := video.NewService(
		runner,
		transcriptService,
		speechService,
		summaryService,
		validation.NewValidator(),
		video.Config{
			ProcessTimeout: cfg.Video.ProcessTimeout,
			MaxDuration:    cfg.Video.MaxDuration,
		},
	)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: !cfg.Debug,
		StrictRouting:         true,
		CaseSensitive:         true,
		AppName:               "yt-brief " + cfg.Version,
	})

	// Setup middleware
	setupMiddleware(app, cfg, logConfig)

	// Setup routes
	videoHandler := handlers.NewVideoHandler(videoService)
	reportHandler := handlers.NewReportHandler()

	app.Post("/api/summarize", videoHandler.Summarize)
	app.Post("/api/report/pdf", reportHandler.PDF)
	app.Post("/api/report/docx", reportHandler.DOCX)

	// Health check
	app.Get("/health", handlers.HealthCheck)

	// Static files
	app.Static("/", cfg.StaticDir)

	// Graceful shutdown setup
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	serverAddr := ":" + cfg.ServerPort
	if cfg.Debug {
		log.Printf("Server starting on http://localhost%s", serverAddr)
	}

	if err := app.Listen(serverAddr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func setupMiddleware(app *fiber.App, cfg *config.Config, logConfig *fiberLogger.Config) {
	if cfg.Middleware.EnableRecover {
		app.Use(recover.New(recover.Config{
			EnableStackTrace: cfg.Debug,
		}))
	}

	if cfg.Middleware.EnableRequestID {
		app.Use(requestid.New(requestid.Config{
			Header: "X-Request-ID",
			Generator: func() string {
				return uuid.New().String()
			},
		}))
	}

	if cfg.Middleware.EnableLogger {
		app.Use(fiberLogger.New(*logConfig))
	}

	if cfg.Middleware.EnableCORS {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Join(cfg.CORS.AllowedOrigins, ","),
			AllowMethods:     strings.Join(cfg.CORS.AllowedMethods, ","),
			AllowHeaders:     strings.Join(cfg.CORS.AllowedHeaders, ","),
			ExposeHeaders:    strings.Join(cfg.CORS.ExposedHeaders, ","),
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAge,
		}))
	}

	if cfg.Middleware.EnableRateLimit && cfg.RateLimit.Enabled {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit.RequestsPerMinute,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded",
				})
			},
		}))
	}

	if cfg.Middleware.EnableCompress {
		app.Use(compress.New(compress.Config{
			Level: compress.LevelDefault,
		}))
	}

	if cfg.Middleware.EnableETag {
		app.Use(etag.New())
	}
}

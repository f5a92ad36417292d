package main

import (
	"canvas-editor/handlers/api/editors"
	"canvas-editor/handlers/assets"
	"canvas-editor/web"
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type config struct {
	listen  string
	wasmDir string
	mountID string
}

func setupRouter(cfg config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			if origin == "" {
				return false
			}

			parsed, err := url.Parse(origin)
			if err != nil {
				return false
			}

			switch parsed.Scheme {
			case "http", "https":
				switch parsed.Hostname() {
				case "localhost", "127.0.0.1", "::1":
					return true
				}
			}

			return false
		},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/editor", func(r chi.Router) {
		r.Get("/config", editors.HandleGetConfig(cfg.mountID))
		r.Get("/preview.png", editors.HandlePreview())
	})

	r.Mount("/wasm", http.StripPrefix("/wasm", assets.HandleWasm(cfg.wasmDir)))
	r.NotFound(assets.HandleUI(web.Static()))

	return r
}

func waitForShutdown(srv *http.Server) {
	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
	s := <-signalC

	logrus.WithField("signal", s.String()).Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Failed to shut down server")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found")
	}

	var cfg config
	logLevel := flag.String("loglevel", envOr("EDITOR_LOG_LEVEL", "info"), "Set the logging level: debug, info, warn, error, fatal, panic")
	flag.StringVar(&cfg.listen, "listen", envOr("EDITOR_LISTEN", ":3003"), "Set the server listen address")
	flag.StringVar(&cfg.wasmDir, "wasm", envOr("EDITOR_WASM_DIR", "./dist"), "Directory holding editor.wasm and wasm_exec.js")
	flag.StringVar(&cfg.mountID, "mount", envOr("EDITOR_MOUNT_ID", "canvas"), "Id of the element the editor mounts on")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	srv := &http.Server{
		Addr:              cfg.listen,
		Handler:           setupRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logrus.WithFields(logrus.Fields{
		"addr":     cfg.listen,
		"wasm_dir": cfg.wasmDir,
		"mount_id": cfg.mountID,
	}).Info("starting server")
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithField("event", "start server").Fatal(err)
		}
	}()

	waitForShutdown(srv)
}

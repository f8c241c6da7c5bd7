package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"expohub/chat"
	"expohub/feed"
	"expohub/handlers"
	"expohub/live"
	"expohub/middleware"
	"expohub/relay"
	"expohub/routes"
	"expohub/session"
	"expohub/websocket"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = 5 * time.Minute
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	log.Info("starting expohub")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	st, err := openStore(openCtx, cfg, log)
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			log.WithError(err).Error("failed to close store")
		}
	}()

	uploader, err := newUploader(cfg, log)
	if err != nil {
		return err
	}

	tokens := session.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	var authOpts []session.Option
	if cfg.GoogleEnabled() {
		var oauth *session.GoogleOAuth
		if cfg.GoogleClientSecret != "" && cfg.GoogleRedirectURL != "" {
			oauth = session.NewGoogleOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
		}
		authOpts = append(authOpts, session.WithGoogle(session.NewGoogleVerifier(cfg.GoogleClientID), oauth))
		log.Info("google sign-in enabled")
	} else {
		log.Warn("google sign-in not configured, set GOOGLE_CLIENT_ID")
	}

	hub := live.NewHub(st, log.WithField("component", "live"))
	defer hub.Close()

	wsManager := websocket.NewManager(hub, tokens, st, log.WithField("component", "websocket"))
	go wsManager.Start()
	defer wsManager.Stop()

	g, gctx := errgroup.WithContext(ctx)

	var notifier handlers.Notifier = wsManager
	if cfg.RelayEnabled() {
		var rdb *redis.Client
		if rdb, err = relay.Connect(ctx, cfg.RedisURL); err != nil {
			return err
		}
		defer rdb.Close()

		r := relay.New(rdb, cfg.RedisChannel, wsManager, log.WithField("component", "relay"))
		notifier = r
		g.Go(func() error { return r.Run(gctx) })
	}

	h := handlers.New(handlers.Deps{
		Auth:        session.New(st, tokens, log.WithField("component", "session"), authOpts...),
		Users:       st,
		Exhibitions: st,
		Feed:        feed.New(st, st, log),
		Chats:       chat.New(st, log),
		Media:       uploader,
		Notifier:    notifier,
	})

	limiter := middleware.NewIPRateLimiter(cfg.RateLimitPerMinute, time.Minute)

	if cfg.Release() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := routes.SetupRouter(h, routes.Options{
		Tokens:      tokens,
		Limiter:     limiter,
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
		WebSocket:   websocket.Handler(wsManager),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g.Go(func() error {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				limiter.Sweep()
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("server stopped with error")
		return err
	}
	log.Info("server stopped")
	return nil
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"cosmolink/internal/dbmysql"
	"cosmolink/internal/di"
)

func main() {
	app, cleanup, err := di.InitializeApplication()
	if err != nil {
		// The logger comes out of the injector, so this one failure path
		// has nothing better than stderr.
		panic(err)
	}
	defer cleanup()

	log := app.Logger
	log.Info().Msg("starting chat service")

	if err := app.DB.AutoMigrate(&dbmysql.Profile{}); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}
	log.Info().Msg("database migration completed")

	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Stored avatars are served straight out of GridFS under the public
	// URL prefix the storage hands out.
	router.HandleFunc("/media/{path}", func(w http.ResponseWriter, r *http.Request) {
		path := mux.Vars(r)["path"]
		if err := app.Avatars.Download(r.Context(), path, w); err != nil {
			http.Error(w, "file not found", http.StatusNotFound)
		}
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(requestLogger(app))
	app.ChatHandler.Register(api)
	app.ProfileHandler.Register(api)
	app.AuthHandler.Register(api)
	app.FeedHandler.Register(api)

	addr := app.Config.Server.Host + ":" + app.Config.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("chat service listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down chat service")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("chat service stopped")
}

func requestLogger(app *di.Application) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			app.Logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

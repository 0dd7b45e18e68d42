package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/gallery/internal/config"
	"github.com/ziadkadry99/gallery/internal/gallery"
	"github.com/ziadkadry99/gallery/internal/server"
	"github.com/ziadkadry99/gallery/internal/views"
	"github.com/ziadkadry99/gallery/internal/web"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gallery web server",
	Long:  `Starts the gallery HTTP server: the page shell on /, more images on /more, the lightbox on /modal/open and static assets on /static.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		srv, err := buildServer(cfg, logger)
		if err != nil {
			return err
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown", zap.Error(err))
			}
		}()

		logger.Info("gallery server starting",
			zap.String("version", Version),
			zap.String("addr", cfg.Addr()),
			zap.String("static_dir", cfg.StaticDir))

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	},
}

// buildServer wires the counter, renderer and gallery routes into a server.
func buildServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	counter := gallery.NewCounter(cfg.ImageBaseURL)

	renderer, err := views.New(counter, views.Options{
		Title:   cfg.Title,
		Intro:   cfg.Intro,
		HTMXURL: cfg.HTMXURL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	srv := server.New(server.Config{
		Addr:          cfg.Addr(),
		StaticDir:     cfg.StaticDir,
		StaticExclude: cfg.StaticExclude,
		AllowAll:      cfg.AllowAllOrigins,
	}, logger)

	web.NewHandler(renderer, logger).RegisterRoutes(srv.Router())
	return srv, nil
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}

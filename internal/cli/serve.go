package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vbonduro/homebase/internal/auth"
	"github.com/vbonduro/homebase/internal/db"
	"github.com/vbonduro/homebase/internal/logging"
	"github.com/vbonduro/homebase/internal/mediastore/local"
	"github.com/vbonduro/homebase/internal/service"
	"github.com/vbonduro/homebase/internal/store"
	"github.com/vbonduro/homebase/internal/web"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  "Apply pending migrations and start the HTTP API. Write endpoints require the BLOG_API_KEY shared secret.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides LISTEN_ADDR)")

	return cmd
}

func runServe(addr string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.ListenAddr = addr
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer cleanup()

	guard, err := auth.NewSharedSecret(cfg.APIKeyHeader, cfg.APIKey, logger)
	if errors.Is(err, auth.ErrNoSecret) {
		return errors.New("BLOG_API_KEY must be set")
	}
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeDB(database, logger)

	mediaStg, err := local.NewLocalMediaStore(cfg.MediaPath)
	if err != nil {
		return fmt.Errorf("failed to initialize media store: %w", err)
	}

	posts := service.NewPostService(store.NewPostStore(database), time.Now, logger)
	visits := service.NewVisitService(store.NewVisitStore(database), store.NewRequirementStore(database), logger)
	media := service.NewMediaService(mediaStg, logger)

	server := web.NewServer(posts, visits, media, guard, web.Options{
		APIPrefix:      cfg.APIPrefix,
		MediaURLPrefix: cfg.MediaURLPrefix,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}, logger)

	return server.ListenAndServe(cfg.ListenAddr)
}

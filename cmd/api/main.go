package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinical-rx/internal/adapters/auth/password"
	"clinical-rx/internal/adapters/auth/tokens"
	mem "clinical-rx/internal/adapters/storage/memory"
	pg "clinical-rx/internal/adapters/storage/postgres"
	"clinical-rx/internal/config"
	"clinical-rx/internal/platform/logger"
	"clinical-rx/internal/router"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clinical-rx",
		Short: "Clinical prescriptions API server",
		// sin subcomando => serve
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(tokenCmd())
	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func tokenCmd() *cobra.Command {
	var (
		doctorID int64
		minutes  int
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed access token for a doctor id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if doctorID <= 0 {
				return errors.New("--doctor-id must be positive")
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ttl := cfg.TokenTTL()
			if cmd.Flags().Changed("minutes") {
				if minutes < 0 {
					return errors.New("--minutes must be >= 0")
				}
				ttl = time.Duration(minutes) * time.Minute
			}

			svc, err := tokens.NewService(tokens.Config{Secret: cfg.SecretKey, TTL: ttl})
			if err != nil {
				return err
			}
			tok, err := svc.Issue(doctorID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}

	cmd.Flags().Int64Var(&doctorID, "doctor-id", 0, "doctor id (token subject)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "lifetime in minutes (default ACCESS_TOKEN_EXPIRE_MINUTES)")
	_ = cmd.MarkFlagRequired("doctor-id")
	return cmd
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	if cfg.UsingDevSecret {
		log.Warn("SECRET_KEY not set, using development secret", nil)
	}

	// Postgres solo si hay DSN; el modo memory no lo necesita.
	var db *sql.DB
	if cfg.DBDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		db, err = pg.Open(ctx, cfg.DBDSN, pg.PoolConfig{
			MaxOpenConns: cfg.DBMaxOpenConns,
			MaxIdleConns: cfg.DBMaxIdleConns,
		})
		if err != nil {
			cancel()
			return fmt.Errorf("postgres: %w", err)
		}
		defer db.Close()
		if folds, err := pg.SearchFoldsUnicode(ctx, db); err != nil {
			log.Warn("postgres locale check failed", map[string]any{"error": err.Error()})
		} else if !folds {
			log.Warn("postgres LC_CTYPE does not fold non-ASCII case; medication search will be case-sensitive for Cyrillic", nil)
		}
		cancel()
		log.Info("postgres connected", map[string]any{"max_open_conns": cfg.DBMaxOpenConns})
	}

	hasher := password.NewBcrypt(0)

	store := mem.NewStore()
	if cfg.MirrorSeed {
		if err := store.Seed(hasher, cfg.MirrorSeedPassword, time.Now().UTC()); err != nil {
			return fmt.Errorf("seed mirror: %w", err)
		}
		log.Info("mirror store seeded", nil)
	}

	tok, err := tokens.NewService(tokens.Config{Secret: cfg.SecretKey, TTL: cfg.TokenTTL()})
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}

	h, err := router.NewRouter(router.Options{
		Mode:   cfg.Mode(),
		DB:     db,
		Memory: store,
		Tokens: tok,
		Hasher: hasher,
		Logger: log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store_mode": string(cfg.Mode())})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down server", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped", nil)
	return nil
}

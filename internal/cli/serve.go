package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adproof/adproof/internal/server"
	"github.com/adproof/adproof/pkg/cache"
	"github.com/adproof/adproof/pkg/pipeline"
	"github.com/adproof/adproof/pkg/store"
)

// newServeCmd creates the serve command for running the HTTP preview
// service. Backends come from the TOML config file; flags override the
// listen address.
func newServeCmd() *cobra.Command {
	var configPath, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP preview service",
		Long: `Serve starts the HTTP preview API.

The cache and store backends are read from the config file
(~/.config/adproof/config.toml by default). Without a config file the
service uses an in-memory store and a local file cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// runServe wires the configured backends into a pipeline runner and
// blocks until the context is cancelled or the listener fails.
func runServe(ctx context.Context, cfg Config) error {
	logger := loggerFromContext(ctx)

	c, err := openCache(ctx, cfg.Cache, logger)
	if err != nil {
		return err
	}
	st, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	runner := pipeline.NewRunner(c, nil, st, logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:           cfg.Server.Addr,
		RequestTimeout: cfg.Server.RequestTimeoutDuration(),
	}, runner, st, logger)

	logger.Infof("Listening on %s", cfg.Server.Addr)
	return srv.ListenAndServe(ctx)
}

// openCache builds the cache backend selected by the config.
func openCache(ctx context.Context, cfg CacheConfig, logger *log.Logger) (cache.Cache, error) {
	switch cfg.Backend {
	case cacheBackendNone:
		return cache.NewNullCache(), nil
	case cacheBackendRedis:
		logger.Debugf("Connecting to redis cache")
		return cache.NewRedisCacheFromURL(ctx, cfg.RedisURL)
	default:
		dir := cfg.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
			dir = d
		}
		logger.Debugf("Using file cache at %s", dir)
		return cache.NewFileCache(dir)
	}
}

// openStore builds the store backend selected by the config.
func openStore(ctx context.Context, cfg StoreConfig, logger *log.Logger) (store.Store, error) {
	if cfg.Backend == storeBackendMongo {
		logger.Debugf("Connecting to mongo store")
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
	}
	return store.NewMemoryStore(), nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"themeplane/api"
	"themeplane/config"
	"themeplane/logging"
	"themeplane/registry"
	"themeplane/storage"
	"themeplane/theme"
)

var (
	dataDir    string
	listen     string
	listenPort int
	appName    string
	backend    string
	ephemeral  bool
	appVersion = "0.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "themeplane",
	Short: "themeplane – storefront theme editor service",
	Long:  "Themeplane stores the storefront theme, button and card styles and serves them to pages as live CSS custom properties.",
	RunE:  run,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  "Manage themeplane configuration files.",
}

var configGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a default configuration file",
	Long:  "Generate a default themeplane.config file in the specified data directory (or current directory if not specified).",
	RunE:  runConfigGenerate,
}

func init() {
	wd, _ := os.Getwd()
	rootCmd.Version = appVersion
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", wd, "Data directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&appName, "app", "", "App name used to prefix storage keys")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Storage backend: file or sqlite")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep everything in memory; nothing is persisted")
	rootCmd.Flags().StringVar(&listen, "listen", "all", "IP address to listen on (default: all)")
	rootCmd.Flags().IntVar(&listenPort, "listen-port", 8080, "Port to listen on (default: 8080)")

	configCmd.AddCommand(configGenerateCmd)
	rootCmd.AddCommand(configCmd)
	addStyleCommands(rootCmd)
}

// app bundles the stores every command works on.
type app struct {
	cfg     config.Config
	logger  zerolog.Logger
	themes  *theme.Store
	buttons *registry.Buttons
	cards   *registry.Cards
	close   func() error
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	dir, err := filepath.Abs(dataDir)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	// Override config with CLI flags only if they were explicitly provided
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = dir
	}
	if cmd.Flags().Changed("app") {
		cfg.AppName = appName
	}
	if cmd.Flags().Changed("backend") {
		cfg.Storage.Backend = backend
	}
	if cmd.Flags().Changed("listen") || cmd.Flags().Changed("listen-port") {
		if listen != "" && listen != "all" {
			cfg.ListenAddr = fmt.Sprintf("%s:%d", listen, listenPort)
		} else {
			cfg.ListenAddr = fmt.Sprintf(":%d", listenPort)
		}
	}

	cfg.DataDir, err = filepath.Abs(cfg.DataDir)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	return cfg, cfg.Validate()
}

func openKV(cfg config.Config) (storage.KV, func() error, error) {
	noop := func() error { return nil }
	if ephemeral {
		return storage.NewMemory(), noop, nil
	}
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		db, err := storage.OpenSQLite(cfg.DatabasePath())
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		fs := storage.New(cfg.DataDir)
		if err := fs.EnsureDirs(); err != nil {
			return nil, nil, fmt.Errorf("ensure data dir: %w", err)
		}
		return fs, noop, nil
	}
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	kv, closeKV, err := openKV(cfg)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:     cfg,
		logger:  logger,
		themes:  theme.NewStore(kv, theme.WithAppName(cfg.AppName)),
		buttons: registry.NewButtons(kv, cfg.AppName),
		cards:   registry.NewCards(kv, cfg.AppName),
		close:   closeKV,
	}, nil
}

func run(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	apiServer := api.NewServer(a.themes, a.buttons, a.cards)
	defer apiServer.Close()

	mux := http.NewServeMux()
	apiServer.Register(mux)

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.logger.Info().
		Str("data_dir", a.cfg.DataDir).
		Str("backend", a.cfg.Storage.Backend).
		Str("theme_key", a.themes.Key()).
		Bool("ephemeral", ephemeral).
		Msg("themeplane starting")
	printListeningAddresses(a.logger, a.cfg.ListenAddr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
	a.logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Warn().Err(err).Msg("server shutdown")
	}
	return nil
}

func runConfigGenerate(cmd *cobra.Command, args []string) error {
	dataDirAbs, err := filepath.Abs(dataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := config.Default()
	cfg.DataDir = dataDirAbs

	cfgPath := filepath.Join(dataDirAbs, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("config file already exists: %s", cfgPath)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated default config file: %s\n", cfgPath)
	return nil
}

func printListeningAddresses(logger zerolog.Logger, addr string) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		logger.Info().Msgf("listening on http://%s", addr)
		return
	}

	if host != "" && host != "0.0.0.0" && host != "::" {
		logger.Info().Msgf("listening on http://%s:%s", host, port)
		return
	}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		logger.Info().Msgf("listening on http://0.0.0.0:%s", port)
		return
	}
	for _, a := range addrs {
		if ipnet, ok := a.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			logger.Info().Msgf("listening on http://%s:%s", ipnet.IP.String(), port)
		}
	}
	logger.Info().Msgf("listening on http://localhost:%s", port)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

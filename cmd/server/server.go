package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DGHeroin/SysInfo/collector"
	"github.com/DGHeroin/SysInfo/config"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	cfg config.Config
	Cmd = newCmd(&cfg)
)

func newCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "serve this machine's status as JSON",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			applyDefaults(cmd, cfg, config.Defaults())
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*cfg)
		},
	}
	flags := cmd.PersistentFlags()
	flags.IntVar(&cfg.Port, "port", config.DefaultPort, "http listen port (env SYSINFO_PORT)")
	flags.StringVar(&cfg.Key, "key", config.KeyNone, `shared key required as ?key=, "none" disables the check (env SYSINFO_KEY)`)
	flags.BoolVar(&cfg.Platform, "platform", false, "include platform")
	flags.BoolVar(&cfg.Uptime, "uptime", false, "include uptime")
	flags.BoolVar(&cfg.Memory, "memory", false, "include memory usage")
	flags.BoolVar(&cfg.Load, "load", false, "include load average")
	flags.StringSliceVar(&cfg.Storage, "storage", nil, "mount paths to report storage usage for (env SYSINFO_STORAGE)")
	flags.StringVar(&cfg.ProcRoot, "proc", "/proc", "procfs mount point (env HOST_PROC)")
	flags.StringVar(&cfg.DF, "df", "df", "disk free binary (env SYSINFO_DF)")
	flags.DurationVar(&cfg.Timeout, "timeout", config.DefaultTimeout, "bound on each df call, 0 for none")
	flags.BoolVar(&cfg.Debug, "debug", false, "is debug")
	return cmd
}

// applyDefaults fills every env-backed setting the command line left alone.
func applyDefaults(cmd *cobra.Command, cfg *config.Config, env config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("port") {
		cfg.Port = env.Port
	}
	if !flags.Changed("key") {
		cfg.Key = env.Key
	}
	if !flags.Changed("storage") {
		cfg.Storage = env.Storage
	}
	if !flags.Changed("proc") {
		cfg.ProcRoot = env.ProcRoot
	}
	if !flags.Changed("df") {
		cfg.DF = env.DF
	}
}

// checkReaders runs the enabled readers once before the listener opens.
// Malformed procfs or a broken df fails startup.
func checkReaders(ctx context.Context, cfg config.Config, readers Readers) (string, error) {
	report, err := collect(ctx, cfg, readers)
	if err != nil {
		return "", fmt.Errorf("startup check: %w", err)
	}
	data, err := json.Marshal(report)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runServer(cfg config.Config) error {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	readers := collector.New(collector.Options{
		ProcRoot: cfg.ProcRoot,
		DF:       cfg.DF,
		Timeout:  cfg.Timeout,
	})
	if !readers.HasProcFS() {
		log.Printf("no procfs on this platform, uptime/memory/load report fallback values")
	}
	status, err := checkReaders(context.Background(), cfg, readers)
	if err != nil {
		return err
	}
	log.Printf("status: %s", status)
	log.Printf("listening on %s (key check: %v, platform=%v uptime=%v memory=%v load=%v storage=%q)",
		cfg.Addr(), cfg.AuthEnabled(), cfg.Platform, cfg.Uptime, cfg.Memory, cfg.Load, cfg.Storage)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(cfg, readers),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

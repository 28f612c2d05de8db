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

	"github.com/brk3/weekly-habits/internal/config"
	"github.com/brk3/weekly-habits/internal/logger"
	"github.com/brk3/weekly-habits/internal/server"
	"github.com/brk3/weekly-habits/internal/storage"
	boltstore "github.com/brk3/weekly-habits/internal/storage/bolt"
	diskvstore "github.com/brk3/weekly-habits/internal/storage/diskv"
	"github.com/brk3/weekly-habits/internal/tracker"
	"github.com/brk3/weekly-habits/internal/week"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		if err := logger.Setup(c.Log.Level, c.Log.Format); err != nil {
			return err
		}
		return startServer(cmd.Context(), c)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func openStore(sc config.StorageConfig) (storage.Store, error) {
	switch sc.Driver {
	case "bolt":
		s, err := boltstore.Open(sc.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "diskv":
		s, err := diskvstore.Open(sc.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "memory":
		return storage.NewMemStore(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", sc.Driver)
}

func startServer(ctx context.Context, c *config.Config) error {
	kv, err := openStore(c.Storage)
	if err != nil {
		return err
	}
	bridge := storage.NewBridge(kv)
	defer bridge.Close()

	tr := tracker.Load(bridge)
	defer tr.Close()

	srv := &http.Server{
		Addr:              c.ListenAddr,
		Handler:           server.New(tr, week.New(c.Locale)).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("Server listening", "addr", c.ListenAddr, "storage", c.Storage.Driver, "path", c.Storage.Path)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

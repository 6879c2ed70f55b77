package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/domonda/go-csvviewer/internal/config"
	"github.com/domonda/go-csvviewer/internal/server"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	var (
		host string
		port int
		root string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the table files of a directory via HTTP",
		Long: `Serve responds to GET /view/{name} with an HTML document
and to GET /table/{name} with the bare HTML table
of the file name within the root directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("root") {
				cfg.Files.Root = root
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "Interface to bind to (env: CSVVIEW_HOST)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (env: CSVVIEW_PORT)")
	cmd.Flags().StringVarP(&root, "root", "r", "", "Directory of the served files (env: CSVVIEW_ROOT)")
	return cmd
}

// serve runs the server until ctx is done
// and then shuts it down gracefully.
func serve(ctx context.Context, cfg *config.Config) error {
	srv := server.New(cfg)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Server.Addr(), "root", cfg.Files.Root)
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		return err
	}
	slog.Info("server stopped")
	return nil
}


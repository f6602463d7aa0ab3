package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trash-toss/internal/platform/web"
)

var (
	flagWebAddr string
	flagDebug   bool
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the game to browsers",
	Long: `Start an HTTP server with a canvas client. Each browser tab gets its
own game, simulated on the server and streamed over a websocket.

Routes:
  GET /             canvas client
  GET /ws           game session
  GET /api/scores   best runs as JSON (?limit=N)
  GET /healthz      liveness

Examples:
  trashtoss web
  trashtoss web --addr 127.0.0.1:9000 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", web.DefaultAddress, "HTTP listen address (host:port)")
	webCmd.Flags().BoolVar(&flagDebug, "debug", false, "Run gin in debug mode")
}

func runWeb(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(true)
	if err != nil {
		return err
	}

	if !flagDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	// A nil *storage.Store must not become a non-nil interface
	var scores web.ScoreStore
	if store := openStore(logger); store != nil {
		defer store.Close()
		scores = store
	}

	server := web.NewServer(web.Config{
		Address:  flagWebAddr,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, scores, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Open http://localhost:%s in a browser\n", portOf(flagWebAddr))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}

// portOf returns the port part of a listen address.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}

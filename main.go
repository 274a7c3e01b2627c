package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nstehr/bumblebee/agent"
	"github.com/nstehr/bumblebee/config"
	"github.com/nstehr/bumblebee/ipc"
	"github.com/nstehr/bumblebee/journal"
)

const banner = `
 _                     _     _      _
| |__  _   _ _ __ ___ | |__ | | ___| |__   ___  ___
| '_ \| | | | '_ ' _ \| '_ \| |/ _ \ '_ \ / _ \/ _ \
| |_) | |_| | | | | | | |_) | |  __/ |_) |  __/  __/
|_.__/ \__,_|_| |_| |_|_.__/|_|\___|_.__/ \___|\___|

Crystal-Driven RTS Policy`

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		socketPath = flag.String("socket", "", "unix socket path (overrides config)")
		wsAddr     = flag.String("ws", "", "websocket listen address, e.g. :8090 (overrides config)")
		team       = flag.String("team", "", "team name (overrides config)")
		journalDir = flag.String("journal", "", "directory for the tick journal (overrides config)")
		debug      = flag.Bool("debug", false, "log every decision")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	fmt.Println(banner)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	if *socketPath != "" {
		cfg.SocketPath = *socketPath
	}
	if *wsAddr != "" {
		cfg.WSAddr = *wsAddr
	}
	if *team != "" {
		cfg.Team = *team
	}
	if *journalDir != "" {
		cfg.JournalDir = *journalDir
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting bumblebee", "team", cfg.Team, "buildOrder", fmt.Sprintf("%+v", cfg.BuildOrder), "convertRadius", cfg.ConvertRadius)

	var rec agent.Recorder
	if cfg.JournalDir != "" {
		j := journal.NewWriter(cfg.JournalDir, "ticks")
		defer j.Close()
		rec = j
		slog.Info("journaling ticks", "dir", cfg.JournalDir)
	}

	serve := func(t ipc.Transport) {
		a, err := agent.New(cfg)
		if err != nil {
			slog.Error("failed to build agent", "error", err)
			_ = t.Close()
			return
		}
		c := ipc.NewConnection(t, nil)
		agent.NewSession(c, a, rec)
		slog.Info("new connection accepted", "session", c.ID)
		c.ReadLoop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SocketPath != "" {
		// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
		if err := os.RemoveAll(cfg.SocketPath); err != nil {
			slog.Error("failed to clean up socket", "path", cfg.SocketPath, "error", err)
			os.Exit(1)
		}

		listener, err := net.Listen("unix", cfg.SocketPath)
		if err != nil {
			slog.Error("failed to listen on socket", "path", cfg.SocketPath, "error", err)
			os.Exit(1)
		}
		defer listener.Close()
		defer os.Remove(cfg.SocketPath)

		slog.Info("listening on domain socket", "path", cfg.SocketPath)

		go func() {
			for {
				conn, err := listener.Accept()
				if err != nil {
					select {
					case <-ctx.Done():
						return
					default:
						slog.Error("failed to accept connection", "error", err)
						continue
					}
				}
				go serve(ipc.NewStreamTransport(conn))
			}
		}()
	}

	if cfg.WSAddr != "" {
		mux := http.NewServeMux()
		mux.HandleFunc("/v1/agent", ipc.WSHandler(serve))
		srv := &http.Server{Addr: cfg.WSAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			slog.Info("listening for websocket hosts", "addr", cfg.WSAddr, "path", "/v1/agent")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("websocket listener failed", "error", err)
				stop()
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	<-ctx.Done()
	slog.Info("shutting down")
}

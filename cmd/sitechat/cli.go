package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"

	sitechathttp "github.com/fwojciec/sitechat/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Listener net.Listener
	Server   *sitechathttp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Addr    string `short:"a" default:":8000" env:"SITECHAT_ADDR" help:"Address to listen on"`
	Index   string `short:"i" default:"site_index.json" env:"SITECHAT_INDEX" help:"Index file built by siteindex"`
	DB      string `env:"SITECHAT_DB" help:"Read the index from this SQLite database instead"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}

// Run serves until the context is cancelled.
func (c *CLI) Run(deps *Dependencies) error {
	ln := deps.Listener
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", c.Addr)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", c.Addr, err)
		}
	}

	source := c.Index
	if c.DB != "" {
		source = c.DB
	}
	deps.Logger.Info("listening", "addr", ln.Addr().String(), "index", source)

	if err := deps.Server.Serve(deps.Ctx, ln); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	deps.Logger.Info("stopped")
	return nil
}

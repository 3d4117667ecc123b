package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shadng/sngmcp"
	"github.com/shadng/sngmcp/build"
	"github.com/shadng/sngmcp/fsnotify"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Version string

	// build
	Builder      *build.Builder
	SnapshotPath string
	Watcher      *fsnotify.Watcher
	WatchDirs    []string

	// serve
	Store     sngmcp.SnapshotStore
	Transport mcp.Transport
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogLevel LogLevel `name:"log-level" env:"SNGMCP_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log verbosity (debug, info, warn, error)"`

	Build BuildCmd `cmd:"" help:"Build the component snapshot from a workspace checkout"`
	Serve ServeCmd `cmd:"" help:"Serve catalog tools over MCP on stdio"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Root        string `short:"r" default:"." env:"SNGMCP_ROOT" help:"Workspace root holding the component sources"`
	Data        string `short:"d" default:"data/snapshot.json" env:"SNGMCP_DATA" help:"Snapshot file to write"`
	Policy      string `short:"p" env:"SNGMCP_POLICY" help:"Policy YAML overriding the authoring guide and source aliases"`
	Watch       bool   `short:"w" help:"Keep running and rebuild when sources change"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent component builds"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Data     string   `short:"d" env:"SNGMCP_DATA" help:"Snapshot file to serve (default: data/snapshot.json next to the executable)"`
	Fallback []string `name:"fallback" default:"./data/snapshot.json" help:"Snapshot files tried when the primary is missing or invalid"`
}

// LogLevel is a slog level name accepted on the command line.
type LogLevel string

// Level converts the name to a slog.Level, defaulting to info.
func (l LogLevel) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l)); err != nil {
		return slog.LevelInfo
	}
	return level
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shadng/sngmcp"
	"github.com/shadng/sngmcp/build"
	"github.com/shadng/sngmcp/fs"
	"github.com/shadng/sngmcp/fsnotify"
	"github.com/shadng/sngmcp/git"
	sngslog "github.com/shadng/sngmcp/slog"
	"github.com/shadng/sngmcp/source"
	"github.com/shadng/sngmcp/yaml"
)

// version is set at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	Version string

	// Transport carries MCP traffic for the serve command. Defaults to
	// stdin/stdout. Set before calling Run().
	Transport mcp.Transport
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Version: version}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Version: m.Version,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sngmcp"),
		kong.Description("Catalog the ShadNG component library and serve it to assistants over MCP."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sngmcp --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Logs go to stderr; stdout carries the MCP stream when serving.
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cli.LogLevel.Level()}))

	switch kongCtx.Command() {
	case "build":
		if err := m.wireBuild(deps, &cli.Build); err != nil {
			return err
		}
	case "serve":
		m.wireServe(deps, &cli.Serve)
	}

	return kongCtx.Run(deps)
}

func (m *Main) wireBuild(deps *Dependencies, cmd *BuildCmd) error {
	root, err := filepath.Abs(cmd.Root)
	if err != nil {
		return fmt.Errorf("resolve workspace root: %w", err)
	}

	policy := yaml.DefaultPolicy()
	if cmd.Policy != "" {
		policy, err = yaml.LoadPolicy(cmd.Policy)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sngmcp.ErrorMessage(err))
			return err
		}
	}

	layout := fs.DefaultLayout(root)
	store := fs.NewSnapshotStore(cmd.Data)

	deps.SnapshotPath = store.Path()
	deps.WatchDirs = layout.WatchDirs()
	deps.Watcher = &fsnotify.Watcher{Logger: deps.Logger}
	deps.Builder = &build.Builder{
		Corpus:       fs.NewCorpus(layout),
		Dependencies: sngslog.NewLoggingDependencyInferrer(source.NewInferrer(root, layout.Path(layout.LibDir), policy), deps.Logger),
		Store:        sngslog.NewLoggingSnapshotStore(store, deps.Logger),
		Policy:       policy,
		Concurrency:  cmd.Concurrency,
		Revision: func(ctx context.Context) string {
			return git.Revision(ctx, root)
		},
	}
	return nil
}

func (m *Main) wireServe(deps *Dependencies, cmd *ServeCmd) {
	paths := SnapshotCandidates(cmd.Data, cmd.Fallback, executableDir())
	deps.Logger.Debug("snapshot candidates", "paths", paths)
	deps.Store = sngslog.NewLoggingSnapshotStore(fs.NewSnapshotStore(paths[0], paths[1:]...), deps.Logger)
	deps.Transport = m.Transport
	if deps.Transport == nil {
		deps.Transport = &mcp.StdioTransport{}
	}
}

// SnapshotCandidates returns the snapshot files tried by serve in priority
// order. An empty data path means data/snapshot.json under exeDir. Paths
// naming the same file are kept once.
func SnapshotCandidates(data string, fallbacks []string, exeDir string) []string {
	if data == "" {
		data = filepath.Join(exeDir, "data", "snapshot.json")
	}

	seen := make(map[string]bool)
	var paths []string
	for _, p := range append([]string{data}, fallbacks...) {
		if p == "" {
			continue
		}
		key := filepath.Clean(p)
		if abs, err := filepath.Abs(p); err == nil {
			key = abs
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		paths = append(paths, p)
	}
	return paths
}

// executableDir is the directory holding the running binary, or "." when
// it cannot be determined.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

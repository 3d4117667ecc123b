package main

import (
	"context"
	"fmt"
	"io"

	"github.com/shadng/sngmcp"
	"github.com/shadng/sngmcp/build"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	if err := rebuild(deps.Ctx, deps); err != nil {
		return err
	}
	if !c.Watch {
		return nil
	}

	return deps.Watcher.Watch(deps.Ctx, deps.WatchDirs, func(ctx context.Context) {
		// Failures are reported and the watcher keeps running.
		_ = rebuild(ctx, deps)
	})
}

func rebuild(ctx context.Context, deps *Dependencies) error {
	res, err := deps.Builder.Build(ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	for _, w := range res.Warnings {
		deps.Logger.Warn("input degraded", "input", w.Input, "err", w.Err)
	}
	deps.Logger.Info("snapshot build",
		"id", res.ID,
		"status", res.Status.String(),
		"components", res.Components,
		"icons", res.Icons,
		"hash", res.Hash,
		"warnings", len(res.Warnings),
	)

	report(deps.Stdout, deps.SnapshotPath, res)
	return nil
}

// report prints the human-readable build summary.
func report(w io.Writer, path string, res *build.Result) {
	switch res.Status {
	case build.StatusKept:
		fmt.Fprintln(w, "Workspace sources not found; keeping existing snapshot.json")
		return
	case build.StatusUpToDate:
		fmt.Fprintf(w, "sng-mcp snapshot up-to-date: %s\n", path)
	default:
		fmt.Fprintf(w, "sng-mcp snapshot written: %s\n", path)
	}
	fmt.Fprintf(w, "components: %d\n", res.Components)
	fmt.Fprintf(w, "icons: %d\n", res.Icons)
}

// errorText prefers the application message and falls back to the full
// error chain for unexpected failures.
func errorText(err error) string {
	if sngmcp.ErrorCode(err) == sngmcp.EINTERNAL {
		return err.Error()
	}
	return sngmcp.ErrorMessage(err)
}

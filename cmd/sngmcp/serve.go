package main

import (
	"fmt"

	"github.com/shadng/sngmcp"
	mcpsrv "github.com/shadng/sngmcp/mcp"
	"github.com/shadng/sngmcp/query"
	sngslog "github.com/shadng/sngmcp/slog"
)

// Run executes the serve command. The snapshot is loaded before the
// transport starts so a missing snapshot fails fast.
func (c *ServeCmd) Run(deps *Dependencies) error {
	snapshot, err := deps.Store.Load(deps.Ctx)
	if err != nil {
		if sngmcp.ErrorCode(err) == sngmcp.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: run 'sngmcp build' to generate the snapshot")
		}
		return fmt.Errorf("load snapshot: %w", err)
	}

	catalog := sngslog.NewLoggingCatalogService(query.NewService(snapshot), deps.Logger)
	srv, err := mcpsrv.NewServer(catalog, deps.Version)
	if err != nil {
		return err
	}

	deps.Logger.Info("serving",
		"tools", len(srv.Tools()),
		"components", len(snapshot.Components),
		"icons", len(snapshot.Icons),
		"source_version", snapshot.SourceVersion,
	)
	return srv.Run(deps.Ctx, deps.Transport)
}

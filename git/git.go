// Package git resolves the source version of a corpus checkout.
package git

import (
	"context"
	"os/exec"
	"strings"
)

// Unknown is returned when the revision cannot be resolved.
const Unknown = "unknown"

// Revision returns the commit hash of HEAD in dir, or Unknown when dir is
// not a git checkout or git is unavailable.
func Revision(ctx context.Context, dir string) string {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "HEAD")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return Unknown
	}
	rev := strings.TrimSpace(string(out))
	if rev == "" {
		return Unknown
	}
	return rev
}

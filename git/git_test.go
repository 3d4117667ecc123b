package git_test

import (
	"context"
	"os/exec"
	"regexp"
	"testing"

	"github.com/shadng/sngmcp/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevision(t *testing.T) {
	t.Parallel()

	t.Run("not a repository", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, git.Unknown, git.Revision(context.Background(), t.TempDir()))
	})

	t.Run("repository with a commit", func(t *testing.T) {
		t.Parallel()

		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git not installed")
		}

		// Given a repository with one commit
		dir := t.TempDir()
		for _, args := range [][]string{
			{"init", "-q"},
			{"-c", "user.name=test", "-c", "user.email=test@example.com", "commit", "-q", "--allow-empty", "-m", "init"},
		} {
			cmd := exec.Command("git", args...)
			cmd.Dir = dir
			require.NoError(t, cmd.Run())
		}

		// When resolving the revision
		rev := git.Revision(context.Background(), dir)

		// Then a full commit hash is returned
		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{40}$`), rev)
	})
}

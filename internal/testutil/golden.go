// Package testutil provides a small golden-file comparison helper built
// on txtar, the archive format cuelang.org/go/internal/core/eval's own
// tests use for fixtures, and on kylelemons/godebug/diff for reporting
// a mismatch — the same pairing internal/cuetest's Run helper uses to
// report golden-comparison failures.
package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/diff"
	"github.com/rogpeppe/go-internal/txtar"
)

// AssertGolden reads the txtar archive at path, takes the contents of
// its "want" file section, and compares it against got, failing t with
// a unified diff if they differ.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading golden file %s: %v", path, err)
	}
	arc := txtar.Parse(data)
	var want string
	for _, f := range arc.Files {
		if f.Name == "want" {
			want = string(f.Data)
			break
		}
	}
	got = strings.TrimSpace(got) + "\n"
	want = strings.TrimSpace(want) + "\n"
	if got != want {
		t.Errorf("golden mismatch for %s:\n%s", path, diff.Diff(want, got))
	}
}

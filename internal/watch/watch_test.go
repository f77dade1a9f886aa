package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsWatchedFile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want bool
	}{
		{"/recipes/chili.md", true},
		{"/plans/2022-05-15.plan.toml", true},
		{"/recipes/chili.md.tmp", false},
		{"/plans/2022-05-15.plan.toml.tmp", false},
		{"/recipes/notes.txt", false},
		{"/plans/history.db", false},
	}
	for _, tc := range cases {
		if got := isWatchedFile(tc.name); got != tc.want {
			t.Errorf("isWatchedFile(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestWatcherDetectsWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "chili.md")
	if err := os.WriteFile(path, []byte("+++\nname = \"Chili\"\n+++\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case c := <-w.Changes:
		if filepath.Base(c.File) != "chili.md" {
			t.Errorf("change = %q", c.File)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change event")
	}
}

func TestWatcherIgnoresTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "save.tmp"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case c := <-w.Changes:
		t.Errorf("unexpected change for temp file: %q", c.File)
	case <-time.After(300 * time.Millisecond):
	}
}

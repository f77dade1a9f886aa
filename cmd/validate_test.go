package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/papapumpkin/averse/internal/recipe"
)

func writeRecipeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

const validChili = `+++
name = "Chili"
tags = ["dinner"]
ingredients = ["1 lb beef", "2 can tomatoes"]
+++
Brown the beef.
`

func TestValidateDir(t *testing.T) {
	t.Parallel()

	t.Run("clean directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeRecipeFile(t, dir, "chili.md", validChili)

		if errs := validateDir(dir); len(errs) != 0 {
			t.Errorf("errs = %v", errs)
		}
	})

	t.Run("missing directory is empty", func(t *testing.T) {
		t.Parallel()
		if errs := validateDir(filepath.Join(t.TempDir(), "nope")); len(errs) != 0 {
			t.Errorf("errs = %v", errs)
		}
	})

	t.Run("bad ingredient line", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeRecipeFile(t, dir, "bad.md", `+++
name = "Bad"
ingredients = ["plenty of salt"]
+++
`)

		errs := validateDir(dir)
		if len(errs) != 1 {
			t.Fatalf("errs = %v", errs)
		}
		var fe *recipe.FileError
		if !errors.As(errs[0], &fe) || fe.File != "bad.md" {
			t.Errorf("err = %v", errs[0])
		}
	})

	t.Run("duplicate names across files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeRecipeFile(t, dir, "a.md", validChili)
		writeRecipeFile(t, dir, "b.md", validChili)

		errs := validateDir(dir)
		if len(errs) != 1 {
			t.Fatalf("errs = %v", errs)
		}
		if !errors.Is(errs[0], recipe.ErrDuplicateName) {
			t.Errorf("err = %v, want duplicate name", errs[0])
		}
	})

	t.Run("all problems reported", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeRecipeFile(t, dir, "one.md", "no frontmatter here")
		writeRecipeFile(t, dir, "two.md", `+++
ingredients = ["1 cup rice"]
+++
`)
		writeRecipeFile(t, dir, "three.md", validChili)

		if errs := validateDir(dir); len(errs) != 2 {
			t.Errorf("errs = %v, want 2", errs)
		}
	})
}

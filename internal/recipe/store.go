package recipe

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store holds every recipe loaded from a recipe directory, keyed by
// normalized name. Recipes are immutable once loaded; Add is the only
// mutation and writes through to disk before updating memory.
type Store struct {
	dir     string
	recipes map[string]Recipe
}

// Load reads every *.md file in dir into a Store. A missing directory is
// treated as an empty store so first runs work without setup. Parse
// failures and duplicate names are reported with source-file context.
func Load(dir string) (*Store, error) {
	s := &Store{dir: dir, recipes: make(map[string]Recipe)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading recipe directory: %w", err)
	}

	files := make(map[string]string) // normalized name -> source file
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, &FileError{File: e.Name(), Err: err}
		}
		r, err := parseRecipeFile(data)
		if err != nil {
			return nil, &FileError{File: e.Name(), Err: err}
		}

		key := NormalizeName(r.Name)
		if prev, ok := files[key]; ok {
			return nil, &FileError{File: e.Name(), Err: fmt.Errorf("%w: %q also defined in %s", ErrDuplicateName, r.Name, prev)}
		}
		files[key] = e.Name()
		s.recipes[key] = r
	}

	return s, nil
}

// Dir returns the directory the store was loaded from.
func (s *Store) Dir() string {
	return s.dir
}

// Len returns the number of recipes in the store.
func (s *Store) Len() int {
	return len(s.recipes)
}

// Get looks up a recipe by name. Lookup is case-insensitive and
// whitespace-trimmed.
func (s *Store) Get(name string) (Recipe, bool) {
	r, ok := s.recipes[NormalizeName(name)]
	return r, ok
}

// Names returns every recipe name in lexicographic order of the stored
// (display) names.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.recipes))
	for _, r := range s.recipes {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

// Filter returns recipes carrying every tag in tags, sorted by name.
// An empty tag set returns all recipes.
func (s *Store) Filter(tags []string) []Recipe {
	var out []Recipe
	for _, r := range s.recipes {
		if r.HasTags(tags) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Add validates and persists a new recipe, then makes it visible in the
// store. An existing recipe of the same normalized name fails with
// ErrDuplicateName unless force is set. The file write is atomic
// (temp + rename) so an interrupted save never leaves a partial recipe.
func (s *Store) Add(r Recipe, force bool) error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	if len(r.Ingredients) == 0 {
		return ErrNoIngredients
	}

	key := NormalizeName(r.Name)
	if _, exists := s.recipes[key]; exists && !force {
		return fmt.Errorf("%w: %q", ErrDuplicateName, r.Name)
	}

	data, err := encodeRecipeFile(r)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating recipe directory: %w", err)
	}

	path := filepath.Join(s.dir, Filename(r.Name))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp recipe file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming recipe file: %w", err)
	}

	s.recipes[key] = r
	return nil
}

// Filename maps a recipe name to its on-disk file name.
func Filename(name string) string {
	slug := strings.ReplaceAll(NormalizeName(name), " ", "-")
	return slug + ".md"
}

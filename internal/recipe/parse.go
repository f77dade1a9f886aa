package recipe

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ParseFile reads and parses a single recipe file.
func ParseFile(path string) (Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recipe{}, err
	}
	return parseRecipeFile(data)
}

// frontmatter is the TOML-serializable header of a recipe file. Ingredient
// lines are stored in their "<amount> [unit] <name>" text form so the files
// stay hand-editable.
type frontmatter struct {
	Name        string   `toml:"name"`
	Tags        []string `toml:"tags,omitempty"`
	Ingredients []string `toml:"ingredients"`
}

// parseRecipeFile parses a markdown document with +++ TOML frontmatter.
// The frontmatter carries name, tags, and ingredient lines; each non-empty
// body line is one preparation step.
func parseRecipeFile(data []byte) (Recipe, error) {
	header, body, err := splitFrontmatter(string(data))
	if err != nil {
		return Recipe{}, err
	}

	var fm frontmatter
	if err := toml.Unmarshal([]byte(header), &fm); err != nil {
		return Recipe{}, fmt.Errorf("parsing TOML frontmatter: %w", err)
	}

	if strings.TrimSpace(fm.Name) == "" {
		return Recipe{}, ErrMissingName
	}
	if len(fm.Ingredients) == 0 {
		return Recipe{}, ErrNoIngredients
	}

	r := Recipe{
		Name: strings.TrimSpace(fm.Name),
		Tags: fm.Tags,
	}
	for _, line := range fm.Ingredients {
		ingr, err := ParseIngredient(line)
		if err != nil {
			return Recipe{}, err
		}
		r.Ingredients = append(r.Ingredients, ingr)
	}

	for _, line := range strings.Split(body, "\n") {
		if step := strings.TrimSpace(line); step != "" {
			r.Steps = append(r.Steps, step)
		}
	}

	return r, nil
}

// encodeRecipeFile renders a recipe back into frontmatter + body form.
// parseRecipeFile(encodeRecipeFile(r)) yields a recipe equal to r.
func encodeRecipeFile(r Recipe) ([]byte, error) {
	fm := frontmatter{
		Name: r.Name,
		Tags: r.Tags,
	}
	for _, ingr := range r.Ingredients {
		fm.Ingredients = append(fm.Ingredients, ingr.String())
	}

	header, err := toml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("+++\n")
	b.Write(header)
	b.WriteString("+++\n")
	for _, step := range r.Steps {
		b.WriteString("\n")
		b.WriteString(step)
	}
	if len(r.Steps) > 0 {
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

// splitFrontmatter splits content on +++ delimiters.
// Expected format:
//
//	+++
//	<TOML>
//	+++
//	<body>
func splitFrontmatter(content string) (string, string, error) {
	const delim = "+++"

	content = strings.TrimLeft(content, " \t\r\n")

	if !strings.HasPrefix(content, delim) {
		return "", "", fmt.Errorf("file does not start with +++ frontmatter delimiter")
	}

	rest := content[len(delim):]
	idx := strings.Index(rest, delim)
	if idx < 0 {
		return "", "", fmt.Errorf("missing closing +++ frontmatter delimiter")
	}

	return rest[:idx], rest[idx+len(delim):], nil
}

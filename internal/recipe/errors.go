package recipe

import "errors"

// Sentinel errors for recipe parsing and store operations.
var (
	// ErrDuplicateName indicates a recipe with the same normalized name
	// already exists in the store.
	ErrDuplicateName = errors.New("duplicate recipe name")
	// ErrMissingName indicates a recipe file's frontmatter has no name.
	ErrMissingName = errors.New("recipe name missing")
	// ErrNoIngredients indicates a recipe declares no ingredient lines.
	ErrNoIngredients = errors.New("recipe has no ingredients")
	// ErrBadIngredient indicates an ingredient line could not be parsed.
	ErrBadIngredient = errors.New("malformed ingredient line")
	// ErrBadAmount indicates the amount field of an ingredient line is
	// not a positive number.
	ErrBadAmount = errors.New("invalid ingredient amount")
	// ErrNotFound indicates a recipe name is not present in the store.
	ErrNotFound = errors.New("recipe not found")
)

// FileError records a parse or validation problem with source-file context.
type FileError struct {
	File string
	Err  error
}

// Error returns a human-readable string including the source file.
func (e *FileError) Error() string {
	return e.File + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *FileError) Unwrap() error {
	return e.Err
}

// IngredientError records which ingredient line failed to parse.
type IngredientError struct {
	Line string
	Err  error
}

func (e *IngredientError) Error() string {
	return "ingredient " + e.Line + ": " + e.Err.Error()
}

func (e *IngredientError) Unwrap() error {
	return e.Err
}

package ui

import (
	"fmt"
	"os"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Printer writes status and error lines to stderr, keeping stdout free for
// renderable output that can be piped.
type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}

func (p *Printer) RecipeSaved(name, path string) {
	fmt.Fprintf(os.Stderr, green+bold+"✓ recipe %q"+reset+dim+" saved to %s"+reset+"\n", name, path)
}

func (p *Printer) PlanSaved(start, end, path string) {
	fmt.Fprintf(os.Stderr, green+bold+"✓ plan %s → %s"+reset+dim+" saved to %s"+reset+"\n", start, end, path)
}

func (p *Printer) Watching(dirs ...string) {
	fmt.Fprintf(os.Stderr, cyan+"◉ watching"+reset+dim+" %v — ctrl-c to stop"+reset+"\n", dirs)
}

// ValidateResult prints the validation outcome for a recipe directory.
func (p *Printer) ValidateResult(dir string, count int, errs []error) {
	if len(errs) == 0 {
		fmt.Fprintf(os.Stderr, green+bold+"✓ %s"+reset+" — %d recipe(s), no errors\n", dir, count)
		return
	}
	fmt.Fprintf(os.Stderr, red+bold+"✗ %s"+reset+" — %d error(s):\n", dir, len(errs))
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "  "+red+"• "+reset+"%s\n", e.Error())
	}
}

// StatsRow prints one usage line for the stats command.
func (p *Printer) StatsRow(recipe string, times int, last string) {
	fmt.Fprintf(os.Stderr, "  "+yellow+"%3d×"+reset+" %-30s "+dim+"last %s"+reset+"\n", times, recipe, last)
}

func (p *Printer) StatsHeader() {
	fmt.Fprintln(os.Stderr, bold+cyan+"recipe usage"+reset)
}

func (p *Printer) StatsEmpty() {
	fmt.Fprintln(os.Stderr, dim+"no plans recorded yet"+reset)
}

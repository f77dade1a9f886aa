package mealplan

import "errors"

// Sentinel errors for plan construction and persistence.
var (
	// ErrInvalidDate indicates a date argument is not a valid YYYY-MM-DD date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidRange indicates a plan range whose start falls after its end.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrInsufficientRecipes indicates the eligible recipe pool ran out
	// before every date in the range was filled.
	ErrInsufficientRecipes = errors.New("not enough eligible recipes")
	// ErrNoPlans indicates the plan directory contains no plan files.
	ErrNoPlans = errors.New("no plans found")
	// ErrPlanNotFound indicates no plan file exists for the requested date.
	ErrPlanNotFound = errors.New("plan not found")
)

// InsufficientRecipesError names the first date the builder could not fill,
// so the caller can report exactly where the pool ran dry.
type InsufficientRecipesError struct {
	Date     Date
	Need     int
	Eligible int
}

func (e *InsufficientRecipesError) Error() string {
	return "not enough eligible recipes for " + e.Date.String()
}

// Unwrap returns ErrInsufficientRecipes for use with errors.Is.
func (e *InsufficientRecipesError) Unwrap() error {
	return ErrInsufficientRecipes
}

package hr

import "fmt"

// UnsupportedOptionError means a plan option code fell outside the closed
// enrollment table. Guessing a business rule is worse than failing
// loudly, so this is never downgraded to false or absent.
type UnsupportedOptionError struct {
	Option string
	Label  string
}

func (e *UnsupportedOptionError) Error() string {
	return fmt.Sprintf("don't know how to process plan option [%s] %s", e.Option, e.Label)
}

// UnsupportedPlanError means the dental record carries a plan this tool
// was never taught to interpret.
type UnsupportedPlanError struct {
	Plan  string
	Label string
}

func (e *UnsupportedPlanError) Error() string {
	return fmt.Sprintf("unexpected dental plan [%s] %s", e.Plan, e.Label)
}

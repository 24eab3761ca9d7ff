package sapgui

import "fmt"

// HostUnavailableError means the SAP GUI scripting entry could not be
// reached at all. Not retried here; the operator has to start SAP first.
type HostUnavailableError struct {
	Entry string
	Err   error
}

func (e *HostUnavailableError) Error() string {
	msg := fmt.Sprintf("cannot connect to SAP: no running instance registered under %q; make sure SAP is up and running, then try again", e.Entry)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *HostUnavailableError) Unwrap() error { return e.Err }

// NoAuthenticatedSessionError means the GUI is running but no session has
// a logged-in user. Requires human action; callers decide whether to
// prompt and retry.
type NoAuthenticatedSessionError struct{}

func (e *NoAuthenticatedSessionError) Error() string {
	return "no authenticated SAP session found; make sure you are logged in, then try again"
}

// AccessDeniedError means a transaction started but the window title did
// not match the expected one. The host does not say whether the
// transaction is missing or the user lacks permission; the status-bar
// text is the only clue.
type AccessDeniedError struct {
	Transaction   string
	ExpectedTitle string
	ActualTitle   string
	StatusMessage string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf(
		"transaction %s is not accessible (missing or no permission): expected title %q, got %q, status %q",
		e.Transaction, e.ExpectedTitle, e.ActualTitle, e.StatusMessage)
}

// ControlNotFoundError means a control could not be resolved by name, or
// resolved to a different kind than expected. Always fatal to the current
// operation: it signals a screen-layout mismatch or navigation drift.
type ControlNotFoundError struct {
	Name string
	Kind ControlKind
	Err  error
}

func (e *ControlNotFoundError) Error() string {
	msg := fmt.Sprintf("control %q (%s) not found on the active window", e.Name, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ControlNotFoundError) Unwrap() error { return e.Err }

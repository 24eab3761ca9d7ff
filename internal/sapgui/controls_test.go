package sapgui_test

import (
	"errors"
	"testing"

	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui"
	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui/saptest"
)

// activeWindow builds a session showing the given screen and returns its
// window handle.
func activeWindow(t *testing.T, screen *saptest.Screen) sapgui.Window {
	t.Helper()
	session := saptest.NewSession("ALICE")
	session.Active = screen
	window, err := session.ActiveWindow()
	if err != nil {
		t.Fatalf("active window: %v", err)
	}
	return window
}

func TestFind_MissingControl(t *testing.T) {
	window := activeWindow(t, saptest.NewScreen("title"))

	_, err := sapgui.Find[sapgui.TextControl](window, "P0006-STRAS", sapgui.KindTextField)
	var notFound *sapgui.ControlNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ControlNotFoundError, got: %v", err)
	}
	if notFound.Name != "P0006-STRAS" || notFound.Kind != sapgui.KindTextField {
		t.Errorf("expected name and expected-kind in context, got %q %v", notFound.Name, notFound.Kind)
	}
}

func TestFind_KindMismatch(t *testing.T) {
	screen := saptest.NewScreen("title",
		&saptest.TextField{ControlName: "RP50G-PERNR", CText: true},
	)
	window := activeWindow(t, screen)

	// The control exists but is a CTextField; asking for a plain text
	// field must fail closed.
	_, err := sapgui.Find[sapgui.TextControl](window, "RP50G-PERNR", sapgui.KindTextField)
	var notFound *sapgui.ControlNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ControlNotFoundError on kind mismatch, got: %v", err)
	}
}

func TestTextHelpers(t *testing.T) {
	screen := saptest.NewScreen("title",
		&saptest.TextField{ControlName: "P0006-ORT01", Value: "Montreal"},
		&saptest.TextField{ControlName: "RP50G-PERNR", CText: true},
		&saptest.ComboBox{ControlName: "Q0002-ANREX", Selected: "Mme"},
	)
	screen.SetStatus("ready")
	window := activeWindow(t, screen)

	if got, err := sapgui.TextOf(window, "P0006-ORT01"); err != nil || got != "Montreal" {
		t.Errorf("TextOf = %q, %v", got, err)
	}
	if err := sapgui.SetCText(window, "RP50G-PERNR", "12345"); err != nil {
		t.Fatalf("SetCText: %v", err)
	}
	if got, err := sapgui.CTextOf(window, "RP50G-PERNR"); err != nil || got != "12345" {
		t.Errorf("CTextOf = %q, %v", got, err)
	}
	if got, err := sapgui.KeyOf(window, "Q0002-ANREX"); err != nil || got != "Mme" {
		t.Errorf("KeyOf = %q, %v", got, err)
	}
	if got := sapgui.StatusText(window); got != "ready" {
		t.Errorf("StatusText = %q", got)
	}
}

func TestStatusText_MissingBarIsEmpty(t *testing.T) {
	screen := &saptest.Screen{TitleText: "bare", Controls: map[string]sapgui.Control{}}
	window := activeWindow(t, screen)

	if got := sapgui.StatusText(window); got != "" {
		t.Errorf("expected empty status on a window without a status bar, got %q", got)
	}
}

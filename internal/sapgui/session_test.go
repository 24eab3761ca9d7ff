package sapgui_test

import (
	"errors"
	"testing"

	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui"
	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui/saptest"
)

func TestAttach_NoBackend(t *testing.T) {
	orig := sapgui.AttachFunc
	sapgui.AttachFunc = nil
	defer func() { sapgui.AttachFunc = orig }()

	_, err := sapgui.Attach()
	if err != sapgui.ErrUnsupported {
		t.Fatalf("expected ErrUnsupported, got: %v", err)
	}
}

func TestActiveSession_PicksFirstAuthenticated(t *testing.T) {
	anonymous := saptest.NewSession("")
	alice := saptest.NewSession("ALICE")
	bob := saptest.NewSession("BOB")
	host := saptest.NewHost(anonymous, alice, bob)

	session, err := sapgui.ActiveSession(host)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user, _ := session.User()
	if user != "ALICE" {
		t.Errorf("expected first authenticated session (ALICE), got %q", user)
	}
}

func TestActiveSession_NoneAuthenticated(t *testing.T) {
	host := saptest.NewHost(saptest.NewSession(""), saptest.NewSession(""))

	_, err := sapgui.ActiveSession(host)
	var notAuth *sapgui.NoAuthenticatedSessionError
	if !errors.As(err, &notAuth) {
		t.Fatalf("expected NoAuthenticatedSessionError, got: %v", err)
	}
}

func TestActiveSession_NoSessionsAtAll(t *testing.T) {
	host := saptest.NewHost()

	_, err := sapgui.ActiveSession(host)
	var notAuth *sapgui.NoAuthenticatedSessionError
	if !errors.As(err, &notAuth) {
		t.Fatalf("expected NoAuthenticatedSessionError, got: %v", err)
	}
}

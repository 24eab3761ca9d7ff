package sapgui

import "github.com/rs/zerolog/log"

// BeginTransaction opens the named transaction and validates arrival by
// window title, the only success signal the host exposes.
//
// Whatever transaction is currently open is forcibly ended first so a
// stale modal dialog can never block the start. Unsaved work in the GUI is
// discarded by that reset.
func BeginTransaction(session Session, code, expectedTitle string) (Window, error) {
	if err := session.EndTransaction(); err != nil {
		return nil, err
	}

	log.Debug().Str("transaction", code).Msg("starting transaction")
	if err := session.StartTransaction(code); err != nil {
		return nil, err
	}

	window, err := session.ActiveWindow()
	if err != nil {
		return nil, err
	}
	title, err := window.Title()
	if err != nil {
		return nil, err
	}
	if title != expectedTitle {
		err := &AccessDeniedError{
			Transaction:   code,
			ExpectedTitle: expectedTitle,
			ActualTitle:   title,
			StatusMessage: StatusText(window),
		}
		log.Error().Str("transaction", code).Str("title", title).Msg("unable to access transaction")
		return nil, err
	}

	return window, nil
}

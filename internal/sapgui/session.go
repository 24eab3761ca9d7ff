package sapgui

import "github.com/rs/zerolog/log"

// ActiveSession returns the first session with a logged-in user among all
// open connections of the engine. It never retries: an unauthenticated GUI
// needs a human, not a loop.
func ActiveSession(engine Engine) (Session, error) {
	conns, err := engine.Connections()
	if err != nil {
		return nil, &HostUnavailableError{Entry: ROTEntryName, Err: err}
	}

	for _, conn := range conns {
		sessions, err := conn.Sessions()
		if err != nil {
			return nil, &HostUnavailableError{Entry: ROTEntryName, Err: err}
		}
		for _, s := range sessions {
			user, err := s.User()
			if err != nil {
				return nil, err
			}
			if user != "" {
				log.Debug().Str("user", user).Msg("found authenticated SAP session")
				return s, nil
			}
		}
	}

	log.Error().Msg("could not find an opened SAP session")
	return nil, &NoAuthenticatedSessionError{}
}

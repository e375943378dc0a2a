package domain

import (
	"fmt"

	appErrors "ideupdater/internal/errors"
)

func invalidPhaseError(phase string) error {
	return appErrors.New(appErrors.CodeInvalidPhase, fmt.Sprintf("invalid phase: %s", phase), nil)
}

func invalidTransitionError(from, to Phase) error {
	return appErrors.New(appErrors.CodeInvalidTransition, fmt.Sprintf("cannot transition from %s to %s", from, to), nil)
}

func invalidNotesError(reason string, err error) error {
	return appErrors.New(appErrors.CodeParseFailed, reason, err)
}

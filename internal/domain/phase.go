package domain

import "strings"

// Phase is the mutually exclusive mode the update dialog renders.
type Phase int

const (
	PhasePreDownload Phase = iota
	PhaseDownloading
	PhaseDownloaded
)

var phaseNames = map[Phase]string{
	PhasePreDownload: "pre-download",
	PhaseDownloading: "downloading",
	PhaseDownloaded:  "downloaded",
}

var allowedTransitions = map[Phase]map[Phase]struct{}{
	PhasePreDownload: {
		PhaseDownloading: {},
		PhaseDownloaded:  {},
	},
	PhaseDownloading: {
		PhasePreDownload: {},
		PhaseDownloaded:  {},
	},
	PhaseDownloaded: {},
}

// String returns the kebab-case name used on the command line and in logs.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePhase normalises and validates a phase name.
func ParsePhase(raw string) (Phase, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, "_", "-")
	if name == "" {
		return PhasePreDownload, invalidPhaseError("blank")
	}
	for phase, candidate := range phaseNames {
		if candidate == name {
			return phase, nil
		}
	}
	return PhasePreDownload, invalidPhaseError(raw)
}

// Validate ensures the phase is one of the three known modes.
func (p Phase) Validate() error {
	if _, ok := phaseNames[p]; !ok {
		return invalidPhaseError(p.String())
	}
	return nil
}

// PhaseFromFlags maps the legacy downloadStarted/downloadFinished pair onto
// a Phase. Finished wins over started, so finished-without-started still
// renders as downloaded.
func PhaseFromFlags(downloadStarted, downloadFinished bool) Phase {
	switch {
	case downloadFinished:
		return PhaseDownloaded
	case downloadStarted:
		return PhaseDownloading
	default:
		return PhasePreDownload
	}
}

// Flags returns the legacy boolean pair for this phase.
func (p Phase) Flags() (downloadStarted, downloadFinished bool) {
	switch p {
	case PhaseDownloaded:
		return true, true
	case PhaseDownloading:
		return true, false
	default:
		return false, false
	}
}

// CanTransitionTo reports whether a collaborator may move from p to target.
// Downloading may fall back to pre-download after a failed attempt.
func (p Phase) CanTransitionTo(target Phase) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if p == target {
		return nil
	}
	if _, ok := allowedTransitions[p][target]; ok {
		return nil
	}
	return invalidTransitionError(p, target)
}

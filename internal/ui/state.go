package ui

import "tekstitv/internal/domain"

// FetchPhase is the lifecycle state of the most recent page retrieval.
type FetchPhase int

const (
	// PhaseInit: nothing requested yet ("Opening...").
	PhaseInit FetchPhase = iota
	// PhaseFetching: a request is in flight ("Loading...").
	PhaseFetching
	// PhaseComplete: the last request produced a document.
	PhaseComplete
	// PhaseError: the last request failed but an earlier page had
	// loaded, so there is something to fall back to.
	PhaseError
	// PhaseInitFailed: the last request failed and no page has ever
	// loaded successfully.
	PhaseInitFailed
)

// FetchState is the outcome of the last page retrieval. It is owned by
// the model and only ever mutated inside the update loop, so no locking
// is needed: completions arrive as messages.
type FetchState struct {
	Phase    FetchPhase
	Document domain.Document // valid when Phase == PhaseComplete
	Raw      []byte          // payload behind Document, for the source viewer
	Err      error           // valid when Phase is Error or InitFailed
}

// failedPhase classifies a failure: InitFailed until the first
// successful load, Error once there is a previous good page to fall
// back to.
func failedPhase(everCompleted bool) FetchPhase {
	if everCompleted {
		return PhaseError
	}
	return PhaseInitFailed
}

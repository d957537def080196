// internal/pipeline/state.go
package pipeline

import "fmt"

// State is the position of a run in the per-line loop.
type State int

const (
	Idle State = iota
	Reading
	ParsingLine
	FetchingSequence
	Extracting
	Deduplicating
	Writing
	Done
	Aborted
)

var stateNames = [...]string{
	Idle:             "idle",
	Reading:          "reading",
	ParsingLine:      "parsing",
	FetchingSequence: "fetching",
	Extracting:       "extracting",
	Deduplicating:    "deduplicating",
	Writing:          "writing",
	Done:             "done",
	Aborted:          "aborted",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool { return s == Done || s == Aborted }

package recycler

import "github.com/llehouerou/broadlist/internal/ui/action"

const source = "recycler"

var (
	_ action.Action = SelectionChanged{}
	_ action.Action = Failed{}
)

// SelectionChanged is emitted when the selected position changes.
type SelectionChanged struct {
	Index int
}

// ActionType implements action.Action.
func (SelectionChanged) ActionType() string { return "recycler.selection_changed" }

// Failed is emitted once when the surface stops because a container could
// not be created.
type Failed struct {
	Err error
}

// ActionType implements action.Action.
func (Failed) ActionType() string { return "recycler.failed" }

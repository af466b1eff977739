package confirm

// Result is reported when the dialog is answered.
type Result struct {
	Confirmed bool
	Tag       string // caller-chosen label of the question
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "confirm.result" }

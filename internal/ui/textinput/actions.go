package textinput

// Result is reported when the prompt is submitted or canceled.
type Result struct {
	Text     string
	Tag      string // caller-chosen label of the prompt
	Canceled bool
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "textinput.result" }

package state

// Interface is the store contract used by the sample app.
type Interface interface {
	Load() ([]Entry, error)
	Save(entries []Entry)
	Close() error
}

var _ Interface = (*Store)(nil)

package recycler

import (
	"log/slog"

	"github.com/llehouerou/broadlist/decorator"
)

// Option configures a Model.
type Option func(*options)

type options struct {
	spacing decorator.Spacing
	margin  int
	logger  *slog.Logger
}

// WithSpacing sets the spacing decorator applied around rows.
func WithSpacing(s decorator.Spacing) Option {
	return func(o *options) {
		o.spacing = s
	}
}

// WithScrollMargin sets the rows kept visible around the selection.
func WithScrollMargin(margin int) Option {
	return func(o *options) {
		o.margin = margin
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

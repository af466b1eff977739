package sample

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/broadlist/adapter"
	"github.com/llehouerou/broadlist/internal/ui/render"
	"github.com/llehouerou/broadlist/internal/ui/styles"
	"github.com/llehouerou/broadlist/item"
)

// Widgets a click can come from, besides recycler.RowWidget.
const (
	WidgetCheckbox = "checkbox"
	WidgetDelete   = "delete"
	WidgetInfo     = "info"
)

// Templates returns the registry of the demo's containers. now stamps the
// relative "added" time of contacts.
func Templates(now func() time.Time) *adapter.Registry {
	if now == nil {
		now = time.Now
	}
	return adapter.NewRegistry().
		Register(ViewContact, func() item.Container { return &contactRow{now: now} }).
		Register(ViewTitle, func() item.Container { return &titleRow{} })
}

func gutter(focused bool) string {
	if focused {
		return styles.T().S().Marker.Render("▌")
	}
	return " "
}

type contactRow struct {
	now     func() time.Time
	contact *Contact
}

func (*contactRow) ViewType() item.ViewType { return ViewContact }

func (r *contactRow) Bind(rec item.Record) {
	r.contact, _ = rec.(*Contact)
}

func (r *contactRow) Render(width int, focused bool) string {
	if r.contact == nil {
		return ""
	}
	s := styles.T().S()

	box := s.Muted.Render("[ ]")
	if r.contact.Checked {
		box = s.Checked.Render("[x]")
	}
	left := gutter(focused) + box + " " + s.Base.Render(render.Clean(r.contact.Name))

	var right []string
	if !r.contact.AddedAt.IsZero() {
		right = append(right, s.Subtle.Render(humanize.RelTime(r.contact.AddedAt, r.now(), "ago", "from now")))
	}
	right = append(right, s.Info.Render("(i)"), s.Delete.Render("✕"))

	line := render.Row(left, strings.Join(right, " "), width)
	if focused {
		return s.Cursor.Width(width).Render(line)
	}
	return line
}

type titleRow struct {
	title *Title
}

func (*titleRow) ViewType() item.ViewType { return ViewTitle }

func (r *titleRow) Bind(rec item.Record) {
	r.title, _ = rec.(*Title)
}

func (r *titleRow) Render(width int, focused bool) string {
	if r.title == nil {
		return ""
	}
	name := render.Truncate(r.title.Name, max(width-1, 0))
	rule := styles.T().S().Subtle.Render(render.Separator(max(width-1, 0)))
	return lipgloss.JoinVertical(lipgloss.Left,
		gutter(focused)+styles.TitleGradient(name),
		" "+rule,
	)
}

package theme

import (
	"log/slog"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Loader installs the window stylesheet on a display.
type Loader struct {
	logger   *slog.Logger
	provider *gtk.CSSProvider
}

// NewLoader creates a loader holding the bundled stylesheet.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(WindowCSS())

	return &Loader{
		logger:   logger,
		provider: provider,
	}
}

// Apply applies the stylesheet to display, or the default display if nil.
// This should be called after the GTK application is initialized.
func (l *Loader) Apply(display *gdk.Display) {
	if display == nil {
		display = gdk.DisplayGetDefault()
	}
	if display == nil {
		l.logger.Warn("no display available, cannot apply stylesheet")
		return
	}

	gtk.StyleContextAddProviderForDisplay(
		display,
		l.provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
	l.logger.Debug("applied window stylesheet")
}

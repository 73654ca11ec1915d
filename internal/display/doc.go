// Package display shows the clock in a GTK4 window.
// It owns the window and its drawing area, paints the face with cairo,
// drives redraws from the glib main loop, and places the window once
// through either X11 EWMH hints or Wayland layer-shell.
package display

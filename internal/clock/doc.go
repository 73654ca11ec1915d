// Package clock computes analog hand angles and schedules once-per-second
// redraws that stay locked to wall-clock second boundaries.
//
// The package has no GTK dependency. Timers are supplied through the
// Scheduler interface so the main loop (glib in production, a fake in
// tests) decides how callbacks are dispatched.
package clock

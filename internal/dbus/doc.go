// Package dbus watches the system bus for events that knock the clock out
// of phase with the wall clock, such as resuming from suspend.
package dbus

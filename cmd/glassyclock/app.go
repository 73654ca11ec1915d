package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/jmylchreest/glassyclock/internal/config"
	"github.com/jmylchreest/glassyclock/internal/dbus"
	"github.com/jmylchreest/glassyclock/internal/display"
	"github.com/jmylchreest/glassyclock/internal/theme"
)

const appID = "io.github.jmylchreest.glassyclock"

// loadConfig reads the defaults file. Problems are logged and the
// built-in defaults are used instead.
func loadConfig(logger *slog.Logger) (*config.File, string) {
	path, err := config.Path()
	if err != nil {
		logger.Warn("failed to resolve config path", "error", err)
		return config.DefaultFile(), ""
	}

	file, err := config.Load(path)
	if err != nil {
		logger.Warn("failed to load config, using defaults", "path", path, "error", err)
		return config.DefaultFile(), path
	}
	return file, path
}

// runClock shows the clock and blocks until the application exits.
func runClock(args []string) int {
	file, configPath := loadConfig(setupLogger(slog.LevelWarn))
	logger := setupLogger(file.LogLevel())
	logger.Info("starting glassyclock", "version", version)

	cfg := config.ParseArgs(args, file.ClockConfig())
	appearance, err := file.ResolveAppearance()
	if err != nil {
		logger.Warn("invalid appearance settings, using defaults for those", "error", err)
	}

	// Several clocks may run side by side, so skip single-instance handling
	app := adw.NewApplication(appID, gio.ApplicationNonUnique)

	var (
		manager      *display.Manager
		themeLoader  *theme.Loader
		watcher      *config.Watcher
		sleepMonitor *dbus.SleepMonitor
		startFailed  bool
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := newShutdown(func() {
		// Quit from the GTK main loop, never from the signal goroutine
		glib.IdleAdd(func() {
			app.Quit()
		})
	})
	stopSignals := handleQuitSignals(ctx, quit, logger, quitSignals...)
	defer stopSignals()

	app.ConnectActivate(func() {
		if manager != nil {
			logger.Debug("clock already running")
			return
		}

		themeLoader = theme.NewLoader(logger)
		themeLoader.Apply(nil)

		manager = display.NewManager(&app.Application, cfg, appearance, logger)
		if err := manager.Start(); err != nil {
			logger.Error("failed to start clock", "error", err)
			startFailed = true
			app.Quit()
			return
		}
		logger.Info("clock ready", "backend", manager.Backend().String())

		// Appearance hot reload
		if configPath != "" {
			watcher, err = config.NewWatcher(configPath, logger)
			if err != nil {
				logger.Warn("failed to create config watcher", "error", err)
			} else {
				watcher.SetChangeCallback(func(f *config.File) {
					a, err := f.ResolveAppearance()
					if err != nil {
						logger.Warn("invalid appearance settings in reloaded config", "error", err)
					}
					glib.IdleAdd(func() {
						manager.SetAppearance(a)
					})
				})
				if err := watcher.Start(); err != nil {
					logger.Debug("config hot reload disabled", "error", err)
				}
			}
		}

		// Timers drift across suspend, so realign after resume
		sleepMonitor = dbus.NewSleepMonitor(logger)
		sleepMonitor.SetResumeHandler(func() {
			glib.IdleAdd(func() {
				manager.Resync()
			})
		})
		if err := sleepMonitor.Start(); err != nil {
			logger.Warn("resume detection unavailable", "error", err)
		}
	})

	app.ConnectShutdown(func() {
		logger.Info("application shutting down")
		if sleepMonitor != nil {
			_ = sleepMonitor.Stop()
		}
		if watcher != nil {
			_ = watcher.Stop()
		}
		if manager != nil {
			manager.Stop()
		}
	})

	// GApplication must not see the positional arguments
	status := app.Run([]string{os.Args[0]})

	if startFailed && status == 0 {
		status = 1
	}
	if status != 0 {
		logger.Error("application exited with error", "status", status)
	}
	return status
}

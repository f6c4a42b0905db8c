package main

import (
	"log/slog"
	"os"

	"zenpomodoro/internal/core/model"
	"zenpomodoro/internal/core/timekeeper"
	"zenpomodoro/internal/logging"
	"zenpomodoro/internal/platform"
	"zenpomodoro/internal/storage"
	"zenpomodoro/internal/tips"
	"zenpomodoro/internal/ui/frames"
	"zenpomodoro/internal/ui/preferences"
	"zenpomodoro/internal/ui/tray"
	"zenpomodoro/internal/ui/window"
	"zenpomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "ZenPomodoro"

func main() {
	config, configErr := loadConfig()
	logger := logging.New(os.Stderr, config.LogLevel)
	slog.SetDefault(logger)
	if configErr != nil {
		logger.Warn("config unavailable, using defaults", "error", configErr)
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Error("single instance", "error", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.zenpomodoro.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconLogo))

	keeper := timekeeper.New(config.Settings, timekeeper.Config{Clock: timekeeper.SystemClock{}})
	defer keeper.Close()
	driver := timekeeper.NewDriver(keeper, frames.New())

	provider := tips.NewGeminiProvider(config.Gemini, logger)
	board := tips.NewBoard(provider, config.Gemini.Timeout)
	keeper.OnEvent(board.Handle)

	timerWindow := window.New(fyneApp, keeper, board)
	defer timerWindow.Close()

	prefsWindow := preferences.New(fyneApp, keeper.Settings(), func(updated model.Settings) {
		keeper.UpdateSettings(updated)
		logger.Info("settings updated",
			"focus", updated.FocusMinutes,
			"short_break", updated.ShortBreakMinutes,
			"long_break", updated.LongBreakMinutes)
		timerWindow.Refresh()
	})
	timerWindow.SetOnSettings(func() {
		prefsWindow.UpdateSettings(keeper.Settings())
		prefsWindow.Show()
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:   timerWindow.Show,
			OnToggle: timerWindow.Toggle,
			OnReset:  timerWindow.Reset,
			OnMode:   timerWindow.SelectMode,
			OnQuit:   fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.IconLogo))
		timerWindow.SetCloseIntercept(func() {
			timerWindow.Hide()
		})
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	updateTray := func(snapshot timekeeper.Snapshot) {
		if trayManager != nil {
			trayManager.Update(snapshot)
		}
	}
	driver.SetOnFrame(func(snapshot timekeeper.Snapshot) {
		timerWindow.Refresh()
		updateTray(snapshot)
	})
	timerWindow.SetOnChange(updateTray)
	board.SetOnChange(func(tips.State) {
		fyne.Do(timerWindow.Refresh)
	})
	updateTray(keeper.Snapshot())

	logger.Info("starting", "mode", keeper.Snapshot().Mode, "tips_enabled", config.Gemini.APIKey != "")
	timerWindow.Show()
	fyneApp.Run()
}

func loadConfig() (storage.Config, error) {
	configDir, err := platform.NewService().AppConfigDir(appName)
	if err != nil {
		return storage.DefaultConfig().ApplyEnv(os.Getenv), err
	}
	config, err := storage.LoadConfig(configDir)
	return config.ApplyEnv(os.Getenv), err
}

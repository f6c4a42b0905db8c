package tray

import (
	"fmt"

	"zenpomodoro/internal/core/model"
	"zenpomodoro/internal/core/timekeeper"

	"fyne.io/fyne/v2"
)

// MenuSetter is the part of desktop.App the tray needs.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow   func()
	OnToggle func()
	OnReset  func()
	OnMode   func(model.Mode)
	OnQuit   func()
}

// Manager handles system tray state.
type Manager struct {
	app         MenuSetter
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	resetItem   *fyne.MenuItem
	modeItem    *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
	running     bool
	mode        model.Mode
}

// New creates a tray manager with the provided callbacks.
func New(app MenuSetter, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		mode:      model.ModePomodoro,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	var modeItems []*fyne.MenuItem
	for _, mode := range model.Modes {
		item := fyne.NewMenuItem(mode.Label(), func() {
			if manager.callbacks.OnMode != nil {
				manager.callbacks.OnMode(mode)
			}
		})
		modeItems = append(modeItems, item)
	}
	manager.modeItem = fyne.NewMenuItem("Mode", nil)
	manager.modeItem.ChildMenu = fyne.NewMenu("", modeItems...)

	manager.refreshMenu()
	return manager
}

// Update reflects the timer state. The menu is rebuilt only when the
// visible text changes.
func (manager *Manager) Update(snapshot timekeeper.Snapshot) {
	status := fmt.Sprintf("%s %s", snapshot.Label(), snapshot.Clock())
	if status == manager.statusLabel && snapshot.Running == manager.running && snapshot.Mode == manager.mode {
		return
	}
	manager.statusLabel = status
	manager.running = snapshot.Running
	manager.mode = snapshot.Mode
	manager.refreshStatus()
}

// Status returns the status line shown in the menu.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if !manager.running {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)

	if manager.running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	for _, item := range manager.modeItem.ChildMenu.Items {
		item.Checked = item.Label == manager.mode.Label()
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("ZenPomodoro",
		manager.statusItem,
		fyne.NewMenuItem("Show", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.toggleItem,
		manager.resetItem,
		manager.modeItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}

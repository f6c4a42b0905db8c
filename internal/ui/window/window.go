package window

import (
	"context"
	"image/color"

	"zenpomodoro/internal/core/model"
	"zenpomodoro/internal/core/timekeeper"
	"zenpomodoro/internal/tips"
	"zenpomodoro/internal/ui/animation"
	"zenpomodoro/internal/ui/ring"
	"zenpomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	ringSide      = float32(280)
	clockTextSize = float32(56)
)

var (
	backgroundColor = color.NRGBA{R: 17, G: 24, B: 39, A: 255}
	trackColor      = color.NRGBA{R: 55, G: 65, B: 81, A: 255}
	captionColor    = color.NRGBA{R: 107, G: 114, B: 128, A: 255}
	clockColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Window manages the timer UI. All methods except the tip callback must be
// called on the fyne main goroutine.
type Window struct {
	window       fyne.Window
	keeper       *timekeeper.TimeKeeper
	board        *tips.Board
	pulse        *animation.Engine
	ring         *ring.Ring
	clockText    *canvas.Text
	captionText  *canvas.Text
	phaseBar     *fyne.Container
	phaseButtons map[model.Phase]*widget.Button
	modeButtons  map[model.Mode]*widget.Button
	toggleButton *widget.Button
	resetButton  *widget.Button
	tipButton    *widget.Button
	tipLabel     *widget.Label
	tipCard      *fyne.Container
	onSettings   func()
	onChange     func(timekeeper.Snapshot)
	pulsing      bool
	toggleIcon   string
	tipIcon      string
}

// New creates the timer window.
func New(app fyne.App, keeper *timekeeper.TimeKeeper, board *tips.Board) *Window {
	window := app.NewWindow("ZenPomodoro")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timerWindow := &Window{
		window:       window,
		keeper:       keeper,
		board:        board,
		phaseButtons: make(map[model.Phase]*widget.Button),
		modeButtons:  make(map[model.Mode]*widget.Button),
	}
	timerWindow.build()
	timerWindow.pulse = animation.New(animation.DefaultConfig(), func(resource fyne.Resource) {
		fyne.Do(func() {
			if timerWindow.pulsing {
				timerWindow.tipButton.SetIcon(theme.NewThemedResource(resource))
			}
		})
	})

	window.SetContent(container.NewStack(canvas.NewRectangle(backgroundColor), timerWindow.content()))
	window.Resize(fyne.NewSize(420, 640))
	timerWindow.Refresh()
	return timerWindow
}

func (timerWindow *Window) build() {
	snapshot := timerWindow.keeper.Snapshot()

	timerWindow.ring = ring.New(ringSide, ring.Style{
		Fill:  snapshot.Accent().Color(),
		Track: trackColor,
	})

	timerWindow.clockText = canvas.NewText(snapshot.Clock(), clockColor)
	timerWindow.clockText.Alignment = fyne.TextAlignCenter
	timerWindow.clockText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerWindow.clockText.TextSize = clockTextSize

	timerWindow.captionText = canvas.NewText(snapshot.Label(), captionColor)
	timerWindow.captionText.Alignment = fyne.TextAlignCenter
	timerWindow.captionText.TextSize = 14

	var phaseObjects []fyne.CanvasObject
	for _, phase := range model.Phases {
		button := widget.NewButton(phase.ShortLabel(), func() {
			timerWindow.SelectPhase(phase)
		})
		timerWindow.phaseButtons[phase] = button
		phaseObjects = append(phaseObjects, button)
	}
	timerWindow.phaseBar = container.NewCenter(container.NewHBox(phaseObjects...))

	timerWindow.resetButton = widget.NewButtonWithIcon("", themed(resources.IconReset), timerWindow.Reset)
	timerWindow.toggleButton = widget.NewButtonWithIcon("", themed(resources.IconPlay), timerWindow.Toggle)
	timerWindow.toggleButton.Importance = widget.HighImportance
	timerWindow.tipButton = widget.NewButtonWithIcon("", themed(resources.IconSparklesDim), timerWindow.RequestTip)

	timerWindow.tipLabel = widget.NewLabel("")
	timerWindow.tipLabel.Wrapping = fyne.TextWrapWord
	timerWindow.tipLabel.Alignment = fyne.TextAlignCenter
	timerWindow.tipLabel.TextStyle = fyne.TextStyle{Italic: true}
	dismiss := widget.NewButton("dismiss", timerWindow.DismissTip)
	dismiss.Importance = widget.LowImportance
	timerWindow.tipCard = container.NewVBox(timerWindow.tipLabel, container.NewCenter(dismiss))
	timerWindow.tipCard.Hide()

	icons := map[model.Mode]string{
		model.ModePomodoro:  resources.IconClock,
		model.ModeStopwatch: resources.IconStopwatch,
		model.ModeTimer:     resources.IconHourglass,
	}
	for _, mode := range model.Modes {
		timerWindow.modeButtons[mode] = widget.NewButtonWithIcon(mode.Label(), themed(icons[mode]), func() {
			timerWindow.SelectMode(mode)
		})
	}
}

func (timerWindow *Window) content() fyne.CanvasObject {
	title := canvas.NewText("ZENPOMODORO", captionColor)
	title.TextSize = 12
	title.TextStyle = fyne.TextStyle{Bold: true}
	settingsButton := widget.NewButtonWithIcon("", themed(resources.IconSettings), func() {
		if timerWindow.onSettings != nil {
			timerWindow.onSettings()
		}
	})
	settingsButton.Importance = widget.LowImportance
	header := container.NewHBox(title, layout.NewSpacer(), settingsButton)

	dial := container.New(&dialLayout{}, timerWindow.ring.CanvasObject(), timerWindow.clockText, timerWindow.captionText)
	controls := container.NewCenter(container.NewHBox(timerWindow.resetButton, timerWindow.toggleButton, timerWindow.tipButton))

	var navObjects []fyne.CanvasObject
	for _, mode := range model.Modes {
		navObjects = append(navObjects, timerWindow.modeButtons[mode])
	}
	nav := container.NewGridWithColumns(len(navObjects), navObjects...)

	body := container.NewVBox(timerWindow.phaseBar, container.NewCenter(dial), controls, timerWindow.tipCard)
	return container.NewPadded(container.NewBorder(header, nav, nil, nil, container.NewCenter(body)))
}

// Show displays the window.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// Hide hides the window without stopping the timer.
func (timerWindow *Window) Hide() {
	timerWindow.window.Hide()
}

// SetOnSettings sets the settings button handler.
func (timerWindow *Window) SetOnSettings(handler func()) {
	timerWindow.onSettings = handler
}

// SetOnChange registers a handler called after every user-triggered
// transition with the resulting state.
func (timerWindow *Window) SetOnChange(handler func(timekeeper.Snapshot)) {
	timerWindow.onChange = handler
}

// SetCloseIntercept forwards to the underlying window.
func (timerWindow *Window) SetCloseIntercept(handler func()) {
	timerWindow.window.SetCloseIntercept(handler)
}

// Toggle starts or pauses the timer.
func (timerWindow *Window) Toggle() {
	timerWindow.keeper.Toggle()
	timerWindow.changed()
}

// Reset restores the current counter.
func (timerWindow *Window) Reset() {
	timerWindow.keeper.Reset()
	timerWindow.changed()
}

// SelectMode switches to mode.
func (timerWindow *Window) SelectMode(mode model.Mode) {
	timerWindow.keeper.SetMode(mode)
	timerWindow.changed()
}

// SelectPhase switches the Pomodoro phase.
func (timerWindow *Window) SelectPhase(phase model.Phase) {
	timerWindow.keeper.SetPhase(phase)
	timerWindow.changed()
}

// RequestTip asks for a tip matching the current mode and phase. Requests
// are ignored while one is loading.
func (timerWindow *Window) RequestTip() {
	timerWindow.board.Request(timerWindow.keeper.Snapshot().TipContext())
	timerWindow.Refresh()
}

// DismissTip hides the tip card.
func (timerWindow *Window) DismissTip() {
	timerWindow.board.Dismiss()
	timerWindow.Refresh()
}

// Close stops background animation.
func (timerWindow *Window) Close() {
	timerWindow.pulse.Stop()
}

// Refresh redraws the window from the keeper and the tip board.
func (timerWindow *Window) Refresh() {
	snapshot := timerWindow.keeper.Snapshot()
	accent := snapshot.Accent().Color()

	timerWindow.ring.Update(snapshot.Progress(), accent)
	setText(timerWindow.clockText, snapshot.Clock())
	setText(timerWindow.captionText, snapshot.Label())

	if snapshot.Mode == model.ModePomodoro {
		timerWindow.phaseBar.Show()
	} else {
		timerWindow.phaseBar.Hide()
	}
	for phase, button := range timerWindow.phaseButtons {
		setImportance(button, phase == snapshot.Phase)
	}
	for mode, button := range timerWindow.modeButtons {
		setImportance(button, mode == snapshot.Mode)
	}

	toggleIcon := resources.IconPlay
	if snapshot.Running {
		toggleIcon = resources.IconPause
	}
	setIcon(timerWindow.toggleButton, &timerWindow.toggleIcon, toggleIcon)

	timerWindow.refreshTip(timerWindow.board.Snapshot())
}

func (timerWindow *Window) refreshTip(state tips.State) {
	if state.Loading && !timerWindow.pulsing {
		timerWindow.pulsing = true
		timerWindow.tipButton.Disable()
		timerWindow.pulse.StartPulse(context.Background(), animation.PulseSpec{
			Bright: resources.MustIcon(resources.IconSparkles),
			Dim:    resources.MustIcon(resources.IconSparklesDim),
		})
	}
	if !state.Loading && timerWindow.pulsing {
		timerWindow.pulsing = false
		timerWindow.pulse.Stop()
		// The pulse changed the icon behind our back.
		timerWindow.tipIcon = ""
		timerWindow.tipButton.Enable()
	}
	if !state.Loading {
		icon := resources.IconSparklesDim
		if state.Visible {
			icon = resources.IconSparkles
		}
		setIcon(timerWindow.tipButton, &timerWindow.tipIcon, icon)
	}

	if state.Visible {
		timerWindow.tipLabel.SetText(`"` + state.Text + `"`)
		timerWindow.tipCard.Show()
		return
	}
	timerWindow.tipCard.Hide()
}

func (timerWindow *Window) changed() {
	timerWindow.Refresh()
	if timerWindow.onChange != nil {
		timerWindow.onChange(timerWindow.keeper.Snapshot())
	}
}

func setText(text *canvas.Text, value string) {
	if text.Text == value {
		return
	}
	text.Text = value
	text.Refresh()
}

func setImportance(button *widget.Button, active bool) {
	importance := widget.LowImportance
	if active {
		importance = widget.MediumImportance
	}
	if button.Importance == importance {
		return
	}
	button.Importance = importance
	button.Refresh()
}

func setIcon(button *widget.Button, current *string, name string) {
	if *current == name {
		return
	}
	*current = name
	button.SetIcon(themed(name))
}

func themed(name string) fyne.Resource {
	return theme.NewThemedResource(resources.MustIcon(name))
}

// dialLayout draws the ring as a square and centres the clock and caption
// over it.
type dialLayout struct{}

func (layout *dialLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	dial := objects[0]
	clock := objects[1]
	caption := objects[2]

	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	dial.Move(fyne.NewPos((size.Width-side)/2, (size.Height-side)/2))
	dial.Resize(fyne.NewSize(side, side))

	clockSize := clock.MinSize()
	captionSize := caption.MinSize()
	gap := float32(4)
	blockHeight := clockSize.Height + gap + captionSize.Height
	top := (size.Height - blockHeight) / 2

	clock.Move(fyne.NewPos(0, top))
	clock.Resize(fyne.NewSize(size.Width, clockSize.Height))
	caption.Move(fyne.NewPos(0, top+clockSize.Height+gap))
	caption.Resize(fyne.NewSize(size.Width, captionSize.Height))
}

func (layout *dialLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	side := objects[0].MinSize().Width
	clockWidth := objects[1].MinSize().Width
	if clockWidth > side {
		side = clockWidth
	}
	return fyne.NewSize(side, side)
}

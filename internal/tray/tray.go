package tray

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"sync"

	"fyne.io/systray"
	"go.uber.org/zap"

	"github.com/username/consumption-calendar/internal/billing"
	"github.com/username/consumption-calendar/internal/calendar"
)

// selection is a clicked menu entry; day 0 means the monthly summary
type selection struct {
	month int
	day   int
}

// TrayApp shows the consumption calendar as a system tray menu
type TrayApp struct {
	manager    *billing.Manager
	title      string
	logger     *zap.Logger
	selections chan selection
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewTrayApp creates a new system tray application
func NewTrayApp(manager *billing.Manager, title string, logger *zap.Logger) *TrayApp {
	return &TrayApp{
		manager:    manager,
		title:      title,
		logger:     logger,
		selections: make(chan selection),
		quit:       make(chan struct{}),
	}
}

// Run starts the system tray application (blocks until Quit)
func (t *TrayApp) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *TrayApp) onReady() {
	systray.SetIcon(icon())
	systray.SetTitle(t.title)
	systray.SetTooltip("Consumption calendar")

	// One submenu per month: its days, then the monthly consultation
	for _, m := range calendar.Months() {
		mMonth := systray.AddMenuItem(m.Name, fmt.Sprintf("%d days", m.Days))
		for day := 1; day <= m.Days; day++ {
			mDay := mMonth.AddSubMenuItem(strconv.Itoa(day), fmt.Sprintf("%s %d", m.Name, day))
			go t.forward(mDay, selection{month: m.Index, day: day})
		}
		mSummary := mMonth.AddSubMenuItem("Monthly summary", "Lowest and highest days and total cost")
		go t.forward(mSummary, selection{month: m.Index})
	}

	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")

	go t.dispatch(mQuit)
}

func (t *TrayApp) onExit() {
	t.logger.Info("System tray exited")
}

// forward hands clicks of one menu item to the dispatch loop
func (t *TrayApp) forward(item *systray.MenuItem, sel selection) {
	for {
		select {
		case <-item.ClickedCh:
			select {
			case t.selections <- sel:
			case <-t.quit:
				return
			}
		case <-t.quit:
			return
		}
	}
}

// dispatch handles every selection on a single goroutine
func (t *TrayApp) dispatch(mQuit *systray.MenuItem) {
	for {
		select {
		case sel := <-t.selections:
			t.show(sel)
		case <-mQuit.ClickedCh:
			t.logger.Info("Quit clicked from tray")
			t.Stop()
			systray.Quit()
			return
		case <-t.quit:
			systray.Quit()
			return
		}
	}
}

// Stop stops the system tray application
func (t *TrayApp) Stop() {
	t.stopOnce.Do(func() {
		close(t.quit)
	})
}

func (t *TrayApp) show(sel selection) {
	title, message, err := t.render(sel)
	if err != nil {
		t.logger.Error("Failed to build dialog",
			zap.Int("month", sel.month),
			zap.Int("day", sel.day),
			zap.Error(err))
		return
	}
	t.showDialog(title, message)
}

// render builds the dialog title and text for a selection
func (t *TrayApp) render(sel selection) (string, string, error) {
	if sel.day == 0 {
		summary, err := t.manager.Month(sel.month)
		if err != nil {
			return "", "", err
		}
		return billing.MonthTitle, billing.FormatMonth(*summary), nil
	}

	report, err := t.manager.Day(sel.month, sel.day)
	if err != nil {
		return "", "", err
	}
	return billing.DayTitle, billing.FormatDay(*report), nil
}

// icon draws a 16x16 three-bar chart, one bar per band
func icon() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	bars := []struct {
		x0, height int
		c          color.RGBA
	}{
		{1, 6, color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}},
		{6, 10, color.RGBA{R: 0xf9, G: 0xa8, B: 0x25, A: 0xff}},
		{11, 14, color.RGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}},
	}
	for _, b := range bars {
		for x := b.x0; x < b.x0+4; x++ {
			for y := 16 - b.height; y < 16; y++ {
				img.Set(x, y, b.c)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

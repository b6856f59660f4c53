package tray

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
	"time"

	"fyne.io/systray"
	"go.uber.org/zap/zaptest"

	"github.com/username/consumption-calendar/internal/billing"
	"github.com/username/consumption-calendar/internal/consumption"
	"github.com/username/consumption-calendar/pkg/random"
)

func newTestApp(t *testing.T) *TrayApp {
	logger := zaptest.NewLogger(t)
	store := consumption.NewStore(random.New(21), logger)
	manager := billing.NewManager(store, billing.DefaultTariff(), logger)
	return NewTrayApp(manager, "kWh", logger)
}

func TestTrayApp_Render(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name       string
		sel        selection
		wantTitle  string
		wantPrefix string
		wantErr    bool
	}{
		{
			name:       "day dialog",
			sel:        selection{month: 1, day: 5},
			wantTitle:  billing.DayTitle,
			wantPrefix: "Day 5 of February",
		},
		{
			name:       "monthly summary",
			sel:        selection{month: 10},
			wantTitle:  billing.MonthTitle,
			wantPrefix: "Consultation for November",
		},
		{
			name:    "day out of range",
			sel:     selection{month: 1, day: 30},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, message, err := app.render(tt.sel)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("render(%+v) expected error", tt.sel)
				}
				return
			}
			if err != nil {
				t.Fatalf("render(%+v) error = %v", tt.sel, err)
			}
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if !strings.HasPrefix(message, tt.wantPrefix) {
				t.Errorf("message = %q, want prefix %q", message, tt.wantPrefix)
			}
		})
	}
}

func TestTrayApp_RenderIsStable(t *testing.T) {
	app := newTestApp(t)

	_, first, err := app.render(selection{month: 4, day: 12})
	if err != nil {
		t.Fatal(err)
	}
	_, second, err := app.render(selection{month: 4, day: 12})
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("same day rendered differently:\n%s\n---\n%s", first, second)
	}
}

func TestTrayApp_Forward(t *testing.T) {
	app := newTestApp(t)
	item := &systray.MenuItem{ClickedCh: make(chan struct{})}

	done := make(chan struct{})
	go func() {
		app.forward(item, selection{month: 2, day: 9})
		close(done)
	}()

	item.ClickedCh <- struct{}{}
	select {
	case sel := <-app.selections:
		if sel.month != 2 || sel.day != 9 {
			t.Errorf("forwarded %+v, want {2 9}", sel)
		}
	case <-time.After(time.Second):
		t.Fatal("click was not forwarded")
	}

	app.Stop()
	app.Stop() // second stop is a no-op

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forward did not return after Stop")
	}
}

func TestIcon(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(icon()))
	if err != nil {
		t.Fatalf("icon is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("icon size = %v, want 16x16", b)
	}
}

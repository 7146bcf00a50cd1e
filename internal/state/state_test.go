package state

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/surface"
	"github.com/yourusername/floatwin/internal/window"
)

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

// newWindow creates a Fixed 400x300 window at (100, 100) on 1280x800
func newWindow(t *testing.T) *window.Window {
	t.Helper()
	return newWindowWith(t, window.Options{
		Policy:   window.Fixed,
		Position: &window.Position{Top: length.Px(100), Left: length.Px(100)},
		Size:     &window.Size{Width: length.Px(400), Height: length.Px(300)},
	})
}

func newWindowWith(t *testing.T, opts window.Options) *window.Window {
	t.Helper()
	w, err := window.New(surface.NewMemory(1280, 800, 300, 200), opts)
	if err != nil {
		t.Fatalf("window.New() error: %v", err)
	}
	return w
}

// === State Tests ===

func TestNewRuntimeState(t *testing.T) {
	state := NewRuntimeState()

	if state.Version != StateVersion {
		t.Errorf("Version = %d, want %d", state.Version, StateVersion)
	}
	if state.Windows == nil {
		t.Error("Windows should not be nil")
	}
	if len(state.Windows) != 0 {
		t.Error("Windows should be empty")
	}
}

func TestCapture(t *testing.T) {
	w := newWindow(t)
	ws := Capture("tui", w)

	if ws.Host != "tui" {
		t.Errorf("Host = %q, want tui", ws.Host)
	}
	if ws.Policy != window.Fixed {
		t.Errorf("Policy = %s, want Fixed", ws.Policy)
	}
	if ws.Left != length.Px(100) || ws.Top != length.Px(100) {
		t.Errorf("position = %s, %s, want 100px, 100px", ws.Left, ws.Top)
	}
	if ws.Width != length.Px(400) || ws.Height != length.Px(300) {
		t.Errorf("size = %s x %s, want 400px x 300px", ws.Width, ws.Height)
	}
	if !floatEquals(ws.Viewport.Width, 1280) || !floatEquals(ws.Viewport.Height, 800) {
		t.Errorf("Viewport = %+v, want 1280x800", ws.Viewport)
	}
	if ws.Snapshot != nil {
		t.Error("fresh window should have no snapshot")
	}
}

func TestRecordAndLookup(t *testing.T) {
	state := NewRuntimeState()
	w := newWindow(t)

	if state.Lookup("tui") != nil {
		t.Fatal("Lookup should return nil before Record")
	}

	state.Record("tui", w)
	if !state.HasState("tui") {
		t.Fatal("HasState should be true after Record")
	}

	ws := state.Lookup("tui")
	if ws == nil {
		t.Fatal("Lookup returned nil")
	}

	// Lookup returns a copy
	ws.Policy = window.Relative
	if state.Lookup("tui").Policy != window.Fixed {
		t.Error("modifying a looked up state should not change the stored one")
	}
}

func TestRecordTracksCommands(t *testing.T) {
	state := NewRuntimeState()
	w := newWindow(t)

	if err := w.Maximize(); err != nil {
		t.Fatal(err)
	}
	state.Record("x11", w)

	ws := state.Lookup("x11")
	if ws.Policy != window.Relative {
		t.Errorf("Policy = %s, want Relative", ws.Policy)
	}
	if ws.Width.String() != "100%" || ws.Height.String() != "100%" {
		t.Errorf("size = %s x %s, want 100%% x 100%%", ws.Width, ws.Height)
	}
}

func TestRecordClosedForgets(t *testing.T) {
	state := NewRuntimeState()
	w := newWindow(t)
	state.Record("gui", w)

	w.Close()
	state.Record("gui", w)

	if state.HasState("gui") {
		t.Error("closed window should be forgotten")
	}
}

func TestForget(t *testing.T) {
	state := NewRuntimeState()
	state.Record("serve", newWindow(t))
	state.Forget("serve")

	if state.HasState("serve") {
		t.Error("HasState should be false after Forget")
	}
	// Forgetting an unknown host is a no-op
	state.Forget("missing")
}

func TestApplyTo(t *testing.T) {
	tests := []struct {
		name     string
		ws       WindowState
		wantPol  window.Policy
		wantSize bool
	}{
		{
			name:     "fixed keeps size",
			ws:       WindowState{Policy: window.Fixed, Top: length.Px(10), Left: length.Px(20), Width: length.Px(300), Height: length.Px(250)},
			wantPol:  window.Fixed,
			wantSize: true,
		},
		{
			name:     "auto drops size",
			ws:       WindowState{Policy: window.Auto, Top: length.Px(10), Left: length.Px(20), Width: length.Px(300), Height: length.Px(200)},
			wantPol:  window.Auto,
			wantSize: false,
		},
		{
			name:     "zero size ignored",
			ws:       WindowState{Policy: window.Relative, Top: length.Percent(5), Left: length.Percent(5)},
			wantPol:  window.Relative,
			wantSize: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := window.Options{Policy: window.Fixed, Sizer: 7}
			tt.ws.ApplyTo(&opts)

			if opts.Policy != tt.wantPol {
				t.Errorf("Policy = %s, want %s", opts.Policy, tt.wantPol)
			}
			if opts.Position == nil || opts.Position.Top != tt.ws.Top || opts.Position.Left != tt.ws.Left {
				t.Errorf("Position = %+v, want %s, %s", opts.Position, tt.ws.Top, tt.ws.Left)
			}
			if (opts.Size != nil) != tt.wantSize {
				t.Errorf("Size set = %v, want %v", opts.Size != nil, tt.wantSize)
			}
			if opts.Sizer != 7 {
				t.Errorf("Sizer = %v, should be untouched", opts.Sizer)
			}
		})
	}
}

func TestApplyToReopensWindow(t *testing.T) {
	w := newWindow(t)
	ws := Capture("tui", w)

	opts := window.Options{}
	ws.ApplyTo(&opts)
	reopened := newWindowWith(t, opts)

	b := reopened.Bounds()
	if !floatEquals(b.X, 100) || !floatEquals(b.Y, 100) || !floatEquals(b.Width, 400) || !floatEquals(b.Height, 300) {
		t.Errorf("Bounds = %+v, want 100,100 400x300", b)
	}
}

// === Persistence Tests ===

func TestLoadState_NoFile(t *testing.T) {
	state, err := LoadStateFrom("/nonexistent/path/to/state.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(state.Windows) != 0 {
		t.Error("expected empty state for nonexistent file")
	}
}

func TestLoadState_Corrupt(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(tmpFile, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadStateFrom(tmpFile); err == nil {
		t.Error("expected error for corrupt state file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "state.json")

	w := newWindow(t)
	if err := w.Maximize(); err != nil {
		t.Fatal(err)
	}
	w.Save(true)

	state := NewRuntimeState()
	state.Record("tui", w)
	if err := state.SaveTo(tmpFile); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadStateFrom(tmpFile)
	if err != nil {
		t.Fatal(err)
	}

	want := state.Lookup("tui")
	got := loaded.Lookup("tui")
	if got == nil {
		t.Fatal("tui state not preserved")
	}
	if got.Policy != want.Policy {
		t.Errorf("Policy = %s, want %s", got.Policy, want.Policy)
	}
	if got.Top != want.Top || got.Left != want.Left || got.Width != want.Width || got.Height != want.Height {
		t.Errorf("geometry = %s %s %s %s, want %s %s %s %s",
			got.Top, got.Left, got.Width, got.Height, want.Top, want.Left, want.Width, want.Height)
	}
	if got.Snapshot == nil || got.Snapshot.Width != want.Snapshot.Width {
		t.Errorf("Snapshot = %+v, want %+v", got.Snapshot, want.Snapshot)
	}

	// Only the state file is left behind
	entries, err := os.ReadDir(filepath.Dir(tmpFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("state dir has %d entries, want 1", len(entries))
	}
}

func TestLoadState_NewerVersion(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(tmpFile, []byte(`{"version": 99, "windows": {}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadStateFrom(tmpFile); err == nil {
		t.Error("expected error for a newer state version")
	}
}

func TestLoadState_DropsInvalidEntries(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "state.json")
	data := `{"version": 1, "windows": {"tui": null, "x11": {"policy": "Huge"}, "gui": {"policy": "Fixed", "top": "10px", "left": "5%"}}}`
	if err := os.WriteFile(tmpFile, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	rs, err := LoadStateFrom(tmpFile)
	if err != nil {
		t.Fatal(err)
	}
	hosts := rs.Hosts()
	if len(hosts) != 1 || hosts[0] != "gui" {
		t.Fatalf("Hosts() = %v, want [gui]", hosts)
	}
	if ws := rs.Lookup("gui"); ws.Left != length.Percent(5) {
		t.Errorf("Left = %s, want 5%%", ws.Left)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	nestedPath := filepath.Join(t.TempDir(), "nested", "dirs", "state.json")

	state := NewRuntimeState()
	if err := state.SaveTo(nestedPath); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(nestedPath); os.IsNotExist(err) {
		t.Error("state file was not created")
	}
}

func TestResetAt(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "state.json")

	state := NewRuntimeState()
	state.Record("tui", newWindow(t))
	if err := state.SaveTo(tmpFile); err != nil {
		t.Fatal(err)
	}

	if err := state.ResetAt(tmpFile); err != nil {
		t.Fatal(err)
	}
	if len(state.Windows) != 0 {
		t.Error("Windows should be empty after reset")
	}

	loaded, err := LoadStateFrom(tmpFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Windows) != 0 {
		t.Error("reset state should be persisted")
	}
}

// === Query Tests ===

func TestHosts(t *testing.T) {
	state := NewRuntimeState()
	for _, h := range []string{"x11", "gui", "tui"} {
		state.Record(h, newWindow(t))
	}

	hosts := state.Hosts()
	want := []string{"gui", "tui", "x11"}
	if len(hosts) != len(want) {
		t.Fatalf("Hosts() = %v, want %v", hosts, want)
	}
	for i := range want {
		if hosts[i] != want[i] {
			t.Errorf("Hosts()[%d] = %q, want %q", i, hosts[i], want[i])
		}
	}
}

func TestSummary(t *testing.T) {
	state := NewRuntimeState()
	state.Record("tui", newWindow(t))

	summary := state.Summary()

	if summary["version"] != StateVersion {
		t.Error("version not in summary")
	}
	if summary["windowCount"] != 1 {
		t.Error("windowCount incorrect")
	}

	windows := summary["windows"].(map[string]interface{})
	tui := windows["tui"].(map[string]interface{})
	if tui["policy"] != "Fixed" {
		t.Errorf("policy = %v, want Fixed", tui["policy"])
	}
	if tui["width"] != "400px" {
		t.Errorf("width = %v, want 400px", tui["width"])
	}
	if tui["snapshot"] != false {
		t.Error("snapshot should be false")
	}
}

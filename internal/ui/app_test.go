package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/gridsheet/internal/activity"
	"github.com/five82/gridsheet/internal/grid"
	"github.com/five82/gridsheet/internal/logging"
	"github.com/five82/gridsheet/internal/prefs"
	"github.com/five82/gridsheet/internal/sheet"
)

type harness struct {
	t         *testing.T
	m         Model
	feed      *activity.Feed
	prefsPath string
}

func newHarness(t *testing.T, width, height int) *harness {
	t.Helper()
	s, err := sheet.Sample()
	require.NoError(t, err)

	feed := activity.NewFeed(64, logrus.DebugLevel)
	logger := logging.Discard()
	logger.SetLevel(logrus.DebugLevel)
	logger.AddHook(feed)

	h := &harness{t: t, feed: feed, prefsPath: filepath.Join(t.TempDir(), "prefs.toml")}
	h.m = New(Options{
		Sheet:     s,
		Logger:    logrus.NewEntry(logger),
		Feed:      feed,
		PrefsPath: h.prefsPath,
	})
	h.send(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	require.True(h.t, ok)
	h.m = m
	return cmd
}

func (h *harness) keys(names ...string) {
	h.t.Helper()
	for _, n := range names {
		h.send(keyMsg(n))
	}
}

func (h *harness) mouse(action tea.MouseAction, x, y int) {
	h.t.Helper()
	h.send(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
}

func (h *harness) selected() grid.Coordinate {
	h.t.Helper()
	c, ok := h.m.Selected()
	require.True(h.t, ok, "expected a selection")
	return c
}

func (h *harness) messages() []string {
	var out []string
	for _, e := range h.feed.Recent(64) {
		out = append(out, e.Message)
	}
	return out
}

func (h *harness) last() activity.Entry {
	h.t.Helper()
	e, ok := h.feed.Last()
	require.True(h.t, ok, "expected a diagnostic entry")
	return e
}

var specialKeys = map[string]tea.KeyType{
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"enter":     tea.KeyEnter,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"ctrl+home": tea.KeyCtrlHome,
	"ctrl+end":  tea.KeyCtrlEnd,
	"esc":       tea.KeyEsc,
	"ctrl+c":    tea.KeyCtrlC,
}

func keyMsg(name string) tea.KeyMsg {
	if t, ok := specialKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// With the default widths and 8 px per cell the columns occupy
// 6, 36, 16, 16, 18, 18, 18, 12, 16, 16 cells, each followed by a separator.
const (
	sepJobRequest = 43
	xStatus       = 62
)

func TestInitialRender(t *testing.T) {
	h := newHarness(t, 200, 30)
	assert.Equal(t, grid.Coordinate{Row: 1, Col: 0}, h.selected())

	view := h.m.View()
	assert.Len(t, strings.Split(view, "\n"), 30)
	for _, want := range []string{"Job Request", "Aisha Patel", "6,200,000 ₹", "All Orders", "New Action", "# 1"} {
		assert.Contains(t, view, want)
	}
}

func TestViewBeforeFirstResize(t *testing.T) {
	s, err := sheet.Sample()
	require.NoError(t, err)
	assert.Equal(t, "Loading...", New(Options{Sheet: s}).View())
}

func TestKeyboardNavigation(t *testing.T) {
	h := newHarness(t, 200, 30)

	h.keys("right", "right", "down", "enter")
	assert.Equal(t, grid.Coordinate{Row: 3, Col: 2}, h.selected())

	h.keys("end", "tab")
	assert.Equal(t, grid.Coordinate{Row: 4, Col: 0}, h.selected())

	h.keys("shift+tab")
	assert.Equal(t, grid.Coordinate{Row: 3, Col: 9}, h.selected())

	h.keys("home")
	assert.Equal(t, grid.Coordinate{Row: 3, Col: 0}, h.selected())

	e := h.last()
	assert.Equal(t, "navigated", e.Message)
	assert.Equal(t, 3, e.Fields["row"])
	assert.Equal(t, "#", e.Fields["column"])
}

func TestBlockedMovesAreNotLogged(t *testing.T) {
	h := newHarness(t, 200, 30)
	h.keys("up", "left", "ctrl+home")
	assert.Equal(t, grid.Coordinate{Row: 1, Col: 0}, h.selected())
	assert.Empty(t, h.messages())
}

func TestVerticalScrollFollowsSelection(t *testing.T) {
	h := newHarness(t, 200, 12)
	rows := h.m.gridRows()
	require.Equal(t, 6, rows)

	h.keys("ctrl+end")
	assert.Equal(t, grid.Coordinate{Row: 25, Col: 9}, h.selected())
	assert.Equal(t, 25-rows+1, h.m.rowOffset)

	h.keys("ctrl+home")
	assert.Equal(t, 1, h.m.rowOffset)
}

func TestHorizontalScrollFollowsSelection(t *testing.T) {
	h := newHarness(t, 60, 30)
	h.keys("end")
	assert.Equal(t, 7, h.m.colOffset)
	assert.Contains(t, h.m.View(), "Est. Value")

	h.keys("home")
	assert.Equal(t, 0, h.m.colOffset)
}

func TestEscClearsSelection(t *testing.T) {
	h := newHarness(t, 200, 30)
	h.keys("down", "esc")
	_, ok := h.m.Selected()
	assert.False(t, ok)

	before := len(h.messages())
	h.keys("down", "tab", "ctrl+end")
	_, ok = h.m.Selected()
	assert.False(t, ok)
	assert.Len(t, h.messages(), before)
	assert.Contains(t, h.m.View(), "No selection")
}

func TestMouseClickSelectsCell(t *testing.T) {
	h := newHarness(t, 200, 30)
	h.mouse(tea.MouseActionPress, xStatus, lineFirstRow+2)
	h.mouse(tea.MouseActionRelease, xStatus, lineFirstRow+2)

	assert.Equal(t, grid.Coordinate{Row: 3, Col: sheet.ColStatus}, h.selected())
	assert.Contains(t, h.messages(), "cell clicked")
	assert.Equal(t, "navigated", h.last().Message)
}

func TestMouseClickScrollsPartlyVisibleColumn(t *testing.T) {
	h := newHarness(t, 80, 30)
	// Submitter starts at x=78 and is 18 cells wide, so only two show.
	h.mouse(tea.MouseActionPress, 79, lineFirstRow)
	assert.Equal(t, grid.Coordinate{Row: 1, Col: sheet.ColSubmitter}, h.selected())
	assert.Equal(t, 2, h.m.colOffset)
}

func TestMouseClickRestoresClearedSelection(t *testing.T) {
	h := newHarness(t, 200, 30)
	h.keys("esc")
	h.mouse(tea.MouseActionPress, 2, lineFirstRow)
	assert.Equal(t, grid.Coordinate{Row: 1, Col: 0}, h.selected())
}

func TestMouseDragResizesColumn(t *testing.T) {
	h := newHarness(t, 200, 30)

	h.mouse(tea.MouseActionPress, sepJobRequest, lineHeader)
	require.True(t, h.m.resizer.Active())

	h.mouse(tea.MouseActionMotion, sepJobRequest+10, lineHeader)
	assert.Equal(t, 368, h.m.ColumnWidths()[sheet.ColJobRequest])

	h.mouse(tea.MouseActionMotion, sepJobRequest+5, lineHeader+4)
	assert.Equal(t, 328, h.m.ColumnWidths()[sheet.ColJobRequest])
	assert.NotContains(t, h.messages(), "column resized")

	h.mouse(tea.MouseActionRelease, sepJobRequest+5, lineHeader+4)
	assert.False(t, h.m.resizer.Active())

	e := h.last()
	assert.Equal(t, "column resized", e.Message)
	assert.Equal(t, "Job Request", e.Fields["column"])
	assert.Equal(t, 328, e.Fields["width"])

	widths := h.m.ColumnWidths()
	for col, w := range sheet.DefaultWidths() {
		if col != sheet.ColJobRequest {
			assert.Equal(t, w, widths[col], "column %d", col)
		}
	}
}

func TestMouseDragStopsAtFloor(t *testing.T) {
	h := newHarness(t, 200, 30)
	h.mouse(tea.MouseActionPress, sepJobRequest, lineHeader)
	h.mouse(tea.MouseActionMotion, 0, lineHeader)
	h.mouse(tea.MouseActionRelease, 0, lineHeader)
	assert.Equal(t, grid.MinColumnWidth, h.m.ColumnWidths()[sheet.ColJobRequest])
}

func TestStaleSessionIsEnded(t *testing.T) {
	cases := map[string]tea.Msg{
		"focus lost":    tea.BlurMsg{},
		"window resize": tea.WindowSizeMsg{Width: 180, Height: 28},
		"new press":     tea.MouseMsg{X: xStatus, Y: lineFirstRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
	}
	for name, msg := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, 200, 30)
			h.mouse(tea.MouseActionPress, sepJobRequest, lineHeader)
			h.mouse(tea.MouseActionMotion, sepJobRequest+2, lineHeader)

			h.send(msg)
			assert.False(t, h.m.resizer.Active())
			assert.Contains(t, h.messages(), "column resized")

			// Motion after the session ended changes nothing.
			h.mouse(tea.MouseActionMotion, sepJobRequest+20, lineHeader)
			assert.Equal(t, 304, h.m.ColumnWidths()[sheet.ColJobRequest])
		})
	}
}

func TestReleaseWithoutSessionIsHarmless(t *testing.T) {
	h := newHarness(t, 200, 30)
	h.mouse(tea.MouseActionRelease, 10, 10)
	h.mouse(tea.MouseActionMotion, 50, lineHeader)
	assert.Equal(t, sheet.DefaultWidths(), h.m.ColumnWidths())
	assert.Empty(t, h.messages())
}

func TestKeyboardResize(t *testing.T) {
	h := newHarness(t, 200, 30)
	h.keys("right", ">")
	assert.Equal(t, 296, h.m.ColumnWidths()[sheet.ColJobRequest])
	assert.False(t, h.m.resizer.Active())
	assert.Equal(t, "column resized", h.last().Message)

	h.keys("<", "<")
	assert.Equal(t, 280, h.m.ColumnWidths()[sheet.ColJobRequest])

	// The 48 px index column is already below the floor, so narrowing it is
	// a no-op while widening lifts it past the floor.
	h.keys("home")
	before := len(h.messages())
	h.keys("<")
	assert.Equal(t, 48, h.m.ColumnWidths()[sheet.ColIndex])
	assert.Len(t, h.messages(), before)

	h.keys(">")
	assert.Equal(t, 56, h.m.ColumnWidths()[sheet.ColIndex])
}

func TestBottomTabs(t *testing.T) {
	h := newHarness(t, 200, 30)
	h.keys("]")
	assert.Equal(t, "Pending", BottomTabs[h.m.activeTab])

	h.keys("[", "[")
	assert.Equal(t, "Arrived", BottomTabs[h.m.activeTab])
	assert.Equal(t, "Arrived", h.last().Fields["tab"])

	// "All Orders" spans [1,11); "Pending" starts two cells later.
	h.mouse(tea.MouseActionPress, 14, 28)
	assert.Equal(t, "Pending", BottomTabs[h.m.activeTab])
	assert.Equal(t, "tab selected", h.last().Message)
}

func TestToolbarButtonsOnlyLog(t *testing.T) {
	h := newHarness(t, 200, 30)
	before := h.selected()

	// "Tool bar »" [1,11), "Hide fields" [13,24), "Sort" [26,30)
	h.mouse(tea.MouseActionPress, 27, lineToolbar)
	e := h.last()
	assert.Equal(t, "button clicked", e.Message)
	assert.Equal(t, "Sort", e.Fields["action"])

	h.mouse(tea.MouseActionPress, 2, lineActions)
	assert.Equal(t, "Q3 Financial Overview", h.last().Fields["action"])

	assert.Equal(t, before, h.selected())
	assert.Equal(t, sheet.DefaultWidths(), h.m.ColumnWidths())
}

func TestSearch(t *testing.T) {
	h := newHarness(t, 200, 30)

	h.keys("/")
	require.True(t, h.m.searching)
	h.keys("blocked", "enter")
	assert.False(t, h.m.searching)
	assert.Equal(t, grid.Coordinate{Row: 5, Col: sheet.ColStatus}, h.selected())
	assert.Contains(t, h.messages(), "search")

	h.keys("/", "zzzzzz", "enter")
	assert.Equal(t, grid.Coordinate{Row: 5, Col: sheet.ColStatus}, h.selected())
	e := h.last()
	assert.Equal(t, "search", e.Message)
	assert.Equal(t, false, e.Fields["hit"])
}

func TestSearchEscKeepsSelection(t *testing.T) {
	h := newHarness(t, 200, 30)
	h.keys("down", "/", "Irfan", "esc")
	assert.False(t, h.m.searching)
	assert.Equal(t, grid.Coordinate{Row: 2, Col: 0}, h.selected())
}

func TestClickEndsSearch(t *testing.T) {
	h := newHarness(t, 200, 30)
	h.keys("/", "Ir")
	require.True(t, h.m.searching)

	h.mouse(tea.MouseActionPress, xStatus, lineFirstRow+2)
	assert.False(t, h.m.searching)
	assert.Equal(t, grid.Coordinate{Row: 3, Col: sheet.ColStatus}, h.selected())

	h.keys("down")
	assert.Equal(t, grid.Coordinate{Row: 4, Col: sheet.ColStatus}, h.selected())
}

func TestSearchKeysDoNotNavigate(t *testing.T) {
	h := newHarness(t, 200, 30)
	h.keys("/", "q", "T", "?")
	assert.True(t, h.m.searching)
	assert.False(t, h.m.showHelp)
	assert.Equal(t, "Nightfox", h.m.theme.Name)
	assert.Equal(t, "qT?", h.m.search.Value())
}

func TestCycleThemePersists(t *testing.T) {
	h := newHarness(t, 200, 30)
	h.keys("T")
	assert.Equal(t, "Kanagawa", h.m.theme.Name)
	assert.Equal(t, "Kanagawa", prefs.Load(h.prefsPath).Theme)
}

func TestHelpOverlay(t *testing.T) {
	h := newHarness(t, 200, 40)
	h.keys("?")
	require.True(t, h.m.showHelp)
	view := h.m.View()
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "Widen column")

	// The closing key is swallowed.
	h.keys("down")
	assert.False(t, h.m.showHelp)
	assert.Equal(t, grid.Coordinate{Row: 1, Col: 0}, h.selected())
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		h := newHarness(t, 200, 30)
		cmd := h.send(keyMsg(k))
		require.NotNil(t, cmd, k)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, k)
	}
}

package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/gridsheet/internal/activity"
	"github.com/five82/gridsheet/internal/grid"
	"github.com/five82/gridsheet/internal/logging"
	"github.com/five82/gridsheet/internal/prefs"
	"github.com/five82/gridsheet/internal/sheet"
)

// Options configures the UI.
type Options struct {
	Context       context.Context
	Sheet         sheet.Sheet
	Logger        *logrus.Entry
	Feed          *activity.Feed
	ThemeName     string
	PrefsPath     string
	PixelsPerCell int
	Mouse         bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	log       *logrus.Entry
	feed      *activity.Feed
	prefsPath string
	pxPerCell int
	keys      keyMap

	// Data state
	sheet   sheet.Sheet
	dims    grid.Dimensions
	nav     *grid.Navigator
	resizer *grid.Resizer

	// UI state
	theme     Theme
	width     int
	height    int
	ready     bool
	rowOffset int // first data row on screen, 1-based
	colOffset int // first column on screen
	activeTab int

	// Search box
	search    textinput.Model
	searching bool

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model over s.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logrus.NewEntry(logging.Discard())
	}
	log = log.WithField("component", "ui")

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	pxPerCell := opts.PixelsPerCell
	if pxPerCell <= 0 {
		pxPerCell = DefaultPixelsPerCell
	}

	dims := opts.Sheet.Dimensions()
	nav := grid.NewNavigator(dims, func(c grid.Coordinate) {
		log.WithFields(logrus.Fields{
			"row":    c.Row,
			"col":    c.Col,
			"column": sheet.ColumnTitle(c.Col),
		}).Info("navigated")
	})
	resizer := grid.NewResizer(sheet.DefaultWidths(), func(col, width int) {
		log.WithFields(logrus.Fields{
			"column": sheet.ColumnTitle(col),
			"width":  width,
		}).Info("column resized")
	})

	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = "⌕ "
	ti.CharLimit = 64
	ti.Width = searchSlotWidth - 3

	return Model{
		log:       log,
		feed:      opts.Feed,
		prefsPath: prefsPath,
		pxPerCell: pxPerCell,
		keys:      DefaultKeyMap(),
		sheet:     opts.Sheet,
		dims:      dims,
		nav:       nav,
		resizer:   resizer,
		theme:     GetTheme(themeName),
		rowOffset: 1,
		search:    ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// A drag cannot survive the layout changing under the pointer.
		m.endResize()
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.clampOffsets()
		m.ensureVisible()
		return m, nil

	case tea.BlurMsg:
		// The release may never arrive once the terminal loses focus.
		m.endResize()
		return m, nil
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) renderMain() string {
	return strings.Join([]string{
		m.renderNav(),
		m.renderToolbar(),
		m.renderActionTabs(),
		m.renderGrid(),
		m.renderBottomTabs(),
		m.renderFooter(),
	}, "\n")
}

// Selected returns the selected cell, if any.
func (m Model) Selected() (grid.Coordinate, bool) {
	return m.nav.Selected()
}

// ColumnWidths returns the current column widths in pixels.
func (m Model) ColumnWidths() []int {
	return m.resizer.Widths()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	_, err := tea.NewProgram(m, programOpts...).Run()
	return err
}

package ui

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canvasnav/internal/board"
	"canvasnav/internal/config"
	"canvasnav/internal/domain"
	"canvasnav/internal/eventbus"
	"canvasnav/internal/ui/handlers"
	inputtypes "canvasnav/internal/ui/input/types"
	"canvasnav/internal/ui/layout"
	"canvasnav/internal/ui/views"
)

func testModel(t *testing.T) (*Model, config.ConfigService) {
	t.Helper()
	store := board.NewMemoryCardStore()
	store.Replace(domain.Board{Title: "Sessions", Cards: []domain.Card{
		{ID: "a", Title: "Deploy pipeline", Body: "rollout to staging"},
		{ID: "b", Title: "Write docs"},
		{ID: "c", Title: "Deploy preview", Body: "one\ntwo\nthree"},
		{ID: "d", Title: "Fix login"},
		{ID: "e", Title: "Refactor store", Status: domain.StatusActive},
	}})

	cfg := config.DefaultConfig()
	cfg.UISettings.MinCardWidth = 20
	cfg.UISettings.SmoothScroll = false
	svc := config.NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	m := NewModel(cfg, svc, store, nil)
	m.Update(tea.WindowSizeMsg{Width: 64, Height: 20})
	return m, svc
}

// smoothModel runs the shipped defaults, smooth scrolling included, over a demo board
func smoothModel(t *testing.T, width, height int) *Model {
	t.Helper()
	store := board.NewMemoryCardStore()
	store.Replace(board.Demo(24))

	cfg := config.DefaultConfig()
	require.True(t, cfg.UISettings.SmoothScroll)
	svc := config.NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	m := NewModel(cfg, svc, store, nil)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// settle feeds frame messages until the model stops asking for them
func settle(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		_, cmd := m.Update(frameMsg(time.Now()))
		if cmd == nil {
			return
		}
	}
	t.Fatal("scroll animation never settled")
}

// assertSelectionVisible checks the selected card lies inside the viewport
func assertSelectionVisible(t *testing.T, m *Model) {
	t.Helper()
	i := selected(t, m)
	r, ok := m.services.Layout.Bounds(i)
	require.True(t, ok)
	offset := float64(m.services.Scroll.Offset())
	viewport := float64(views.BoardHeight(m.height, false))
	assert.GreaterOrEqual(t, r.Top, offset)
	assert.LessOrEqual(t, r.Bottom, offset+viewport)
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		press(m, runes(string(r)))
	}
}

func selected(t *testing.T, m *Model) int {
	t.Helper()
	i, ok := m.state.Selected()
	require.True(t, ok, "expected a selection")
	return i
}

func TestArrowKeysNavigate(t *testing.T) {
	m, _ := testModel(t)
	assert.Equal(t, 3, m.services.Layout.Columns())

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, selected(t, m))

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, selected(t, m))

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 4, selected(t, m), "card e sits below card b")

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 3, selected(t, m))

	press(m, runes("G"))
	assert.Equal(t, 4, selected(t, m))
	press(m, runes("g"))
	assert.Equal(t, 0, selected(t, m))

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	_, ok := m.state.Selected()
	assert.False(t, ok)
}

func TestFilterSuppressesNavigation(t *testing.T) {
	m, _ := testModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeyRight})

	press(m, runes("/"))
	require.Equal(t, inputtypes.ModeFilter, m.inputHandler.CurrentMode())
	assert.True(t, m.TextFocused())

	typeText(m, "dep")
	assert.Equal(t, 2, m.state.ItemCount())
	_, ok := m.state.Selected()
	assert.False(t, ok, "the selected card was filtered out")

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	typeText(m, "jk")
	_, ok = m.state.Selected()
	assert.False(t, ok, "navigation keys go to the text field")
	assert.Equal(t, "depjk", m.state.FilterQuery)

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, "dep", m.state.FilterQuery)
	assert.Equal(t, 2, m.state.ItemCount())

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, selected(t, m))

	// esc drops the selection first, then the filter
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.state.FilterQuery)
	assert.Equal(t, 5, m.state.ItemCount())
}

func TestFilterCancelRestoresQuery(t *testing.T) {
	m, _ := testModel(t)

	press(m, runes("/"))
	typeText(m, "fix")
	assert.Equal(t, 1, m.state.ItemCount())

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.state.FilterQuery)
	assert.Equal(t, 5, m.state.ItemCount())
}

func TestHelpOverlaySuppressesNavigation(t *testing.T) {
	m, _ := testModel(t)

	press(m, runes("?"))
	assert.True(t, m.OverlayOpen())
	assert.Contains(t, m.View(), "Keyboard")

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	_, ok := m.state.Selected()
	assert.False(t, ok)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.OverlayOpen())

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, selected(t, m))
}

func TestModifiedEnterIsIgnored(t *testing.T) {
	m, _ := testModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyDown})

	// No program is attached, so a plain enter only logs
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.services.Dispatcher.Enabled())
	assert.Empty(t, m.pending)

	press(m, tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	assert.Equal(t, 0, selected(t, m))
}

func TestCopySelectedTitle(t *testing.T) {
	m, _ := testModel(t)
	var copied []string
	m.copyText = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	press(m, runes("y"))
	assert.Empty(t, copied, "nothing is selected yet")

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	cmd := press(m, runes("y"))
	assert.Equal(t, []string{"Write docs"}, copied)
	assert.Equal(t, `Copied "Write docs"`, m.state.StatusMessage)
	assert.NotNil(t, cmd, "status message is cleared later")

	m.copyText = func(string) error { return errors.New("no display") }
	press(m, runes("y"))
	assert.Equal(t, "Could not copy: no display", m.state.StatusMessage)
}

func TestSmoothScrollFollowsSelection(t *testing.T) {
	m := smoothModel(t, 64, 16)

	var cmd tea.Cmd
	for i := 0; i < 30 && !m.services.Scroll.Animating(); i++ {
		cmd = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.True(t, m.services.Scroll.Animating(), "moving down should eventually scroll")
	assert.NotNil(t, cmd, "a frame tick is returned with the key")
	assert.True(t, m.ticking)

	settle(t, m)
	assert.False(t, m.services.Scroll.Animating())
	assert.False(t, m.ticking)
	assert.Equal(t, m.services.Scroll.Target(), m.services.Scroll.Offset())
	assert.Positive(t, m.services.Scroll.Offset())
	assertSelectionVisible(t, m)
}

func TestResizeScrollsSelectionBackIntoView(t *testing.T) {
	m := smoothModel(t, 64, 200)
	press(m, runes("G"))
	settle(t, m)
	require.Equal(t, 0, m.services.Scroll.Offset(), "the whole board fits")

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 64, Height: 12})
	require.True(t, m.services.Scroll.Animating())
	require.NotNil(t, cmd, "resize must return the frame tick it started")
	assert.True(t, m.ticking)
	assert.Empty(t, m.pending)

	settle(t, m)
	assert.False(t, m.ticking)
	assert.Positive(t, m.services.Scroll.Offset())
	assertSelectionVisible(t, m)
}

func TestJumpSkipsAnimation(t *testing.T) {
	m := smoothModel(t, 64, 12)

	press(m, runes("G"))
	assert.Equal(t, 23, selected(t, m))
	assert.False(t, m.services.Scroll.Animating())
	assert.Positive(t, m.services.Scroll.Offset())
	assertSelectionVisible(t, m)

	press(m, runes("g"))
	assert.Equal(t, 0, selected(t, m))
	assert.False(t, m.services.Scroll.Animating())
	assert.Equal(t, 0, m.services.Scroll.Offset())
}

func TestAppReadyWelcomesFirstRun(t *testing.T) {
	m, _ := testModel(t)
	_, cmd := m.Update(EventMsg{Event: eventbus.AppReadyEvent{}})
	assert.NotNil(t, cmd)
	assert.Equal(t, handlers.WelcomeMessage, m.state.StatusMessage)
}

func TestToggleLayoutSavesOnQuit(t *testing.T) {
	m, svc := testModel(t)

	press(m, runes("v"))
	assert.Equal(t, layout.ModeMasonry, m.services.Layout.Mode())
	assert.Equal(t, "masonry", m.config.UISettings.Layout)

	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.services.Dispatcher.Enabled())

	saved, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, "masonry", saved.UISettings.Layout)
}

func TestBoardLoadedEventReloads(t *testing.T) {
	m, _ := testModel(t)
	cards := append(m.store.Cards(), domain.Card{ID: "f", Title: "New session"})
	m.store.Replace(domain.Board{Title: "Sessions", Cards: cards})

	m.Update(EventMsg{Event: eventbus.BoardLoadedEvent{Title: "Sessions", Cards: 6}})
	assert.Equal(t, 6, m.state.ItemCount())
	assert.Equal(t, 6, m.services.Layout.Len())
	assert.Equal(t, "Loaded 6 cards", m.state.StatusMessage)
}

func TestView(t *testing.T) {
	m, _ := testModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyDown})

	out := m.View()
	assert.Contains(t, out, "Sessions")
	assert.Contains(t, out, "Deploy pipeline")
	assert.Contains(t, out, "5 cards")

	m.Update(pauseRenderingMsg{})
	assert.Equal(t, "", m.View())
	m.Update(resumeRenderingMsg{})
	assert.NotEmpty(t, m.View())
}

func TestRenderCardDetail(t *testing.T) {
	out := RenderCardDetail(domain.Card{ID: "x1", Title: "Deploy", Body: "full body", Status: domain.StatusIdle})
	assert.Contains(t, out, "Deploy")
	assert.Contains(t, out, "x1")
	assert.Contains(t, out, "full body")
	assert.Contains(t, out, "idle")
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/sim"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// bannerTicks is how long the level-solved banner stays up.
const bannerTicks = 90

// GameModel is the Bubble Tea model driving one sokoban session.
type GameModel struct {
	sim        *sim.Simulation
	view       GameView
	screen     *core.Screen
	store      *storage.Store
	registry   *levels.Registry
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper

	banner      string
	bannerLeft  int
	quitting    bool
	backToMenu  bool
	finalResult sim.StepResult
}

// NewGameModel creates a game model playing the given registry starting at
// startLevel.
func NewGameModel(reg *levels.Registry, store *storage.Store, rcfg core.RuntimeConfig, gcfg config.GameConfig, startLevel int) (GameModel, error) {
	s := sim.New(reg)
	s.SetMoveDuration(gcfg.Gameplay.MoveDuration)
	if err := s.LoadLevel(startLevel); err != nil {
		return GameModel{}, err
	}

	return GameModel{
		sim:        s,
		view:       NewGameView(gcfg.Display.TileWidth),
		screen:     core.NewScreen(rcfg.ScreenW, rcfg.ScreenH),
		store:      store,
		registry:   reg,
		config:     rcfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to the level picker when paused or after finishing the campaign.
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionBack && (m.sim.Paused() || m.sim.Completed()) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events. The simulation is untouched;
// only the screen buffer changes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	dt := m.config.TickInterval()
	res := m.sim.Step(m.inputFrame, dt)
	m.inputFrame.Clear()

	if res.LevelAdvanced || res.Completed {
		m.saveCompletion(res)
		m.finalResult = res
		m.banner = levelSolvedBanner(res, m.registry)
		m.bannerLeft = bannerTicks
	}
	if res.EditRequested {
		m.backToMenu = true
	}
	if m.bannerLeft > 0 {
		m.bannerLeft--
	}

	return m, tickCmd(m.config.TickRate)
}

// saveCompletion records a solved level. Best-effort: play continues whether
// the write lands or not.
func (m GameModel) saveCompletion(res sim.StepResult) {
	if m.store == nil {
		return
	}
	//nolint:errcheck
	m.store.SaveCompletion(storage.Completion{
		LevelID:      res.SolvedLevel,
		Moves:        res.SolvedStats.Moves,
		Pushes:       res.SolvedStats.Pushes,
		Undos:        res.SolvedStats.Undos,
		DurationSecs: res.SolvedStats.Seconds,
	})
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.view.Render(m.screen, m.sim, m.levelName())

	switch {
	case m.sim.Completed():
		renderOverlay(m.screen, "All levels solved!", "Press Q to quit, Esc for menu")
	case m.sim.Paused():
		renderOverlay(m.screen, "Paused", "Press P to continue, Esc for menu")
	case m.bannerLeft > 0:
		renderOverlay(m.screen, m.banner, "")
	}

	return RenderScreen(m.screen)
}

// levelName resolves the display name of the current level.
func (m GameModel) levelName() string {
	lvl, ok := m.registry.Get(m.sim.State().Level)
	if !ok {
		return ""
	}
	return lvl.Name
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested the level picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

func levelSolvedBanner(res sim.StepResult, reg *levels.Registry) string {
	banner := fmt.Sprintf("Level %d solved in %d moves!", res.SolvedLevel, res.SolvedStats.Moves)
	if lvl, ok := reg.Get(res.SolvedLevel); ok && lvl.Name != "" {
		banner = fmt.Sprintf("%s (%s)", banner, lvl.Name)
	}
	return banner
}

// Run starts the Bubble Tea program with a standalone game model.
func Run(reg *levels.Registry, store *storage.Store, rcfg core.RuntimeConfig, gcfg config.GameConfig, startLevel int) error {
	model, err := NewGameModel(reg, store, rcfg, gcfg, startLevel)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeplay"
	"github.com/SeamusWaldron/cubeplay/internal/config"
	"github.com/SeamusWaldron/cubeplay/internal/recorder"
	"github.com/SeamusWaldron/cubeplay/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [moves...]",
	Short: "Step through a move sequence interactively",
	Long: `Load a move sequence and step through it forwards and backwards.

Controls:
  SPACE     - Play / pause
  n, right  - Step forward
  b, left   - Step back
  r         - Rewind to the start
  0         - Jump to the start without animating
  $         - Jump to the end without animating
  x         - Reset to a solved cube
  +/-       - Faster / slower
  d         - Toggle the sticker net
  :         - Type a move (e.g. R', r2, M) and press Enter to turn it
              (paused only; Esc cancels)
  q/Esc     - Quit`,
	RunE: runPlay,
}

var (
	playFile  string
	playDelay int
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVarP(&playFile, "file", "f", "", "Read moves from a file")
	playCmd.Flags().IntVar(&playDelay, "delay", 0, "Milliseconds between moves (overrides the config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	if playDelay > 0 {
		cfg.TurnDelayMs = playDelay
	}

	script, err := readScript(args, playFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	db, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := newPlayModel(cfg, log, db, script)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	m.session.SetOrientationCallback(func(up, front cubeplay.Color) {
		p.Send(orientationMsg{up: up, front: front})
	})
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	if err := m.verifyJournal(); err != nil {
		log.WithError(err).Warn("journal check failed")
	}
	if err := m.session.End(); err != nil {
		return err
	}
	history, err := m.session.History()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, sum := range history {
		fmt.Fprintln(out, statusStyle.Render(fmt.Sprintf(
			"Session %s: %d moves, %d orientation changes in %.1fs",
			sum.SessionID, sum.Moves, sum.OrientationChanges, float64(sum.ElapsedMs)/1000)))
	}
	return nil
}

// Playback direction of the running animation.
type playMode int

const (
	modePaused playMode = iota
	modeForward
	modeBackward
)

type playTickMsg time.Time

// orientationMsg reports that the cube is now held differently.
type orientationMsg struct {
	up, front cubeplay.Color
}

// playModel drives a Player one move per tick.
type playModel struct {
	player  *cubeplay.Player
	session *recorder.Session
	log     *logrus.Logger
	script  string

	delay    time.Duration
	mode     playMode
	showNet  bool
	lastMove string
	lastErr  error
	held     string
	quitting bool

	// Move entry
	entering bool
	entry    string
}

func newPlayModel(cfg config.Config, log *logrus.Logger, db *storage.DB, script string) (*playModel, error) {
	player := cubeplay.NewPlayer(cubeplay.WithLogger(log))
	if _, err := player.LoadSequence(script); err != nil {
		return nil, describeParseError(script, err)
	}

	session := recorder.NewSession(db, log)
	if _, err := session.Start("play", script, player.State()); err != nil {
		return nil, err
	}

	m := &playModel{
		player:  player,
		session: session,
		log:     log,
		script:  script,
		delay:   cfg.TurnDelay(),
		showNet: cfg.ShowNet,
	}
	if !cfg.StartPaused {
		m.mode = modeForward
	}

	player.SetMoveCallback(func(ev cubeplay.MoveEvent) {
		if err := session.Record(ev, player.State()); err != nil {
			log.WithError(err).Warn("journal write failed")
		}
	})
	return m, nil
}

func (m *playModel) Init() tea.Cmd {
	if m.mode == modePaused {
		return nil
	}
	return m.tick()
}

func (m *playModel) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case orientationMsg:
		m.held = fmt.Sprintf("%s up, %s front", msg.up, msg.front)
		return m, nil

	case playTickMsg:
		if m.mode == modePaused {
			return m, nil
		}
		if !m.step(m.mode == modeForward) {
			m.mode = modePaused
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.entering {
		return m.handleEntry(msg)
	}

	switch msg.String() {
	case ":":
		m.entering, m.entry = true, ""

	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case " ":
		if m.mode != modePaused {
			m.mode = modePaused
			return m, nil
		}
		if m.player.Cursor() == m.player.MoveCount() {
			m.seek(0)
		}
		m.mode = modeForward
		return m, m.tick()

	case "r":
		if m.mode == modeBackward {
			m.mode = modePaused
			return m, nil
		}
		m.mode = modeBackward
		return m, m.tick()

	case "n", "right":
		m.mode = modePaused
		m.step(true)

	case "b", "left":
		m.mode = modePaused
		m.step(false)

	case "0", "home":
		m.mode = modePaused
		m.seek(0)

	case "$", "end":
		m.mode = modePaused
		m.seek(m.player.MoveCount())

	case "x":
		m.mode = modePaused
		if err := m.player.Reset(); err != nil {
			m.lastErr = err
			break
		}
		m.lastMove, m.held = "", ""
		m.lastErr = m.restartSession()

	case "+", "=":
		m.delay /= 2
		if m.delay < 25*time.Millisecond {
			m.delay = 25 * time.Millisecond
		}

	case "-":
		m.delay *= 2
		if m.delay > 4*time.Second {
			m.delay = 4 * time.Second
		}

	case "d":
		m.showNet = !m.showNet
	}

	return m, nil
}

// handleEntry collects a typed move until Enter or Esc.
func (m *playModel) handleEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.entering, m.entry = false, ""

	case tea.KeyEnter:
		m.entering = false
		m.turn(m.entry)
		m.entry = ""

	case tea.KeyBackspace:
		if len(m.entry) > 0 {
			m.entry = m.entry[:len(m.entry)-1]
		}

	case tea.KeyRunes:
		m.entry += string(msg.Runes)
	}
	return m, nil
}

// turn applies one typed move on top of the sequence. Moves are refused
// while playback is running.
func (m *playModel) turn(token string) {
	mv, err := cubeplay.ParseMove(strings.TrimSpace(token))
	if err != nil {
		m.lastErr = err
		return
	}
	if m.mode != modePaused {
		m.lastErr = fmt.Errorf("%w: pause playback to turn %s", cubeplay.ErrBusy, mv)
		return
	}
	if _, err := m.player.ApplyMove(mv); err != nil {
		m.lastErr = err
		return
	}
	m.lastMove, m.lastErr = mv.Notation(), nil
}

// restartSession starts a new journal session from the current cube, so
// each session replays from solved.
func (m *playModel) restartSession() error {
	if err := m.session.End(); err != nil {
		return err
	}
	_, err := m.session.Start("play", m.script, m.player.State())
	return err
}

// verifyJournal replays the current session and compares it with the cube.
func (m *playModel) verifyJournal() error {
	replayed, err := m.session.Replay()
	if err != nil {
		return err
	}
	if replayed != m.player.State() {
		return fmt.Errorf("journal replay of %d moves does not match the cube", m.session.MoveCount())
	}
	return nil
}

// step moves one position and reports whether it did.
func (m *playModel) step(forward bool) bool {
	ctx := context.Background()
	var err error
	if forward {
		err = m.player.StepForward(ctx)
	} else {
		err = m.player.StepBackward(ctx)
	}

	if errors.Is(err, cubeplay.ErrIndexOutOfRange) {
		return false
	}
	if err != nil {
		m.lastErr = err
		return false
	}

	idx := m.player.Cursor()
	if !forward {
		m.lastMove = m.player.Moves()[idx].Inverse().Notation()
	} else {
		m.lastMove = m.player.Moves()[idx-1].Notation()
	}
	m.lastErr = nil
	return true
}

func (m *playModel) seek(index int) {
	if err := m.player.Seek(context.Background(), index); err != nil {
		m.lastErr = err
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Playback ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubeplay"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.player.Cursor(), m.player.MoveCount())
	switch m.mode {
	case modeForward:
		progress += " [PLAYING]"
	case modeBackward:
		progress += " [REWINDING]"
	default:
		progress += " [PAUSED]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%dms per move)\n", m.delay.Milliseconds()))
	b.WriteString(describeState(m.player.State()))
	b.WriteString("\n\n")

	b.WriteString(m.sequenceLine())
	b.WriteString("\n")
	if m.lastMove != "" {
		b.WriteString("Last: " + moveStyle.Render(m.lastMove) + "\n")
	}
	if m.held != "" {
		b.WriteString("Held: " + m.held + "\n")
	}
	if m.entering {
		b.WriteString("Move: " + currentMoveStyle.Render(m.entry+"_") + "\n")
	}
	if m.lastErr != nil {
		b.WriteString(errorStyle.Render(m.lastErr.Error()) + "\n")
	}

	if m.showNet {
		b.WriteString("\n")
		b.WriteString(renderNet(m.player.State().Facelets(), false))
	}

	b.WriteString(statusStyle.Render(fmt.Sprintf("Journal: %d moves", m.session.MoveCount())))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("SPACE=play/pause  n/b=step  r=rewind  0/$=jump  x=reset  +/-=speed  d=net  :=turn  q=quit"))
	b.WriteString("\n")

	return b.String()
}

// sequenceLine shows the sequence around the cursor, with the next move
// highlighted.
func (m *playModel) sequenceLine() string {
	moves := m.player.Moves()
	if len(moves) == 0 {
		return statusStyle.Render("(empty sequence)")
	}

	cursor := m.player.Cursor()
	start, end := 0, len(moves)
	if end-start > 24 {
		start = max(0, cursor-12)
		end = min(len(moves), start+24)
	}

	var parts []string
	if start > 0 {
		parts = append(parts, "...")
	}
	for i := start; i < end; i++ {
		n := moves[i].Notation()
		if i == cursor {
			n = currentMoveStyle.Render(n)
		} else if i < cursor {
			n = moveStyle.Render(n)
		}
		parts = append(parts, n)
	}
	if end < len(moves) {
		parts = append(parts, "...")
	}
	return strings.Join(parts, " ")
}

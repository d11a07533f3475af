package cli

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubeplay"
	"github.com/SeamusWaldron/cubeplay/internal/config"
	"github.com/SeamusWaldron/cubeplay/internal/storage"
)

func newTestModel(t *testing.T, script string) *playModel {
	t.Helper()
	db, err := storage.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	m, err := newPlayModel(config.Default(), log, db, script)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayModelStepping(t *testing.T) {
	m := newTestModel(t, "R U x")

	m.Update(key("n"))
	m.Update(key("n"))
	if m.player.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", m.player.Cursor())
	}
	if m.lastMove != "U" {
		t.Errorf("last move = %q, want U", m.lastMove)
	}

	m.Update(key("b"))
	if m.player.Cursor() != 1 || m.lastMove != "U'" {
		t.Errorf("after step back: cursor %d, last %q", m.player.Cursor(), m.lastMove)
	}
	if m.session.MoveCount() != 3 {
		t.Errorf("journal has %d moves, want 3", m.session.MoveCount())
	}

	m.Update(key("$"))
	if m.player.Cursor() != 3 {
		t.Errorf("$ should jump to the end, cursor %d", m.player.Cursor())
	}
	m.Update(key("0"))
	if m.player.Cursor() != 0 || m.player.State() != cubeplay.Solved() {
		t.Error("0 should jump back to a solved start")
	}
}

func TestPlayModelPlaysOnTicks(t *testing.T) {
	m := newTestModel(t, "R U")

	if m.Init() != nil {
		t.Error("a paused model should not start ticking")
	}

	_, cmd := m.Update(key(" "))
	if m.mode != modeForward || cmd == nil {
		t.Fatal("space should start playback")
	}

	m.Update(playTickMsg{})
	m.Update(playTickMsg{})
	if m.player.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", m.player.Cursor())
	}
	_, cmd = m.Update(playTickMsg{})
	if m.mode != modePaused || cmd != nil {
		t.Error("playback should stop at the end")
	}

	m.Update(key("r"))
	m.Update(playTickMsg{})
	m.Update(playTickMsg{})
	if m.player.Cursor() != 0 || m.player.State() != cubeplay.Solved() {
		t.Error("rewind should return to the solved start")
	}

	m.Update(key("n"))
	m.Update(key("x"))
	if m.player.State() != cubeplay.Solved() || m.player.Cursor() != 0 {
		t.Error("x should reset the cube")
	}
}

func TestPlayModelSpeedAndView(t *testing.T) {
	m := newTestModel(t, "R U R' U'")
	before := m.delay
	m.Update(key("+"))
	if m.delay != before/2 {
		t.Errorf("delay = %v, want %v", m.delay, before/2)
	}

	view := m.View()
	if !strings.Contains(view, "Move 0/4") || !strings.Contains(view, "PAUSED") {
		t.Errorf("unexpected view:\n%s", view)
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
}

func TestNewPlayModelRejectsBadScript(t *testing.T) {
	db, err := storage.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	_, err = newPlayModel(config.Default(), logrus.New(), db, "R U\nR' Q")
	if !errors.Is(err, cubeplay.ErrInvalidNotation) {
		t.Fatalf("expected ErrInvalidNotation, got %v", err)
	}
	if !strings.Contains(err.Error(), "R' Q\n     ^") {
		t.Errorf("error should point at the bad character:\n%v", err)
	}
}

func TestFormatHint(t *testing.T) {
	h := cubeplay.GeometryHint{
		Axis:   cubeplay.Vector{Y: 1},
		Angle:  math.Pi,
		Layers: []int{1},
	}
	got := formatHint(cubeplay.U2, h)
	if !strings.Contains(got, "axis y") || !strings.Contains(got, "+180 deg") {
		t.Errorf("formatHint = %q", got)
	}
}

func TestReadScript(t *testing.T) {
	got, err := readScript([]string{"R", "U'"}, "", nil)
	if err != nil || got != "R U'" {
		t.Errorf("readScript(args) = %q, %v", got, err)
	}

	got, err = readScript(nil, "-", strings.NewReader("M2 // slice"))
	if err != nil || got != "M2 // slice" {
		t.Errorf("readScript(stdin) = %q, %v", got, err)
	}
}

func TestParseCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"parse", "--invert", "R U2' x"})
	defer func() {
		rootCmd.SetArgs(nil)
		parseInvert = false
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out.String(), "\n")
	if lines[0] != "x' U2 R'" {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestParseCommandDescribe(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"parse", "--describe", "R M'"})
	defer func() {
		rootCmd.SetArgs(nil)
		parseDescribe = false
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"R up", "middle up"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func typeMove(m *playModel, token string) {
	m.Update(key(":"))
	for _, r := range token {
		m.Update(key(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestPlayModelTypedMoves(t *testing.T) {
	m := newTestModel(t, "R U")

	m.Update(key("n"))
	m.Update(key(":"))
	if !m.entering || !strings.Contains(m.View(), "Move: ") {
		t.Fatal(": should open move entry")
	}
	m.Update(key("q"))
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(key("F"))
	m.Update(key("'"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.entering || m.quitting {
		t.Fatal("enter should close move entry without quitting")
	}
	if m.lastErr != nil {
		t.Fatalf("typed move failed: %v", m.lastErr)
	}
	if m.lastMove != "F'" || m.player.Cursor() != 1 {
		t.Errorf("last %q, cursor %d; want F' at cursor 1", m.lastMove, m.player.Cursor())
	}
	want, err := cubeplay.ApplySequence(cubeplay.Solved(), cubeplay.MustParseMoves("R F'"))
	if err != nil {
		t.Fatal(err)
	}
	if m.player.State() != want {
		t.Error("typed move should turn the cube on top of the sequence")
	}
	if m.session.MoveCount() != 2 {
		t.Errorf("journal has %d moves, want 2", m.session.MoveCount())
	}
	if err := m.verifyJournal(); err != nil {
		t.Error(err)
	}

	typeMove(m, "Q")
	var perr *cubeplay.ParseError
	if !errors.As(m.lastErr, &perr) {
		t.Errorf("expected a ParseError, got %v", m.lastErr)
	}

	m.Update(key(":"))
	m.Update(key("R"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.entering || m.player.State() != want {
		t.Error("esc should discard the typed move")
	}
}

func TestPlayModelTypedMoveWhilePlaying(t *testing.T) {
	m := newTestModel(t, "R U")
	m.Update(key(" "))
	if m.mode != modeForward {
		t.Fatal("space should start playback")
	}

	typeMove(m, "R")
	if !errors.Is(m.lastErr, cubeplay.ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", m.lastErr)
	}
	if m.player.State() != cubeplay.Solved() {
		t.Error("a refused move should not turn the cube")
	}
}

func TestPlayModelResetStartsNewSession(t *testing.T) {
	m := newTestModel(t, "R U")
	first := m.session.SessionID()

	m.Update(key("n"))
	typeMove(m, "x")
	m.Update(key("x"))
	if m.session.SessionID() == first {
		t.Error("reset should start a new journal session")
	}
	if m.session.MoveCount() != 0 {
		t.Errorf("new session has %d moves", m.session.MoveCount())
	}

	m.Update(key("n"))
	typeMove(m, "M2")
	if err := m.verifyJournal(); err != nil {
		t.Error(err)
	}

	history, err := m.session.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 || history[0].Moves != 2 || history[0].OrientationChanges != 1 {
		t.Errorf("history = %+v", history)
	}
}

func TestPlayModelShowsOrientation(t *testing.T) {
	m := newTestModel(t, "x")
	m.Update(orientationMsg{up: cubeplay.Green, front: cubeplay.Yellow})
	if !strings.Contains(m.View(), "Held: G up, Y front") {
		t.Errorf("view should show the held orientation:\n%s", m.View())
	}
	m.Update(key("x"))
	if strings.Contains(m.View(), "Held:") {
		t.Error("reset should clear the held orientation")
	}
}

func TestApplyCommandReportsOrientation(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"apply", "--plain", "R x"})
	defer func() {
		rootCmd.SetArgs(nil)
		applyPlain = false
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Now held with G up, Y front") {
		t.Errorf("output missing orientation:\n%s", out.String())
	}
}

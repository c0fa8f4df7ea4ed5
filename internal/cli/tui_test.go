package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkgsmith/itkplan/pkg/flagset"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	panic("unknown key " + s)
}

func send(m FlagModel, keys ...string) (FlagModel, tea.Cmd) {
	var cmd tea.Cmd
	var next tea.Model = m
	for _, k := range keys {
		next, cmd = next.(FlagModel).Update(keyMsg(k))
	}
	return next.(FlagModel), cmd
}

func rowIndex(t *testing.T, label string) int {
	t.Helper()
	for i, row := range flagRows {
		if row.label == label {
			return i
		}
	}
	t.Fatalf("no flag row %q", label)
	return -1
}

func TestFlagModel_InitialState(t *testing.T) {
	m := NewFlagModel(flagset.Default())

	if m.validationErr != "" {
		t.Errorf("validationErr = %q for defaults", m.validationErr)
	}
	if m.componentCount == 0 {
		t.Error("componentCount = 0 for defaults")
	}
	if !strings.Contains(m.View(), "with gdcm") {
		t.Error("View() does not list the gdcm flag")
	}
}

func TestFlagModel_ToggleRevalidates(t *testing.T) {
	m := NewFlagModel(flagset.Default())
	before := m.componentCount

	// Move to the gpu row and turn it off.
	m.Cursor = rowIndex(t, "with gpu")
	m, _ = send(m, "space")

	if m.Flags.WithGPU {
		t.Error("WithGPU still set after toggle")
	}
	if m.componentCount >= before {
		t.Errorf("componentCount = %d after disabling gpu, want < %d", m.componentCount, before)
	}
}

func TestFlagModel_ConflictBlocksConfirm(t *testing.T) {
	m := NewFlagModel(flagset.Default())

	m.Cursor = rowIndex(t, "with elastix")
	m, _ = send(m, "space")
	m.Cursor = rowIndex(t, "with gdcm")
	m, _ = send(m, "space")

	if m.validationErr == "" {
		t.Fatal("validationErr empty for elastix without gdcm")
	}

	m, cmd := send(m, "enter")
	if m.Accepted {
		t.Error("enter accepted an invalid flag set")
	}
	if cmd != nil {
		t.Error("enter quit on an invalid flag set")
	}
}

func TestFlagModel_Confirm(t *testing.T) {
	m := NewFlagModel(flagset.Default())

	m, cmd := send(m, "enter")
	if !m.Accepted {
		t.Error("enter did not accept a valid flag set")
	}
	if cmd == nil {
		t.Error("enter did not quit")
	}
}

func TestFlagModel_CursorBounds(t *testing.T) {
	m := NewFlagModel(flagset.Default())

	m, _ = send(m, "up")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up at top, want 0", m.Cursor)
	}

	for range flagRows {
		m, _ = send(m, "down")
	}
	if m.Cursor != len(flagRows)-1 {
		t.Errorf("Cursor = %d, want %d (bottom)", m.Cursor, len(flagRows)-1)
	}
}

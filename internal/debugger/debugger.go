// Package debugger implements an interactive bubbletea TUI for
// single-stepping the CPU: a hex page around PC, register/flag status,
// the disassembled instruction at PC, and a spew dump of the CPU struct.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/hwalbrandt/nescpu/cpu"
	"github.com/hwalbrandt/nescpu/internal/disasm"
)

const bytesPerPage = 16

var flagLabels = []struct {
	mask uint8
	name string
}{
	{cpu.FlagNegative, "N"},
	{cpu.FlagOverflow, "V"},
	{cpu.FlagUnused, "_"},
	{cpu.FlagBreak, "B"},
	{cpu.FlagDecimal, "D"},
	{cpu.FlagInterrupt, "I"},
	{cpu.FlagZero, "Z"},
	{cpu.FlagCarry, "C"},
}

type model struct {
	cpu    *cpu.CPU
	bus    cpu.Bus
	prevPC uint16
	lastOp int
	err    error
}

// Run starts the interactive debugger against c and bus. It blocks until
// the user quits.
func Run(c *cpu.CPU, bus cpu.Bus) error {
	m, err := tea.NewProgram(model{cpu: c, bus: bus, prevPC: c.PC}).Run()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	if fm, ok := m.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j", "n":
		m.prevPC = m.cpu.PC
		m.lastOp = m.cpu.Step(m.bus)
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%04X | ", start)
	for i := uint16(0); i < bytesPerPage; i++ {
		addr := start + i
		b := m.bus.Read(addr)
		if addr == m.cpu.PC {
			fmt.Fprintf(&sb, "[%02X] ", b)
		} else {
			fmt.Fprintf(&sb, " %02X  ", b)
		}
	}
	return sb.String()
}

func (m model) pageTable() string {
	base := m.cpu.PC &^ (bytesPerPage - 1)
	lines := []string{"page | " + strings.Repeat("  x  ", bytesPerPage)}
	for p := -2; p <= 2; p++ {
		start := uint16(int32(base) + int32(p*bytesPerPage))
		lines = append(lines, m.renderPage(start))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	var flags strings.Builder
	for _, f := range flagLabels {
		if m.cpu.P&f.mask != 0 {
			flags.WriteString(f.name + " ")
		} else {
			flags.WriteString(". ")
		}
	}

	return fmt.Sprintf(`
PC: %04X (was %04X)
 A: %02X
 X: %02X
 Y: %02X
SP: %02X
last step: %d cycles
%s
`, m.cpu.PC, m.prevPC, m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP, m.lastOp, flags.String())
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		disasm.Line(m.bus, m.cpu.PC),
		"",
		spew.Sdump(m.cpu),
		"(space/j: step, q: quit)",
	)
}

// Package console renders game messages.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines. The first write error is kept and every later
// write becomes a no-op; check Err after a batch of output.
type Printer struct {
	w     io.Writer
	color bool
	err   error

	bannerStyle  lipgloss.Style
	infoStyle    lipgloss.Style
	promptStyle  lipgloss.Style
	letterStyle  lipgloss.Style
	successStyle lipgloss.Style
	failureStyle lipgloss.Style
	scoreStyle   lipgloss.Style
}

// NewPrinter returns a Printer for w. Colors are only emitted when color is
// set and w is a terminal that supports them.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:            w,
		color:        color,
		bannerStyle:  r.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true),
		infoStyle:    r.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		promptStyle:  r.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		letterStyle:  r.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Underline(true),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true),
		failureStyle: r.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
		scoreStyle:   r.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
	}
}

// Err returns the first write error.
func (p *Printer) Err() error {
	return p.err
}

// Line prints s unstyled.
func (p *Printer) Line(s string) {
	p.write(s + "\n")
}

// Banner prints a title line.
func (p *Printer) Banner(s string) {
	p.write(p.render(p.bannerStyle, s) + "\n")
}

// Info prints an informational line.
func (p *Printer) Info(format string, args ...any) {
	p.write(p.render(p.infoStyle, fmt.Sprintf(format, args...)) + "\n")
}

// Prompt prints s without a trailing newline.
func (p *Printer) Prompt(s string) {
	p.write(p.render(p.promptStyle, s))
}

// PromptLine prints s as a full line.
func (p *Printer) PromptLine(s string) {
	p.write(p.render(p.promptStyle, s) + "\n")
}

// Letter prints the generated letter announcement.
func (p *Printer) Letter(label string, letter rune) {
	p.write(label + p.render(p.letterStyle, string(letter)) + "\n")
}

// Success prints a winning line.
func (p *Printer) Success(s string) {
	p.write(p.render(p.successStyle, s) + "\n")
}

// Failure prints a losing line.
func (p *Printer) Failure(s string) {
	p.write(p.render(p.failureStyle, s) + "\n")
}

// Score prints a score line.
func (p *Printer) Score(label string, score int) {
	p.write(p.render(p.scoreStyle, fmt.Sprintf("%s: %d", label, score)) + "\n")
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p *Printer) write(s string) {
	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.w, s); err != nil {
		p.err = fmt.Errorf("failed to write output: %w", err)
	}
}

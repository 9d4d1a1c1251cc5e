// Package tui previews a height field in the terminal while it is generated.
package tui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/terrainnoise/internal/raster"
	"github.com/lox/terrainnoise/internal/terrain"
)

// ProgressMsg carries a generation percentage.
type ProgressMsg int

// DoneMsg carries the finished field.
type DoneMsg struct {
	Field terrain.Field
}

// ErrMsg reports a failed generation.
type ErrMsg struct {
	Err error
}

// Model is the bubbletea model for the preview.
type Model struct {
	title   string
	bar     progress.Model
	percent float64
	field   terrain.Field
	ramp    raster.Ramp
	profile termenv.Profile
	width   int
	height  int
	err     error
}

// NewModel creates a preview model. profile decides between colored
// half-block cells and ASCII shading.
func NewModel(title string, ramp raster.Ramp, profile termenv.Profile) *Model {
	return &Model{
		title:   title,
		bar:     progress.New(progress.WithDefaultGradient()),
		ramp:    ramp,
		profile: profile,
		width:   80,
		height:  24,
	}
}

// Err returns the generation error, if any.
func (m *Model) Err() error { return m.err }

// Field returns the finished field, or nil while generating.
func (m *Model) Field() terrain.Field { return m.field }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(10, msg.Width-4)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case ProgressMsg:
		m.percent = float64(msg) / 100

	case DoneMsg:
		m.field = msg.Field
		m.percent = 1

	case ErrMsg:
		m.err = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(m.title))
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
		return sb.String()
	}

	if m.field == nil {
		sb.WriteString("\n")
		sb.WriteString(m.bar.ViewAs(m.percent))
		sb.WriteString("\n\n")
		sb.WriteString(InfoStyle.Render("Generating... press q to quit"))
		return sb.String()
	}

	// Header and footer take one line each.
	rows := max(1, m.height-2)
	sb.WriteString(m.renderField(m.width, rows))
	sb.WriteString(InfoStyle.Render(fmt.Sprintf("%dx%d  q to quit", m.field.Width(), m.field.Height())))
	return sb.String()
}

// renderField draws the field into cols x rows terminal cells. Colored
// output packs two field rows per cell using the upper half block.
func (m *Model) renderField(cols, rows int) string {
	var sb strings.Builder

	if m.profile == termenv.Ascii {
		small := raster.Downsample(m.field, cols, rows)
		for y := 0; y < small.Height(); y++ {
			for x := 0; x < small.Width(); x++ {
				sb.WriteByte(shade(small.At(x, y)))
			}
			sb.WriteByte('\n')
		}
		return sb.String()
	}

	small := raster.Downsample(m.field, cols, rows*2)
	for y := 0; y < small.Height(); y += 2 {
		for x := 0; x < small.Width(); x++ {
			style := lipgloss.NewStyle().Foreground(hex(m.ramp.At(small.At(x, y))))
			if y+1 < small.Height() {
				style = style.Background(hex(m.ramp.At(small.At(x, y+1))))
			}
			sb.WriteString(style.Render("▀"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func shade(v float32) byte {
	i := int(v * float32(len(asciiShades)-1))
	i = min(max(i, 0), len(asciiShades)-1)
	return asciiShades[i]
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Run generates the field described by p while showing progress, then
// previews it until the user quits. Quitting early cancels generation.
func Run(ctx context.Context, p terrain.Params, ramp raster.Ramp, opts ...terrain.Option) (terrain.Field, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	profile := termenv.EnvColorProfile()
	lipgloss.SetColorProfile(profile)

	model := NewModel(fmt.Sprintf("terrainnoise seed=%d", p.Seed), ramp, profile)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	go func() {
		opts := append(opts, terrain.WithProgress(func(pct int) {
			program.Send(ProgressMsg(pct))
		}))
		field, err := terrain.Generate(ctx, p, opts...)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				program.Send(ErrMsg{Err: err})
			}
			return
		}
		program.Send(DoneMsg{Field: field})
	}()

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return nil, err
	}
	return model.Field(), model.Err()
}

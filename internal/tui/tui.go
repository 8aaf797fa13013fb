package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joaovbs/sugestor/pkg/model"
	"github.com/muesli/reflow/wrap"
)

const (
	minX = 30
	minY = 20
)

type logMsg string
type showCacheSize int

type viewSize struct {
	width      int
	height     int
	leftWidth  int
	rightWidth int
}

type viewModel struct {
	size        *viewSize
	UILogWriter *outputChannel
	queryLabel  textinput.Model

	border      lipgloss.Style
	rightVessel viewport.Model
	leftVessel  viewport.Model

	cacheSize   func() int
	suggestFunc func(string) model.CorrectionResult
	acceptFunc  func(string) error

	lastResult model.CorrectionResult
	lastQuery  string
	logPlate   []string
	counter    int
}

func NewLogChannel(size int) *outputChannel {
	return &outputChannel{readCh: make(chan []byte, size)}
}

func InitModel(logChan *outputChannel, borderColor string, cacheSize func() int, suggestFunc func(string) model.CorrectionResult, acceptFunc func(string) error) *viewModel {
	ti := textinput.New()
	ti.Placeholder = "Digite sua busca..."
	ti.Focus()
	ti.Width = 20

	vp := viewport.New(minX, minY)
	vpLeft := viewport.New(minX, minY)

	return &viewModel{
		cacheSize:   cacheSize,
		suggestFunc: suggestFunc,
		acceptFunc:  acceptFunc,
		size: &viewSize{
			width:      0,
			height:     0,
			leftWidth:  0,
			rightWidth: 0,
		},
		border:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(borderColor)),
		UILogWriter: logChan,
		queryLabel:  ti,
		rightVessel: vp,
		leftVessel:  vpLeft,
		logPlate:    make([]string, 0),
	}
}

type outputChannel struct {
	readCh chan []byte
}

func (oc *outputChannel) Write(data []byte) (n int, err error) {
	select {
	case oc.readCh <- data:
	default:
	}
	return len(data), nil
}

func showCacheTick() tea.Cmd {
	return tea.Tick(time.Second*5, func(t time.Time) tea.Msg {
		return showCacheSize(1)
	})
}

func (vm *viewModel) waitForLog() tea.Cmd {
	return func() tea.Msg {
		d, ok := <-vm.UILogWriter.readCh
		if !ok {
			return nil
		}
		return logMsg(d)
	}
}

func (vm *viewModel) renderLeftLog() {
	width := vm.leftVessel.Width
	if width < minX*0.4 {
		return
	}

	var cls strings.Builder
	for _, s := range vm.logPlate {
		cls.WriteString(strings.ReplaceAll(strings.ReplaceAll(s, "\t", " "), "\r", ""))
	}
	vm.leftVessel.SetContent(wrap.String(cls.String(), width))
	vm.leftVessel.GotoBottom()
}

func (vm *viewModel) renderVerdict() {
	if vm.lastQuery == "" {
		vm.rightVessel.SetContent("")
		return
	}

	lines := []string{fmt.Sprintf("consulta: %q", vm.lastQuery)}
	if vm.lastResult.NeedsCorrection {
		lines = append(lines,
			fmt.Sprintf("você quis dizer: %q", vm.lastResult.Suggestion),
			fmt.Sprintf("confiança: %.2f (%s)", vm.lastResult.Confidence, vm.lastResult.Type),
			"",
			"enter aceita a sugestão no dicionário",
		)
	} else {
		lines = append(lines, "sem correção")
	}
	vm.rightVessel.SetContent(strings.Join(lines, "\n"))
	vm.rightVessel.GotoTop()
}

func (vm *viewModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, vm.waitForLog(), showCacheTick())
}

func (vm *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		vm.size.width = msg.Width
		vm.size.height = msg.Height

		vm.size.leftWidth = int(float64(vm.size.width) * 0.4)
		vm.size.rightWidth = vm.size.width - vm.size.leftWidth

		inputHeight := 4

		vm.leftVessel.Width = max(vm.size.leftWidth-2, 0)
		vm.leftVessel.Height = max(vm.size.height-2, 0)
		vm.rightVessel.Width = max(vm.size.rightWidth-2, 0)
		vm.rightVessel.Height = max(vm.size.height-inputHeight-2, 0)

		vm.queryLabel.Width = max(vm.size.rightWidth-15, 10)

	case logMsg:
		vm.logPlate = append(vm.logPlate, string(msg))
		if len(vm.logPlate) > 500 {
			vm.logPlate = vm.logPlate[len(vm.logPlate)-500:]
		}
		vm.renderLeftLog()

		return vm, vm.waitForLog()

	case showCacheSize:
		vm.counter = vm.cacheSize()
		return vm, showCacheTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if vm.lastResult.NeedsCorrection {
				if err := vm.acceptFunc(vm.lastQuery); err == nil {
					vm.logPlate = append(vm.logPlate, fmt.Sprintf("termo %q aceito\n", vm.lastQuery))
					vm.renderLeftLog()
				}
			}
		case "esc":
			vm.queryLabel.SetValue("")
			vm.lastQuery = ""
			vm.renderVerdict()
		case "ctrl+c", "ctrl+q":
			return vm, tea.Quit
		}
	}

	var cmd tea.Cmd
	vm.queryLabel, cmd = vm.queryLabel.Update(msg)
	cmds = append(cmds, cmd)

	// every keystroke re-queries; the engine cache keeps this cheap
	// while the user types and backspaces
	if text := strings.TrimSpace(vm.queryLabel.Value()); text != vm.lastQuery {
		vm.lastQuery = text
		if text != "" {
			vm.lastResult = vm.suggestFunc(text)
		} else {
			vm.lastResult = model.CorrectionResult{}
		}
		vm.renderVerdict()
	}

	vm.rightVessel, cmd = vm.rightVessel.Update(msg)
	cmds = append(cmds, cmd)
	vm.leftVessel, cmd = vm.leftVessel.Update(msg)
	cmds = append(cmds, cmd)

	return vm, tea.Batch(cmds...)
}

func (vm *viewModel) View() string {
	if vm.size.width < minX || vm.size.height < minY {
		return lipgloss.Place(
			vm.size.width, vm.size.height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("Terminal too small"),
		)
	}

	leftView := vm.border.
		Width(vm.size.leftWidth - 2).
		Height(vm.size.height - 2).
		Render(vm.leftVessel.View())

	inputView := vm.queryLabel.View()
	counterView := fmt.Sprintf("[cache %d]", vm.counter)

	headerContent := lipgloss.JoinHorizontal(lipgloss.Center,
		inputView,
		counterView,
	)
	topRightBox := vm.border.
		Width(vm.size.rightWidth - 2).
		Height(2).
		Render(headerContent)

	bottomHeight := vm.size.height - 6
	bottomRightBox := vm.border.
		Width(vm.size.rightWidth - 2).
		Height(max(bottomHeight, 0)).
		Render(vm.rightVessel.View())

	rightView := lipgloss.JoinVertical(lipgloss.Left, topRightBox, bottomRightBox)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftView, rightView)
}

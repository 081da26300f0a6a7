// Command breezessh hosts the breezedemo counter page over SSH: each
// connecting client gets its own Program, rendered through a
// session-derived lipgloss renderer so remote clients see colors
// appropriate to their own terminal.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"gopkg.in/yaml.v3"

	"github.com/breezetui/breeze"
	"github.com/breezetui/breeze/sshui"
	"github.com/breezetui/breeze/style"
)

type config struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
}

func defaultConfig() config {
	return config{Address: ":2345", HostKeyPath: ".breezessh"}
}

func loadConfig(path string) config {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	_ = yaml.Unmarshal(data, &cfg)
	return cfg
}

type sessionModel struct {
	pal     style.Palette
	counter int
}

func (m sessionModel) Init() breeze.Cmd { return nil }

func (m sessionModel) Update(msg breeze.Msg) (breeze.Model, breeze.Cmd) {
	if k, ok := breeze.As[breeze.KeyMsg](msg); ok {
		switch k.String() {
		case "ctrl+c":
			return m, breeze.QuitCmd()
		case "+":
			m.counter++
		case "-":
			m.counter--
		}
	}
	return m, nil
}

func (m sessionModel) View() string {
	return fmt.Sprintf("%s\n\n%d\n\n(+/-: count, ctrl+c: quit)\n",
		m.pal.Title.Render("breezessh counter"), m.counter)
}

func main() {
	cfg := loadConfig("breezessh.yaml")

	handler := func(s ssh.Session, renderer *lipgloss.Renderer) *breeze.Program {
		model := sessionModel{pal: style.NewPalette(renderer)}
		return breeze.NewProgram(model,
			breeze.WithAltScreen(),
			breeze.WithInput(s),
			breeze.WithOutput(renderer.Output()),
		)
	}

	if err := sshui.Host(cfg.Address, cfg.HostKeyPath, handler); err != nil {
		fmt.Fprintln(os.Stderr, "breezessh:", err)
		os.Exit(1)
	}
}

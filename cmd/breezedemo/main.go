// Command breezedemo is a small multi-page showcase program exercising
// style, markdown, anim and components together: a counter page, a
// markdown viewer page, and a spinner/progress page, switched with tab.
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/breezetui/breeze"
	"github.com/breezetui/breeze/anim"
	"github.com/breezetui/breeze/components"
	"github.com/breezetui/breeze/markdown"
	"github.com/breezetui/breeze/style"
)

// config is the small YAML file breezedemo reads for its keybindings; the
// runtime itself takes no config file, only ProgramOptions.
type config struct {
	NextPageKey string `yaml:"next_page_key"`
	QuitKey     string `yaml:"quit_key"`
}

func defaultConfig() config {
	return config{NextPageKey: "tab", QuitKey: "ctrl+c"}
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

type page int

const (
	pageCounter page = iota
	pageMarkdown
	pageSpinner
	pageCount
)

const demoMarkdown = `# breeze demo

A small showcase of ` + "`markdown`" + ` rendering.

- styled headings
- bulleted lists
- *emphasis* and **strong** text

` + "```go\nfunc main() {}\n```"

type model struct {
	cfg    config
	page   page
	pal    style.Palette
	width  int
	height int

	counter int

	md       *markdown.Renderer
	mdView   string
	spinner  components.Spinner
	progress *anim.Spring
}

func initialModel(cfg config) model {
	pal := style.DefaultPalette()
	md := markdown.NewRenderer(markdown.DarkTheme(), 72)
	mdView, err := md.Render(demoMarkdown)
	if err != nil {
		mdView = demoMarkdown
	}
	return model{
		cfg:      cfg,
		pal:      pal,
		md:       md,
		mdView:   mdView,
		spinner:  components.NewSpinner(components.WithSpinnerStyle(pal.Success)),
		progress: anim.NewSpring(6, 1, 30),
	}
}

// frameCmd adapts the anim package's func() FrameMsg callbacks (which
// don't know about breeze.Msg) into breeze.Cmd.
func frameCmd(fn func() anim.FrameMsg) breeze.Cmd {
	if fn == nil {
		return nil
	}
	return func() breeze.Msg { return breeze.NewMsg(fn()) }
}

func (m model) Init() breeze.Cmd {
	return breeze.Batch(
		m.spinner.Tick(),
		frameCmd(m.progress.SetTarget(1)),
	)
}

func (m model) Update(msg breeze.Msg) (breeze.Model, breeze.Cmd) {
	if ws, ok := breeze.As[breeze.WindowSizeMsg](msg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	if k, ok := breeze.As[breeze.KeyMsg](msg); ok {
		switch k.String() {
		case m.cfg.QuitKey:
			return m, breeze.QuitCmd()
		case m.cfg.NextPageKey:
			m.page = (m.page + 1) % pageCount
			return m, nil
		}
		switch m.page {
		case pageCounter:
			switch k.String() {
			case "+":
				m.counter++
			case "-":
				m.counter--
			}
		}
	}

	if fr, ok := breeze.As[anim.FrameMsg](msg); ok {
		return m, frameCmd(m.progress.Step(fr))
	}

	spin, cmd := m.spinner.Update(msg)
	m.spinner = spin
	return m, cmd
}

func (m model) View() string {
	switch m.page {
	case pageCounter:
		return fmt.Sprintf("%s\n\n%s\n\n(tab: next page, +/-: count, ctrl+c: quit)\n",
			m.pal.Title.Render("counter"), fmt.Sprint(m.counter))
	case pageMarkdown:
		return m.mdView
	case pageSpinner:
		return fmt.Sprintf("%s loading... %.0f%%\n", m.spinner.View(), m.progress.Value()*100)
	default:
		return ""
	}
}

func main() {
	cfg := loadConfig("breezedemo.yaml")

	logger, closeLog, err := breeze.LogToFile("breezedemo.log", "breezedemo")
	if err == nil {
		defer closeLog()
	}

	opts := []breeze.ProgramOption{breeze.WithAltScreen()}
	if logger != nil {
		opts = append(opts, breeze.WithLogger(logger))
	}

	p := breeze.NewProgram(initialModel(cfg), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "breezedemo:", err)
		os.Exit(1)
	}
}

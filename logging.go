package breeze

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// LogToFile sets up a logger that writes to the named file and returns a
// close function the caller should defer. Because a running program owns
// the real terminal, writing debug output anywhere else (stdout, stderr)
// would corrupt the screen; this is the supported way to get visibility
// into a program while it's running.
func LogToFile(path, prefix string) (*log.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	return logger, f.Close, nil
}

// WithLogger installs logger as the program's internal debug logger. By
// default a Program logs nowhere; recovered command panics are otherwise
// silently dropped per the spec's failure contract for commands.
func WithLogger(logger *log.Logger) ProgramOption {
	return func(p *Program) { p.logger = logger }
}

// discardLogger is used when no logger has been configured.
var discardLogger = log.New(io.Discard)

package cli

import (
	"github.com/chzyer/readline"
)

// LineReader abstracts prompted line input so the shell can be driven by a
// terminal in production and by scripted input in tests.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// readlineReader implements LineReader on top of a readline terminal
type readlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader creates a LineReader backed by the controlling terminal
func NewReadlineReader() (LineReader, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, err
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

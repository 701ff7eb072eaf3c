package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerCommand shows text in the ov pager. It satisfies tea.ExecCommand so
// Bubble Tea releases the terminal while the pager runs and restores it
// afterwards.
type pagerCommand struct {
	content string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func newPagerCommand(content string) *pagerCommand {
	return &pagerCommand{content: content}
}

func (c *pagerCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *pagerCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *pagerCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run blocks until the user quits the pager
func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Do not write the page back to the terminal on exit; the form redraws
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// openPager returns a command that pages content and reports back with a
// pagerExitMsg
func openPager(content string) tea.Cmd {
	return tea.Exec(newPagerCommand(content), func(err error) tea.Msg {
		return pagerExitMsg{err: err}
	})
}

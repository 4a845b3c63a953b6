package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report on the terminal. When the terminal
// renderer cannot be used the raw markdown is printed instead, which is still
// perfectly readable.
func printMarkdown(output string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Print(output)
		return
	}
	rendered, err := r.Render(output)
	if err != nil {
		fmt.Print(output)
		return
	}
	fmt.Print(rendered)
}

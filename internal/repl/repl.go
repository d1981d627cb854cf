// Package repl implements the interactive shell: it reads statements line
// by line, continuing across lines until a terminating semicolon, and runs
// each completed batch against the engine.
package repl

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/leengari/joydb/internal/engine"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// Start runs the shell until EOF or an exit command
func Start(eng *engine.Engine) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(bannerStyle.Render("JoyDB"))
	fmt.Println("Terminate statements with ';'. Type 'exit' or '\\q' to quit.")

	var pending []string

	for {
		prompt := "joydb> "
		if len(pending) > 0 {
			prompt = "  ...> "
		}
		fmt.Print(promptStyle.Render(prompt))

		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if len(pending) == 0 {
			switch trimmed {
			case "":
				continue
			case "exit", "\\q":
				return
			case "tables", "\\dt":
				for _, name := range eng.Catalog().List() {
					fmt.Println("  " + name)
				}
				continue
			}
		}

		pending = append(pending, line)
		if !strings.HasSuffix(trimmed, ";") {
			continue
		}

		batch := strings.Join(pending, "\n")
		pending = nil

		result, err := eng.Execute(batch, nil)
		if err != nil {
			fmt.Println(errorStyle.Render("error: " + err.Error()))
			continue
		}
		if result != nil {
			RenderTable(os.Stdout, result)
		}
	}
}

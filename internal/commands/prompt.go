package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ttrack/internal/tracker"
)

// inputReader wraps the command's stdin so several prompts share one buffer
type inputReader struct {
	cmd    *cobra.Command
	reader *bufio.Reader
}

func newInputReader(cmd *cobra.Command) *inputReader {
	return &inputReader{cmd: cmd, reader: bufio.NewReader(cmd.InOrStdin())}
}

// Prompt prints label and returns the trimmed line typed by the user
func (in *inputReader) Prompt(label string) string {
	fmt.Fprint(in.cmd.OutOrStdout(), label)
	line, _ := in.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// confirmer asks "(y/n)" on the command's stdin, or approves silently with --force
func confirmer(cmd *cobra.Command) tracker.Confirmer {
	if force, _ := cmd.Flags().GetBool("force"); force {
		return nil
	}

	in := newInputReader(cmd)
	return func(prompt string) bool {
		answer := in.Prompt(color.YellowString(prompt) + " (y/n): ")
		return answer == "y" || answer == "Y"
	}
}

package controllers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/updatedon/internal/domain/commands"
	"github.com/rios0rios0/updatedon/internal/domain/entities"
)

const (
	datePrompt          = "Enter the date (DD-MM-YYYY), press Enter to get all packages updates: "
	invalidFormatNotice = "Invalid date format. Please enter a valid date (DD-MM-YYYY)."
	futureDateNotice    = "Invalid date. Please enter a date in the past or today."
	missingDateNotice   = "Invalid date. That day does not exist on the calendar."
)

// CheckController prompts for a date and prints the dependencies released on it.
type CheckController struct {
	command commands.Check
	now     entities.Clock
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check, clock entities.Clock) *CheckController {
	return &CheckController{command: command, now: clock}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "updatedon",
		Short: "List npm dependencies released on a given date",
		Long: `Reads the project's package.json, looks every dependency up on the
npm registry and lists the ones whose latest release was published on
the date you enter.

Press Enter without a date to list every dependency.`,
	}
}

// Execute runs one prompt/answer cycle. Problems are reported and logged,
// never retried.
func (it *CheckController) Execute(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	configPath, _ := cmd.Flags().GetString("config")
	manifestPath, _ := cmd.Flags().GetString("manifest")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	if manifestPath != "" {
		settings.Manifest = manifestPath
	}

	_, _ = fmt.Fprint(out, datePrompt)
	input, err := readLine(cmd.InOrStdin())
	if err != nil {
		logger.Errorf("failed to read input: %v", err)
		return
	}

	target, err := entities.ParseInputDate(input, settings.Location, it.now())
	switch {
	case errors.Is(err, entities.ErrInvalidDateFormat):
		_, _ = fmt.Fprintln(out, invalidFormatNotice)
		return
	case errors.Is(err, entities.ErrNonexistentDate):
		_, _ = fmt.Fprintln(out, missingDateNotice)
		return
	case errors.Is(err, entities.ErrFutureDate):
		_, _ = fmt.Fprintln(out, futureDateNotice)
		return
	case err != nil:
		logger.Errorf("failed to parse input: %v", err)
		return
	}

	workDir, err := os.Getwd()
	if err != nil {
		logger.Errorf("failed to resolve working directory: %v", err)
		return
	}

	lines, err := it.command.Execute(ctx, settings, commands.CheckOptions{
		Target:  target,
		WorkDir: workDir,
	})
	if err != nil {
		logger.Errorf("An error occurred: %v", err)
		return
	}

	printLines(out, lines, target)
}

func printLines(out io.Writer, lines []string, target entities.Target) {
	if len(lines) == 0 {
		_, _ = fmt.Fprintf(out, "No packages updated on %s.\n", target.Label())
		return
	}
	for i, line := range lines {
		_, _ = fmt.Fprintf(out, "%d. %s\n", i+1, line)
	}
}

// readLine returns the first line of in without its line ending. Input that
// ends without a newline is returned as is.
func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"bisub/internal/api"
	"bisub/internal/logging"
	"bisub/internal/textio"
	"bisub/internal/watcher"
)

var errCheckFailed = errors.New("check failed")

const clipboardSource = "clipboard"

type checkRunner func(content string) api.CheckResult

func newCheckCommand(ctx *commandContext) *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate SRT files",
	}

	checkCmd.AddCommand(newCheckSubcommand(ctx, "format", "Format check",
		"Validate block structure, numbering and timecodes of a bilingual SRT", api.CheckFormat))
	checkCmd.AddCommand(newCheckSubcommand(ctx, "symbols", "Punctuation check",
		"Flag full-width Chinese punctuation left in subtitle text", api.CheckSymbols))

	return checkCmd
}

func newCheckSubcommand(ctx *commandContext, name, title, short string, run checkRunner) *cobra.Command {
	var jsonOutput bool
	var watch bool
	var paste bool

	cmd := &cobra.Command{
		Use:   name + " [FILE|-]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := textio.StdinPath
			if len(args) == 1 {
				source = strings.TrimSpace(args[0])
			}
			if paste {
				if len(args) == 1 {
					return errors.New("--paste cannot be combined with a file argument")
				}
				source = clipboardSource
			}
			if watch && (source == textio.StdinPath || source == clipboardSource) {
				return errors.New("--watch needs a file path")
			}

			once := func() (api.CheckResult, error) {
				content, err := ctx.checkContent(cmd, source)
				if err != nil {
					return api.CheckResult{}, err
				}
				result := run(content)
				if jsonOutput {
					return result, writeJSON(cmd, result)
				}
				renderCheckResult(cmd, title, source, result)
				return result, nil
			}

			if watch {
				return ctx.watchCheck(cmd, source, once)
			}

			result, err := once()
			if err != nil {
				return err
			}
			if !result.OK() {
				return markedFailure(errCheckFailed, result.Err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the check result as JSON")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run the check whenever the file changes")
	cmd.Flags().BoolVar(&paste, "paste", false, "Check the clipboard contents instead of a file")

	return cmd
}

func (c *commandContext) checkContent(cmd *cobra.Command, source string) (string, error) {
	if source == clipboardSource {
		text, err := c.clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		return text, nil
	}
	decoded, err := c.readInput(cmd, source)
	if err != nil {
		return "", err
	}
	return decoded.Text, nil
}

// watchCheck runs the check now and after each change to path until
// interrupted. Failing checks do not stop the loop.
func (c *commandContext) watchCheck(cmd *cobra.Command, path string, once func() (api.CheckResult, error)) error {
	logger, err := c.logger(cmd)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	runAndReport := func() {
		if _, err := once(); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), renderStatusLine("check", statusError, err.Error(), shouldColorize(cmd.ErrOrStderr())))
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runAndReport()
	logger.Info("watching for changes", logging.String("path", path))
	return watcher.Watch(ctx, path, watcher.Options{Logger: logger}, runAndReport)
}

func renderCheckResult(cmd *cobra.Command, title, source string, result api.CheckResult) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader(title, colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, renderStatusLine("result", kindForStatus(result.Status), result.Message, colorize))
	for _, problem := range result.Errors {
		fmt.Fprintln(out)
		fmt.Fprintln(out, problem)
	}
	if len(result.Errors) > 0 {
		fmt.Fprintln(out)
	}

	status := strings.ToUpper(result.Status)
	if result.OK() {
		status = "PASS"
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Source", "Status", "Problems"},
		[][]string{{displaySource(source), status, strconv.Itoa(len(result.Errors))}},
		2,
	))
}

func displaySource(source string) string {
	if source == textio.StdinPath {
		return "stdin"
	}
	return source
}

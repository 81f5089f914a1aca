package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bisub/internal/api"
	"bisub/internal/logging"
	"bisub/internal/textio"
	"bisub/internal/textutil"
)

var errMergeAborted = errors.New("merge aborted")

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var englishPath string
	var chinesePath string
	var outputPath string
	var copyOutput bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge an English and a Chinese SRT into one bilingual SRT",
		Long: `Merge pairs English and Chinese entries by sequence number. Each merged
entry keeps the English timecode and shows the Chinese line (with
parenthesized asides removed) above the English line.

The merge aborts when a shared sequence number carries different timecodes.`,
		Example: `  bisub merge --en movie.en.srt --zh movie.zh.srt
  bisub merge --en movie.en.srt --zh movie.zh.srt -o - | less
  cat movie.zh.srt | bisub merge --en movie.en.srt --zh - --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			englishPath = strings.TrimSpace(englishPath)
			chinesePath = strings.TrimSpace(chinesePath)
			if englishPath == textio.StdinPath && chinesePath == textio.StdinPath {
				return errors.New("only one of --en and --zh may read standard input")
			}
			if jsonOutput && outputPath == textio.StdinPath {
				return errors.New("--json and --output - both write to stdout")
			}

			english, err := ctx.readInput(cmd, englishPath)
			if err != nil {
				return fmt.Errorf("english input: %w", err)
			}
			chinese, err := ctx.readInput(cmd, chinesePath)
			if err != nil {
				return fmt.Errorf("chinese input: %w", err)
			}
			logger.Debug("merge inputs decoded",
				logging.String("english_path", englishPath),
				logging.String("english_charset", english.Charset),
				logging.String("chinese_path", chinesePath),
				logging.String("chinese_charset", chinese.Charset),
			)

			resp := api.Merge(english.Text, chinese.Text)

			destination := outputPath
			if destination == "" && !jsonOutput {
				destination = filepath.Join(filepath.Dir(englishPath), textutil.DerivedFileName(englishPath, cfg.Merge.OutputSuffix))
			}

			stderr := cmd.ErrOrStderr()
			colorize := shouldColorize(stderr)

			if !resp.Aborted() && destination != "" {
				if err := writeMergedOutput(cmd, destination, resp.MergedOutput, englishPath, chinesePath); err != nil {
					return err
				}
			}

			if jsonOutput {
				if err := writeJSON(cmd, resp); err != nil {
					return err
				}
			} else {
				for _, message := range resp.Errors {
					fmt.Fprintln(stderr, renderStatusLine("merge", kindForStatus(resp.Status), message, colorize))
				}
			}

			if resp.Aborted() {
				logger.Warn("merge aborted",
					logging.String(logging.FieldEventType, "merge_aborted"),
					logging.Int("diagnostics", len(resp.Errors)),
				)
				return markedFailure(errMergeAborted, resp.Err)
			}

			if !jsonOutput && destination != textio.StdinPath {
				fmt.Fprintln(stderr, renderStatusLine("merge", statusOK, "wrote "+destination, colorize))
			}

			if copyOutput {
				if err := ctx.clipboard.WriteAll(resp.MergedOutput); err != nil {
					fmt.Fprintln(stderr, renderStatusLine("copy", statusWarn, err.Error(), colorize))
				} else if !jsonOutput {
					fmt.Fprintln(stderr, renderStatusLine("copy", statusOK, "merged subtitles copied to clipboard", colorize))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&englishPath, "en", "", "English SRT file (- for stdin)")
	cmd.Flags().StringVar(&chinesePath, "zh", "", "Chinese SRT file (- for stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (- for stdout); defaults to the English file name with merge.output_suffix")
	cmd.Flags().BoolVar(&copyOutput, "copy", false, "Copy the merged subtitles to the clipboard")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the merge result as JSON")
	_ = cmd.MarkFlagRequired("en")
	_ = cmd.MarkFlagRequired("zh")

	return cmd
}

// writeMergedOutput writes merged to destination, or to stdout for "-". It
// refuses to overwrite either input file.
func writeMergedOutput(cmd *cobra.Command, destination, merged string, inputs ...string) error {
	if merged != "" && !strings.HasSuffix(merged, "\n") {
		merged += "\n"
	}
	if destination == textio.StdinPath {
		_, err := fmt.Fprint(cmd.OutOrStdout(), merged)
		return err
	}
	target, err := filepath.Abs(destination)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	for _, input := range inputs {
		if input == textio.StdinPath {
			continue
		}
		if source, err := filepath.Abs(input); err == nil && source == target {
			return fmt.Errorf("output %s would overwrite an input file", destination)
		}
	}
	if err := os.WriteFile(target, []byte(merged), 0o644); err != nil {
		return fmt.Errorf("write merged output: %w", err)
	}
	return nil
}

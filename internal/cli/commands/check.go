package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/leapmath/internal/cli/output"
	"github.com/leapstack-labs/leapmath/pkg/format"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Watch bool // Re-check whenever the file changes
}

// CheckLine is the outcome for one expression of a checked file.
type CheckLine struct {
	Line  int               `json:"line" yaml:"line"`
	Input string            `json:"input" yaml:"input"`
	Text  string            `json:"text,omitempty" yaml:"text,omitempty"`
	Error *output.ErrorInfo `json:"error,omitempty" yaml:"error,omitempty"`
}

// CheckReport is the encodable output of the check command.
type CheckReport struct {
	File    string      `json:"file" yaml:"file"`
	Total   int         `json:"total" yaml:"total"`
	Failed  int         `json:"failed" yaml:"failed"`
	Results []CheckLine `json:"results" yaml:"results"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check every expression in a file",
		Long: `Parse a file holding one expression per line and report every line that
fails. Blank lines and lines starting with # are skipped.

The command exits non-zero if any expression fails. With --watch it keeps
running and re-checks the file each time it is written.`,
		Example: `  leapmath check exercises.txt
  leapmath check --watch exercises.txt
  leapmath check -o json exercises.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewCommandContext(cmd)
			if opts.Watch {
				return watchCheck(cmd.Context(), c, args[0])
			}
			return runCheck(cmd.Context(), c, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-check when the file changes")

	return cmd
}

// sourceLine is a non-blank, non-comment line of a checked file.
type sourceLine struct {
	number int
	text   string
}

func readSourceLines(path string) ([]sourceLine, error) {
	f, err := os.Open(path) //nolint:gosec // path is a user-supplied CLI argument
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var lines []sourceLine
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, sourceLine{number: n, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// checkFile parses every line concurrently. Results keep file order.
func checkFile(ctx context.Context, c *CommandContext, path string) (*CheckReport, error) {
	lines, err := readSourceLines(path)
	if err != nil {
		return nil, err
	}

	results := make([]CheckLine, len(lines))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, line := range lines {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			result := CheckLine{Line: line.number, Input: line.text}
			expr, err := c.Parser.ParseString(line.text)
			if err != nil {
				info := output.NewErrorInfo(err)
				result.Error = &info
			} else {
				result.Text = format.Format(expr)
			}
			results[i] = result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report := &CheckReport{File: path, Total: len(results), Results: results}
	for _, r := range results {
		if r.Error != nil {
			report.Failed++
		}
	}
	c.Logger.Debug("checked file", "file", path, "total", report.Total, "failed", report.Failed)
	return report, nil
}

func runCheck(ctx context.Context, c *CommandContext, path string) error {
	report, err := checkFile(ctx, c, path)
	if err != nil {
		return err
	}
	if err := renderCheck(c, report); err != nil {
		return err
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", report.Failed, report.Total)
	}
	return nil
}

func renderCheck(c *CommandContext, report *CheckReport) error {
	if handled, err := c.Renderer.Encode(report); handled {
		return err
	}

	r := c.Renderer
	styles := r.Styles()
	for _, line := range report.Results {
		if line.Error == nil {
			continue
		}
		r.Printf("%s:%d:%d: %s\n",
			report.File, line.Line, line.Error.Column,
			styles.Error.Render(line.Error.Message))
		r.Printf("    %s\n", line.Input)
		if line.Error.Column > 0 {
			r.Printf("    %s%s\n", strings.Repeat(" ", line.Error.Column-1), styles.Caret.Render("^"))
		}
	}

	summary := fmt.Sprintf("%d expressions, %d failed", report.Total, report.Failed)
	if report.Failed == 0 {
		r.Println(styles.Success.Render(summary))
	} else {
		r.Println(styles.Muted.Render(summary))
	}
	return nil
}

// watchCheck checks the file, then again after every write until ctx ends.
// Failures are reported but do not stop the watch.
func watchCheck(ctx context.Context, c *CommandContext, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file, so watch the directory.
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	recheck := func() {
		if err := runCheck(ctx, c, path); err != nil {
			c.Logger.Info("check failed", "file", path, "error", err)
		}
	}
	recheck()

	// Debounce timer
	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || filepath.Clean(event.Name) != abs {
				continue
			}
			debounce = time.After(100 * time.Millisecond)

		case <-debounce:
			debounce = nil
			c.Logger.Debug("file changed, re-checking", "file", path)
			recheck()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.Logger.Error("watcher error", "error", err)
		}
	}
}

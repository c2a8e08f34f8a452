package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"dpwhcli/internal/config"
	"dpwhcli/internal/errors"
	"dpwhcli/internal/exporter"
	"dpwhcli/internal/infrastructure"
	"dpwhcli/internal/operations"
)

// Menu choices
const (
	choiceLoad     = 1
	choiceGenerate = 2
	choiceExit     = 3
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Shell is the interactive menu over a pipeline Controller
type Shell struct {
	controller *operations.Controller
	logger     *slog.Logger
}

// NewShell creates a shell for controller
func NewShell(controller *operations.Controller, logger *slog.Logger) *Shell {
	return &Shell{
		controller: controller,
		logger:     infrastructure.WithComponent(logger, "shell"),
	}
}

// session holds the streams of one Run
type session struct {
	lines   <-chan string
	out     io.Writer
	preview *exporter.Previewer
}

// Run loops over the menu until Exit, end of input or ctx is done.
// Pipeline errors are printed and never end the loop.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()

	sess := &session{
		lines:   readLines(readCtx, in),
		out:     out,
		preview: exporter.NewPreviewer(out, exporter.PreviewOptionsFromPipeline(s.controller.Config().Pipeline)),
	}

	titleColor.Fprintln(out, config.AppName)
	for {
		s.printMenu(out)

		line, ok := sess.next(ctx)
		if !ok {
			fmt.Fprintln(out)
			successColor.Fprintln(out, config.MsgGoodbye)
			return ctx.Err()
		}

		choice, err := parseChoice(line)
		if err != nil {
			warnColor.Fprintln(out, errors.UserMessage(err))
			continue
		}

		switch choice {
		case choiceLoad:
			s.load(ctx, sess)
		case choiceGenerate:
			if !s.generate(ctx, sess) {
				successColor.Fprintln(out, config.MsgGoodbye)
				return ctx.Err()
			}
		case choiceExit:
			successColor.Fprintln(out, config.MsgGoodbye)
			return nil
		}
	}
}

func (s *Shell) printMenu(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "[1] Load the file")
	fmt.Fprintln(out, "[2] Generate Reports")
	fmt.Fprintln(out, "[3] Exit")
	fmt.Fprint(out, config.MsgMenuPrompt)
}

func (s *Shell) load(ctx context.Context, sess *session) {
	ctx = infrastructure.ContextWithTraceID(ctx)
	hadReports := s.controller.Reports() != nil

	result, err := s.controller.Load(ctx)
	if err != nil {
		errorColor.Fprintln(sess.out, errors.UserMessage(err))
		return
	}

	p := s.controller.Config().Pipeline
	st := result.Stats
	successColor.Fprintf(sess.out, "Processing dataset... (%d rows loaded, %d filtered for %d-%d)\n",
		st.RowsRead, st.RowsRetained, p.MinYear, p.MaxYear)
	if st.Skipped() > 0 {
		warnColor.Fprintf(sess.out, "%d rows skipped (%d unparsable, %d invalid)\n",
			st.Skipped(), st.ParseRejected, st.ValidationRejected)
	}
	if hadReports && s.controller.ReportsStale() {
		warnColor.Fprintln(sess.out, config.MsgStale)
	}
}

// generate runs Generate and the preview, then asks whether to return to the menu.
// It returns false when the user chose to leave.
func (s *Shell) generate(ctx context.Context, sess *session) bool {
	ctx = infrastructure.ContextWithTraceID(ctx)

	if s.controller.State().CanGenerate() {
		fmt.Fprintln(sess.out, config.MsgGenerating)
		fmt.Fprintln(sess.out)
	}

	result, err := s.controller.Generate(ctx)
	if errors.IsType(err, errors.ErrTypePrecondition) {
		warnColor.Fprintln(sess.out, errors.UserMessage(err))
		return true
	}
	if err != nil {
		errorColor.Fprintln(sess.out, errors.UserMessage(err))
		return true
	}

	if err := sess.preview.RenderReports(result.Reports, s.controller.Paths()); err != nil {
		s.logger.WarnContext(ctx, "Preview failed", slog.String("error", err.Error()))
	}
	successColor.Fprintf(sess.out, "%d files written to %s\n", len(result.Artifacts), s.controller.Paths().OutputDir)
	fmt.Fprintf(sess.out, "Outputs saved to individual files: %s\n", reportNames(s.controller.Paths()))

	return s.askBack(ctx, sess)
}

func (s *Shell) askBack(ctx context.Context, sess *session) bool {
	for {
		fmt.Fprint(sess.out, config.MsgBackPrompt)
		line, ok := sess.next(ctx)
		if !ok {
			fmt.Fprintln(sess.out)
			return false
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "Y", "YES", "":
			return true
		case "N", "NO":
			return false
		default:
			warnColor.Fprintln(sess.out, "Please enter Y or N.")
		}
	}
}

func reportNames(paths *config.Paths) string {
	files := paths.ReportFiles()
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	return strings.Join(names, ", ")
}

// parseChoice returns an Input error for anything other than 1, 2 or 3
func parseChoice(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errors.NewInputError(config.MsgNotANumber)
	}
	if n < choiceLoad || n > choiceExit {
		return 0, errors.NewInputError(config.MsgBadChoice)
	}
	return n, nil
}

func (sess *session) next(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-sess.lines:
		return line, ok
	}
}

// readLines feeds in line by line until EOF or ctx is done
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/runoshun/quadrant/internal/app"
	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/tui"
	"github.com/runoshun/quadrant/internal/usecase"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// reportFlags controls how a report is printed.
type reportFlags struct {
	raw  bool
	copy bool
}

// newReportCommand creates the report command.
func newReportCommand(c *app.Container) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print generated reports",
		Long: `Fetch a Markdown report from the task store.

On a terminal the report is rendered; with --raw, or when the output is
not a terminal, the Markdown is printed as is.

Examples:
  quadrant report daily
  quadrant report weekly 2024-W10
  quadrant report monthly 2024-03
  quadrant report quarterly 2024-Q1
  quadrant report range 2024-03-01 2024-03-15 --raw`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.PersistentFlags().BoolVar(&flags.raw, "raw", false, "Print Markdown without rendering")
	cmd.PersistentFlags().BoolVar(&flags.copy, "copy", false, "Also copy the Markdown to the clipboard")

	cmd.AddCommand(
		newReportSubcommand(c, &flags, "daily [YYYY-MM-DD]", "Report of a day (default today)", cobra.MaximumNArgs(1), dailyRequest),
		newReportSubcommand(c, &flags, "weekly [YYYY-Www]", "Report of an ISO week (default this week)", cobra.MaximumNArgs(1), weeklyRequest),
		newReportSubcommand(c, &flags, "monthly [YYYY-MM]", "Report of a month (default this month)", cobra.MaximumNArgs(1), monthlyRequest),
		newReportSubcommand(c, &flags, "quarterly [YYYY-Qn]", "Report of a quarter (default this quarter)", cobra.MaximumNArgs(1), quarterlyRequest),
		newReportSubcommand(c, &flags, "range <start> <end>", "Report of an inclusive date range", cobra.ExactArgs(2), rangeRequest),
	)

	return cmd
}

// requestBuilder turns arguments into a report request.
type requestBuilder func(now time.Time, args []string) (domain.ReportRequest, error)

func newReportSubcommand(c *app.Container, flags *reportFlags, use, short string, args cobra.PositionalArgs, build requestBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := build(c.Clock.Now(), args)
			if err != nil {
				return err
			}
			out, err := c.FetchReportUseCase().Execute(cmd.Context(), usecase.FetchReportInput{Request: req})
			if err != nil {
				return err
			}
			if flags.copy {
				if err := writeClipboard(out.Content); err != nil {
					return fmt.Errorf("copy report: %w", err)
				}
			}
			return printReport(cmd.OutOrStdout(), out.Content, flags.raw)
		},
	}
}

// printReport renders the report when w is a terminal.
func printReport(w io.Writer, content string, raw bool) error {
	if f, ok := w.(*os.File); ok && !raw && isatty.IsTerminal(f.Fd()) {
		width := 80
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
		rendered, err := tui.RenderMarkdown(content, width)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(w, rendered)
		return nil
	}
	_, _ = fmt.Fprint(w, content)
	if !strings.HasSuffix(content, "\n") {
		_, _ = fmt.Fprintln(w)
	}
	return nil
}

func dailyRequest(now time.Time, args []string) (domain.ReportRequest, error) {
	req := domain.ReportRequest{Kind: domain.ReportDaily, Date: domain.NewDateKey(now)}
	if len(args) == 1 {
		d, err := domain.ParseDateKey(args[0])
		if err != nil {
			return domain.ReportRequest{}, err
		}
		req.Date = d
	}
	return req, nil
}

func weeklyRequest(now time.Time, args []string) (domain.ReportRequest, error) {
	req := domain.ReportRequest{Kind: domain.ReportWeekly, Week: domain.ISOWeekOf(now)}
	if len(args) == 1 {
		w, err := domain.ParseWeekKey(args[0])
		if err != nil {
			return domain.ReportRequest{}, err
		}
		req.Week = w
	}
	return req, nil
}

func monthlyRequest(now time.Time, args []string) (domain.ReportRequest, error) {
	req := domain.ReportRequest{Kind: domain.ReportMonthly, Year: now.Year(), Month: int(now.Month())}
	if len(args) == 1 {
		t, err := time.Parse("2006-01", args[0])
		if err != nil {
			return domain.ReportRequest{}, fmt.Errorf("month %q: %w", args[0], domain.ErrInvalidPeriod)
		}
		req.Year, req.Month = t.Year(), int(t.Month())
	}
	return req, nil
}

func quarterlyRequest(now time.Time, args []string) (domain.ReportRequest, error) {
	req := domain.ReportRequest{Kind: domain.ReportQuarterly, Year: now.Year(), Quarter: (int(now.Month())-1)/3 + 1}
	if len(args) == 1 {
		yearStr, qStr, ok := strings.Cut(strings.ToUpper(args[0]), "-Q")
		year, yerr := strconv.Atoi(yearStr)
		quarter, qerr := strconv.Atoi(qStr)
		if !ok || yerr != nil || qerr != nil {
			return domain.ReportRequest{}, fmt.Errorf("quarter %q: %w", args[0], domain.ErrInvalidPeriod)
		}
		req.Year, req.Quarter = year, quarter
	}
	return req, nil
}

func rangeRequest(_ time.Time, args []string) (domain.ReportRequest, error) {
	start, err := domain.ParseDateKey(args[0])
	if err != nil {
		return domain.ReportRequest{}, err
	}
	end, err := domain.ParseDateKey(args[1])
	if err != nil {
		return domain.ReportRequest{}, err
	}
	return domain.ReportRequest{Kind: domain.ReportRange, Start: start, End: end}, nil
}

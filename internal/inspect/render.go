package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// RenderOptions controls report output
type RenderOptions struct {
	Format string // table|json
	Color  bool
	Width  int // maximum table row length, 0 for unlimited
}

// UseColor resolves a colour mode (auto|always|never) for the given writer.
// auto enables colour only when w is a terminal.
func UseColor(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TerminalWidth returns the column count of w when it is a terminal, or 0
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return width
	}
	return 0
}

// WriteResponse renders a response report
func WriteResponse(w io.Writer, r *ResponseReport, opts RenderOptions) error {
	switch strings.ToLower(opts.Format) {
	case "json":
		return writeJSON(w, r)
	case "", "table":
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}

	tw := newTable(w, opts.Width)
	tw.AppendHeader(table.Row{"Check", "Result"})
	tw.AppendRows([]table.Row{
		{"status", statusText(r.Status, opts.Color)},
		{"error", orDash(r.ErrorCode)},
		{"category", orDash(string(r.Category))},
		{"rate limited", flag(r.RateLimited, opts.Color)},
		{"missing scope", flag(r.MissingScope, opts.Color)},
		{"auth error", flag(r.AuthError, opts.Color)},
	})
	if r.Needed != "" {
		tw.AppendRow(table.Row{"needed scope", r.Needed})
	}
	if r.RetryAfter > 0 {
		tw.AppendRow(table.Row{"retry after", strconv.Itoa(r.RetryAfter) + "s"})
	}
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"cursor metadata", flag(r.HasCursor, opts.Color)},
		{"next page", flag(r.HasNextPage, opts.Color)},
		{"next cursor", cursorText(r.NextCursor)},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"offset paging", flag(r.HasOffsetPaging, opts.Color)},
		{"more pages", flag(r.HasMorePages, opts.Color)},
		{"total count", totalText(r.TotalCount)},
	})
	if r.Blocks != nil {
		tw.AppendSeparator()
		tw.AppendRows([]table.Row{
			{"blocks", fmt.Sprintf("%d (%d known)", r.Blocks.Total, r.Blocks.Known)},
			{"blocks valid", flag(r.Blocks.Valid, opts.Color)},
		})
	}
	tw.Render()
	return nil
}

// WriteBlocks renders a block report
func WriteBlocks(w io.Writer, r *BlockReport, opts RenderOptions) error {
	switch strings.ToLower(opts.Format) {
	case "json":
		return writeJSON(w, r)
	case "", "table":
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}

	tw := newTable(w, opts.Width)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Number: 4, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
	})
	tw.AppendHeader(table.Row{"#", "Type", "Block", "Known"})
	for _, e := range r.Entries {
		tw.AppendRow(table.Row{e.Index, orDash(e.Type), flag(e.Block, opts.Color), flag(e.Known, opts.Color)})
	}
	if len(r.Entries) == 0 {
		tw.AppendRow(table.Row{"-", "(no blocks)", "-", "-"})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d total, %d known", r.Total, r.Known), "valid", flag(r.Valid, opts.Color)})
	tw.Render()
	return nil
}

func newTable(w io.Writer, width int) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if width > 0 {
		tw.SetAllowedRowLength(width)
	}
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateHeader = true
	tw.Style().Options.DrawBorder = true
	tw.Style().Format.Footer = text.FormatDefault
	return tw
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func flag(v, color bool) string {
	s := "no"
	if v {
		s = "yes"
	}
	if !color {
		return s
	}
	if v {
		return text.FgGreen.Sprint(s)
	}
	return text.FgHiBlack.Sprint(s)
}

func statusText(status string, color bool) string {
	if !color {
		return status
	}
	switch status {
	case StatusSuccess:
		return text.FgGreen.Sprint(status)
	case StatusError:
		return text.FgRed.Sprint(status)
	default:
		return text.FgYellow.Sprint(status)
	}
}

func cursorText(cursor *string) string {
	switch {
	case cursor == nil:
		return "-"
	case *cursor == "":
		return `"" (last page)`
	default:
		return *cursor
	}
}

func totalText(total *int) string {
	if total == nil {
		return "-"
	}
	return strconv.Itoa(*total)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

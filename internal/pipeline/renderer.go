package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ppiankov/identigen/internal/model"
)

// TimestampLayout is the second-resolution stamp embedded in output names
const TimestampLayout = "2006-01-02_15-04-05"

// Renderer writes categorized records to disk and to the console
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// FormatText serializes rec in the line-oriented text format.
// Empty categories keep their header.
func FormatText(rec *model.CategorizedRecord) string {
	var b strings.Builder
	for _, s := range rec.Sections() {
		fmt.Fprintf(&b, "%s:\n", s.Name)
		for _, e := range s.Entries {
			fmt.Fprintf(&b, "  %s: %s\n", e.Label, e.Value)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// TextFileName returns the text file name for ts
func TextFileName(ts time.Time) string {
	return "identity_info_" + ts.Format(TimestampLayout) + ".txt"
}

// WriteText writes text to dir/identity_info_<timestamp>.txt and returns the path.
// The file appears complete or not at all.
func (r *Renderer) WriteText(text string, dir string, ts time.Time) (path string, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".identity_info_*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write record: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close record: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return "", fmt.Errorf("chmod record: %w", err)
	}

	path = filepath.Join(dir, TextFileName(ts))
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename record: %w", err)
	}

	return path, nil
}

// RenderSummary prints rec as a table
func (r *Renderer) RenderSummary(w io.Writer, rec *model.CategorizedRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Category", "Field", "Value"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, WidthMax: 64},
	})

	sections := rec.Sections()
	for i, s := range sections {
		if len(s.Entries) == 0 {
			t.AppendRow(table.Row{s.Name, "-", ""})
		}
		for j, e := range s.Entries {
			name := ""
			if j == 0 {
				name = s.Name
			}
			t.AppendRow(table.Row{name, e.Label, e.Value})
		}
		if i < len(sections)-1 {
			t.AppendSeparator()
		}
	}

	t.Render()
}

package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/identigen/internal/model"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 10, 16, 14, 7, 9, 0, time.Local)

func sampleRecord() *model.CategorizedRecord {
	rec := model.NewCategorizedRecord()
	rec.Set(model.CategoryBasic, "Name", "Jane Doe")
	rec.Set(model.CategoryBasic, "Address", "123 Main St")
	rec.Set(model.CategoryOnline, "Email Address", "jane@example.com")
	return rec
}

const sampleText = `Basic Info:
  Name: Jane Doe
  Address: 123 Main St

Online Info:
  Email Address: jane@example.com

Phone Info:

Financial Info:

Personal Info:

Work Info:

Shipping Info:

`

func TestFormatText(t *testing.T) {
	require.Equal(t, sampleText, FormatText(sampleRecord()))
}

func TestFormatText_Empty(t *testing.T) {
	got := FormatText(model.NewCategorizedRecord())
	require.Equal(t, 7, strings.Count(got, "Info:\n\n"))
}

func TestTextFileName(t *testing.T) {
	require.Equal(t, "identity_info_2026-10-16_14-07-09.txt", TextFileName(fixedTime))
}

func TestRenderer_WriteText(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	r := NewRenderer()

	path, err := r.WriteText(sampleText, dir, fixedTime)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "identity_info_2026-10-16_14-07-09.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, sampleText, string(data))

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRenderer_WriteTextOverwritesSameSecond(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer()

	_, err := r.WriteText("first", dir, fixedTime)
	require.NoError(t, err)
	path, err := r.WriteText("second", dir, fixedTime)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))
}

func TestRenderer_WriteTextUnwritableDir(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := NewRenderer().WriteText(sampleText, filepath.Join(blocker, "out"), fixedTime)
	require.Error(t, err)
}

func TestRenderer_RenderSummary(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer().RenderSummary(&buf, sampleRecord())

	out := buf.String()
	for _, want := range []string{"Basic Info", "Jane Doe", "Email Address", "jane@example.com", "Shipping Info"} {
		require.Contains(t, out, want)
	}
}

package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlsxheaders-go/pkg/xlsxheaders"
)

const ns = `xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"`

func writeWorkbook(t *testing.T, dir, name string, parts map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()

	zw := zip.NewWriter(out)
	for part, content := range parts {
		w, err := zw.Create(part)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func headerParts() map[string]string {
	return map[string]string{
		"xl/sharedStrings.xml": `<sst ` + ns + `><si><t>Name</t></si><si><t>Age</t></si></sst>`,
		"xl/worksheets/sheet1.xml": `<worksheet ` + ns + `><sheetData><row r="1">` +
			`<c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c><c r="C1"><v>42</v></c>` +
			`</row></sheetData></worksheet>`,
		"xl/worksheets/sheet2.xml": `<worksheet ` + ns + `><sheetData><row r="1">` +
			`<c r="A1" t="s"><v>1</v></c></row></sheetData></worksheet>`,
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunPrintsHeaderLine(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "book.xlsx", headerParts())

	stdout, stderr, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, "Name,Age,42\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunSheetPartArgument(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "book.xlsx", headerParts())

	stdout, _, err := execute(t, path, "xl/worksheets/sheet2.xml")
	require.NoError(t, err)
	assert.Equal(t, "Age\n", stdout)
}

func TestRunDefaultInput(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, defaultInput, headerParts())
	t.Chdir(dir)

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "Name,Age,42\n", stdout)
}

func TestRunIsIdempotent(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "book.xlsx", headerParts())

	first, _, err := execute(t, path)
	require.NoError(t, err)
	second, _, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunJSONFormat(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "book.xlsx", headerParts())

	stdout, _, err := execute(t, "--format", "json", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"book_name": "book.xlsx",
		"sheet_part": "xl/worksheets/sheet1.xml",
		"columns": [
			{"cell": "A1", "value": "Name"},
			{"cell": "B1", "value": "Age"},
			{"cell": "C1", "value": "42"}
		]
	}`, stdout)
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "book.xlsx", headerParts())

	stdout, stderr, err := execute(t, "-v", path)
	require.NoError(t, err)
	assert.Equal(t, "Name,Age,42\n", stdout)
	assert.Contains(t, stderr, "located header row")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	noSST := writeWorkbook(t, dir, "nosst.xlsx", map[string]string{
		"xl/worksheets/sheet1.xml": headerParts()["xl/worksheets/sheet1.xml"],
	})

	t.Run("missing file", func(t *testing.T) {
		stdout, stderr, err := execute(t, filepath.Join(dir, "missing.xlsx"))
		require.ErrorIs(t, err, xlsxheaders.ErrOpenArchive)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "extraction failed")
	})

	t.Run("missing shared strings", func(t *testing.T) {
		stdout, _, err := execute(t, noSST)
		require.ErrorIs(t, err, xlsxheaders.ErrPartNotFound)
		assert.Empty(t, stdout)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, _, err := execute(t, "--format", "csv", noSST)
		assert.Error(t, err)
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, _, err := execute(t, "a.xlsx", "sheet.xml", "extra")
		assert.Error(t, err)
	})
}

package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/teamfood"
	main "github.com/fwojciec/teamfood/cmd/teamfood"
	"github.com/fwojciec/teamfood/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menuPage = `<!DOCTYPE html>
<html>
<body>
<div id="col3_content">
<p>1 = mit Farbstoff, 2 = mit Konservierungsstoff</p>
<h3>Speiseplan KW 07 vom 12.02.2024 bis 16.02.2024</h3>
<table>
<tr><td>Tag</td><td>Gericht</td><td>Typ</td><td>Preis</td><td>Beilage</td><td>Zusätze</td></tr>
<tr><td>Montag</td><td>Schnitzel</td><td>Schwein</td><td>5.50€</td><td>Pommes</td><td>1,2</td></tr>
<tr><td></td><td>Gemüsecurry</td><td>vegetarisch</td><td>4.20€</td><td>-</td><td></td></tr>
<tr><td>Dienstag</td><td>Backfisch</td><td>Fisch</td><td>4.90€</td><td>Kartoffelsalat</td><td>5</td></tr>
</table>
</div>
</body>
</html>`

const wantFile = `teamfood
Montag
Schnitzel;;Pommes;Schwein;5.50
Gemüsecurry;;;Vegetarisch;4.20
Dienstag
Backfisch;;Kartoffelsalat;Fisch;4.90
`

// servePage starts a server answering every request with body.
func servePage(t *testing.T, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "teamfood")
	assert.Contains(t, stdout.String(), "--strict")
}

func TestMain_Run_UnknownFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--bogus"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_WritesMenuFile(t *testing.T) {
	t.Parallel()

	srv := servePage(t, menuPage)
	out := filepath.Join(t.TempDir(), "menu.txt")
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{"-o", out, srv.URL}, &stdout, &stderr)

	require.NoError(t, err)
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, wantFile, string(content))
	assert.Empty(t, stdout.String())
}

func TestMain_Run_PrintsMenu(t *testing.T) {
	t.Parallel()

	srv := servePage(t, menuPage)
	out := filepath.Join(t.TempDir(), "menu.txt")
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{"--print", "-o", out, srv.URL}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Speiseplan for week 7 (12.02.2024 - 16.02.2024)")
	assert.Contains(t, stdout.String(), "5.50€ / Schwein / Zusätze: 1, 2")
	assert.Contains(t, stdout.String(), "1 = mit Farbstoff, 2 = mit Konservierungsstoff")
}

func TestMain_Run_VerboseLogsSteps(t *testing.T) {
	t.Parallel()

	srv := servePage(t, menuPage)
	out := filepath.Join(t.TempDir(), "menu.txt")
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{"-v", "-o", out, srv.URL}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "msg=fetch")
	assert.Contains(t, stderr.String(), "msg=extract")
	assert.Contains(t, stderr.String(), "weeks=1")
	assert.Contains(t, stderr.String(), "items=3")
	assert.Contains(t, stderr.String(), "write menu")
}

func TestMain_Run_StructureErrorWritesNothing(t *testing.T) {
	t.Parallel()

	page := `<div id="col3_content">
<h3>KW 07 12.02.2024 - 16.02.2024</h3><table><tr><td>Tag</td></tr></table>
<h3>KW 08 19.02.2024 - 23.02.2024</h3><table><tr><td>Tag</td></tr></table>
<table><tr><td>Tag</td></tr></table>
</div>`
	srv := servePage(t, page)
	out := filepath.Join(t.TempDir(), "menu.txt")
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{"-o", out, srv.URL}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, teamfood.ESTRUCTURE, teamfood.ErrorCode(err))
	assert.NoFileExists(t, out)
}

func TestMain_Run_StrictHeaders(t *testing.T) {
	t.Parallel()

	page := `<div id="col3_content">
<h3>KW 07 ab 12.02.2024</h3>
<table><tr><td>Montag</td><td>A</td><td></td><td>1.00</td><td>-</td><td></td></tr></table>
</div>`
	srv := servePage(t, page)
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	// Lenient by default: the week is skipped.
	lenientOut := filepath.Join(dir, "lenient.txt")
	err := main.NewMain().Run(context.Background(), []string{"-o", lenientOut, srv.URL}, &stdout, &stderr)
	require.NoError(t, err)
	content, err := os.ReadFile(lenientOut)
	require.NoError(t, err)
	assert.Equal(t, "teamfood\n", string(content))
	assert.Contains(t, stderr.String(), "skipping week")

	strictOut := filepath.Join(dir, "strict.txt")
	err = main.NewMain().Run(context.Background(), []string{"--strict", "-o", strictOut, srv.URL}, &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, teamfood.ESTRUCTURE, teamfood.ErrorCode(err))
	assert.NoFileExists(t, strictOut)
}

func TestMain_Run_ConfigFile(t *testing.T) {
	t.Parallel()

	srv := servePage(t, menuPage)
	dir := t.TempDir()
	fileOut := filepath.Join(dir, "from-config.txt")
	flagOut := filepath.Join(dir, "from-flag.txt")
	cfgPath := filepath.Join(dir, "teamfood.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("url: "+srv.URL+"\noutput: "+fileOut+"\n"), 0644))

	t.Run("uses config values", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		err := main.NewMain().Run(context.Background(), []string{"-c", cfgPath}, &stdout, &stderr)

		require.NoError(t, err)
		assert.FileExists(t, fileOut)
	})

	t.Run("flags override config values", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		err := main.NewMain().Run(context.Background(), []string{"-c", cfgPath, "-o", flagOut}, &stdout, &stderr)

		require.NoError(t, err)
		assert.FileExists(t, flagOut)
	})
}

func TestMain_Run_UsesInjectedFetcher(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "menu.txt")
	closed := false
	m := main.NewMain()
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			assert.Equal(t, main.DefaultURL, url)
			return menuPage, nil
		},
		CloseFn: func() error {
			closed = true
			return nil
		},
	}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"-o", out}, &stdout, &stderr)

	require.NoError(t, err)
	assert.True(t, closed)
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, wantFile, string(content))
}

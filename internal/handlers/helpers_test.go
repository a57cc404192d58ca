package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sales-dashboard/internal/report"
	"sales-dashboard/internal/services"
)

const testSalesCSV = `Date,Total Sales,Total no. of bills,Cash,Card,Due Payment
01-01-2024,"1,000.00",10,400,600,0
`

const testItemsCSV = `Item,Category,Qty.,Total (₹)
A,X,5,"1,250"
B,Y,5,500
`

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type testDeps struct {
	analyzer *services.Analyzer
	library  *services.Library
	dataDir  string
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	loader, err := report.NewLoader()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "January Sales.csv"), []byte(testSalesCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "March Sales.csv"), []byte("Date,Total Sales\n01-03-2024,5\n"), 0o644))

	return testDeps{
		analyzer: services.NewAnalyzer(loader, testLogger),
		library:  services.NewLibrary(dir, loader, testLogger),
		dataDir:  dir,
	}
}

// uploadRequest builds a multipart request; empty contents omit the field.
func uploadRequest(t *testing.T, target, sales, items string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for field, content := range map[string]string{"sales": sales, "items": items} {
		if content == "" {
			continue
		}
		fw, err := mw.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = io.WriteString(fw, content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

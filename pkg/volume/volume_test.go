package volume

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/kalavara/kalavara/pkg/httpd"
	"github.com/kalavara/kalavara/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel, Output: io.Discard})
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestNewCreatesTmpDir(t *testing.T) {
	dir := t.TempDir()

	_, err := New(dir + "/")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "tmp"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveGetDelete(t *testing.T) {
	s := newTestServer(t)

	resp := s.Save("key1", strings.NewReader("val1"))
	assert.Equal(t, http.StatusCreated, render(resp).Code)

	w := render(s.Get("key1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "val1", w.Body.String())

	assert.Equal(t, http.StatusNoContent, render(s.Delete("key1")).Code)
	assert.Equal(t, http.StatusInternalServerError, render(s.Get("key1")).Code)
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestServer(t)

	s.Save("key1", strings.NewReader("old"))
	s.Save("key1", strings.NewReader("new"))

	w := render(s.Get("key1"))
	assert.Equal(t, "new", w.Body.String())
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s := newTestServer(t)

	s.Save("key1", strings.NewReader("val1"))

	entries, err := os.ReadDir(filepath.Join(s.root, "tmp"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteMissingBlob(t *testing.T) {
	s := newTestServer(t)

	// Not-found is not distinguished from any other filesystem error.
	assert.Equal(t, http.StatusInternalServerError, render(s.Delete("absent")).Code)
}

func TestConcurrentPublishReadsFullBodies(t *testing.T) {
	s := newTestServer(t)
	s.Save("key1", strings.NewReader(body(0)))

	valid := make(map[string]bool)
	for i := 0; i < 10; i++ {
		valid[body(i)] = true
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 1; i < 10; i++ {
			s.Save("key1", strings.NewReader(body(i)))
		}
	}()

	errs := make(chan string, 100)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			w := render(s.Get("key1"))
			if w.Code != http.StatusOK {
				continue
			}
			if !valid[w.Body.String()] {
				errs <- w.Body.String()
			}
		}
	}()

	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("read %q, not any written body", got)
	}
}

func body(i int) string {
	return fmt.Sprintf("value-%d-%s", i, strings.Repeat("x", 4096))
}

func TestServeHTTPRoutes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		url        string
		body       string
		wantStatus int
	}{
		{"put", http.MethodPut, "/store/key1", "val1", http.StatusCreated},
		{"get", http.MethodGet, "/store/key1", "", http.StatusOK},
		{"get with query", http.MethodGet, "/store/key1?q=v", "", http.StatusOK},
		{"delete", http.MethodDelete, "/store/key1", "", http.StatusNoContent},
		{"patch", http.MethodPatch, "/store/key1", "", http.StatusMethodNotAllowed},
		{"no prefix", http.MethodGet, "/key1", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reqBody io.Reader
			if tt.body != "" {
				reqBody = strings.NewReader(tt.body)
			}
			r := httptest.NewRequest(tt.method, tt.url, reqBody)
			w := httptest.NewRecorder()

			s.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func render(resp httpd.Response) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	resp.Render(w)
	return w
}

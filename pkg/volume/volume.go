package volume

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/kalavara/kalavara/pkg/httpd"
	"github.com/kalavara/kalavara/pkg/log"
	"github.com/kalavara/kalavara/pkg/metrics"
	"github.com/rs/zerolog"
)

const storePrefix = "/store/"

// Server is the blob service: a slice of the key namespace materialized
// as files under a data root. It keeps no index of its own — the master
// only sends it keys it has placed here.
type Server struct {
	root   string
	logger zerolog.Logger
}

// New creates a blob server rooted at dataDir. The data root and its tmp/
// child are co-created so in-flight writes and published blobs share a
// filesystem and the publish rename stays atomic.
func New(dataDir string) (*Server, error) {
	root := strings.TrimRight(dataDir, "/")

	if err := os.MkdirAll(filepath.Join(root, "tmp"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Server{
		root:   root,
		logger: log.WithComponent("volume"),
	}, nil
}

// Prefix returns the data-plane URL prefix.
func (s *Server) Prefix() string {
	return storePrefix
}

// Get streams the blob for a key.
func (s *Server) Get(key string) httpd.Response {
	return httpd.File(s.blobPath(key))
}

// Save publishes the request body as the blob for a key.
func (s *Server) Save(key string, body io.Reader) httpd.Response {
	if err := s.publish(key, body); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Publish failed")
		return httpd.ServerError()
	}
	return httpd.Created()
}

// Delete unlinks the blob for a key. A missing blob is a 500 like any
// other filesystem error; the volume server does not distinguish.
func (s *Server) Delete(key string) httpd.Response {
	if err := os.Remove(s.blobPath(key)); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Unlink failed")
		return httpd.ServerError()
	}
	metrics.BlobsDeleted.Inc()
	return httpd.Deleted()
}

// publish streams the body into a uniquely named temp file, then renames
// it onto the blob path. Readers see the old blob, the new blob, or
// nothing — never a partial file.
func (s *Server) publish(key string, body io.Reader) error {
	tmpPath := filepath.Join(s.root, "tmp", uuid.New().String())

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	written, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	dest := s.blobPath(key)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to create blob directory: %w", err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to publish blob: %w", err)
	}

	metrics.BlobBytesWritten.Add(float64(written))

	s.logger.Debug().
		Str("key", key).
		Int64("bytes", written).
		Msg("Published blob")

	return nil
}

// ServeHTTP dispatches the data plane; everything else is 404.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := httpd.NewRecorder(w)

	if strings.HasPrefix(r.RequestURI, storePrefix) {
		httpd.Dispatch(s, rec, r)
	} else {
		httpd.NotFound("Path not found").Render(rec)
	}

	metrics.RequestsTotal.WithLabelValues("volume", r.Method, strconv.Itoa(rec.Status())).Inc()
}

package master

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/kalavara/kalavara/pkg/httpd"
	"github.com/kalavara/kalavara/pkg/index"
	"github.com/kalavara/kalavara/pkg/log"
	"github.com/kalavara/kalavara/pkg/metrics"
	"github.com/kalavara/kalavara/pkg/registry"
	"github.com/rs/zerolog"
)

const (
	storePrefix = "/store/"
	adminPrefix = "/admin/"
)

// Master is the directory service: it owns the durable key index and the
// volume registry, and answers every data-plane request with a redirect.
// Payload bytes never pass through it.
type Master struct {
	store    index.Store
	registry *registry.Registry
	logger   zerolog.Logger
}

// New creates a master over an open index store and a volume registry.
func New(store index.Store, reg *registry.Registry) *Master {
	return &Master{
		store:    store,
		registry: reg,
		logger:   log.WithComponent("master"),
	}
}

// Prefix returns the data-plane URL prefix.
func (m *Master) Prefix() string {
	return storePrefix
}

// Get looks the key up in the index and redirects to its volume server.
func (m *Master) Get(key string) httpd.Response {
	volume, err := m.store.Get(key)
	if errors.Is(err, index.ErrNotFound) {
		return httpd.NotFound("Key not found")
	}
	if err != nil {
		m.logger.Error().Err(err).Str("key", key).Msg("Index lookup failed")
		return httpd.ServerError()
	}
	return httpd.Redirect(volume + storePrefix + key)
}

// Save places the key on a volume server, persists the placement and
// redirects the client there for the payload upload. The request body is
// deliberately ignored; the client replays it against the volume server
// when it follows the 307.
func (m *Master) Save(key string, _ io.Reader) httpd.Response {
	timer := metrics.NewTimer()

	volume, err := m.registry.Pick()
	if err != nil {
		return httpd.Unavailable("No volume servers found")
	}

	prev, err := m.store.Put(key, volume)
	if err != nil {
		m.logger.Error().Err(err).Str("key", key).Msg("Index write failed")
		return httpd.ServerError()
	}

	// Settle counters: a re-write moves the key off its previous volume.
	if prev != "" {
		m.registry.Decrement(prev)
	}
	m.registry.Increment(volume)

	timer.ObserveDuration(metrics.PlacementLatency)
	metrics.KeysPlaced.Inc()

	m.logger.Debug().
		Str("key", key).
		Str("volume", volume).
		Msg("Placed key")

	return httpd.Redirect(volume + storePrefix + key)
}

// Delete removes the key from the index and redirects so the client can
// delete the blob itself.
func (m *Master) Delete(key string) httpd.Response {
	volume, err := m.store.Delete(key)
	if errors.Is(err, index.ErrNotFound) {
		return httpd.NotFound("Key not found")
	}
	if err != nil {
		m.logger.Error().Err(err).Str("key", key).Msg("Index delete failed")
		return httpd.ServerError()
	}

	m.registry.Decrement(volume)
	metrics.KeysDeleted.Inc()

	return httpd.Redirect(volume + storePrefix + key)
}

// ServeHTTP routes between the data plane, the admin plane and nothing.
func (m *Master) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := httpd.NewRecorder(w)

	switch {
	case strings.HasPrefix(r.RequestURI, storePrefix):
		httpd.Dispatch(m, rec, r)
	case strings.HasPrefix(r.RequestURI, adminPrefix):
		m.admin(rec, r)
	default:
		httpd.NotFound("Path not found").Render(rec)
	}

	metrics.RequestsTotal.WithLabelValues("master", r.Method, strconv.Itoa(rec.Status())).Inc()
}

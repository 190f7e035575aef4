package master

import (
	"io"
	"net/http"
	"strings"

	"github.com/kalavara/kalavara/pkg/httpd"
	"github.com/kalavara/kalavara/pkg/metrics"
	"github.com/kalavara/kalavara/pkg/registry"
)

// admin handles the control plane under /admin/. The only verb today is
// add-volume; unknown admin paths answer 404.
func (m *Master) admin(w http.ResponseWriter, r *http.Request) {
	verb := httpd.Key(r.RequestURI, adminPrefix)

	var resp httpd.Response
	switch verb {
	case "add-volume":
		resp = m.addVolume(r)
	default:
		resp = httpd.NotFound("Path not found")
	}

	resp.Render(w)
}

func (m *Master) addVolume(r *http.Request) httpd.Response {
	if r.Method != http.MethodPost {
		return httpd.NotAllowed()
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		m.logger.Error().Err(err).Msg("Failed to read add-volume body")
		return httpd.ServerError()
	}

	url := registry.Canonicalize(strings.TrimSpace(string(body)))
	if !m.registry.Add(url) {
		return httpd.Ok("Skipping duplicate volume server")
	}

	metrics.VolumeServers.Set(float64(m.registry.Len()))
	m.logger.Info().Str("volume", url).Msg("Volume added")

	return httpd.Ok("Volume added")
}

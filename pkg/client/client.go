package client

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kalavara/kalavara/pkg/registry"
)

// RegisterVolume announces a volume server's base URL to a master's
// add-volume endpoint. It makes exactly one attempt — no retries, no
// backoff; the caller decides whether a failure matters.
func RegisterVolume(masterURL, baseURL string) error {
	endpoint := registry.Canonicalize(masterURL) + "/admin/add-volume"
	body := strings.NewReader(registry.Canonicalize(baseURL))

	resp, err := http.Post(endpoint, "text/plain", body)
	if err != nil {
		return fmt.Errorf("failed to reach master: %w", err)
	}
	defer resp.Body.Close()

	msg, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("master replied %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	return nil
}

package httpd

import (
	"fmt"
	"net"
	"net/http"
	"runtime"

	"github.com/kalavara/kalavara/pkg/log"
)

// ListenAndServe binds the port and serves handler through a worker pool.
// It blocks for the lifetime of the process; process exit is the
// termination protocol.
func ListenAndServe(port int, handler http.Handler, workers int) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to bind port %d: %w", port, err)
	}
	return Serve(listener, handler, workers)
}

// Serve runs the worker pool on an existing listener.
func Serve(listener net.Listener, handler http.Handler, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	log.Logger.Info().
		Str("addr", listener.Addr().String()).
		Int("workers", workers).
		Msg("Listening")

	server := &http.Server{Handler: NewPool(handler, workers)}
	return server.Serve(listener)
}

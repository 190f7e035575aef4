package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVolume(t *testing.T) {
	m, _ := startMaster(t)

	// No volume servers registered yet.
	resp := send(t, following, http.MethodPut, m.URL+"/store/key1", "val1")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	vol := startVolume(t)

	resp = send(t, following, http.MethodPost, m.URL+"/admin/add-volume", vol.URL)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Volume added", readBody(t, resp))

	// Trying to insert again.
	resp = send(t, following, http.MethodPost, m.URL+"/admin/add-volume", vol.URL)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Skipping duplicate volume server", readBody(t, resp))

	resp = send(t, following, http.MethodPut, m.URL+"/store/key1", "val1")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = send(t, following, http.MethodGet, m.URL+"/store/key1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "val1", readBody(t, resp))

	resp = send(t, following, http.MethodDelete, m.URL+"/store/key1", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = send(t, following, http.MethodGet, m.URL+"/store/key1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

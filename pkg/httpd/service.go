package httpd

import (
	"io"
	"net/http"
	"strings"
)

// Service is the data-plane capability set shared by the master and the
// volume server: GET, PUT/POST and DELETE over a fixed URL prefix. The
// two implementations differ in semantics, not shape.
type Service interface {
	// Prefix returns the URL prefix keys live under.
	Prefix() string

	// Get fetches a key.
	Get(key string) Response

	// Save stores or replaces a key.
	Save(key string, body io.Reader) Response

	// Delete removes a key.
	Delete(key string) Response
}

// Key returns the key portion of a request URL: the route prefix is
// stripped and anything from the first '?' on is dropped. The remaining
// bytes pass through untouched; an empty key is a valid key.
func Key(url, prefix string) string {
	url = strings.TrimPrefix(url, prefix)
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	return url
}

// Dispatch routes a request on svc's prefix to the matching capability.
// Verbs outside the data-plane set answer 405. The caller is responsible
// for only dispatching URLs that matched the prefix.
func Dispatch(svc Service, w http.ResponseWriter, r *http.Request) {
	key := Key(r.RequestURI, svc.Prefix())

	var resp Response
	switch r.Method {
	case http.MethodGet:
		resp = svc.Get(key)
	case http.MethodPut, http.MethodPost:
		resp = svc.Save(key, r.Body)
	case http.MethodDelete:
		resp = svc.Delete(key)
	default:
		resp = NotAllowed()
	}

	resp.Render(w)
}

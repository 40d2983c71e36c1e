package http

import (
	"net/http"
	"net/http/httptest"
)

func newRequest(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}

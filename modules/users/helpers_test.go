package users_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formintake/modules/users"
	"github.com/dmitrymomot/formintake/pkg/logger"
	"github.com/dmitrymomot/formintake/pkg/metrics"
)

var png = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

type part struct {
	name        string
	contentType string
	content     []byte
}

func avatar(content []byte) part {
	return part{name: "avatar", contentType: "image/png", content: content}
}

func data(content string) part {
	return part{name: "data", content: []byte(content)}
}

func form(t *testing.T, parts ...part) (io.Reader, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, p := range parts {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, p.name))
		if p.contentType != "" {
			h.Set("Content-Type", p.contentType)
		}
		pw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = pw.Write(p.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func defaultConfig() users.Config {
	return users.Config{
		AvatarMaxSize:     8 << 20,
		DataMaxSize:       1 << 20,
		AvatarContentType: "image/*",
		DataContentType:   "*/*",
		MaxBodySize:       32 << 20,
		MaxParts:          16,
	}
}

type testServer struct {
	handler http.Handler
	reg     *prometheus.Registry
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T, cfg users.Config, views users.Views) testServer {
	t.Helper()

	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg, reg)

	svc, err := users.NewCreateUserService(cfg, logger.Discard(), m, views)
	require.NoError(t, err)

	return testServer{
		handler: users.Router(users.RouterOptions{CreateUser: svc}),
		reg:     reg,
		metrics: m,
	}
}

func (s testServer) post(t *testing.T, body io.Reader, contentType string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/create_user", body)
	req.Header.Set("Content-Type", contentType)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s testServer) scrape(t *testing.T) string {
	t.Helper()

	rec := httptest.NewRecorder()
	s.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

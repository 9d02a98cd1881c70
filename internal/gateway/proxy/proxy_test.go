package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

type seen struct {
	method      string
	path        string
	query       string
	contentType string
	body        string
}

func upstream(t *testing.T, got *seen) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*got = seen{r.Method, r.URL.Path, r.URL.RawQuery, r.Header.Get("Content-Type"), string(body)}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("X-Scene-Cache", "hit")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("<svg/>"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProxyTo(t *testing.T) {
	var got seen
	srv := upstream(t, &got)

	app := fiber.New()
	app.Post("/api/v1/render", ProxyTo(srv.URL+"/render"))

	req := httptest.NewRequest("POST", "/api/v1/render?preset=workshop", strings.NewReader("roof:\n  type: flat\n"))
	req.Header.Set("Content-Type", "application/yaml")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	if got.path != "/render" || got.query != "preset=workshop" || got.method != "POST" {
		t.Fatalf("upstream saw %+v", got)
	}
	if got.contentType != "application/yaml" || got.body != "roof:\n  type: flat\n" {
		t.Fatalf("body/content type not forwarded: %+v", got)
	}

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusAccepted || string(body) != "<svg/>" {
		t.Fatalf("response = %d %s", resp.StatusCode, body)
	}
	if resp.Header.Get("X-Scene-Cache") != "hit" {
		t.Fatalf("upstream headers not copied")
	}
}

func TestPrefix(t *testing.T) {
	var got seen
	srv := upstream(t, &got)

	app := fiber.New()
	app.Delete("/api/v1/configs/:id", Prefix(srv.URL, "/api/v1"))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/configs/abc", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got.path != "/configs/abc" || got.method != "DELETE" {
		t.Fatalf("upstream saw %+v", got)
	}
}

func TestUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	app := fiber.New()
	app.Get("/x", ProxyTo(url+"/x"))

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vborges/futura/internal/imagegen"
)

// fakeImageAPI serves the two Gemini endpoints the image client calls.
func fakeImageAPI(t *testing.T, handler http.HandlerFunc) *imagegen.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return imagegen.NewClient("key", imagegen.WithBaseURL(srv.URL), imagegen.WithHTTPClient(srv.Client()))
}

func TestImageGenerate(t *testing.T) {
	client := fakeImageAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":predict") {
			t.Errorf("path = %s, want :predict", r.URL.Path)
		}
		w.Write([]byte(`{"predictions":[{"bytesBase64Encoded":"QUJD","mimeType":"image/png"}]}`))
	})
	h := NewImageHandler(client, slog.Default())

	req := httptest.NewRequest("POST", "/api/images", strings.NewReader(`{"prompt":"uma praia ao pôr do sol"}`))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.ImageURL != "data:image/png;base64,QUJD" {
		t.Errorf("imageUrl = %q", resp.ImageURL)
	}
}

func TestImageEditWhenBaseImagePresent(t *testing.T) {
	client := fakeImageAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("path = %s, want :generateContent", r.URL.Path)
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"inlineData":{"data":"REVG","mimeType":"image/jpeg"}}]}}]}`))
	})
	h := NewImageHandler(client, slog.Default())

	req := httptest.NewRequest("POST", "/api/images",
		strings.NewReader(`{"prompt":"mais colorido","baseImage":"QUFB","mimeType":"image/jpeg"}`))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "data:image/jpeg;base64,REVG") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestImageEmptyPrompt(t *testing.T) {
	h := NewImageHandler(imagegen.NewClient("key"), slog.Default())

	req := httptest.NewRequest("POST", "/api/images", strings.NewReader(`{"prompt":"   "}`))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestImageUnconfigured(t *testing.T) {
	h := NewImageHandler(imagegen.NewClient(""), slog.Default())

	req := httptest.NewRequest("POST", "/api/images", strings.NewReader(`{"prompt":"algo"}`))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestImageNoResultMapsToBadGateway(t *testing.T) {
	client := fakeImageAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions":[]}`))
	})
	h := NewImageHandler(client, slog.Default())

	req := httptest.NewRequest("POST", "/api/images", strings.NewReader(`{"prompt":"algo"}`))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no image") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestImageAPIFailureMapsToBadGateway(t *testing.T) {
	client := fakeImageAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	})
	h := NewImageHandler(client, slog.Default())

	req := httptest.NewRequest("POST", "/api/images", strings.NewReader(`{"prompt":"algo"}`))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

package api

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/FocuswithJustin/JuniperCite/core/books"
	jerrors "github.com/FocuswithJustin/JuniperCite/core/errors"
	"github.com/FocuswithJustin/JuniperCite/core/sqlite"
	"github.com/FocuswithJustin/JuniperCite/core/verses"
	"github.com/FocuswithJustin/JuniperCite/internal/render"
	"github.com/FocuswithJustin/JuniperCite/internal/resolve"
)

type memorySource map[string][]verses.Verse

func (m memorySource) FetchChapterVerses(_ context.Context, b *books.Book, chapter int) ([]verses.Verse, error) {
	key := b.EnglishName + " " + strconv.Itoa(chapter)
	vs, ok := m[key]
	if !ok {
		return nil, jerrors.NewNotFound("chapter file", key)
	}
	return vs, nil
}

func (m memorySource) ChapterDisplayLabel(b *books.Book, chapter int) string {
	return verses.ChapterLabel(b, chapter)
}

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	src := memorySource{"John 3": {
		{Number: 16, Text: "Så älskade Gud världen."},
		{Number: 17, Text: "Gud sände inte sin son."},
	}}
	s, err := New(cfg, resolve.New(nil, src), render.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return do(t, h, httptest.NewRequest(http.MethodGet, target, nil))
}

func TestHealthAndRoot(t *testing.T) {
	h := newTestServer(t, Config{Version: "1.2.3", SourceName: "memory"}).Handler()

	w, env := get(t, h, "/health")
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("GET /health = %d %s", w.Code, w.Body.String())
	}
	var info HealthInfo
	if err := json.Unmarshal(env.Data, &info); err != nil {
		t.Fatal(err)
	}
	if info.Status != "healthy" || info.Version != "1.2.3" || info.Books != 66 || info.Source != "memory" {
		t.Errorf("health = %+v", info)
	}
	if info.SQLite != nil {
		t.Errorf("SQLite info reported for a memory source: %+v", info.SQLite)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing security headers")
	}

	if w, _ := get(t, h, "/"); w.Code != http.StatusOK {
		t.Errorf("GET / = %d", w.Code)
	}
	if w, env := get(t, h, "/nope"); w.Code != http.StatusNotFound || env.Error.Code != "NOT_FOUND" {
		t.Errorf("GET /nope = %d %+v", w.Code, env.Error)
	}
	if w, _ := do(t, h, httptest.NewRequest(http.MethodPost, "/health", nil)); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /health = %d", w.Code)
	}
}

func TestHealthSQLiteDriver(t *testing.T) {
	h := newTestServer(t, Config{SourceName: "sqlite"}).Handler()
	_, env := get(t, h, "/health")
	var info HealthInfo
	if err := json.Unmarshal(env.Data, &info); err != nil {
		t.Fatal(err)
	}
	if info.SQLite == nil || *info.SQLite != sqlite.GetInfo() {
		t.Errorf("SQLite = %+v, want %+v", info.SQLite, sqlite.GetInfo())
	}
}

func TestBooksAndLookup(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	w, env := get(t, h, "/books")
	if w.Code != http.StatusOK || env.Meta.Total != 66 {
		t.Fatalf("GET /books = %d total %d", w.Code, env.Meta.Total)
	}

	tests := []struct {
		query      string
		wantStatus int
		wantBook   string
	}{
		{"1%20Mos", http.StatusOK, "Genesis"},
		{"joh", http.StatusOK, "John"},
		{"Xyz", http.StatusNotFound, ""},
		{"", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w, env := get(t, h, "/lookup?q="+tt.query)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantBook == "" {
				return
			}
			var b books.Book
			if err := json.Unmarshal(env.Data, &b); err != nil {
				t.Fatal(err)
			}
			if b.EnglishName != tt.wantBook {
				t.Errorf("book = %q, want %q", b.EnglishName, tt.wantBook)
			}
		})
	}
}

func TestParse(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()
	w, env := get(t, h, "/parse?lang=sv&q="+url.QueryEscape("Joh 1:1-3,14; Xyz 1; 1 Mos 1:0"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var items []ParseItem
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].Error != nil || items[0].Label != "Johannesevangeliet 1:1-3,14" || len(items[0].Ref.Spans) != 2 {
		t.Errorf("item 0 = %+v", items[0])
	}
	if items[1].Error == nil || items[1].Error.Kind != "unknown-book" {
		t.Errorf("item 1 error = %+v", items[1].Error)
	}
	if items[2].Error == nil || items[2].Error.Kind != "malformed-span" {
		t.Errorf("item 2 error = %+v", items[2].Error)
	}

	if w, _ := get(t, h, "/parse?lang=xx&q=Joh+1"); w.Code != http.StatusBadRequest {
		t.Errorf("invalid lang status = %d", w.Code)
	}
}

func TestMerge(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()
	_, env := get(t, h, "/merge?q="+url.QueryEscape("Joh 3:5-7,1-3,4; Ps 23"))
	var items []MergeItem
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	m := items[0].Merged
	if items[0].Book != "John" || items[0].Chapter != 3 || m == nil || m.Whole || len(m.Ranges) != 1 || m.Ranges[0].Start != 1 || m.Ranges[0].End != 7 {
		t.Errorf("item 0 = %+v merged %+v", items[0], m)
	}
	if items[1].Merged == nil || !items[1].Merged.Whole {
		t.Errorf("item 1 = %+v", items[1])
	}
}

func TestResolvePost(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"json", "application/json", `{"input":"Joh 3:16; Rom 8:1; Joh 3:20"}`},
		{"plain", "text/plain; charset=utf-8", "Joh 3:16; Rom 8:1; Joh 3:20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/resolve", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w, env := do(t, h, req)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", w.Code, w.Body.String())
			}
			var items []ResolveItem
			if err := json.Unmarshal(env.Data, &items); err != nil {
				t.Fatal(err)
			}
			if len(items) != 3 {
				t.Fatalf("got %d items", len(items))
			}
			if items[0].Label != "Johannesevangeliet 3" || len(items[0].Verses) != 1 || items[0].Verses[0].Number != 16 {
				t.Errorf("item 0 = %+v", items[0])
			}
			if items[1].Error == nil || items[1].Error.Kind != "not-found" {
				t.Errorf("item 1 error = %+v", items[1].Error)
			}
			if items[2].Error != nil || len(items[2].Verses) != 0 {
				t.Errorf("item 2 = %+v, want empty selection", items[2])
			}
		})
	}
}

func TestPostErrors(t *testing.T) {
	h := newTestServer(t, Config{MaxInputBytes: 32}).Handler()

	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		wantStatus  int
		wantCode    string
	}{
		{"bad json", http.MethodPost, "application/json", "{", http.StatusBadRequest, "INVALID_JSON"},
		{"media type", http.MethodPost, "text/html", "Joh 3", http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE"},
		{"too large", http.MethodPost, "text/plain", strings.Repeat("Joh 3:16; ", 10), http.StatusRequestEntityTooLarge, "INPUT_TOO_LARGE"},
		{"method", http.MethodDelete, "", "", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/parse", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w, env := do(t, h, req)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestRender(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	_, env := get(t, h, "/render?q="+url.QueryEscape("Joh 3:16"))
	var out map[string]string
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatal(err)
	}
	want := "> [!bible]+ [[Johannesevangeliet 3|Joh 3:16 (Bibel 2000)]]\n> ^16 Så älskade Gud världen.\n"
	if out["markdown"] != want {
		t.Errorf("markdown = %q, want %q", out["markdown"], want)
	}

	w, _ := get(t, h, "/render?format=markdown&q="+url.QueryEscape("Joh 3:16"))
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/markdown") || w.Body.String() != want {
		t.Errorf("raw render = %q (%s)", w.Body.String(), w.Header().Get("Content-Type"))
	}
}

func TestETagRevalidation(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	w, _ := get(t, h, "/books")
	tag := w.Header().Get("ETag")
	if !strings.HasPrefix(tag, `"`) || len(tag) != 34 {
		t.Fatalf("ETag = %q", tag)
	}

	w2, _ := get(t, h, "/books")
	if w2.Header().Get("ETag") != tag {
		t.Error("ETag differs between identical responses")
	}

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("If-None-Match", `"other", `+tag)
	w3 := httptest.NewRecorder()
	h.ServeHTTP(w3, req)
	if w3.Code != http.StatusNotModified || w3.Body.Len() != 0 {
		t.Errorf("revalidation = %d with %d bytes", w3.Code, w3.Body.Len())
	}
}

func TestStartAndShutdown(t *testing.T) {
	s := newTestServer(t, Config{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	if err != nil {
		t.Fatal(err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewRejectsBadAuth(t *testing.T) {
	if _, err := New(Config{Auth: AuthConfig{Enabled: true, APIKey: "short"}}, resolve.New(nil, memorySource{}), render.DefaultOptions()); err == nil {
		t.Error("expected error for short API key")
	}
}

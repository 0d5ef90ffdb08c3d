package api

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/JuniperCite/core/books"
	jerrors "github.com/FocuswithJustin/JuniperCite/core/errors"
	"github.com/FocuswithJustin/JuniperCite/core/ref"
	"github.com/FocuswithJustin/JuniperCite/core/spans"
	"github.com/FocuswithJustin/JuniperCite/core/sqlite"
	"github.com/FocuswithJustin/JuniperCite/core/verses"
	"github.com/FocuswithJustin/JuniperCite/internal/server"
)

// APIResponse is the standard API response wrapper.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    *APIMeta  `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIMeta contains response metadata.
type APIMeta struct {
	Total     int    `json:"total,omitempty"`
	Timestamp string `json:"timestamp"`
}

// HealthInfo is the health check response.
type HealthInfo struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
	Books   int          `json:"books"`
	Source  string       `json:"source,omitempty"`
	SQLite  *sqlite.Info `json:"sqlite,omitempty"`
}

// ItemError describes why one citation of a list failed. Kind is a parse
// failure kind ("unknown-book", ...), "not-found" or "source-error".
type ItemError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ParseItem is one entry of a /parse response.
type ParseItem struct {
	Citation string         `json:"citation"`
	Label    string         `json:"label,omitempty"`
	Ref      *ref.Reference `json:"ref,omitempty"`
	Error    *ItemError     `json:"error,omitempty"`
}

// MergeItem is one entry of a /merge response.
type MergeItem struct {
	Citation string        `json:"citation"`
	Book     string        `json:"book,omitempty"`
	Chapter  int           `json:"chapter,omitempty"`
	Merged   *spans.Merged `json:"merged,omitempty"`
	Error    *ItemError    `json:"error,omitempty"`
}

// ResolveItem is one entry of a /resolve response.
type ResolveItem struct {
	Citation string         `json:"citation"`
	Label    string         `json:"label,omitempty"`
	Ref      *ref.Reference `json:"ref,omitempty"`
	Verses   []verses.Verse `json:"verses,omitempty"`
	Error    *ItemError     `json:"error,omitempty"`
}

// InputRequest is the POST body accepted by the list endpoints.
type InputRequest struct {
	Input string `json:"input"`
}

var inputContentTypes = []string{"application/json", "text/plain"}

func itemError(err error) *ItemError {
	if err == nil {
		return nil
	}
	var pf *ref.ParseFailure
	switch {
	case errors.As(err, &pf):
		return &ItemError{Kind: pf.Kind.String(), Message: pf.Reason}
	case errors.Is(err, jerrors.ErrNotFound):
		return &ItemError{Kind: "not-found", Message: err.Error()}
	default:
		return &ItemError{Kind: "source-error", Message: err.Error()}
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found")
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"name":    "JuniperCite API",
		"version": s.cfg.Version,
		"endpoints": []string{
			"GET /health",
			"GET /books",
			"GET /lookup?q=",
			"GET|POST /parse",
			"GET|POST /merge",
			"GET|POST /resolve",
			"GET|POST /render",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}
	info := HealthInfo{
		Status:  "healthy",
		Version: s.cfg.Version,
		Uptime:  time.Since(s.started).Round(time.Second).String(),
		Books:   s.resolver.Parser().Registry().Len(),
		Source:  s.cfg.SourceName,
	}
	if s.cfg.SourceName == "sqlite" {
		driver := sqlite.GetInfo()
		info.SQLite = &driver
	}
	respond(w, http.StatusOK, info)
}

func (s *Server) handleBooks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}
	list := s.resolver.Parser().Registry().Books()
	respondCached(w, r, list, len(list))
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		respondError(w, http.StatusBadRequest, "MISSING_QUERY", "Query parameter q is required")
		return
	}
	b, ok := s.resolver.Parser().Registry().Lookup(q)
	if !ok {
		respondError(w, http.StatusNotFound, "UNKNOWN_BOOK", "No book matches "+q)
		return
	}
	respondCached(w, r, b, 0)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	input, ok := readInput(w, r)
	if !ok {
		return
	}
	lang := books.English
	if l := r.URL.Query().Get("lang"); l != "" {
		parsed, err := books.ParseLang(l)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_LANG", err.Error())
			return
		}
		lang = parsed
	}

	outcomes := s.resolver.Parser().ParseList(input)
	items := make([]ParseItem, len(outcomes))
	for i, o := range outcomes {
		items[i] = ParseItem{Citation: o.Citation, Ref: o.Ref, Error: itemError(o.Err)}
		if o.Ref != nil {
			items[i].Label = o.Ref.Label(lang)
		}
	}
	respondCached(w, r, items, len(items))
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	input, ok := readInput(w, r)
	if !ok {
		return
	}
	outcomes := s.resolver.Parser().ParseList(input)
	items := make([]MergeItem, len(outcomes))
	for i, o := range outcomes {
		items[i] = MergeItem{Citation: o.Citation, Error: itemError(o.Err)}
		if o.Ref != nil {
			m := spans.MergeReference(o.Ref)
			items[i].Book = o.Ref.Book.OSIS()
			items[i].Chapter = o.Ref.Chapter()
			items[i].Merged = &m
		}
	}
	respondCached(w, r, items, len(items))
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	input, ok := readInput(w, r)
	if !ok {
		return
	}
	results := s.resolver.Resolve(r.Context(), input)
	items := make([]ResolveItem, len(results))
	for i, res := range results {
		items[i] = ResolveItem{Citation: res.Citation, Ref: res.Ref, Error: itemError(res.Err)}
		if res.Passage != nil {
			items[i].Label = res.Passage.Label
			items[i].Verses = res.Passage.Verses
		}
	}
	respondCached(w, r, items, len(items))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	input, ok := readInput(w, r)
	if !ok {
		return
	}
	markdown := s.render.String(s.resolver.Resolve(r.Context(), input))

	if r.URL.Query().Get("format") == "markdown" || strings.Contains(r.Header.Get("Accept"), "text/markdown") {
		body := []byte(markdown)
		tag := etag(body)
		w.Header().Set("ETag", tag)
		if notModified(r, tag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
		return
	}
	respondCached(w, r, map[string]string{"markdown": markdown}, 0)
}

// readInput returns the citation list from the q parameter of a GET or
// the body of a POST (JSON InputRequest or plain text).
func readInput(w http.ResponseWriter, r *http.Request) (string, bool) {
	switch r.Method {
	case http.MethodGet:
		return r.URL.Query().Get("q"), true
	case http.MethodPost:
	default:
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET and POST are allowed")
		return "", false
	}

	ct := r.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json"
	}
	if !server.ValidateContentType(ct, inputContentTypes) {
		respondError(w, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Use application/json or text/plain")
		return "", false
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "INPUT_TOO_LARGE", "Request body too large")
			return "", false
		}
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Failed to read request body")
		return "", false
	}
	if server.ValidateContentType(ct, []string{"text/plain"}) {
		return string(body), true
	}
	var req InputRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return "", false
	}
	return req.Input, true
}

// etag returns a strong validator derived from the BLAKE3 digest of body.
func etag(body []byte) string {
	sum := blake3.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func notModified(r *http.Request, tag string) bool {
	for _, candidate := range strings.Split(r.Header.Get("If-None-Match"), ",") {
		if c := strings.TrimSpace(candidate); c == tag || c == "*" {
			return true
		}
	}
	return false
}

// respondCached writes data like respond and sets an ETag computed over
// the data alone, so the timestamp in Meta does not defeat revalidation.
func respondCached(w http.ResponseWriter, r *http.Request, data any, total int) {
	payload, err := json.Marshal(data)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "ENCODING_FAILED", "Failed to encode response")
		return
	}
	tag := etag(payload)
	w.Header().Set("ETag", tag)
	if notModified(r, tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeResponse(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    json.RawMessage(payload),
		Meta: &APIMeta{
			Total:     total,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func respond(w http.ResponseWriter, status int, data any) {
	writeResponse(w, status, APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	writeResponse(w, status, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func writeResponse(w http.ResponseWriter, status int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

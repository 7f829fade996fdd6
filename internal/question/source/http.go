package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-engine/internal/question"
)

// maxFileBytes caps a single data file download.
const maxFileBytes = 32 << 20

// HTTPLoader fetches the mode files from a static file server or CDN,
// e.g. https://cdn.example.com/data/json/ko.json.
type HTTPLoader struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ Loader = (*HTTPLoader)(nil)

func NewHTTPLoader(baseURL string, httpClient *http.Client, logger zerolog.Logger) *HTTPLoader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPLoader{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger.With().Str("component", "http_loader").Logger(),
	}
}

// Load downloads and decodes every mode file into a catalog.
func (l *HTTPLoader) Load(ctx context.Context) (*question.Catalog, error) {
	items, themes, err := decodeAll(ctx, l.fetch)
	if err != nil {
		return nil, err
	}
	return assemble(items, themes, l.logger)
}

func (l *HTTPLoader) fetch(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", l.baseURL, name), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("data file %s non-200: %d", name, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxFileBytes))
}

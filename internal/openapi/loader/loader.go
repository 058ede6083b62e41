// Package loader reads OpenAPI documents from disk, an fs.FS or HTTP.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"go.uber.org/zap"

	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
)

// Loader implements pkgopenapi.Loader by dispatching on the source kind.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
	logger  *zap.SugaredLogger
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options. URL sources stay
// disabled unless an HTTP client or the fallback is configured.
func New(options pkgopenapi.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Loader{
		fs:      options.FileSystem,
		http:    httpClient,
		timeout: timeout,
		logger:  logger,
	}
}

// Load fetches a document from src and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgopenapi.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgopenapi.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgopenapi.SourceKindURL:
		if l.http == nil {
			return pkgopenapi.Document{}, errors.New("openapi loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("openapi loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: load %s: %w", src.Location(), err)
	}

	l.logger.Debugw("openapi document loaded", "kind", src.Kind(), "location", src.Location(), "bytes", len(data))
	return pkgopenapi.NewDocument(src, data)
}

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/kbdplus/kbd"
	"github.com/Drolfothesgnir/kbdplus/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	PingURL      = "/ping"
	ScanURL      = "/v1/scan"
	TransformURL = "/v1/transform"

	RequestIDHeader = "X-Request-ID"
)

var (
	// api errors
	ErrInvalidParams    = errors.New("invalid params")
	ErrInvalidTree      = errors.New("invalid tree")
	ErrRequestTooLarge  = errors.New("request body is too large")
	ErrTransformAborted = errors.New("transform aborted")
)

// SegmenterFactory builds the segmenter used for a single request.
type SegmenterFactory func(opts kbd.Options) kbd.Segmenter

// NewSegmenter is the default SegmenterFactory.
func NewSegmenter(opts kbd.Options) kbd.Segmenter {
	return kbd.New(opts)
}

type Service struct {
	config       util.Config
	newSegmenter SegmenterFactory
	server       *http.Server
	router       *gin.Engine
}

// Returns new service instance with provided config and segmenter factory.
// A nil factory falls back to NewSegmenter.
func NewService(config util.Config, newSegmenter SegmenterFactory) (*Service, error) {
	addr, err := config.ListenAddress()
	if err != nil {
		return nil, err
	}

	if newSegmenter == nil {
		newSegmenter = NewSegmenter
	}

	service := &Service{
		config:       config,
		newSegmenter: newSegmenter,
	}

	server := &http.Server{
		Addr: addr,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Drolfothesgnir/kbdplus/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testConfig = util.Config{
	Environment:       "test",
	HTTPServerAddress: "0.0.0.0:8080",
	MaxInputBytes:     1024,
	TransformWorkers:  2,
	ShutdownTimeout:   time.Second,
	AllowedOrigins:    []string{"http://allowed.com"},
}

func newTestService(t *testing.T, newSegmenter SegmenterFactory) *Service {
	service, err := NewService(testConfig, newSegmenter)
	require.NoError(t, err)
	return service
}

func serve(service *Service, method, url, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	request.Header.Set("Content-Type", "application/json")
	service.router.ServeHTTP(recorder, request)
	return recorder
}

func TestNewService_InvalidAddress(t *testing.T) {
	config := testConfig
	config.HTTPServerAddress = "http://localhost"

	_, err := NewService(config, nil)
	require.ErrorIs(t, err, util.ErrMissingPort)
}

func TestPing(t *testing.T) {
	service := newTestService(t, nil)

	recorder := serve(service, http.MethodGet, PingURL, "")

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "pong", recorder.Body.String())
}

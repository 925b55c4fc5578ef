package data_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/op-character-creator/internal/catalog"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
	"github.com/KirkDiggler/op-character-creator/internal/handlers/data"
	"github.com/KirkDiggler/op-character-creator/internal/testutils"
)

type failingSource struct{}

func (failingSource) Fetch(_ context.Context) ([]byte, error) { return nil, fmt.Errorf("disk gone") }
func (failingSource) Location() string                        { return "broken" }

type HandlerTestSuite struct {
	suite.Suite
	ctx      context.Context
	parser   *catalog.Service
	registry *prometheus.Registry
	source   *catalog.BytesSource
	handler  *data.Handler
	router   *gin.Engine
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.source = &catalog.BytesSource{Data: testutils.CreateTestDocumentJSON(), Name: "data.json"}
	s.registry = prometheus.NewRegistry()

	parser, err := catalog.NewService(&catalog.Config{Source: s.source})
	s.Require().NoError(err)
	s.parser = parser

	s.handler = s.newHandler(s.source)
	s.router = s.handler.Router()
}

func (s *HandlerTestSuite) newHandler(src catalog.Source) *data.Handler {
	h, err := data.NewHandler(&data.HandlerConfig{
		Source:   src,
		Parser:   s.parser,
		Registry: s.registry,
	})
	s.Require().NoError(err)
	return h
}

func (s *HandlerTestSuite) get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	h, err := data.NewHandler(&data.HandlerConfig{})
	s.Error(err)
	s.Nil(h)
	s.True(errors.IsInvalidArgument(err))

	_, err = data.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestNewHandlerDuplicateRegistration() {
	_, err := data.NewHandler(&data.HandlerConfig{
		Source:   s.source,
		Parser:   s.parser,
		Registry: s.registry,
	})
	s.Error(err)
}

func (s *HandlerTestSuite) TestServesDocument() {
	s.Require().NoError(s.handler.Load(s.ctx))

	w := s.get(s.router, data.DocumentPath)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "application/json")
	s.JSONEq(string(testutils.CreateTestDocumentJSON()), w.Body.String())
}

func (s *HandlerTestSuite) TestDocumentNotLoaded() {
	w := s.get(s.router, data.DocumentPath)
	s.Equal(http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(string(errors.CodeUnavailable), body["code"])

	w = s.get(s.router, data.HealthPath)
	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *HandlerTestSuite) TestHealth() {
	s.Require().NoError(s.handler.Load(s.ctx))

	w := s.get(s.router, data.HealthPath)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok","data_schema_version":"0.0.1"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestUnknownRoute() {
	w := s.get(s.router, "/data.json")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestLoadRejectsMalformedDocument() {
	s.Require().NoError(s.handler.Load(s.ctx))

	s.source.Data = []byte(`{"traits": [`)
	err := s.handler.Load(s.ctx)
	s.Error(err)
	s.True(errors.IsDataLoss(err))
	s.Equal("data.json", errors.GetMeta(err)["source"])

	w := s.get(s.router, data.DocumentPath)
	s.Equal(http.StatusOK, w.Code, "previous document still served")
	s.JSONEq(string(testutils.CreateTestDocumentJSON()), w.Body.String())
}

func (s *HandlerTestSuite) TestLoadSourceFailure() {
	h, err := data.NewHandler(&data.HandlerConfig{Source: failingSource{}, Parser: s.parser})
	s.Require().NoError(err)

	err = h.Load(s.ctx)
	s.True(errors.IsUnavailable(err))
	s.Equal("broken", errors.GetMeta(err)["source"])
}

func (s *HandlerTestSuite) TestMetrics() {
	s.Require().NoError(s.handler.Load(s.ctx))

	s.get(s.router, data.DocumentPath)
	s.get(s.router, data.DocumentPath)
	s.get(s.router, "/missing")

	families, err := s.registry.Gather()
	s.Require().NoError(err)

	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "creator_data_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			counts[labels["route"]+" "+labels["status"]] = m.GetCounter().GetValue()
		}
	}
	s.Equal(float64(2), counts[data.DocumentPath+" 200"])
	s.Equal(float64(1), counts["unknown 404"])

	w := s.get(s.router, data.MetricsPath)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "creator_data_requests_total")
}

func (s *HandlerTestSuite) TestCatalogLoadsOverHTTP() {
	s.Require().NoError(s.handler.Load(s.ctx))
	server := httptest.NewServer(s.router)
	defer server.Close()

	svc, err := catalog.NewService(&catalog.Config{Source: catalog.NewSource(server.URL + data.DocumentPath)})
	s.Require().NoError(err)

	_, err = svc.Load(s.ctx)
	s.Require().NoError(err)
	s.Len(svc.Traits(), 5)
	s.Equal(testutils.RaspValue, svc.TraitValue("voice_trait", testutils.RaspValueID).Value)
}

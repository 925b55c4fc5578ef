package catalog_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/op-character-creator/internal/catalog"
	"github.com/KirkDiggler/op-character-creator/internal/entities"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
	"github.com/KirkDiggler/op-character-creator/internal/testutils"
)

type stubSource struct {
	data []byte
	err  error
}

func (s *stubSource) Fetch(_ context.Context) ([]byte, error) { return s.data, s.err }
func (s *stubSource) Location() string                        { return "stub" }

type CatalogTestSuite struct {
	suite.Suite
	ctx    context.Context
	roller *testutils.SequenceRoller
	source *stubSource
	svc    *catalog.Service
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = &testutils.SequenceRoller{}
	s.source = &stubSource{data: testutils.CreateTestDocumentJSON()}

	svc, err := catalog.NewService(&catalog.Config{Source: s.source, Roller: s.roller})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *CatalogTestSuite) TestNewServiceRequiresSource() {
	svc, err := catalog.NewService(&catalog.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Nil(svc)

	svc, err = catalog.NewService(nil)
	s.Error(err)
	s.Nil(svc)
}

func (s *CatalogTestSuite) TestUnloadedCatalog() {
	s.False(s.svc.IsLoaded())
	s.Empty(s.svc.Traits())
	s.Empty(s.svc.TraitValues(entities.TraitFacial))

	value, err := s.svc.RandomTraitValue(entities.TraitFacial)
	s.NoError(err)
	s.Nil(value)
}

func (s *CatalogTestSuite) TestLoad() {
	doc, err := s.svc.Load(s.ctx)
	s.Require().NoError(err)

	s.True(s.svc.IsLoaded())
	s.Equal(testutils.SchemaVersion, doc.Meta.DataSchemaVersion)
	s.Equal(testutils.SchemaVersion, s.svc.Meta().DataSchemaVersion)
	s.Equal([]string{
		entities.TraitFacial,
		entities.TraitBody,
		entities.TraitPersonality,
		entities.TraitVoice,
		entities.TraitWeapon,
	}, s.svc.TraitCodes())
	s.Len(s.svc.Traits(), 5)
}

func (s *CatalogTestSuite) TestTraitValuesGroupedByCode() {
	_, err := s.svc.Load(s.ctx)
	s.Require().NoError(err)

	facial := s.svc.TraitValues(entities.TraitFacial)
	s.Require().Len(facial, 2)
	s.Equal(testutils.ScarValue, facial[0].Value)
	s.Equal("braided red hair", facial[1].Value)

	s.Len(s.svc.TraitValues(entities.TraitVoice), 1)
	s.Empty(s.svc.TraitValues("tattoo_trait"))
}

func (s *CatalogTestSuite) TestLookups() {
	_, err := s.svc.Load(s.ctx)
	s.Require().NoError(err)

	s.Equal("Weaponry", s.svc.Trait(entities.TraitWeapon).Title)
	s.Nil(s.svc.Trait("tattoo_trait"))

	s.Equal(&entities.TraitValue{ID: testutils.ScarValueID, TraitCode: entities.TraitFacial, Value: testutils.ScarValue},
		s.svc.TraitValue(entities.TraitFacial, testutils.ScarValueID))
	s.Nil(s.svc.TraitValue(entities.TraitFacial, testutils.RaspValueID))
}

func (s *CatalogTestSuite) TestRandomTraitValue() {
	_, err := s.svc.Load(s.ctx)
	s.Require().NoError(err)

	s.roller.Results = []int{2, 1}

	value, err := s.svc.RandomTraitValue(entities.TraitFacial)
	s.Require().NoError(err)
	s.Equal("braided red hair", value.Value)

	value, err = s.svc.RandomTraitValue(entities.TraitFacial)
	s.Require().NoError(err)
	s.Equal(testutils.ScarValue, value.Value)

	s.Equal([]int{2, 2}, s.roller.Sizes, "rolls a die with one face per value")
}

func (s *CatalogTestSuite) TestRandomTraitValueUnknownCode() {
	_, err := s.svc.Load(s.ctx)
	s.Require().NoError(err)

	value, err := s.svc.RandomTraitValue("tattoo_trait")
	s.NoError(err)
	s.Nil(value)
	s.Empty(s.roller.Sizes)
}

func (s *CatalogTestSuite) TestRandomTraitValueRollerError() {
	_, err := s.svc.Load(s.ctx)
	s.Require().NoError(err)

	s.roller.Err = fmt.Errorf("dice jammed")
	value, err := s.svc.RandomTraitValue(entities.TraitFacial)
	s.Error(err)
	s.Nil(value)
}

func (s *CatalogTestSuite) TestRandomTraitValueWithDefaultRoller() {
	svc, err := catalog.NewService(&catalog.Config{Source: s.source})
	s.Require().NoError(err)
	_, err = svc.Load(s.ctx)
	s.Require().NoError(err)

	for i := 0; i < 50; i++ {
		value, err := svc.RandomTraitValue(entities.TraitWeapon)
		s.Require().NoError(err)
		s.Equal(entities.TraitWeapon, value.TraitCode)
	}
}

func (s *CatalogTestSuite) TestLoadFetchFailure() {
	s.source.err = fmt.Errorf("connection refused")

	doc, err := s.svc.Load(s.ctx)
	s.Error(err)
	s.Nil(doc)
	s.True(errors.IsLoadError(err))
	s.True(errors.IsUnavailable(err))
	s.Equal("failed to load character data", errors.GetMessage(err))
	s.False(s.svc.IsLoaded())
}

func (s *CatalogTestSuite) TestLoadParseFailure() {
	s.source.data = []byte(`{"traits": [`)

	doc, err := s.svc.Load(s.ctx)
	s.Error(err)
	s.Nil(doc)
	s.True(errors.IsLoadError(err))
	s.True(errors.IsDataLoss(err))
	s.False(s.svc.IsLoaded())
}

func (s *CatalogTestSuite) TestFailedReloadKeepsPreviousData() {
	_, err := s.svc.Load(s.ctx)
	s.Require().NoError(err)

	s.source.err = fmt.Errorf("offline")
	_, err = s.svc.Load(s.ctx)
	s.Error(err)

	s.True(s.svc.IsLoaded())
	s.Len(s.svc.Traits(), 5)
}

type SourceTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestSourceSuite(t *testing.T) {
	suite.Run(t, new(SourceTestSuite))
}

func (s *SourceTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *SourceTestSuite) TestNewSource() {
	s.IsType(&catalog.HTTPSource{}, catalog.NewSource("http://localhost:3000/op-character-creator/data.json"))
	s.IsType(&catalog.HTTPSource{}, catalog.NewSource("https://example.com/data.json"))
	s.IsType(&catalog.FileSource{}, catalog.NewSource("out/data.json"))
	s.Equal("out/data.json", catalog.NewSource("out/data.json").Location())
}

func (s *SourceTestSuite) TestFileSource() {
	path := filepath.Join(s.T().TempDir(), "data.json")
	s.Require().NoError(os.WriteFile(path, testutils.CreateTestDocumentJSON(), 0o600))

	data, err := (&catalog.FileSource{Path: path}).Fetch(s.ctx)
	s.Require().NoError(err)
	s.Equal(testutils.CreateTestDocumentJSON(), data)

	_, err = (&catalog.FileSource{Path: filepath.Join(s.T().TempDir(), "missing.json")}).Fetch(s.ctx)
	s.Error(err)
}

func (s *SourceTestSuite) TestHTTPSource() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/op-character-creator/data.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(testutils.CreateTestDocumentJSON())
	}))
	defer server.Close()

	s.Run("ok", func() {
		data, err := catalog.NewSource(server.URL + "/op-character-creator/data.json").Fetch(s.ctx)
		s.Require().NoError(err)
		s.Equal(testutils.CreateTestDocumentJSON(), data)
	})

	s.Run("non-2xx is a failure", func() {
		_, err := catalog.NewSource(server.URL + "/missing.json").Fetch(s.ctx)
		s.Error(err)
		s.Contains(err.Error(), "404")
	})

	s.Run("canceled context", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		_, err := catalog.NewSource(server.URL + "/op-character-creator/data.json").Fetch(ctx)
		s.Error(err)
	})
}

func (s *SourceTestSuite) TestLoadThroughHTTP() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc, err := catalog.NewService(&catalog.Config{Source: catalog.NewSource(server.URL)})
	s.Require().NoError(err)

	_, err = svc.Load(s.ctx)
	s.True(errors.IsUnavailable(err))
	s.Equal(server.URL, errors.GetMeta(err)["source"])
}

func (s *SourceTestSuite) TestBytesSource() {
	src := &catalog.BytesSource{Data: testutils.CreateTestDocumentJSON()}
	s.Equal("memory", src.Location())

	svc, err := catalog.NewService(&catalog.Config{Source: src})
	s.Require().NoError(err)

	doc, err := svc.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(testutils.SchemaVersion, doc.Meta.DataSchemaVersion)
	s.Equal("data.json", (&catalog.BytesSource{Name: "data.json"}).Location())
}

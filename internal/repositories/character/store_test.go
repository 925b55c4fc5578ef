package character_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/op-character-creator/internal/entities"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
	"github.com/KirkDiggler/op-character-creator/internal/kvstore"
	kvstoremock "github.com/KirkDiggler/op-character-creator/internal/kvstore/mock"
	"github.com/KirkDiggler/op-character-creator/internal/repositories/character"
)

type StoreRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *kvstore.MemoryStore
	repo  character.Repository
	char  *entities.Character
}

func TestStoreRepositorySuite(t *testing.T) {
	suite.Run(t, new(StoreRepositoryTestSuite))
}

func (s *StoreRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = kvstore.NewMemoryStore()

	repo, err := character.NewRepository(&character.Config{Store: s.store})
	s.Require().NoError(err)
	s.repo = repo

	s.char = entities.NewCharacter("char_1700000000000_abc", time.Date(2024, 5, 4, 10, 30, 0, 0, time.UTC))
	s.char.SetTrait(entities.TraitFacial, &entities.TraitValue{ID: 1, TraitCode: entities.TraitFacial, Value: "a scar across one eye"})
	s.char.SetTrait(entities.TraitVoice, &entities.TraitValue{ID: 4, TraitCode: entities.TraitVoice, Value: "a gravelly rasp"})
}

func (s *StoreRepositoryTestSuite) TestNewRepositoryRequiresStore() {
	repo, err := character.NewRepository(&character.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Nil(repo)

	repo, err = character.NewRepository(nil)
	s.Error(err)
	s.Nil(repo)
}

func (s *StoreRepositoryTestSuite) TestSaveThenLoadRoundTrips() {
	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: s.char})
	s.Require().NoError(err)

	output, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(output.Character)

	s.Equal(s.char.ID, output.Character.ID)
	s.Equal(s.char.Traits, output.Character.Traits)
	s.True(s.char.CreatedAt.Equal(output.Character.CreatedAt))
}

func (s *StoreRepositoryTestSuite) TestStoredRecordShape() {
	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: s.char})
	s.Require().NoError(err)

	raw, err := s.store.Get(s.ctx, character.StorageKey)
	s.Require().NoError(err)

	var record map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal([]byte(raw), &record))
	s.Len(record, 3)
	s.Contains(record, "id")
	s.Contains(record, "traits")
	s.Contains(record, "createdAt")
	s.JSONEq(`{"id":4,"trait_code":"voice_trait","value":"a gravelly rasp"}`,
		string(mustField(s, record["traits"], entities.TraitVoice)))
}

func (s *StoreRepositoryTestSuite) TestSaveReplacesPreviousCharacter() {
	other := entities.NewCharacter("char_2", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: s.char})
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, character.SaveInput{Character: other})
	s.Require().NoError(err)

	output, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal("char_2", output.Character.ID)
	s.NotNil(output.Character.Traits)
}

func (s *StoreRepositoryTestSuite) TestSaveNilCharacter() {
	output, err := s.repo.Save(s.ctx, character.SaveInput{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Nil(output)
}

func (s *StoreRepositoryTestSuite) TestSaveCharacterWithoutID() {
	output, err := s.repo.Save(s.ctx, character.SaveInput{Character: entities.NewCharacter("", time.Time{})})
	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.ErrorIs(err, core.ErrEmptyID)

	_, err = s.store.Get(s.ctx, character.StorageKey)
	s.True(errors.IsNotFound(err), "nothing is written")
}

func (s *StoreRepositoryTestSuite) TestLoadWithNothingStored() {
	output, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Nil(output.Character)
}

func (s *StoreRepositoryTestSuite) TestLoadWithCorruptRecord() {
	s.Require().NoError(s.store.Set(s.ctx, character.StorageKey, "{not json"))

	output, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Nil(output.Character)
}

func (s *StoreRepositoryTestSuite) TestLoadWithNullRecord() {
	s.Require().NoError(s.store.Set(s.ctx, character.StorageKey, "null"))

	output, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Nil(output.Character)
}

func (s *StoreRepositoryTestSuite) TestLoadWithUnidentifiedRecord() {
	testCases := []struct {
		name string
		raw  string
	}{
		{"empty object", `{}`},
		{"traits without id", `{"traits":{"facial_trait":{"id":1,"trait_code":"facial_trait","value":"a scar"}}}`},
		{"blank id", `{"id":"","traits":{},"createdAt":"2024-05-04T10:30:00Z"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Require().NoError(s.store.Set(s.ctx, character.StorageKey, tc.raw))

			output, err := s.repo.Load(s.ctx)
			s.Require().NoError(err)
			s.Nil(output.Character)
		})
	}
}

func (s *StoreRepositoryTestSuite) TestLoadWithoutTraitsField() {
	s.Require().NoError(s.store.Set(s.ctx, character.StorageKey, `{"id":"char_9"}`))

	output, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(output.Character)
	s.Equal("char_9", output.Character.ID)
	s.NotNil(output.Character.Traits)
}

func (s *StoreRepositoryTestSuite) TestClear() {
	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: s.char})
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Clear(s.ctx))

	output, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Nil(output.Character)
}

func mustField(s *StoreRepositoryTestSuite, raw json.RawMessage, key string) json.RawMessage {
	var fields map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(raw, &fields))
	return fields[key]
}

type StoreFailureTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *kvstoremock.MockStore
	repo      character.Repository
	ctx       context.Context
}

func TestStoreFailureSuite(t *testing.T) {
	suite.Run(t, new(StoreFailureTestSuite))
}

func (s *StoreFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = kvstoremock.NewMockStore(s.ctrl)
	s.ctx = context.Background()

	repo, err := character.NewRepository(&character.Config{Store: s.mockStore})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *StoreFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StoreFailureTestSuite) TestSaveStorageError() {
	s.mockStore.EXPECT().
		Set(s.ctx, character.StorageKey, gomock.Any()).
		Return(fmt.Errorf("quota exceeded"))

	output, err := s.repo.Save(s.ctx, character.SaveInput{Character: entities.NewCharacter("char_1", time.Time{})})
	s.Error(err)
	s.True(errors.IsInternal(err))
	s.Nil(output)

	var entityErr *core.EntityError
	s.Require().ErrorAs(err, &entityErr)
	s.Equal("save", entityErr.Op)
	s.Equal(entities.EntityTypeCharacter, entityErr.EntityType)
	s.Equal("char_1", entityErr.EntityID)
	s.Contains(err.Error(), "save character char_1: quota exceeded")
}

func (s *StoreFailureTestSuite) TestLoadStorageError() {
	s.mockStore.EXPECT().
		Get(s.ctx, character.StorageKey).
		Return("", fmt.Errorf("connection refused"))

	output, err := s.repo.Load(s.ctx)
	s.Error(err)
	s.Contains(err.Error(), "failed to load character")
	s.Nil(output)
}

func (s *StoreFailureTestSuite) TestClearStorageError() {
	s.mockStore.EXPECT().
		Delete(s.ctx, character.StorageKey).
		Return(fmt.Errorf("read-only"))

	s.Error(s.repo.Clear(s.ctx))
}

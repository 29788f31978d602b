package compendium_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
	"github.com/KirkDiggler/vtt-importer/internal/repositories/compendium"
)

func testSpell(sourceID int, name string) *vtt.Spell {
	return &vtt.Spell{
		Header: vtt.Header{
			ID:         "spell_" + name,
			Name:       name,
			Provenance: vtt.Provenance{SourceID: sourceID},
		},
		Level: 3,
	}
}

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo *compendium.InMemoryRepository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = compendium.NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) TestUpsertReportsCreated() {
	out, err := s.repo.Upsert(s.ctx, &compendium.UpsertInput{Entity: testSpell(100, "fireball")})
	s.Require().NoError(err)
	s.True(out.Created)

	out, err = s.repo.Upsert(s.ctx, &compendium.UpsertInput{Entity: testSpell(100, "fireball")})
	s.Require().NoError(err)
	s.False(out.Created)
}

func (s *InMemoryRepositoryTestSuite) TestUpsertReplacesExisting() {
	_, err := s.repo.Upsert(s.ctx, &compendium.UpsertInput{Entity: testSpell(100, "fireball")})
	s.Require().NoError(err)

	updated := testSpell(100, "fireball")
	updated.Level = 5
	_, err = s.repo.Upsert(s.ctx, &compendium.UpsertInput{Entity: updated})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &compendium.GetInput{Type: vtt.TypeSpell, SourceID: 100})
	s.Require().NoError(err)
	s.Equal(5, got.Entity.(*vtt.Spell).Level)
}

func (s *InMemoryRepositoryTestSuite) TestSameSourceIDAcrossTypes() {
	spell := testSpell(7, "shield")
	item := &vtt.Item{Header: vtt.Header{ID: "item_shield", Name: "Shield", Provenance: vtt.Provenance{SourceID: 7}}}

	_, err := s.repo.Upsert(s.ctx, &compendium.UpsertInput{Entity: spell})
	s.Require().NoError(err)
	out, err := s.repo.Upsert(s.ctx, &compendium.UpsertInput{Entity: item})
	s.Require().NoError(err)
	s.True(out.Created, "same source id under a different type is a distinct record")

	got, err := s.repo.Get(s.ctx, &compendium.GetInput{Type: vtt.TypeItem, SourceID: 7})
	s.Require().NoError(err)
	s.Equal("Shield", got.Entity.GetName())
}

func (s *InMemoryRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, &compendium.GetInput{Type: vtt.TypeSpell, SourceID: 404})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestListFiltersByType() {
	for _, e := range []vtt.Entity{
		testSpell(2, "bless"),
		testSpell(1, "aid"),
		&vtt.Monster{Header: vtt.Header{ID: "monster_1", Name: "Goblin", Provenance: vtt.Provenance{SourceID: 1}}},
	} {
		_, err := s.repo.Upsert(s.ctx, &compendium.UpsertInput{Entity: e})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, &compendium.ListInput{Type: vtt.TypeSpell})
	s.Require().NoError(err)
	s.Require().Len(out.Entities, 2)
	s.Equal("aid", out.Entities[0].GetName())
	s.Equal("bless", out.Entities[1].GetName())
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Upsert(s.ctx, &compendium.UpsertInput{Entity: testSpell(100, "fireball")})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, &compendium.DeleteInput{Type: vtt.TypeSpell, SourceID: 100})
	s.Require().NoError(err)
	s.True(out.Success)

	_, err = s.repo.Delete(s.ctx, &compendium.DeleteInput{Type: vtt.TypeSpell, SourceID: 100})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestInputValidation() {
	_, err := s.repo.Upsert(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Upsert(s.ctx, &compendium.UpsertInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &compendium.GetInput{SourceID: 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, &compendium.ListInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestInMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

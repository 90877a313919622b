package players

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/arena/internal/domain/player"
	arenaerr "github.com/KirkDiggler/arena/internal/errors"
	"github.com/KirkDiggler/arena/internal/repositories/players/mocks"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
	repo         Repository
	now          time.Time
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewInMemoryRepository(s.timeProvider)
	s.now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
}

func (s *InMemoryRepositoryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) createTestPlayer(id string) *player.Player {
	return &player.Player{
		ID:      id,
		OwnerID: "owner-1",
		Name:    "Morgana",
		Health:  80,
		Mana:    player.ManaPool(40),
		Level:   12,
	}
}

func (s *InMemoryRepositoryTestSuite) TestCreateAndGet() {
	ctx := context.Background()
	s.timeProvider.EXPECT().Now().Return(s.now)

	p := s.createTestPlayer("p-1")
	s.Require().NoError(s.repo.Create(ctx, p))
	s.Equal(s.now, p.CreatedAt)
	s.Equal(s.now, p.UpdatedAt)

	got, err := s.repo.Get(ctx, "p-1")
	s.Require().NoError(err)
	s.Equal(p, got)

	// stored value is isolated from the caller's copy
	*p.Mana = 0
	p.Health = 1
	got, err = s.repo.Get(ctx, "p-1")
	s.Require().NoError(err)
	s.Equal(uint32(40), *got.Mana)
	s.Equal(uint32(80), got.Health)
}

func (s *InMemoryRepositoryTestSuite) TestCreate_AlreadyExists() {
	ctx := context.Background()
	s.timeProvider.EXPECT().Now().Return(s.now)

	s.Require().NoError(s.repo.Create(ctx, s.createTestPlayer("p-1")))

	err := s.repo.Create(ctx, s.createTestPlayer("p-1"))
	s.True(arenaerr.IsAlreadyExists(err))
	s.Equal("p-1", arenaerr.GetMeta(err)["player_id"])
}

func (s *InMemoryRepositoryTestSuite) TestCreate_InputValidation() {
	ctx := context.Background()

	s.True(arenaerr.IsInvalidArgument(s.repo.Create(ctx, nil)))
	s.True(arenaerr.IsInvalidArgument(s.repo.Create(ctx, &player.Player{OwnerID: "o"})))
	s.True(arenaerr.IsInvalidArgument(s.repo.Create(ctx, &player.Player{ID: "p"})))
}

func (s *InMemoryRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(context.Background(), "missing")
	s.True(arenaerr.IsNotFound(err))

	_, err = s.repo.Get(context.Background(), "")
	s.True(arenaerr.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestUpdate() {
	ctx := context.Background()
	later := s.now.Add(time.Minute)
	gomock.InOrder(
		s.timeProvider.EXPECT().Now().Return(s.now),
		s.timeProvider.EXPECT().Now().Return(later),
	)

	p := s.createTestPlayer("p-1")
	s.Require().NoError(s.repo.Create(ctx, p))

	p.Mana = nil
	p.Health = 0
	s.Require().NoError(s.repo.Update(ctx, p))

	got, err := s.repo.Get(ctx, "p-1")
	s.Require().NoError(err)
	s.Nil(got.Mana)
	s.Equal(uint32(0), got.Health)
	s.Equal(s.now, got.CreatedAt)
	s.Equal(later, got.UpdatedAt)
}

func (s *InMemoryRepositoryTestSuite) TestUpdate_NotFound() {
	err := s.repo.Update(context.Background(), s.createTestPlayer("missing"))
	s.True(arenaerr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	s.timeProvider.EXPECT().Now().Return(s.now)

	s.Require().NoError(s.repo.Create(ctx, s.createTestPlayer("p-1")))
	s.Require().NoError(s.repo.Delete(ctx, "p-1"))

	_, err := s.repo.Get(ctx, "p-1")
	s.True(arenaerr.IsNotFound(err))

	s.True(arenaerr.IsNotFound(s.repo.Delete(ctx, "p-1")))
	s.True(arenaerr.IsInvalidArgument(s.repo.Delete(ctx, "")))
}

func (s *InMemoryRepositoryTestSuite) TestListByOwner() {
	ctx := context.Background()
	gomock.InOrder(
		s.timeProvider.EXPECT().Now().Return(s.now.Add(2*time.Minute)),
		s.timeProvider.EXPECT().Now().Return(s.now),
		s.timeProvider.EXPECT().Now().Return(s.now.Add(time.Minute)),
	)

	newer := s.createTestPlayer("p-newer")
	older := s.createTestPlayer("p-older")
	other := s.createTestPlayer("p-other")
	other.OwnerID = "owner-2"

	s.Require().NoError(s.repo.Create(ctx, newer))
	s.Require().NoError(s.repo.Create(ctx, older))
	s.Require().NoError(s.repo.Create(ctx, other))

	list, err := s.repo.ListByOwner(ctx, "owner-1")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("p-older", list[0].ID)
	s.Equal("p-newer", list[1].ID)

	empty, err := s.repo.ListByOwner(ctx, "nobody")
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)

	_, err = s.repo.ListByOwner(ctx, "")
	s.True(arenaerr.IsInvalidArgument(err))
}

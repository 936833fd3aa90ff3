package players

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	dnderr "github.com/KirkDiggler/crawl-talents/internal/errors"
	mockplayers "github.com/KirkDiggler/crawl-talents/internal/repositories/players/mock"
	"github.com/KirkDiggler/crawl-talents/internal/testutils"
	"github.com/KirkDiggler/crawl-talents/internal/uuid"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mockplayers.MockTimeProvider
	ctx          context.Context
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mockplayers.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedis(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewSequenceGenerator("player"),
		TimeProvider:  s.timeProvider,
	})
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) encode(p *player.Player, created, updated time.Time) string {
	data, err := json.Marshal(&Data{Player: p, CreatedAt: created, UpdatedAt: updated})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	p := testutils.CreateTestPlayer("p-1", "owner-1", "Sigmund")
	s.timeProvider.EXPECT().Now().Return(s.now)

	s.mock.ExpectExists("player:p-1").SetVal(0)
	s.mock.ExpectSet("player:p-1", s.encode(p, s.now, s.now), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-1:players", "p-1").SetVal(1)

	s.NoError(s.repo.Create(s.ctx, p))
}

func (s *RedisRepoTestSuite) TestCreate_AssignsID() {
	p := testutils.CreateTestPlayer("", "owner-1", "Sigmund")
	s.timeProvider.EXPECT().Now().Return(s.now)

	s.mock.ExpectExists("player:player-1").SetVal(0)
	withID := p.Clone()
	withID.ID = "player-1"
	s.mock.ExpectSet("player:player-1", s.encode(withID, s.now, s.now), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-1:players", "player-1").SetVal(1)

	s.Require().NoError(s.repo.Create(s.ctx, p))
	s.Equal("player-1", p.ID)
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	p := testutils.CreateTestPlayer("p-1", "owner-1", "Sigmund")
	s.mock.ExpectExists("player:p-1").SetVal(1)

	err := s.repo.Create(s.ctx, p)
	s.Require().Error(err)

	var coded *dnderr.Error
	s.Require().ErrorAs(err, &coded)
	s.Equal(dnderr.CodeAlreadyExists, coded.Code)
}

func (s *RedisRepoTestSuite) TestCreate_InputValidation() {
	s.Error(s.repo.Create(s.ctx, nil))
	s.True(dnderr.IsInvalidArgument(s.repo.Create(s.ctx, testutils.CreateTestPlayer("p-1", "", "Nobody"))))
}

func (s *RedisRepoTestSuite) TestGet() {
	p := testutils.CreateTestPlayer("p-1", "owner-1", "Sigmund")
	s.mock.ExpectGet("player:p-1").SetVal(s.encode(p, s.now, s.now))

	got, err := s.repo.Get(s.ctx, "p-1")
	s.Require().NoError(err)
	s.Equal(p.Name, got.Name)
	s.Equal(p.MaxHP(), got.MaxHP())
	s.NotNil(got.Durations)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("player:missing").RedisNil()

	_, err := s.repo.Get(s.ctx, "missing")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_DependencyError() {
	s.mock.ExpectGet("player:p-1").SetErr(errors.New("redis error"))

	_, err := s.repo.Get(s.ctx, "p-1")
	s.Error(err)

	_, err = s.repo.Get(s.ctx, "")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestUpdate_KeepsCreatedAt() {
	created := s.now.Add(-time.Hour)
	p := testutils.CreateTestPlayer("p-1", "owner-1", "Sigmund")
	s.mock.ExpectGet("player:p-1").SetVal(s.encode(p, created, created))

	p.HP = 5
	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectSet("player:p-1", s.encode(p, created, s.now), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-1:players", "p-1").SetVal(0)

	s.NoError(s.repo.Update(s.ctx, p))
}

func (s *RedisRepoTestSuite) TestUpdate_OwnerChange() {
	old := testutils.CreateTestPlayer("p-1", "owner-1", "Sigmund")
	s.mock.ExpectGet("player:p-1").SetVal(s.encode(old, s.now, s.now))

	moved := old.Clone()
	moved.OwnerID = "owner-2"
	s.mock.ExpectSRem("owner:owner-1:players", "p-1").SetVal(1)
	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectSet("player:p-1", s.encode(moved, s.now, s.now), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-2:players", "p-1").SetVal(1)

	s.NoError(s.repo.Update(s.ctx, moved))
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	s.mock.ExpectGet("player:p-1").RedisNil()

	err := s.repo.Update(s.ctx, testutils.CreateTestPlayer("p-1", "owner-1", "Sigmund"))
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	p := testutils.CreateTestPlayer("p-1", "owner-1", "Sigmund")
	s.mock.ExpectGet("player:p-1").SetVal(s.encode(p, s.now, s.now))
	s.mock.ExpectDel("player:p-1").SetVal(1)
	s.mock.ExpectSRem("owner:owner-1:players", "p-1").SetVal(1)

	s.NoError(s.repo.Delete(s.ctx, "p-1"))
}

func (s *RedisRepoTestSuite) TestListByOwner() {
	a := testutils.CreateTestPlayer("p-1", "owner-1", "Zed")
	b := testutils.CreateTestPlayer("p-2", "owner-1", "Abe")

	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("owner:owner-1:players").SetVal([]string{"p-1", "p-2"})
	s.mock.ExpectGet("player:p-1").SetVal(s.encode(a, s.now, s.now))
	s.mock.ExpectGet("player:p-2").SetVal(s.encode(b, s.now, s.now))

	list, err := s.repo.ListByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Abe", list[0].Name)
	s.Equal("Zed", list[1].Name)
}

func (s *RedisRepoTestSuite) TestListByOwner_MemberMissing() {
	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("owner:owner-1:players").SetVal([]string{"gone"})
	s.mock.ExpectGet("player:gone").RedisNil()

	_, err := s.repo.ListByOwner(s.ctx, "owner-1")
	s.Error(err)
}

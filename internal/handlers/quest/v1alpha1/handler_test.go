package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/handlers/quest/v1alpha1"
	"github.com/KirkDiggler/rpg-quest/internal/orchestrators/quest"
	questmock "github.com/KirkDiggler/rpg-quest/internal/orchestrators/quest/mock"
	"github.com/KirkDiggler/rpg-quest/internal/quests"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/clients"
	clientsmock "github.com/KirkDiggler/rpg-quest/internal/repositories/clients/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockQuest   *questmock.MockService
	mockClients *clientsmock.MockRepository
	handler     *v1alpha1.Handler
	ctx         context.Context

	testClientID string
	idleSnapshot *entities.Snapshot
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockQuest = questmock.NewMockService(s.ctrl)
	s.mockClients = clientsmock.NewMockRepository(s.ctrl)

	catalog, err := quests.DefaultCatalog()
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		QuestService: s.mockQuest,
		Clients:      s.mockClients,
		Catalog:      catalog,
	})
	s.Require().NoError(err)
	s.handler = handler

	s.ctx = context.Background()
	s.testClientID = "client-alice"
	s.idleSnapshot = &entities.Snapshot{SessionID: "lobby", Version: 3}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) activeSnapshot(roomType entities.RoomType) *entities.Snapshot {
	return &entities.Snapshot{
		SessionID: "lobby",
		Version:   7,
		Active:    true,
		Name:      "Catacombs",
		Room:      &entities.RoomSnapshot{Type: roomType},
	}
}

func (s *HandlerTestSuite) expectAdd() {
	s.mockClients.EXPECT().
		Add(s.ctx, &clients.AddInput{Client: &entities.Client{ID: s.testClientID, Name: "Alice"}}).
		Return(&clients.AddOutput{Client: &entities.Client{ID: s.testClientID, Name: "Alice"}}, nil)
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandler_MissingDependencies() {
	_, err := v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "QuestService")
	s.Contains(err.Error(), "Clients")
	s.Contains(err.Error(), "Catalog")
}

func (s *HandlerTestSuite) TestConnect_MissingClientID() {
	_, err := s.handler.Connect(s.ctx, &v1alpha1.ConnectRequest{})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestConnect_NoActiveQuest() {
	s.expectAdd()
	s.mockQuest.EXPECT().
		GetState(s.ctx, &quest.GetStateInput{}).
		Return(&quest.GetStateOutput{Snapshot: s.idleSnapshot}, nil)

	resp, err := s.handler.Connect(s.ctx, &v1alpha1.ConnectRequest{ClientID: s.testClientID, Name: "Alice"})
	s.Require().NoError(err)
	s.Equal(s.testClientID, resp.Client.ID)
	s.Nil(resp.Player)
	s.Equal(s.idleSnapshot, resp.Snapshot)
}

func (s *HandlerTestSuite) TestConnect_JoinsDeadDuringBattle() {
	for _, roomType := range []entities.RoomType{entities.RoomTypeBattle, entities.RoomTypeBoss} {
		s.Run(string(roomType), func() {
			active := s.activeSnapshot(roomType)
			after := s.activeSnapshot(roomType)
			after.Version++

			s.expectAdd()
			gomock.InOrder(
				s.mockQuest.EXPECT().GetState(s.ctx, &quest.GetStateInput{}).
					Return(&quest.GetStateOutput{Snapshot: active}, nil),
				s.mockQuest.EXPECT().
					JoinPlayer(s.ctx, &quest.JoinPlayerInput{ClientID: s.testClientID, AsDeadIfFighting: true}).
					Return(&quest.JoinPlayerOutput{Player: entities.PlayerSnapshot{ClientID: s.testClientID}}, nil),
				s.mockQuest.EXPECT().GetState(s.ctx, &quest.GetStateInput{}).
					Return(&quest.GetStateOutput{Snapshot: after}, nil),
			)

			resp, err := s.handler.Connect(s.ctx, &v1alpha1.ConnectRequest{ClientID: s.testClientID, Name: "Alice"})
			s.Require().NoError(err)
			s.Require().NotNil(resp.Player)
			s.False(resp.Player.Alive)
			s.Equal(after.Version, resp.Snapshot.Version)
		})
	}
}

func (s *HandlerTestSuite) TestConnect_JoinsAliveInMarket() {
	s.expectAdd()
	gomock.InOrder(
		s.mockQuest.EXPECT().GetState(s.ctx, gomock.Any()).
			Return(&quest.GetStateOutput{Snapshot: s.activeSnapshot(entities.RoomTypeMarket)}, nil),
		s.mockQuest.EXPECT().
			JoinPlayer(s.ctx, &quest.JoinPlayerInput{ClientID: s.testClientID, AsDeadIfFighting: true}).
			Return(&quest.JoinPlayerOutput{Player: entities.PlayerSnapshot{ClientID: s.testClientID, Alive: true}}, nil),
		s.mockQuest.EXPECT().GetState(s.ctx, gomock.Any()).
			Return(&quest.GetStateOutput{Snapshot: s.activeSnapshot(entities.RoomTypeMarket)}, nil),
	)

	resp, err := s.handler.Connect(s.ctx, &v1alpha1.ConnectRequest{ClientID: s.testClientID, Name: "Alice"})
	s.Require().NoError(err)
	s.Require().NotNil(resp.Player)
	s.True(resp.Player.Alive)
}

func (s *HandlerTestSuite) TestConnect_RoomChangedBeforeJoin() {
	// the party entered a battle after the first read; the quest's answer wins
	s.expectAdd()
	gomock.InOrder(
		s.mockQuest.EXPECT().GetState(s.ctx, gomock.Any()).
			Return(&quest.GetStateOutput{Snapshot: s.activeSnapshot(entities.RoomTypeMarket)}, nil),
		s.mockQuest.EXPECT().
			JoinPlayer(s.ctx, &quest.JoinPlayerInput{ClientID: s.testClientID, AsDeadIfFighting: true}).
			Return(&quest.JoinPlayerOutput{Player: entities.PlayerSnapshot{ClientID: s.testClientID}}, nil),
		s.mockQuest.EXPECT().GetState(s.ctx, gomock.Any()).
			Return(&quest.GetStateOutput{Snapshot: s.activeSnapshot(entities.RoomTypeBattle)}, nil),
	)

	resp, err := s.handler.Connect(s.ctx, &v1alpha1.ConnectRequest{ClientID: s.testClientID, Name: "Alice"})
	s.Require().NoError(err)
	s.Require().NotNil(resp.Player)
	s.False(resp.Player.Alive)
	s.Equal(entities.RoomTypeBattle, resp.Snapshot.Room.Type)
}

func (s *HandlerTestSuite) TestConnect_QuestEndedBeforeJoin() {
	s.expectAdd()
	gomock.InOrder(
		s.mockQuest.EXPECT().GetState(s.ctx, gomock.Any()).
			Return(&quest.GetStateOutput{Snapshot: s.activeSnapshot(entities.RoomTypeBattle)}, nil),
		s.mockQuest.EXPECT().JoinPlayer(s.ctx, gomock.Any()).
			Return(nil, errors.FailedPrecondition("no active quest to join")),
		s.mockQuest.EXPECT().GetState(s.ctx, gomock.Any()).
			Return(&quest.GetStateOutput{Snapshot: s.idleSnapshot}, nil),
	)

	resp, err := s.handler.Connect(s.ctx, &v1alpha1.ConnectRequest{ClientID: s.testClientID, Name: "Alice"})
	s.Require().NoError(err)
	s.Nil(resp.Player)
	s.False(resp.Snapshot.Active)
}

func (s *HandlerTestSuite) TestConnect_JoinFailure() {
	s.expectAdd()
	s.mockQuest.EXPECT().GetState(s.ctx, gomock.Any()).
		Return(&quest.GetStateOutput{Snapshot: s.activeSnapshot(entities.RoomTypeBattle)}, nil)
	s.mockQuest.EXPECT().JoinPlayer(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("quest session is disposed"))

	_, err := s.handler.Connect(s.ctx, &v1alpha1.ConnectRequest{ClientID: s.testClientID, Name: "Alice"})
	s.requireCode(err, codes.Unavailable)
}

func (s *HandlerTestSuite) TestConnect_DuplicateClient() {
	s.mockClients.EXPECT().Add(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExistsf("client %s already connected", s.testClientID))

	_, err := s.handler.Connect(s.ctx, &v1alpha1.ConnectRequest{ClientID: s.testClientID})
	s.requireCode(err, codes.AlreadyExists)
}

func (s *HandlerTestSuite) TestDisconnect_LeavesThenRemoves() {
	gomock.InOrder(
		s.mockQuest.EXPECT().
			LeavePlayer(s.ctx, &quest.LeavePlayerInput{ClientID: s.testClientID}).
			Return(&quest.LeavePlayerOutput{Removed: true, QuestStopped: true}, nil),
		s.mockClients.EXPECT().
			Remove(s.ctx, &clients.RemoveInput{ClientID: s.testClientID}).
			Return(&clients.RemoveOutput{Removed: true}, nil),
	)

	resp, err := s.handler.Disconnect(s.ctx, &v1alpha1.DisconnectRequest{ClientID: s.testClientID})
	s.Require().NoError(err)
	s.True(resp.Removed)
	s.True(resp.LeftQuest)
	s.True(resp.QuestStopped)
}

func (s *HandlerTestSuite) TestDisconnect_RegistryFailure() {
	s.mockQuest.EXPECT().LeavePlayer(s.ctx, gomock.Any()).Return(&quest.LeavePlayerOutput{}, nil)
	s.mockClients.EXPECT().Remove(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis is down"))

	_, err := s.handler.Disconnect(s.ctx, &v1alpha1.DisconnectRequest{ClientID: s.testClientID})
	s.requireCode(err, codes.Unavailable)
}

func (s *HandlerTestSuite) TestListQuests() {
	resp, err := s.handler.ListQuests(s.ctx, &v1alpha1.ListQuestsRequest{})
	s.Require().NoError(err)
	s.Equal([]v1alpha1.QuestSummary{
		{Index: 0, Name: "Catacombs"},
		{Index: 1, Name: "Endless Crypt"},
	}, resp.Quests)
}

func (s *HandlerTestSuite) TestStartQuest_OutOfRange() {
	s.mockQuest.EXPECT().
		Start(s.ctx, &quest.StartInput{QuestIndex: 9}).
		Return(nil, errors.OutOfRangef("quest index %d out of range [0, %d)", 9, 2).WithMeta("quest_index", 9))

	_, err := s.handler.StartQuest(s.ctx, &v1alpha1.StartQuestRequest{QuestIndex: 9})
	s.requireCode(err, codes.OutOfRange)

	converted := errors.FromGRPCError(err)
	s.Equal("9", errors.GetMeta(converted)["quest_index"])
}

func (s *HandlerTestSuite) TestStopQuest() {
	s.mockQuest.EXPECT().Stop(s.ctx, &quest.StopInput{}).Return(&quest.StopOutput{WasActive: true}, nil)

	resp, err := s.handler.StopQuest(s.ctx, &v1alpha1.StopQuestRequest{})
	s.Require().NoError(err)
	s.True(resp.WasActive)
}

func (s *HandlerTestSuite) TestVoteAdvance() {
	s.mockQuest.EXPECT().
		VoteAdvance(s.ctx, &quest.VoteAdvanceInput{ClientID: s.testClientID}).
		Return(&quest.VoteAdvanceOutput{Advanced: true, RoomIndex: 2}, nil)

	resp, err := s.handler.VoteAdvance(s.ctx, &v1alpha1.VoteAdvanceRequest{ClientID: s.testClientID})
	s.Require().NoError(err)
	s.True(resp.Advanced)
	s.Equal(2, resp.RoomIndex)
}

func (s *HandlerTestSuite) TestEndTurn_NotYourTurn() {
	s.mockQuest.EXPECT().
		EndTurn(s.ctx, &quest.EndTurnInput{ClientID: s.testClientID}).
		Return(nil, errors.FailedPreconditionf("it is not %s's turn", s.testClientID))

	_, err := s.handler.EndTurn(s.ctx, &v1alpha1.EndTurnRequest{ClientID: s.testClientID})
	s.requireCode(err, codes.FailedPrecondition)
}

func (s *HandlerTestSuite) TestAttack() {
	action := &entities.PlayerAction{PlayerID: s.testClientID, EnemyID: "enemy_2", Roll: 6, Damage: 6, EnemyKilled: true}
	s.mockQuest.EXPECT().
		Attack(s.ctx, &quest.AttackInput{ClientID: s.testClientID, EnemyID: "enemy_2"}).
		Return(&quest.AttackOutput{Action: action, RoomCleared: true}, nil)

	resp, err := s.handler.Attack(s.ctx, &v1alpha1.AttackRequest{ClientID: s.testClientID, EnemyID: "enemy_2"})
	s.Require().NoError(err)
	s.Equal(action, resp.Action)
	s.True(resp.RoomCleared)
	s.Nil(resp.CurrentTurn)
}

func (s *HandlerTestSuite) TestAttack_MissingEnemy() {
	_, err := s.handler.Attack(s.ctx, &v1alpha1.AttackRequest{ClientID: s.testClientID})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestReportDeath() {
	s.mockQuest.EXPECT().
		ReportDeath(s.ctx, &quest.ReportDeathInput{ClientID: s.testClientID}).
		Return(&quest.ReportDeathOutput{Killed: true, QuestStopped: true}, nil)

	resp, err := s.handler.ReportDeath(s.ctx, &v1alpha1.ReportDeathRequest{ClientID: s.testClientID})
	s.Require().NoError(err)
	s.True(resp.Killed)
	s.True(resp.QuestStopped)
}

func (s *HandlerTestSuite) TestGetQuestState_Disposed() {
	s.mockQuest.EXPECT().GetState(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("quest session is disposed"))

	_, err := s.handler.GetQuestState(s.ctx, &v1alpha1.GetQuestStateRequest{})
	s.requireCode(err, codes.Unavailable)
}

package quest_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-quest/internal/broadcast"
	broadcastmock "github.com/KirkDiggler/rpg-quest/internal/broadcast/mock"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/orchestrators/quest"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-quest/internal/quests"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/clients"
	clientsmock "github.com/KirkDiggler/rpg-quest/internal/repositories/clients/mock"
)

type CollaboratorsTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockClients     *clientsmock.MockRepository
	mockBroadcaster *broadcastmock.MockBroadcaster
	mockChat        *broadcastmock.MockChatSink
	mockReplicator  *broadcastmock.MockReplicator
	svc             quest.Service
}

func TestCollaboratorsSuite(t *testing.T) {
	suite.Run(t, new(CollaboratorsTestSuite))
}

func (s *CollaboratorsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClients = clientsmock.NewMockRepository(s.ctrl)
	s.mockBroadcaster = broadcastmock.NewMockBroadcaster(s.ctrl)
	s.mockChat = broadcastmock.NewMockChatSink(s.ctrl)
	s.mockReplicator = broadcastmock.NewMockReplicator(s.ctrl)

	catalog, err := quests.DefaultCatalog()
	s.Require().NoError(err)
	gen, err := quests.NewGenerator(&quests.GeneratorConfig{
		Catalog: catalog,
		IDGen:   idgen.NewSequential("enemy"),
		Roller:  dice.DefaultRoller,
	})
	s.Require().NoError(err)

	s.svc, err = quest.NewOrchestrator(&quest.Config{
		Catalog:     catalog,
		Generator:   gen,
		Clients:     s.mockClients,
		Broadcaster: s.mockBroadcaster,
		Chat:        s.mockChat,
		Replicator:  s.mockReplicator,
		EventBus:    events.NewBus(),
		Clock:       clock.NewFake(time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)),
		Roller:      dice.DefaultRoller,
		SessionID:   "lobby",
	})
	s.Require().NoError(err)
}

func (s *CollaboratorsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CollaboratorsTestSuite) TestStartSurvivesDeliveryFailures() {
	ctx := context.Background()

	s.mockClients.EXPECT().
		List(ctx, &clients.ListInput{}).
		Return(&clients.ListOutput{Clients: []*entities.Client{{ID: "alice"}, {ID: "alice"}}}, nil)
	s.mockBroadcaster.EXPECT().
		Broadcast(ctx, broadcast.EventQuestStart, gomock.Any(), broadcast.Options{AfterNextSnapshot: true}).
		Return(errors.Unavailable("redis down"))
	s.mockReplicator.EXPECT().
		PublishSnapshot(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, snap *entities.Snapshot) error {
			s.True(snap.Active)
			s.Equal(uint64(1), snap.Version)
			return errors.Unavailable("redis down")
		})

	out, err := s.svc.Start(ctx, &quest.StartInput{QuestIndex: 0})
	s.Require().NoError(err)
	s.True(out.Snapshot.Active)
	s.Len(out.Snapshot.Players, 1, "a client listed twice joins once")
}

func (s *CollaboratorsTestSuite) TestStartFailsWhenRegistryFails() {
	ctx := context.Background()

	s.mockClients.EXPECT().
		List(ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.svc.Start(ctx, &quest.StartInput{QuestIndex: 0})
	s.True(errors.IsUnavailable(err))

	state, err := s.svc.GetState(ctx, &quest.GetStateInput{})
	s.Require().NoError(err)
	s.False(state.Snapshot.Active)
}

func (s *CollaboratorsTestSuite) TestPartyWipeChatFailureStillStops() {
	ctx := context.Background()

	s.mockClients.EXPECT().
		List(ctx, gomock.Any()).
		Return(&clients.ListOutput{Clients: []*entities.Client{{ID: "alice"}}}, nil)
	s.mockBroadcaster.EXPECT().Broadcast(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockReplicator.EXPECT().PublishSnapshot(ctx, gomock.Any()).Return(nil).Times(2)
	s.mockChat.EXPECT().
		SendChat(ctx, broadcast.ServerChat{Tag: quest.ChatTagGame, Text: "All adventurers have died. The quest is over."}).
		Return(errors.Unavailable("redis down"))

	_, err := s.svc.Start(ctx, &quest.StartInput{QuestIndex: 0})
	s.Require().NoError(err)

	out, err := s.svc.ReportDeath(ctx, &quest.ReportDeathInput{ClientID: "alice"})
	s.Require().NoError(err)
	s.True(out.QuestStopped)
}

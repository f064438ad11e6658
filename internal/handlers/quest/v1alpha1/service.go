package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "quest.v1alpha1.QuestService"

// Full method names, usable with interceptors and health checks
const (
	QuestServiceConnectFullMethod       = "/" + ServiceName + "/Connect"
	QuestServiceDisconnectFullMethod    = "/" + ServiceName + "/Disconnect"
	QuestServiceListQuestsFullMethod    = "/" + ServiceName + "/ListQuests"
	QuestServiceStartQuestFullMethod    = "/" + ServiceName + "/StartQuest"
	QuestServiceStopQuestFullMethod     = "/" + ServiceName + "/StopQuest"
	QuestServiceVoteAdvanceFullMethod   = "/" + ServiceName + "/VoteAdvance"
	QuestServiceEndTurnFullMethod       = "/" + ServiceName + "/EndTurn"
	QuestServiceAttackFullMethod        = "/" + ServiceName + "/Attack"
	QuestServiceReportDeathFullMethod   = "/" + ServiceName + "/ReportDeath"
	QuestServiceGetQuestStateFullMethod = "/" + ServiceName + "/GetQuestState"
)

// QuestServiceServer is the server API for the quest service
type QuestServiceServer interface {
	Connect(context.Context, *ConnectRequest) (*ConnectResponse, error)
	Disconnect(context.Context, *DisconnectRequest) (*DisconnectResponse, error)
	ListQuests(context.Context, *ListQuestsRequest) (*ListQuestsResponse, error)
	StartQuest(context.Context, *StartQuestRequest) (*StartQuestResponse, error)
	StopQuest(context.Context, *StopQuestRequest) (*StopQuestResponse, error)
	VoteAdvance(context.Context, *VoteAdvanceRequest) (*VoteAdvanceResponse, error)
	EndTurn(context.Context, *EndTurnRequest) (*EndTurnResponse, error)
	Attack(context.Context, *AttackRequest) (*AttackResponse, error)
	ReportDeath(context.Context, *ReportDeathRequest) (*ReportDeathResponse, error)
	GetQuestState(context.Context, *GetQuestStateRequest) (*GetQuestStateResponse, error)
}

// UnimplementedQuestServiceServer can be embedded for forward compatibility
type UnimplementedQuestServiceServer struct{}

func (UnimplementedQuestServiceServer) Connect(context.Context, *ConnectRequest) (*ConnectResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Connect not implemented")
}

func (UnimplementedQuestServiceServer) Disconnect(context.Context, *DisconnectRequest) (*DisconnectResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Disconnect not implemented")
}

func (UnimplementedQuestServiceServer) ListQuests(context.Context, *ListQuestsRequest) (*ListQuestsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListQuests not implemented")
}

func (UnimplementedQuestServiceServer) StartQuest(context.Context, *StartQuestRequest) (*StartQuestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartQuest not implemented")
}

func (UnimplementedQuestServiceServer) StopQuest(context.Context, *StopQuestRequest) (*StopQuestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StopQuest not implemented")
}

func (UnimplementedQuestServiceServer) VoteAdvance(context.Context, *VoteAdvanceRequest) (*VoteAdvanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method VoteAdvance not implemented")
}

func (UnimplementedQuestServiceServer) EndTurn(context.Context, *EndTurnRequest) (*EndTurnResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EndTurn not implemented")
}

func (UnimplementedQuestServiceServer) Attack(context.Context, *AttackRequest) (*AttackResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Attack not implemented")
}

func (UnimplementedQuestServiceServer) ReportDeath(context.Context, *ReportDeathRequest) (*ReportDeathResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReportDeath not implemented")
}

func (UnimplementedQuestServiceServer) GetQuestState(context.Context, *GetQuestStateRequest) (*GetQuestStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetQuestState not implemented")
}

// unary adapts a typed server method to a grpc.MethodHandler
func unary[Req, Resp any](
	fullMethod string,
	call func(QuestServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(QuestServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(QuestServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// QuestServiceDesc describes the quest service for grpc.Server
var QuestServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*QuestServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Connect", Handler: unary(QuestServiceConnectFullMethod, QuestServiceServer.Connect)},
		{MethodName: "Disconnect", Handler: unary(QuestServiceDisconnectFullMethod, QuestServiceServer.Disconnect)},
		{MethodName: "ListQuests", Handler: unary(QuestServiceListQuestsFullMethod, QuestServiceServer.ListQuests)},
		{MethodName: "StartQuest", Handler: unary(QuestServiceStartQuestFullMethod, QuestServiceServer.StartQuest)},
		{MethodName: "StopQuest", Handler: unary(QuestServiceStopQuestFullMethod, QuestServiceServer.StopQuest)},
		{MethodName: "VoteAdvance", Handler: unary(QuestServiceVoteAdvanceFullMethod, QuestServiceServer.VoteAdvance)},
		{MethodName: "EndTurn", Handler: unary(QuestServiceEndTurnFullMethod, QuestServiceServer.EndTurn)},
		{MethodName: "Attack", Handler: unary(QuestServiceAttackFullMethod, QuestServiceServer.Attack)},
		{MethodName: "ReportDeath", Handler: unary(QuestServiceReportDeathFullMethod, QuestServiceServer.ReportDeath)},
		{MethodName: "GetQuestState", Handler: unary(QuestServiceGetQuestStateFullMethod, QuestServiceServer.GetQuestState)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "quest/v1alpha1/quest.json",
}

// RegisterQuestServiceServer registers srv with s
func RegisterQuestServiceServer(s grpc.ServiceRegistrar, srv QuestServiceServer) {
	s.RegisterService(&QuestServiceDesc, srv)
}

// QuestServiceClient is the client API for the quest service
type QuestServiceClient interface {
	Connect(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*ConnectResponse, error)
	Disconnect(ctx context.Context, in *DisconnectRequest, opts ...grpc.CallOption) (*DisconnectResponse, error)
	ListQuests(ctx context.Context, in *ListQuestsRequest, opts ...grpc.CallOption) (*ListQuestsResponse, error)
	StartQuest(ctx context.Context, in *StartQuestRequest, opts ...grpc.CallOption) (*StartQuestResponse, error)
	StopQuest(ctx context.Context, in *StopQuestRequest, opts ...grpc.CallOption) (*StopQuestResponse, error)
	VoteAdvance(ctx context.Context, in *VoteAdvanceRequest, opts ...grpc.CallOption) (*VoteAdvanceResponse, error)
	EndTurn(ctx context.Context, in *EndTurnRequest, opts ...grpc.CallOption) (*EndTurnResponse, error)
	Attack(ctx context.Context, in *AttackRequest, opts ...grpc.CallOption) (*AttackResponse, error)
	ReportDeath(ctx context.Context, in *ReportDeathRequest, opts ...grpc.CallOption) (*ReportDeathResponse, error)
	GetQuestState(ctx context.Context, in *GetQuestStateRequest, opts ...grpc.CallOption) (*GetQuestStateResponse, error)
}

type questServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewQuestServiceClient creates a client that always calls with the JSON codec
func NewQuestServiceClient(cc grpc.ClientConnInterface) QuestServiceClient {
	return &questServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *questServiceClient) Connect(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*ConnectResponse, error) {
	return invoke[ConnectResponse](ctx, c.cc, QuestServiceConnectFullMethod, in, opts)
}

func (c *questServiceClient) Disconnect(ctx context.Context, in *DisconnectRequest, opts ...grpc.CallOption) (*DisconnectResponse, error) {
	return invoke[DisconnectResponse](ctx, c.cc, QuestServiceDisconnectFullMethod, in, opts)
}

func (c *questServiceClient) ListQuests(ctx context.Context, in *ListQuestsRequest, opts ...grpc.CallOption) (*ListQuestsResponse, error) {
	return invoke[ListQuestsResponse](ctx, c.cc, QuestServiceListQuestsFullMethod, in, opts)
}

func (c *questServiceClient) StartQuest(ctx context.Context, in *StartQuestRequest, opts ...grpc.CallOption) (*StartQuestResponse, error) {
	return invoke[StartQuestResponse](ctx, c.cc, QuestServiceStartQuestFullMethod, in, opts)
}

func (c *questServiceClient) StopQuest(ctx context.Context, in *StopQuestRequest, opts ...grpc.CallOption) (*StopQuestResponse, error) {
	return invoke[StopQuestResponse](ctx, c.cc, QuestServiceStopQuestFullMethod, in, opts)
}

func (c *questServiceClient) VoteAdvance(ctx context.Context, in *VoteAdvanceRequest, opts ...grpc.CallOption) (*VoteAdvanceResponse, error) {
	return invoke[VoteAdvanceResponse](ctx, c.cc, QuestServiceVoteAdvanceFullMethod, in, opts)
}

func (c *questServiceClient) EndTurn(ctx context.Context, in *EndTurnRequest, opts ...grpc.CallOption) (*EndTurnResponse, error) {
	return invoke[EndTurnResponse](ctx, c.cc, QuestServiceEndTurnFullMethod, in, opts)
}

func (c *questServiceClient) Attack(ctx context.Context, in *AttackRequest, opts ...grpc.CallOption) (*AttackResponse, error) {
	return invoke[AttackResponse](ctx, c.cc, QuestServiceAttackFullMethod, in, opts)
}

func (c *questServiceClient) ReportDeath(ctx context.Context, in *ReportDeathRequest, opts ...grpc.CallOption) (*ReportDeathResponse, error) {
	return invoke[ReportDeathResponse](ctx, c.cc, QuestServiceReportDeathFullMethod, in, opts)
}

func (c *questServiceClient) GetQuestState(ctx context.Context, in *GetQuestStateRequest, opts ...grpc.CallOption) (*GetQuestStateResponse, error) {
	return invoke[GetQuestStateResponse](ctx, c.cc, QuestServiceGetQuestStateFullMethod, in, opts)
}

package grpc

// proto.go defines the ScoringService contract (bib/scoring/v1) by hand.
// Messages are plain structs carried by the JSON codec in codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "bib.scoring.v1.ScoringService"

const scoreMethod = "/" + ServiceName + "/Score"

// ScoreRequest represents the ScoreRequest message.
type ScoreRequest struct {
	Amount   *float64 `json:"amount,omitempty"`
	Merchant string   `json:"merchant,omitempty"`
	Geo      string   `json:"geo,omitempty"`
	Device   string   `json:"device,omitempty"`
}

// ScoreResponse represents the ScoreResponse message.
type ScoreResponse struct {
	Score float64 `json:"score"`
}

// ScoringServiceServer is the server API for ScoringService.
type ScoringServiceServer interface {
	Score(context.Context, *ScoreRequest) (*ScoreResponse, error)
	mustEmbedUnimplementedScoringServiceServer()
}

// UnimplementedScoringServiceServer provides forward-compatible default implementations.
type UnimplementedScoringServiceServer struct{}

func (UnimplementedScoringServiceServer) Score(context.Context, *ScoreRequest) (*ScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Score not implemented")
}
func (UnimplementedScoringServiceServer) mustEmbedUnimplementedScoringServiceServer() {}

// RegisterScoringServiceServer registers the ScoringServiceServer with the gRPC server.
func RegisterScoringServiceServer(s grpclib.ServiceRegistrar, srv ScoringServiceServer) {
	s.RegisterService(&scoringServiceDesc, srv)
}

var scoringServiceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ScoringServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Score", Handler: scoreHandler},
	},
	Streams: []grpclib.StreamDesc{},
}

func scoreHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ScoreRequest)
	if err := dec(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if interceptor == nil {
		return srv.(ScoringServiceServer).Score(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: scoreMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScoringServiceServer).Score(ctx, req.(*ScoreRequest))
	}
	return interceptor(ctx, req, info, handler)
}

// ScoringServiceClient is the client API for ScoringService.
type ScoringServiceClient struct {
	cc grpclib.ClientConnInterface
}

// NewScoringServiceClient wraps a connection. Calls are sent with the JSON codec.
func NewScoringServiceClient(cc grpclib.ClientConnInterface) *ScoringServiceClient {
	return &ScoringServiceClient{cc: cc}
}

// Score calls ScoringService.Score.
func (c *ScoringServiceClient) Score(ctx context.Context, in *ScoreRequest, opts ...grpclib.CallOption) (*ScoreResponse, error) {
	out := new(ScoreResponse)
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, scoreMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

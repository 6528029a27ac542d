package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/bibbank/scoring-service/internal/application/usecase"
	"github.com/bibbank/scoring-service/internal/domain/service"
	"github.com/bibbank/scoring-service/pkg/observability"
	"github.com/bibbank/scoring-service/pkg/testutil"
)

// --- Helpers ---

// startServer runs a Server on an in-memory listener and returns a client connection.
func startServer(t *testing.T, noise service.NoiseSource) *grpc.ClientConn {
	t.Helper()
	logger := observability.Discard()

	uc := usecase.NewScoreTransaction(service.NewNoiseScorer(noise), nil, logger)
	srv := NewServer(NewScoringServiceHandler(uc, logger), ServerConfig{}, logger)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

// --- Tests ---

func TestScore_OK(t *testing.T) {
	client := NewScoringServiceClient(startServer(t, service.FixedNoise(-0.02)))

	resp, err := client.Score(context.Background(), &ScoreRequest{Amount: testutil.Amount(7000), Merchant: "acme"})
	require.NoError(t, err)
	assert.Equal(t, 0.68, resp.Score)
}

func TestScore_ZeroAmount(t *testing.T) {
	client := NewScoringServiceClient(startServer(t, service.FixedNoise(0)))

	resp, err := client.Score(context.Background(), &ScoreRequest{Amount: testutil.Amount(0)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Score)
}

func TestScore_SaturatedBand(t *testing.T) {
	client := NewScoringServiceClient(startServer(t, nil))

	for i := 0; i < 50; i++ {
		resp, err := client.Score(context.Background(), &ScoreRequest{Amount: testutil.Amount(15000)})
		require.NoError(t, err)
		require.GreaterOrEqual(t, resp.Score, 0.9)
		require.LessOrEqual(t, resp.Score, 1.0)
	}
}

func TestScore_MissingAmount(t *testing.T) {
	client := NewScoringServiceClient(startServer(t, nil))

	_, err := client.Score(context.Background(), &ScoreRequest{Merchant: "acme"})
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestScore_MalformedFields(t *testing.T) {
	conn := startServer(t, nil)

	tests := []struct {
		name string
		req  map[string]any
	}{
		{"amount is a string", map[string]any{"amount": "lots"}},
		{"merchant is a number", map[string]any{"amount": 10, "merchant": 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := conn.Invoke(context.Background(), scoreMethod, tt.req, new(ScoreResponse),
				grpc.CallContentSubtype(CodecName))
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestHandler_NilRequest(t *testing.T) {
	logger := observability.Discard()
	uc := usecase.NewScoreTransaction(service.NewNoiseScorer(nil), nil, logger)
	h := NewScoringServiceHandler(uc, logger)

	_, err := h.Score(context.Background(), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHealthCheck(t *testing.T) {
	conn := startServer(t, nil)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(),
		&healthpb.HealthCheckRequest{Service: HealthServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestUnimplementedServer(t *testing.T) {
	_, err := UnimplementedScoringServiceServer{}.Score(context.Background(), &ScoreRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestJSONCodec(t *testing.T) {
	c := jsonCodec{}
	assert.Equal(t, "json", c.Name())

	b, err := c.Marshal(&ScoreRequest{Amount: testutil.Amount(12.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 12.5}`, string(b))

	var out ScoreRequest
	require.NoError(t, c.Unmarshal([]byte(`{"amount": 3, "geo": "US"}`), &out))
	require.NotNil(t, out.Amount)
	assert.Equal(t, 3.0, *out.Amount)
	assert.Equal(t, "US", out.Geo)

	assert.Error(t, c.Unmarshal([]byte(`{"amount": "x"}`), &out))
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/bibbank/scoring-service/internal/application/dto"
	"github.com/bibbank/scoring-service/internal/application/usecase"
	"github.com/bibbank/scoring-service/internal/domain/service"
	grpcpresentation "github.com/bibbank/scoring-service/internal/presentation/grpc"
	"github.com/bibbank/scoring-service/pkg/observability"
)

type scoreOptions struct {
	amount   float64
	merchant string
	geo      string
	device   string
	addr     string
	timeout  time.Duration
}

func newScoreCmd() *cobra.Command {
	var opts scoreOptions

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a single transaction and print the result as JSON",
		Long: "Scores one transaction in-process, or against a running server's\n" +
			"gRPC endpoint when --addr is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.amount, "amount", 0, "transaction amount (required)")
	f.StringVar(&opts.merchant, "merchant", "", "merchant name (default \"default\")")
	f.StringVar(&opts.geo, "geo", "", "country code (default \"IN\")")
	f.StringVar(&opts.device, "device", "", "device type (default \"mobile\")")
	f.StringVar(&opts.addr, "addr", "", "score against a running server's gRPC address instead of in-process")
	f.DurationVar(&opts.timeout, "timeout", 5*time.Second, "request timeout for --addr")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runScore(ctx context.Context, out io.Writer, opts scoreOptions) error {
	var resp dto.ScoreResponse
	var err error

	if opts.addr != "" {
		resp, err = scoreRemote(ctx, opts)
	} else {
		resp, err = scoreLocal(ctx, opts)
	}
	if err != nil {
		return err
	}

	return json.NewEncoder(out).Encode(resp)
}

func scoreLocal(ctx context.Context, opts scoreOptions) (dto.ScoreResponse, error) {
	uc := usecase.NewScoreTransaction(service.NewNoiseScorer(nil), nil, observability.Discard())
	return uc.Execute(ctx, dto.ScoreRequest{
		Amount:   &opts.amount,
		Merchant: opts.merchant,
		Geo:      opts.geo,
		Device:   opts.device,
	})
}

func scoreRemote(ctx context.Context, opts scoreOptions) (dto.ScoreResponse, error) {
	conn, err := grpc.NewClient(opts.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("failed to dial %s: %w", opts.addr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	resp, err := grpcpresentation.NewScoringServiceClient(conn).Score(ctx, &grpcpresentation.ScoreRequest{
		Amount:   &opts.amount,
		Merchant: opts.merchant,
		Geo:      opts.geo,
		Device:   opts.device,
	})
	if err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("remote score failed: %w", err)
	}

	return dto.ScoreResponse{Score: resp.Score}, nil
}

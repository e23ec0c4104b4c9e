package server

import (
	"context"
	"log/slog"

	pb "github.com/reconkit/phone-recon/gen/proto/phonerecon/v1"
	"github.com/reconkit/phone-recon/internal/async"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/repository"
	"github.com/reconkit/phone-recon/internal/utils"
)

type ExtractionServer struct {
	pb.UnimplementedExtractionServiceServer
	stage       async.Extractor
	pool        *async.Pool
	screenshots repository.ScreenshotRepository
	logger      *slog.Logger
}

func NewExtractionServer(stage async.Extractor, pool *async.Pool, screenshots repository.ScreenshotRepository, logger *slog.Logger) *ExtractionServer {
	return &ExtractionServer{
		stage:       stage,
		pool:        pool,
		screenshots: screenshots,
		logger:      logger,
	}
}

func (s *ExtractionServer) ExtractScreenshot(ctx context.Context, req *pb.ExtractScreenshotRequest) (*pb.ExtractScreenshotResponse, error) {
	id, err := parseUUID("screenshot_id", req.GetScreenshotId())
	if err != nil {
		return nil, err
	}
	source, err := canonicalSource(req.GetSource())
	if err != nil {
		return nil, err
	}

	s.logger.Info("extracting screenshot", "screenshot_id", id)
	summary, err := s.stage.Run(ctx, id, source)
	if err != nil {
		s.logger.Error("extraction failed", "screenshot_id", id, "error", err)
		return nil, toStatus(err)
	}
	return &pb.ExtractScreenshotResponse{Summary: utils.ToPBSummary(summary)}, nil
}

func (s *ExtractionServer) ExtractBatch(ctx context.Context, req *pb.ExtractBatchRequest) (*pb.ExtractBatchResponse, error) {
	source, err := canonicalSource(req.GetSource())
	if err != nil {
		return nil, err
	}
	ids, err := parseUUIDs("screenshot_ids", req.GetScreenshotIds())
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		if !req.GetAllUnprocessed() {
			return nil, common.InvalidArgumentError("screenshot_ids or all_unprocessed is required")
		}
		ids, err = s.screenshots.ListUnprocessedIDs(ctx)
		if err != nil {
			return nil, toStatus(err)
		}
	}

	jobs := make([]async.Job, len(ids))
	for i, id := range ids {
		jobs[i] = async.Job{ScreenshotID: id, Source: source}
	}

	s.logger.Info("starting extraction batch", "jobs", len(jobs))
	results := s.pool.RunBatch(ctx, jobs)

	resp := &pb.ExtractBatchResponse{Summaries: make([]*pb.ExtractionSummary, 0, len(results))}
	for _, r := range results {
		if r.Err != nil {
			resp.Failed++
			resp.Summaries = append(resp.Summaries, &pb.ExtractionSummary{
				ScreenshotId: r.Job.ScreenshotID.String(),
				Error:        r.Err.Error(),
			})
			continue
		}
		resp.Succeeded++
		resp.Summaries = append(resp.Summaries, utils.ToPBSummary(r.Summary))
	}
	s.logger.Info("extraction batch completed", "succeeded", resp.Succeeded, "failed", resp.Failed)
	return resp, nil
}

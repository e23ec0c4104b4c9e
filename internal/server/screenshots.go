package server

import (
	"context"
	"log/slog"
	"strings"

	pb "github.com/reconkit/phone-recon/gen/proto/phonerecon/v1"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/ingest"
	"github.com/reconkit/phone-recon/internal/repository"
	"github.com/reconkit/phone-recon/internal/utils"
)

type ScreenshotServer struct {
	pb.UnimplementedScreenshotServiceServer
	registrar *ingest.Registrar
	repo      repository.ScreenshotRepository
	logger    *slog.Logger
}

func NewScreenshotServer(registrar *ingest.Registrar, repo repository.ScreenshotRepository, logger *slog.Logger) *ScreenshotServer {
	return &ScreenshotServer{
		registrar: registrar,
		repo:      repo,
		logger:    logger,
	}
}

func (s *ScreenshotServer) RegisterScreenshot(ctx context.Context, req *pb.RegisterScreenshotRequest) (*pb.RegisterScreenshotResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("register request missing path")
		return nil, common.InvalidArgumentError("path is required")
	}
	source, err := canonicalSource(req.GetSource())
	if err != nil {
		return nil, err
	}

	s.logger.Info("registering screenshot", "path", path, "source", source)
	shot, known, err := s.registrar.RegisterPath(ctx, path, source)
	if err != nil {
		s.logger.Error("failed to register screenshot", "path", path, "error", err)
		return nil, toStatus(err)
	}
	if known {
		s.logger.Info("screenshot already registered", "path", path, "screenshot_id", shot.ID)
	}
	return &pb.RegisterScreenshotResponse{Screenshot: utils.ToPBScreenshot(shot)}, nil
}

func (s *ScreenshotServer) RegisterDirectory(ctx context.Context, req *pb.RegisterDirectoryRequest) (*pb.RegisterDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("register directory request missing root_path")
		return nil, common.InvalidArgumentError("root_path is required")
	}
	source, err := canonicalSource(req.GetSource())
	if err != nil {
		return nil, err
	}

	s.logger.Info("registering directory", "root", root, "source", source, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.registrar.RegisterDirectory(ctx, root, source, req.GetSkipHidden())
	if err != nil {
		return nil, toStatus(err)
	}

	out := &pb.RegisterDirectoryResponse{
		Screenshots: make([]*pb.Screenshot, 0, len(results)),
		Scanned:     stats.Scanned,
		Matched:     stats.Matched,
		Registered:  stats.Registered,
		Skipped:     stats.Skipped,
		Failed:      stats.Failed,
	}
	for _, r := range results {
		if r.Screenshot != nil {
			out.Screenshots = append(out.Screenshots, utils.ToPBScreenshot(r.Screenshot))
		}
	}
	return out, nil
}

func (s *ScreenshotServer) GetScreenshot(ctx context.Context, req *pb.GetScreenshotRequest) (*pb.GetScreenshotResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	shot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetScreenshotResponse{Screenshot: utils.ToPBScreenshot(shot)}, nil
}

func (s *ScreenshotServer) ListScreenshots(ctx context.Context, req *pb.ListScreenshotsRequest) (*pb.ListScreenshotsResponse, error) {
	source, err := canonicalSource(req.GetSource())
	if err != nil {
		return nil, err
	}
	page, size := utils.NormalizePaging(req.GetPage(), req.GetPageSize())

	shots, total, err := s.repo.List(ctx, repository.ScreenshotFilter{
		Source:    source,
		Processed: req.Processed,
		Page:      page,
		PageSize:  size,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*pb.Screenshot, len(shots))
	for i, shot := range shots {
		out[i] = utils.ToPBScreenshot(shot)
	}
	return &pb.ListScreenshotsResponse{Screenshots: out, Total: int32(total)}, nil
}

func (s *ScreenshotServer) UpdateScreenshot(ctx context.Context, req *pb.UpdateScreenshotRequest) (*pb.UpdateScreenshotResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	if req.Source == nil && req.Notes == nil {
		return nil, common.InvalidArgumentError("nothing to update")
	}

	validator := common.NewValidator()
	validator.Field("notes", req.Notes, common.MaxLength(2000))
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	var source *string
	if req.Source != nil {
		canon, err := canonicalSource(req.GetSource())
		if err != nil {
			return nil, err
		}
		source = &canon
	}

	shot, err := s.repo.UpdateMeta(ctx, id, source, req.Notes)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("screenshot updated", "screenshot_id", id)
	return &pb.UpdateScreenshotResponse{Screenshot: utils.ToPBScreenshot(shot)}, nil
}

func (s *ScreenshotServer) DeleteScreenshot(ctx context.Context, req *pb.DeleteScreenshotRequest) (*pb.DeleteScreenshotResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("screenshot deleted", "screenshot_id", id)
	return &pb.DeleteScreenshotResponse{Deleted: true}, nil
}

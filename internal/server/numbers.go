package server

import (
	"context"
	"log/slog"
	"strings"

	pb "github.com/reconkit/phone-recon/gen/proto/phonerecon/v1"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/repository"
	"github.com/reconkit/phone-recon/internal/utils"
)

type NumberServer struct {
	pb.UnimplementedNumberServiceServer
	repo   repository.NumberRepository
	logger *slog.Logger
}

func NewNumberServer(repo repository.NumberRepository, logger *slog.Logger) *NumberServer {
	return &NumberServer{
		repo:   repo,
		logger: logger,
	}
}

func (s *NumberServer) ListNumbers(ctx context.Context, req *pb.ListNumbersRequest) (*pb.ListNumbersResponse, error) {
	page, size := utils.NormalizePaging(req.GetPage(), req.GetPageSize())
	filter := repository.NumberFilter{
		CountryCode: strings.TrimSpace(req.GetCountryCode()),
		IsValid:     req.IsValid,
		Search:      strings.TrimSpace(req.GetSearch()),
		Page:        page,
		PageSize:    size,
	}
	if raw := strings.TrimSpace(req.GetScreenshotId()); raw != "" {
		id, err := parseUUID("screenshot_id", raw)
		if err != nil {
			return nil, err
		}
		filter.ScreenshotID = &id
	}

	numbers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*pb.ExtractedNumber, len(numbers))
	for i, n := range numbers {
		out[i] = utils.ToPBNumber(n)
	}
	return &pb.ListNumbersResponse{Numbers: out, Total: int32(total)}, nil
}

func (s *NumberServer) GetNumberStats(ctx context.Context, _ *pb.GetNumberStatsRequest) (*pb.GetNumberStatsResponse, error) {
	countries, err := s.repo.CountByCountry(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	types, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	total, valid, err := s.repo.CountTotals(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.GetNumberStatsResponse{
		CountryCounts: make([]*pb.CountryCount, len(countries)),
		TypeCounts:    make([]*pb.TypeCount, len(types)),
		Total:         int32(total),
		Valid:         int32(valid),
	}
	for i, c := range countries {
		resp.CountryCounts[i] = &pb.CountryCount{
			CountryCode: c.CountryCode,
			CountryName: c.CountryName,
			Count:       int32(c.Count),
		}
	}
	for i, t := range types {
		resp.TypeCounts[i] = &pb.TypeCount{
			NumberType: t.NumberType,
			Count:      int32(t.Count),
		}
	}
	return resp, nil
}

func (s *NumberServer) ListDuplicates(ctx context.Context, _ *pb.ListDuplicatesRequest) (*pb.ListDuplicatesResponse, error) {
	groups, err := s.repo.Duplicates(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*pb.DuplicateGroup, len(groups))
	for i, g := range groups {
		numbers := make([]*pb.ExtractedNumber, len(g.Numbers))
		for j, n := range g.Numbers {
			numbers[j] = utils.ToPBNumber(n)
		}
		out[i] = &pb.DuplicateGroup{
			NormalizedNumber: g.NormalizedNumber,
			Numbers:          numbers,
		}
	}
	return &pb.ListDuplicatesResponse{Duplicates: out}, nil
}

func (s *NumberServer) DeleteNumbers(ctx context.Context, req *pb.DeleteNumbersRequest) (*pb.DeleteNumbersResponse, error) {
	if len(req.GetIds()) == 0 {
		return nil, common.InvalidArgumentError("ids is required")
	}
	ids, err := parseUUIDs("ids", req.GetIds())
	if err != nil {
		return nil, err
	}

	deleted, err := s.repo.DeleteMany(ctx, ids)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("numbers deleted", "requested", len(ids), "deleted", deleted)
	return &pb.DeleteNumbersResponse{Deleted: int32(deleted)}, nil
}

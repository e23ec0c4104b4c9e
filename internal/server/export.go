package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/reconkit/phone-recon/constants"
	pb "github.com/reconkit/phone-recon/gen/proto/phonerecon/v1"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/export"
)

type ExportServer struct {
	pb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportNumbersCSV(ctx context.Context, req *pb.ExportNumbersCSVRequest) (*pb.ExportNumbersCSVResponse, error) {
	filter := export.NumbersFilter{
		CountryCode: strings.TrimSpace(req.GetCountryCode()),
		IsValid:     req.IsValid,
	}
	data, filename, err := s.svc.NumbersCSV(ctx, filter)
	if err != nil {
		s.logger.Error("export.csv.failed", "err", err)
		return nil, toStatus(err)
	}
	return &pb.ExportNumbersCSVResponse{CsvData: data, Filename: filename}, nil
}

func (s *ExportServer) ExportNumbersXLSX(ctx context.Context, req *pb.ExportNumbersXLSXRequest) (*pb.ExportNumbersXLSXResponse, error) {
	filter := export.NumbersFilter{
		CountryCode: strings.TrimSpace(req.GetCountryCode()),
		IsValid:     req.IsValid,
	}
	data, filename, err := s.svc.NumbersXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, toStatus(err)
	}
	return &pb.ExportNumbersXLSXResponse{XlsxData: data, Filename: filename}, nil
}

func (s *ExportServer) ExportComparisonCSV(ctx context.Context, req *pb.ExportComparisonCSVRequest) (*pb.ExportComparisonCSVResponse, error) {
	var matchType constants.MatchType
	if raw := strings.TrimSpace(req.GetMatchType()); raw != "" {
		parsed, ok := constants.ParseMatchType(raw)
		if !ok {
			return nil, common.InvalidArgumentErrorf("match_type %q is not recognized", raw)
		}
		matchType = parsed
	}

	data, filename, err := s.svc.ComparisonCSV(ctx, matchType)
	if err != nil {
		s.logger.Error("export.comparison.failed", "err", err)
		return nil, toStatus(err)
	}
	return &pb.ExportComparisonCSVResponse{CsvData: data, Filename: filename}, nil
}

func (s *ExportServer) ExportNewNumbersCSV(ctx context.Context, _ *pb.ExportNewNumbersCSVRequest) (*pb.ExportNewNumbersCSVResponse, error) {
	data, filename, err := s.svc.NewNumbersCSV(ctx)
	if err != nil {
		s.logger.Error("export.new_numbers.failed", "err", err)
		return nil, toStatus(err)
	}
	return &pb.ExportNewNumbersCSVResponse{CsvData: data, Filename: filename}, nil
}

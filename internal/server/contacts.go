package server

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	pb "github.com/reconkit/phone-recon/gen/proto/phonerecon/v1"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/imports"
	"github.com/reconkit/phone-recon/internal/repository"
	"github.com/reconkit/phone-recon/internal/utils"
)

type ContactServer struct {
	pb.UnimplementedContactServiceServer
	svc    *imports.Service
	repo   repository.ContactRepository
	logger *slog.Logger
}

func NewContactServer(svc *imports.Service, repo repository.ContactRepository, logger *slog.Logger) *ContactServer {
	return &ContactServer{
		svc:    svc,
		repo:   repo,
		logger: logger,
	}
}

func (s *ContactServer) PreviewImport(ctx context.Context, req *pb.PreviewImportRequest) (*pb.PreviewImportResponse, error) {
	if len(req.GetCsvData()) == 0 {
		return nil, common.InvalidArgumentError("csv_data is required")
	}

	preview, err := s.svc.Preview(bytes.NewReader(req.GetCsvData()), int(req.GetSampleRows()))
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.PreviewImportResponse{
		Headers:          preview.Headers,
		SampleRows:       make([]*pb.SampleRow, len(preview.SampleRows)),
		SuggestedMapping: make(map[string]string, len(preview.Suggestion.Mapping)),
		Scores:           make([]*pb.ColumnScore, len(preview.Suggestion.Scores)),
	}
	for i, row := range preview.SampleRows {
		resp.SampleRows[i] = &pb.SampleRow{Values: row}
	}
	for role, header := range preview.Suggestion.Mapping {
		resp.SuggestedMapping[string(role)] = header
	}
	for i, sc := range preview.Suggestion.Scores {
		resp.Scores[i] = &pb.ColumnScore{
			Role:   string(sc.Role),
			Header: sc.Header,
			Value:  sc.Value,
		}
	}
	return resp, nil
}

func (s *ContactServer) ImportContacts(ctx context.Context, req *pb.ImportContactsRequest) (*pb.ImportContactsResponse, error) {
	if len(req.GetCsvData()) == 0 {
		return nil, common.InvalidArgumentError("csv_data is required")
	}
	if len(req.GetMapping()) == 0 {
		return nil, common.InvalidArgumentError("mapping is required")
	}

	s.logger.Info("importing contacts", "bytes", len(req.GetCsvData()), "source", req.GetSource())
	stats, err := s.svc.Import(ctx, bytes.NewReader(req.GetCsvData()), req.GetMapping(), req.GetSource())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ImportContactsResponse{Stats: utils.ToPBImportStats(stats)}, nil
}

func (s *ContactServer) ListContacts(ctx context.Context, req *pb.ListContactsRequest) (*pb.ListContactsResponse, error) {
	page, size := utils.NormalizePaging(req.GetPage(), req.GetPageSize())

	contacts, total, err := s.repo.List(ctx, repository.ContactFilter{
		Search:   strings.TrimSpace(req.GetSearch()),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*pb.ExistingContact, len(contacts))
	for i, c := range contacts {
		out[i] = utils.ToPBContact(c)
	}
	return &pb.ListContactsResponse{Contacts: out, Total: int32(total)}, nil
}

func (s *ContactServer) ClearContacts(ctx context.Context, _ *pb.ClearContactsRequest) (*pb.ClearContactsResponse, error) {
	deleted, err := s.repo.Clear(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("contacts cleared", "deleted", deleted)
	return &pb.ClearContactsResponse{Deleted: int32(deleted)}, nil
}

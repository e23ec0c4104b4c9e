package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/reconkit/phone-recon/constants"
	pb "github.com/reconkit/phone-recon/gen/proto/phonerecon/v1"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/compare"
	"github.com/reconkit/phone-recon/internal/entity"
	"github.com/reconkit/phone-recon/internal/repository"
	"github.com/reconkit/phone-recon/internal/utils"
)

type ComparisonServer struct {
	pb.UnimplementedComparisonServiceServer
	numbers   repository.NumberRepository
	contacts  repository.ContactRepository
	snapshots repository.SnapshotRepository
	logger    *slog.Logger
}

func NewComparisonServer(numbers repository.NumberRepository, contacts repository.ContactRepository, snapshots repository.SnapshotRepository, logger *slog.Logger) *ComparisonServer {
	return &ComparisonServer{
		numbers:   numbers,
		contacts:  contacts,
		snapshots: snapshots,
		logger:    logger,
	}
}

func (s *ComparisonServer) RunComparison(ctx context.Context, _ *pb.RunComparisonRequest) (*pb.RunComparisonResponse, error) {
	numbers, contacts, err := s.load(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	_, stats := compare.Compare(numbers, contacts)
	saved, err := s.snapshots.Save(ctx, &stats)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("comparison completed",
		"total_extracted", saved.TotalExtracted,
		"exact", saved.ExactMatches,
		"partial", saved.PartialMatches,
		"new", saved.NewNumbers,
		"match_rate", saved.MatchRate,
	)
	return &pb.RunComparisonResponse{Stats: utils.ToPBStats(saved)}, nil
}

func (s *ComparisonServer) GetLatestStats(ctx context.Context, _ *pb.GetLatestStatsRequest) (*pb.GetLatestStatsResponse, error) {
	stats, err := s.snapshots.Latest(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &pb.GetLatestStatsResponse{Stats: &pb.ComparisonStats{}, Found: false}, nil
		}
		return nil, toStatus(err)
	}
	return &pb.GetLatestStatsResponse{Stats: utils.ToPBStats(stats), Found: true}, nil
}

func (s *ComparisonServer) ListClassifications(ctx context.Context, req *pb.ListClassificationsRequest) (*pb.ListClassificationsResponse, error) {
	var matchType constants.MatchType
	if raw := strings.TrimSpace(req.GetMatchType()); raw != "" {
		parsed, ok := constants.ParseMatchType(raw)
		if !ok {
			return nil, common.InvalidArgumentErrorf("match_type %q is not recognized", raw)
		}
		matchType = parsed
	}

	numbers, contacts, err := s.load(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	classifications, _ := compare.Compare(numbers, contacts)

	contactByID := make(map[uuid.UUID]*entity.ExistingContact, len(contacts))
	for _, c := range contacts {
		contactByID[c.ID] = c
	}

	// classifications[i] belongs to numbers[i]
	matched := make([]*pb.ClassifiedNumber, 0, len(classifications))
	for i, cls := range classifications {
		if matchType != "" && cls.MatchType != matchType {
			continue
		}
		item := &pb.ClassifiedNumber{
			Number: utils.ToPBNumber(numbers[i]),
			Classification: &pb.Classification{
				NumberId:  cls.NumberID.String(),
				MatchType: string(cls.MatchType),
			},
		}
		if cls.ContactID != nil {
			item.Classification.ContactId = cls.ContactID.String()
			if c, ok := contactByID[*cls.ContactID]; ok {
				item.Contact = utils.ToPBContact(c)
			}
		}
		matched = append(matched, item)
	}

	page, size := utils.NormalizePaging(req.GetPage(), req.GetPageSize())
	total := len(matched)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return &pb.ListClassificationsResponse{Numbers: matched[start:end], Total: int32(total)}, nil
}

func (s *ComparisonServer) load(ctx context.Context) ([]*entity.ExtractedNumber, []*entity.ExistingContact, error) {
	numbers, err := s.numbers.ListAll(ctx, "", nil)
	if err != nil {
		return nil, nil, err
	}
	contacts, err := s.contacts.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return numbers, contacts, nil
}

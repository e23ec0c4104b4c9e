package utils

import (
	"time"

	"github.com/reconkit/phone-recon/gen/ent"
	pb "github.com/reconkit/phone-recon/gen/proto/phonerecon/v1"
	"github.com/reconkit/phone-recon/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// NormalizePaging clamps page/page_size coming off the wire. Page is
// 1-based; size defaults to 50 and is capped at 200.
func NormalizePaging(page, pageSize int32) (int, int) {
	p := int(page)
	if p < 1 {
		p = 1
	}
	size := int(pageSize)
	if size < 1 {
		size = 50
	}
	if size > 200 {
		size = 200
	}
	return p, size
}

func ToScreenshot(e *ent.Screenshot) *entity.Screenshot {
	s := &entity.Screenshot{
		ID:         e.ID,
		Filename:   e.Filename,
		FilePath:   e.FilePath,
		Source:     e.Source,
		OCRText:    e.OcrText,
		Processed:  e.Processed,
		Notes:      e.Notes,
		UploadedAt: e.UploadedAt,
	}
	if numbers, err := e.Edges.NumbersOrErr(); err == nil {
		s.NumbersCount = len(numbers)
	}
	return s
}

func ToExtractedNumber(e *ent.ExtractedNumber) *entity.ExtractedNumber {
	n := &entity.ExtractedNumber{
		ID:               e.ID,
		ScreenshotID:     e.ScreenshotID,
		RawNumber:        e.RawNumber,
		NormalizedNumber: e.NormalizedNumber,
		CountryCode:      e.CountryCode,
		CountryName:      e.CountryName,
		Carrier:          e.Carrier,
		NumberType:       e.NumberType,
		IsValid:          e.IsValid,
		ExtractedAt:      e.ExtractedAt,
	}
	if groups, err := e.Edges.GroupsOrErr(); err == nil {
		for _, g := range groups {
			n.Groups = append(n.Groups, ToGroup(g))
		}
	}
	return n
}

func ToGroup(e *ent.Group) *entity.Group {
	g := &entity.Group{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Color:       e.Color,
		IsSystem:    e.IsSystem,
		CountryCode: e.CountryCode,
		CreatedAt:   e.CreatedAt,
	}
	if numbers, err := e.Edges.NumbersOrErr(); err == nil {
		g.NumbersCount = len(numbers)
	}
	return g
}

func ToContact(e *ent.ExistingContact) *entity.ExistingContact {
	return &entity.ExistingContact{
		ID:               e.ID,
		NormalizedNumber: e.NormalizedNumber,
		RawNumber:        e.RawNumber,
		Name:             e.Name,
		Email:            e.Email,
		Company:          e.Company,
		Source:           e.Source,
		ExternalID:       e.ExternalID,
		ImportedAt:       e.ImportedAt,
	}
}

func ToComparisonStats(e *ent.ComparisonSnapshot) *entity.ComparisonStats {
	return &entity.ComparisonStats{
		TotalExtracted: e.TotalExtracted,
		TotalContacts:  e.TotalContacts,
		ExactMatches:   e.ExactMatches,
		PartialMatches: e.PartialMatches,
		NewNumbers:     e.NewNumbers,
		NotCompared:    e.NotCompared,
		MatchRate:      e.MatchRate,
		ComparedAt:     e.ComparedAt,
	}
}

func ToPBScreenshot(s *entity.Screenshot) *pb.Screenshot {
	return &pb.Screenshot{
		Id:           s.ID.String(),
		Filename:     s.Filename,
		FilePath:     s.FilePath,
		Source:       strOrEmpty(s.Source),
		Processed:    s.Processed,
		Notes:        strOrEmpty(s.Notes),
		UploadedAt:   s.UploadedAt.UTC().Format(time.RFC3339),
		NumbersCount: int32(s.NumbersCount),
		OcrText:      strOrEmpty(s.OCRText),
	}
}

func ToPBNumber(n *entity.ExtractedNumber) *pb.ExtractedNumber {
	out := &pb.ExtractedNumber{
		Id:               n.ID.String(),
		ScreenshotId:     n.ScreenshotID.String(),
		RawNumber:        n.RawNumber,
		NormalizedNumber: strOrEmpty(n.NormalizedNumber),
		CountryCode:      strOrEmpty(n.CountryCode),
		CountryName:      strOrEmpty(n.CountryName),
		Carrier:          strOrEmpty(n.Carrier),
		NumberType:       strOrEmpty(n.NumberType),
		IsValid:          n.IsValid,
		ExtractedAt:      n.ExtractedAt.UTC().Format(time.RFC3339),
	}
	for _, g := range n.Groups {
		out.Groups = append(out.Groups, &pb.GroupRef{
			Id:    g.ID.String(),
			Name:  g.Name,
			Color: g.Color,
		})
	}
	return out
}

func ToPBGroup(g *entity.Group) *pb.Group {
	return &pb.Group{
		Id:           g.ID.String(),
		Name:         g.Name,
		Description:  strOrEmpty(g.Description),
		Color:        g.Color,
		IsSystem:     g.IsSystem,
		CountryCode:  strOrEmpty(g.CountryCode),
		CreatedAt:    g.CreatedAt.UTC().Format(time.RFC3339),
		NumbersCount: int32(g.NumbersCount),
	}
}

func ToPBContact(c *entity.ExistingContact) *pb.ExistingContact {
	return &pb.ExistingContact{
		Id:               c.ID.String(),
		NormalizedNumber: c.NormalizedNumber,
		RawNumber:        c.RawNumber,
		Name:             strOrEmpty(c.Name),
		Email:            strOrEmpty(c.Email),
		Company:          strOrEmpty(c.Company),
		Source:           c.Source,
		ExternalId:       strOrEmpty(c.ExternalID),
		ImportedAt:       c.ImportedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBStats(s *entity.ComparisonStats) *pb.ComparisonStats {
	comparedAt := ""
	if !s.ComparedAt.IsZero() {
		comparedAt = s.ComparedAt.UTC().Format(time.RFC3339)
	}
	return &pb.ComparisonStats{
		TotalExtracted: int32(s.TotalExtracted),
		TotalContacts:  int32(s.TotalContacts),
		ExactMatches:   int32(s.ExactMatches),
		PartialMatches: int32(s.PartialMatches),
		NewNumbers:     int32(s.NewNumbers),
		NotCompared:    int32(s.NotCompared),
		MatchRate:      s.MatchRate,
		ComparedAt:     comparedAt,
	}
}

// ToPBSummary leaves Error empty; batch callers fill it for failed items.
func ToPBSummary(s *entity.ExtractionSummary) *pb.ExtractionSummary {
	return &pb.ExtractionSummary{
		ScreenshotId: s.ScreenshotID.String(),
		Candidates:   int32(s.Candidates),
		Stored:       int32(s.Stored),
		Deduplicated: int32(s.Deduplicated),
		Rejected:     int32(s.Rejected),
	}
}

func ToPBImportStats(s *entity.ImportStats) *pb.ImportStats {
	return &pb.ImportStats{
		TotalRows:     int32(s.TotalRows),
		Imported:      int32(s.Imported),
		Duplicates:    int32(s.Duplicates),
		InvalidPhones: int32(s.InvalidPhones),
		Skipped:       int32(s.Skipped),
	}
}

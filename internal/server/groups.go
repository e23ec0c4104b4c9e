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

type GroupServer struct {
	pb.UnimplementedGroupServiceServer
	repo   repository.GroupRepository
	logger *slog.Logger
}

func NewGroupServer(repo repository.GroupRepository, logger *slog.Logger) *GroupServer {
	return &GroupServer{
		repo:   repo,
		logger: logger,
	}
}

func (s *GroupServer) CreateGroup(ctx context.Context, req *pb.CreateGroupRequest) (*pb.CreateGroupResponse, error) {
	name := strings.TrimSpace(req.GetName())
	color := strings.TrimSpace(req.GetColor())

	validator := common.NewValidator()
	validator.Field("name", name, common.Required, common.MaxLength(80))
	validator.Field("color", color, common.HexColor)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	var description *string
	if d := strings.TrimSpace(req.GetDescription()); d != "" {
		description = &d
	}

	g, err := s.repo.Create(ctx, name, description, color)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("group created", "group_id", g.ID, "name", g.Name)
	return &pb.CreateGroupResponse{Group: utils.ToPBGroup(g)}, nil
}

func (s *GroupServer) GetGroup(ctx context.Context, req *pb.GetGroupRequest) (*pb.GetGroupResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetGroupResponse{Group: utils.ToPBGroup(g)}, nil
}

func (s *GroupServer) ListGroups(ctx context.Context, req *pb.ListGroupsRequest) (*pb.ListGroupsResponse, error) {
	groups, err := s.repo.List(ctx, req.GetIncludeSystem())
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = utils.ToPBGroup(g)
	}
	return &pb.ListGroupsResponse{Groups: out}, nil
}

func (s *GroupServer) UpdateGroup(ctx context.Context, req *pb.UpdateGroupRequest) (*pb.UpdateGroupResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	if req.Name == nil && req.Description == nil && req.Color == nil {
		return nil, common.InvalidArgumentError("nothing to update")
	}

	validator := common.NewValidator()
	if req.Name != nil {
		validator.Field("name", req.Name, common.Required, common.MaxLength(80))
	}
	validator.Field("color", req.Color, common.HexColor)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	g, err := s.repo.Update(ctx, id, req.Name, req.Description, req.Color)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("group updated", "group_id", id)
	return &pb.UpdateGroupResponse{Group: utils.ToPBGroup(g)}, nil
}

func (s *GroupServer) DeleteGroup(ctx context.Context, req *pb.DeleteGroupRequest) (*pb.DeleteGroupResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("group deleted", "group_id", id)
	return &pb.DeleteGroupResponse{Deleted: true}, nil
}

func (s *GroupServer) AddNumbersToGroup(ctx context.Context, req *pb.AddNumbersToGroupRequest) (*pb.AddNumbersToGroupResponse, error) {
	groupID, err := parseUUID("group_id", req.GetGroupId())
	if err != nil {
		return nil, err
	}
	if len(req.GetNumberIds()) == 0 {
		return nil, common.InvalidArgumentError("number_ids is required")
	}
	numberIDs, err := parseUUIDs("number_ids", req.GetNumberIds())
	if err != nil {
		return nil, err
	}

	added, err := s.repo.AddNumbers(ctx, groupID, numberIDs)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("numbers added to group", "group_id", groupID, "added", added)
	return &pb.AddNumbersToGroupResponse{Added: int32(added)}, nil
}

func (s *GroupServer) RemoveNumbersFromGroup(ctx context.Context, req *pb.RemoveNumbersFromGroupRequest) (*pb.RemoveNumbersFromGroupResponse, error) {
	groupID, err := parseUUID("group_id", req.GetGroupId())
	if err != nil {
		return nil, err
	}
	if len(req.GetNumberIds()) == 0 {
		return nil, common.InvalidArgumentError("number_ids is required")
	}
	numberIDs, err := parseUUIDs("number_ids", req.GetNumberIds())
	if err != nil {
		return nil, err
	}

	removed, err := s.repo.RemoveNumbers(ctx, groupID, numberIDs)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("numbers removed from group", "group_id", groupID, "removed", removed)
	return &pb.RemoveNumbersFromGroupResponse{Removed: int32(removed)}, nil
}

func (s *GroupServer) ListGroupNumbers(ctx context.Context, req *pb.ListGroupNumbersRequest) (*pb.ListGroupNumbersResponse, error) {
	groupID, err := parseUUID("group_id", req.GetGroupId())
	if err != nil {
		return nil, err
	}
	page, size := utils.NormalizePaging(req.GetPage(), req.GetPageSize())

	numbers, total, err := s.repo.MembersPage(ctx, groupID, page, size)
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*pb.ExtractedNumber, len(numbers))
	for i, n := range numbers {
		out[i] = utils.ToPBNumber(n)
	}
	return &pb.ListGroupNumbersResponse{Numbers: out, Total: int32(total)}, nil
}

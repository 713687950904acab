package service

import (
	"Shotshelf/models"
	"Shotshelf/types"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

var _ IGroupService = (*GroupService)(nil)

type IGroupService interface {
	CreateGroup(ctx context.Context, req *types.CreateGroupRequest) (*models.Group, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
	GetGroup(ctx context.Context, groupId string) (*models.Group, error)
}

type GroupService struct {
	GroupRepo GroupRepository
}

var textPolicy = bluemonday.StrictPolicy()

// sanitizeText 去掉所有标签，保留纯文本
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// 创建分组
func (s *GroupService) CreateGroup(ctx context.Context, req *types.CreateGroupRequest) (*models.Group, error) {
	name := sanitizeText(req.Name)
	if name == "" {
		return nil, invalidArgument("name is required")
	}

	group := &models.Group{Name: name}
	if desc := sanitizeText(req.Description); desc != "" {
		group.Description = &desc
	}
	if err := s.GroupRepo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.GroupRepo.ListGroups(ctx)
}

func (s *GroupService) GetGroup(ctx context.Context, groupId string) (*models.Group, error) {
	group, err := s.GroupRepo.FindByID(ctx, groupId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Group not found")
	}
	if err != nil {
		return nil, err
	}
	return group, nil
}

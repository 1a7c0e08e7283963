package checklist

import (
	"context"
	"errors"
	"fmt"

	"github.com/daonswim/swim-club-api/internal/model"
	"github.com/daonswim/swim-club-api/internal/shared/database"
	"gorm.io/gorm"
)

type ChecklistService struct {
	db                  *gorm.DB
	checklistRepository *ChecklistRepository
}

func NewChecklistService(db *gorm.DB, checklistRepository *ChecklistRepository) *ChecklistService {
	return &ChecklistService{
		db:                  db,
		checklistRepository: checklistRepository,
	}
}

// ListActive returns the items rendered on the application form.
func (s *ChecklistService) ListActive(ctx context.Context) (*ListChecklistResponse, error) {
	items, err := s.checklistRepository.ListActive(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("체크리스트 조회 실패: %w", err)
	}
	return toListResponse(items), nil
}

// List returns every item, inactive included (admin).
func (s *ChecklistService) List(ctx context.Context) (*ListChecklistResponse, error) {
	items, err := s.checklistRepository.List(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("체크리스트 조회 실패: %w", err)
	}
	return toListResponse(items), nil
}

func (s *ChecklistService) Create(ctx context.Context, request *CreateChecklistItemRequest) (*ChecklistItemResponse, error) {
	item := &model.ChecklistItem{
		Label:        request.Label,
		Description:  request.Description,
		IsActive:     true,
		DisplayOrder: request.DisplayOrder,
	}

	if err := s.checklistRepository.Create(ctx, s.db, item); err != nil {
		return nil, fmt.Errorf("체크리스트 항목 생성 실패: %w", err)
	}

	response := toItemResponse(item)
	return &response, nil
}

func (s *ChecklistService) Update(ctx context.Context, id uint32, request *UpdateChecklistItemRequest) (*ChecklistItemResponse, error) {
	var response ChecklistItemResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		item, err := s.findItem(ctx, tx, id)
		if err != nil {
			return err
		}

		if request.Label != nil {
			item.Label = *request.Label
		}
		if request.Description != nil {
			item.Description = *request.Description
		}
		if request.IsActive != nil {
			item.IsActive = *request.IsActive
		}
		if request.DisplayOrder != nil {
			item.DisplayOrder = *request.DisplayOrder
		}

		if err := s.checklistRepository.Save(ctx, tx, item); err != nil {
			return fmt.Errorf("체크리스트 항목 수정 실패: %w", err)
		}

		response = toItemResponse(item)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (s *ChecklistService) Delete(ctx context.Context, id uint32) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.findItem(ctx, tx, id); err != nil {
			return err
		}

		if err := s.checklistRepository.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("체크리스트 항목 삭제 실패: %w", err)
		}
		return nil
	})
}

func (s *ChecklistService) findItem(ctx context.Context, db *gorm.DB, id uint32) (*model.ChecklistItem, error) {
	item, err := s.checklistRepository.FindByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("체크리스트 항목이 없습니다 id=%d %w", id, ErrItemNotFound)
		}
		return nil, fmt.Errorf("체크리스트 항목 조회 실패: %w", err)
	}
	return item, nil
}

func toListResponse(items []model.ChecklistItem) *ListChecklistResponse {
	response := &ListChecklistResponse{Items: make([]ChecklistItemResponse, 0, len(items))}
	for _, item := range items {
		response.Items = append(response.Items, toItemResponse(&item))
	}
	return response
}

func toItemResponse(item *model.ChecklistItem) ChecklistItemResponse {
	return ChecklistItemResponse{
		ID:           item.ID,
		Label:        item.Label,
		Description:  item.Description,
		IsActive:     item.IsActive,
		DisplayOrder: item.DisplayOrder,
	}
}

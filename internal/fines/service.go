package fines

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adeyemik/union-register/go-api-server/internal/member"
	"github.com/adeyemik/union-register/go-api-server/internal/model"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/database"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type FineService struct {
	db               *gorm.DB
	fineRepository   *FineRepository
	memberRepository *member.MemberRepository
	now              func() time.Time
}

func NewFineService(db *gorm.DB, fineRepository *FineRepository, memberRepository *member.MemberRepository) *FineService {
	return &FineService{
		db:               db,
		fineRepository:   fineRepository,
		memberRepository: memberRepository,
		now:              time.Now,
	}
}

// AddFine charges a member a penalty. Status starts unpaid.
func (s *FineService) AddFine(ctx context.Context, request *AddFineRequest) (*FineResponse, error) {
	log := logger.FromContext(ctx)

	var response *FineResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.memberRepository.ExistsByID(ctx, tx, request.MemberID)
		if err != nil {
			log.Error("failed to check member existence", "error", err)
			return fmt.Errorf("check member existence: %w", err)
		}
		if !exists {
			log.Warn("fine for unknown member", "member_id", request.MemberID)
			return fmt.Errorf("error %w", member.ErrMemberNotFound)
		}

		fine := model.NewFine(request.MemberID, request.Amount, request.Reason, s.now())
		if err := s.fineRepository.Create(ctx, tx, fine); err != nil {
			log.Error("failed to create fine", "error", err)
			return fmt.Errorf("create fine: %w", err)
		}

		log.Info("fine recorded",
			"fine_id", fine.ID,
			"member_id", fine.MemberID,
			"amount", fine.Amount,
		)

		response = toFineResponse(fine)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// UpdateFine applies a partial patch. Fields absent from the request are left
// untouched; present fields were already re-validated at binding.
func (s *FineService) UpdateFine(ctx context.Context, id uint32, request *UpdateFineRequest) (*FineResponse, error) {
	log := logger.FromContext(ctx)

	var response *FineResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		fine, err := s.fineRepository.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("fine not found", "fine_id", id)
				return fmt.Errorf("error %w", ErrFineNotFound)
			}
			log.Error("failed to look up fine", "error", err)
			return fmt.Errorf("find fine: %w", err)
		}

		updates := map[string]interface{}{}
		if request.Amount != nil {
			updates["amount"] = *request.Amount
			fine.Amount = *request.Amount
		}
		if request.Reason != nil {
			updates["reason"] = *request.Reason
			fine.Reason = *request.Reason
		}
		if request.Status != nil {
			updates["status"] = *request.Status
			fine.Status = *request.Status
		}

		if len(updates) > 0 {
			if err := s.fineRepository.UpdateFields(ctx, tx, fine.ID, updates); err != nil {
				log.Error("failed to update fine", "error", err)
				return fmt.Errorf("update fine: %w", err)
			}
		}

		log.Info("fine updated", "fine_id", fine.ID)

		response = toFineResponse(fine)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// MarkPaid flips a fine to paid, independent of any edits.
func (s *FineService) MarkPaid(ctx context.Context, id uint32) (*FineResponse, error) {
	return s.setStatus(ctx, id, model.FineStatusPaid)
}

// MarkUnpaid flips a fine back to unpaid.
func (s *FineService) MarkUnpaid(ctx context.Context, id uint32) (*FineResponse, error) {
	return s.setStatus(ctx, id, model.FineStatusUnpaid)
}

func (s *FineService) setStatus(ctx context.Context, id uint32, status string) (*FineResponse, error) {
	log := logger.FromContext(ctx)

	var response *FineResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		fine, err := s.fineRepository.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("fine not found", "fine_id", id)
				return fmt.Errorf("error %w", ErrFineNotFound)
			}
			log.Error("failed to look up fine", "error", err)
			return fmt.Errorf("find fine: %w", err)
		}

		if err := s.fineRepository.UpdateStatus(ctx, tx, fine.ID, status); err != nil {
			log.Error("failed to set fine status", "error", err)
			return fmt.Errorf("set fine status: %w", err)
		}

		log.Info("fine status changed", "fine_id", fine.ID, "status", status)

		fine.Status = status
		response = toFineResponse(fine)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// DeleteFine removes a fine unconditionally.
func (s *FineService) DeleteFine(ctx context.Context, id uint32) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		fine, err := s.fineRepository.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("fine not found", "fine_id", id)
				return fmt.Errorf("error %w", ErrFineNotFound)
			}
			log.Error("failed to look up fine", "error", err)
			return fmt.Errorf("find fine: %w", err)
		}

		if err := s.fineRepository.Delete(ctx, tx, fine.ID); err != nil {
			log.Error("failed to delete fine", "error", err)
			return fmt.Errorf("delete fine: %w", err)
		}

		log.Info("fine deleted", "fine_id", fine.ID, "member_id", fine.MemberID)
		return nil
	})
}

// ListByMember returns a member's fines newest first, with paid/unpaid totals.
func (s *FineService) ListByMember(ctx context.Context, memberID uint32) (*ListFinesResponse, error) {
	exists, err := s.memberRepository.ExistsByID(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("check member existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("error %w", member.ErrMemberNotFound)
	}

	fineList, err := s.fineRepository.ListByMember(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("list fines: %w", err)
	}

	response := &ListFinesResponse{Fines: make([]FineResponse, 0, len(fineList))}
	for i := range fineList {
		fine := &fineList[i]
		response.Fines = append(response.Fines, *toFineResponse(fine))

		response.Totals.Total += fine.Amount
		if fine.Status == model.FineStatusPaid {
			response.Totals.Paid += fine.Amount
		} else {
			response.Totals.Unpaid += fine.Amount
		}
	}

	return response, nil
}

func toFineResponse(fine *model.Fine) *FineResponse {
	return &FineResponse{
		ID:       fine.ID,
		MemberID: fine.MemberID,
		Amount:   fine.Amount,
		Reason:   fine.Reason,
		Status:   fine.Status,
		IssuedAt: fine.IssuedAt,
	}
}

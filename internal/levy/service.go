package levy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adeyemik/union-register/go-api-server/internal/config"
	"github.com/adeyemik/union-register/go-api-server/internal/member"
	"github.com/adeyemik/union-register/go-api-server/internal/model"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/database"
	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type LevyService struct {
	db               *gorm.DB
	cfg              *config.Config
	levyRepository   *LevyRepository
	memberRepository *member.MemberRepository
	now              func() time.Time
}

func NewLevyService(db *gorm.DB, cfg *config.Config, levyRepository *LevyRepository, memberRepository *member.MemberRepository) *LevyService {
	return &LevyService{
		db:               db,
		cfg:              cfg,
		levyRepository:   levyRepository,
		memberRepository: memberRepository,
		now:              time.Now,
	}
}

// capExceeded builds the rejection carrying the remaining allowance, which
// callers display to the admin entering the payment.
func capExceeded(remaining int64) error {
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Errorf("error %w", sharedError.WithErrorDetails(ErrLevyCapExceeded, map[string]any{
		"remaining": remaining,
	}))
}

// AddPayment records a levy instalment. The cap check and the insert run in
// one transaction: per (member, year) the instalments never sum past the cap,
// and a rejected payment leaves the ledger untouched.
func (s *LevyService) AddPayment(ctx context.Context, request *AddPaymentRequest) (*PaymentResponse, error) {
	log := logger.FromContext(ctx)

	// The binding validator already checks the active-years set; re-check
	// here so the ledger boundary holds without gin in front of it.
	if !s.cfg.IsLevyYear(request.Year) {
		log.Warn("levy year not active", "year", request.Year)
		return nil, fmt.Errorf("error %w", ErrLevyYearInactive)
	}

	var response *PaymentResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.memberRepository.ExistsByID(ctx, tx, request.MemberID)
		if err != nil {
			log.Error("failed to check member existence", "error", err)
			return fmt.Errorf("check member existence: %w", err)
		}
		if !exists {
			log.Warn("levy payment for unknown member", "member_id", request.MemberID)
			return fmt.Errorf("error %w", member.ErrMemberNotFound)
		}

		totalPaid, err := s.levyRepository.TotalPaid(ctx, tx, request.MemberID, request.Year, 0)
		if err != nil {
			log.Error("failed to total levy payments", "error", err)
			return fmt.Errorf("total levy payments: %w", err)
		}

		remaining := s.cfg.Register.LevyCap - totalPaid
		if request.Amount > remaining {
			log.Warn("levy cap exceeded",
				"member_id", request.MemberID,
				"year", request.Year,
				"amount", request.Amount,
				"remaining", remaining,
			)
			return capExceeded(remaining)
		}

		payment := model.NewLevyPayment(request.MemberID, request.Year, request.Amount, s.now())
		if err := s.levyRepository.Create(ctx, tx, payment); err != nil {
			log.Error("failed to create levy payment", "error", err)
			return fmt.Errorf("create levy payment: %w", err)
		}

		log.Info("levy payment recorded",
			"member_id", payment.MemberID,
			"year", payment.Year,
			"amount", payment.Amount,
		)

		response = toPaymentResponse(payment)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// UpdatePayment edits an instalment's amount, re-checking the cap against
// the member's other instalments for the same year.
func (s *LevyService) UpdatePayment(ctx context.Context, id uint32, request *UpdatePaymentRequest) (*PaymentResponse, error) {
	log := logger.FromContext(ctx)

	var response *PaymentResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		payment, err := s.levyRepository.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("levy payment not found", "payment_id", id)
				return fmt.Errorf("error %w", ErrLevyNotFound)
			}
			log.Error("failed to look up levy payment", "error", err)
			return fmt.Errorf("find levy payment: %w", err)
		}

		othersTotal, err := s.levyRepository.TotalPaid(ctx, tx, payment.MemberID, payment.Year, payment.ID)
		if err != nil {
			log.Error("failed to total levy payments", "error", err)
			return fmt.Errorf("total levy payments: %w", err)
		}

		remaining := s.cfg.Register.LevyCap - othersTotal
		if request.Amount > remaining {
			log.Warn("levy cap exceeded on edit",
				"payment_id", payment.ID,
				"amount", request.Amount,
				"remaining", remaining,
			)
			return capExceeded(remaining)
		}

		if err := s.levyRepository.UpdateAmount(ctx, tx, payment.ID, request.Amount); err != nil {
			log.Error("failed to update levy payment", "error", err)
			return fmt.Errorf("update levy payment: %w", err)
		}

		log.Info("levy payment updated", "payment_id", payment.ID, "amount", request.Amount)

		payment.Amount = request.Amount
		response = toPaymentResponse(payment)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// DeletePayment removes an instalment unconditionally, freeing cap headroom
// for future payments in that (member, year).
func (s *LevyService) DeletePayment(ctx context.Context, id uint32) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		payment, err := s.levyRepository.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("levy payment not found", "payment_id", id)
				return fmt.Errorf("error %w", ErrLevyNotFound)
			}
			log.Error("failed to look up levy payment", "error", err)
			return fmt.Errorf("find levy payment: %w", err)
		}

		if err := s.levyRepository.Delete(ctx, tx, payment.ID); err != nil {
			log.Error("failed to delete levy payment", "error", err)
			return fmt.Errorf("delete levy payment: %w", err)
		}

		log.Info("levy payment deleted",
			"payment_id", payment.ID,
			"member_id", payment.MemberID,
			"year", payment.Year,
		)
		return nil
	})
}

// ListByMember returns a member's instalments plus per-year cap summaries.
// year == 0 means all years.
func (s *LevyService) ListByMember(ctx context.Context, memberID uint32, year int) (*ListPaymentsResponse, error) {
	exists, err := s.memberRepository.ExistsByID(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("check member existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("error %w", member.ErrMemberNotFound)
	}

	var payments []model.LevyPayment
	if year != 0 {
		payments, err = s.levyRepository.ListByMemberYear(ctx, s.db, memberID, year)
	} else {
		payments, err = s.levyRepository.ListByMember(ctx, s.db, memberID)
	}
	if err != nil {
		return nil, fmt.Errorf("list levy payments: %w", err)
	}

	response := &ListPaymentsResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}

	totals := make(map[int]int64)
	for i := range payments {
		response.Payments = append(response.Payments, *toPaymentResponse(&payments[i]))
		totals[payments[i].Year] += payments[i].Amount
	}

	years := s.cfg.Register.LevyYears
	if year != 0 {
		years = []int{year}
	}
	for _, y := range years {
		response.Summaries = append(response.Summaries, YearSummary{
			Year:      y,
			TotalPaid: totals[y],
			Remaining: s.cfg.Register.LevyCap - totals[y],
		})
	}

	return response, nil
}

func toPaymentResponse(payment *model.LevyPayment) *PaymentResponse {
	return &PaymentResponse{
		ID:       payment.ID,
		MemberID: payment.MemberID,
		Year:     payment.Year,
		Amount:   payment.Amount,
		PaidAt:   payment.PaidAt,
	}
}

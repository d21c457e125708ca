package dues

import (
	"context"
	"errors"
	"fmt"

	"github.com/adeyemik/union-register/go-api-server/internal/config"
	"github.com/adeyemik/union-register/go-api-server/internal/member"
	"github.com/adeyemik/union-register/go-api-server/internal/model"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/database"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type DuesService struct {
	db               *gorm.DB
	cfg              *config.Config
	duesRepository   *DuesRepository
	memberRepository *member.MemberRepository
}

func NewDuesService(db *gorm.DB, cfg *config.Config, duesRepository *DuesRepository, memberRepository *member.MemberRepository) *DuesService {
	return &DuesService{
		db:               db,
		cfg:              cfg,
		duesRepository:   duesRepository,
		memberRepository: memberRepository,
	}
}

// MarkPaid records a month as paid. Upsert with asymmetric fields: an
// existing (member, year, month) row only has its status flipped to paid -
// the recorded amount is never edited through this operation. A missing row
// is created with the requested amount (or the configured standard due).
func (s *DuesService) MarkPaid(ctx context.Context, request *MarkPaidRequest) (*DuesResponse, error) {
	log := logger.FromContext(ctx)

	if !s.cfg.IsDuesYear(request.Year) {
		log.Warn("dues year out of range", "year", request.Year)
		return nil, fmt.Errorf("error %w", ErrDuesYearUnsupported)
	}

	amount := s.cfg.Register.DefaultDuesAmount
	if request.Amount != nil {
		amount = *request.Amount
	}

	var response *DuesResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.memberRepository.ExistsByID(ctx, tx, request.MemberID)
		if err != nil {
			log.Error("failed to check member existence", "error", err)
			return fmt.Errorf("check member existence: %w", err)
		}
		if !exists {
			log.Warn("dues mark-paid for unknown member", "member_id", request.MemberID)
			return fmt.Errorf("error %w", member.ErrMemberNotFound)
		}

		due, err := s.duesRepository.FindByMemberYearMonth(ctx, tx, request.MemberID, request.Year, request.Month)
		switch {
		case err == nil:
			// Existing record: flip status, keep the recorded amount
			if err := s.duesRepository.UpdateStatus(ctx, tx, due.ID, model.DuesStatusPaid); err != nil {
				log.Error("failed to mark dues paid", "error", err)
				return fmt.Errorf("mark dues paid: %w", err)
			}
			due.Status = model.DuesStatusPaid

		case errors.Is(err, gorm.ErrRecordNotFound):
			due = model.NewMonthlyDue(request.MemberID, request.Year, request.Month, amount)
			if err := s.duesRepository.Create(ctx, tx, due); err != nil {
				log.Error("failed to create dues record", "error", err)
				return fmt.Errorf("create dues record: %w", err)
			}

		default:
			log.Error("failed to look up dues record", "error", err)
			return fmt.Errorf("find dues record: %w", err)
		}

		log.Info("dues marked paid",
			"member_id", due.MemberID,
			"year", due.Year,
			"month", due.Month,
		)

		response = toDuesResponse(due)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// MarkUnpaid flips a record back to pending. The row and its amount survive,
// so marking the month paid again does not require re-entering the amount.
func (s *DuesService) MarkUnpaid(ctx context.Context, id uint32) (*DuesResponse, error) {
	log := logger.FromContext(ctx)

	var response *DuesResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		due, err := s.duesRepository.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("dues record not found", "dues_id", id)
				return fmt.Errorf("error %w", ErrDuesNotFound)
			}
			log.Error("failed to look up dues record", "error", err)
			return fmt.Errorf("find dues record: %w", err)
		}

		if err := s.duesRepository.UpdateStatus(ctx, tx, due.ID, model.DuesStatusPending); err != nil {
			log.Error("failed to mark dues unpaid", "error", err)
			return fmt.Errorf("mark dues unpaid: %w", err)
		}

		log.Info("dues marked unpaid",
			"member_id", due.MemberID,
			"year", due.Year,
			"month", due.Month,
		)

		due.Status = model.DuesStatusPending
		response = toDuesResponse(due)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

func (s *DuesService) ListByMember(ctx context.Context, memberID uint32) (*ListDuesResponse, error) {
	exists, err := s.memberRepository.ExistsByID(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("check member existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("error %w", member.ErrMemberNotFound)
	}

	duesList, err := s.duesRepository.ListByMember(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("list dues: %w", err)
	}

	return toListResponse(duesList), nil
}

// ListAll returns every dues record, optionally filtered to one year or one
// (year, month).
func (s *DuesService) ListAll(ctx context.Context, year, month int) (*ListDuesResponse, error) {
	var (
		duesList []model.MonthlyDue
		err      error
	)

	switch {
	case year != 0 && month != 0:
		duesList, err = s.duesRepository.ListByYearMonth(ctx, s.db, year, month)
	case year != 0:
		duesList, err = s.duesRepository.ListByYear(ctx, s.db, year)
	default:
		duesList, err = s.duesRepository.ListAll(ctx, s.db)
	}
	if err != nil {
		return nil, fmt.Errorf("list dues: %w", err)
	}

	return toListResponse(duesList), nil
}

// MembersWithPaidDues is the aggregated view: every member joined with their
// paid rows across the supported year range.
func (s *DuesService) MembersWithPaidDues(ctx context.Context) (*PaidMembersResponse, error) {
	members, err := s.memberRepository.ListAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	response := &PaidMembersResponse{Members: make([]MemberPaidDuesResponse, 0, len(members))}
	for _, m := range members {
		paid, err := s.duesRepository.ListPaidByMemberInRange(ctx, s.db, m.ID,
			s.cfg.Register.DuesYearFrom, s.cfg.Register.DuesYearTo)
		if err != nil {
			return nil, fmt.Errorf("list paid dues for member %d: %w", m.ID, err)
		}

		row := MemberPaidDuesResponse{
			MemberID: m.ID,
			Name:     m.Name,
			PaidDues: make([]DuesResponse, 0, len(paid)),
		}
		for i := range paid {
			row.PaidDues = append(row.PaidDues, *toDuesResponse(&paid[i]))
		}
		response.Members = append(response.Members, row)
	}

	return response, nil
}

// YearSummary reports paid-record count and the sum of recorded amounts for
// one year.
func (s *DuesService) YearSummary(ctx context.Context, year int) (*YearSummaryResponse, error) {
	if !s.cfg.IsDuesYear(year) {
		return nil, fmt.Errorf("error %w", ErrDuesYearUnsupported)
	}

	paidCount, totalCollected, err := s.duesRepository.AggregateYear(ctx, s.db, year)
	if err != nil {
		return nil, fmt.Errorf("aggregate dues year: %w", err)
	}

	return &YearSummaryResponse{
		Year:           year,
		PaidCount:      paidCount,
		TotalCollected: totalCollected,
	}, nil
}

func toDuesResponse(due *model.MonthlyDue) *DuesResponse {
	return &DuesResponse{
		ID:       due.ID,
		MemberID: due.MemberID,
		Year:     due.Year,
		Month:    due.Month,
		Amount:   due.Amount,
		Status:   due.Status,
	}
}

func toListResponse(duesList []model.MonthlyDue) *ListDuesResponse {
	response := &ListDuesResponse{Dues: make([]DuesResponse, 0, len(duesList))}
	for i := range duesList {
		response.Dues = append(response.Dues, *toDuesResponse(&duesList[i]))
	}
	return response
}

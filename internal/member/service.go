package member

import (
	"context"
	"fmt"
	"strings"

	"github.com/adeyemik/union-register/go-api-server/internal/model"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/database"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
	generateCode     func() (string, error)
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
		generateCode:     GenerateAccessCode,
	}
}

// AddMember admits a new member: name-duplicate check, access-code issuance
// and insert run as one transaction so two concurrent admissions cannot slip
// past the uniqueness checks.
func (s *MemberService) AddMember(ctx context.Context, request *AddMemberRequest) (*AddMemberResponse, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(request.Name)
	normalized := NormalizeName(name)

	var response *AddMemberResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		taken, err := s.memberRepository.NormalizedNameExists(ctx, tx, normalized)
		if err != nil {
			log.Error("failed to check name uniqueness", "error", err)
			return fmt.Errorf("check name uniqueness: %w", err)
		}
		if taken {
			log.Warn("member name already taken", "normalized_name", normalized)
			return fmt.Errorf("error %w", ErrMemberNameTaken)
		}

		code, err := s.issueAccessCode(ctx, tx)
		if err != nil {
			return err
		}

		newMember := model.NewMember(name, normalized, code)
		if err := s.memberRepository.Create(ctx, tx, newMember); err != nil {
			log.Error("failed to create member", "error", err)
			return fmt.Errorf("create member: %w", err)
		}

		log.Info("member admitted",
			"member_id", newMember.ID,
			"access_code", logger.MaskCode(code),
		)

		response = &AddMemberResponse{
			ID:         newMember.ID,
			Name:       newMember.Name,
			AccessCode: newMember.AccessCode,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// issueAccessCode draws random codes until one is free. The loop is capped:
// past maxCodeAttempts the directory is treated as out of codes rather than
// spinning forever.
func (s *MemberService) issueAccessCode(ctx context.Context, tx *gorm.DB) (string, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := s.generateCode()
		if err != nil {
			log.Error("failed to generate access code", "error", err)
			return "", fmt.Errorf("generate access code: %w", err)
		}

		exists, err := s.memberRepository.AccessCodeExists(ctx, tx, code)
		if err != nil {
			log.Error("failed to check access code uniqueness", "error", err)
			return "", fmt.Errorf("check access code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	log.Error("access code space exhausted", "attempts", maxCodeAttempts)
	return "", fmt.Errorf("error %w", ErrCodeSpaceExhausted)
}

// ListMembers returns the public directory listing, most recent first.
func (s *MemberService) ListMembers(ctx context.Context) (*ListMembersResponse, error) {
	members, err := s.memberRepository.ListAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	response := &ListMembersResponse{Members: make([]MemberResponse, 0, len(members))}
	for _, m := range members {
		response.Members = append(response.Members, MemberResponse{
			ID:       m.ID,
			Name:     m.Name,
			IsAdmin:  m.IsAdmin,
			JoinedAt: m.CreatedAt,
		})
	}
	return response, nil
}

// ListMembersAdmin returns the directory with access codes, for admin screens.
func (s *MemberService) ListMembersAdmin(ctx context.Context) (*ListMembersAdminResponse, error) {
	members, err := s.memberRepository.ListAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	response := &ListMembersAdminResponse{Members: make([]AdminMemberResponse, 0, len(members))}
	for _, m := range members {
		response.Members = append(response.Members, AdminMemberResponse{
			ID:         m.ID,
			Name:       m.Name,
			AccessCode: m.AccessCode,
			IsAdmin:    m.IsAdmin,
			JoinedAt:   m.CreatedAt,
		})
	}
	return response, nil
}

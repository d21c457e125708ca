package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adeyemik/union-register/go-api-server/internal/member"
	"github.com/adeyemik/union-register/go-api-server/internal/model"
	"github.com/adeyemik/union-register/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type AuthService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
}

func NewAuthService(db *gorm.DB, memberRepository *member.MemberRepository) *AuthService {
	return &AuthService{
		db:               db,
		memberRepository: memberRepository,
	}
}

// normalizeCode puts a submitted code into issuance form. Both verify paths
// use it: codes are issued uppercase-only, so uppercasing is lossless and
// "q7k2mn" must verify the same as "Q7K2MN".
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// VerifyMember checks a submitted code against the directory. Any member,
// admin or not, passes. The failure response never says whether the code was
// close to a real one.
func (a *AuthService) VerifyMember(ctx context.Context, request *VerifyRequest) (*VerifyMemberResponse, error) {
	log := logger.FromContext(ctx)

	code := normalizeCode(request.AccessCode)

	found, err := a.memberRepository.FindByAccessCode(ctx, a.db, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("member verification failed", "code", logger.MaskCode(code))
			return nil, fmt.Errorf("error %w", ErrInvalidAccessCode)
		}
		log.Error("member verification failed - unexpected error", "error", err)
		return nil, fmt.Errorf("verify member: %w", err)
	}

	log.Info("member verified", "member_id", found.ID)

	return &VerifyMemberResponse{
		Success: true,
		Name:    found.Name,
	}, nil
}

// VerifyAdmin checks a submitted code against the directory and requires the
// admin flag. A non-admin member's code fails identically to an unknown code.
func (a *AuthService) VerifyAdmin(ctx context.Context, request *VerifyRequest) (*VerifyAdminResponse, error) {
	log := logger.FromContext(ctx)

	admin, err := a.AdminByCode(ctx, request.AccessCode)
	if err != nil {
		return nil, err
	}

	log.Info("admin verified", "member_id", admin.ID)

	return &VerifyAdminResponse{
		Success:    true,
		AccessCode: admin.AccessCode,
		Name:       admin.Name,
	}, nil
}

// AdminByCode resolves a code to an admin member. It backs both VerifyAdmin
// and the admin-route middleware.
func (a *AuthService) AdminByCode(ctx context.Context, code string) (*model.Member, error) {
	log := logger.FromContext(ctx)

	normalized := normalizeCode(code)

	found, err := a.memberRepository.FindByAccessCode(ctx, a.db, normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("admin verification failed", "code", logger.MaskCode(normalized))
			return nil, fmt.Errorf("error %w", ErrInvalidAccessCode)
		}
		log.Error("admin verification failed - unexpected error", "error", err)
		return nil, fmt.Errorf("verify admin: %w", err)
	}

	if !found.IsAdmin {
		// Same failure as not-found: don't reveal that the code exists
		log.Warn("admin verification failed - not an admin", "member_id", found.ID)
		return nil, fmt.Errorf("error %w", ErrInvalidAccessCode)
	}

	return found, nil
}

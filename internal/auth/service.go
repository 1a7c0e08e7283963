package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/daonswim/swim-club-api/internal/member"
	"github.com/daonswim/swim-club-api/internal/shared/logger"
	"github.com/daonswim/swim-club-api/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService authenticates members. 등록은 가입 신청 파이프라인에서만
// 일어난다: 공개 회원가입 엔드포인트는 없다. 심사 중(pending) 신청자도
// 로그인해서 진행 상황을 확인할 수 있다.
type AuthService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	tokenManager     token.Manager
}

func NewAuthService(db *gorm.DB, memberRepository *member.MemberRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:               db,
		memberRepository: memberRepository,
		tokenManager:     tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Find member by email (탈퇴 회원 제외)
	m, err := a.memberRepository.FindByEmail(ctx, a.db, request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("로그인 실패 - member email not found", "email", logger.MaskEmail(request.Email))
			return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword) // Security: don't reveal if email exists
		}
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(request.Password)); err != nil {
		log.Warn("로그인 실패 - invalid password", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword)
	}

	// 3. Generate JWT tokens (role claim 포함)
	memberID := strconv.FormatUint(uint64(m.ID), 10)
	accessToken, err := a.tokenManager.GenerateAccessToken(memberID, m.Email, string(m.Role))
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(memberID, m.Email, string(m.Role))
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("로그인 성공", "email", logger.MaskEmail(request.Email), "role", m.Role)

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		MemberID:     m.ID,
		Status:       string(m.Status),
		Role:         string(m.Role),
	}, nil
}

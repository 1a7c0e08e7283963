package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=15"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	MemberID     uint32 `json:"memberId"`
	Status       string `json:"status"` // pending 신청자도 로그인할 수 있으므로 내려준다
	Role         string `json:"role"`
}

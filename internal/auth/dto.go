package auth

type VerifyRequest struct {
	AccessCode string `json:"accessCode" binding:"required,accesscode"`
}

type VerifyMemberResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
}

type VerifyAdminResponse struct {
	Success    bool   `json:"success"`
	AccessCode string `json:"accessCode"`
	Name       string `json:"name"`
}

package member

import "time"

type AddMemberRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

// AddMemberResponse is the only place a member's access code is returned to
// the caller after admission (apart from the admin listing). Record it at
// issuance time.
type AddMemberResponse struct {
	ID         uint32 `json:"id"`
	Name       string `json:"name"`
	AccessCode string `json:"accessCode"`
}

// MemberResponse is the public listing shape. No access codes.
type MemberResponse struct {
	ID       uint32    `json:"id"`
	Name     string    `json:"name"`
	IsAdmin  bool      `json:"isAdmin"`
	JoinedAt time.Time `json:"joinedAt"`
}

// AdminMemberResponse is the admin listing shape, codes included.
type AdminMemberResponse struct {
	ID         uint32    `json:"id"`
	Name       string    `json:"name"`
	AccessCode string    `json:"accessCode"`
	IsAdmin    bool      `json:"isAdmin"`
	JoinedAt   time.Time `json:"joinedAt"`
}

type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

type ListMembersAdminResponse struct {
	Members []AdminMemberResponse `json:"members"`
}

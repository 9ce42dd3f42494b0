package types

import "github.com/naseer617/ta-member-service/internal/models"

// MemberCreateRequest is the POST /members payload. Counters default to
// zero when absent; avatar_url and title are optional.
type MemberCreateRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Login     string  `json:"login" validate:"required"`
	AvatarURL *string `json:"avatar_url"`
	Followers int     `json:"followers" validate:"gte=0"`
	Following int     `json:"following" validate:"gte=0"`
	Title     *string `json:"title"`
	Email     string  `json:"email" validate:"required,email"`
}

// Model maps the validated payload to a fresh member row.
func (r MemberCreateRequest) Model() models.Member {
	return models.Member{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Login:     r.Login,
		AvatarURL: r.AvatarURL,
		Followers: r.Followers,
		Following: r.Following,
		Title:     r.Title,
		Email:     r.Email,
	}
}

package response

import (
	"time"

	"account-insights/internal/data/entity"
)

type ProfileResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	City      *string   `json:"city"`
	Country   *string   `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileToResponse merges the user with its optional profile row
func ProfileToResponse(user *entity.User, profile *entity.Profile) ProfileResponse {
	resp := ProfileResponse{
		UserID:    user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}

	if profile != nil {
		resp.Phone = profile.Phone
		resp.City = profile.City
		resp.Country = profile.Country
	}

	return resp
}

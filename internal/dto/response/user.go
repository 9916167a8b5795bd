package response

import "seat-booking/internal/data/entity"

// UserResponse never carries the credential.
type UserResponse struct {
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}

func UsersToResponse(users []entity.User) map[string]UserResponse {
	out := make(map[string]UserResponse, len(users))
	for _, u := range users {
		out[u.Username] = UserResponse{Name: u.Name, IsAdmin: u.IsAdmin}
	}
	return out
}

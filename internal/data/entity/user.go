package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Username     string `json:"-"`
	Name         string `json:"name"`
	PasswordHash string `json:"password"`
	IsAdmin      bool   `json:"isAdmin"`
}

func (u *User) Role() UserRole {
	return u.Identity().Role()
}

func (u *User) Identity() Identity {
	return Identity{
		Username: u.Username,
		Name:     u.Name,
		IsAdmin:  u.IsAdmin,
	}
}

// Identity is the authenticated caller as seen by the engine.
type Identity struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (i Identity) Role() UserRole {
	if i.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

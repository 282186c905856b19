package entity

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an account record. Password is demo-grade plaintext and is
// never serialized in responses.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	Roles     []string  `json:"roles"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserPatch carries a partial profile update.
type UserPatch struct {
	Email   *string `json:"email"`
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Role    *Role   `json:"role"`
}

func (p *UserPatch) IsEmpty() bool {
	return p.Email == nil && p.Name == nil && p.Phone == nil &&
		p.Address == nil && p.Role == nil
}

// Apply merges the patch into u. Changing the role also rewrites the
// parallel roles list.
func (p *UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Role != nil {
		u.Role = *p.Role
		u.Roles = []string{string(*p.Role)}
	}
}

// SessionUser is the authenticated actor attached to a request.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

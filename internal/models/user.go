package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the clinic function of a user account.
type Role string

const (
	RoleAdmin        Role = "Admin"
	RoleDentist      Role = "Dentista"
	RoleReceptionist Role = "Recepcionista"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDentist, RoleReceptionist:
		return true
	}
	return false
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	Role     Role               `bson:"role" json:"role"`
}

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Identity returns the public identity of the user.
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID.Hex(), Username: u.Username, Role: u.Role}
}

// UserFields is the body of a user creation request.
type UserFields struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"role" binding:"required"`
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Identity is the acting principal resolved by the authentication middleware.
type Identity struct {
	ID        primitive.ObjectID
	Email     string
	Name      string
	Role      Role
	Directory string
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

func (i *Identity) IsDoctor() bool {
	return i != nil && i.Role == RoleDoctor
}

func (i *Identity) HasRole(roles ...Role) bool {
	if i == nil {
		return false
	}
	for _, role := range roles {
		if i.Role == role {
			return true
		}
	}
	return false
}

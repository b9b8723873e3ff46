// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserStatus describes the account lifecycle state.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusBanned   UserStatus = "banned"
)

// UserRole describes the authorization role attached to an account.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleStaff UserRole = "staff"
	RoleAdmin UserRole = "admin"
)

// User is the account record. CID is the application-level customer
// identifier and the key for every session artifact; it is distinct
// from the storage-internal document id.
type User struct {
	CID        int64      `bson:"cid" json:"cid"`
	Image      string     `bson:"image,omitempty" json:"image,omitempty"`
	FirstName  string     `bson:"firstName" json:"firstName"`
	LastName   string     `bson:"lastName" json:"lastName"`
	Email      string     `bson:"email" json:"email"`
	Password   string     `bson:"password" json:"-"`
	Phone      string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Address    string     `bson:"address,omitempty" json:"address,omitempty"`
	IsVerified bool       `bson:"is_verified" json:"is_verified"`
	Status     UserStatus `bson:"status" json:"status"`
	Role       UserRole   `bson:"role" json:"role"`
	CreatedAt  time.Time  `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updatedAt,omitempty" json:"updatedAt"`
}

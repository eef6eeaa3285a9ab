package domain

import "strings"

// ShipperRole is the backend role identifier of delivery staff accounts.
const ShipperRole = 4

type User struct {
	ID       int64  `json:"id"`
	Fullname string `json:"fullname"`
	UserName string `json:"userName"`
	Role     int    `json:"role"`
}

// DisplayName prefers the full name and falls back to the login name.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.Fullname); name != "" {
		return name
	}
	return u.UserName
}

type Shipper struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DefaultShippers is served whenever the user list cannot provide shipper accounts,
// so the assignment selector is never empty.
func DefaultShippers() []Shipper {
	return []Shipper{
		{ID: 1, Name: "Nguyễn Văn A"},
		{ID: 2, Name: "Trần Thị B"},
		{ID: 3, Name: "Lê Văn C"},
	}
}

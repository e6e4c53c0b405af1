package entities

import "github.com/matrizimoveis/matriz_portal/utils/auth/common"

// Session is the outcome of a successful login
type Session struct {
	Email string
	Role  common.Role
}

// Credentials is the login form
type Credentials struct {
	Email    string `form:"email" validate:"required,contains=@"`
	Password string `form:"password" validate:"required"`
}

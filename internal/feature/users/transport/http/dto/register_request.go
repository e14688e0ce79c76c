// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for POST /v1/user/.
// All four fields are required; email format is validated by Gin's binding.
type RegisterReq struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

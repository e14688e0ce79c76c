// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// TokenReq represents the request body for POST /v1/token/.
type TokenReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

package dto

// UpdateUserReq represents the request body for PUT/PATCH on a user record.
// Only these three fields are client-mutable; the handler rejects the entire
// request if the raw body carries any other key. Nil means "leave unchanged".
type UpdateUserReq struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Password  *string `json:"password"`
}

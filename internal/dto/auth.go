package dto

// RegisterRequest is the JSON body for POST /register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=120"`
	Password string `json:"password" binding:"required,min=1"`
}

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is returned by POST /register.
type RegisterResponse struct {
	ID int64 `json:"id"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Username string `json:"username"`
}

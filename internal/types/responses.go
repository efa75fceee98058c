package types

type UserResponse struct {
	ID                uint   `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	MustResetPassword bool   `json:"must_reset_password"`
}

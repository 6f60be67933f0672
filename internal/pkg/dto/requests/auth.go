package requests

type SignupDoctor struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Phone    *string `json:"phone"`
}

type LoginDoctor struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

package responses

type LoginDoctor struct {
	Token string `json:"token"`
}

type Doctor struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

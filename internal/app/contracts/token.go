package contracts

type TokenManager interface {
	CreateToken(doctorID string) (string, error)
	// VerifyToken returns the doctor id carried by a valid, unexpired token.
	VerifyToken(token string) (string, error)
}

package schemas

// User is the authenticated principal derived from a validated token.
type User struct {
	Email     string `json:"email" doc:"Email address of the principal"`
	TokenID   string `json:"-"`
	ExpiresAt int64  `json:"expires_at" doc:"Unix time at which the token expires"`
}

type MeResponse struct {
	Body struct {
		User User `json:"user"`
	}
}

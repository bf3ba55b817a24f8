package schemas

type LoginRequest struct {
	Body struct {
		Email    string `json:"email" doc:"Operator email" example:"admin@example.com"`
		Password string `json:"password" doc:"Operator password"`
	}
}

type LoginResponse struct {
	Body struct {
		Token string `json:"token" doc:"Bearer token for the protected endpoints"`
	}
}

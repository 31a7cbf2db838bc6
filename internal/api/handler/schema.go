package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth / user requests ---

// Field bounds mirror the registration contract: short usernames and names
// are rejected, passwords are length-bounded before hashing.
type createUserRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Username    string `json:"username"     validate:"required,min=3,max=32"`
	FirstName   string `json:"first_name"   validate:"required,min=3,max=32"`
	LastName    string `json:"last_name"    validate:"required,min=3,max=32"`
	Password    string `json:"password"     validate:"required,min=4,max=20"`
	Role        string `json:"role"         validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type changePasswordRequest struct {
	Password    string `json:"password"     validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4,max=20"`
}

type changePhoneNumberRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// tokenResponse is the credential-exchange result at POST /token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --- Todo requests / responses ---

type todoRequest struct {
	Title       string `json:"title"       validate:"required,min=3,max=120"`
	Description string `json:"description" validate:"required,min=3,max=500"`
	Priority    int    `json:"priority"    validate:"required,gt=0,lt=6"`
	Complete    bool   `json:"complete"`
}

type todoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
}

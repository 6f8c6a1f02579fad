package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required,min=4"`
}

// userResponse is the public profile: never includes the password hash.
type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type logoutResponse struct {
	Message string `json:"message"`
}

// --- Tasks ---

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=150"`
	Description string `json:"description" validate:"required,max=500"`
}

// updateTaskRequest is a partial patch: absent fields stay untouched.
type updateTaskRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitempty,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Completed   *bool   `json:"completed,omitempty"`
}

type taskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type deleteTaskResponse struct {
	Message string `json:"message"`
}

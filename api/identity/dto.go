package identity

// AuthRequest carries the credentials for register and login.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Escapes         int    `json:"escapes"`
	Captures        int    `json:"captures"`
	BestEscapeTicks int    `json:"best_escape_ticks"`
	Token           string `json:"token"`
}

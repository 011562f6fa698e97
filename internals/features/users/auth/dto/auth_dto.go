package dto

// RegisterRequest body untuk POST /auth/register.
// Role bersifat permintaan; role efektif diputuskan RolePolicy
// (UI hanya menampilkan hasilnya, tidak menghitung sendiri).
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=student teacher admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// AuthResponse dikembalikan register/login.
type AuthResponse struct {
	AccessToken  string      `json:"access_token,omitempty"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	User         interface{} `json:"user"`
}

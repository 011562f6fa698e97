package dto

// UpdateMeRequest partial update untuk profil sendiri.
// Email & role tidak bisa diubah lewat sini.
type UpdateMeRequest struct {
	UserName  *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

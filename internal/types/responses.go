package types

type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

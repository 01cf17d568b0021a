package dto

import "github.com/RoyceAzure/lab/ordercenter/internal/domain/model"

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

type TokenInfo struct {
	Value     string `json:"value"`
	ExpiresIn int    `json:"expires_in"`
}

type LoginResponse struct {
	AccessToken TokenInfo `json:"access_token"`
	User        UserDTO   `json:"user"`
}

type UserDTO struct {
	UserID      uint   `json:"user_id"`
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email"`
	UserAddress string `json:"user_address"`
}

func ConvertUserToDTO(user *model.User) UserDTO {
	return UserDTO{
		UserID:      user.UserID,
		UserName:    user.UserName,
		UserEmail:   user.UserEmail,
		UserAddress: user.UserAddress,
	}
}

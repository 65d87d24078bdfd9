package dto

import "tripgate/internal/domains/session/model"

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresIn   int64      `json:"expires_in"`
	User        model.User `json:"user"`
	UserType    string     `json:"user_type"`
}

type CurrentUserResponse struct {
	User     model.User `json:"user"`
	UserType string     `json:"user_type"`
}

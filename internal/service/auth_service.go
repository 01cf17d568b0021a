package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/ordercenter/internal/constants"
	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/errs"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/token"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errs.New(errs.UnauthenticatedCode, "invalid email or password")

type LoginResult struct {
	AccessToken string
	Payload     *token.Payload
	User        *model.User
}

type IAuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type AuthService struct {
	userService IUserService
	tokenMaker  token.Maker
}

func NewAuthService(userService IUserService, tokenMaker token.Maker) *AuthService {
	return &AuthService{userService: userService, tokenMaker: tokenMaker}
}

// Login 帳密登入
// user不存在與密碼錯誤回一樣的錯, 不讓呼叫端探測email是否註冊過
func (a *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := a.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotExist) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, payload, err := a.tokenMaker.CreateToken(
		user.UserID,
		user.UserEmail,
		time.Duration(constants.AccessTokenDuration)*time.Hour,
	)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: accessToken,
		Payload:     payload,
		User:        user,
	}, nil
}

var _ IAuthService = (*AuthService)(nil)

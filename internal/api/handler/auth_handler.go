package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/api/dto"
	"github.com/RoyceAzure/lab/ordercenter/internal/constants"
	"github.com/RoyceAzure/lab/ordercenter/internal/errs"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
	"github.com/RoyceAzure/lab/ordercenter/internal/util"
)

type AuthHandler struct {
	authService service.IAuthService
	userService service.IUserService
}

func NewAuthHandler(authService service.IAuthService, userService service.IUserService) *AuthHandler {
	if authService == nil || userService == nil {
		panic("authService and userService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// @Summary email and password login
// @use email加password登入, 成功回傳paseto token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginInfo body dto.LoginDTO true "email and password"
// @Success 200 {object} api.Response{data=dto.LoginResponse} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, int(errs.BadRequestCode), nil, errs.ErrStrMap[errs.BadRequestCode])
		return
	}

	loginRes, err := h.authService.Login(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     loginRes.AccessToken,
			ExpiresIn: int(constants.AccessTokenDuration) * 3600,
		},
		User: dto.ConvertUserToDTO(loginRes.User),
	}, nil)
}

// @Summary register new user
// @use 註冊新user, email重複回400
// @Tags auth
// @Accept json
// @Produce json
// @Param registerInfo body dto.RegisterDTO true "registration info"
// @Success 200 {object} api.Response{data=dto.UserDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&registerDTO); err != nil {
		api.ErrorJSON(w, int(errs.BadRequestCode), nil, errs.ErrStrMap[errs.BadRequestCode])
		return
	}

	if registerDTO.Email == "" || registerDTO.Password == "" {
		api.ErrorJSON(w, int(errs.BadRequestCode), errs.New(errs.BadRequestCode, "email and password are required"), errs.ErrStrMap[errs.BadRequestCode])
		return
	}

	user, err := h.userService.CreateUser(r.Context(), registerDTO.Name, registerDTO.Email, registerDTO.Password, registerDTO.Address)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertUserToDTO(user), nil)
}

// @Summary get current login user info
// @use 回傳目前登入的user
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} api.Response{data=dto.UserDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	user, err := h.userService.GetUserByID(r.Context(), payload.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertUserToDTO(user), nil)
}

package errs

import "fmt"

type Code int

const (
	BadRequestCode      Code = 400
	UnauthenticatedCode Code = 401
	UnauthorizedCode    Code = 403
	NotFoundCode        Code = 404
	TooManyRequestCode  Code = 429
	InternalErrorCode   Code = 500
)

var ErrStrMap = map[Code]string{
	BadRequestCode:      "bad request",
	UnauthenticatedCode: "unauthenticated",
	UnauthorizedCode:    "unauthorized",
	NotFoundCode:        "not found",
	TooManyRequestCode:  "too many requests",
	InternalErrorCode:   "internal server error",
}

// CodeError 帶有http status code的錯誤
// service層直接回傳, handler層根據Code決定response status
type CodeError struct {
	Code Code
	Msg  string
	Err  error
}

func (e *CodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

func New(code Code, msg string) *CodeError {
	return &CodeError{Code: code, Msg: msg}
}

func Wrap(code Code, msg string, err error) *CodeError {
	return &CodeError{Code: code, Msg: msg, Err: err}
}

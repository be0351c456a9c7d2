package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// LoginRequest is the login form. Identifier is an email or a login id.
type LoginRequest struct {
	Identifier string `form:"identifier" validate:"required"`
	Password   string `form:"password" validate:"required"`
}

// SignUpRequest is the sign-up form.
type SignUpRequest struct {
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
}

// validationMessage turns the first failed rule into the sentence shown on the form.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "入力内容を確認してください"
	}
	switch errs[0].Tag() {
	case "required":
		return "未入力の項目があります"
	case "email":
		return "メールアドレスの形式が正しくありません"
	case "min":
		return "パスワードは8文字以上で入力してください"
	case "eqfield":
		return "パスワードが一致しません"
	default:
		return "入力内容を確認してください"
	}
}

package apperror

import "fmt"

// AppError adalah error yang aman dikirim ke client.
type AppError struct {
	Code       string // kode stabil, lihat codes.go
	Message    string
	HTTPStatus int
	Err        error // penyebab asli, tidak pernah dikirim ke client
	Details    any   // mis. daftar field yang gagal validasi
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is membuat salinan dari WithDetails tetap cocok dengan sentinel asalnya.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || t == nil {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message && e.HTTPStatus == t.HTTPStatus
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap returns nil when err is nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithDetails returns a copy carrying details; sentinels stay untouched.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

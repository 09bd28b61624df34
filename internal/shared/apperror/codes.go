package apperror

// Kode error stabil yang dikirim ke client. Satu kode per jenis error;
// pesan boleh berubah, kode tidak.
const (
	// validasi input, termasuk hasil binding
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	// unique constraint dan protect-on-delete
	CodeConflict = "CONFLICT"

	CodeUnauthorized = "UNAUTHORIZED"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeForbidden    = "FORBIDDEN"

	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	// idempotency key yang sama masih diproses
	CodeProcessing = "PROCESSING"

	CodeInternalError = "INTERNAL_ERROR"
)

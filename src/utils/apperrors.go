package utils

// Error codes returned in the response envelope. Clients branch on these,
// not on HTTP status.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeRequestNotFound   = "REQUEST_NOT_FOUND"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeInvalidReference  = "INVALID_REFERENCE"
	CodeForbidden         = "FORBIDDEN"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeOwnerEmailMissing = "USER_EMAIL_NOT_FOUND"
	CodeStorageError      = "STORAGE_ERROR"
	CodeInternalError     = "INTERNAL_ERROR"

	CodeEmailExists        = "EMAIL_EXISTS"
	CodeDomainRefused      = "DOMAIN_REFUSED"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailNotVerified   = "EMAIL_NOT_VERIFIED"
	CodeAccountNotApproved = "ACCOUNT_NOT_APPROVED"
	CodeAccountInactive    = "ACCOUNT_INACTIVE"
	CodeEmailNotFound      = "EMAIL_NOT_FOUND"
	CodeAlreadyVerified    = "EMAIL_ALREADY_VERIFIED"

	CodeInvalidAnswer = "INVALID_ANSWER"
	CodeNoIdentity    = "NO_IDENTITY"
	CodeEmptyQuery    = "EMPTY_QUERY"
)

// AppError carries an envelope error code plus bilingual messages so the
// controller layer can render the uniform failure envelope without guessing.
type AppError struct {
	Code      string
	MessageEn string
	MessageAr string
}

func (e *AppError) Error() string {
	return e.MessageEn
}

func NewAppError(code, messageEn, messageAr string) *AppError {
	if messageAr == "" {
		messageAr = messageEn
	}
	return &AppError{Code: code, MessageEn: messageEn, MessageAr: messageAr}
}

func NotFoundError(messageEn, messageAr string) *AppError {
	return NewAppError(CodeNotFound, messageEn, messageAr)
}

func InvalidReferenceError(messageEn, messageAr string) *AppError {
	return NewAppError(CodeInvalidReference, messageEn, messageAr)
}

func ForbiddenError(messageEn, messageAr string) *AppError {
	return NewAppError(CodeForbidden, messageEn, messageAr)
}

func StorageError(messageEn, messageAr string) *AppError {
	return NewAppError(CodeStorageError, messageEn, messageAr)
}

func InternalError(messageEn, messageAr string) *AppError {
	return NewAppError(CodeInternalError, messageEn, messageAr)
}

package usecase


// Error codes surfaced at the orchestration boundary. Handlers map these
// onto HTTP statuses; nothing below this layer retries automatically.
const (
	CodeAuthRequired = "AUTH_REQUIRED"
	CodeNetwork      = "NETWORK_ERROR"
	CodeFormat       = "FORMAT_ERROR"
	CodePersist      = "PERSIST_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeSync         = "SYNC_ERROR"
	CodeLoad         = "LOAD_ERROR"
)


type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}


func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}


type TechnicalError struct {
	Code    string
	Message string
	Cause   error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Cause
}


func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}


func NewAuthRequiredError(msg string) *DomainError {
	return &DomainError{Code: CodeAuthRequired, Message: msg}
}

func NewFormatError(msg string) *DomainError {
	return &DomainError{Code: CodeFormat, Message: msg}
}

func NewNotFoundError(msg string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: msg}
}

func NewPersistError(msg string, cause error) *TechnicalError {
	return &TechnicalError{Code: CodePersist, Message: msg, Cause: cause}
}

func NewSyncError(msg string, cause error) *TechnicalError {
	return &TechnicalError{Code: CodeSync, Message: msg, Cause: cause}
}


// ErrorCode extracts the taxonomy code, or "" for untyped errors.
func ErrorCode(err error) string {
	if de, ok := err.(*DomainError); ok {
		return de.Code
	}
	if te, ok := err.(*TechnicalError); ok {
		return te.Code
	}
	return ""
}

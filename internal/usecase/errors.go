package usecase

import "errors"

const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidFileType = "INVALID_FILE_TYPE"
	CodeInvalidCSV      = "INVALID_CSV"
	CodeNoOffer         = "NO_OFFER"
	CodeNoLeads         = "NO_LEADS"
	CodeNoResults       = "NO_RESULTS"
	CodeCancelled       = "SCORING_CANCELLED"
)

// DomainError is caused by the caller: bad input or calls out of order.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is an infrastructure failure the caller cannot fix.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

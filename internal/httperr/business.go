package httperr

import "errors"

// Business error codes surfaced as 400 responses.
const (
	CodeInsufficientStock  = "insufficient_stock"
	CodeInvalidTransition  = "invalid_status_transition"
	CodeInvalidStatus      = "invalid_status"
	CodeInvalidRepairData  = "invalid_repair_data"
	CodeInvalidStockAction = "invalid_stock_action"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" when err is not
// one.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

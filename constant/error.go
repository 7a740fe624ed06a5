package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrPhoneExists
	ErrInvalidPassword
	ErrInvalidPhone
	ErrInvalidJoinYear
	ErrUnknownWilaya
	ErrSequenceExhausted
	ErrOTPNotFound
	ErrOTPExpired
	ErrOTPAttemptsExceeded
	ErrOTPIncorrect
	ErrOTPNotVerified
	ErrMemberSuspended
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrForbidden:           "forbidden",
	ErrPhoneExists:         "phone already registered",
	ErrInvalidPassword:     "password invalid",
	ErrInvalidPhone:        "invalid phone number format",
	ErrInvalidJoinYear:     "first join year out of range",
	ErrUnknownWilaya:       "unknown wilaya",
	ErrSequenceExhausted:   "membership number capacity exhausted for wilaya and year",
	ErrOTPNotFound:         "no code was sent, request a new one",
	ErrOTPExpired:          "code expired, request a new one",
	ErrOTPAttemptsExceeded: "attempt limit exceeded, request a new code",
	ErrOTPIncorrect:        "incorrect code",
	ErrOTPNotVerified:      "phone number not verified",
	ErrMemberSuspended:     "membership suspended",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrForbidden:           http.StatusForbidden,
	ErrPhoneExists:         http.StatusBadRequest,
	ErrInvalidPassword:     http.StatusBadRequest,
	ErrInvalidPhone:        http.StatusBadRequest,
	ErrInvalidJoinYear:     http.StatusBadRequest,
	ErrUnknownWilaya:       http.StatusBadRequest,
	ErrSequenceExhausted:   http.StatusConflict,
	ErrOTPNotFound:         http.StatusBadRequest,
	ErrOTPExpired:          http.StatusBadRequest,
	ErrOTPAttemptsExceeded: http.StatusBadRequest,
	ErrOTPIncorrect:        http.StatusBadRequest,
	ErrOTPNotVerified:      http.StatusBadRequest,
	ErrMemberSuspended:     http.StatusForbidden,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrForbidden:           "0005",
	ErrPhoneExists:         "0006",
	ErrInvalidPassword:     "0007",
	ErrInvalidPhone:        "0008",
	ErrInvalidJoinYear:     "0009",
	ErrUnknownWilaya:       "0010",
	ErrSequenceExhausted:   "0011",
	ErrOTPNotFound:         "0012",
	ErrOTPExpired:          "0013",
	ErrOTPAttemptsExceeded: "0014",
	ErrOTPIncorrect:        "0015",
	ErrOTPNotVerified:      "0016",
	ErrMemberSuspended:     "0017",
}

package constant

type OTPPurpose string

const (
	OTPPurposeRegistration  OTPPurpose = "registration"
	OTPPurposePasswordReset OTPPurpose = "password_reset"
	OTPPurposePhoneChange   OTPPurpose = "phone_change"
)

const (
	OTPMaxAttempts = 5
	OTPCodeMin     = 100000
	OTPCodeMax     = 999999
)

func (p OTPPurpose) Valid() bool {
	switch p {
	case OTPPurposeRegistration, OTPPurposePasswordReset, OTPPurposePhoneChange:
		return true
	}
	return false
}

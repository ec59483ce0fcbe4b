package models

type VerificationStatus string

const (
	StatusRequested VerificationStatus = "requested"
	StatusVerified  VerificationStatus = "verified"
	StatusRejected  VerificationStatus = "rejected"
	StatusHidden    VerificationStatus = "hidden"
)

// Valid reports whether s is one of the known workflow states.
func (s VerificationStatus) Valid() bool {
	switch s {
	case StatusRequested, StatusVerified, StatusRejected, StatusHidden:
		return true
	}
	return false
}

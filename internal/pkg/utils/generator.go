package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"aushealthsim/internal/pkg/constvars"
)

func randomDigits(length int) (string, error) {
	const digits = "0123456789"
	max := big.NewInt(int64(len(digits)))

	out := make([]byte, length)
	for i := range out {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = digits[num.Int64()]
	}

	return string(out), nil
}

func randomIndex(length int) (int, error) {
	num, err := rand.Int(rand.Reader, big.NewInt(int64(length)))
	if err != nil {
		return 0, err
	}
	return int(num.Int64()), nil
}

// GenerateClaimNumber builds a claim number carrying the given date,
// e.g. CL-20230515-12345.
func GenerateClaimNumber(asOf time.Time) (string, error) {
	digits, err := randomDigits(constvars.ClaimNumberDigits)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(constvars.ClaimNumberFormat, asOf.Format(constvars.CompactDateFormat), digits), nil
}

// GeneratePaymentReference builds a payment reference carrying the given
// date, e.g. PMT-20230515-09876.
func GeneratePaymentReference(asOf time.Time) (string, error) {
	digits, err := randomDigits(constvars.PaymentReferenceDigits)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(constvars.PaymentReferenceFormat, asOf.Format(constvars.CompactDateFormat), digits), nil
}

// GeneratePolicyNumber builds a policy number with a random state code,
// e.g. POL-NSW-123456.
func GeneratePolicyNumber() (string, error) {
	states := make([]string, 0, len(constvars.States))
	for code := range constvars.States {
		states = append(states, code)
	}
	idx, err := randomIndex(len(states))
	if err != nil {
		return "", err
	}
	digits, err := randomDigits(constvars.PolicyNumberDigits)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(constvars.PolicyNumberFormat, states[idx], digits), nil
}

// GenerateProviderNumber builds a provider number of six digits and one
// uppercase letter, e.g. 123456A.
func GenerateProviderNumber() (string, error) {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits, err := randomDigits(constvars.ProviderNumberDigits)
	if err != nil {
		return "", err
	}
	idx, err := randomIndex(len(letters))
	if err != nil {
		return "", err
	}
	return digits + string(letters[idx]), nil
}

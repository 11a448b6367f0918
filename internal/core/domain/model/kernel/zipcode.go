package kernel

import (
	"strconv"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// zipCodeLength is the number of digits in a US ZIP code.
const zipCodeLength = 5

// ErrZipCodeIsNotConstructed is returned when attempting to use an improperly
// initialized ZipCode. ZipCodes must be created via NewZipCode.
var ErrZipCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"zip code must be created via NewZipCode constructor")

// ZipCode represents a five-digit US postal code.
// ZipCode is an immutable value object. The zero value is invalid and will
// fail validation - use NewZipCode to create instances.
//
// Example:
//
//	zip, err := kernel.NewZipCode("94016")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(zip) // Output: 94016
type ZipCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewZipCode creates a ZipCode from its string form. The value must be
// exactly five ASCII digits.
//
// Returns:
//   - ZipCode: A valid zip code instance
//   - error: Validation error if the value is empty or malformed
func NewZipCode(value string) (ZipCode, error) {
	zip := ZipCode{
		guard: guard.NewConstructorGuard(),
	}

	if err := zip.setValue(value); err != nil {
		return ZipCode{}, err
	}

	return zip, nil
}

// Validate checks if the ZipCode was properly constructed using NewZipCode.
// The zero value is invalid and fails this validation.
func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}

// String returns the five-digit string form of the zip code.
// This method implements the fmt.Stringer interface.
func (z ZipCode) String() string {
	return z.value
}

// Prefix3 returns the leading three digits as an integer. The three-digit
// prefix identifies the sectional center facility and is what the tax tables
// key on.
//
// Example:
//
//	zip, _ := kernel.NewZipCode("94016")
//	zip.Prefix3() // 940
func (z ZipCode) Prefix3() int {
	if z.value == "" {
		return 0
	}
	prefix, _ := strconv.Atoi(z.value[:3])
	return prefix
}

// IsEqual compares two zip codes for equality. Both values must be properly
// constructed for the comparison to succeed.
func (z ZipCode) IsEqual(other ZipCode) (bool, error) {
	if err := z.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return z.value == other.value, nil
}

// setValue sets the zip code string with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (z *ZipCode) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("zipCode")
	}
	if len(value) != zipCodeLength {
		return errs.NewValueIsInvalidError("zipCode")
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return errs.NewValueIsInvalidError("zipCode")
		}
	}

	z.value = value
	return nil
}

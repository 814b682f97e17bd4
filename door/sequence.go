package door

import (
	"fmt"
	"strconv"
	"strings"
)

// SequenceValue returns the numeric value embedded in a door code:
// the digits before the trailing 'A' presses, leading zeros ignored.
// "029A" → 29. Codes that leave nothing parsable return ErrBadSequence.
func SequenceValue(sequence string) (uint64, error) {
	digits := strings.TrimRight(sequence, "A")
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadSequence, sequence)
	}

	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadSequence, sequence)
	}

	return value, nil
}

package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hakaku/arenaevents/errors"
)

// Host options come as free text, e.g. "-k(5) -s(1,2,3) -m".
// A valued option is "-x(value)", a boolean option is a bare "-x".
// Values are free text capped at maxOptionValue characters; an option
// whose bracket never closes within the cap aborts session creation
// rather than defaulting.
const maxOptionValue = 64

const maxShipListLen = 15

// Option extracts the value of a "-x(value)" option. The second return
// reports presence: an absent option is not an error, a present but
// malformed one is.
func Option(raw string, letter byte) (string, bool, error) {
	search := fmt.Sprintf("-%c(", letter)
	idx := strings.Index(raw, search)
	if idx < 0 {
		return "", false, nil
	}
	rest := raw[idx+len(search):]
	end := strings.IndexByte(rest, ')')
	if end < 0 || end > maxOptionValue {
		return "", true, fmt.Errorf("-%c: %w", letter, errors.ErrOptionUnterminated)
	}
	return rest[:end], true, nil
}

// Flag reports whether the bare "-x" form is present.
func Flag(raw string, letter byte) bool {
	return strings.Contains(raw, fmt.Sprintf("-%c", letter))
}

// NumericOption parses a required "-x(n)" option and enforces the
// variant's range. Absence, non-numeric text and out-of-range values
// are all abort conditions for the caller.
func NumericOption(raw string, letter byte, min, max int) (int, error) {
	value, present, err := Option(raw, letter)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, fmt.Errorf("-%c: %w", letter, errors.ErrOptionMissing)
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("-%c(%s): %w", letter, value, errors.ErrOptionNotNumeric)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("-%c(%d) not in %d..%d: %w", letter, n, min, max, errors.ErrOptionOutOfRange)
	}
	return n, nil
}

// OptionalNumericOption is NumericOption for options that may be
// absent: absence returns nil, presence is validated the same way.
func OptionalNumericOption(raw string, letter byte, min, max int) (*int, error) {
	if _, present, _ := Option(raw, letter); !present {
		return nil, nil
	}
	n, err := NumericOption(raw, letter, min, max)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ParseShipList parses a "-s" value such as "1,4,5" into the set of
// legal ships. The first ship listed doubles as the reassignment
// default. Validation matches the reference rules: an even total
// length, more than maxShipListLen characters, a non-digit token or a
// ship number outside 1-8 all abort.
//
// The reference iterated characters with a dead separator check; the
// loop below splits on commas explicitly instead and keeps the same
// accept/reject surface for well-formed input.
func ParseShipList(value string) (ShipSet, ShipID, error) {
	if len(value) == 0 {
		return 0, 0, fmt.Errorf("empty ship list: %w", errors.ErrBadShipList)
	}
	if len(value)%2 == 0 || len(value) > maxShipListLen {
		return 0, 0, fmt.Errorf("ship list %q: %w", value, errors.ErrBadShipList)
	}

	var set ShipSet
	defaultShip := ShipID(-1)
	for _, token := range strings.Split(value, ",") {
		if len(token) != 1 || token[0] < '0' || token[0] > '9' {
			return 0, 0, fmt.Errorf("ship token %q: %w", token, errors.ErrBadShipList)
		}
		ship := ShipID(int(token[0]-'0') - 1)
		if !ship.Valid() {
			return 0, 0, fmt.Errorf("ship %s out of range: %w", token, errors.ErrBadShipList)
		}
		set.Add(ship)
		if defaultShip < 0 {
			defaultShip = ship
		}
	}
	return set, defaultShip, nil
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/hakaku/arenaevents/errors"
)

func TestOption_PresentWithValue(t *testing.T) {
	req := require.New(t)

	value, present, err := Option("-k(5) -s(1,2,3)", 'k')

	req.NoError(err)
	req.True(present)
	req.Equal("5", value)
}

func TestOption_BareFlagIsNotValued(t *testing.T) {
	req := require.New(t)

	_, present, err := Option("-m -k(5)", 'm')

	req.NoError(err)
	req.False(present)
}

func TestOption_Absent(t *testing.T) {
	req := require.New(t)

	_, present, err := Option("-k(5)", 'j')

	req.NoError(err)
	req.False(present)
}

func TestOption_UnterminatedBracket(t *testing.T) {
	req := require.New(t)

	_, _, err := Option("-k(5", 'k')

	req.ErrorIs(err, apperrors.ErrOptionUnterminated)
}

func TestFlag(t *testing.T) {
	req := require.New(t)

	req.True(Flag("-s(1,2) -m", 'm'))
	req.False(Flag("-s(1,2)", 'm'))
}

func TestNumericOption_Bounds(t *testing.T) {
	req := require.New(t)

	n, err := NumericOption("-k(5)", 'k', 1, 50)
	req.NoError(err)
	req.Equal(5, n)

	_, err = NumericOption("-k(51)", 'k', 1, 50)
	req.ErrorIs(err, apperrors.ErrOptionOutOfRange)

	_, err = NumericOption("-k(0)", 'k', 1, 50)
	req.ErrorIs(err, apperrors.ErrOptionOutOfRange)

	_, err = NumericOption("-k(five)", 'k', 1, 50)
	req.ErrorIs(err, apperrors.ErrOptionNotNumeric)

	_, err = NumericOption("-s(1,2)", 'k', 1, 50)
	req.ErrorIs(err, apperrors.ErrOptionMissing)
}

func TestOptionalNumericOption(t *testing.T) {
	req := require.New(t)

	n, err := OptionalNumericOption("-j(3)", 'j', 1, 8)
	req.NoError(err)
	req.NotNil(n)
	req.Equal(3, *n)

	n, err = OptionalNumericOption("-k(5)", 'j', 1, 8)
	req.NoError(err)
	req.Nil(n)

	_, err = OptionalNumericOption("-j(9)", 'j', 1, 8)
	req.ErrorIs(err, apperrors.ErrOptionOutOfRange)
}

func TestParseShipList_Valid(t *testing.T) {
	req := require.New(t)

	set, defaultShip, err := ParseShipList("2,1,3")

	req.NoError(err)
	req.Equal(Javelin, defaultShip)
	req.True(set.Contains(Warbird))
	req.True(set.Contains(Javelin))
	req.True(set.Contains(Spider))
	req.False(set.Contains(Shark))
}

func TestParseShipList_SingleShip(t *testing.T) {
	req := require.New(t)

	set, defaultShip, err := ParseShipList("8")

	req.NoError(err)
	req.Equal(Shark, defaultShip)
	req.True(set.Contains(Shark))
	req.Equal("8", set.String())
}

func TestParseShipList_Rejections(t *testing.T) {
	req := require.New(t)

	cases := []string{
		"",
		"1,",
		",1",
		"1,,2",
		"0",
		"9",
		"12",
		"1,2,3,4,5,6,7,8,1",
		"a",
		"1;2",
	}
	for _, raw := range cases {
		_, _, err := ParseShipList(raw)
		req.ErrorIs(err, apperrors.ErrBadShipList, "input %q", raw)
	}
}

func TestShipSet_String(t *testing.T) {
	req := require.New(t)

	var set ShipSet
	set.Add(Warbird)
	set.Add(Spider)
	set.Add(Terrier)

	req.Equal("1,3,5", set.String())
}

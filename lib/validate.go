package lib

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrYesNo = errors.New("only accepts 'y' or 'n'")

func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrYesNo
	}
}

// ParseScore accepts a non-negative base 10 integer.
func ParseScore(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a number", s)
	}

	if v < 0 {
		return 0, fmt.Errorf("'%s' must not be negative", s)
	}

	return v, nil
}

// ParseAny accepts every answer. It is used to wait for enter.
func ParseAny(string) (struct{}, error) {
	return struct{}{}, nil
}

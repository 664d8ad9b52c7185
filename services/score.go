// File: services/score.go
package services

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Score is a full-time score as sent by the admin form: either a JSON
// number or a numeric string. Empty and null decode to "".
type Score string

// UnmarshalJSON accepts numbers, strings and null.
func (s *Score) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*s = ""
		return nil
	case strings.HasPrefix(raw, `"`):
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Score(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = Score(n.String())
	return nil
}

// Int parses the leading integer of the score, so "2", " 2", "2.0" and
// "2 goals" all read as 2. A score with no leading digits is an error.
func (s Score) Int() (int, error) {
	str := strings.TrimSpace(string(s))
	end := 0
	if end < len(str) && (str[end] == '-' || str[end] == '+') {
		end++
	}
	digits := end
	for end < len(str) && str[end] >= '0' && str[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(str[:end])
}

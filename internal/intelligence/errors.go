package intelligence

import (
	"fmt"
	"strings"
)

const maxSuggestions = 3

// Suggestion is a near-match offered for an unknown country code
type Suggestion struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// NotFoundError is returned when the requested code is not in the directory
type NotFoundError struct {
	Code        string
	Suggestions []Suggestion
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("country %q not found", e.Code)
	if len(e.Suggestions) == 0 {
		return msg
	}

	names := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		names[i] = fmt.Sprintf("%s (%s)", s.Name, s.Code)
	}
	return msg + "; did you mean " + strings.Join(names, ", ") + "?"
}

package patch

import "strings"

// TrimmedOrNil trims s and maps blank input to nil.
func TrimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

package models

import "regexp"

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsValidID reports whether id has the store's identifier format:
// 24 hexadecimal characters.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}

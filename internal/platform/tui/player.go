package tui

import (
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// PlayerName returns the name recorded with a score. Sessions without a
// user name get a generated one such as "brave-otter".
func PlayerName(user string) string {
	if name := strings.TrimSpace(user); name != "" {
		return name
	}
	return petname.Generate(2, "-")
}

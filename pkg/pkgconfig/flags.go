package pkgconfig

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// IncludeDirs extracts -I directories from a cflags string, keeping the
// first occurrence of each. Both "-I/dir" and "-I /dir" are accepted.
func IncludeDirs(cflags string) ([]string, error) {
	args, err := shellwords.Parse(strings.TrimSpace(cflags))
	if err != nil {
		return nil, fmt.Errorf("tokenizing cflags %q: %w", cflags, err)
	}

	var dirs []string
	seen := make(map[string]bool)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-I") {
			continue
		}
		dir := strings.TrimPrefix(arg, "-I")
		if dir == "" {
			if i+1 >= len(args) {
				break
			}
			i++
			dir = args[i]
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}

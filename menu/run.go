package menu

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"
)

// Argv splits a desktop-entry Exec line into an argument vector. Field
// codes (%f, %F, %u, %U and the rest) are stripped rather than expanded;
// expanding them is a consumer concern this launcher does not take on.
// A literal "%%" becomes "%".
func Argv(execLine string) ([]string, error) {
	words, err := shellquote.Split(execLine)
	if err != nil {
		return nil, fmt.Errorf("split exec line %q: %w", execLine, err)
	}

	argv := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) == 2 && w[0] == '%' && w != "%%" {
			continue
		}
		argv = append(argv, strings.ReplaceAll(w, "%%", "%"))
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("exec line %q has no program", execLine)
	}
	return argv, nil
}

// Run dispatches a command to the operating system, detached from the
// launcher process so quitting the menu does not kill what it started.
func Run(c Command) error {
	argv, err := Argv(c.Exec)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %q: %w", c.Key, err)
	}
	Logger().Info("launched command",
		zap.String("key", c.Key),
		zap.Int("pid", cmd.Process.Pid))
	return cmd.Process.Release()
}

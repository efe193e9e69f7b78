package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/walker84837/rmenu-ng/menu"
)

func main() {
	var (
		dirsFlag = flag.String("dirs", "", "Application directories to scan (colon-separated, default: XDG dirs)")
		filter   = flag.String("filter", "", "Initial filter text")
		list     = flag.Bool("list", false, "Print matching commands and exit")
		debug    = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		menu.SetLogger(logger)
	}

	dirs := menu.DefaultDirs()
	if *dirsFlag != "" {
		dirs = strings.Split(*dirsFlag, ":")
	}

	cmds := filterCommands(menu.Scan(dirs...), *filter)

	if *list {
		for _, c := range cmds {
			fmt.Printf("%s\t%s\t%s\n", c.Key, c.Display, c.Exec)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "rmenu: stdout is not a terminal; use -list for scripted output")
		os.Exit(1)
	}

	if err := runInteractive(cmds, *filter); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func filterCommands(cmds []menu.Command, filter string) []menu.Command {
	if filter == "" {
		return cmds
	}
	needle := strings.ToLower(filter)
	var out []menu.Command
	for _, c := range cmds {
		if strings.Contains(strings.ToLower(c.Display), needle) ||
			strings.Contains(strings.ToLower(c.Key), needle) {
			out = append(out, c)
		}
	}
	return out
}

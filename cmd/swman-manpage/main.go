package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/swman/cmd/swman"
	"github.com/arthur-debert/swman/internal/version"
)

func main() {
	rootCmd := swman.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SWMAN",
		Section: "1",
		Source:  "swman " + version.Version,
		Manual:  "swman manual",
	}

	// With a directory argument, write one page per command there
	if len(os.Args) > 1 {
		if err := doc.GenManTree(rootCmd, header, os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

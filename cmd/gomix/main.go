/*
File    : gomix-lang/cmd/gomix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the interpreter. It provides two
modes of operation:
1. REPL Mode (zero arguments): interactive Read-Eval-Print Loop
2. File Mode (one argument): execute a source file from the command line

Any other argument count is a usage error with a nonzero exit code.
*/
package main

import (
	"os"

	"github.com/akashmaji946/gomix-lang/driver"
	"github.com/akashmaji946/gomix-lang/repl"
	"github.com/fatih/color"
)

// VERSION is the current version of the interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "gomix >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
    ▄▄▄▄                       ▄▄▄  ▄▄▄     ██
  ██▀▀▀▀█                      ███  ███     ▀▀
 ██         ▄████▄             ████████   ████
 ██  ▄▄▄▄  ██▀  ▀██            ██ ██ ██     ██
 ██  ▀▀██  ██    ██   █████    ██ ▀▀ ██     ██
  ██▄▄▄██  ▀██▄▄██▀            ██    ██  ▄▄▄██▄▄▄
    ▀▀▀▀     ▀▀▀▀              ▀▀    ▀▀  ▀▀▀▀▀▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

// main dispatches on argument count per the driver CLI contract: zero
// arguments starts the REPL, one argument runs that file, anything else
// is a usage error.
func main() {
	switch len(os.Args) {
	case 1:
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	case 2:
		runFile(os.Args[1])
	default:
		redColor.Fprintf(os.Stderr, "usage: %s [path]\n", os.Args[0])
		os.Exit(1)
	}
}

// runFile reads and executes a single source file against a fresh
// environment, exiting nonzero on any read, compile, or runtime error.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	res, err := driver.RunFile(string(source), os.Stdout)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	for _, w := range res.Warnings {
		yellowColor.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

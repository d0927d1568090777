// wexpr - Wexpr codec CLI tool
//
// Usage:
//
//	wexpr pretty [file]            Parse and re-emit in human-readable form
//	wexpr minify [file]            Parse and re-emit in compact form
//	wexpr validate [file]          Parse (text or binary) and print true or false
//	wexpr to-binary [--checksum] [file]   Parse text, emit a binary document
//	wexpr to-text [file]           Parse a binary document, emit compact text
//	wexpr version                  Print version info
//
// If no file is given, reads from stdin. A file argument of "-" also means
// stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tyraindreams/libWexpr/wexpr"
)

const libVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	switch cmd {
	case "version", "-v", "--version":
		fmt.Printf("wexpr %s\n", libVersion)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	checksum := false
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch {
		case arg == "--checksum":
			checksum = true
		default:
			if !strings.HasPrefix(arg, "-") || arg == "-" {
				fileArg = arg
			}
		}
	}

	var input io.Reader = os.Stdin
	if fileArg != "" && fileArg != "-" {
		f, err := os.Open(fileArg)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	switch cmd {
	case "pretty":
		cmdEmit(input, wexpr.WriteFlagHumanReadable)
	case "minify":
		cmdEmit(input, wexpr.WriteFlagCompact)
	case "validate":
		cmdValidate(input)
	case "to-binary":
		cmdToBinary(input, checksum)
	case "to-text":
		cmdToText(input)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `wexpr - Wexpr codec CLI tool

Usage:
  wexpr pretty [file]                  Parse and re-emit in human-readable form
  wexpr minify [file]                  Parse and re-emit in compact form
  wexpr validate [file]                Parse (text or binary) and print true or false
  wexpr to-binary [--checksum] [file]  Parse text, emit a binary document
  wexpr to-text [file]                 Parse a binary document, emit compact text
  wexpr version                        Print version info

If no file is given, reads from stdin. A file argument of "-" also means stdin.

Examples:
  echo '#(a b c)' | wexpr pretty
  cat doc.wexpr | wexpr to-binary --checksum > doc.wbin
  wexpr to-text doc.wbin
`)
}

func cmdEmit(r io.Reader, flags wexpr.WriteFlags) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	e, err := wexpr.ParseText(data, wexpr.ParseFlagNone)
	if err != nil {
		fatal("parse: %v", err)
	}
	os.Stdout.Write(e.ToText(0, flags))
	fmt.Println()
}

func cmdValidate(r io.Reader) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	e, err := wexpr.ReadDocument(data)
	if err != nil || e.Type() == wexpr.TypeInvalid {
		fmt.Println("false")
		if err != nil {
			fmt.Fprintf(os.Stderr, "wexpr: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Println("true")
}

func cmdToBinary(r io.Reader, checksum bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	e, err := wexpr.ParseText(data, wexpr.ParseFlagNone)
	if err != nil {
		fatal("parse: %v", err)
	}

	os.Stdout.Write(wexpr.FileHeader())
	if checksum {
		os.Stdout.Write(e.CreateBinaryRepresentationChecksummed())
	} else {
		os.Stdout.Write(e.ToBinaryChunk())
	}
}

func cmdToText(r io.Reader) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	e, err := wexpr.ReadDocument(data)
	if err != nil {
		fatal("decode: %v", err)
	}
	os.Stdout.Write(e.ToText(0, wexpr.WriteFlagCompact))
	fmt.Println()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "wexpr: "+format+"\n", args...)
	os.Exit(1)
}

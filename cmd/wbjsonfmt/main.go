// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

// Command wbjsonfmt reformats JSON documents to the package's indented
// layout: one tab per nesting level, object members in ascending key
// order, and " : " between a member key and its value.
//
// With no arguments it reads standard input and prints the formatted
// document to standard output.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/fatih/color"
	"go4.org/mem"

	"github.com/tivenwang/wbjson"
	"github.com/tivenwang/wbjson/internal/escape"
)

type cmdArgs struct {
	List  bool     `arg:"-l,--list" help:"list files whose formatting differs, instead of printing"`
	Write bool     `arg:"-w,--write" help:"rewrite files in place instead of printing"`
	Color bool     `arg:"-c,--color" help:"colorize output (ignored with -w)"`
	Files []string `arg:"positional" help:"input files (standard input when empty)"`
}

var args cmdArgs

func main() {
	arg.MustParse(&args)

	if len(args.Files) == 0 {
		if args.Write {
			fmt.Fprintln(os.Stderr, "wbjsonfmt: cannot use -w with standard input")
			os.Exit(1)
		}
		if err := runStdin(); err != nil {
			fmt.Fprintf(os.Stderr, "wbjsonfmt: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ok := true
	for _, name := range args.Files {
		if err := processFile(name); err != nil {
			fmt.Fprintf(os.Stderr, "wbjsonfmt: %v\n", err)
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}
}

func runStdin() error {
	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	v, out, err := format(in)
	if err != nil {
		return fmt.Errorf("<standard input>: %s", describe(in, err))
	}
	if args.List {
		if out != string(in) {
			fmt.Println("<standard input>")
		}
		return nil
	}
	return printDoc(v, out)
}

func processFile(name string) error {
	in, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	v, out, err := format(in)
	if err != nil {
		return fmt.Errorf("%s: %s", name, describe(in, err))
	}

	changed := out != string(in)
	if args.List && changed {
		fmt.Println(name)
	}
	if args.Write {
		if changed {
			return os.WriteFile(name, []byte(out), 0o644)
		}
		return nil
	}
	if args.List {
		return nil
	}
	return printDoc(v, out)
}

// describe renders err for diagnostics, prefixed with the 1-based line
// and 0-based column of its byte offset in in when it carries one.
func describe(in []byte, err error) string {
	var lerr *wbjson.LexError
	var perr *wbjson.ParseError
	off := -1
	if errors.As(err, &lerr) {
		off = lerr.Offset
	} else if errors.As(err, &perr) {
		off = perr.Offset
	}
	if off < 0 {
		return err.Error()
	}
	line, col := 1, 0
	for i := 0; i < off && i < len(in); i++ {
		col++
		if in[i] == '\n' {
			line++
			col = 0
		}
	}
	return fmt.Sprintf("%d:%d: %v", line, col, err)
}

// format parses in and renders it back, with a final newline added for
// file and terminal output.
func format(in []byte) (*wbjson.Value, string, error) {
	v, err := wbjson.ReadBytes(in)
	if err != nil {
		return nil, "", err
	}
	text, err := wbjson.Write(v)
	if err != nil {
		return nil, "", err
	}
	return v, text + "\n", nil
}

func printDoc(v *wbjson.Value, plain string) error {
	if !args.Color {
		_, err := os.Stdout.WriteString(plain)
		return err
	}
	var sb strings.Builder
	if err := colorize(&sb, v, 0); err != nil {
		return err
	}
	sb.WriteByte('\n')
	_, err := os.Stdout.WriteString(sb.String())
	return err
}

var (
	keyColor = color.New(color.FgHiBlue).SprintFunc()
	strColor = color.New(color.FgGreen).SprintFunc()
	numColor = color.New(color.FgCyan).SprintFunc()
	litColor = color.New(color.FgHiMagenta).SprintFunc()
)

// colorize renders v in the same layout as wbjson.Write, wrapping member
// keys and scalars in ANSI colors. The color package drops the escapes
// when the output is not a terminal or NO_COLOR is set.
func colorize(sb *strings.Builder, v *wbjson.Value, depth int) error {
	switch v.Kind() {
	case wbjson.KindObject:
		o, err := v.Object()
		if err != nil {
			return err
		}
		sb.WriteByte('{')
		if !o.IsEmpty() {
			sb.WriteByte('\n')
		}
		i, last := 0, o.Len()-1
		for key, member := range o.All() {
			indent(sb, depth+1)
			sb.WriteString(keyColor(string(escape.Quote(mem.S(key)))))
			sb.WriteString(" : ")
			if err := colorize(sb, member, depth+1); err != nil {
				return err
			}
			if i < last {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
			i++
		}
		indent(sb, depth)
		sb.WriteByte('}')
	case wbjson.KindArray:
		a, err := v.Array()
		if err != nil {
			return err
		}
		sb.WriteByte('[')
		if !a.IsEmpty() {
			sb.WriteByte('\n')
		}
		last := a.Len() - 1
		for i, elem := range a.All() {
			indent(sb, depth+1)
			if err := colorize(sb, elem, depth+1); err != nil {
				return err
			}
			if i < last {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		indent(sb, depth)
		sb.WriteByte(']')
	default:
		text, err := wbjson.Write(v)
		if err != nil {
			return err
		}
		switch v.Kind() {
		case wbjson.KindString:
			sb.WriteString(strColor(text))
		case wbjson.KindBool, wbjson.KindNull:
			sb.WriteString(litColor(text))
		default:
			sb.WriteString(numColor(text))
		}
	}
	return nil
}

func indent(sb *strings.Builder, depth int) {
	for range depth {
		sb.WriteByte('\t')
	}
}

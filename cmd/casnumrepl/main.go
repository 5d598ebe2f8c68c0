// Copyright 2026 The casnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"casnum/config"
	"casnum/geom"
	"casnum/viewer"
)

var (
	execute   = flag.Bool("e", false, "execute arguments as a single expression")
	prompt    = flag.String("prompt", "", "command prompt")
	seed      = flag.Int64("seed", 0, "seed for the LCG behind getprime")
	precision = flag.Uint("precision", 0, "branch-selection tie-break precision in bits; 0 uses the default")
	graphics  = flag.Bool("graphics", false, "record constructions in a bounded scene queue, drained by )scene")
)

var (
	conf  config.Config
	scene *viewer.Queue
)

func main() {
	flag.Usage = usage
	flag.Parse()

	conf.SetPrompt(*prompt)
	conf.RandomSeed(*seed)
	if *precision != 0 {
		conf.SetTiePrecision(*precision)
	}
	conf.SetEnableGraphics(*graphics)
	config.Set(&conf)
	if conf.EnableGraphics() {
		scene = viewer.NewQueue(conf.QueueCapacity(), conf.DropPolicy())
		geom.SetSink(scene)
		defer geom.Close()
	}

	if *execute {
		runLine(strings.Join(flag.Args(), " "), os.Stdout)
		return
	}

	if flag.NArg() > 0 {
		for i := 0; i < flag.NArg(); i++ {
			name := flag.Arg(i)
			var fd io.Reader
			var err error
			interactive := name == "-"
			if interactive {
				fd = os.Stdin
			} else {
				fd, err = os.Open(name)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "casnumrepl: %s\n", err)
				os.Exit(1)
			}
			if !runFile(fd, os.Stdout, interactive) {
				break
			}
		}
		return
	}

	runFile(os.Stdin, os.Stdout, true)
}

// runFile reads lines from r until EOF, printing each expression's value
// or, for lines beginning with ")", handling a special command. Returns
// whether it completed without an unrecoverable error.
func runFile(r io.Reader, w io.Writer, interactive bool) bool {
	scanner := bufio.NewScanner(r)
	for {
		if interactive {
			fmt.Fprint(w, conf.Prompt())
		}
		if !scanner.Scan() {
			if interactive {
				fmt.Fprintln(w)
			}
			return true
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ")") {
			handleCommand(line, w)
			continue
		}
		runLine(line, w)
	}
}

func runLine(line string, w io.Writer) {
	if strings.TrimSpace(line) == "" {
		return
	}
	v, err := newEvaluator(line).Eval()
	if err != nil {
		fmt.Fprintf(os.Stderr, "casnumrepl: %s\n", err)
		return
	}
	fmt.Fprintln(w, v.String())
}

func handleCommand(line string, w io.Writer) {
	fields := strings.Fields(strings.TrimPrefix(line, ")"))
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "seed":
		if len(fields) < 2 {
			fmt.Fprintln(w, conf.RandState())
			return
		}
		n, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "casnumrepl: %s\n", err)
			return
		}
		conf.RandomSeed(n)
	case "precision":
		if len(fields) < 2 {
			fmt.Fprintln(w, conf.TiePrecision())
			return
		}
		n, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "casnumrepl: %s\n", err)
			return
		}
		conf.SetTiePrecision(uint(n))
	case "scene":
		if scene == nil {
			fmt.Fprintln(os.Stderr, "casnumrepl: graphics not enabled (run with -graphics)")
			return
		}
		for _, cmd := range scene.DequeueAll() {
			printCommand(w, cmd)
		}
		if d := scene.Dropped(); d > 0 {
			fmt.Fprintf(w, "(%d older commands dropped)\n", d)
		}
	case "clear":
		geom.Clear()
	default:
		fmt.Fprintf(os.Stderr, "casnumrepl: unknown command %q\n", fields[0])
	}
}

func printCommand(w io.Writer, cmd viewer.Command) {
	switch cmd.Tag {
	case viewer.TagPoint:
		fmt.Fprintf(w, "pt  gen=%d (%g, %g)\n", cmd.Gen, cmd.X, cmd.Y)
	case viewer.TagLine:
		fmt.Fprintf(w, "ln  gen=%d (%g, %g)-(%g, %g)\n", cmd.Gen, cmd.X1, cmd.Y1, cmd.X2, cmd.Y2)
	case viewer.TagCircle:
		fmt.Fprintf(w, "ci  gen=%d center=(%g, %g) r=%g\n", cmd.Gen, cmd.CX, cmd.CY, cmd.R)
	case viewer.TagClear:
		fmt.Fprintf(w, "clear gen=%d\n", cmd.Gen)
	case viewer.TagClose:
		fmt.Fprintf(w, "close gen=%d\n", cmd.Gen)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: casnumrepl [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

// Package console provides a terminal console toolkit for Go: styled ANSI
// output, tabular data formatting, and interactive prompts that can be
// replayed from pre-recorded answers for scripted or non-interactive runs.
//
// Key Features:
//
//   - Visible prompts (Ask), masked input (Hidden), and single-keystroke
//     selection menus (Select) keyed by compact base-36 identifiers
//   - Pre-recorded answers: every prompt takes a question id and is
//     answered from a JSON-backed AnswerStore without touching the
//     terminal when an answer exists, plus an optional recording hook that
//     captures live answers for later replay
//   - Poll-based raw input with multi-byte character assembly, so the
//     input loop never blocks outside its single suspension point
//   - Verbosity-gated output (quiet, normal, verbose, debug) with a
//     temporary-override mechanism for silence-safe prompts
//   - Truecolor styling, configurable prompt indicator, and table
//     rendering
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/console"
//	)
//
//	func main() {
//		c := console.New()
//		defer c.Close()
//
//		name, err := c.Ask("What is your name?", "name")
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Hello, %s!\n", name)
//	}
//
// Replayed Answers:
//
// Load a JSON answer file to run the same flow without a terminal. The
// file is a flat object mapping question ids to answer strings; selection
// answers are stored as their base-36 digit.
//
//	answers := console.NewAnswerStore()
//	if err := answers.LoadFromFile("answers.json"); err != nil {
//		log.Fatal(err)
//	}
//	c := console.New(console.WithAnswers(answers))
//
//	// Returns the stored answer immediately; no blocking read happens.
//	name, _ := c.Ask("What is your name?", "name")
//
// Selection Menus:
//
//	choice, ok, err := c.Select("Continue?", []console.Choice{
//		{Key: "y", Label: "Yes"},
//		{Key: "n", Label: "No"},
//	}, "continue")
//
// Each option is labeled with a base-36 digit ("1"-"9", then "a"-"z") in
// menu order, and a single keystroke picks it. The digit is also the
// persisted answer encoding, so recorded answer files stay meaningful only
// while option order is stable.
//
// Platform Support:
//
// The input engine assumes a POSIX-like byte stream on a single input
// descriptor. It is not a terminal emulator and not a readline-style line
// editor: hidden input supports trailing backspace only, with no cursor
// movement or history.
package console

/*
 * setun1958 - Operator command parser.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package parser implements the operator command language the REPL in
// command/reader drives: examine/deposit/registers/set/step/run/stop/
// reset/load/dump/quit/exit/help, dispatched by a prefix-matching verb
// table.
package parser

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/osetun/setun1958/diag"
	"github.com/osetun/setun1958/loader"
	"github.com/osetun/setun1958/machine"
	"github.com/osetun/setun1958/trit"
)

type cmd struct {
	name     string
	min      int
	process  func(*cmdLine, *machine.Machine) (bool, error)
	complete func(*cmdLine) []string
}

type cmdLine struct {
	line string
	pos  int
}

func (l *cmdLine) isEOL() bool { return l.pos >= len(l.line) }

func (l *cmdLine) getWord() string {
	for !l.isEOL() && l.line[l.pos] == ' ' {
		l.pos++
	}
	start := l.pos
	for !l.isEOL() && l.line[l.pos] != ' ' {
		l.pos++
	}
	return l.line[start:l.pos]
}

func (l *cmdLine) rest() string {
	for !l.isEOL() && l.line[l.pos] == ' ' {
		l.pos++
	}
	return l.line[l.pos:]
}

var cmdList = []cmd{
	{name: "examine", min: 1, process: examine},
	{name: "deposit", min: 1, process: deposit},
	{name: "step", min: 2, process: step},
	{name: "run", min: 2, process: run},
	{name: "stop", min: 3, process: stop},
	{name: "reset", min: 3, process: reset},
	{name: "load", min: 1, process: load},
	{name: "registers", min: 3, process: registers},
	{name: "set", min: 3, process: set},
	{name: "dump", min: 2, process: dump},
	{name: "quit", min: 1, process: quit},
	{name: "exit", min: 4, process: quit},
	{name: "help", min: 1, process: help},
}

// ProcessCommand parses and executes one command line against m. It
// returns true once the operator has asked to quit.
func ProcessCommand(line string, m *machine.Machine) (bool, error) {
	cl := &cmdLine{line: line}
	word := cl.getWord()
	if word == "" {
		return false, nil
	}
	match := matchList(word)
	if len(match) == 0 {
		return false, fmt.Errorf("command not found: %s", word)
	}
	if len(match) > 1 {
		return false, fmt.Errorf("ambiguous command: %s", word)
	}
	return match[0].process(cl, m)
}

// CompleteCmd returns the verb completions for line, for liner's
// tab-completion hook.
func CompleteCmd(line string) []string {
	cl := &cmdLine{line: line}
	word := cl.getWord()
	if !cl.isEOL() {
		return nil
	}
	var out []string
	for _, c := range matchList(word) {
		out = append(out, c.name)
	}
	return out
}

func matchList(word string) []cmd {
	word = strings.ToLower(word)
	if word == "" {
		return nil
	}
	var out []cmd
	for _, c := range cmdList {
		if c.name == word {
			return []cmd{c}
		}
		if len(word) >= c.min && strings.HasPrefix(c.name, word) {
			out = append(out, c)
		}
	}
	return out
}

func parseAddr(s string) (trit.Word, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return trit.Word{}, errors.New("missing address")
	}
	if w, err := trit.ParseSymbolic(s); err == nil && w.Len() == 5 {
		return w, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return trit.Word{}, fmt.Errorf("bad address %q", s)
	}
	return trit.FromInt(n, 5)
}

func examine(cl *cmdLine, m *machine.Machine) (bool, error) {
	addr, err := parseAddr(cl.getWord())
	if err != nil {
		return false, err
	}
	v := m.Examine(addr)
	fmt.Printf("%s: %s (%d)\n", addr, v, v.ToInt())
	return false, nil
}

func deposit(cl *cmdLine, m *machine.Machine) (bool, error) {
	addr, err := parseAddr(cl.getWord())
	if err != nil {
		return false, err
	}
	valStr := strings.TrimSpace(cl.rest())
	if valStr == "" {
		return false, errors.New("missing value")
	}
	v, err := trit.ParseSymbolic(valStr)
	if err != nil {
		return false, err
	}
	m.Deposit(addr, v)
	return false, nil
}

func step(cl *cmdLine, m *machine.Machine) (bool, error) {
	n := 1
	if w := strings.TrimSpace(cl.getWord()); w != "" {
		v, err := strconv.Atoi(w)
		if err != nil {
			return false, err
		}
		n = v
	}
	var status string
	for i := 0; i < n; i++ {
		s := m.Step()
		status = s.String()
		if s.String() != "WORK" {
			break
		}
	}
	fmt.Println("status:", status)
	return false, nil
}

func run(cl *cmdLine, m *machine.Machine) (bool, error) {
	m.Run()
	return false, nil
}

func stop(cl *cmdLine, m *machine.Machine) (bool, error) {
	m.Halt()
	return false, nil
}

func reset(cl *cmdLine, m *machine.Machine) (bool, error) {
	m.Reset()
	return false, nil
}

func load(cl *cmdLine, m *machine.Machine) (bool, error) {
	path := strings.TrimSpace(cl.getWord())
	if path == "" {
		return false, errors.New("missing file name")
	}
	base := loader.DefaultBase()
	if baseStr := strings.TrimSpace(cl.getWord()); baseStr != "" {
		b, err := parseAddr(baseStr)
		if err != nil {
			return false, err
		}
		base = b
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return false, m.Load(f, base)
}

func registers(cl *cmdLine, m *machine.Machine) (bool, error) {
	r := m.Registers()
	fmt.Printf("K  %s  C %s  F %s  W %s\n", r.K, r.C, r.F, r.W)
	fmt.Printf("S  %s (%d)\n", r.S, r.S.ToInt())
	fmt.Printf("R  %s (%d)\n", r.R, r.R.ToInt())
	fmt.Printf("MB %s  MR %s\n", r.MB, r.MR)
	return false, nil
}

func set(cl *cmdLine, m *machine.Machine) (bool, error) {
	name := strings.ToLower(strings.TrimSpace(cl.getWord()))
	if name == "" {
		return false, errors.New("missing register name")
	}
	valStr := strings.TrimSpace(cl.rest())
	if valStr == "" {
		return false, errors.New("missing value")
	}
	v, err := trit.ParseSymbolic(valStr)
	if err != nil {
		return false, err
	}
	return false, m.SetRegister(name, v)
}

func dump(cl *cmdLine, m *machine.Machine) (bool, error) {
	which := strings.ToLower(strings.TrimSpace(cl.getWord()))
	switch which {
	case "fram":
		return false, diag.DumpFRAM(os.Stdout, m.CPU.Mem)
	case "drum":
		return false, diag.DumpDrum(os.Stdout, m.CPU.Mem)
	default:
		return false, fmt.Errorf("dump: unknown target %q (want fram or drum)", which)
	}
}

func quit(cl *cmdLine, m *machine.Machine) (bool, error) {
	return true, nil
}

func help(cl *cmdLine, m *machine.Machine) (bool, error) {
	fmt.Println("commands: examine <addr>, deposit <addr> <value>, registers, set <reg> <value>, step [n], run, stop, reset, load <file> [base], dump fram|drum, quit")
	return false, nil
}

/*
 * setun1958 - Configuration file parser.
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

// Package configparser reads the emulator's configuration file: one
// directive per line, '#' starts a comment to end of line, blank
// lines ignored. The config surface is a handful of keyword/value
// pairs, parsed with a small keyword table rather than a general
// grammar.
package configparser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Config holds every directive recognized in a configuration file.
// Zero values mean "not set".
type Config struct {
	Program string // path to a program file to load at start
	Base    string // symbolic load address, e.g. "----0"
	Log     string // path to mirror log output to
	Debug   bool   // enable debug-level console logging
	Tape    string // path to an input tape file
	Punch   string // path to an output tape file
}

var keywords = map[string]func(*Config, string) error{
	"program": func(c *Config, v string) error { c.Program = v; return nil },
	"base":    func(c *Config, v string) error { c.Base = v; return nil },
	"log":     func(c *Config, v string) error { c.Log = v; return nil },
	"tape":    func(c *Config, v string) error { c.Tape = v; return nil },
	"punch":   func(c *Config, v string) error { c.Punch = v; return nil },
	"debug": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("debug: %w", err)
		}
		c.Debug = b
		return nil
	},
}

// Parse reads directives from r into a new Config.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	sc := bufio.NewScanner(r)
	lineNumber := 0
	for sc.Scan() {
		lineNumber++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		key := strings.ToLower(fields[0])
		var value string
		if len(fields) == 2 {
			value = strings.TrimSpace(fields[1])
		}
		fn, ok := keywords[key]
		if !ok {
			return nil, fmt.Errorf("configparser: line %d: unknown directive %q", lineNumber, key)
		}
		if err := fn(cfg, value); err != nil {
			return nil, fmt.Errorf("configparser: line %d: %w", lineNumber, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load opens path and parses it as a configuration file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

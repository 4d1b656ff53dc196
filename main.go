/*
 * setun1958 - Main process.
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

package main

import (
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	reader "github.com/osetun/setun1958/command/reader"
	configparser "github.com/osetun/setun1958/config/configparser"
	"github.com/osetun/setun1958/cpu"
	"github.com/osetun/setun1958/loader"
	"github.com/osetun/setun1958/machine"
	"github.com/osetun/setun1958/memory"
	"github.com/osetun/setun1958/tape"
	"github.com/osetun/setun1958/trit"
	logger "github.com/osetun/setun1958/util/logger"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optProgram := getopt.StringLong("program", 'p', "", "Program file to load")
	optBase := getopt.StringLong("base", 'b', "", "Load address (symbolic, default ----0)")
	optRun := getopt.BoolLong("run", 'r', "Start running immediately after load")
	optDebug := getopt.BoolLong("debug", 'd', "Enable debug-level console logging")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			os.Exit(1)
		}
		file = f
	}
	debug := *optDebug
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	handler := logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, &debug)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("setun1958 started")

	cfg := &configparser.Config{}
	if *optConfig != "" {
		loaded, err := configparser.Load(*optConfig)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		cfg = loaded
	}

	// The logger comes up before the config file so load errors have
	// somewhere to go; config-driven logging options are applied here,
	// with the command line taking precedence.
	if cfg.Debug && !debug {
		debug = true
		handler.SetDebug(&debug)
	}
	if file == nil && cfg.Log != "" {
		f, err := os.Create(cfg.Log)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		file = f
		handler = logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, &debug)
		Logger = slog.New(handler)
		slog.SetDefault(Logger)
	}

	mem := memory.New()

	var io cpu.IOController
	tapePath := cfg.Tape
	punchPath := cfg.Punch
	if tapePath != "" || punchPath != "" {
		dev := &tape.Device{}
		if tapePath != "" {
			r, f, err := tape.OpenReader(tapePath)
			if err != nil {
				Logger.Error(err.Error())
				os.Exit(1)
			}
			defer f.Close()
			dev.In = r
		}
		if punchPath != "" {
			w, f, err := tape.CreateWriter(punchPath)
			if err != nil {
				Logger.Error(err.Error())
				os.Exit(1)
			}
			defer f.Close()
			dev.Out = w
		}
		io = dev
	}

	m := machine.New(mem, io)
	m.Start()
	defer m.Stop()

	program := *optProgram
	if program == "" {
		program = cfg.Program
	}
	if program != "" {
		base := loader.DefaultBase()
		baseStr := *optBase
		if baseStr == "" {
			baseStr = cfg.Base
		}
		if baseStr != "" {
			b, err := trit.ParseSymbolic(baseStr)
			if err != nil {
				Logger.Error(err.Error())
				os.Exit(1)
			}
			base = b
		}
		f, err := os.Open(program)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		loadErr := m.Load(f, base)
		f.Close()
		if loadErr != nil {
			Logger.Error(loadErr.Error())
			os.Exit(1)
		}
	}

	if *optRun {
		m.Run()
	}

	reader.ConsoleReader(m)

	Logger.Info("shutting down")
}

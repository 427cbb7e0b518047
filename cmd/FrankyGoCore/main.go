//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// FrankyGoCore is the thin composition root around the magic-bitboard move
// generator core: it loads configuration, wires up logging, loads or builds
// the attack tables, and dispatches to perft/divide/fen sub-commands. It is
// not a UCI engine and never performs search.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	gologging "github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessmagic/internal/chess/magic"
	"github.com/frankkopp/chessmagic/internal/chess/perft"
	"github.com/frankkopp/chessmagic/internal/chess/position"
	"github.com/frankkopp/chessmagic/internal/config"
	"github.com/frankkopp/chessmagic/internal/logging"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	tablesPath := flag.String("tables", "", "path to the magic attack table file\n(overrides the config file setting)")
	logLvl := flag.String("loglvl", "", "engine log level\n(critical|error|warning|notice|info|debug)")
	fenFlag := flag.String("fen", position.StartFEN, "FEN of the position to operate on")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile of the run to cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if *tablesPath != "" {
		config.Settings.Tables.Path = *tablesPath
	}
	if *logLvl != "" {
		config.Settings.Log.EngineLvl = *logLvl
	}
	log := logging.GetEngineLog()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		return
	}

	t := loadOrBuildTables(log)

	switch args[0] {
	case "perft":
		runPerft(t, args[1:], *fenFlag)
	case "divide":
		runDivide(t, args[1:], *fenFlag)
	case "fen":
		runFen(*fenFlag)
	case "version":
		printVersionInfo()
	default:
		printUsage()
	}
}

// loadOrBuildTables loads the serialized attack tables from disk, falling
// back to an in-process build (slower, but always available) when the file
// is absent, truncated, or from a different format version.
func loadOrBuildTables(log *gologging.Logger) *magic.Tables {
	t, err := magic.Load(config.Settings.Tables.Path)
	if err == nil {
		log.Infof("loaded magic tables from %s", config.Settings.Tables.Path)
		return t
	}
	log.Warningf("could not load magic tables from %s (%v), building in process", config.Settings.Tables.Path, err)
	return magic.Build()
}

func runPerft(t *magic.Tables, args []string, fen string) {
	depth := 1
	if len(args) > 0 {
		fmt.Sscanf(args[0], "%d", &depth)
	}
	pos, err := position.NewFromFEN(fen)
	if err != nil {
		out.Printf("invalid FEN %q: %v\n", fen, err)
		return
	}
	pf := perft.New(t)
	pf.Run(pos, depth)
}

func runDivide(t *magic.Tables, args []string, fen string) {
	depth := 1
	if len(args) > 0 {
		fmt.Sscanf(args[0], "%d", &depth)
	}
	pos, err := position.NewFromFEN(fen)
	if err != nil {
		out.Printf("invalid FEN %q: %v\n", fen, err)
		return
	}
	perft.Divide(t, pos, depth)
}

func runFen(fen string) {
	pos, err := position.NewFromFEN(fen)
	if err != nil {
		out.Printf("invalid FEN %q: %v\n", fen, err)
		return
	}
	out.Print(pos.String())
}

func printUsage() {
	out.Println("usage: FrankyGoCore [-config file] [-tables file] [-loglvl level] [-fen fen] <perft|divide|fen|version> [depth]")
}

func printVersionInfo() {
	out.Println("FrankyGoCore - magic bitboard move generator core")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}

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

// Package logging is a helper for the "github.com/op/go-logging" package to
// reduce the lines of code within each file to one line. The functions
// return Logger instances preconfigured with the backend and formatter for
// one named, independently leveled concern: engine lifecycle, wizard
// search, perft runs, or tests. None of them are ever called from the move
// generation hot path.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/frankkopp/chessmagic/internal/config"
)

var (
	engineLog *logging.Logger
	wizardLog *logging.Logger
	perftLog  *logging.Logger
	testLog   *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
)

func init() {
	engineLog = logging.MustGetLogger("engine")
	wizardLog = logging.MustGetLogger("wizard")
	perftLog = logging.MustGetLogger("perft")
	testLog = logging.MustGetLogger("test")
}

func levelFor(name string) logging.Level {
	lvl, ok := config.LogLevels[name]
	if !ok {
		lvl = config.LogLevels["info"]
	}
	return logging.Level(lvl)
}

func withLevel(logger *logging.Logger, levelName string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(levelFor(levelName), "")
	logger.SetBackend(leveled)
	return logger
}

// GetEngineLog returns the logger for table load/build, FEN rejection, and
// other core lifecycle events.
func GetEngineLog() *logging.Logger {
	return withLevel(engineLog, config.Settings.Log.EngineLvl)
}

// GetWizardLog returns the logger for the offline magic-search binary.
func GetWizardLog() *logging.Logger {
	return withLevel(wizardLog, config.Settings.Log.WizardLvl)
}

// GetPerftLog returns the logger for perft/divide run start and finish
// events (not the per-node search itself).
func GetPerftLog() *logging.Logger {
	return withLevel(perftLog, config.Settings.Log.PerftLvl)
}

// GetTestLog returns the logger used by package tests.
func GetTestLog() *logging.Logger {
	return withLevel(testLog, config.Settings.Log.TestLvl)
}

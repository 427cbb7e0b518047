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

// wizard is a standalone offline binary that searches for magic numbers and
// writes the resulting attack table to disk, so the engine can load a
// precomputed table at startup instead of rebuilding it in process.
package main

import (
	"context"
	"flag"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessmagic/internal/chess/magic"
	"github.com/frankkopp/chessmagic/internal/config"
	"github.com/frankkopp/chessmagic/internal/logging"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	outPath := flag.String("out", "", "path to write the magic attack table file to\n(overrides the config file setting)")
	sequential := flag.Bool("sequential", false, "search squares one at a time instead of via errgroup")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	if *outPath != "" {
		config.Settings.Tables.Path = *outPath
	}
	log := logging.GetWizardLog()

	start := time.Now()

	var t *magic.Tables
	if *sequential || !config.Settings.Wizard.Parallel {
		t = magic.Build()
	} else {
		built, err := magic.BuildParallel(context.Background())
		if err != nil {
			log.Errorf("parallel magic search failed: %v", err)
			return
		}
		t = built
	}

	out.Printf("Magic search finished in %s\n", time.Since(start))

	if err := t.Save(config.Settings.Tables.Path); err != nil {
		log.Errorf("could not write table file %s: %v", config.Settings.Tables.Path, err)
		return
	}
	log.Infof("wrote magic tables to %s", config.Settings.Tables.Path)
	out.Printf("Wrote table file: %s\n", config.Settings.Tables.Path)
}

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

// Package config holds globally available configuration variables which are
// either set by defaults, read from a TOML config file, or set by command
// line options: where the magic attack tables live on disk, whether to
// prefer a PEXT-based index over multiply-shift, per-logger log levels, and
// wizard search overrides.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile hold the path to the used config file (relative to working directory)
	ConfFile = "./config.toml"

	// LogLevel defines the general "engine" logger level - can be overwritten
	// by cmd line options or config file.
	LogLevel = "info"

	// TestLogLevel defines the test log level.
	TestLogLevel = "info"

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Tables tablesConfiguration
	Log    logConfiguration
	Wizard wizardConfiguration
}

// Setup reads configuration file and sets settings from this file or
// defaults for the table location, log levels and wizard search overrides.
func Setup() {
	if initialized {
		return
	}

	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	setupLogLvl()
	setupTables()
	setupWizard()
	initialized = true
}

// String() prints out the current configuration settings and values.
// This uses reflection to read variables and their values.
func (settings *conf) String() string {
	var c strings.Builder
	writeGroup := func(name string, v interface{}) {
		c.WriteString(name + ":\n")
		s := reflect.ValueOf(v).Elem()
		typeOfT := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			c.WriteString(fmt.Sprintf("%-2d: %-14s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
		}
	}
	writeGroup("Tables Config", &settings.Tables)
	c.WriteString("\n")
	writeGroup("Log Config", &settings.Log)
	c.WriteString("\n")
	writeGroup("Wizard Config", &settings.Wizard)
	return c.String()
}

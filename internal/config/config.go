//
// Xiangqi - Chinese Chess engine in GO for learning purposes
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

// Package config holds globally available configuration variables,
// set by defaults and optionally overridden by a TOML config file.
// The per-difficulty search tables are compiled-in constants, never
// read from the config file - only ambient engine behavior (log
// levels, TT size, evaluation feature toggles) is configurable.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/xiangqi/internal/util"
)

// ConfFile is the path to the config file, relative to the working
// directory unless resolved relative to the executable.
var ConfFile = "./config.toml"

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

type logConfiguration struct {
	Level       int
	SearchLevel int
	TestLevel   int
}

func init() {
	Settings.Log.Level = 4
	Settings.Log.SearchLevel = 4
	Settings.Log.TestLevel = 4
}

// Setup reads the configuration file (if present) and applies
// defaults for anything the file does not set.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			log.Println("Config file could not be decoded, using defaults. (", err, ")")
		}
	}
	initialized = true
}

// String prints the current configuration as a flat, reflection-driven
// dump for easy diffing between runs.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Search Config:\n")
	writeFields(&b, reflect.ValueOf(&c.Search).Elem())
	b.WriteString("\nEvaluation Config:\n")
	writeFields(&b, reflect.ValueOf(&c.Eval).Elem())
	return b.String()
}

func writeFields(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		b.WriteString(fmt.Sprintf("%-2d: %-22s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
}

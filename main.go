/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command grouptotals loads a CSV file, groups it by the levels described in
// a YAML configuration and prints the result with headers, subtotals and a
// grand total.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/google/grouptotals/core/config"
	"github.com/google/grouptotals/core/csvimport"
	"github.com/google/grouptotals/core/hierarchy"
	"github.com/google/grouptotals/core/rendering"
)

func main() {
	csvPath := flag.String("csv", "", "CSV file to group")
	configPath := flag.String("config", "", "YAML file describing levels and sums")
	format := flag.String("format", "ascii", "output format: ascii or html")
	title := flag.String("title", "", "page title for html output")
	extra := flag.String("columns", "", "comma-separated columns to show next to the sums")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "grouptotals: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *csvPath == "" || *configPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	view, err := load(*csvPath, *configPath, logger)
	if err != nil {
		logger.Fatal("Failed to build view", zap.Error(err))
	}

	var columns []string
	if *extra != "" {
		columns = strings.Split(*extra, ",")
	}

	switch *format {
	case "ascii":
		fmt.Print(rendering.ToAscii(view, columns...))
	case "html":
		renderer, err := rendering.NewTableRenderer()
		if err != nil {
			logger.Fatal("Failed to create renderer", zap.Error(err))
		}
		if *title == "" {
			*title = *csvPath
		}
		if err := renderer.Render(os.Stdout, *title, view, columns...); err != nil {
			logger.Fatal("Failed to render view", zap.Error(err))
		}
	default:
		logger.Fatal("Unknown output format", zap.String("format", *format))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func load(csvPath, configPath string, logger *zap.Logger) (*hierarchy.View, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	importOpts, err := cfg.ImportOptions()
	if err != nil {
		return nil, err
	}
	table, err := csvimport.ImportFromFile(csvPath, importOpts)
	if err != nil {
		return nil, err
	}
	logger.Info("Imported table", zap.String("path", csvPath), zap.Int("rows", table.Length()))

	set, err := cfg.LevelSet()
	if err != nil {
		return nil, err
	}
	opts := cfg.Options()
	opts.Logger = logger
	b, err := hierarchy.NewBuilder(table, set, opts)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command ndarrow-flatten reads an n-dimensional JSON document, broadcasts
// all of its columns to a common shape and writes the aligned table.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/ndarrow/ndarrow-go/ndarrow/ndio"
	"go.uber.org/zap"
)

const usage = `N-dimensional Arrow flattener.
Usage:
  ndarrow-flatten -h | --help
  ndarrow-flatten [--format=FORMAT] [--compression=CODEC] [--parallel]
                  [--verbose] [--output=FILE] [<file>]
Options:
  -h --help              Show this screen.
  --format=FORMAT        Output format: csv, ipc, parquet or json [default: csv].
  --compression=CODEC    Compression codec for ipc (lz4, zstd) or parquet
                         (snappy, gzip, brotli, zstd, lz4) [default: none].
  --parallel             Broadcast the columns concurrently.
  --verbose              Log progress to stderr.
  --output=FILE          Write to FILE instead of stdout.`

type config struct {
	Help        bool `docopt:"--help"`
	Format      string
	Compression string
	Parallel    bool
	Verbose     bool
	Output      string
	File        string `docopt:"<file>"`
}

func main() {
	opts, _ := docopt.ParseDoc(usage)

	var cfg config
	if err := opts.Bind(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error: invalid arguments:", err)
		os.Exit(1)
	}

	log := newLogger(cfg.Verbose)
	defer log.Sync()

	if err := run(cfg, log, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func run(cfg config, log *zap.Logger, stdin io.Reader, stdout io.Writer) error {
	format, err := ndio.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	codec, err := ndio.ParseCompression(cfg.Compression)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.File != "" {
		f, err := os.Open(cfg.File)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	rec, err := ndio.ReadDocument(in)
	if err != nil {
		return err
	}
	defer rec.Release()

	if rec.NumCols() > 0 {
		dims, err := rec.Dimensions()
		if err != nil {
			return err
		}
		log.Info("read document",
			zap.String("file", cfg.File),
			zap.Int("columns", rec.NumCols()),
			zap.Stringer("dimensions", dims),
			zap.Int("rows", dims.FlatSize()),
		)
		for i, arr := range rec.Arrays() {
			log.Debug("column",
				zap.String("name", rec.ColumnName(i)),
				zap.Stringer("type", arr.DataType()),
				zap.Stringer("dimensions", arr.Dimensions()),
			)
		}
	}

	out := stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	err = ndio.Write(out, rec, format, ndio.WithCompression(codec), ndio.WithParallel(cfg.Parallel))
	if err != nil {
		return err
	}

	log.Info("wrote record",
		zap.Stringer("format", format),
		zap.Stringer("compression", codec),
		zap.String("output", cfg.Output),
	)
	return nil
}

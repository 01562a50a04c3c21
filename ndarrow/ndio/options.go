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

package ndio

import (
	"context"
	"fmt"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/ndarrow/ndarrow-go/ndarrow"
)

// Compression selects the codec used for IPC bodies or Parquet pages.
type Compression int

const (
	Uncompressed Compression = iota
	Snappy
	Gzip
	Brotli
	Zstd
	LZ4
)

var compressionNames = [...]string{"uncompressed", "snappy", "gzip", "brotli", "zstd", "lz4"}

func (c Compression) String() string {
	if c < 0 || int(c) >= len(compressionNames) {
		return fmt.Sprintf("Compression(%d)", int(c))
	}
	return compressionNames[c]
}

// ParseCompression returns the codec with the given name. The empty string
// and "none" are Uncompressed.
func ParseCompression(name string) (Compression, error) {
	switch name := strings.ToLower(strings.TrimSpace(name)); name {
	case "", "none":
		return Uncompressed, nil
	default:
		for i, n := range compressionNames {
			if n == name {
				return Compression(i), nil
			}
		}
		return Uncompressed, fmt.Errorf("%w: ndarrow/ndio: unknown compression %q", arrow.ErrInvalid, name)
	}
}

// Option configures readers and writers.
type Option func(*config)

type config struct {
	ctx         context.Context
	mem         memory.Allocator
	parallel    bool
	compression Compression
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		ctx: context.Background(),
		mem: memory.DefaultAllocator,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (cfg *config) flattenOptions() []ndarrow.Option {
	return []ndarrow.Option{
		ndarrow.WithAllocator(cfg.mem),
		ndarrow.WithParallel(cfg.parallel),
	}
}

// WithAllocator specifies the Arrow memory allocator used while reading,
// broadcasting and writing.
func WithAllocator(mem memory.Allocator) Option {
	return func(cfg *config) {
		cfg.mem = mem
	}
}

// WithParallel enables concurrent broadcasting of the columns and concurrent
// decoding of Parquet columns.
func WithParallel(v bool) Option {
	return func(cfg *config) {
		cfg.parallel = v
	}
}

// WithCompression specifies the codec used by WriteIPC and WriteParquet.
// IPC streams only support LZ4 and Zstd.
func WithCompression(c Compression) Option {
	return func(cfg *config) {
		cfg.compression = c
	}
}

// WithContext specifies the context used while reading Parquet files.
func WithContext(ctx context.Context) Option {
	return func(cfg *config) {
		cfg.ctx = ctx
	}
}

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

package ndarrow

import (
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// Option configures broadcasting and flattening.
type Option func(*config)

type config struct {
	mem      memory.Allocator
	parallel bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{mem: memory.DefaultAllocator}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithAllocator specifies the Arrow memory allocator used for the
// broadcast arrays.
func WithAllocator(mem memory.Allocator) Option {
	return func(cfg *config) {
		cfg.mem = mem
	}
}

// WithParallel controls whether the arrays of a Record are materialized
// concurrently. The default is false.
func WithParallel(v bool) Option {
	return func(cfg *config) {
		cfg.parallel = v
	}
}

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
	"fmt"
	"io"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/ndarrow/ndarrow-go/ndarrow"
)

// Format is an output format for flattened records.
type Format int

const (
	CSV Format = iota
	IPC
	Parquet
	JSON
)

var formatNames = [...]string{"csv", "ipc", "parquet", "json"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat returns the format with the given name. "arrow" is an alias
// for IPC.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "arrow" {
		return IPC, nil
	}
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return CSV, fmt.Errorf("%w: ndarrow/ndio: unknown format %q", arrow.ErrInvalid, name)
}

// Write flattens rec and writes it to w in the given format.
func Write(w io.Writer, rec *ndarrow.Record, format Format, opts ...Option) error {
	switch format {
	case CSV:
		return WriteCSV(w, rec, opts...)
	case IPC:
		return WriteIPC(w, rec, opts...)
	case Parquet:
		return WriteParquet(w, rec, opts...)
	case JSON:
		return WriteJSON(w, rec, opts...)
	default:
		return fmt.Errorf("%w: ndarrow/ndio: unknown format %s", arrow.ErrInvalid, format)
	}
}

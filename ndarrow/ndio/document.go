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
	"bytes"
	"io"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/goccy/go-json"
	"github.com/ndarrow/ndarrow-go/ndarrow"
	"golang.org/x/xerrors"
)

// document is the JSON form of an n-dimensional record:
//
//	{"columns": [
//	  {"name": "temp", "type": "float64", "nullable": true,
//	   "dimensions": [{"name": "time", "size": 2}, {"name": "depth", "size": 3}],
//	   "values": [1.5, 2, null, 4, 5, 6]},
//	  {"name": "station", "type": "utf8", "values": ["a"]}
//	]}
//
// A column without dimensions is a scalar and must hold a single value.
type document struct {
	Columns []column `json:"columns"`
}

type column struct {
	Name       string             `json:"name"`
	Type       string             `json:"type"`
	Nullable   *bool              `json:"nullable,omitempty"`
	Dimensions ndarrow.Dimensions `json:"dimensions"`
	Values     json.RawMessage    `json:"values"`
}

// ReadDocument decodes a JSON document into a record.
// Columns are nullable unless they set "nullable" to false.
func ReadDocument(r io.Reader, opts ...Option) (*ndarrow.Record, error) {
	cfg := newConfig(opts...)

	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, xerrors.Errorf("ndarrow/ndio: could not decode document: %w", err)
	}

	fields := make([]arrow.Field, len(doc.Columns))
	arrays := make([]*ndarrow.Array, 0, len(doc.Columns))
	defer func() {
		for _, arr := range arrays {
			arr.Release()
		}
	}()

	for i, col := range doc.Columns {
		if col.Name == "" {
			return nil, xerrors.Errorf("ndarrow/ndio: column %d has no name: %w", i, arrow.ErrInvalid)
		}
		if len(col.Values) == 0 {
			return nil, xerrors.Errorf("ndarrow/ndio: column %q has no values: %w", col.Name, arrow.ErrInvalid)
		}

		dt, err := ParseDataType(col.Type)
		if err != nil {
			return nil, xerrors.Errorf("ndarrow/ndio: column %q: %w", col.Name, err)
		}

		arr, _, err := array.FromJSON(cfg.mem, dt, bytes.NewReader(col.Values))
		if err != nil {
			return nil, xerrors.Errorf("ndarrow/ndio: column %q: could not parse values: %w", col.Name, err)
		}
		nd, err := ndarrow.NewArray(arr, col.Dimensions)
		arr.Release()
		if err != nil {
			return nil, xerrors.Errorf("ndarrow/ndio: column %q: %w", col.Name, err)
		}
		arrays = append(arrays, nd)

		fields[i] = arrow.Field{
			Name:     col.Name,
			Type:     dt,
			Nullable: col.Nullable == nil || *col.Nullable,
		}
	}

	return ndarrow.NewRecord(fields, arrays)
}

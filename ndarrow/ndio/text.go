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
	"io"

	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/csv"
	"github.com/ndarrow/ndarrow-go/ndarrow"
	"golang.org/x/xerrors"
)

// WriteCSV flattens rec and writes it to w as CSV with a header line.
// Nulls are written as empty fields.
func WriteCSV(w io.Writer, rec *ndarrow.Record, opts ...Option) error {
	cfg := newConfig(opts...)

	flat, err := rec.Flatten(cfg.flattenOptions()...)
	if err != nil {
		return err
	}
	defer flat.Release()

	wr := csv.NewWriter(w, flat.Schema(), csv.WithHeader(true), csv.WithNullWriter(""))
	if err := wr.Write(flat); err != nil {
		return xerrors.Errorf("ndarrow/ndio: could not write CSV record: %w", err)
	}
	if err := wr.Flush(); err != nil {
		return xerrors.Errorf("ndarrow/ndio: could not flush CSV writer: %w", err)
	}
	return nil
}

// WriteJSON flattens rec and writes it to w as one JSON object per row.
func WriteJSON(w io.Writer, rec *ndarrow.Record, opts ...Option) error {
	cfg := newConfig(opts...)

	flat, err := rec.Flatten(cfg.flattenOptions()...)
	if err != nil {
		return err
	}
	defer flat.Release()

	if err := array.RecordToJSON(flat, w); err != nil {
		return xerrors.Errorf("ndarrow/ndio: could not write JSON rows: %w", err)
	}
	return nil
}

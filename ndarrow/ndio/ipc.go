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

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/ndarrow/ndarrow-go/ndarrow"
	"golang.org/x/xerrors"
)

// WriteIPC flattens rec and writes it to w as an Arrow IPC stream.
func WriteIPC(w io.Writer, rec *ndarrow.Record, opts ...Option) error {
	cfg := newConfig(opts...)

	ipcOpts, err := ipcCompression(cfg.compression)
	if err != nil {
		return err
	}

	flat, err := rec.Flatten(cfg.flattenOptions()...)
	if err != nil {
		return err
	}
	defer flat.Release()

	ipcOpts = append(ipcOpts, ipc.WithSchema(flat.Schema()), ipc.WithAllocator(cfg.mem))
	wr := ipc.NewWriter(w, ipcOpts...)
	if err := wr.Write(flat); err != nil {
		wr.Close()
		return xerrors.Errorf("ndarrow/ndio: could not write IPC record: %w", err)
	}
	if err := wr.Close(); err != nil {
		return xerrors.Errorf("ndarrow/ndio: could not close IPC stream: %w", err)
	}
	return nil
}

func ipcCompression(c Compression) ([]ipc.Option, error) {
	switch c {
	case Uncompressed:
		return nil, nil
	case LZ4:
		return []ipc.Option{ipc.WithLZ4()}, nil
	case Zstd:
		return []ipc.Option{ipc.WithZstd()}, nil
	default:
		return nil, xerrors.Errorf("ndarrow/ndio: %s compression is not supported by IPC streams: %w", c, arrow.ErrNotImplemented)
	}
}

// ReadIPC reads every record batch of the Arrow IPC stream r and rebuilds
// the n-dimensional record written by WriteIPC.
func ReadIPC(r io.Reader, opts ...Option) (*ndarrow.Record, error) {
	cfg := newConfig(opts...)

	rdr, err := ipc.NewReader(r, ipc.WithAllocator(cfg.mem))
	if err != nil {
		return nil, xerrors.Errorf("ndarrow/ndio: could not open IPC stream: %w", err)
	}
	defer rdr.Release()

	var recs []arrow.Record
	defer func() {
		for _, rec := range recs {
			rec.Release()
		}
	}()
	for rdr.Next() {
		rec := rdr.Record()
		rec.Retain()
		recs = append(recs, rec)
	}
	if err := rdr.Err(); err != nil {
		return nil, xerrors.Errorf("ndarrow/ndio: could not read IPC stream: %w", err)
	}

	tbl := array.NewTableFromRecords(rdr.Schema(), recs)
	defer tbl.Release()

	return fromTable(cfg, tbl, rdr.Schema().Metadata())
}

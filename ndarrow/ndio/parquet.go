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
	"github.com/apache/arrow/go/v17/parquet"
	"github.com/apache/arrow/go/v17/parquet/compress"
	"github.com/apache/arrow/go/v17/parquet/file"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"
	"github.com/ndarrow/ndarrow-go/ndarrow"
	"golang.org/x/xerrors"
)

var parquetCodecs = map[Compression]compress.Compression{
	Uncompressed: compress.Codecs.Uncompressed,
	Snappy:       compress.Codecs.Snappy,
	Gzip:         compress.Codecs.Gzip,
	Brotli:       compress.Codecs.Brotli,
	Zstd:         compress.Codecs.Zstd,
	LZ4:          compress.Codecs.Lz4,
}

// WriteParquet flattens rec and writes it to w as a Parquet file with a
// single row group. The Arrow schema, shape metadata included, is stored in
// the file.
func WriteParquet(w io.Writer, rec *ndarrow.Record, opts ...Option) error {
	cfg := newConfig(opts...)

	codec, ok := parquetCodecs[cfg.compression]
	if !ok {
		return xerrors.Errorf("ndarrow/ndio: unknown parquet compression %s: %w", cfg.compression, arrow.ErrInvalid)
	}

	flat, err := rec.Flatten(cfg.flattenOptions()...)
	if err != nil {
		return err
	}
	defer flat.Release()

	props := parquet.NewWriterProperties(
		parquet.WithCompression(codec),
		parquet.WithAllocator(cfg.mem),
	)
	arrProps := pqarrow.NewArrowWriterProperties(
		pqarrow.WithStoreSchema(),
		pqarrow.WithAllocator(cfg.mem),
	)

	fw, err := pqarrow.NewFileWriter(flat.Schema(), w, props, arrProps)
	if err != nil {
		return xerrors.Errorf("ndarrow/ndio: could not create parquet writer: %w", err)
	}
	if err := fw.Write(flat); err != nil {
		fw.Close()
		return xerrors.Errorf("ndarrow/ndio: could not write parquet record: %w", err)
	}
	if err := fw.Close(); err != nil {
		return xerrors.Errorf("ndarrow/ndio: could not close parquet writer: %w", err)
	}
	return nil
}

// ReadParquet reads the Parquet file r and rebuilds the n-dimensional record
// written by WriteParquet. Files written by other tools are read as
// one-dimensional records.
func ReadParquet(r parquet.ReaderAtSeeker, opts ...Option) (*ndarrow.Record, error) {
	cfg := newConfig(opts...)

	pf, err := file.NewParquetReader(r, file.WithReadProps(parquet.NewReaderProperties(cfg.mem)))
	if err != nil {
		return nil, xerrors.Errorf("ndarrow/ndio: could not open parquet file: %w", err)
	}
	defer pf.Close()

	fr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{Parallel: cfg.parallel}, cfg.mem)
	if err != nil {
		return nil, xerrors.Errorf("ndarrow/ndio: could not create parquet reader: %w", err)
	}

	tbl, err := fr.ReadTable(cfg.ctx)
	if err != nil {
		return nil, xerrors.Errorf("ndarrow/ndio: could not read parquet file: %w", err)
	}
	defer tbl.Release()

	md := tbl.Schema().Metadata()
	if md.FindKey(ndarrow.MetadataKey) < 0 {
		if v := pf.MetaData().KeyValueMetadata().FindValue(ndarrow.MetadataKey); v != nil {
			md = arrow.NewMetadata([]string{ndarrow.MetadataKey}, []string{*v})
		}
	}
	return fromTable(cfg, tbl, md)
}

/*
 * files.go, part of gocastep.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gocastep is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package castep

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Compression is the on-disk encoding of a seed file.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
)

// CompressionOf picks the compression from the file extension:
// .gz is gzip, .zst and .zstd are zstd, anything else is plain text.
func CompressionOf(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	default:
		return Plain
	}
}

// SeedName returns name without directory, compression extension and
// .cell/.param extension. "run/SiC.cell.zst" gives "SiC".
func SeedName(name string) string {
	base := filepath.Base(name)
	if CompressionOf(base) != Plain {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".cell", ".param":
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base
}

type nopCloser struct {
	io.Reader
}

func (n nopCloser) Close() error { return nil }

func newReader(c Compression, r io.Reader) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	default:
		return nopCloser{r}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (n nopWriteCloser) Close() error { return nil }

func newWriter(c Compression, w io.Writer) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	default:
		return nopWriteCloser{w}, nil
	}
}

// ReadFile returns the whole text of the file name, decompressing it
// if the extension says so.
func ReadFile(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", IOError(err, name, "open")
	}
	defer f.Close()
	r, err := newReader(CompressionOf(name), f)
	if err != nil {
		return "", IOError(err, name, "decompress")
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return "", IOError(err, name, "read")
	}
	return string(b), nil
}

// WriteFile writes content to the file name, compressing it if the extension
// says so. The text is written to a temporary file in the same directory
// which is then renamed to name, so a reader never sees a partial file.
func WriteFile(name, content string) error {
	dir := filepath.Dir(name)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(name)+".tmp*")
	if err != nil {
		return IOError(err, name, "create")
	}
	tmpname := tmp.Name()
	fail := func(err error, action string) error {
		tmp.Close()
		os.Remove(tmpname)
		return IOError(err, name, action)
	}
	w, err := newWriter(CompressionOf(name), tmp)
	if err != nil {
		return fail(err, "compress")
	}
	if _, err = io.WriteString(w, content); err != nil {
		w.Close()
		return fail(err, "write")
	}
	if err = w.Close(); err != nil {
		return fail(err, "write")
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpname)
		return IOError(err, name, "close")
	}
	if err = os.Rename(tmpname, name); err != nil {
		os.Remove(tmpname)
		return IOError(err, name, "rename")
	}
	return nil
}

/*
 * config.go, part of gocastep.
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

package seedfile

import (
	"io"
	"os"

	"github.com/pelletier/go-toml"

	castep "github.com/rmera/gocastep"
)

// Config is the content of a TOML configuration file for the generator.
// Only the [seedfile] table is read.
//
//	[seedfile]
//	task = "bandstructure"
//	potentials_dir = "/opt/castep/pots"
//	edft = true
//	precision = "ultrafine"
//	kpoint_quality = "medium"
//	strict = false
//	compress = ".gz"
type Config struct {
	Seedfile GeneratorConfig `toml:"seedfile"`
}

// GeneratorConfig holds the generator settings. Empty strings and false
// values leave the corresponding setting of a Handle untouched.
type GeneratorConfig struct {
	Task          string `toml:"task"`
	PotentialsDir string `toml:"potentials_dir"`
	EDFT          bool   `toml:"edft"`
	Precision     string `toml:"precision"`
	KpointQuality string `toml:"kpoint_quality"`
	Strict        bool   `toml:"strict"`
	Compress      string `toml:"compress"`
}

// DecodeConfig reads a configuration from r.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := new(Config)
	if err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, castep.NewError(castep.InvalidToken, castep.Position{}, "bad configuration: %v", err)
	}
	return cfg, nil
}

// ReadConfig reads the configuration file name.
func ReadConfig(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, castep.IOError(err, name, "open")
	}
	defer f.Close()
	cfg, err := DecodeConfig(f)
	if err != nil {
		if e, ok := err.(*castep.Error); ok {
			e.WithFilename(name)
		}
		return nil, castep.ErrDecorate(err, "ReadConfig")
	}
	return cfg, nil
}

// Apply sets H from the configuration. It fails on an unknown task,
// precision or k-point quality, leaving H partly set.
func (C *Config) Apply(H *Handle) error {
	g := C.Seedfile
	if g.Task != "" {
		t, err := ParseTask(g.Task)
		if err != nil {
			return castep.ErrDecorate(err, "Apply")
		}
		H.SetTask(t)
	}
	if g.Precision != "" {
		p, err := ParsePrecision(g.Precision)
		if err != nil {
			return castep.ErrDecorate(err, "Apply")
		}
		H.SetPrecision(p)
	}
	if g.KpointQuality != "" {
		k, err := ParseKpointQuality(g.KpointQuality)
		if err != nil {
			return castep.ErrDecorate(err, "Apply")
		}
		H.SetKpointQuality(k)
	}
	if g.PotentialsDir != "" {
		H.SetPotentialsDir(g.PotentialsDir)
	}
	if g.EDFT {
		H.SetEDFT(true)
	}
	if g.Compress != "" {
		H.SetCompression(g.Compress)
	}
	return nil
}

// Options returns the parse options the configuration asks for.
func (C *Config) Options(filename string) *castep.Options {
	return &castep.Options{Filename: filename, Strict: C.Seedfile.Strict}
}

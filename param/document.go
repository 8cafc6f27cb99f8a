/*
 * document.go, part of gocastep.
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

package param

import (
	"fmt"
	"io"
	"strings"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/grammar"
)

// Document is the content of a .param file.
type Document struct {
	General       General
	BandStructure BandStructure
	BasisSet      BasisSet
	ElecMin       ElectronicMinimization
	Electronic    Electronic
	GeometryOpt   GeometryOpt
	XC            ExchangeCorrelation
	Population    Population
	Units         Units
}

// Section identifies one section of the document.
type Section int

const (
	SectionGeneral Section = iota
	SectionBandStructure
	SectionBasisSet
	SectionElecMin
	SectionElectronic
	SectionGeometryOpt
	SectionXC
	SectionPopulation
	SectionUnits
)

type section struct {
	name     string
	keywords []keyword
}

// Sections are emitted in this order. STOP goes after all of them.
var sections = []section{
	{"General", generalKeywords},
	{"BandStructure", bandStructureKeywords},
	{"BasisSet", basisKeywords},
	{"ElectronicMinimization", elecMinKeywords},
	{"Electronic", electronicKeywords},
	{"GeometryOpt", geomKeywords},
	{"ExchangeCorrelation", xcKeywords},
	{"Population", populationKeywords},
	{"Units", unitsKeywords},
}

func (S Section) String() string {
	if S < 0 || int(S) >= len(sections) {
		return fmt.Sprintf("Section(%d)", int(S))
	}
	return sections[S].name
}

var dispatch = map[string]*keyword{}

func init() {
	for i := range sections {
		for j := range sections[i].keywords {
			kw := &sections[i].keywords[j]
			for _, n := range kw.names {
				if _, ok := dispatch[n]; ok {
					panic("param: keyword " + n + " bound twice")
				}
				dispatch[n] = kw
			}
		}
	}
}

// Keywords returns the names of all the recognized keywords, in
// emission order.
func Keywords() []string {
	var ret []string
	for _, s := range sections {
		for _, kw := range s.keywords {
			ret = append(ret, kw.names...)
		}
	}
	return ret
}

// Parse reads the text of a .param file. Unknown keywords and blocks are
// returned as events unless opts asks for strict parsing. opts can be nil.
func Parse(text string, opts *castep.Options) (*Document, []castep.Event, error) {
	rec := castep.NewRecorder(opts)
	f, err := grammar.ParseString(rec.Filename(), text)
	if err != nil {
		return nil, nil, castep.ErrDecorate(err, "param.Parse")
	}
	D := new(Document)
	for _, it := range f.Items {
		if it.Block != nil {
			if err := rec.Unknown(it.Block.Name(), true, it.Block.Pos); err != nil {
				return nil, nil, castep.ErrDecorate(err, "param.Parse")
			}
			continue
		}
		kw, ok := dispatch[it.Field.Name()]
		if !ok {
			if err := rec.Unknown(it.Field.Name(), false, it.Field.Pos); err != nil {
				return nil, nil, castep.ErrDecorate(err, "param.Parse")
			}
			continue
		}
		if err := kw.parse(D, it.Field); err != nil {
			return nil, nil, castep.ErrDecorate(err, "param.Parse")
		}
	}
	return D, rec.Events(), nil
}

// ReadFile parses the .param file name, which can be compressed.
func ReadFile(name string, opts *castep.Options) (*Document, []castep.Event, error) {
	text, err := castep.ReadFile(name)
	if err != nil {
		return nil, nil, castep.ErrDecorate(err, "param.ReadFile")
	}
	o := castep.Options{Filename: name}
	if opts != nil {
		o = *opts
		if o.Filename == "" {
			o.Filename = name
		}
	}
	D, ev, err := Parse(text, &o)
	if err != nil {
		return nil, nil, castep.ErrDecorate(err, "param.ReadFile")
	}
	return D, ev, nil
}

func (D *Document) lines(s section) []string {
	var ret []string
	for _, kw := range s.keywords {
		if kw.emit != nil {
			ret = append(ret, kw.emit(D)...)
		}
	}
	return ret
}

// EmitSection returns the lines of one section, with no blank line around.
func (D *Document) EmitSection(s Section) string {
	ls := D.lines(sections[s])
	if len(ls) == 0 {
		return ""
	}
	return strings.Join(ls, "\n") + "\n"
}

// Emit returns the text of the document. Sections are separated by
// a blank line and empty sections are skipped.
func (D *Document) Emit() string {
	var b strings.Builder
	for i := range sections {
		s := D.EmitSection(Section(i))
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s)
	}
	if D.General.Stop {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("STOP\n")
	}
	return b.String()
}

func (D *Document) String() string { return D.Emit() }

// WriteTo writes the text of the document to w.
func (D *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, D.Emit())
	return int64(n), err
}

// WriteFile writes the document to name, compressed according to its
// extension.
func (D *Document) WriteFile(name string) error {
	if err := castep.WriteFile(name, D.Emit()); err != nil {
		return castep.ErrDecorate(err, "param.WriteFile")
	}
	return nil
}

// Equal reports whether both documents emit the same text. Absent units
// and explicit default units are thus equal.
func (D *Document) Equal(o *Document) bool {
	return D.Emit() == o.Emit()
}

// Has reports whether the keyword name (any case) is set in the document.
// For alternatives, any name of the group works.
func (D *Document) Has(name string) bool {
	kw, ok := dispatch[strings.ToUpper(name)]
	return ok && kw.set(D)
}

// Clone returns a deep copy of D.
func (D *Document) Clone() *Document {
	ret := *D
	for _, s := range sections {
		for _, kw := range s.keywords {
			kw.take(&ret, D)
		}
	}
	return &ret
}

// Merge copies into D every keyword set in src and absent in D.
func (D *Document) Merge(src *Document) {
	for _, s := range sections {
		for _, kw := range s.keywords {
			if !kw.set(D) {
				kw.take(D, src)
			}
		}
	}
}

// Override copies into D every keyword set in src, replacing what D had.
func (D *Document) Override(src *Document) {
	for _, s := range sections {
		for _, kw := range s.keywords {
			if kw.set(src) {
				kw.take(D, src)
			}
		}
	}
}

// Builder assembles a document from sections.
type Builder struct {
	d Document
}

func NewBuilder() *Builder { return new(Builder) }

func (B *Builder) General(s General) *Builder                { B.d.General = s; return B }
func (B *Builder) BandStructure(s BandStructure) *Builder    { B.d.BandStructure = s; return B }
func (B *Builder) BasisSet(s BasisSet) *Builder              { B.d.BasisSet = s; return B }
func (B *Builder) ElecMin(s ElectronicMinimization) *Builder { B.d.ElecMin = s; return B }
func (B *Builder) Electronic(s Electronic) *Builder          { B.d.Electronic = s; return B }
func (B *Builder) GeometryOpt(s GeometryOpt) *Builder        { B.d.GeometryOpt = s; return B }
func (B *Builder) XC(s ExchangeCorrelation) *Builder         { B.d.XC = s; return B }
func (B *Builder) Population(s Population) *Builder          { B.d.Population = s; return B }
func (B *Builder) Units(s Units) *Builder                    { B.d.Units = s; return B }

// Build returns a new document. The builder can be used again.
// Build returns a new document that shares nothing with the builder.
func (B *Builder) Build() *Document {
	return B.d.Clone()
}

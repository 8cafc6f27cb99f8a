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

package cell

import (
	"io"
	"strings"

	"golang.org/x/exp/slices"

	castep "github.com/rmera/gocastep"
	"github.com/rmera/gocastep/grammar"
)

// Document is the content of a .cell file.
type Document struct {
	Lattice   LatticeParam
	Positions IonicPositions
	Entries   []Entry
	//false until a positions block has been set.
	hasPositions bool
}

// New returns a document with the given lattice and positions and no entries.
func New(l LatticeParam, p IonicPositions) *Document {
	return &Document{Lattice: l, Positions: p, hasPositions: true}
}

// dkey tells apart blocks and fields with the same name.
type dkey struct {
	block bool
	name  string
}

type handler func(D *Document, it grammar.Item) error

func blockEntry(parse func(*grammar.Block) (Entry, error)) handler {
	return func(D *Document, it grammar.Item) error {
		e, err := parse(it.Block)
		if err != nil {
			return err
		}
		D.SetEntry(e)
		return nil
	}
}

func fieldEntry(parse func(*grammar.Field) (Entry, error)) handler {
	return func(D *Document, it grammar.Item) error {
		e, err := parse(it.Field)
		if err != nil {
			return err
		}
		D.SetEntry(e)
		return nil
	}
}

func flagEntry(mk func(bool) Entry) handler {
	return fieldEntry(func(f *grammar.Field) (Entry, error) { return parseFlag(f, mk) })
}

func lattice(parse func(*grammar.Block) (LatticeParam, error)) handler {
	return func(D *Document, it grammar.Item) error {
		l, err := parse(it.Block)
		if err != nil {
			return err
		}
		D.Lattice = l
		return nil
	}
}

func positions(absolute bool) handler {
	return func(D *Document, it grammar.Item) error {
		p, err := parsePositions(it.Block, absolute)
		if err != nil {
			return err
		}
		D.SetPositions(p)
		return nil
	}
}

func block(name string) dkey { return dkey{true, name} }
func field(name string) dkey { return dkey{false, name} }

// The first name of each entry is the one written.
var dispatch = map[dkey]handler{
	block("LATTICE_CART"):   lattice(parseLatticeCart),
	block("LATTICE_ABC"):    lattice(parseLatticeABC),
	block("POSITIONS_FRAC"): positions(false),
	block("POSITIONS_ABS"):  positions(true),

	block("KPOINT_LIST"):                  blockEntry(parseKpointList),
	block("KPOINTS_LIST"):                 blockEntry(parseKpointList),
	field("KPOINT_MP_GRID"):               fieldEntry(parseMPGrid),
	field("KPOINTS_MP_GRID"):              fieldEntry(parseMPGrid),
	field("KPOINT_MP_SPACING"):            fieldEntry(parseMPSpacing),
	field("KPOINTS_MP_SPACING"):           fieldEntry(parseMPSpacing),
	field("KPOINT_MP_OFFSET"):             fieldEntry(parseMPOffset),
	field("KPOINTS_MP_OFFSET"):            fieldEntry(parseMPOffset),
	block("BS_KPOINT_LIST"):               blockEntry(parseBSKpointList),
	block("SPECTRAL_KPOINT_LIST"):         blockEntry(parseBSKpointList),
	block("BS_KPOINT_PATH"):               blockEntry(parseBSKpointPath),
	block("SPECTRAL_KPOINT_PATH"):         blockEntry(parseBSKpointPath),
	field("BS_KPOINT_PATH_SPACING"):       fieldEntry(parseBSPathSpacing),
	field("SPECTRAL_KPOINT_PATH_SPACING"): fieldEntry(parseBSPathSpacing),

	field("FIX_ALL_CELL"): flagEntry(func(b bool) Entry { return FixAllCell(b) }),
	field("FIX_ALL_IONS"): flagEntry(func(b bool) Entry { return FixAllIons(b) }),
	field("FIX_COM"):      flagEntry(func(b bool) Entry { return FixCOM(b) }),
	field("FIX_VOL"):      flagEntry(func(b bool) Entry { return FixVol(b) }),

	block("IONIC_CONSTRAINTS"):   blockEntry(parseIonicConstraints),
	block("CELL_CONSTRAINTS"):    blockEntry(parseCellConstraints),
	block("EXTERNAL_EFIELD"):     blockEntry(parseEField),
	block("EXTERNAL_PRESSURE"):   blockEntry(parsePressure),
	block("SPECIES_MASS"):        blockEntry(parseSpeciesMass),
	block("SPECIES_POT"):         blockEntry(parseSpeciesPot),
	block("SPECIES_LCAO_STATES"): blockEntry(parseSpeciesLCAO),
	block("HUBBARD_U"):           blockEntry(parseHubbardU),
	block("HUBBARD_ALPHA"):       blockEntry(parseHubbardAlpha),
	block("SYMMETRY_OPS"):        blockEntry(parseSymmetryOps),
	field("SYMMETRY_GENERATE"):   fieldEntry(parseSymmetryGenerate),
	field("QUANTIZATION_AXIS"):   fieldEntry(parseQuantizationAxis),
	field("QUANTISATION_AXIS"):   fieldEntry(parseQuantizationAxis),
}

// Parse reads the text of a .cell file. A lattice block and a positions
// block are required. Unknown keywords and blocks are returned as events
// unless opts asks for strict parsing. opts can be nil.
func Parse(text string, opts *castep.Options) (*Document, []castep.Event, error) {
	rec := castep.NewRecorder(opts)
	f, err := grammar.ParseString(rec.Filename(), text)
	if err != nil {
		return nil, nil, castep.ErrDecorate(err, "cell.Parse")
	}
	D := new(Document)
	for _, it := range f.Items {
		var k dkey
		if it.Block != nil {
			k = block(it.Block.Name())
		} else {
			k = field(it.Field.Name())
		}
		h, ok := dispatch[k]
		if !ok {
			if err := rec.Unknown(k.name, k.block, it.Pos()); err != nil {
				return nil, nil, castep.ErrDecorate(err, "cell.Parse")
			}
			continue
		}
		if err := h(D, it); err != nil {
			return nil, nil, castep.ErrDecorate(err, "cell.Parse")
		}
	}
	end := castep.Position{Filename: rec.Filename()}
	if D.Lattice == nil {
		return nil, nil, castep.NewError(castep.MissingBlock, end, "no LATTICE_CART or LATTICE_ABC block")
	}
	if !D.hasPositions {
		return nil, nil, castep.NewError(castep.MissingBlock, end, "no POSITIONS_FRAC or POSITIONS_ABS block")
	}
	return D, rec.Events(), nil
}

// ReadFile parses the .cell file name, which can be compressed.
func ReadFile(name string, opts *castep.Options) (*Document, []castep.Event, error) {
	text, err := castep.ReadFile(name)
	if err != nil {
		return nil, nil, castep.ErrDecorate(err, "cell.ReadFile")
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
		return nil, nil, castep.ErrDecorate(err, "cell.ReadFile")
	}
	return D, ev, nil
}

// SetPositions replaces the positions block.
func (D *Document) SetPositions(p IonicPositions) {
	D.Positions = p
	D.hasPositions = true
}

// Elements returns the element of each atom, in order.
func (D *Document) Elements() []castep.Element {
	return D.Positions.Elements()
}

func (D *Document) index(k EntryKind) int {
	return slices.IndexFunc(D.Entries, func(e Entry) bool { return e.Kind() == k })
}

// Entry returns the entry of kind k, if there is one.
func (D *Document) Entry(k EntryKind) (Entry, bool) {
	if i := D.index(k); i >= 0 {
		return D.Entries[i], true
	}
	return nil, false
}

// SetEntry puts e in the document. An entry of the same kind is replaced
// in place, otherwise e goes at the end.
func (D *Document) SetEntry(e Entry) {
	if i := D.index(e.Kind()); i >= 0 {
		D.Entries[i] = e
		return
	}
	D.Entries = append(D.Entries, e)
}

// EnsureEntry adds e at the end if there is no entry of the same kind,
// and reports whether it did.
func (D *Document) EnsureEntry(e Entry) bool {
	if D.index(e.Kind()) >= 0 {
		return false
	}
	D.Entries = append(D.Entries, e)
	return true
}

// RemoveEntry removes the entry of kind k and reports whether there was one.
func (D *Document) RemoveEntry(k EntryKind) bool {
	i := D.index(k)
	if i < 0 {
		return false
	}
	D.Entries = slices.Delete(D.Entries, i, i+1)
	return true
}

// MoveEntry moves the entry of kind k to position to, shifting the others.
// to is clamped to the valid range. It reports whether there was an entry
// of kind k.
func (D *Document) MoveEntry(k EntryKind, to int) bool {
	i := D.index(k)
	if i < 0 {
		return false
	}
	e := D.Entries[i]
	D.Entries = slices.Delete(D.Entries, i, i+1)
	to = max(0, min(to, len(D.Entries)))
	D.Entries = slices.Insert(D.Entries, to, e)
	return true
}

// Emit returns the text of the document: lattice, positions and then the
// entries in order.
func (D *Document) Emit() string {
	var b strings.Builder
	if D.Lattice != nil {
		b.WriteString(D.Lattice.Emit())
	}
	b.WriteString(D.Positions.Emit())
	for _, e := range D.Entries {
		b.WriteString(e.Emit())
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
		return castep.ErrDecorate(err, "cell.WriteFile")
	}
	return nil
}

// Equal reports whether both documents emit the same text.
func (D *Document) Equal(o *Document) bool {
	return D.Emit() == o.Emit()
}

// Builder assembles a cell document.
type Builder struct {
	d Document
}

func NewBuilder() *Builder { return new(Builder) }

func (B *Builder) Lattice(l LatticeParam) *Builder { B.d.Lattice = l; return B }

func (B *Builder) Positions(p IonicPositions) *Builder { B.d.SetPositions(p); return B }

// Entry sets e, replacing any entry of the same kind.
func (B *Builder) Entry(e Entry) *Builder { B.d.SetEntry(e); return B }

// EntryIfAbsent sets e only if there is no entry of the same kind.
func (B *Builder) EntryIfAbsent(e Entry) *Builder { B.d.EnsureEntry(e); return B }

// Build returns a new document. It fails with MissingBlock if the lattice
// or the positions were not set. The builder can be used again.
func (B *Builder) Build() (*Document, error) {
	if B.d.Lattice == nil {
		return nil, castep.NewError(castep.MissingBlock, castep.Position{}, "no lattice given")
	}
	if !B.d.hasPositions {
		return nil, castep.NewError(castep.MissingBlock, castep.Position{}, "no positions given")
	}
	return B.d.Clone(), nil
}

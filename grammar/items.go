/*
 * items.go, part of gocastep.
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

package grammar

import (
	"strings"

	castep "github.com/rmera/gocastep"
)

// Field is a keyword line outside any block: "KEY : value", "KEY value",
// "KEY = value" or a lone "KEY". The separator is not kept in Values.
type Field struct {
	Key    string
	Pos    castep.Position
	Values []Token
}

// Name returns the keyword in upper case.
func (F *Field) Name() string {
	return strings.ToUpper(F.Key)
}

// Row is one line of a block body.
type Row struct {
	Tokens []Token
	Pos    castep.Position
}

// Block is a %BLOCK NAME ... %ENDBLOCK NAME section.
type Block struct {
	Key  string
	Pos  castep.Position
	Rows []Row
	End  castep.Position
}

// Name returns the block name in upper case.
func (B *Block) Name() string {
	return strings.ToUpper(B.Key)
}

// Item is either a Field or a Block. Exactly one of them is not nil.
type Item struct {
	Field *Field
	Block *Block
}

// Pos returns the position where the item starts.
func (I Item) Pos() castep.Position {
	if I.Block != nil {
		return I.Block.Pos
	}
	return I.Field.Pos
}

// File is the syntactic content of a .param or .cell file.
type File struct {
	Filename string
	Items    []Item
}

// ParseString splits text into fields and blocks. It fails on
// syntactic errors only: unterminated, nested or mismatched blocks,
// lines starting with a separator and separators without a value.
// Keywords are not checked here.
func ParseString(filename, text string) (*File, error) {
	ls, err := lines(filename, text)
	if err != nil {
		return nil, castep.ErrDecorate(err, "grammar.ParseString")
	}
	F := &File{Filename: filename}
	for i := 0; i < len(ls); i++ {
		l := ls[i]
		first := l[0]
		switch first.Kind {
		case BlockOpen:
			b, next, err := block(ls, i)
			if err != nil {
				return nil, castep.ErrDecorate(err, "grammar.ParseString")
			}
			F.Items = append(F.Items, Item{Block: b})
			i = next
		case BlockClose:
			return nil, castep.NewError(castep.BlockMismatch, first.Pos, "%s without a matching %%BLOCK", first.Text)
		case Sep:
			return nil, castep.NewError(castep.InvalidToken, first.Pos, "line starts with separator %q", first.Text)
		default:
			f, err := field(l)
			if err != nil {
				return nil, castep.ErrDecorate(err, "grammar.ParseString")
			}
			F.Items = append(F.Items, Item{Field: f})
		}
	}
	return F, nil
}

func field(l []Token) (*Field, error) {
	f := &Field{Key: l[0].Text, Pos: l[0].Pos}
	rest := l[1:]
	if len(rest) > 0 && rest[0].Kind == Sep {
		if len(rest) == 1 {
			return nil, castep.NewError(castep.MissingValue, rest[0].Pos, "no value given for %s", f.Key)
		}
		rest = rest[1:]
	}
	for _, t := range rest {
		if t.Kind == BlockOpen || t.Kind == BlockClose {
			return nil, castep.NewError(castep.InvalidToken, t.Pos, "%s in the middle of a line", t.Text)
		}
	}
	f.Values = rest
	return f, nil
}

// block reads the block that opens at line start. It returns the block and
// the index of its closing line.
func block(ls [][]Token, start int) (*Block, int, error) {
	open := ls[start]
	if len(open) < 2 || open[1].Kind != Word {
		return nil, 0, castep.NewError(castep.MissingValue, open[0].Pos, "%%BLOCK without a name")
	}
	if len(open) > 2 {
		return nil, 0, castep.NewError(castep.ExtraTokens, open[2].Pos, "unexpected %q after block name", open[2].Text)
	}
	b := &Block{Key: open[1].Text, Pos: open[0].Pos}
	for i := start + 1; i < len(ls); i++ {
		l := ls[i]
		switch l[0].Kind {
		case BlockOpen:
			return nil, 0, castep.NewError(castep.NestedBlock, l[0].Pos, "block opened inside block %s", b.Key)
		case BlockClose:
			if len(l) < 2 || l[1].Kind != Word {
				return nil, 0, castep.NewError(castep.MissingValue, l[0].Pos, "%%ENDBLOCK without a name")
			}
			if !strings.EqualFold(l[1].Text, b.Key) {
				return nil, 0, castep.NewError(castep.BlockMismatch, l[1].Pos, "block %s closed as %s", b.Key, l[1].Text)
			}
			if len(l) > 2 {
				return nil, 0, castep.NewError(castep.ExtraTokens, l[2].Pos, "unexpected %q after block name", l[2].Text)
			}
			b.End = l[0].Pos
			return b, i, nil
		default:
			for _, t := range l[1:] {
				if t.Kind == BlockOpen || t.Kind == BlockClose {
					return nil, 0, castep.NewError(castep.InvalidToken, t.Pos, "%s in the middle of a line", t.Text)
				}
			}
			b.Rows = append(b.Rows, Row{Tokens: l, Pos: l[0].Pos})
		}
	}
	return nil, 0, castep.NewError(castep.UnterminatedBlock, b.Pos, "block %s is never closed", b.Key)
}

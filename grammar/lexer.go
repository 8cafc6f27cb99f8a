/*
 * lexer.go, part of gocastep.
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
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	castep "github.com/rmera/gocastep"
)

//The rules are tried in order, so EOL has to come before Whitespace (which
//would otherwise eat the \r of a \r\n) and the block markers before Word.
var seedLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `[#!][^\n]*`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t\r\f\v]+`},
	{Name: "EndBlock", Pattern: `(?i)%endblock\b`},
	{Name: "Block", Pattern: `(?i)%block\b`},
	{Name: "Sep", Pattern: `[:=]`},
	{Name: "Word", Pattern: `[^\s:=#!]+`},
})

var (
	symComment    = seedLexer.Symbols()["Comment"]
	symEOL        = seedLexer.Symbols()["EOL"]
	symWhitespace = seedLexer.Symbols()["Whitespace"]
	symEndBlock   = seedLexer.Symbols()["EndBlock"]
	symBlock      = seedLexer.Symbols()["Block"]
	symSep        = seedLexer.Symbols()["Sep"]
)

// TokenKind tells apart the significant tokens of a line.
type TokenKind int

const (
	Word TokenKind = iota
	Sep
	BlockOpen
	BlockClose
)

// Token is a significant piece of text in a line.
type Token struct {
	Kind TokenKind
	Text string
	Pos  castep.Position
}

func (T Token) String() string { return T.Text }

func position(p lexer.Position) castep.Position {
	return castep.Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// lines splits text into lines of significant tokens. Comments, blanks
// and empty lines are dropped.
func lines(filename, text string) ([][]Token, error) {
	lex, err := seedLexer.LexString(filename, text)
	if err != nil {
		return nil, lexError(err, filename)
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, lexError(err, filename)
	}
	var ret [][]Token
	var cur []Token
	for _, t := range raw {
		switch {
		case t.EOF() || t.Type == symEOL:
			if len(cur) > 0 {
				ret = append(ret, cur)
				cur = nil
			}
		case t.Type == symComment || t.Type == symWhitespace:
		default:
			kind := Word
			switch t.Type {
			case symSep:
				kind = Sep
			case symBlock:
				kind = BlockOpen
			case symEndBlock:
				kind = BlockClose
			}
			cur = append(cur, Token{Kind: kind, Text: t.Value, Pos: position(t.Pos)})
		}
	}
	if len(cur) > 0 {
		ret = append(ret, cur)
	}
	return ret, nil
}

func lexError(err error, filename string) error {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return castep.NewError(castep.InvalidToken, position(lerr.Pos), "%s", lerr.Msg)
	}
	return castep.NewError(castep.InvalidToken, castep.Position{Filename: filename}, "%s", err.Error())
}

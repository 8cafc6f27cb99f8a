/*
 * doc.go, part of gocastep.
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
 * gocastep is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package castep is the root package of gocastep, a library for reading, building and
writing the two input files of the CASTEP plane-wave DFT program: the parameters
file (.param) and the cell file (.cell).

The root package holds what every other package needs: the positions and
categorised errors reported by the parsers, the recoverable events produced by
unknown keywords, the periodic table, compressed file I/O and the number
formatting used when emitting files.

	**gocastep packages**

    units: unit enumerations and value-with-optional-unit quantities.

    grammar: tokeniser for both formats. Produces fields and named blocks
	with byte offsets and line numbers.

    param: the parameters document, its keyword table, parser, emitter and builders.

    cell: the cell document (lattice, positions, additional entries), parser,
	emitter, builders and lattice geometry.

    v3: gonum-backed matrices of 3D vectors, used for lattice algebra.

    seedfile: task templates that build a .cell/.param pair from a structure.

    kplot: plots of band-structure k-point paths.

Nothing here runs CASTEP. The library only deals with its input text.

*/
package castep

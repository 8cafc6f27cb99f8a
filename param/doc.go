/*
 * doc.go, part of gocastep.
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

//Package param reads, builds and writes CASTEP .param files.
//
//A Document is a set of sections, each a struct of optional fields: nil
//means the keyword is not written. Keywords that can be given in more than
//one way (NEXTRA_BANDS or PERC_EXTRA_BANDS, for instance) share one slot of an
//interface type, and the last one read wins.
//
//Each keyword is bound to its slot, reader and writer in a table, one per
//section, and the tables drive parsing, emission, Merge and Override.
package param

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

//Package cell reads, builds and writes CASTEP .cell files.
//
//A Document has a lattice, the ionic positions and an ordered list of
//entries: k-point settings, constraints, species tables and the like. Each
//entry has a Kind, and a document holds at most one entry of each kind.
//Keywords that are alternatives of each other (KPOINT_LIST, KPOINT_MP_GRID
//and KPOINT_MP_SPACING, for instance) share a kind, so the last one read
//replaces the others, keeping the place of the first.
package cell

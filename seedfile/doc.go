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

/*
Package seedfile writes ready to run CASTEP seed files.

A Handle takes the structure from a .cell document and completes it
for a task: the species tables, the k-point sampling and the fixed
constraints on the cell side; the cutoff energy, spin and electronic
minimizer on the parameters side. The cutoff energy is read from the
pseudopotential files of the elements present.

	h := seedfile.NewHandle()
	h.SetTask(seedfile.GeomOpt)
	h.SetPotentialsDir("/opt/castep/pots")
	err := h.BuildInput(doc, "TiO2")

A Handle can also be set from the [seedfile] table of a TOML file, see
Config.
*/
package seedfile

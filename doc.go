// Package reltrie is the core algorithmic library (spec §2: "Relation
// trie"): a persistent, multi-dimensional hash trie over fixed-arity
// tuples, with structural sharing across snapshots and a transient bulk
// mode for batches. See reladapter for how it takes a tuple apart and
// relmatch for how partial keys are expressed.
package reltrie

// License.
//
// This file is part of the reltrie library.
//
// reltrie is free software: you can redistribute it and/or modify it under
// the terms of the GNU Lesser General Public License as published by the
// Free Software Foundation, either version 3 of the License, or (at your
// option) any later version.
//
// reltrie is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU Lesser General Public License for
// more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with reltrie. If not, see <http://www.gnu.org/licenses/>.

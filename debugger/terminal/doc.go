// This file is part of memscope.
//
// memscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// memscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with memscope.  If not, see <https://www.gnu.org/licenses/>.

// Package terminal defines the operations required by the command line
// interface of the memscope debugger. Implementations are in the plainterm
// and colorterm sub-packages.
//
// A terminal prints plain lines of text in one of several styles and the
// LineRecords of a memory view. How a record is decorated to show the
// current line and the highlighted cell is left to the implementation. Every
// implementation prints records with a two character prefix before the
// address label so that columns given to the CLICK command are the same in
// all terminals.
package terminal

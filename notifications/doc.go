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

// Package notifications allow communication between the debugging session and
// the memory views. The session publishes notices on a Bus and every
// Subscriber registered with that Bus is told about the notice.
//
// There is no global dispatcher. The owner of the session creates a Bus and
// subscribes the views it wants to keep informed.
//
// Delivery is synchronous, on the goroutine that publishes the notice, and in
// the order in which subscribers were added. Each subscriber receives each
// notice at most once.
package notifications

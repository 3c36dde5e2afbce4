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

package notifications

import (
	"fmt"

	"github.com/jetsetilly/memscope/backend"
)

// Notice describes events raised by the debugging session.
type Notice string

// List of defined notifications.
const (
	// a new backend is available. subscribers should rebind to it
	NotifyBackendAttached Notice = "NotifyBackendAttached"

	// the state of the debugged process has changed (eg. it has been
	// stepped or a breakpoint has been hit). subscribers should redraw
	NotifyStateChanged Notice = "NotifyStateChanged"

	// another part of the debugger would like the memory views to show an
	// address
	NotifyNavigate Notice = "NotifyNavigate"

	// the stack pointer is known to have moved to a new address. only of
	// interest to stack views
	NotifyStackAddress Notice = "NotifyStackAddress"
)

// Subscriber implementations are told about notices published on a Bus.
type Subscriber interface {
	BackendAttached(b backend.Backend)
	StateChanged()
	NavigateTo(address uint64)
	StackAddress(address uint64)
}

// Bus is an explicit list of subscribers.
type Bus struct {
	subscribers []Subscriber

	// the most recent notices published. used by the terminal to show what
	// has happened
	history []Notice
}

// maximum length of the history.
const maxHistory = 32

// Subscribe adds a subscriber to the bus. Adding the same subscriber twice
// has no effect.
func (bus *Bus) Subscribe(s Subscriber) {
	for _, t := range bus.subscribers {
		if t == s {
			return
		}
	}
	bus.subscribers = append(bus.subscribers, s)
}

// Unsubscribe removes a subscriber from the bus.
func (bus *Bus) Unsubscribe(s Subscriber) {
	for i, t := range bus.subscribers {
		if t == s {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			return
		}
	}
}

func (bus *Bus) record(notice Notice) {
	bus.history = append(bus.history, notice)
	if len(bus.history) > maxHistory {
		bus.history = bus.history[len(bus.history)-maxHistory:]
	}
}

// History returns the most recently published notices, oldest first.
func (bus *Bus) History() []Notice {
	return bus.history
}

// Publish a notice to all subscribers. The arguments required depend on the
// notice:
//
//	NotifyBackendAttached  backend.Backend
//	NotifyStateChanged     none
//	NotifyNavigate         uint64
//	NotifyStackAddress     uint64
func (bus *Bus) Publish(notice Notice, args ...any) error {
	switch notice {
	case NotifyBackendAttached:
		if len(args) != 1 {
			return fmt.Errorf("notifications: %s requires one argument", notice)
		}
		b, ok := args[0].(backend.Backend)
		if !ok && args[0] != nil {
			return fmt.Errorf("notifications: %s: cannot use %T as backend", notice, args[0])
		}
		bus.record(notice)
		for _, s := range bus.subscribers {
			s.BackendAttached(b)
		}

	case NotifyStateChanged:
		if len(args) != 0 {
			return fmt.Errorf("notifications: %s takes no arguments", notice)
		}
		bus.record(notice)
		for _, s := range bus.subscribers {
			s.StateChanged()
		}

	case NotifyNavigate, NotifyStackAddress:
		if len(args) != 1 {
			return fmt.Errorf("notifications: %s requires one argument", notice)
		}
		a, ok := args[0].(uint64)
		if !ok {
			return fmt.Errorf("notifications: %s: cannot use %T as address", notice, args[0])
		}
		bus.record(notice)
		for _, s := range bus.subscribers {
			if notice == NotifyNavigate {
				s.NavigateTo(a)
			} else {
				s.StackAddress(a)
			}
		}

	default:
		return fmt.Errorf("notifications: unknown notice %s", notice)
	}

	return nil
}

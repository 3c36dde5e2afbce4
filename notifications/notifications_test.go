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

package notifications_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/memscope/backend"
	"github.com/jetsetilly/memscope/backend/simulated"
	"github.com/jetsetilly/memscope/notifications"
	"github.com/jetsetilly/memscope/test"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) BackendAttached(b backend.Backend) {
	*r.log = append(*r.log, fmt.Sprintf("%s attached %v", r.name, b != nil))
}

func (r *recorder) StateChanged() {
	*r.log = append(*r.log, fmt.Sprintf("%s changed", r.name))
}

func (r *recorder) NavigateTo(address uint64) {
	*r.log = append(*r.log, fmt.Sprintf("%s navigate %#x", r.name, address))
}

func (r *recorder) StackAddress(address uint64) {
	*r.log = append(*r.log, fmt.Sprintf("%s stack %#x", r.name, address))
}

func TestDeliveryOrder(t *testing.T) {
	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}

	var bus notifications.Bus
	bus.Subscribe(a)
	bus.Subscribe(b)

	// subscribing twice does not result in a second delivery
	bus.Subscribe(a)

	test.ExpectSuccess(t, bus.Publish(notifications.NotifyBackendAttached, simulated.NewTarget()))
	test.ExpectSuccess(t, bus.Publish(notifications.NotifyStateChanged))
	test.ExpectSuccess(t, bus.Publish(notifications.NotifyNavigate, uint64(0x1000)))
	test.ExpectSuccess(t, bus.Publish(notifications.NotifyStackAddress, uint64(0x7fff0000)))

	bus.Unsubscribe(a)
	test.ExpectSuccess(t, bus.Publish(notifications.NotifyStateChanged))

	expected := []string{
		"a attached true", "b attached true",
		"a changed", "b changed",
		"a navigate 0x1000", "b navigate 0x1000",
		"a stack 0x7fff0000", "b stack 0x7fff0000",
		"b changed",
	}
	if d := cmp.Diff(expected, log); d != "" {
		t.Errorf("unexpected delivery (-want +got):\n%s", d)
	}

	test.ExpectEquality(t, len(bus.History()), 5)
}

func TestBadArguments(t *testing.T) {
	var log []string
	var bus notifications.Bus
	bus.Subscribe(&recorder{name: "a", log: &log})

	test.ExpectFailure(t, bus.Publish(notifications.NotifyNavigate))
	test.ExpectFailure(t, bus.Publish(notifications.NotifyNavigate, 100))
	test.ExpectFailure(t, bus.Publish(notifications.NotifyStateChanged, 1))
	test.ExpectFailure(t, bus.Publish(notifications.NotifyBackendAttached, "foo"))
	test.ExpectFailure(t, bus.Publish(notifications.Notice("foo")))

	// a nil backend is allowed. it is how a detach is signalled
	test.ExpectSuccess(t, bus.Publish(notifications.NotifyBackendAttached, nil))

	test.ExpectEquality(t, len(log), 1)
	test.ExpectEquality(t, log[0], "a attached false")
}

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

package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/jetsetilly/memscope/backend"
	"github.com/jetsetilly/memscope/backend/ptrace"
	"github.com/jetsetilly/memscope/backend/simulated"
	"github.com/jetsetilly/memscope/debugger"
	"github.com/jetsetilly/memscope/debugger/terminal"
	"github.com/jetsetilly/memscope/debugger/terminal/colorterm"
	"github.com/jetsetilly/memscope/debugger/terminal/plainterm"
	"github.com/jetsetilly/memscope/logger"
	"github.com/jetsetilly/memscope/memview"
	"github.com/jetsetilly/memscope/modalflag"
	"github.com/jetsetilly/memscope/performance"
	"github.com/jetsetilly/memscope/prefs"
	"github.com/jetsetilly/memscope/statsview"
	"github.com/jetsetilly/memscope/version"
)

// options shared by all modes
type options struct {
	log       *bool
	prefs     *string
	term      *string
	statsview *bool
	lines     *int
	address   *string
	profile   *bool
}

func addOptions(md *modalflag.Modes, address string) options {
	return options{
		log:       md.AddBool("log", false, "echo debugging log to stderr"),
		prefs:     md.AddString("prefs", "", "preference values to use for this session (eg. \"memview.wordmode::true\")"),
		term:      md.AddString("term", "PLAIN", "terminal type to use: PLAIN, COLOR"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		lines:     md.AddInt("lines", debugger.DefaultLines, "number of lines drawn for a view"),
		address:   md.AddString("address", address, "address shown by the memory view on startup"),
		profile:   md.AddBool("profile", false, "run session through cpu profiler"),
	}
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("SIM", "ATTACH", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "SIM":
		err = sim(md)

	case "ATTACH":
		err = attach(md)

	case "VERSION":
		fmt.Println(version.Version())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// sim runs the debugger with a simulated process. the process is the same
// for every ATTACH command so edits survive a DETACH
func sim(md *modalflag.Modes) error {
	md.NewMode()

	opts := addOptions(md, fmt.Sprintf("%x", simulated.ExampleData))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	tgt := simulated.NewExampleTarget()

	return run(opts, func() (backend.Backend, error) {
		tgt.Revive()
		return tgt, nil
	})
}

// attach runs the debugger with a real process
func attach(md *modalflag.Modes) error {
	md.NewMode()

	opts := addOptions(md, "")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("process ID required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pid, err := strconv.Atoi(md.GetArg(0))
	if err != nil {
		return fmt.Errorf("process ID must be a number (%s)", md.GetArg(0))
	}

	// every ptrace request must come from the thread that attached
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	return run(opts, func() (backend.Backend, error) {
		proc, err := ptrace.Attach(pid)
		if err != nil {
			return nil, err
		}
		return proc, nil
	})
}

func run(opts options, attach debugger.AttachFunc) error {
	if *opts.log {
		logger.SetEcho(os.Stderr)
	}

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "memscope", "unused preferences: %s", unused)
			}
		}()
	}

	if *opts.statsview {
		if !statsview.Available() {
			return fmt.Errorf("stats server not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	var term terminal.Terminal
	switch strings.ToUpper(*opts.term) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *opts.term)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(nil, nil)
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	p, err := memview.NewPreferences("")
	if err != nil {
		return err
	}

	dbg := debugger.NewDebugger(term, p, attach)
	dbg.SetLines(*opts.lines)

	commands := []string{"ATTACH"}
	if *opts.address != "" {
		commands = append(commands, fmt.Sprintf("GOTO %s", *opts.address))
	}

	if !*opts.profile {
		return dbg.Start(commands)
	}

	err = performance.ProfileCPU("memscope.cpu.profile", func() error {
		return dbg.Start(commands)
	})
	if err != nil {
		return err
	}
	return performance.ProfileMem("memscope.mem.profile")
}

/*
 * setun1958 - Run-loop supervisor.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package machine supervises a single cpu.CPU on its own goroutine: a
// control channel of packets (Start, Stop, Step, Reset, Load, Examine,
// Deposit) drives the one loop that ever touches CPU/memory state.
// The supervisor only marshals requests into, and status out of, that
// one loop; it never runs instructions concurrently with it.
package machine

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/osetun/setun1958/cpu"
	"github.com/osetun/setun1958/loader"
	"github.com/osetun/setun1958/memory"
	"github.com/osetun/setun1958/trit"
)

// MsgType names the kind of request a Packet carries.
type MsgType int

const (
	MsgStart MsgType = iota
	MsgStop
	MsgStep
	MsgReset
	MsgLoad
	MsgExamine
	MsgDeposit
	MsgRegisters
	MsgSetReg
)

// Packet is a single request sent over the Machine's control channel.
// Reply must be non-nil; the goroutine always sends exactly one
// Reply before handling the next packet.
type Packet struct {
	Msg    MsgType
	Addr   trit.Word
	Value  trit.Word
	Name   string
	Reader io.Reader
	Base   trit.Word
	Reply  chan Reply
}

// Reply reports the outcome of a Packet.
type Reply struct {
	Status cpu.Status
	Value  trit.Word
	Regs   cpu.Registers
	Err    error
}

// Machine owns one cpu.CPU and runs its fetch/modify/execute loop on
// a dedicated goroutine.
type Machine struct {
	CPU *cpu.CPU

	wg      sync.WaitGroup
	done    chan struct{}
	ctrl    chan Packet
	running bool
}

// New returns a Machine wrapping a fresh CPU over mem, with io as its
// -00 opcode collaborator (may be nil).
func New(mem *memory.Memory, io cpu.IOController) *Machine {
	return &Machine{
		CPU:  cpu.New(mem, io),
		done: make(chan struct{}),
		ctrl: make(chan Packet),
	}
}

// Start launches the supervisor goroutine. It returns immediately;
// call Stop to shut it down.
func (m *Machine) Start() {
	m.wg.Add(1)
	go m.run()
}

func (m *Machine) run() {
	defer m.wg.Done()
	var lastStatus cpu.Status
	for {
		if m.running {
			select {
			case <-m.done:
				return
			case p := <-m.ctrl:
				m.process(p, lastStatus)
			default:
				lastStatus = m.CPU.Step()
				if lastStatus != cpu.Work {
					m.running = false
				}
			}
			continue
		}
		select {
		case <-m.done:
			return
		case p := <-m.ctrl:
			m.process(p, lastStatus)
		}
	}
}

func (m *Machine) process(p Packet, lastStatus cpu.Status) {
	reply := Reply{Status: lastStatus}
	switch p.Msg {
	case MsgStart:
		m.running = true
	case MsgStop:
		m.running = false
	case MsgStep:
		reply.Status = m.CPU.Step()
		if reply.Status != cpu.Work {
			m.running = false
		}
	case MsgReset:
		m.CPU.Reset()
		m.running = false
	case MsgLoad:
		base := p.Base
		if base.Len() == 0 {
			base = loader.DefaultBase()
		}
		_, _, err := loader.Load(p.Reader, m.CPU.Mem, base)
		reply.Err = err
	case MsgExamine:
		reply.Value = m.CPU.Mem.Load(p.Addr)
	case MsgDeposit:
		m.CPU.Mem.Store(p.Addr, p.Value)
	case MsgRegisters:
		reply.Regs = m.CPU.Regs.Snapshot()
	case MsgSetReg:
		reply.Err = m.setRegister(p.Name, p.Value)
	}
	p.Reply <- reply
}

// setRegister deposits v into the named register, re-aligned to the
// register's fixed width. Runs on the supervisor goroutine only.
func (m *Machine) setRegister(name string, v trit.Word) error {
	r := m.CPU.Regs
	switch name {
	case "c":
		r.SetC(v)
	case "f":
		r.SetF(v)
	case "s":
		r.SetS(v)
	case "r":
		r.SetR(v)
	case "w":
		r.W = v.WidenTo(1)
	case "mb":
		r.MB = v.WidenTo(4)
	default:
		return fmt.Errorf("machine: unknown register %q", name)
	}
	return nil
}

// Stop signals the supervisor goroutine to exit and waits for it,
// with a one-second timeout guarding against a wedged goroutine.
func (m *Machine) Stop() {
	close(m.done)
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
	}
}

// send is the synchronous request/reply helper every exported control
// method funnels through, so every mutation happens on the
// supervisor's single goroutine.
func (m *Machine) send(p Packet) Reply {
	p.Reply = make(chan Reply, 1)
	m.ctrl <- p
	return <-p.Reply
}

// Run sets the CPU running; the supervisor steps it until a halt.
func (m *Machine) Run() { m.send(Packet{Msg: MsgStart}) }

// Halt stops the CPU after its current instruction.
func (m *Machine) Halt() { m.send(Packet{Msg: MsgStop}) }

// Step executes exactly one instruction and returns its status.
func (m *Machine) Step() cpu.Status { return m.send(Packet{Msg: MsgStep}).Status }

// Reset clears the register file.
func (m *Machine) Reset() { m.send(Packet{Msg: MsgReset}) }

// Load reads a program in the nonary text format from r into FRAM
// starting at base.
func (m *Machine) Load(r io.Reader, base trit.Word) error {
	return m.send(Packet{Msg: MsgLoad, Reader: r, Base: base}).Err
}

// Examine returns the word stored at addr.
func (m *Machine) Examine(addr trit.Word) trit.Word {
	return m.send(Packet{Msg: MsgExamine, Addr: addr}).Value
}

// Deposit stores v at addr.
func (m *Machine) Deposit(addr, v trit.Word) {
	m.send(Packet{Msg: MsgDeposit, Addr: addr, Value: v})
}

// Registers returns a copy of the register file.
func (m *Machine) Registers() cpu.Registers {
	return m.send(Packet{Msg: MsgRegisters}).Regs
}

// SetRegister deposits v into the register named by one of "c", "f",
// "w", "s", "r", "mb", re-aligned to that register's width. The
// drum-transfer opcodes take their zone from MB, so the operator sets
// it here before issuing one.
func (m *Machine) SetRegister(name string, v trit.Word) error {
	return m.send(Packet{Msg: MsgSetReg, Name: name, Value: v}).Err
}

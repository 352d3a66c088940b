package common

import "fmt"

// Register is an 8 bit device register with optional read/write hooks.
type Register struct {
	Name string
	Val  uint8

	onWrite func()
	onRead  func() uint8
}

func (r Register) String() string {
	return fmt.Sprintf("%s: 0x%02x", r.Name, r.Val)
}
func (r *Register) Init(name string, val uint8) {
	r.Val = val
	r.Name = name
}
func (r *Register) Initx(name string, val uint8, onWrite func(), onRead func() uint8) {
	r.Init(name, val)
	r.onWrite = onWrite
	r.onRead = onRead
}

func (r *Register) Set(w uint8) {
	r.Val |= w
}
func (r *Register) Clr(w uint8) {
	r.Val &= w ^ 0xFF
}

// Write stores the value and fires the hook.
func (r *Register) Write(w uint8) {
	r.Val = w

	if r.onWrite != nil {
		r.onWrite()
	}
}
func (r *Register) Read() uint8 {
	if r.onRead != nil {
		return r.onRead()
	}
	return r.Val
}

type Register16 struct {
	Name string
	Val  uint16
}

func (r Register16) String() string {
	return fmt.Sprintf("%s: 0x%04x", r.Name, r.Val)
}
func (r *Register16) Init(name string, val uint16) {
	r.Val = val
	r.Name = name
}
func (r *Register16) Write(w uint16) {
	r.Val = w
}
func (r *Register16) Read() uint16 {
	return r.Val
}

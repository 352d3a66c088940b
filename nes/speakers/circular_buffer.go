package speakers

import (
	"fmt"
	"sync"
)

// CircularBuffer decouples the producer clock from the audio backend,
// which drains it from its own streaming goroutine.
type CircularBuffer struct {
	buffer []float64

	// next index to write to
	head int
	// next index to read from
	tail int
	size int

	lockSrc sync.Mutex // don't use this one directly
	wait    *sync.Cond
}

func NewCircularBuffer(size int) *CircularBuffer {
	if size < 2 {
		panic("invalid size for the CircularBuffer (<2)")
	}
	buffer := CircularBuffer{}
	buffer.reset(size)
	return &buffer
}

func (c *CircularBuffer) Write(value float64, wait bool) error {
	c.wait.L.Lock()
	defer c.wait.L.Unlock()

	if c.isFull() {
		if !wait {
			return fmt.Errorf("buffer is full")
		}
		c.wait.Wait()
	}

	c.buffer[c.head] = value
	c.head = c.getNext(c.head)
	c.wait.Signal()

	return nil
}

func (c *CircularBuffer) Read() (float64, error) {
	c.wait.L.Lock()
	defer c.wait.L.Unlock()

	if c.isEmpty() {
		return 0, fmt.Errorf("buffer is empty")
	}

	value := c.buffer[c.tail]
	c.tail = c.getNext(c.tail)

	return value, nil
}

// ReadInto2 fills a stereo sample slice, both channels get the same
// signal. Returns 0 rather than blocking when not enough is buffered.
func (c *CircularBuffer) ReadInto2(slice [][2]float64) int {
	c.wait.L.Lock()
	defer c.wait.L.Unlock()

	if len(slice) > c.available() {
		return 0
	}

	for i := 0; i < len(slice); i++ {
		slice[i][0] = c.buffer[c.tail]
		slice[i][1] = c.buffer[c.tail]
		c.tail = c.getNext(c.tail)
	}

	c.wait.Signal()
	return len(slice)
}

func (c *CircularBuffer) Available() int {
	c.wait.L.Lock()
	defer c.wait.L.Unlock()

	return c.available()
}

// internal helpers
func (c *CircularBuffer) available() int {
	if c.isEmpty() {
		return 0
	}

	if c.head > c.tail {
		return c.head - c.tail - 1
	}

	return c.head + c.size - c.tail
}

// empty because the head still has not written the index the tail wants
func (c *CircularBuffer) isEmpty() bool {
	return c.head == c.tail
}

// full because the tail still has not read where the head points to
func (c *CircularBuffer) isFull() bool {
	return c.getNext(c.head) == c.tail
}

func (c *CircularBuffer) getNext(index int) int {
	if (index + 1) >= c.size {
		return 0
	}
	return index + 1
}

func (c *CircularBuffer) reset(size int) {
	c.head = 0
	c.tail = 0
	c.size = size
	c.buffer = make([]float64, size)
	c.wait = sync.NewCond(&c.lockSrc)
}

package rtl

import (
	"context"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
)

// Reorder converts text from logical to (simplified) visual order.
// Each Directional run is reversed code-point by code-point, then the
// sequence of runs is reversed. Neutral runs are copied byte by byte.
//
// The result has the same length and the same code-points as text. The
// empty string is returned as is, without any classification.
//
// Reorder is not UAX#9; see the package documentation.
func Reorder(text string) string {
	if text == "" {
		return text
	}
	buf := borrowBuffer()
	defer buf.releaseIntoPool()
	buf.runs = AppendRuns(buf.runs, text)
	if len(buf.runs) == 1 && buf.runs[0].Class == Neutral {
		return text
	}
	T().Debugf("rtl: reordering %d runs %v", len(buf.runs), buf.runs)
	for i := len(buf.runs) - 1; i >= 0; i-- {
		run := buf.runs[i]
		if run.Class == Directional {
			buf.out = appendReversed(buf.out, text[run.Start:run.End])
		} else {
			buf.out = append(buf.out, text[run.Start:run.End]...)
		}
	}
	return string(buf.out)
}

// ReverseRun returns s with the order of its code-points reversed.
func ReverseRun(s string) string {
	if len(s) <= 1 {
		return s
	}
	return string(appendReversed(make([]byte, 0, len(s)), s))
}

// appendReversed appends the code-points of s to dst, last one first.
// Malformed bytes are kept as they are, one byte at a time.
func appendReversed(dst []byte, s string) []byte {
	for end := len(s); end > 0; {
		_, w := utf8.DecodeLastRuneInString(s[:end])
		dst = append(dst, s[end-w:end]...)
		end -= w
	}
	return dst
}

// --- Work buffers ------------------------------------------------------

// reorderBuffer holds the scratch space for a single call of Reorder.
type reorderBuffer struct {
	runs []Run
	out  []byte
}

// Reorder is called for every string drawn or measured. To avoid multiple
// allocation of short-lived scratch slices we will pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			buf := &reorderBuffer{
				runs: make([]Run, 0, 8),
				out:  make([]byte, 0, 256),
			}
			return buf, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

func borrowBuffer() *reorderBuffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		T().Errorf("rtl: cannot borrow reorder buffer: %v", err)
		return &reorderBuffer{}
	}
	return o.(*reorderBuffer)
}

// Clears the buffer and puts it back into the pool.
func (buf *reorderBuffer) releaseIntoPool() {
	buf.runs = buf.runs[:0]
	buf.out = buf.out[:0]
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}

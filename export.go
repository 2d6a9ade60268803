package hashdb

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gostonefire/hashdb/internal/utils"
	"github.com/sugawarayuuta/sonnet"
)

// ToText - Writes every entry as a "<key>: <value>\n" line into buf, draining the table's iterator from
// the start. When buf is full, writing stops but the iterator is still drained so that the cursor ends
// up reset. If there is room left after the last byte written, a zero byte is put there; it is not
// counted in n. A truncated result always ends with a zero byte, which takes the place of the last
// text byte. The format is lossy and meant for debugging, there is no parser for it.
//
// It returns:
//   - n is the number of text bytes written, excluding the terminator
//   - err is nil if every entry fit, or ErrTruncated if buf filled up first (buf[:n] is still valid)
func (T *Table) ToText(buf []byte) (n int, err error) {
	T.ResetIterator()

	var line []byte
	var truncated bool
	for {
		entry, ok := T.Next()
		if !ok {
			break
		}
		if truncated {
			continue
		}

		line = appendLine(line[:0], entry.Key, entry.Value)
		copied := copy(buf[n:], line)
		n += copied
		if copied < len(line) {
			truncated = true
		}
	}

	if truncated {
		// the last byte gives way to the terminator so a partial result is always terminated
		if n > 0 {
			n--
			buf[n] = 0
		}
		err = opError("to text", nil, ErrTruncated)
		return
	}

	if n < len(buf) {
		buf[n] = 0
	}

	return
}

// WriteText - Writes every entry as a "<key>: <value>\n" line to w. The table's cursor is not used.
//
// It returns:
//   - written is the number of bytes written to w
//   - err is the first error from w, if any
func (T *Table) WriteText(w io.Writer) (written int64, err error) {
	bw := bufio.NewWriter(w)

	var line []byte
	T.each(func(key []byte, value any) bool {
		line = appendLine(line[:0], key, value)
		var nn int
		nn, err = bw.Write(line)
		written += int64(nn)
		return err == nil
	})
	if err != nil {
		return
	}

	err = bw.Flush()
	return
}

// ToJSON - Returns the entries as a JSON object with keys as property names. Values are encoded as JSON
// values, except []byte values which are encoded as strings. The table's cursor is not used.
func (T *Table) ToJSON() (data []byte, err error) {
	// keys and []byte values are viewed as strings without copying, they only live until Marshal returns
	object := make(map[string]any, T.Len())
	T.each(func(key []byte, value any) bool {
		if b, ok := value.([]byte); ok {
			value = utils.B2s(b)
		}
		object[utils.B2s(key)] = value
		return true
	})

	data, err = sonnet.Marshal(object)
	if err != nil {
		err = opError("to json", nil, err)
	}

	return
}

// appendLine - Appends "<key>: <value>\n" to dst
func appendLine(dst, key []byte, value any) []byte {
	dst = append(dst, key...)
	dst = append(dst, ':', ' ')
	dst = appendValue(dst, value)
	return append(dst, '\n')
}

// appendValue - Appends the text form of value to dst
func appendValue(dst []byte, value any) []byte {
	switch v := value.(type) {
	case []byte:
		return append(dst, v...)
	case string:
		return append(dst, utils.S2b(v)...)
	default:
		return fmt.Appendf(dst, "%v", v)
	}
}

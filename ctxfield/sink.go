/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package ctxfield

import (
	"encoding/binary"

	"dirpx.dev/actx/apis"
)

// BufferSink is an in-memory apis.Sink. Transports use it to frame a
// context block before copying it into a ring buffer; tests use it to
// inspect serialized output. The zero value is ready to use.
type BufferSink struct {
	buf []byte
}

// Ensure BufferSink implements apis.Sink.
var _ apis.Sink = (*BufferSink)(nil)

// AppendByte appends a single byte.
func (s *BufferSink) AppendByte(b byte) {
	s.buf = append(s.buf, b)
}

// AppendUint appends the low size bytes of v in host byte order.
func (s *BufferSink) AppendUint(v uint64, size int) {
	var tmp [8]byte
	binary.NativeEndian.PutUint64(tmp[:], v)
	s.buf = append(s.buf, tmp[:size]...)
}

// AppendString appends the bytes of str followed by a NUL terminator.
func (s *BufferSink) AppendString(str string) {
	s.buf = append(s.buf, str...)
	s.buf = append(s.buf, 0)
}

// Bytes returns the accumulated buffer. The slice is owned by the sink
// and valid until the next Append or Reset.
func (s *BufferSink) Bytes() []byte {
	return s.buf
}

// Len returns the number of accumulated bytes.
func (s *BufferSink) Len() int {
	return len(s.buf)
}

// Reset truncates the buffer, retaining capacity.
func (s *BufferSink) Reset() {
	s.buf = s.buf[:0]
}

package filelog

// buffer is a growing byte scratch with manual capacity management. The
// writer keeps one per backend and resets it per record, so it only allocates
// when a record outgrows every earlier one.
type buffer struct{ b []byte }

func newBuffer(initCap int) buffer {
	if initCap <= 0 {
		initCap = defaultRecordBufferSize
	}
	return buffer{b: make([]byte, 0, initCap)}
}

func (buf *buffer) reset()               { buf.b = buf.b[:0] }
func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }
func (buf *buffer) writeBytes(p []byte)  { buf.b = append(buf.b, p...) }
func (buf *buffer) len() int             { return len(buf.b) }

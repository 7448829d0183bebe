package filelog

import (
	"math"
	"strconv"
	"time"
)

func appendInt64(buf *buffer, v int64)   { buf.b = strconv.AppendInt(buf.b, v, 10) }
func appendUint64(buf *buffer, v uint64) { buf.b = strconv.AppendUint(buf.b, v, 10) }

func appendFloat64(buf *buffer, f float64) {
	switch {
	case math.IsNaN(f):
		buf.writeString("NaN")
	case math.IsInf(f, 1):
		buf.writeString("+Inf")
	case math.IsInf(f, -1):
		buf.writeString("-Inf")
	default:
		buf.b = strconv.AppendFloat(buf.b, f, 'g', -1, 64)
	}
}

func appendDuration(buf *buffer, d time.Duration) { buf.writeString(d.String()) }

func appendRFC3339Nano(buf *buffer, t time.Time) {
	buf.b = t.AppendFormat(buf.b, time.RFC3339Nano)
}

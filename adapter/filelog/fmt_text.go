package filelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/trickstertwo/flog"
)

var (
	textTrue      = []byte("true")
	textFalse     = []byte("false")
	textNull      = []byte("null")
	textLenPrefix = []byte("len:")
)

// appendStamp renders "[<timestamp>]" into dst.
func appendStamp(dst []byte, at time.Time, opts *Options) []byte {
	if opts.UTC {
		at = at.UTC()
	}
	dst = append(dst, '[')
	dst = at.AppendFormat(dst, opts.TimeFormat)
	return append(dst, ']')
}

// formatRecord writes one "[ts] line\n" per physical line of msg. A single
// trailing newline is dropped first; bound and event fields follow the last line.
func formatRecord(buf *buffer, stamp []byte, msg string, boundPrefix []byte, fields []flog.Field) {
	msg = trimTrailingNewline(msg)
	for {
		line := msg
		i := strings.IndexByte(msg, '\n')
		if i >= 0 {
			line = msg[:i]
		}
		buf.writeBytes(stamp)
		buf.writeByte(' ')
		appendValidUTF8(buf, strings.TrimSuffix(line, "\r"))
		if i < 0 {
			break
		}
		buf.writeByte('\n')
		msg = msg[i+1:]
	}

	if len(boundPrefix) > 0 {
		buf.writeBytes(boundPrefix)
	}
	for i := range fields {
		appendTextField(buf, &fields[i])
	}
	buf.writeByte('\n')
}

func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

func appendTextField(buf *buffer, f *flog.Field) {
	buf.writeByte(' ')
	appendValidUTF8(buf, f.Key)
	buf.writeByte('=')
	switch f.Kind {
	case flog.KindString:
		appendTextString(buf, f.Str)
	case flog.KindInt64:
		appendInt64(buf, f.Int)
	case flog.KindUint64:
		appendUint64(buf, f.Uint)
	case flog.KindFloat64:
		appendFloat64(buf, f.Float)
	case flog.KindBool:
		appendBool(buf, f.Bool)
	case flog.KindDuration:
		appendDuration(buf, f.Dur)
	case flog.KindTime:
		appendRFC3339Nano(buf, f.Time)
	default:
		appendTextAny(buf, f.Value())
	}
}

// appendTextAny covers errors, byte slices, Any values and anything the
// bridges hand over untyped.
func appendTextAny(buf *buffer, v any) {
	switch vv := v.(type) {
	case nil:
		buf.writeBytes(textNull)
	case error:
		appendQuoted(buf, vv.Error())
	case []byte:
		buf.writeBytes(textLenPrefix)
		appendInt64(buf, int64(len(vv)))
	case string:
		appendTextString(buf, vv)
	case bool:
		appendBool(buf, vv)
	case int:
		appendInt64(buf, int64(vv))
	case int64:
		appendInt64(buf, vv)
	case uint64:
		appendUint64(buf, vv)
	case float64:
		appendFloat64(buf, vv)
	case time.Time:
		appendRFC3339Nano(buf, vv)
	case time.Duration:
		appendDuration(buf, vv)
	case fmt.Stringer:
		appendTextString(buf, vv.String())
	default:
		appendTextString(buf, fmt.Sprint(vv))
	}
}

func appendBool(buf *buffer, v bool) {
	if v {
		buf.writeBytes(textTrue)
	} else {
		buf.writeBytes(textFalse)
	}
}

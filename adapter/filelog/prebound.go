package filelog

import "github.com/trickstertwo/flog"

// encodeBoundText pre-encodes bound fields once so With children do not pay
// for them on every record.
func encodeBoundText(bound []flog.Field) []byte {
	if len(bound) == 0 {
		return nil
	}
	buf := newBuffer(256)
	for i := range bound {
		appendTextField(&buf, &bound[i]) // leading space included
	}
	return buf.b
}

// ABOUTME: easyjson marshalers for Entry using jwriter/jlexer
// ABOUTME: Unknown fields are skipped so journals from newer builds still load

package journal

import (
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

var (
	_ easyjson.Marshaler   = Entry{}
	_ easyjson.Unmarshaler = (*Entry)(nil)
)

func decodeEntry(in *jlexer.Lexer, out *Entry) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		field := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch field {
		case "seq":
			out.Seq = in.Int()
		case "at":
			out.At = in.Int64()
		case "key":
			out.Name = in.String()
		case "raw":
			out.Raw = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func encodeEntry(out *jwriter.Writer, in Entry) {
	out.RawString(`{"seq":`)
	out.Int(in.Seq)
	out.RawString(`,"at":`)
	out.Int64(in.At)
	out.RawString(`,"key":`)
	out.String(in.Name)
	out.RawString(`,"raw":`)
	out.String(in.Raw)
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler.
func (e Entry) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	encodeEntry(&w, e)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler.
func (e Entry) MarshalEasyJSON(w *jwriter.Writer) {
	encodeEntry(w, e)
}

// UnmarshalJSON supports json.Unmarshaler.
func (e *Entry) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	decodeEntry(&r, e)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler.
func (e *Entry) UnmarshalEasyJSON(l *jlexer.Lexer) {
	decodeEntry(l, e)
}

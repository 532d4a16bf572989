// ABOUTME: Journal entry type: one decoded key with its sequence number, time, name and raw bytes
// ABOUTME: Encoding lives in entry_easyjson.go for reflection-free line encoding

//go:generate easyjson entry.go

package journal

// Entry is one recorded key press.
//
//easyjson:json
type Entry struct {
	Seq  int    `json:"seq"`
	At   int64  `json:"at"` // unix milliseconds
	Name string `json:"key"`
	Raw  string `json:"raw"` // canonical bytes from key.Encode
}

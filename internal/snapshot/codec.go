package snapshot

import (
	"encoding/gob"
	"io"
)

// Recorder writes a gob stream of snapshots, one per tick
type Recorder struct {
	enc *gob.Encoder
}

// NewRecorder creates a recorder writing to w
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: gob.NewEncoder(w)}
}

// Record writes a snapshot
func (r *Recorder) Record(s *Snapshot) error {
	return r.enc.Encode(s)
}

// Player reads back a recorded stream
type Player struct {
	dec *gob.Decoder
}

// NewPlayer creates a player reading from r
func NewPlayer(r io.Reader) *Player {
	return &Player{dec: gob.NewDecoder(r)}
}

// Next reads a snapshot; io.EOF marks the end of the recording
func (p *Player) Next() (*Snapshot, error) {
	var s Snapshot
	if err := p.dec.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

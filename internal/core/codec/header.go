package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zeusync/modkit/internal/core/observability/log"
)

// Magic opens every save header.
var Magic = [4]byte{'M', 'K', 'I', 'D'}

// Version of the header layout.
const Version uint8 = 1

const headerSize = len(Magic) + 1 + 8

// Header describes the module set a save was written under.
type Header struct {
	Version     uint8
	Fingerprint uint64
	// Drift is set on read when the fingerprint differs from the
	// registry's current one.
	Drift bool
}

// WriteHeader records the registry's current fingerprint.
func (e *Encoder) WriteHeader() error {
	var b [headerSize]byte
	copy(b[:], Magic[:])
	b[len(Magic)] = Version
	binary.LittleEndian.PutUint64(b[len(Magic)+1:], e.reg.Fingerprint())
	_, err := e.w.Write(b[:])
	return err
}

// ReadHeader reads a header written by WriteHeader. A fingerprint mismatch
// is not an error: references to missing kinds degrade individually.
func (d *Decoder) ReadHeader() (Header, error) {
	var b [headerSize]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return Header{}, err
	}
	if [4]byte(b[:len(Magic)]) != Magic {
		return Header{}, fmt.Errorf("%w: magic %q", ErrBadHeader, b[:len(Magic)])
	}
	h := Header{
		Version:     b[len(Magic)],
		Fingerprint: binary.LittleEndian.Uint64(b[len(Magic)+1:]),
	}
	if h.Version == 0 || h.Version > Version {
		return Header{}, fmt.Errorf("%w: version %d", ErrBadHeader, h.Version)
	}

	if current := d.reg.Fingerprint(); current != h.Fingerprint {
		h.Drift = true
		d.log.Info("module set changed since save",
			log.Uint64("saved", h.Fingerprint),
			log.Uint64("current", current),
		)
	}
	return h, nil
}

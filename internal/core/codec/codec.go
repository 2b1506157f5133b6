// Package codec persists item kind references across save/load boundaries.
//
// Native kinds are written as their little-endian int32 id. Extension kinds
// are written as Sentinel followed by the owning module's name and the kind's
// name, each prefixed with its length as a 7-bit varint, so that a save stays
// readable after the module set (and therefore the id layout) changes.
package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zeusync/modkit/internal/core/ids"
	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/observability/log"
	"github.com/zeusync/modkit/internal/core/registry"
)

// Sentinel marks a name-encoded extension reference.
const Sentinel = ids.Limit

// MaxStringLen bounds decoded names.
const MaxStringLen = 1 << 12

// Encoder writes kind references to an underlying writer.
type Encoder struct {
	w   io.Writer
	reg *registry.Registry
	buf [binary.MaxVarintLen64]byte
}

func NewEncoder(w io.Writer, reg *registry.Registry) *Encoder {
	return &Encoder{w: w, reg: reg}
}

// WriteID writes a reference to kind id.
func (e *Encoder) WriteID(id item.ID) error {
	if !e.reg.IsExtension(id) {
		return e.writeInt32(int32(id))
	}

	desc, ok := e.reg.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnregisteredID, id)
	}
	if err := e.writeInt32(int32(Sentinel)); err != nil {
		return err
	}
	if err := e.writeString(desc.Module.Name()); err != nil {
		return err
	}
	return e.writeString(desc.Name)
}

// WriteItem writes the kind of it, or None for a nil item.
func (e *Encoder) WriteItem(it *item.Item) error {
	if it == nil {
		return e.WriteID(item.None)
	}
	return e.WriteID(it.Type)
}

func (e *Encoder) writeInt32(v int32) error {
	binary.LittleEndian.PutUint32(e.buf[:4], uint32(v))
	_, err := e.w.Write(e.buf[:4])
	return err
}

func (e *Encoder) writeString(s string) error {
	if len(s) > MaxStringLen {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	n := binary.PutUvarint(e.buf[:], uint64(len(s)))
	if _, err := e.w.Write(e.buf[:n]); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, s)
	return err
}

// Decoder reads kind references written by Encoder.
type Decoder struct {
	r        byteReader
	reg      *registry.Registry
	log      log.Log
	degraded int
}

func NewDecoder(r io.Reader, reg *registry.Registry, logger log.Log) *Decoder {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Decoder{
		r:   asByteReader(r),
		reg: reg,
		log: logger.Named("codec"),
	}
}

// ReadID reads one reference. A name-encoded reference whose module or kind
// is not loaded decodes to item.None; only IO and format failures are errors.
func (d *Decoder) ReadID() (item.ID, error) {
	raw, err := d.readInt32()
	if err != nil {
		return item.None, err
	}
	if item.ID(raw) != Sentinel {
		return item.ID(raw), nil
	}

	module, err := d.readString()
	if err != nil {
		return item.None, fmt.Errorf("module name: %w", err)
	}
	name, err := d.readString()
	if err != nil {
		return item.None, fmt.Errorf("item name: %w", err)
	}

	mod, ok := d.reg.Module(module)
	if !ok {
		d.degrade("module not loaded", module, name)
		return item.None, nil
	}
	id := mod.Resolve(name)
	if id == item.None {
		d.degrade("item not registered", module, name)
	}
	return id, nil
}

// Degraded counts references decoded to None because their module or kind
// was missing.
func (d *Decoder) Degraded() int {
	return d.degraded
}

func (d *Decoder) degrade(reason, module, name string) {
	d.degraded++
	d.log.Debug("unresolved item reference",
		log.String("reason", reason),
		log.String("module", module),
		log.String("item", name),
	)
}

func (d *Decoder) readInt32() (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b[:])), nil
}

func (d *Decoder) readString() (string, error) {
	n, err := binary.ReadUvarint(d.r)
	if err != nil {
		return "", err
	}
	if n > MaxStringLen {
		return "", fmt.Errorf("%w: %d bytes", ErrStringTooLong, n)
	}
	b := make([]byte, n)
	if _, err = io.ReadFull(d.r, b); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}
	return string(b), nil
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

func asByteReader(r io.Reader) byteReader {
	if br, ok := r.(byteReader); ok {
		return br
	}
	return &singleByteReader{r: r}
}

// singleByteReader reads varint bytes one at a time so the decoder never
// consumes past the end of a reference.
type singleByteReader struct {
	r   io.Reader
	one [1]byte
}

func (s *singleByteReader) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *singleByteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.r, s.one[:]); err != nil {
		return 0, err
	}
	return s.one[0], nil
}

// Slot is one persisted inventory slot.
type Slot struct {
	ID    item.ID
	Stack int
}

// WriteSlot writes the kind and stack size of it. Empty slots are written as
// None with a zero stack.
func (e *Encoder) WriteSlot(it *item.Item) error {
	if it.IsAir() {
		if err := e.WriteID(item.None); err != nil {
			return err
		}
		return e.writeInt32(0)
	}
	if err := e.WriteID(it.Type); err != nil {
		return err
	}
	return e.writeInt32(int32(it.Stack))
}

// ReadSlot reads a slot written by WriteSlot. A slot whose kind degraded to
// None comes back empty.
func (d *Decoder) ReadSlot() (Slot, error) {
	id, err := d.ReadID()
	if err != nil {
		return Slot{}, err
	}
	stack, err := d.readInt32()
	if err != nil {
		return Slot{}, err
	}
	if id == item.None || stack <= 0 {
		return Slot{}, nil
	}
	return Slot{ID: id, Stack: int(stack)}, nil
}

package dump

import (
	"bufio"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/typedump/dump/internal/binary"
	"github.com/wippyai/typedump/errors"
)

const invalidDump = "not a valid packet dump"

// DecodeFile opens path and decodes it. The file is closed before
// DecodeFile returns.
func DecodeFile(path string) (*Graph, error) {
	if _, err := os.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFound(errors.PhaseLoad, "file", path)
		}
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindIO, err, "stat "+path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindIO, err, "open "+path)
	}
	defer f.Close()

	g, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	Logger().Debug("loaded type dump", zap.String("path", path))
	return g, nil
}

// DecodeBytes decodes an in-memory dump.
func DecodeBytes(data []byte) (*Graph, error) {
	return decode(binary.NewBytesReader(data))
}

// Decode reads a complete dump from r. On any error the returned graph
// is nil.
func Decode(r io.Reader) (*Graph, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return decode(binary.NewReader(br))
}

func decode(r *binary.Reader) (*Graph, error) {
	d := &decoder{r: r, g: NewGraph()}
	if err := d.decode(); err != nil {
		return nil, err
	}
	Logger().Debug("decoded type dump",
		zap.Int("nodes", d.g.Len()),
		zap.Int("roots", len(d.g.roots)),
		zap.Int("defines", len(d.g.defines)),
		zap.Int("bytes", r.Position()))
	return d.g, nil
}

type decoder struct {
	r *binary.Reader
	g *Graph
}

func (d *decoder) decode() error {
	if err := d.magic(MagicTypes, "type header"); err != nil {
		return err
	}
	numTypes, err := d.r.ReadU32LE()
	if err != nil {
		return d.ioErr("type count", err)
	}
	for i := uint32(0); i < numTypes; i++ {
		if err := d.packet(NoParent); err != nil {
			return err
		}
	}

	if err := d.magic(MagicDefines, "define header"); err != nil {
		return err
	}
	numDefines, err := d.r.ReadU32LE()
	if err != nil {
		return d.ioErr("define count", err)
	}
	for i := uint32(0); i < numDefines; i++ {
		name, err := d.r.ReadCString()
		if err != nil {
			return d.ioErr("define name", err)
		}
		value, err := d.r.ReadCString()
		if err != nil {
			return d.ioErr("define value", err)
		}
		d.g.AddDefine(name, value)
	}
	return nil
}

func (d *decoder) magic(want uint32, section string) error {
	got, err := d.r.ReadU32LE()
	if err != nil {
		return d.ioErr(section, err)
	}
	if got != want {
		return errors.New(errors.PhaseDecode, errors.KindFormat).
			Value(got).
			Detail(invalidDump).
			Cause(d.r.WrapError(section, stderrors.New("bad magic"))).
			Build()
	}
	return nil
}

// packet reads one node and, recursively, its num_children descendants.
func (d *decoder) packet(parent TypeID) error {
	var t Type
	var err error

	if t.MemberName, err = d.r.ReadCString(); err != nil {
		return d.ioErr("member name", err)
	}
	if t.TypeName, err = d.r.ReadCString(); err != nil {
		return d.ioErr("type name", err)
	}
	kind, err := d.r.ReadI32LE()
	if err != nil {
		return d.ioErr("kind", err)
	}
	t.Kind = Kind(kind)
	if !t.Kind.Valid() {
		return errors.InvalidKind(d.pathOf(parent, t.MemberName), kind)
	}
	if t.Size, err = d.r.ReadI32LE(); err != nil {
		return d.ioErr("size", err)
	}
	if t.Alignment, err = d.r.ReadI32LE(); err != nil {
		return d.ioErr("alignment", err)
	}
	isConst, err := d.r.ReadI32LE()
	if err != nil {
		return d.ioErr("const flag", err)
	}
	t.IsConstValue = isConst != 0
	if t.ConstValue, err = d.r.ReadI64LE(); err != nil {
		return d.ioErr("const value", err)
	}
	numChildren, err := d.r.ReadU32LE()
	if err != nil {
		return d.ioErr("child count", err)
	}
	if t.Kind == KindArray && numChildren != 1 {
		return errors.New(errors.PhaseDecode, errors.KindFormat).
			Path(d.pathOf(parent, t.MemberName)...).
			TypeName(t.TypeName).
			Value(numChildren).
			Detail("array must have exactly one element type, got %d children", numChildren).
			Build()
	}

	var id TypeID
	if parent == NoParent {
		id = d.g.AddRoot(t)
	} else {
		id = d.g.AddChild(parent, t)
	}

	for i := uint32(0); i < numChildren; i++ {
		if err := d.packet(id); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) pathOf(parent TypeID, name string) []string {
	if parent == NoParent {
		return []string{name}
	}
	return append(d.g.Path(parent), name)
}

func (d *decoder) ioErr(section string, err error) error {
	return errors.IO(errors.PhaseDecode, "read "+section, d.r.WrapError(section, err))
}

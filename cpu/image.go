package cpu

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

const (
	IMAGE_VERSION = 1 // Current image format version.
)

// cborEncMode encodes images canonically, so equal programs give equal images.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cpu: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// ImageLine maps the first stream offset of a statement to its source line.
type ImageLine struct {
	Offset int `cbor:"1,keyasint"`
	LineNo int `cbor:"2,keyasint"`
}

// Image is the persisted form of a program: the instruction stream plus
// its line table.
type Image struct {
	Version int         `cbor:"1,keyasint"`
	Code    []byte      `cbor:"2,keyasint"`
	Lines   []ImageLine `cbor:"3,keyasint,omitempty"`
}

// Image returns the image of the program.
func (prog *Program) Image() (img *Image) {
	img = &Image{
		Version: IMAGE_VERSION,
		Code:    prog.Binary(),
	}

	for _, stmt := range prog.Statements {
		if len(stmt.Codes) == 0 {
			continue
		}
		img.Lines = append(img.Lines, ImageLine{Offset: stmt.Offset, LineNo: stmt.LineNo})
	}

	return
}

// Program rebuilds a program listing from the image. Each line table entry
// starts a statement; code before the first entry gets line 0.
func (img *Image) Program() (prog *Program, err error) {
	if img.Version != IMAGE_VERSION {
		err = fmt.Errorf("%w: %d", ErrImageVersion, img.Version)
		return
	}

	lines := slices.Clone(img.Lines)
	slices.SortFunc(lines, func(a, b ImageLine) int { return a.Offset - b.Offset })

	prog = &Program{}
	var stmt *Statement
	for pc := 0; pc < len(img.Code); {
		var code Code
		var next int
		code, next, err = Decode(img.Code, pc)
		if err != nil {
			err = errors.Join(ErrImageCode, fmt.Errorf("offset %d: %w", pc, err))
			prog = nil
			return
		}

		for len(lines) > 0 && lines[0].Offset < pc {
			lines = lines[1:]
		}
		starts := len(lines) > 0 && lines[0].Offset == pc
		if starts || stmt == nil {
			lineno := 0
			if starts {
				lineno = lines[0].LineNo
				lines = lines[1:]
			}
			prog.Statements = append(prog.Statements, Statement{LineNo: lineno, Offset: pc})
			stmt = &prog.Statements[len(prog.Statements)-1]
		}

		stmt.Codes = append(stmt.Codes, code)
		stmt.Words = append(stmt.Words, strings.Fields(code.String())...)
		pc = next
	}

	return
}

// EncodeImage writes the CBOR image of prog to w.
func EncodeImage(w io.Writer, prog *Program) error {
	return cborEncMode.NewEncoder(w).Encode(prog.Image())
}

// DecodeImage reads a CBOR image from r and rebuilds its program.
func DecodeImage(r io.Reader) (prog *Program, err error) {
	var img Image
	err = cbor.NewDecoder(r).Decode(&img)
	if err != nil {
		err = fmt.Errorf("cpu: decode image: %w", err)
		return
	}

	return img.Program()
}

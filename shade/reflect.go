// Copyright 2026 The gfx Authors. All rights reserved.

package shade

import (
	"encoding/binary"
	"errors"

	"github.com/Bastacyclop/gfx/driver"
)

// ErrInvalidBinary means that a byte slice is not a valid
// shader binary.
var ErrInvalidBinary = errors.New("shade: invalid SPIR-V binary")

// ErrUnknownStage means that an entry point uses an
// execution model the pipeline vocabulary cannot express.
var ErrUnknownStage = errors.New("shade: unknown execution model")

const spirvMagic = 0x07230203

// Opcodes and enumerants of the subset of SPIR-V the
// scanner understands.
const (
	opName       = 5
	opEntryPoint = 15
	opVariable   = 59
	opDecorate   = 71

	decorationLocation = 30
	storageClassInput  = 1

	modelVertex         = 0
	modelTessControl    = 1
	modelTessEvaluation = 2
	modelGeometry       = 3
	modelFragment       = 4
	modelGLCompute      = 5
)

// Reflect scans a SPIR-V binary and returns its entry
// points with their vertex inputs. Inputs are the
// interface variables of storage class Input that carry a
// location decoration; names are taken from debug
// information when present. Binaries stripped of debug
// names still reflect, with empty input names.
func Reflect(code []byte) ([]EntryPoint, error) {
	if len(code) < 20 || len(code)%4 != 0 {
		return nil, ErrInvalidBinary
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	if words[0] != spirvMagic {
		return nil, ErrInvalidBinary
	}

	type entry struct {
		name  string
		model uint32
		ifIDs []uint32
	}
	var entries []entry
	names := make(map[uint32]string)
	locations := make(map[uint32]uint32)
	inputVars := make(map[uint32]bool)

	for i := 5; i < len(words); {
		count := int(words[i] >> 16)
		op := words[i] & 0xffff
		if count == 0 || i+count > len(words) {
			return nil, ErrInvalidBinary
		}
		args := words[i+1 : i+count]
		switch op {
		case opName:
			if len(args) >= 2 {
				names[args[0]] = decodeString(args[1:])
			}
		case opDecorate:
			if len(args) >= 3 && args[1] == decorationLocation {
				locations[args[0]] = args[2]
			}
		case opVariable:
			if len(args) >= 3 && args[2] == storageClassInput {
				inputVars[args[1]] = true
			}
		case opEntryPoint:
			if len(args) < 3 {
				return nil, ErrInvalidBinary
			}
			name, n := decodeStringN(args[2:])
			entries = append(entries, entry{
				name:  name,
				model: args[0],
				ifIDs: args[2+n:],
			})
		}
		i += count
	}

	out := make([]EntryPoint, 0, len(entries))
	for _, e := range entries {
		stage, err := convModel(e.model)
		if err != nil {
			return nil, err
		}
		ep := EntryPoint{Name: e.name, Stage: stage}
		for _, id := range e.ifIDs {
			if !inputVars[id] {
				continue
			}
			loc, ok := locations[id]
			if !ok {
				// Builtin interface variable.
				continue
			}
			ep.Inputs = append(ep.Inputs, Input{
				Name:     names[id],
				Location: int(loc),
			})
		}
		out = append(out, ep)
	}
	return out, nil
}

// decodeString decodes a nul-terminated literal string
// packed into words.
func decodeString(words []uint32) string {
	s, _ := decodeStringN(words)
	return s
}

// decodeStringN decodes a literal string and returns the
// number of words it occupies.
func decodeStringN(words []uint32) (string, int) {
	var b []byte
	for n, w := range words {
		for s := 0; s < 32; s += 8 {
			c := byte(w >> s)
			if c == 0 {
				return string(b), n + 1
			}
			b = append(b, c)
		}
	}
	return string(b), len(words)
}

func convModel(model uint32) (driver.Stage, error) {
	switch model {
	case modelVertex:
		return driver.StageVertex, nil
	case modelTessControl:
		return driver.StageHull, nil
	case modelTessEvaluation:
		return driver.StageDomain, nil
	case modelGeometry:
		return driver.StageGeometry, nil
	case modelFragment:
		return driver.StagePixel, nil
	case modelGLCompute:
		return driver.StageCompute, nil
	}
	return 0, ErrUnknownStage
}

// Copyright 2026 The gfx Authors. All rights reserved.

// Package shade compiles shader source text and reflects
// the interface of shader binaries for pipeline creation.
package shade

import (
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"

	"github.com/Bastacyclop/gfx/driver"
)

// Input is one vertex input declared by a shader entry
// point.
type Input struct {
	Name     string
	Location int
}

// EntryPoint is one entry point of a shader binary together
// with its reflected inputs.
type EntryPoint struct {
	Name   string
	Stage  driver.Stage
	Inputs []Input
}

// Artifact is the result of compiling shader source text.
type Artifact struct {
	Code    []byte
	Entries []EntryPoint
}

// CompileError wraps a compiler failure. The compiler's
// diagnostics are carried through unchanged.
type CompileError struct {
	Err error
}

func (e *CompileError) Error() string { return "shade: " + e.Err.Error() }

func (e *CompileError) Unwrap() error { return e.Err }

// Compile compiles WGSL source text to a shader binary and
// reflects its entry points from the compiler's IR. Debug
// names are kept in the output so that precompiled binaries
// stay reflectable.
func Compile(source string) (*Artifact, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, &CompileError{Err: err}
	}
	mod, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, &CompileError{Err: err}
	}
	code, err := naga.GenerateSPIRV(mod, spirv.Options{
		Version: spirv.Version1_3,
		Debug:   true,
	})
	if err != nil {
		return nil, &CompileError{Err: err}
	}
	return &Artifact{Code: code, Entries: moduleEntries(mod)}, nil
}

// moduleEntries reflects entry points from compiler IR.
// Inputs come from location-bound entry function arguments;
// arguments that are structs contribute their location-bound
// members. Builtin-bound inputs are not part of the vertex
// interface and are skipped.
func moduleEntries(mod *ir.Module) []EntryPoint {
	entries := make([]EntryPoint, 0, len(mod.EntryPoints))
	for _, ep := range mod.EntryPoints {
		e := EntryPoint{
			Name:  ep.Name,
			Stage: convStage(ep.Stage),
		}
		fn := &ep.Function
		for _, arg := range fn.Arguments {
			if arg.Binding != nil {
				if loc, ok := (*arg.Binding).(ir.LocationBinding); ok {
					e.Inputs = append(e.Inputs, Input{
						Name:     arg.Name,
						Location: int(loc.Location),
					})
				}
				continue
			}
			st, ok := mod.Types[arg.Type].Inner.(ir.StructType)
			if !ok {
				continue
			}
			for _, m := range st.Members {
				if m.Binding == nil {
					continue
				}
				if loc, ok := (*m.Binding).(ir.LocationBinding); ok {
					e.Inputs = append(e.Inputs, Input{
						Name:     m.Name,
						Location: int(loc.Location),
					})
				}
			}
		}
		entries = append(entries, e)
	}
	return entries
}

func convStage(s ir.ShaderStage) driver.Stage {
	switch s {
	case ir.StageVertex:
		return driver.StageVertex
	case ir.StageFragment:
		return driver.StagePixel
	case ir.StageCompute:
		return driver.StageCompute
	}
	panic("unreachable")
}

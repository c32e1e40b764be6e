// Copyright 2026 The gfx Authors. All rights reserved.

package shade

import (
	"errors"
	"testing"

	"github.com/Bastacyclop/gfx/driver"
)

const triangleSource = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> VertexOutput {
    var out: VertexOutput;

    var pos = array<vec2<f32>, 3>(
        vec2<f32>(0.0, 0.5),
        vec2<f32>(-0.5, -0.5),
        vec2<f32>(0.5, -0.5)
    );

    out.position = vec4<f32>(pos[idx], 0.0, 1.0);
    out.color = vec4<f32>(1.0, 0.0, 0.0, 1.0);
    return out;
}

@fragment
fn fs_main(@location(0) color: vec4<f32>) -> @location(0) vec4<f32> {
    return color;
}
`

func findEntry(t *testing.T, entries []EntryPoint, name string) EntryPoint {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entry point %q not found in %d entries", name, len(entries))
	return EntryPoint{}
}

func TestCompile(t *testing.T) {
	art, err := Compile(triangleSource)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(art.Code) < 20 || len(art.Code)%4 != 0 {
		t.Fatalf("Compile produced a malformed binary of %d bytes", len(art.Code))
	}
	magic := uint32(art.Code[0]) | uint32(art.Code[1])<<8 | uint32(art.Code[2])<<16 | uint32(art.Code[3])<<24
	if magic != spirvMagic {
		t.Errorf("Compile output magic:\nhave %#x\nwant %#x", magic, uint32(spirvMagic))
	}

	if len(art.Entries) != 2 {
		t.Fatalf("Compile reflected %d entries, want 2", len(art.Entries))
	}
	vs := findEntry(t, art.Entries, "vs_main")
	if vs.Stage != driver.StageVertex {
		t.Errorf("vs_main stage:\nhave %d\nwant %d", vs.Stage, driver.StageVertex)
	}
	if len(vs.Inputs) != 0 {
		t.Errorf("vs_main has %d location inputs, want 0 (builtin only)", len(vs.Inputs))
	}
	fs := findEntry(t, art.Entries, "fs_main")
	if fs.Stage != driver.StagePixel {
		t.Errorf("fs_main stage:\nhave %d\nwant %d", fs.Stage, driver.StagePixel)
	}
	if len(fs.Inputs) != 1 || fs.Inputs[0].Location != 0 || fs.Inputs[0].Name != "color" {
		t.Errorf("fs_main inputs:\nhave %+v\nwant [{color 0}]", fs.Inputs)
	}
}

func TestCompileStructInputs(t *testing.T) {
	source := `
struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) uv: vec2<f32>,
}

@vertex
fn vs_main(in: VertexInput) -> @builtin(position) vec4<f32> {
    return vec4<f32>(in.position, 1.0);
}
`
	art, err := Compile(source)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	vs := findEntry(t, art.Entries, "vs_main")
	if len(vs.Inputs) != 2 {
		t.Fatalf("vs_main inputs:\nhave %+v\nwant two locations", vs.Inputs)
	}
	if vs.Inputs[0].Name != "position" || vs.Inputs[0].Location != 0 {
		t.Errorf("input 0:\nhave %+v\nwant {position 0}", vs.Inputs[0])
	}
	if vs.Inputs[1].Name != "uv" || vs.Inputs[1].Location != 1 {
		t.Errorf("input 1:\nhave %+v\nwant {uv 1}", vs.Inputs[1])
	}
}

func TestCompileError(t *testing.T) {
	_, err := Compile(`@vertex fn broken( {`)
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("Compile of invalid source:\nhave %v\nwant *CompileError", err)
	}
	if ce.Unwrap() == nil {
		t.Error("CompileError does not carry the compiler diagnostics")
	}
}

// The compiled binary keeps its entry points reflectable
// without the IR at hand.
func TestReflectCompiledOutput(t *testing.T) {
	art, err := Compile(triangleSource)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	entries, err := Reflect(art.Code)
	if err != nil {
		t.Fatalf("Reflect failed: %v", err)
	}
	if findEntry(t, entries, "vs_main").Stage != driver.StageVertex {
		t.Error("reflected vs_main is not a vertex entry")
	}
	if findEntry(t, entries, "fs_main").Stage != driver.StagePixel {
		t.Error("reflected fs_main is not a pixel entry")
	}
}

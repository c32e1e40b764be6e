// Copyright 2026 The gfx Authors. All rights reserved.

package dx12

import (
	"fmt"

	"github.com/Bastacyclop/gfx/driver"
	"github.com/Bastacyclop/gfx/shade"
)

// InvalidSubpassError means that a pipeline description
// named a subpass the render pass does not have.
type InvalidSubpassError struct {
	Index int
}

func (e *InvalidSubpassError) Error() string {
	return fmt.Sprintf("dx12: render pass has no subpass %d", e.Index)
}

// MissingEntryError means that a pipeline description named
// a shader entry point the library does not contain.
type MissingEntryError struct {
	Name string
}

func (e *MissingEntryError) Error() string {
	return fmt.Sprintf("dx12: shader library has no entry point %q", e.Name)
}

// MissingLocationError means that a vertex attribute feeds
// an input location the vertex shader does not declare.
type MissingLocationError struct {
	Location int
}

func (e *MissingLocationError) Error() string {
	return fmt.Sprintf("dx12: vertex shader declares no input at location %d", e.Location)
}

// MissingBindingError means that a vertex attribute names a
// vertex buffer binding the pipeline does not describe.
type MissingBindingError struct {
	Binding int
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("dx12: no vertex buffer bound at binding %d", e.Binding)
}

type shaderEntry struct {
	code   []byte
	stage  driver.Stage
	inputs []shade.Input
}

// ShaderLib is a set of compiled shader entry points that
// pipelines are built from. Entry points are keyed by name;
// when a name appears more than once, the first occurrence
// wins and later ones are reported as warnings.
type ShaderLib struct {
	entries map[string]shaderEntry
}

func newShaderLib(code []byte, entries []shade.EntryPoint) *ShaderLib {
	lib := &ShaderLib{entries: make(map[string]shaderEntry, len(entries))}
	for _, e := range entries {
		if _, ok := lib.entries[e.Name]; ok {
			driver.Warnf("dx12.ShaderLib", driver.Fields{
				"backend": driverName,
				"entry":   e.Name,
				"detail":  "duplicate entry point, keeping first",
			})
			continue
		}
		lib.entries[e.Name] = shaderEntry{
			code:   code,
			stage:  e.Stage,
			inputs: e.Inputs,
		}
	}
	return lib
}

// NewShaderLibrary creates a library from a precompiled
// shader binary, discovering its entry points by
// reflection.
func (d *Device) NewShaderLibrary(code []byte) (*ShaderLib, error) {
	entries, err := shade.Reflect(code)
	if err != nil {
		return nil, err
	}
	return newShaderLib(code, entries), nil
}

// NewShaderLibraryFromSource compiles shader source text and
// creates a library from the result. Compilation failures
// carry the compiler's diagnostics verbatim.
func (d *Device) NewShaderLibraryFromSource(source string) (*ShaderLib, error) {
	art, err := shade.Compile(source)
	if err != nil {
		return nil, err
	}
	return newShaderLib(art.Code, art.Entries), nil
}

// ShaderSource names one entry point to take from a source
// text.
type ShaderSource struct {
	Entry  string
	Stage  driver.Stage
	Source string
}

// NewShaderLibraryFromSources compiles each source and picks
// the named entry point from it. An entry the source does
// not define, or defines for a different stage, fails with a
// *MissingEntryError. Duplicate names across sources follow
// the first-wins rule.
func (d *Device) NewShaderLibraryFromSources(srcs []ShaderSource) (*ShaderLib, error) {
	lib := &ShaderLib{entries: make(map[string]shaderEntry, len(srcs))}
	for i := range srcs {
		src := &srcs[i]
		art, err := shade.Compile(src.Source)
		if err != nil {
			return nil, err
		}
		found := false
		for _, e := range art.Entries {
			if e.Name != src.Entry || e.Stage != src.Stage {
				continue
			}
			found = true
			if _, ok := lib.entries[e.Name]; ok {
				driver.Warnf("dx12.ShaderLib", driver.Fields{
					"backend": driverName,
					"entry":   e.Name,
					"detail":  "duplicate entry point, keeping first",
				})
				break
			}
			lib.entries[e.Name] = shaderEntry{
				code:   art.Code,
				stage:  e.Stage,
				inputs: e.Inputs,
			}
			break
		}
		if !found {
			return nil, &MissingEntryError{Name: src.Entry}
		}
	}
	return lib, nil
}

// Entries returns the names of the library's entry points.
func (l *ShaderLib) Entries() []string {
	names := make([]string, 0, len(l.entries))
	for n := range l.entries {
		names = append(names, n)
	}
	return names
}

// DescSetLayout declares the bindings of one descriptor
// set. Binding order is preserved; it fixes the descriptor
// range order inside the set's root parameter.
type DescSetLayout struct {
	bindings []driver.LayoutBinding
}

// NewDescSetLayout creates a descriptor set layout.
func (d *Device) NewDescSetLayout(bindings []driver.LayoutBinding) *DescSetLayout {
	return &DescSetLayout{bindings: append([]driver.LayoutBinding(nil), bindings...)}
}

// Destroy fails loudly; set layout destruction is not
// implemented in this backend generation.
func (l *DescSetLayout) Destroy() {
	panic("gfx: descriptor set layout destruction not implemented")
}

// PipelineLayout is a root signature built from a sequence
// of descriptor set layouts.
type PipelineLayout struct {
	raw  NativeRootSignature
	sets []*DescSetLayout
}

// CreatePipelineLayout flattens the given set layouts into a
// root signature with one descriptor table per set. Set i
// maps to register space i; within a table, ranges follow
// the layout's binding declaration order.
func (d *Device) CreatePipelineLayout(sets []*DescSetLayout) (*PipelineLayout, error) {
	desc := RootSignatureDesc{
		Parameters:       make([]RootParameter, len(sets)),
		AllowInputLayout: true,
	}
	for i, set := range sets {
		ranges := make([]DescriptorRange, len(set.bindings))
		offset := 0
		for j, b := range set.bindings {
			rt, err := convRangeType(b.Type)
			if err != nil {
				return nil, err
			}
			ranges[j] = DescriptorRange{
				Type:                 rt,
				Count:                b.Count,
				BaseRegister:         b.Binding,
				RegisterSpace:        i,
				OffsetFromTableStart: offset,
			}
			offset += b.Count
		}
		desc.Parameters[i] = RootParameter{Ranges: ranges}
	}
	blob, err := d.api.SerializeRootSignature(&desc)
	if err != nil {
		return nil, err
	}
	raw, err := d.api.CreateRootSignature(blob.Bytes())
	blob.Release()
	if err != nil {
		return nil, err
	}
	return &PipelineLayout{raw: raw, sets: sets}, nil
}

// Destroy fails loudly; pipeline layout destruction is not
// implemented in this backend generation, so the root
// signature is never released.
func (pl *PipelineLayout) Destroy() {
	panic("gfx: pipeline layout destruction not implemented")
}

// GraphicsPipelineDesc describes one graphics pipeline.
// Shader fields name entry points of Lib; empty names leave
// the stage unused, and so do names the library does not
// contain. VS must be set and present in Lib.
type GraphicsPipelineDesc struct {
	Lib    *ShaderLib
	VS     string
	HS     string
	DS     string
	GS     string
	PS     string
	Layout *PipelineLayout
	Pass   *RenderPass
	// Subpass indexes Pass' subpass list.
	Subpass       int
	Topology      driver.Topology
	Raster        driver.RasterState
	DepthStencil  driver.DSState
	Blend         driver.BlendDesc
	VertexBuffers []driver.VertexBufferDesc
	VertexAttrs   []driver.VertexAttrDesc
}

// Pipeline is a compiled graphics pipeline state together
// with the primitive topology it was built for.
type Pipeline struct {
	raw      NativePipeline
	layout   *PipelineLayout
	topology driver.Topology
}

// Topology returns the primitive topology to assemble input
// with when the pipeline is bound.
func (p *Pipeline) Topology() driver.Topology { return p.topology }

// Destroy releases the native pipeline state.
func (p *Pipeline) Destroy() {
	if p == nil {
		return
	}
	if p.raw != nil {
		p.raw.Release()
	}
	*p = Pipeline{}
}

// PipelineResult is the outcome of one description in a
// pipeline creation batch.
type PipelineResult struct {
	Pipeline *Pipeline
	Err      error
}

// CreateGraphicsPipelines builds a batch of pipelines. Each
// description succeeds or fails independently; results keep
// the order of the descriptions.
func (d *Device) CreateGraphicsPipelines(descs []GraphicsPipelineDesc) []PipelineResult {
	results := make([]PipelineResult, len(descs))
	for i := range descs {
		p, err := d.createGraphicsPipeline(&descs[i])
		results[i] = PipelineResult{Pipeline: p, Err: err}
	}
	return results
}

func (d *Device) createGraphicsPipeline(desc *GraphicsPipelineDesc) (*Pipeline, error) {
	if desc.Subpass < 0 || desc.Subpass >= len(desc.Pass.subpasses) {
		return nil, &InvalidSubpassError{Index: desc.Subpass}
	}
	vs, ok := desc.Lib.entries[desc.VS]
	if !ok {
		return nil, &MissingEntryError{Name: desc.VS}
	}

	native := GraphicsPipelineStateDesc{
		RootSignature: desc.Layout.raw,
		VS:            vs.code,
		Blend:         convBlend(desc.Blend),
		SampleMask:    ^uint32(0),
		Rasterizer:    convRasterizer(desc.Raster),
		DepthStencil:  convDepthStencil(desc.DepthStencil),
		Topology:      convTopologyType(desc.Topology),
		DSVFormat:     FormatUnknown,
		SampleCount:   1,
	}
	optional := []struct {
		name string
		dst  *[]byte
	}{
		{desc.HS, &native.HS},
		{desc.DS, &native.DS},
		{desc.GS, &native.GS},
		{desc.PS, &native.PS},
	}
	// An absent entry point disables the stage.
	for _, st := range optional {
		if st.name == "" {
			continue
		}
		if e, ok := desc.Lib.entries[st.name]; ok {
			*st.dst = e.code
		}
	}

	elements, err := inputElements(desc, vs.inputs)
	if err != nil {
		return nil, err
	}
	native.InputLayout = elements

	subpass := desc.Pass.subpasses[desc.Subpass]
	native.RTVFormats = make([]DXGIFormat, len(subpass.ColorAttachments))
	for j, ai := range subpass.ColorAttachments {
		nf, err := convFormat(desc.Pass.attachments[ai].Format)
		if err != nil {
			return nil, err
		}
		native.RTVFormats[j] = nf
	}
	if ds := subpass.DSAttachment; ds >= 0 {
		nf, err := convFormat(desc.Pass.attachments[ds].Format)
		if err != nil {
			return nil, err
		}
		native.DSVFormat = nf
	}

	raw, err := d.api.CreateGraphicsPipelineState(&native)
	if err != nil {
		return nil, err
	}
	return &Pipeline{raw: raw, layout: desc.Layout, topology: desc.Topology}, nil
}

// inputElements builds the native input layout from the
// vertex attribute descriptions, checking each attribute
// against the vertex shader's declared inputs and the
// pipeline's vertex buffer bindings. Semantics follow the
// TEXCOORDn convention with n being the input location.
func inputElements(desc *GraphicsPipelineDesc, inputs []shade.Input) ([]InputElementDesc, error) {
	elements := make([]InputElementDesc, len(desc.VertexAttrs))
	for i, attr := range desc.VertexAttrs {
		found := false
		for _, in := range inputs {
			if in.Location == attr.Location {
				found = true
				break
			}
		}
		if !found {
			return nil, &MissingLocationError{Location: attr.Location}
		}
		if attr.Binding < 0 || attr.Binding >= len(desc.VertexBuffers) {
			return nil, &MissingBindingError{Binding: attr.Binding}
		}
		nf, err := convFormat(attr.Format)
		if err != nil {
			return nil, err
		}
		e := InputElementDesc{
			SemanticName:      "TEXCOORD",
			SemanticIndex:     attr.Location,
			Format:            nf,
			InputSlot:         attr.Binding,
			AlignedByteOffset: attr.Offset,
		}
		if rate := desc.VertexBuffers[attr.Binding].Rate; rate > 0 {
			e.PerInstance = true
			e.InstanceDataStepRate = rate
		}
		elements[i] = e
	}
	return elements, nil
}

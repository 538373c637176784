package gfx

import "fmt"

// Object handles. A handle is valid between its create and delete call.
// The zero value names no object and unbinds when passed to a bind call.
type (
	Shader      uint32
	Program     uint32
	Buffer      uint32
	VertexArray uint32
)

const (
	NoShader      Shader      = 0
	NoProgram     Program     = 0
	NoBuffer      Buffer      = 0
	NoVertexArray VertexArray = 0
)

func (s Shader) Valid() bool      { return s != NoShader }
func (p Program) Valid() bool     { return p != NoProgram }
func (b Buffer) Valid() bool      { return b != NoBuffer }
func (v VertexArray) Valid() bool { return v != NoVertexArray }

func (s Shader) String() string      { return fmt.Sprintf("Shader(%d)", uint32(s)) }
func (p Program) String() string     { return fmt.Sprintf("Program(%d)", uint32(p)) }
func (b Buffer) String() string      { return fmt.Sprintf("Buffer(%d)", uint32(b)) }
func (v VertexArray) String() string { return fmt.Sprintf("VertexArray(%d)", uint32(v)) }

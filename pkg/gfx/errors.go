package gfx

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCreateFailed is matched by every CreateError.
var ErrCreateFailed = errors.New("gfx: create failed")

// CreateError is returned by the Create* calls of a Context
// when the driver could not allocate an object.
type CreateError struct {
	Object string
	Reason string
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("gfx: create %s: %s", e.Object, e.Reason)
}

func (e *CreateError) Is(target error) bool { return target == ErrCreateFailed }

// CompileError holds the info log of a shader that failed to compile.
type CompileError struct {
	Type ShaderType
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gfx: %v shader compilation failed: %s", e.Type, strings.TrimSpace(e.Log))
}

// LinkError holds the info log of a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gfx: program link failed: %s", strings.TrimSpace(e.Log))
}

// Package object defines the object system for the Chili programming language.
//
// This package implements the runtime object system that represents values
// during the execution of a Chili program.
// It defines the value types of the language: integers, booleans, strings,
// null, errors, compiled functions, and built-in functions.
//
// Key components:
//   - [Object] interface: The base interface for all runtime values
//   - Value types ([Integer], [Boolean], [String], [Null], [Error], [CompiledFunction], [Builtin])
//   - The [Builtins] table of native functions with stable indices
//
// Both the compiler (for the constant pool) and the virtual machine (for the
// value stack and globals) manipulate values through this package.
package object

import (
	"fmt"
	"strconv"

	"github.com/tmatias/chili/code"
)

//nolint:revive
const (
	INTEGER_OBJ           = "INTEGER"
	BOOLEAN_OBJ           = "BOOLEAN"
	STRING_OBJ            = "STRING"
	NULL_OBJ              = "NULL"
	ERROR_OBJ             = "ERROR"
	BUILTIN_OBJ           = "BUILTIN"
	COMPILED_FUNCTION_OBJ = "COMPILED_FUNCTION_OBJ"
)

// Type represents the type of object.
type Type string

// Object is the interface that wraps the basic operations of all Chili objects.
// All Chili objects implement this interface.
type Object interface {
	// Type returns the type of the object as a value of Type.
	Type() Type

	// Inspect returns a string representation of the object.
	Inspect() string
}

// Integer represents a Chili integer value.
type Integer struct {
	Value int64
}

// Type returns the type of the object.
func (i *Integer) Type() Type { return INTEGER_OBJ }

// Inspect returns a string representation of the object.
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }

// Boolean represents a Chili boolean value.
//
// The virtual machine pushes one of two canonical instances; fresh Boolean
// values are never allocated during execution.
type Boolean struct {
	Value bool
}

// Type returns the type of the object.
func (b *Boolean) Type() Type { return BOOLEAN_OBJ }

// Inspect returns a string representation of the object.
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }

// String represents a Chili string value. Strings are immutable and compare by content.
type String struct {
	Value string
}

// Type returns the type of the object.
func (s *String) Type() Type { return STRING_OBJ }

// Inspect returns a string representation of the object.
func (s *String) Inspect() string { return s.Value }

// Null represents the Chili null value. A single canonical instance exists.
type Null struct{}

// Type returns the type of the object.
func (n *Null) Type() Type { return NULL_OBJ }

// Inspect returns a string representation of the object.
func (n *Null) Inspect() string { return "null" }

// Error represents a Chili runtime error. Errors are first-class values:
// unsupported operand types and built-in failures produce them, and they
// propagate on the stack like any other value.
type Error struct {
	Message string
}

// Type returns the type of the object.
func (e *Error) Type() Type { return ERROR_OBJ }

// Inspect returns a string representation of the object.
func (e *Error) Inspect() string { return "ERROR: " + e.Message }

// BuiltinFunction represents a Chili builtin function.
type BuiltinFunction func(args ...Object) Object

// Builtin represents a Chili builtin.
type Builtin struct {
	Fn BuiltinFunction
}

// Type returns the type of the object.
func (b *Builtin) Type() Type { return BUILTIN_OBJ }

// Inspect returns a string representation of the object.
func (b *Builtin) Inspect() string { return "builtin function" }

// CompiledFunction represents a compiled piece of bytecode with its instructions, local variables, and parameters.
// CompiledFunction objects are immutable after creation.
type CompiledFunction struct {
	// Represents the bytecode sequence of a compiled function.
	Instructions code.Instructions

	// NumLocals indicates the number of local variables used within the compiled function,
	// parameters included.
	NumLocals int

	// NumParameters specifies the number of parameters accepted by the compiled function.
	NumParameters int
}

// Type returns the object type of the compiled function, which is [COMPILED_FUNCTION_OBJ].
func (c *CompiledFunction) Type() Type { return COMPILED_FUNCTION_OBJ }

// Inspect returns a formatted string representation of the CompiledFunction instance, including its memory address.
func (c *CompiledFunction) Inspect() string { return fmt.Sprintf("CompiledFunction[%p]", c) }

package object

import (
	"fmt"
	"strings"
)

// Builtins is the collection of native functions available to Chili programs.
//
// The position of each entry is its index in the compiler's symbol table and
// in the operand of an OpGetBuiltin instruction; the two must stay in sync,
// so new built-ins are appended, never reordered.
var Builtins = []struct {
	// The name of the built-in function.
	Name string

	// The definition (and implementation) of the built-in function.
	Builtin *Builtin
}{
	{
		"puts",
		&Builtin{Fn: func(args ...Object) Object {
			var out strings.Builder
			for _, arg := range args {
				out.WriteString(arg.Inspect())
			}
			fmt.Println(out.String())
			return nil
		},
		},
	},
	{
		"len",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newError("wrong number of arguments: expected 1, got %d", len(args))
			}
			switch arg := args[0].(type) {
			case *String:
				return &Integer{Value: int64(len(arg.Value))}

			default:
				return newError("argument to `len` not supported, got %s", args[0].Type())
			}
		},
		},
	},
}

func newError(format string, a ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// GetBuiltinByName retrieves a built-in function definition by its name from the predefined [Builtins] collection.
//
// It returns a pointer to the corresponding [Builtin] or nil if the name is not found.
func GetBuiltinByName(name string) *Builtin {
	for _, def := range Builtins {
		if def.Name == name {
			return def.Builtin
		}
	}
	return nil
}

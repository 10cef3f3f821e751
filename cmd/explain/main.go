package main

import (
	"flag"
	"fmt"
	"os"

	"go.bytecodealliance.org/wit"
	"golang.org/x/term"

	"github.com/wippyai/bridge-runtime/resolve"
)

func main() {
	var (
		shape       = flag.String("shape", "", "Shape expression to explain (e.g. \"list<option<u8>>\")")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "stdout is not a terminal, interactive mode unavailable")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *shape == "" {
		fmt.Fprintln(os.Stderr, "Usage: explain -shape <expr>")
		fmt.Fprintln(os.Stderr, "       explain -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Shape grammar:")
		fmt.Fprintln(os.Stderr, "  leaf names:  bool s8..s64 u8..u64 usize f32 f64 string unit foreign trace")
		fmt.Fprintln(os.Stderr, "  containers:  list<T> option<T> box<T> zerocopy<T> array<N, leaf>")
		fmt.Fprintln(os.Stderr, "               tuple<T1, T2[, ...T5]> opaque<GoType>")
		os.Exit(1)
	}

	if err := run(*shape); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(expr string) error {
	rule, err := resolve.ParseShape(expr)
	if err != nil {
		return err
	}

	fmt.Printf("Shape:    %s\n", rule.Shape())
	fmt.Printf("Go type:  %s\n", rule.Go)

	lowered, err := resolve.Emit(rule)
	if err != nil {
		return err
	}
	fmt.Printf("Lowering: %s\n", lowered)

	bt, err := resolve.BoundaryType(rule)
	if err != nil {
		return err
	}
	fmt.Printf("Boundary: %s\n", witText(bt))

	fmt.Printf("\nRule tree:\n%s", rule.Tree())
	return nil
}

// witText renders a boundary type the way WIT spells it. The resolver
// builds anonymous typedefs for compound types, so this walks their
// kinds rather than relying on names.
func witText(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		switch k := v.Kind.(type) {
		case *wit.List:
			return "list<" + witText(k.Type) + ">"
		case *wit.Option:
			return "option<" + witText(k.Type) + ">"
		case *wit.Tuple:
			s := "tuple<"
			for i, tt := range k.Types {
				if i > 0 {
					s += ", "
				}
				s += witText(tt)
			}
			return s + ">"
		case *wit.Own:
			return "own<resource>"
		case *wit.Record:
			return "record"
		default:
			if v.Name != nil {
				return *v.Name
			}
			return fmt.Sprintf("%T", v.Kind)
		}
	default:
		return fmt.Sprintf("%T", t)
	}
}

// Command ovdump is a small developer-facing front end for the parser and
// value walker: `ovdump parse <fixture.json>` runs the parser over a
// pre-lexed token fixture and prints diagnostics, `ovdump tree
// <fixture.json>` does the same and also prints each binding's AST as an
// indented tree, and `ovdump render <fixture.json>` builds a walker.Cursor
// over a described OVM snapshot and prints the rendered value. Fixtures are
// JSON because no lexer ships in this repository (tokens are always
// supplied by an external collaborator); see DESIGN.md.
//
// `parse`/`tree` accept an optional trailing `--db <path>` to additionally
// persist every diagnostic into a SQLite-backed diagnostics.SQLiteSink,
// tagged with the sink's own session id (printed as "db-session", separate
// from the run's session id), so a later process can replay it.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/onyx-lang/onyxfront/internal/ast"
	"github.com/onyx-lang/onyxfront/internal/debugtype"
	"github.com/onyx-lang/onyxfront/internal/diagnostics"
	"github.com/onyx-lang/onyxfront/internal/ovm"
	"github.com/onyx-lang/onyxfront/internal/parser"
	"github.com/onyx-lang/onyxfront/internal/prettyprinter"
	"github.com/onyx-lang/onyxfront/internal/token"
	"github.com/onyx-lang/onyxfront/internal/walker"
)

var colorEnabled = isatty.IsTerminal(os.Stdout.Fd())

func colorize(code, s string) string {
	if !colorEnabled {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s parse|tree|render <fixture.json>\n", os.Args[0])
		os.Exit(1)
	}

	sessionID := uuid.New()
	data, err := os.ReadFile(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading fixture: %s\n", err)
		os.Exit(1)
	}

	var dbPath string
	for i := 3; i+1 < len(os.Args); i++ {
		if os.Args[i] == "--db" {
			dbPath = os.Args[i+1]
		}
	}

	switch os.Args[1] {
	case "parse":
		runParse(sessionID, data, false, dbPath)
	case "tree":
		runParse(sessionID, data, true, dbPath)
	case "render":
		runRender(sessionID, data)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		os.Exit(1)
	}
}

// tokenFixture is the JSON shape a "parse" fixture is decoded from: a flat
// token list, EOF-terminated by the caller if omitted.
type tokenFixture struct {
	Tokens []struct {
		Type string `json:"type"`
		Text string `json:"text"`
		Line int    `json:"line"`
		Col  int    `json:"col"`
	} `json:"tokens"`
}

func runParse(sessionID uuid.UUID, data []byte, printTree bool, dbPath string) {
	var fx tokenFixture
	if err := json.Unmarshal(data, &fx); err != nil {
		fmt.Fprintf(os.Stderr, "malformed fixture: %s\n", err)
		os.Exit(1)
	}

	toks := make([]token.Token, 0, len(fx.Tokens)+1)
	for _, ft := range fx.Tokens {
		toks = append(toks, token.Token{
			Type: token.Type(ft.Type),
			Text: ft.Text,
			Pos:  token.Position{Line: ft.Line, Column: ft.Col},
		})
	}
	if len(toks) == 0 || toks[len(toks)-1].Type != token.EOF {
		toks = append(toks, token.Token{Type: token.EOF})
	}

	mem := diagnostics.NewMemorySink()
	var sink diagnostics.Sink = mem
	if dbPath != "" {
		dbSink, err := diagnostics.OpenSQLiteSink(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening diagnostics db: %s\n", err)
			os.Exit(1)
		}
		defer dbSink.Close()
		sink = diagnostics.TeeSink{Sinks: []diagnostics.Sink{mem, dbSink}}
		fmt.Printf("persisting diagnostics to %s under db-session %s\n", dbPath, dbSink.SessionID())
	}

	res := parser.New(toks, sink).Parse()

	fmt.Printf("session %s: parsed %s across %d tokens\n",
		sessionID, humanize.Bytes(uint64(len(data))), len(toks))
	fmt.Printf("  %d use(s), %d binding(s)\n", len(res.Uses), len(res.Bindings))
	for _, b := range res.Bindings {
		fmt.Printf("    %s :: %s\n", b.Name, describeBinding(b.Node))
		if printTree {
			fmt.Print(prettyprinter.Print(b.Node))
		}
	}

	if len(mem.Diagnostics) == 0 {
		fmt.Println(colorize("32", "no diagnostics"))
		return
	}
	fmt.Println(colorize("31", fmt.Sprintf("%d diagnostic(s):", len(mem.Diagnostics))))
	for _, d := range mem.Diagnostics {
		fmt.Printf("  %s\n", d.Error())
	}
	os.Exit(1)
}

func describeBinding(n ast.Node) string {
	switch n.(type) {
	case *ast.Function:
		return "proc"
	case *ast.Global:
		return "global"
	default:
		return "expr"
	}
}

// typeFixture is one debug-type entry of a "render" fixture.
type typeFixture struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"` // primitive|modifier|alias|function|structure|array
	Prim struct {
		Kind string `json:"kind"` // void|signed|unsigned|float|boolean
		Size int    `json:"size"`
	} `json:"primitive"`
	Modifier struct {
		Kind     string `json:"kind"` // pointer|other
		Modified int    `json:"modified"`
		Size     int    `json:"size"`
	} `json:"modifier"`
	Alias     int `json:"alias"`
	Structure struct {
		Members []struct {
			Name   string `json:"name"`
			Offset int    `json:"offset"`
			Type   int    `json:"type"`
		} `json:"members"`
	} `json:"structure"`
	Array struct {
		Element int `json:"element"`
		Count   int `json:"count"`
	} `json:"array"`
}

// walkerFixture is the JSON shape a "render" fixture is decoded from: the
// debug-type table, the OVM engine snapshot, and the value to locate.
type walkerFixture struct {
	Types []typeFixture `json:"types"`
	Engine struct {
		Registers         []uint32 `json:"registers"`
		ValueNumberOffset int      `json:"value_number_offset"`
		Frames            []struct {
			ValueNumberBase int `json:"value_number_base"`
			StackPtrIdx     int `json:"stack_ptr_idx"`
		} `json:"frames"`
		Memory []byte `json:"memory"`
	} `json:"engine"`
	Location struct {
		Kind string `json:"kind"` // register|stack|global
		Off  int64  `json:"off"`
	} `json:"location"`
	TypeID int    `json:"type_id"`
	Name   string `json:"name"`
}

func runRender(sessionID uuid.UUID, data []byte) {
	var fx walkerFixture
	if err := json.Unmarshal(data, &fx); err != nil {
		fmt.Fprintf(os.Stderr, "malformed fixture: %s\n", err)
		os.Exit(1)
	}

	types := debugtype.NewTable()
	for _, ft := range fx.Types {
		types.Add(debugtype.ID(ft.ID), decodeType(ft))
	}

	frames := make([]ovm.Frame, 0, len(fx.Engine.Frames))
	for _, ff := range fx.Engine.Frames {
		frames = append(frames, ovm.Frame{ValueNumberBase: ff.ValueNumberBase, StackPtrIdx: ff.StackPtrIdx})
	}
	engine := &ovm.Engine{
		NumberedValues:    fx.Engine.Registers,
		ValueNumberOffset: fx.Engine.ValueNumberOffset,
		Frames:            frames,
		Memory:            fx.Engine.Memory,
	}

	c := walker.New(types, engine, engine.TopFrame())
	c.SetLocation(decodeLocationKind(fx.Location.Kind), fx.Location.Off, debugtype.ID(fx.TypeID), fx.Name)
	c.BuildString()

	fmt.Printf("session %s: %s memory region, value %s = %s\n",
		sessionID, humanize.Bytes(uint64(len(fx.Engine.Memory))), fx.Name, c.String())
}

func decodeLocationKind(s string) ovm.LocationKind {
	switch s {
	case "register":
		return ovm.LocationRegister
	case "stack":
		return ovm.LocationStack
	case "global":
		return ovm.LocationGlobal
	default:
		return ovm.LocationUnknown
	}
}

func decodeType(ft typeFixture) debugtype.Type {
	switch ft.Kind {
	case "primitive":
		return debugtype.Primitive{Kind: decodePrimitiveKind(ft.Prim.Kind), Size: ft.Prim.Size}
	case "modifier":
		kind := debugtype.OtherModifier
		if ft.Modifier.Kind == "pointer" {
			kind = debugtype.Pointer
		}
		return debugtype.Modifier{ModKind: kind, Modified: debugtype.ID(ft.Modifier.Modified), Size: ft.Modifier.Size}
	case "alias":
		return debugtype.Alias{Aliased: debugtype.ID(ft.Alias)}
	case "function":
		return debugtype.Function{}
	case "structure":
		members := make([]debugtype.Member, 0, len(ft.Structure.Members))
		for _, m := range ft.Structure.Members {
			members = append(members, debugtype.Member{Name: m.Name, Offset: m.Offset, Type: debugtype.ID(m.Type)})
		}
		return debugtype.Structure{Members: members}
	case "array":
		return debugtype.Array{Element: debugtype.ID(ft.Array.Element), Count: ft.Array.Count}
	default:
		return debugtype.Primitive{Kind: debugtype.Void}
	}
}

func decodePrimitiveKind(s string) debugtype.PrimitiveKind {
	switch s {
	case "signed":
		return debugtype.SignedInt
	case "unsigned":
		return debugtype.UnsignedInt
	case "float":
		return debugtype.Float
	case "boolean":
		return debugtype.Boolean
	default:
		return debugtype.Void
	}
}

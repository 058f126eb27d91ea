// poculum - Poculum codec CLI tool
//
// Usage:
//
//	poculum encode [--hex] [file]      Read JSON, encode to Poculum, write bytes (or hex) to stdout
//	poculum decode [--hex] [file]      Read Poculum bytes (or hex text), decode, write JSON to stdout
//	poculum roundtrip [file]           Encode then decode a JSON input, verify equality, print canonical hex
//	poculum version                    Print version info
//
// If no file is given, reads from stdin.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poculum/poculum/poculum"
	"github.com/poculum/poculum/poculum/hexframe"
)

const specVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	useHex := false
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch {
		case arg == "--hex":
			useHex = true
		default:
			if !strings.HasPrefix(arg, "-") && arg != "-" {
				fileArg = arg
			}
		}
	}

	var input io.Reader = os.Stdin
	if fileArg != "" {
		f, err := os.Open(fileArg)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	switch cmd {
	case "encode":
		cmdEncode(input, useHex)
	case "decode":
		cmdDecode(input, useHex)
	case "roundtrip":
		cmdRoundtrip(input)
	case "version", "-v", "--version":
		fmt.Printf("poculum %s\n", specVersion)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `poculum - Poculum codec CLI tool (spec 1.0.0)

Usage:
  poculum encode [--hex] [file]   Read JSON, encode to Poculum, write bytes (or hex) to stdout
  poculum decode [--hex] [file]   Read Poculum bytes (or hex text), decode, write JSON to stdout
  poculum roundtrip [file]        Encode then decode a JSON input, verify equality, print canonical hex
  poculum version                 Print version info

If no file is given, reads from stdin.

Examples:
  echo '{"a":1,"b":[2,3]}' | poculum encode --hex
  echo '{"a":1,"b":[2,3]}' | poculum encode | poculum decode
`)
}

// cmdEncode: JSON -> Poculum bytes (raw or hex).
func cmdEncode(r io.Reader, useHex bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}

	var jv any
	if err := json.Unmarshal(data, &jv); err != nil {
		fatal("parse JSON: %v", err)
	}

	v, err := poculum.FromJSON(jv)
	if err != nil {
		fatal("convert JSON: %v", err)
	}

	if useHex {
		s, err := hexframe.Encode(v)
		if err != nil {
			fatal("encode: %v", err)
		}
		fmt.Println(s)
		return
	}

	b, err := poculum.Encode(v)
	if err != nil {
		fatal("encode: %v", err)
	}
	if _, err := os.Stdout.Write(b); err != nil {
		fatal("write output: %v", err)
	}
}

// cmdDecode: Poculum bytes (raw or hex) -> JSON.
func cmdDecode(r io.Reader, useHex bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}

	var v poculum.Value
	if useHex {
		v, err = hexframe.Decode(strings.TrimSpace(string(data)))
		if err != nil {
			fatal("decode: %v", err)
		}
	} else {
		v, err = poculum.Decode(data)
		if err != nil {
			fatal("decode: %v", err)
		}
	}

	jv, err := poculum.ToJSON(v)
	if err != nil {
		fatal("convert to JSON: %v", err)
	}

	out, err := json.Marshal(jv)
	if err != nil {
		fatal("marshal JSON: %v", err)
	}
	fmt.Println(string(out))
}

// cmdRoundtrip: JSON -> Poculum -> Value, verifying re-encoding matches and
// printing the canonical hex form.
func cmdRoundtrip(r io.Reader) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}

	var jv any
	if err := json.Unmarshal(data, &jv); err != nil {
		fatal("parse JSON: %v", err)
	}

	v, err := poculum.FromJSON(jv)
	if err != nil {
		fatal("convert JSON: %v", err)
	}

	encoded, err := poculum.Encode(v)
	if err != nil {
		fatal("encode: %v", err)
	}

	decoded, err := poculum.Decode(encoded)
	if err != nil {
		fatal("decode: %v", err)
	}

	if !decoded.Equal(v) {
		fatal("round trip mismatch: decoded value does not equal original")
	}

	reencoded, err := poculum.Encode(decoded)
	if err != nil {
		fatal("re-encode: %v", err)
	}
	if string(reencoded) != string(encoded) {
		fatal("not canonical: re-encoding produced different bytes")
	}

	fmt.Printf("ok  %d bytes  %x\n", len(encoded), encoded)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "poculum: "+format+"\n", args...)
	os.Exit(1)
}

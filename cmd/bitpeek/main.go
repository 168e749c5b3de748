package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/bitpeek/bitpeek/codec"
)

func main() {
	var (
		layoutName  = flag.String("layout", "Int32", "Numeric layout (Int8, UInt8, Int16, UInt16, Int32, UInt32, Float32, Float64)")
		value       = flag.String("value", "", "Decimal value to encode")
		bits        = flag.String("bits", "", "Bit string to decode")
		hexStr      = flag.String("hex", "", "Hex string to decode")
		precision   = flag.Int("precision", 6, "Fractional digits for float display")
		list        = flag.Bool("list", false, "List supported layouts and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		codec.SetLogger(logger)
	}

	if *list {
		listLayouts()
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*layoutName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *value == "" && *bits == "" && *hexStr == "" {
		fmt.Fprintln(os.Stderr, "Usage: bitpeek -layout <name> -value <decimal>")
		fmt.Fprintln(os.Stderr, "       bitpeek -layout <name> -bits <0101...>")
		fmt.Fprintln(os.Stderr, "       bitpeek -layout <name> -hex <3F80...>")
		fmt.Fprintln(os.Stderr, "       bitpeek -list")
		fmt.Fprintln(os.Stderr, "       bitpeek -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*layoutName, *value, *bits, *hexStr, *precision); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listLayouts() {
	fmt.Println("Supported layouts:")
	for _, l := range codec.Layouts() {
		fmt.Printf("  %-8s %2d bits  %s\n", l.Name(), l.BitWidth(), l.Description())
	}
}

func run(layoutName, value, bits, hexStr string, precision int) error {
	layout, ok := codec.LayoutByName(layoutName)
	if !ok {
		return fmt.Errorf("unknown layout %q (use -list to see the supported names)", layoutName)
	}

	switch {
	case value != "":
		v, err := codec.ParseDecimal(value, layout)
		if err != nil {
			return err
		}
		encoded, err := codec.Encode(v, layout)
		if err != nil {
			return err
		}
		bits = encoded

	case hexStr != "":
		expanded, err := codec.HexToBits(hexStr)
		if err != nil {
			return err
		}
		bits = expanded
	}

	decoded, err := codec.Decode(bits, layout)
	if err != nil {
		return err
	}

	codec.Logger().Debug("conversion",
		zap.String("layout", string(layout.Name())),
		zap.Float64("decimal", decoded),
		zap.String("bits", bits))

	decimal := codec.FormatDecimal(decoded, precision)
	if _, ok := layout.(*codec.IntegerLayout); ok {
		decimal = codec.FormatDecimal(decoded, 0)
	}

	full, err := codec.Encode(decoded, layout)
	if err != nil {
		return err
	}

	fmt.Printf("Layout:  %s (%s)\n", layout.Name(), layout.Description())
	fmt.Printf("Decimal: %s\n", decimal)
	fmt.Printf("Binary:  %s\n", codec.FormatBits(full, layout))
	fmt.Printf("Hex:     %s\n", codec.FormatHex(codec.BitsToHex(full)))
	return nil
}

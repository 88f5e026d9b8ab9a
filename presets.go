package lexic

import "github.com/puzpuzpuz/xsync/v4"

// Preset number formats, one per supported source language or data format.
// Each is assembled once from the flags that grammar's numeric literals (or
// runtime string-conversion routines) require, per the published grammar of
// the target. "Literal" presets describe source-code literals; "String"
// presets describe what the language's string-to-number conversion accepts.
//
// Presets are plain immutable values and are safe for unrestricted
// concurrent use.
var (
	// RustLiteral: 1_000 style separators, digits required everywhere, no
	// leading '+', no non-finite literals.
	RustLiteral = packFormat(RequiredDigits|NoPositiveMantissaSign|NoSpecial|
		IntegerInternalDigitSeparator|FractionInternalDigitSeparator|ExponentInternalDigitSeparator|
		IntegerTrailingDigitSeparator|FractionTrailingDigitSeparator|ExponentTrailingDigitSeparator|
		IntegerConsecutiveDigitSeparator|FractionConsecutiveDigitSeparator|ExponentConsecutiveDigitSeparator, '_')

	// RustString: f64::from_str. Accepts inf/NaN case-insensitively.
	RustString = packFormat(RequiredExponentDigits, 0)

	// PythonLiteral: PEP 515 underscores (internal only), no octal-style
	// leading zeros, no inf/nan literals.
	PythonLiteral = packFormat(RequiredExponentDigits|NoPositiveMantissaSign|NoSpecial|
		NoIntegerLeadingZeros|InternalDigitSeparator, '_')

	// PythonString: float(str). inf/infinity/nan, case-insensitive.
	PythonString = packFormat(RequiredExponentDigits, 0)

	// C++ literals: '.5' and '1.' are legal, exponent digits required,
	// INFINITY/NAN are macros rather than literals. C++14 introduced the
	// single-quote digit separator.
	Cxx17Literal = packFormat(RequiredExponentDigits|NoPositiveMantissaSign|NoSpecial|
		InternalDigitSeparator, '\'')
	Cxx17String  = packFormat(RequiredExponentDigits, 0)
	Cxx14Literal = Cxx17Literal
	Cxx14String  = Cxx17String
	Cxx11Literal = packFormat(RequiredExponentDigits|NoPositiveMantissaSign|NoSpecial, 0)
	Cxx11String  = Cxx17String
	Cxx03Literal = Cxx11Literal
	Cxx03String  = Cxx17String
	Cxx98Literal = Cxx11Literal
	Cxx98String  = Cxx17String

	// C literals and strtod-style strings, all standard revisions.
	C18Literal = packFormat(RequiredExponentDigits|NoPositiveMantissaSign|NoSpecial, 0)
	C18String  = packFormat(RequiredExponentDigits, 0)
	C11Literal = C18Literal
	C11String  = C18String
	C99Literal = C18Literal
	C99String  = C18String
	C90Literal = C18Literal
	C90String  = C18String
	C89Literal = C18Literal
	C89String  = C18String

	// RubyLiteral: digits required on both sides of the point, internal
	// underscores.
	RubyLiteral = packFormat(RequiredDigits|NoSpecial|InternalDigitSeparator, '_')
	RubyString  = packFormat(RequiredExponentDigits|NoSpecial, 0)

	// SwiftLiteral: underscores may trail a digit group (1_000_ is legal).
	SwiftLiteral = packFormat(RequiredDigits|NoSpecial|
		InternalDigitSeparator|TrailingDigitSeparator|ConsecutiveDigitSeparator, '_')
	SwiftString = packFormat(RequiredExponentDigits|NoSpecial, 0)

	// GoLiteral: Go 1.13 underscores, internal only; no inf/NaN literals.
	GoLiteral = packFormat(RequiredExponentDigits|NoPositiveMantissaSign|NoSpecial|
		InternalDigitSeparator, '_')

	// GoString: strconv.ParseFloat. inf/infinity/nan, case-insensitive.
	GoString = packFormat(RequiredExponentDigits, 0)

	HaskellLiteral = packFormat(RequiredDigits|NoPositiveMantissaSign|NoSpecial, 0)
	HaskellString  = packFormat(RequiredDigits|NoSpecial, 0)

	// JavascriptLiteral: ES2021 numeric separators; strict mode forbids
	// legacy leading-zero octals, on floats as well as integers; Infinity is
	// an identifier, not a literal.
	JavascriptLiteral = packFormat(RequiredExponentDigits|NoSpecial|
		NoIntegerLeadingZeros|NoFloatLeadingZeros|InternalDigitSeparator, '_')

	// JavascriptString: Number("..."). Accepts "Infinity", case-sensitively.
	JavascriptString = packFormat(RequiredExponentDigits|CaseSensitiveSpecial, 0)

	// PerlLiteral: underscores permitted nearly anywhere.
	PerlLiteral = packFormat(RequiredExponentDigits|NoSpecial|
		InternalDigitSeparator|LeadingDigitSeparator|TrailingDigitSeparator|ConsecutiveDigitSeparator, '_')
	PerlString = packFormat(0, 0)

	PhpLiteral = packFormat(RequiredExponentDigits|NoSpecial|InternalDigitSeparator, '_')
	PhpString  = packFormat(RequiredExponentDigits, 0)

	// JavaLiteral: underscores internal, runs permitted (1__0 is legal).
	JavaLiteral = packFormat(RequiredExponentDigits|NoSpecial|
		InternalDigitSeparator|ConsecutiveDigitSeparator, '_')

	// JavaString: Double.parseDouble accepts "Infinity"/"NaN" exactly.
	JavaString = packFormat(RequiredExponentDigits|CaseSensitiveSpecial, 0)

	// R: Inf/NaN are spelled exactly.
	RLiteral = packFormat(RequiredExponentDigits|CaseSensitiveSpecial, 0)
	RString  = RLiteral

	KotlinLiteral = packFormat(RequiredDigits|NoSpecial|
		InternalDigitSeparator|ConsecutiveDigitSeparator, '_')
	KotlinString = packFormat(RequiredExponentDigits|CaseSensitiveSpecial, 0)

	JuliaLiteral = packFormat(RequiredExponentDigits|NoSpecial|InternalDigitSeparator, '_')
	JuliaString  = packFormat(RequiredExponentDigits|NoSpecial, 0)

	Csharp7Literal = packFormat(RequiredExponentDigits|NoSpecial|
		InternalDigitSeparator|ConsecutiveDigitSeparator, '_')
	Csharp7String = packFormat(RequiredExponentDigits|CaseSensitiveSpecial, 0)

	// Lisps: a bare point needs adjacent digits.
	KawaLiteral    = packFormat(RequiredIntegerDigits|RequiredExponentDigits|NoSpecial, 0)
	GuileLiteral   = KawaLiteral
	GambitcLiteral = KawaLiteral
	ClojureLiteral = packFormat(RequiredIntegerDigits|RequiredExponentDigits|NoSpecial, 0)

	// ErlangLiteral: digits required on both sides of the point.
	ErlangLiteral = packFormat(RequiredDigits|NoSpecial, 0)

	ElmLiteral   = packFormat(RequiredDigits|NoPositiveMantissaSign|NoSpecial, 0)
	ScalaLiteral = packFormat(RequiredExponentDigits|NoSpecial, 0)

	ElixirLiteral = packFormat(RequiredDigits|NoSpecial|InternalDigitSeparator, '_')

	FortranLiteral = packFormat(RequiredExponentDigits|NoSpecial, 0)

	// DLiteral: underscores internal and trailing, runs permitted.
	DLiteral = packFormat(RequiredExponentDigits|NoSpecial|
		InternalDigitSeparator|TrailingDigitSeparator|ConsecutiveDigitSeparator, '_')

	CoffeescriptLiteral = packFormat(RequiredExponentDigits|NoSpecial|NoIntegerLeadingZeros, 0)

	// CobolLiteral: exponents demand a fractional part and an explicit sign.
	CobolLiteral = packFormat(RequiredDigits|NoExponentWithoutFraction|RequiredExponentSign|NoSpecial, 0)

	FsharpLiteral = packFormat(RequiredIntegerDigits|RequiredExponentDigits|NoSpecial|
		InternalDigitSeparator|ConsecutiveDigitSeparator, '_')

	VbLiteral = packFormat(RequiredExponentDigits|NoSpecial, 0)

	// OCaml family: trailing underscores and runs are legal.
	OcamlLiteral = packFormat(RequiredIntegerDigits|RequiredExponentDigits|NoSpecial|
		InternalDigitSeparator|TrailingDigitSeparator|ConsecutiveDigitSeparator, '_')
	ReasonmlLiteral = OcamlLiteral

	ObjectivecLiteral = packFormat(RequiredExponentDigits|NoPositiveMantissaSign|NoSpecial, 0)

	// Octave/MATLAB: Inf/NaN accepted case-insensitively.
	OctaveLiteral = packFormat(RequiredExponentDigits, 0)
	MatlabLiteral = OctaveLiteral

	ZigLiteral = packFormat(RequiredDigits|NoPositiveMantissaSign|NoSpecial|
		InternalDigitSeparator, '_')

	SageLiteral = packFormat(RequiredExponentDigits|NoSpecial|InternalDigitSeparator, '_')

	// JSON (RFC 8259): digits required around every control character, no
	// leading '+', no leading zeros, no non-finite values.
	JSON = packFormat(RequiredDigits|NoPositiveMantissaSign|NoSpecial|
		NoIntegerLeadingZeros|NoFloatLeadingZeros, 0)

	// TOML 1.0: underscores between digits, digits on both sides of the
	// point, no leading zeros on integers or on the integer part of floats,
	// inf/nan spelled in lowercase only.
	TOML = packFormat(RequiredDigits|NoIntegerLeadingZeros|NoFloatLeadingZeros|
		CaseSensitiveSpecial|InternalDigitSeparator, '_')

	YAML = packFormat(RequiredExponentDigits, 0)

	// XML (XSD double): INF/NaN spelled exactly.
	XML = packFormat(RequiredExponentDigits|CaseSensitiveSpecial, 0)

	// SQL dialects: no separators, no non-finite literals.
	SQLite     = packFormat(RequiredExponentDigits|NoSpecial, 0)
	PostgreSQL = packFormat(RequiredExponentDigits|NoSpecial, 0)
	MySQL      = packFormat(RequiredExponentDigits|NoSpecial, 0)
	MongoDB    = packFormat(RequiredExponentDigits|NoSpecial, 0)
)

// formatRegistry maps preset names to formats for config-driven lookup.
// An xsync map keeps registration and lookup safe from any goroutine.
var formatRegistry = xsync.NewMap[string, NumberFormat]()

func init() {
	for name, format := range map[string]NumberFormat{
		"permissive":          Permissive(),
		"standard":            Standard(),
		"rust-literal":        RustLiteral,
		"rust-string":         RustString,
		"python-literal":      PythonLiteral,
		"python-string":       PythonString,
		"cxx17-literal":       Cxx17Literal,
		"cxx17-string":        Cxx17String,
		"cxx14-literal":       Cxx14Literal,
		"cxx14-string":        Cxx14String,
		"cxx11-literal":       Cxx11Literal,
		"cxx11-string":        Cxx11String,
		"cxx03-literal":       Cxx03Literal,
		"cxx03-string":        Cxx03String,
		"cxx98-literal":       Cxx98Literal,
		"cxx98-string":        Cxx98String,
		"c18-literal":         C18Literal,
		"c18-string":          C18String,
		"c11-literal":         C11Literal,
		"c11-string":          C11String,
		"c99-literal":         C99Literal,
		"c99-string":          C99String,
		"c90-literal":         C90Literal,
		"c90-string":          C90String,
		"c89-literal":         C89Literal,
		"c89-string":          C89String,
		"ruby-literal":        RubyLiteral,
		"ruby-string":         RubyString,
		"swift-literal":       SwiftLiteral,
		"swift-string":        SwiftString,
		"go-literal":          GoLiteral,
		"go-string":           GoString,
		"haskell-literal":     HaskellLiteral,
		"haskell-string":      HaskellString,
		"javascript-literal":  JavascriptLiteral,
		"javascript-string":   JavascriptString,
		"perl-literal":        PerlLiteral,
		"perl-string":         PerlString,
		"php-literal":         PhpLiteral,
		"php-string":          PhpString,
		"java-literal":        JavaLiteral,
		"java-string":         JavaString,
		"r-literal":           RLiteral,
		"r-string":            RString,
		"kotlin-literal":      KotlinLiteral,
		"kotlin-string":       KotlinString,
		"julia-literal":       JuliaLiteral,
		"julia-string":        JuliaString,
		"csharp7-literal":     Csharp7Literal,
		"csharp7-string":      Csharp7String,
		"kawa-literal":        KawaLiteral,
		"guile-literal":       GuileLiteral,
		"gambitc-literal":     GambitcLiteral,
		"clojure-literal":     ClojureLiteral,
		"erlang-literal":      ErlangLiteral,
		"elm-literal":         ElmLiteral,
		"scala-literal":       ScalaLiteral,
		"elixir-literal":      ElixirLiteral,
		"fortran-literal":     FortranLiteral,
		"d-literal":           DLiteral,
		"coffeescript-literal": CoffeescriptLiteral,
		"cobol-literal":       CobolLiteral,
		"fsharp-literal":      FsharpLiteral,
		"vb-literal":          VbLiteral,
		"ocaml-literal":       OcamlLiteral,
		"reasonml-literal":    ReasonmlLiteral,
		"objectivec-literal":  ObjectivecLiteral,
		"octave-literal":      OctaveLiteral,
		"matlab-literal":      MatlabLiteral,
		"zig-literal":         ZigLiteral,
		"sage-literal":        SageLiteral,
		"json":                JSON,
		"toml":                TOML,
		"yaml":                YAML,
		"xml":                 XML,
		"sqlite":              SQLite,
		"postgresql":          PostgreSQL,
		"mysql":               MySQL,
		"mongodb":             MongoDB,
	} {
		formatRegistry.Store(name, format)
	}
}

// FormatByName looks up a preset format by its registry name, e.g. "json" or
// "rust-literal".
func FormatByName(name string) (NumberFormat, bool) {
	return formatRegistry.Load(name)
}

// FormatNames returns the registered preset names, in no particular order.
func FormatNames() []string {
	names := make([]string, 0, formatRegistry.Size())
	formatRegistry.Range(func(name string, _ NumberFormat) bool {
		names = append(names, name)
		return true
	})
	return names
}

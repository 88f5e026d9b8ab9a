package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/oy3o/lexic"
)

// fileConfig is the raw TOML shape. Every field is optional; unset fields
// keep the library defaults.
type fileConfig struct {
	Radix        int    `toml:"radix"`
	Format       string `toml:"format"`
	Separator    string `toml:"separator"`
	Rounding     string `toml:"rounding"`
	ExponentChar string `toml:"exponent_char"`
	NaN          string `toml:"nan"`
	Inf          string `toml:"inf"`
	Infinity     string `toml:"infinity"`
	TrimFloats   bool   `toml:"trim_floats"`
	Lossy        bool   `toml:"lossy"`
}

// config carries the fully built option sets for every operation.
type config struct {
	parseInt   *lexic.ParseIntegerOptions
	parseFloat *lexic.ParseFloatOptions
	writeInt   *lexic.WriteIntegerOptions
	writeFloat *lexic.WriteFloatOptions
}

var roundingNames = map[string]lexic.RoundingKind{
	"nearest-tie-even":         lexic.NearestTieEven,
	"nearest-tie-away-zero":    lexic.NearestTieAwayZero,
	"toward-positive-infinity": lexic.TowardPositiveInfinity,
	"toward-negative-infinity": lexic.TowardNegativeInfinity,
	"toward-zero":              lexic.TowardZero,
}

func defaultConfig() (*config, error) {
	return buildConfig(fileConfig{}, toml.MetaData{})
}

func loadConfig(path string) (*config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return buildConfig(raw, meta)
}

func buildConfig(raw fileConfig, meta toml.MetaData) (*config, error) {
	format := lexic.Permissive()
	switch {
	case meta.IsDefined("format"):
		name := strings.TrimSpace(raw.Format)
		f, ok := lexic.FormatByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown format %q", name)
		}
		format = f
	case meta.IsDefined("separator"):
		if len(raw.Separator) != 1 {
			return nil, fmt.Errorf("separator must be a single byte, got %q", raw.Separator)
		}
		f, err := lexic.Ignore(raw.Separator[0])
		if err != nil {
			return nil, fmt.Errorf("separator %q: %w", raw.Separator, err)
		}
		format = f
	}

	rounding := lexic.NearestTieEven
	if meta.IsDefined("rounding") {
		kind, ok := roundingNames[strings.TrimSpace(raw.Rounding)]
		if !ok {
			return nil, fmt.Errorf("unknown rounding %q", raw.Rounding)
		}
		rounding = kind
	}

	pib := lexic.NewParseIntegerOptionsBuilder().Format(format)
	pfb := lexic.NewParseFloatOptionsBuilder().Format(format).Rounding(rounding).Lossy(raw.Lossy)
	wib := lexic.NewWriteIntegerOptionsBuilder()
	wfb := lexic.NewWriteFloatOptionsBuilder().TrimFloats(raw.TrimFloats)

	if meta.IsDefined("radix") {
		pib.Radix(raw.Radix)
		pfb.Radix(raw.Radix)
		wib.Radix(raw.Radix)
		wfb.Radix(raw.Radix)
	}
	if meta.IsDefined("exponent_char") {
		if len(raw.ExponentChar) != 1 {
			return nil, fmt.Errorf("exponent_char must be a single byte, got %q", raw.ExponentChar)
		}
		pfb.ExponentChar(raw.ExponentChar[0])
		wfb.ExponentChar(raw.ExponentChar[0])
	}
	if meta.IsDefined("nan") {
		pfb.NaNString([]byte(raw.NaN))
		wfb.NaNString([]byte(raw.NaN))
	}
	if meta.IsDefined("inf") {
		pfb.InfString([]byte(raw.Inf))
		wfb.InfString([]byte(raw.Inf))
	}
	if meta.IsDefined("infinity") {
		pfb.InfinityString([]byte(raw.Infinity))
	}

	cfg := &config{}
	var err error
	if cfg.parseInt, err = pib.Build(); err != nil {
		return nil, fmt.Errorf("integer parse options: %w", err)
	}
	if cfg.parseFloat, err = pfb.Build(); err != nil {
		return nil, fmt.Errorf("float parse options: %w", err)
	}
	if cfg.writeInt, err = wib.Build(); err != nil {
		return nil, fmt.Errorf("integer write options: %w", err)
	}
	if cfg.writeFloat, err = wfb.Build(); err != nil {
		return nil, fmt.Errorf("float write options: %w", err)
	}
	return cfg, nil
}

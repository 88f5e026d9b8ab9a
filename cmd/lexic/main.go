// Command lexic converts numbers between text and value form under a
// configurable lexical grammar. Inputs come from the arguments, or from
// stdin one per line when no arguments follow the operation.
//
//	lexic [-config lexic.toml] [-partial] <parse-int|parse-float|write-int|write-float> [input...]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/oy3o/lexic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML options file")
	partial := flag.Bool("partial", false, "parse a prefix and report the bytes consumed")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "lexic").Logger()

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal().Msg("missing operation: parse-int, parse-float, write-int, or write-float")
	}
	op := args[0]

	cfg, err := defaultConfig()
	if *configPath != "" {
		cfg, err = loadConfig(*configPath)
	}
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("bad configuration")
	}

	run := func(input string) error { return runOp(op, input, cfg, *partial) }
	failures := 0
	if len(args) > 1 {
		for _, input := range args[1:] {
			if err := run(input); err != nil {
				log.Error().Err(err).Str("input", input).Msg(op + " failed")
				failures++
			}
		}
	} else {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if err := run(sc.Text()); err != nil {
				log.Error().Err(err).Str("input", sc.Text()).Msg(op + " failed")
				failures++
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal().Err(err).Msg("reading stdin")
		}
	}
	if failures > 0 {
		os.Exit(1)
	}
}

func runOp(op, input string, cfg *config, partial bool) error {
	b := []byte(input)
	switch op {
	case "parse-int":
		if partial {
			v, n, err := lexic.ParseIntegerPartialWithOptions[int64](b, cfg.parseInt)
			if err != nil {
				return err
			}
			fmt.Printf("%d consumed=%d\n", v, n)
			return nil
		}
		v, err := lexic.ParseIntegerWithOptions[int64](b, cfg.parseInt)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	case "parse-float":
		if partial {
			v, n, err := lexic.ParseFloatPartialWithOptions[float64](b, cfg.parseFloat)
			if err != nil {
				return err
			}
			fmt.Printf("%g consumed=%d\n", v, n)
			return nil
		}
		v, err := lexic.ParseFloatWithOptions[float64](b, cfg.parseFloat)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	case "write-int":
		v, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			return fmt.Errorf("write-int wants a decimal integer argument: %w", err)
		}
		fmt.Printf("%s\n", lexic.WriteIntegerWithOptions(v, cfg.writeInt))
		return nil
	case "write-float":
		v, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return fmt.Errorf("write-float wants a decimal float argument: %w", err)
		}
		fmt.Printf("%s\n", lexic.WriteFloatWithOptions(v, cfg.writeFloat))
		return nil
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	clilog "github.com/apex/log/handlers/cli"
	"github.com/urfave/cli/v2"

	svvec "github.com/facebookincubator/go-svvec"
)

var (
	wordsFlag = &cli.StringFlag{
		Name:    "words",
		Aliases: []string{"w"},
		Usage:   "comma separated hex words, least significant word first",
	}
	avalFlag = &cli.StringFlag{
		Name:  "aval",
		Usage: "comma separated hex aval words, least significant word first",
	}
	bvalFlag = &cli.StringFlag{
		Name:  "bval",
		Usage: "comma separated hex bval words, least significant word first",
	}
	inFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"in", "i"},
		Usage:   "serialized vector to read instead of words",
	}
	outFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"out", "o"},
		Usage:   "file to write the resulting vector to",
	}
	indexFlag = &cli.UintFlag{
		Name:     "index",
		Usage:    "logical bit index",
		Required: true,
	}
	offsetFlag = &cli.UintFlag{
		Name:     "offset",
		Usage:    "lowest logical bit of the part select",
		Required: true,
	}
	widthFlag = &cli.UintFlag{
		Name:     "width",
		Usage:    "number of bits in the part select",
		Required: true,
	}
	declaredFlag = &cli.UintFlag{
		Name:  "declared",
		Usage: "declared vector width; selects beyond it are rejected",
	}
)

func main() {
	app := &cli.App{
		Name:  "svvec",
		Usage: "bit and part selects on word packed vectors",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable verbose log output",
			},
		},
		Before: func(c *cli.Context) error {
			log.SetHandler(clilog.Default)
			if c.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:        "bit",
				Usage:       "operate on a two-state vector",
				Subcommands: bitCommands(),
			},
			{
				Name:        "logic",
				Usage:       "operate on a four-state vector",
				Subcommands: logicCommands(),
			},
			{
				Name:  "describe",
				Usage: "describe a serialized vector or a declared width",
				Flags: []cli.Flag{
					inFlag,
					&cli.UintFlag{
						Name:  "width",
						Usage: "declared width to explain",
					},
					&cli.BoolFlag{
						Name:  "four-state",
						Usage: "explain a four-state declaration",
					},
				},
				Action: describe,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("svvec")
	}
}

func bitCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "get",
			Usage: "read a single bit",
			Flags: []cli.Flag{wordsFlag, inFlag, indexFlag},
			Action: func(c *cli.Context) error {
				v, err := loadBitVec(c)
				if err != nil {
					return err
				}
				b, err := v.Bit(c.Uint("index"))
				if err != nil {
					return err
				}
				fmt.Println(b)
				return nil
			},
		},
		{
			Name:  "put",
			Usage: "write a single bit",
			Flags: []cli.Flag{wordsFlag, inFlag, outFlag, indexFlag,
				&cli.UintFlag{Name: "value", Usage: "bit value, 0 or 1", Required: true},
			},
			Action: func(c *cli.Context) error {
				v, err := loadBitVec(c)
				if err != nil {
					return err
				}
				ix, val := c.Uint("index"), c.Uint("value")
				if val > 1 {
					return fmt.Errorf("put: value %d is not a bit", val)
				}
				if err := v.SetBit(ix, uint32(val)); err != nil {
					return err
				}
				log.WithFields(log.Fields{"index": ix, "value": val}).Debug("bit written")
				return emit(c, v, formatWords(v))
			},
		},
		{
			Name:  "part",
			Usage: "read a part select",
			Flags: []cli.Flag{wordsFlag, inFlag, outFlag, offsetFlag, widthFlag, declaredFlag},
			Action: func(c *cli.Context) error {
				v, err := loadBitVec(c)
				if err != nil {
					return err
				}
				off, width, err := selectArgs(c, false)
				if err != nil {
					return err
				}
				p, err := v.Part(off, width)
				if err != nil {
					return err
				}
				fmt.Printf("%d'h%s\n", width, p.Hex(width))
				return emit(c, p, formatWords(p))
			},
		},
		{
			Name:  "setpart",
			Usage: "write a part select",
			Flags: []cli.Flag{wordsFlag, inFlag, outFlag, offsetFlag, widthFlag, declaredFlag,
				&cli.StringFlag{Name: "value", Usage: "hex value to write", Required: true},
			},
			Action: func(c *cli.Context) error {
				v, err := loadBitVec(c)
				if err != nil {
					return err
				}
				off, width, err := selectArgs(c, false)
				if err != nil {
					return err
				}
				val, err := parseHexValue(c.String("value"), width)
				if err != nil {
					return err
				}
				before := v.Sum64()
				if err := v.SetPart(val, off, width); err != nil {
					return err
				}
				log.WithFields(log.Fields{
					"offset": off,
					"width":  width,
					"before": fmt.Sprintf("%016x", before),
					"after":  fmt.Sprintf("%016x", v.Sum64()),
				}).Debug("part written")
				return emit(c, v, formatWords(v))
			},
		},
	}
}

func logicCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "get",
			Usage: "read the code of a single position",
			Flags: []cli.Flag{avalFlag, bvalFlag, inFlag, indexFlag},
			Action: func(c *cli.Context) error {
				v, err := loadLogicVec(c)
				if err != nil {
					return err
				}
				code, err := v.Bit(c.Uint("index"))
				if err != nil {
					return err
				}
				fmt.Println(code)
				return nil
			},
		},
		{
			Name:  "put",
			Usage: "write the code of a single position",
			Flags: []cli.Flag{avalFlag, bvalFlag, inFlag, outFlag, indexFlag,
				&cli.UintFlag{Name: "value", Usage: "code, aval bit | bval bit << 1", Required: true},
			},
			Action: func(c *cli.Context) error {
				v, err := loadLogicVec(c)
				if err != nil {
					return err
				}
				ix, val := c.Uint("index"), c.Uint("value")
				if val > 3 {
					return fmt.Errorf("put: value %d is not a two bit code", val)
				}
				if err := v.SetBit(ix, svvec.Code(val)); err != nil {
					return err
				}
				log.WithFields(log.Fields{"index": ix, "code": val}).Debug("position written")
				return emit(c, v, formatLogic(v))
			},
		},
		{
			Name:  "part",
			Usage: "read a part select of both planes",
			Flags: []cli.Flag{avalFlag, bvalFlag, inFlag, outFlag, offsetFlag, widthFlag, declaredFlag},
			Action: func(c *cli.Context) error {
				v, err := loadLogicVec(c)
				if err != nil {
					return err
				}
				off, width, err := selectArgs(c, true)
				if err != nil {
					return err
				}
				p, err := v.Part(off, width)
				if err != nil {
					return err
				}
				aval, bval := p.Planes()
				fmt.Printf("aval %d'h%s\nbval %d'h%s\n", width, aval.Hex(width), width, bval.Hex(width))
				return emit(c, p, formatLogic(p))
			},
		},
		{
			Name:  "setpart",
			Usage: "write a part select of both planes",
			Flags: []cli.Flag{avalFlag, bvalFlag, inFlag, outFlag, offsetFlag, widthFlag, declaredFlag,
				&cli.StringFlag{Name: "aval-value", Usage: "hex aval plane value", Required: true},
				&cli.StringFlag{Name: "bval-value", Usage: "hex bval plane value", Value: "0"},
			},
			Action: func(c *cli.Context) error {
				v, err := loadLogicVec(c)
				if err != nil {
					return err
				}
				off, width, err := selectArgs(c, true)
				if err != nil {
					return err
				}
				aval, err := parseHexValue(c.String("aval-value"), width)
				if err != nil {
					return err
				}
				bval, err := parseHexValue(c.String("bval-value"), width)
				if err != nil {
					return err
				}
				if err := v.SetPart(svvec.LogicVecFromPlanes(aval, bval), off, width); err != nil {
					return err
				}
				log.WithFields(log.Fields{"offset": off, "width": width}).Debug("part written")
				return emit(c, v, formatLogic(v))
			},
		},
	}
}

func describe(c *cli.Context) error {
	if c.IsSet("input") {
		h, err := svvec.ReadHeaderFromPath(c.String("input"))
		if err != nil {
			return fmt.Errorf("describe: can't read input file: %w", err)
		}
		fmt.Printf("Vector format version %d\n", h.Version)
		fmt.Printf("%s - %d words per plane, %d bits\n", h.Kind, h.Words, uint64(h.Words)*svvec.WordBits)
		var v svvec.Vector
		if h.Kind == svvec.KindLogic {
			v, err = readLogicVec(c.String("input"))
		} else {
			v, err = readBitVec(c.String("input"))
		}
		if err != nil {
			return fmt.Errorf("describe: %w", err)
		}
		fmt.Printf("checksum %016x\n", v.Sum64())
		return nil
	}
	if !c.IsSet("width") {
		return fmt.Errorf("describe: one of --input or --width is required")
	}
	cfg := svvec.Config{Width: c.Uint("width"), FourState: c.Bool("four-state")}
	cfg.Explain()
	return nil
}

// selectArgs returns the offset and width flags, validated against
// --declared when it is given
func selectArgs(c *cli.Context, fourState bool) (off, width uint, err error) {
	off, width = c.Uint("offset"), c.Uint("width")
	if width == 0 {
		return 0, 0, fmt.Errorf("width must be positive")
	}
	if c.IsSet("declared") {
		cfg := svvec.Config{Width: c.Uint("declared"), FourState: fourState}
		if err = cfg.Check(off, width); err != nil {
			return 0, 0, err
		}
	}
	return off, width, nil
}

func loadBitVec(c *cli.Context) (svvec.BitVec, error) {
	if c.IsSet("input") {
		return readBitVec(c.String("input"))
	}
	if !c.IsSet("words") {
		return nil, fmt.Errorf("one of --words or --input is required")
	}
	w, err := parseWords(c.String("words"))
	if err != nil {
		return nil, err
	}
	return svvec.BitVec(w), nil
}

func loadLogicVec(c *cli.Context) (svvec.LogicVec, error) {
	if c.IsSet("input") {
		return readLogicVec(c.String("input"))
	}
	if !c.IsSet("aval") {
		return nil, fmt.Errorf("one of --aval or --input is required")
	}
	aval, err := parseWords(c.String("aval"))
	if err != nil {
		return nil, err
	}
	var bval []uint32
	if c.IsSet("bval") {
		if bval, err = parseWords(c.String("bval")); err != nil {
			return nil, err
		}
	}
	return svvec.LogicVecFromPlanes(aval, bval), nil
}

func readBitVec(path string) (svvec.BitVec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var v svvec.BitVec
	if _, err := v.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debugf("read %d words from %s", len(v), path)
	return v, nil
}

func readLogicVec(path string) (svvec.LogicVec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var v svvec.LogicVec
	if _, err := v.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debugf("read %d words from %s", len(v), path)
	return v, nil
}

// emit prints a vector and writes it to --output when given
func emit(c *cli.Context, v svvec.Vector, text string) error {
	fmt.Println(text)
	if !c.IsSet("output") {
		return nil
	}
	output := c.String("output")
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		return fmt.Errorf("refusing to over-write existing file: %s", output)
	}
	o, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("error opening %s: %s", output, err)
	}
	defer o.Close()
	n, err := v.WriteTo(o)
	if err != nil {
		return fmt.Errorf("error writing vector: %s", err)
	}
	log.Infof("wrote %d bytes to %s", n, output)
	return nil
}

func parseWords(s string) ([]uint32, error) {
	var words []uint32
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimPrefix(strings.TrimSpace(f), "0x")
		if f == "" {
			continue
		}
		w, err := strconv.ParseUint(f, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("bad word %q: %w", f, err)
		}
		words = append(words, uint32(w))
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no words given")
	}
	return words, nil
}

// parseHexValue parses a hex value of any length into a vector holding
// width bits
func parseHexValue(s string, width uint) (svvec.BitVec, error) {
	s = strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "_", "")
	x, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("bad hex value %q", s)
	}
	if x.BitLen() > int(width) {
		log.Warnf("value %s is wider than %d bits, truncating", s, width)
	}
	return svvec.BitVecFromBig(x, width), nil
}

func formatWords(v svvec.BitVec) string {
	parts := make([]string, len(v))
	for i, w := range v {
		parts[i] = fmt.Sprintf("%08x", w)
	}
	return strings.Join(parts, ",")
}

func formatLogic(v svvec.LogicVec) string {
	aval, bval := v.Planes()
	return "aval " + formatWords(aval) + "\nbval " + formatWords(bval)
}

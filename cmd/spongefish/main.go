// Command spongefish inspects interaction patterns and runs the Keccak
// duplex sponge from the command line.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/crate-crypto/go-spongefish/duplex"
	"github.com/crate-crypto/go-spongefish/internal/log"
	"github.com/crate-crypto/go-spongefish/internal/patternfile"
	"github.com/crate-crypto/go-spongefish/keccak"
	cli "github.com/urfave/cli/v2"
)

// Automatically set through -ldflags
// Example: go install -ldflags "-X main.version=`git describe --tags`"
var version = "master"

var (
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log debug statements",
	}
	jsonLogsFlag = &cli.BoolFlag{
		Name:  "json-logs",
		Usage: "Log in JSON instead of the console format",
	}
	fileFlag = &cli.StringFlag{
		Name:     "file",
		Usage:    "YAML description of the pattern",
		Required: true,
	}
	canonicalFlag = &cli.BoolFlag{
		Name:  "canonical",
		Usage: "Print the canonical form that is hashed instead of the readable one",
	}
	tagFlag = &cli.StringFlag{
		Name:     "tag",
		Usage:    "32 byte domain separator seeding the sponge",
		Required: true,
	}
	inputFlag = &cli.StringFlag{
		Name:  "input",
		Usage: "Input to absorb",
	}
	hexInputFlag = &cli.BoolFlag{
		Name:  "hex-input",
		Usage: "Decode the input as hex",
	}
	lengthFlag = &cli.IntFlag{
		Name:  "length",
		Usage: "Number of bytes to squeeze",
		Value: 32,
	}
	spongeFlag = &cli.StringFlag{
		Name:  "sponge",
		Usage: "One of keccak, sha3, sha256 or blake2b",
		Value: "keccak",
	}
)

func main() {
	app := CLI()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// CLI returns the spongefish application.
func CLI() *cli.App {
	return &cli.App{
		Name:     "spongefish",
		Version:  version,
		Usage:    "Fiat-Shamir transcripts over duplex sponges",
		Flags:    []cli.Flag{verboseFlag, jsonLogsFlag},
		Before:   setupLogger,
		Commands: []*cli.Command{patternCmd, squeezeCmd},
	}
}

func setupLogger(cctx *cli.Context) error {
	level := log.InfoLevel
	if cctx.Bool(verboseFlag.Name) {
		level = log.DebugLevel
	}
	logger := log.New(nil, level, cctx.Bool(jsonLogsFlag.Name)).Named("spongefish")
	cctx.Context = log.ToContext(cctx.Context, logger)
	return nil
}

var patternCmd = &cli.Command{
	Name:  "pattern",
	Usage: "validate a pattern description and print its hash",
	Flags: []cli.Flag{fileFlag, canonicalFlag},

	Action: func(cctx *cli.Context) error {
		logger := log.FromContextOrNop(cctx.Context).With("command", "pattern")
		path := cctx.String(fileFlag.Name)

		logger.Debugw("loading pattern", "file", path)
		p, err := patternfile.Load(path)
		if err != nil {
			logger.Errorw("invalid pattern", "file", path, "err", err)
			return fmt.Errorf("loading %s: %w", path, err)
		}
		logger.Infow("loaded pattern", "file", path, "interactions", p.Len())

		if cctx.Bool(canonicalFlag.Name) {
			fmt.Fprint(cctx.App.Writer, p.Canonical())
		} else {
			fmt.Fprint(cctx.App.Writer, p.String())
		}
		hash := p.PatternHash()
		fmt.Fprintf(cctx.App.Writer, "hash: %s\n", hex.EncodeToString(hash[:]))
		return nil
	},
}

var squeezeCmd = &cli.Command{
	Name:  "squeeze",
	Usage: "absorb an input into a fresh sponge and squeeze bytes from it",
	Flags: []cli.Flag{tagFlag, inputFlag, hexInputFlag, lengthFlag, spongeFlag},

	Action: func(cctx *cli.Context) error {
		logger := log.FromContextOrNop(cctx.Context).With("command", "squeeze")

		tag := cctx.String(tagFlag.Name)
		if len(tag) != 32 {
			return fmt.Errorf("tag must be 32 bytes, got %d", len(tag))
		}
		input := []byte(cctx.String(inputFlag.Name))
		if cctx.Bool(hexInputFlag.Name) {
			decoded, err := hex.DecodeString(string(input))
			if err != nil {
				return fmt.Errorf("decoding input: %w", err)
			}
			input = decoded
		}
		length := cctx.Int(lengthFlag.Name)
		if length < 0 {
			return fmt.Errorf("length must not be negative, got %d", length)
		}

		sponge, err := newSponge(cctx.String(spongeFlag.Name), [32]byte([]byte(tag)))
		if err != nil {
			return err
		}
		defer sponge.Zeroize()

		logger.Debugw("squeezing", "sponge", cctx.String(spongeFlag.Name), "input", len(input), "length", length)
		sponge.AbsorbUnchecked(input)
		output := make([]byte, length)
		sponge.SqueezeUnchecked(output)

		fmt.Fprintln(cctx.App.Writer, hex.EncodeToString(output))
		return nil
	},
}

func newSponge(name string, iv [32]byte) (duplex.Interface[byte], error) {
	switch name {
	case "keccak":
		return keccak.New(iv), nil
	case "sha3":
		return duplex.NewSHA3Bridge(iv), nil
	case "sha256":
		return duplex.NewSHA256Bridge(iv), nil
	case "blake2b":
		return duplex.NewBlake2bBridge(iv), nil
	default:
		return nil, fmt.Errorf("unknown sponge %q", name)
	}
}

// proxydump decodes asset-proxy wire buffers from the command line: the
// transferFrom call payload built by the dispatcher and the text-error
// buffer a handler writes on failure.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/clydemeng/assetproxy/abicall"
	"github.com/clydemeng/assetproxy/dispatch"
)

var app = &cli.App{
	Name:  "proxydump",
	Usage: "decode asset-proxy call payloads and failure buffers",
	Commands: []*cli.Command{
		calldataCommand,
		revertCommand,
	},
}

var calldataCommand = &cli.Command{
	Name:      "calldata",
	Usage:     "decode a transferFrom call payload",
	ArgsUsage: "<hex>",
	Action:    decodeCalldata,
}

var revertCommand = &cli.Command{
	Name:      "revert",
	Usage:     "decode a text-error failure buffer",
	ArgsUsage: "<hex>",
	Action:    decodeRevert,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func argBytes(ctx *cli.Context) ([]byte, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one hex argument")
	}
	return hexutil.Decode(ctx.Args().First())
}

func decodeCalldata(ctx *cli.Context) error {
	input, err := argBytes(ctx)
	if err != nil {
		return err
	}
	call, err := abicall.DecodeTransferFrom(input)
	if err != nil {
		return err
	}
	tag := dispatch.Tag{}
	if len(call.AssetData) >= dispatch.TagSize {
		tag = dispatch.TagFromData(call.AssetData)
	}
	fmt.Printf("tag:        %s\n", tag)
	fmt.Printf("from:       %s\n", call.From)
	fmt.Printf("to:         %s\n", call.To)
	fmt.Printf("amount:     %s\n", call.Amount)
	fmt.Printf("asset data: %s\n", hexutil.Encode(call.AssetData))
	return nil
}

func decodeRevert(ctx *cli.Context) error {
	ret, err := argBytes(ctx)
	if err != nil {
		return err
	}
	reason, ok := abicall.RevertReason(ret)
	if !ok {
		return fmt.Errorf("no decodable text error in %d-byte buffer", len(ret))
	}
	fmt.Println(reason)
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	tmjson "github.com/tendermint/tendermint/libs/json"
	tmtime "github.com/tendermint/tendermint/types/time"
	yaml "gopkg.in/yaml.v2"

	sdk "github.com/cosmos/cosmos-sdk/types"

	lcerrors "github.com/tmbridge/lightclient/internal/errors"
	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/keeper"
	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

const (
	// FlagFrom is the bech32 account address submitting a request.
	FlagFrom = "from"
	// FlagBlockTime overrides the block time a request is executed at.
	FlagBlockTime = "block-time"
)

// txResult is printed after a request has been committed.
type txResult struct {
	BlockHeight int64    `yaml:"block_height"`
	ClientID    string   `yaml:"client_id"`
	Height      int64    `yaml:"height"`
	Events      []string `yaml:"events"`
}

func newTxCmd(clientCtx *clientContext) *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Submit light client requests",
	}

	txCmd.AddCommand(
		newCreateClientCmd(clientCtx),
		newUpdateClientCmd(clientCtx),
	)

	return txCmd
}

// newCreateClientCmd defines the command to create a new light client.
func newCreateClientCmd(clientCtx *clientContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [path/to/payload.json]",
		Short: "create a new tendermint light client",
		Long: `create a new tendermint light client from an initial trusted header. The payload
holds client_id (hex), an optional chain_id, the signed header, its validator set and
optionally trusting_period, max_clock_drift and unbonding_period in seconds and a
trust_level. Unset periods are taken from the configuration.`,
		Example: "tmclientd tx create [path/to/payload.json] --from cosmos1...",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := readJSONArg(args[0])
			if err != nil {
				return err
			}

			payload, err := types.DecodeCreateClientPayload(bz)
			if err != nil {
				return err
			}
			bz, err = tmjson.Marshal(clientCtx.applyDefaults(payload))
			if err != nil {
				return err
			}

			from, err := cmd.Flags().GetString(FlagFrom)
			if err != nil {
				return err
			}
			msg := types.NewMsgCreateClient(from, bz)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return clientCtx.execute(cmd, func(ctx sdk.Context, msgServer types.MsgServer) (string, int64, error) {
				res, err := msgServer.CreateClient(sdk.WrapSDKContext(ctx), msg)
				if err != nil {
					return "", 0, err
				}
				return res.ClientID.String(), res.Height, nil
			})
		},
	}

	addTxFlagsToCmd(cmd)
	return cmd
}

// newUpdateClientCmd defines the command to update a light client.
func newUpdateClientCmd(clientCtx *clientContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [path/to/payload.json]",
		Short: "update an existing tendermint light client with a new header",
		Long: `update an existing tendermint light client. The payload holds client_id (hex),
the signed header, its validator set and optionally the next validator set.`,
		Example: "tmclientd tx update [path/to/payload.json] --from cosmos1...",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := readJSONArg(args[0])
			if err != nil {
				return err
			}

			from, err := cmd.Flags().GetString(FlagFrom)
			if err != nil {
				return err
			}
			msg := types.NewMsgUpdateClient(from, bz)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return clientCtx.execute(cmd, func(ctx sdk.Context, msgServer types.MsgServer) (string, int64, error) {
				res, err := msgServer.UpdateClient(sdk.WrapSDKContext(ctx), msg)
				if err != nil {
					return "", 0, err
				}
				return res.ClientID.String(), res.Height, nil
			})
		},
	}

	addTxFlagsToCmd(cmd)
	return cmd
}

func addTxFlagsToCmd(cmd *cobra.Command) {
	cmd.Flags().String(FlagFrom, "", "bech32 account address of the submitter")
	cmd.Flags().String(FlagBlockTime, "", "RFC3339 block time to execute the request at (default now)")
	_ = cmd.MarkFlagRequired(FlagFrom)
}

// applyDefaults fills the unset periods of a create payload from the configuration.
func (c *clientContext) applyDefaults(payload types.CreateClientPayload) types.CreateClientPayload {
	params := c.config.TrustParameters
	if payload.TrustingPeriod == 0 {
		payload.TrustingPeriod = uint64(params.TrustingPeriod / time.Second)
	}
	if payload.MaxClockDrift == 0 {
		payload.MaxClockDrift = uint64(params.MaxClockDrift / time.Second)
	}
	if payload.UnbondingPeriod == 0 {
		payload.UnbondingPeriod = uint64(params.UnbondingPeriod / time.Second)
	}
	return payload
}

// execute runs fn in a new block, commits it and prints the result.
func (c *clientContext) execute(
	cmd *cobra.Command, fn func(ctx sdk.Context, msgServer types.MsgServer) (clientID string, height int64, err error),
) error {
	blockTime, err := blockTimeFromFlags(cmd)
	if err != nil {
		return err
	}

	a, err := c.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	msgServer := keeper.NewMsgServerImpl(a.Keeper)

	var result txResult
	events, err := a.Execute(blockTime, func(ctx sdk.Context) (err error) {
		result.ClientID, result.Height, err = fn(ctx, msgServer)
		return err
	})
	if err != nil {
		return err
	}

	result.BlockHeight = a.LastHeight()
	for _, event := range events {
		result.Events = append(result.Events, formatEvent(event))
	}

	if metrics, err := a.Metrics(); err == nil && metrics != nil {
		c.logger.Debug("telemetry", "metrics", string(metrics))
	}

	out, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
	return err
}

func blockTimeFromFlags(cmd *cobra.Command) (time.Time, error) {
	raw, err := cmd.Flags().GetString(FlagBlockTime)
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		return tmtime.Now(), nil
	}

	t, err := cast.ToTimeE(raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(lcerrors.ErrInvalidRequest, "--%s: %v", FlagBlockTime, err)
	}
	return t.UTC(), nil
}

// readJSONArg returns arg if it is JSON, or the contents of the file it names.
func readJSONArg(arg string) ([]byte, error) {
	if strings.HasPrefix(strings.TrimSpace(arg), "{") {
		return []byte(arg), nil
	}

	// check for file path if JSON input is not provided
	contents, err := os.ReadFile(arg)
	if err != nil {
		return nil, errors.Wrapf(lcerrors.ErrInvalidRequest, "neither JSON input nor path to .json file were provided: %v", err)
	}
	return contents, nil
}

func formatEvent(event sdk.Event) string {
	attributes := make([]string, len(event.Attributes))
	for i, attr := range event.Attributes {
		attributes[i] = fmt.Sprintf("%s=%s", attr.Key, attr.Value)
	}
	return fmt.Sprintf("%s: %s", event.Type, strings.Join(attributes, ", "))
}

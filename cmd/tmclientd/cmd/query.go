package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	tmbytes "github.com/tendermint/tendermint/libs/bytes"
	tmjson "github.com/tendermint/tendermint/libs/json"
	tmtime "github.com/tendermint/tendermint/types/time"
	yaml "gopkg.in/yaml.v2"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

func newQueryCmd(clientCtx *clientContext) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Query light client state",
	}

	queryCmd.AddCommand(
		newQueryClientCmd(clientCtx),
		newQueryClientInfoCmd(clientCtx),
		newQueryClientsCmd(clientCtx),
		newQueryClientStatusCmd(clientCtx),
	)

	return queryCmd
}

// newQueryClientCmd defines the command to query the full record of a client.
func newQueryClientCmd(clientCtx *clientContext) *cobra.Command {
	return &cobra.Command{
		Use:     "client [client-id]",
		Short:   "Query a client record",
		Example: "tmclientd query client 0A0B0C",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseClientID(args[0])
			if err != nil {
				return err
			}

			var res *types.QueryClientResponse
			if err := clientCtx.query(func(ctx sdk.Context, queryServer types.QueryServer) (err error) {
				res, err = queryServer.Client(sdk.WrapSDKContext(ctx), &types.QueryClientRequest{ClientID: clientID})
				return err
			}); err != nil {
				return err
			}

			out, err := tmjson.MarshalIndent(res.Client, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

// newQueryClientInfoCmd defines the command to query the summary of a client.
func newQueryClientInfoCmd(clientCtx *clientContext) *cobra.Command {
	return &cobra.Command{
		Use:     "info [client-id]",
		Short:   "Query the chain-id and latest height of a client",
		Example: "tmclientd query info 0A0B0C",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseClientID(args[0])
			if err != nil {
				return err
			}

			var res *types.QueryClientInfoResponse
			if err := clientCtx.query(func(ctx sdk.Context, queryServer types.QueryServer) (err error) {
				res, err = queryServer.ClientInfo(sdk.WrapSDKContext(ctx), &types.QueryClientInfoRequest{ClientID: clientID})
				return err
			}); err != nil {
				return err
			}

			out, err := yaml.Marshal(struct {
				ChainID      string `yaml:"chain_id"`
				LatestHeight int64  `yaml:"latest_height"`
			}{res.Info.ChainID, res.Info.LatestHeight})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

// newQueryClientsCmd defines the command to list all client identifiers.
func newQueryClientsCmd(clientCtx *clientContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all client identifiers in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var res *types.QueryClientsResponse
			if err := clientCtx.query(func(ctx sdk.Context, queryServer types.QueryServer) (err error) {
				res, err = queryServer.Clients(sdk.WrapSDKContext(ctx), &types.QueryClientsRequest{})
				return err
			}); err != nil {
				return err
			}

			for _, clientID := range res.ClientIDs {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), clientID.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// newQueryClientStatusCmd defines the command to query the status of a client.
func newQueryClientStatusCmd(clientCtx *clientContext) *cobra.Command {
	return &cobra.Command{
		Use:     "status [client-id]",
		Short:   "Query the status of a client (Active, Expired or Unknown)",
		Example: "tmclientd query status 0A0B0C",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseClientID(args[0])
			if err != nil {
				return err
			}

			var res *types.QueryClientStatusResponse
			if err := clientCtx.query(func(ctx sdk.Context, queryServer types.QueryServer) (err error) {
				res, err = queryServer.ClientStatus(sdk.WrapSDKContext(ctx), &types.QueryClientStatusRequest{ClientID: clientID})
				return err
			}); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Status)
			return err
		},
	}
}

// query runs fn against the latest committed state.
func (c *clientContext) query(fn func(ctx sdk.Context, queryServer types.QueryServer) error) error {
	a, err := c.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Query(tmtime.Now(), func(ctx sdk.Context) error {
		return fn(ctx, a.Keeper)
	})
}

func parseClientID(arg string) (tmbytes.HexBytes, error) {
	bz, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(arg), "0x"))
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrDeserialize, "client id %q is not hex: %v", arg, err)
	}
	clientID := tmbytes.HexBytes(bz)
	return clientID, types.ValidateClientID(clientID)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	tmjson "github.com/tendermint/tendermint/libs/json"
	tmtime "github.com/tendermint/tendermint/types/time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

// newExportCmd defines the command to dump every client record as genesis JSON.
func newExportCmd(clientCtx *clientContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export all client records as genesis JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := clientCtx.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			var gs types.GenesisState
			if err := a.Query(tmtime.Now(), func(ctx sdk.Context) error {
				gs = a.Keeper.ExportGenesis(ctx)
				return nil
			}); err != nil {
				return err
			}

			out, err := tmjson.MarshalIndent(gs, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

// newImportCmd defines the command to load client records from genesis JSON.
func newImportCmd(clientCtx *clientContext) *cobra.Command {
	return &cobra.Command{
		Use:     "import [path/to/genesis.json]",
		Short:   "Import client records from genesis JSON",
		Example: "tmclientd import genesis.json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var gs types.GenesisState
			if err := tmjson.Unmarshal(bz, &gs); err != nil {
				return errors.Wrap(err, "failed to decode genesis")
			}

			a, err := clientCtx.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Execute(tmtime.Now(), func(ctx sdk.Context) error {
				return a.Keeper.InitGenesis(ctx, gs)
			}); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d clients at height %d\n", len(gs.Clients), a.LastHeight())
			return err
		},
	}
}

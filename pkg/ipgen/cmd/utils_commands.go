package cmd

import (
	"fmt"
	"strconv"

	goversionext "github.com/erwinvaneyk/goversion/pkg/extensions"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ovn-org/ovn-fake-multinode/pkg/utils/constants"
)

func NewCmdUtils() *cobra.Command {
	return newCmdUtils(NewRootOptions())
}

// ExecuteUtils runs ip_gen_utils and returns the process exit code
func ExecuteUtils() int {
	err := NewCmdUtils().Execute()
	code := exitCode(err)
	_ = zap.L().Sync()
	return code
}

// newCmdUtils builds the helper binary. The helpers live outside ip_gen so
// that no ip_gen argument can be taken for a subcommand name.
func newCmdUtils(opts *RootOptions) *cobra.Command {
	rootSvcCmd := &cobra.Command{
		Use:           constants.UtilsAppName,
		Short:         "Address helpers used alongside ip_gen by the multinode scripts",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.LoadConfig(cmd.Flags())
		},
	}
	rootSvcCmd.CompletionOptions.DisableDefaultCmd = true
	rootSvcCmd.PersistentFlags().AddFlagSet(opts.PersistentFlags())

	var (
		hostCIDR string
		pos      int
	)
	addrConvCmd := &cobra.Command{
		Use:   "addr-conv",
		Short: "prints the <pos>th IP of an IPv4/IPv6 CIDR, or None",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ip, err := opts.Net.AddrConv(hostCIDR, pos)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), constants.AddrConvNone)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), ip)
		},
	}
	addrConvCmd.Flags().StringVar(&hostCIDR, "cidr", "", "IPv4/IPv6 CIDR")
	addrConvCmd.Flags().IntVar(&pos, "pos", 0, "<pos>th IP to generate")

	ipTypeCmd := &cobra.Command{
		Use:   "ip-type <address or hostname>",
		Short: "prints IP if the argument is an IP address, DNS otherwise",
		// Missing argument exits 1 without a message, like the script this replaced.
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), opts.Net.IPType(args[0]))
		},
	}

	v6TestCmd := &cobra.Command{
		Use:   "is-v6",
		Short: "returns true if provided string is an IPv6 address, false otherwise",
		Run: func(cmd *cobra.Command, args []string) {
			for _, addr := range args {
				fmt.Fprintln(cmd.OutOrStdout(), opts.Net.IsIPv6(addr))
			}
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info <cidr>",
		Short: "prints the boundaries and size of an IPv4 network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := opts.Net.NetworkInfo(args[0])
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Field", "Value"})
			table.AppendBulk([][]string{
				{"Network", info.Network},
				{"Netmask", info.Netmask},
				{"Prefix length", strconv.Itoa(info.PrefixLength)},
				{"First address", info.First},
				{"Last address", info.Last},
				{"Addresses", strconv.FormatUint(info.Count, 10)},
			})
			table.Render()
			return nil
		},
	}

	rootSvcCmd.AddCommand(addrConvCmd, ipTypeCmd, v6TestCmd, infoCmd)
	rootSvcCmd.AddCommand(goversionext.NewCobraCmdWithDefaults())
	return rootSvcCmd
}

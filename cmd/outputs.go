package cmd

import (
	"errors"
	"fmt"

	"slscfinv/internal/service/cfn"
	"slscfinv/internal/service/common"

	"github.com/spf13/cobra"
)

// outputsCmd represents the outputs command
var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "スタック出力の一覧を表示するコマンド",
	Long: `デプロイ済みCloudFormationスタックの出力一覧を表示します。
distributionIdKey に指定するキーの確認に使います。

例:
  ` + AppName + ` outputs -s prod`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlugin(cmd)
		if err != nil {
			return err
		}

		resolver, err := p.Resolver(cmd.Context())
		if err != nil {
			return fmt.Errorf(common.GetErrorFormat, common.ErrorIcon, "AWSクライアント", err)
		}

		name := p.StackName()
		// Outputs が無いスタックは0件として表示する
		outputs, err := resolver.GetStackOutputs(cmd.Context(), name)
		if err != nil && !errors.Is(err, cfn.ErrNoOutputs) {
			return fmt.Errorf(common.ListErrorFormat, common.ErrorIcon, "スタック出力", err)
		}

		items := make([]string, 0, len(outputs))
		for _, o := range outputs {
			items = append(items, fmt.Sprintf("%s = %s", o.Key, o.Value))
		}
		common.PrintNumberedList(cmd.OutOrStdout(), common.ListOutput{
			Title:        fmt.Sprintf("スタック出力一覧 (スタック: %s)", name),
			Items:        items,
			ResourceName: "スタック出力",
		})
		return nil
	},
}

func init() {
	RootCmd.AddCommand(outputsCmd)
}

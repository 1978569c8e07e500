package cmd

import (
	"fmt"

	"slscfinv/internal/plugin"
	"slscfinv/internal/service/common"

	"github.com/spf13/cobra"
)

// hookCmd represents the hook command
var hookCmd = &cobra.Command{
	Use:   "hook <event>",
	Short: "ライフサイクルイベントのフックを実行するコマンド",
	Long: `ホストのデプロイフレームワークから呼び出されるライフサイクルフックを実行します。

【登録済みイベント】
  ` + plugin.EventAfterDeploy + `              # デプロイ完了後
  ` + plugin.EventInvalidate + `  # コマンド直接実行

【例】
  ` + AppName + ` hook ` + plugin.EventAfterDeploy + ` -s prod`,
	Args: cobra.ExactArgs(1),
	ValidArgs: []string{
		plugin.EventAfterDeploy,
		plugin.EventInvalidate,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlugin(cmd)
		if err != nil {
			return err
		}

		if err := p.Run(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("%s フック '%s' の実行に失敗: %w", common.ErrorIcon, args[0], err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(hookCmd)
}

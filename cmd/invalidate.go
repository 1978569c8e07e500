package cmd

import (
	"fmt"
	"time"

	"slscfinv/internal/plugin"
	"slscfinv/internal/service/common"

	"github.com/spf13/cobra"
)

// invalidateCmd represents the invalidate command
var invalidateCmd = &cobra.Command{
	Use:   "invalidate",
	Short: "CloudFrontのキャッシュを無効化するコマンド",
	Long: `serverless.yml の設定に従ってCloudFrontディストリビューションのキャッシュを無効化します。
distributionId が指定されていればそれを使い、なければ distributionIdKey に一致するスタック出力から解決します。

【使い方】
  ` + AppName + ` invalidate                        # serverless.yml の設定で無効化
  ` + AppName + ` invalidate -s prod                # ステージを指定
  ` + AppName + ` invalidate --cacert ./corp-ca.pem # 社内プロキシのCAを信頼
  ` + AppName + ` invalidate -w                     # 完了まで待機`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wait, _ := cmd.Flags().GetBool("wait")
		waitTimeout, _ := cmd.Flags().GetDuration("wait-timeout")
		opts := []plugin.Option{plugin.WithWaitLimit(waitTimeout)}
		if wait {
			opts = append(opts, plugin.WithWait())
		}

		p, err := newPlugin(cmd, opts...)
		if err != nil {
			return err
		}

		if err := p.Run(cmd.Context(), plugin.EventInvalidate); err != nil {
			return fmt.Errorf("%s キャッシュ無効化エラー: %w", common.ErrorIcon, err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(invalidateCmd)

	invalidateCmd.Flags().BoolP("wait", "w", false, "無効化完了まで待機")
	invalidateCmd.Flags().Duration("wait-timeout", 10*time.Minute, "無効化完了待機の上限")
}

package cmd

import (
	"context"
	"os"

	"slscfinv/internal/serverless"

	"github.com/spf13/cobra"
)

// AppName はコマンド名
const AppName = "sls-cf-invalidate"

var configFile string
var stage string
var region string
var profile string
var stackName string
var caCert string
var verbose int
var noColor bool

// service は読み込んだserverless.yml
var service *serverless.Service

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "デプロイ後にCloudFrontのキャッシュを無効化するプラグイン",
	Long: `serverless.yml の custom.cloudfrontInvalidate の設定に従い、CloudFrontディストリビューションの
キャッシュを無効化します。ディストリビューションIDは直接指定するか、デプロイ済みスタックの出力から解決します。

【設定例】
  custom:
    cloudfrontInvalidate:
      distributionId: E2ABC123DEF456    # または distributionIdKey: CDNDistributionId
      items:
        - "/index.html"
        - "/assets/*"`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	err := RootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", serverless.DefaultConfigFile, "serverless設定ファイル")
	RootCmd.PersistentFlags().StringVarP(&stage, "stage", "s", "", "ステージ（デフォルト: provider.stage または dev）")
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "", "AWSリージョン（デフォルト: provider.region または us-east-1）")
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")
	RootCmd.PersistentFlags().StringVarP(&stackName, "stack", "S", "", "CloudFormationスタック名（デフォルト: <service>-<stage>）")
	RootCmd.PersistentFlags().StringVar(&caCert, "cacert", "", "信頼するCA証明書バンドルのパス")
	RootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "デバッグログを出力")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "色付き出力を無効化")

	// コマンド実行前に共通で設定ファイルを読み込む
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// ヘルプ・バージョン表示の場合はスキップ
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		return loadService(cmd)
	}
}

// loadService は設定ファイルを読み込み、スタック名を解決する
func loadService(cmd *cobra.Command) error {
	svc, err := serverless.LoadService(configFile)
	if err != nil {
		return formatConfigError(err)
	}
	service = svc
	resolveStackName(cmd)
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"slscfinv/internal/logging"
	"slscfinv/internal/plugin"
	"slscfinv/internal/serverless"
	"slscfinv/internal/service/common"

	"github.com/spf13/cobra"
)

// resolveStackName はコマンドライン引数または環境変数からスタック名を決定し、グローバル変数 stackName にセットする
func resolveStackName(cmd *cobra.Command) {
	if stackName != "" {
		cmd.Println(common.SearchIcon + " -Sオプションで指定されたスタック名 '" + stackName + "' を使用します")
		return
	}
	envStack := os.Getenv("AWS_STACK_NAME")
	if envStack != "" {
		cmd.Println(common.SearchIcon + " 環境変数 AWS_STACK_NAME の値 '" + envStack + "' を使用します")
		stackName = envStack
	}
	// どちらもなければ命名規則から決定する
}

// newProvider はコマンドラインオプションを反映したProviderを作成する
func newProvider() *serverless.Provider {
	return serverless.NewProvider(service, serverless.Options{
		Stage:     stage,
		Region:    region,
		Profile:   profile,
		StackName: stackName,
		CACert:    caCert,
	})
}

// newPlugin はコマンドの出力先に書き込むプラグインを作成する
func newPlugin(cmd *cobra.Command, opts ...plugin.Option) (*plugin.Plugin, error) {
	console := common.NewConsole(cmd.OutOrStdout(), !noColor)
	log := logging.New(cmd.ErrOrStderr(), verbose)

	p, err := plugin.New(newProvider(), console, log, opts...)
	if err != nil {
		return nil, formatConfigError(err)
	}
	return p, nil
}

// formatConfigError は設定エラーを統一フォーマットで返す
func formatConfigError(err error) error {
	return fmt.Errorf(common.ConfigErrorFormat, common.ErrorIcon, err)
}

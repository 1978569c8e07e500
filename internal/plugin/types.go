package plugin

import "context"

const (
	// CommandName はホストに登録するコマンド名
	CommandName = "cloudfrontInvalidate"

	// EventAfterDeploy はデプロイ完了後のライフサイクルイベント
	EventAfterDeploy = "after:deploy:deploy"
	// EventInvalidate はコマンド直接実行時のライフサイクルイベント
	EventInvalidate = CommandName + ":invalidate"
)

// Command はホストに登録するコマンド定義
type Command struct {
	Usage           string
	LifecycleEvents []string
}

// Hook はライフサイクルイベントで呼ばれる処理
type Hook func(ctx context.Context) error

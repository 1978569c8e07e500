package common

// メッセージの絵文字定数
const (
	ErrorIcon   = "❌"
	SuccessIcon = "✅"
	WarningIcon = "⚠️"
	SearchIcon  = "🔍"
	RocketIcon  = "🚀"
	WaitIcon    = "⏳"
)

// エラーメッセージフォーマット定数
const (
	// 設定エラー
	ConfigErrorFormat = "%s 設定エラー: %w"

	// その他の操作エラー
	GetErrorFormat  = "%s %s の取得に失敗: %w"
	ListErrorFormat = "%s %s一覧の取得に失敗: %w"
)

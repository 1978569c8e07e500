package serverless

// Service はserverless.ymlのうちプラグインが参照する部分
type Service struct {
	Service  ServiceName    `yaml:"service"`
	Provider ProviderConfig `yaml:"provider"`
	Custom   CustomConfig   `yaml:"custom"`
}

// ServiceName はサービス名（文字列形式と {name: ...} 形式の両方を受け付ける）
type ServiceName string

// ProviderConfig はprovider ブロック
type ProviderConfig struct {
	Name      string `yaml:"name"`
	Region    string `yaml:"region"`
	Stage     string `yaml:"stage"`
	StackName string `yaml:"stackName"`
	Profile   string `yaml:"profile"`
}

// CustomConfig はcustom ブロック
type CustomConfig struct {
	CloudfrontInvalidate InvalidateConfig `yaml:"cloudfrontInvalidate"`
}

// InvalidateConfig はcustom.cloudfrontInvalidate の設定値
type InvalidateConfig struct {
	DistributionId    string   `yaml:"distributionId"`    // オプション: ディストリビューションID（最優先）
	DistributionIdKey string   `yaml:"distributionIdKey"` // オプション: IDを持つスタック出力のキー
	Items             []string `yaml:"items"`             // 無効化するパス
	CACert            string   `yaml:"cacert"`            // オプション: CAバンドルのパス
	Wait              bool     `yaml:"wait"`              // オプション: 無効化完了まで待機
}

// Mode はディストリビューションIDの決定方法
type Mode int

const (
	// ModeNone はIDもキーも未指定（何もしない）
	ModeNone Mode = iota
	// ModeDirectId はdistributionIdをそのまま使う
	ModeDirectId
	// ModeResolveId はスタック出力からIDを解決する
	ModeResolveId
)

func (m Mode) String() string {
	switch m {
	case ModeDirectId:
		return "DirectId"
	case ModeResolveId:
		return "ResolveId"
	default:
		return "None"
	}
}

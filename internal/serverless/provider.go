package serverless

import (
	"os"

	awsctx "slscfinv/internal/aws"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Options はコマンドラインから上書きされる値
type Options struct {
	Stage     string
	Region    string
	Profile   string
	StackName string
	CACert    string
}

// Provider はホストのAWSプロバイダー（リージョン・命名規則・認証情報）
type Provider struct {
	service *Service
	options Options

	// 明示的な認証情報（nilならSDKのデフォルトチェーン）
	credentials aws.CredentialsProvider
}

// NewProvider はServiceとコマンドラインオプションからProviderを作成する
func NewProvider(service *Service, options Options) *Provider {
	return &Provider{service: service, options: options}
}

// SetCredentials はデフォルトチェーンの代わりに使う認証情報を設定する
func (p *Provider) SetCredentials(creds aws.CredentialsProvider) {
	p.credentials = creds
}

// GetStage はオプション、provider.stage、デフォルトの順に解決したステージを返す
func (p *Provider) GetStage() string {
	if p.options.Stage != "" {
		return p.options.Stage
	}
	if p.service.Provider.Stage != "" {
		return p.service.Provider.Stage
	}
	return DefaultStage
}

// GetRegion はオプション、provider.region、デフォルトの順に解決したリージョンを返す
func (p *Provider) GetRegion() string {
	if p.options.Region != "" {
		return p.options.Region
	}
	if p.service.Provider.Region != "" {
		return p.service.Provider.Region
	}
	return DefaultRegion
}

// GetProfile はオプション、provider.profile、環境変数 AWS_PROFILE の順に解決したプロファイルを返す
func (p *Provider) GetProfile() string {
	if p.options.Profile != "" {
		return p.options.Profile
	}
	if p.service.Provider.Profile != "" {
		return p.service.Provider.Profile
	}
	return os.Getenv("AWS_PROFILE")
}

// Naming はスタック命名規則を返す
func (p *Provider) Naming() Naming {
	stackName := p.options.StackName
	if stackName == "" {
		stackName = p.service.Provider.StackName
	}
	return Naming{
		Service:   string(p.service.Service),
		Stage:     p.GetStage(),
		StackName: stackName,
	}
}

// InvalidateConfig はコマンドラインのcacertを反映したプラグイン設定を返す
func (p *Provider) InvalidateConfig() InvalidateConfig {
	cfg := p.service.Custom.CloudfrontInvalidate
	if p.options.CACert != "" {
		cfg.CACert = p.options.CACert
	}
	return cfg
}

// AwsContext はSDK設定の読み込みに使うContextを返す
func (p *Provider) AwsContext() awsctx.Context {
	return awsctx.Context{
		Profile:     p.GetProfile(),
		Region:      p.GetRegion(),
		Credentials: p.credentials,
	}
}

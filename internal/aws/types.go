package aws

import "github.com/aws/aws-sdk-go-v2/aws"

// Context AwsContext は認証情報と接続設定を保持
type Context struct {
	Profile string
	Region  string

	// HTTPClient はSDKが使うHTTPクライアント（CAバンドル指定時のみ設定）
	HTTPClient aws.HTTPClient
	// Credentials は明示的な認証情報（未指定ならデフォルトチェーン）
	Credentials aws.CredentialsProvider

	config *aws.Config // AWS設定のキャッシュ（非公開）
}

package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
)

// Clients はAWS設定と各サービスクライアントを管理
type Clients struct {
	cfg aws.Config

	// 遅延初期化されるクライアント群
	cfn        *cloudformation.Client
	cloudFront *cloudfront.Client
}

// NewAwsClients は認証情報からAWS設定を読み込んでクライアント管理構造体を作成
func NewAwsClients(ctx context.Context, awsCtx *Context) (*Clients, error) {
	cfg, err := awsCtx.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &Clients{cfg: cfg}, nil
}

// Cfn は遅延初期化でCloudFormationクライアントを取得
func (c *Clients) Cfn() *cloudformation.Client {
	if c.cfn == nil {
		c.cfn = cloudformation.NewFromConfig(c.cfg)
	}
	return c.cfn
}

// CloudFront は遅延初期化でCloudFrontクライアントを取得
func (c *Clients) CloudFront() *cloudfront.Client {
	if c.cloudFront == nil {
		c.cloudFront = cloudfront.NewFromConfig(c.cfg)
	}
	return c.cloudFront
}

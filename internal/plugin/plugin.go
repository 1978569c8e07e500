// Package plugin はホストのデプロイフレームワークに登録するコマンドとフックを定義する
package plugin

import (
	"context"
	"fmt"
	"sort"
	"time"

	awsctx "slscfinv/internal/aws"
	"slscfinv/internal/serverless"
	"slscfinv/internal/service/cfn"
	cfsvc "slscfinv/internal/service/cloudfront"
	"slscfinv/internal/service/common"
	"slscfinv/internal/service/invalidate"

	"github.com/go-logr/logr"
)

// Plugin はCloudFrontキャッシュ無効化プラグイン
type Plugin struct {
	Commands map[string]Command
	Hooks    map[string]Hook

	provider *serverless.Provider
	config   serverless.InvalidateConfig
	awsCtx   awsctx.Context
	console  *common.Console
	log      logr.Logger

	waitLimit time.Duration
	stacks    cfn.DescribeStacksAPI
	cdn       cfsvc.API
}

// Option はPluginの任意設定
type Option func(*Plugin)

// WithAPIs はAWS設定を読み込まずに指定したAPIクライアントを使う
func WithAPIs(stacks cfn.DescribeStacksAPI, cdn cfsvc.API) Option {
	return func(p *Plugin) {
		p.stacks = stacks
		p.cdn = cdn
	}
}

// WithWaitLimit は無効化完了待機の上限を指定する
func WithWaitLimit(d time.Duration) Option {
	return func(p *Plugin) {
		p.waitLimit = d
	}
}

// WithWait は設定に関わらず無効化完了まで待機する
func WithWait() Option {
	return func(p *Plugin) {
		p.config.Wait = true
	}
}

// New はプラグインを作成する
// cacert が指定されていて存在しない場合は、通信を行う前にエラーを返す
func New(provider *serverless.Provider, console *common.Console, log logr.Logger, opts ...Option) (*Plugin, error) {
	p := &Plugin{
		provider:  provider,
		config:    provider.InvalidateConfig(),
		awsCtx:    provider.AwsContext(),
		console:   console,
		log:       log,
		waitLimit: cfsvc.DefaultWaitTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.config.CACert != "" {
		client, err := awsctx.NewCABundleClient(p.config.CACert)
		if err != nil {
			return nil, err
		}
		p.awsCtx.HTTPClient = client
		console.Plugin("ca cert handling enabled")
	}

	p.Commands = map[string]Command{
		CommandName: {
			Usage:           "Invalidate Cloudfront Cache",
			LifecycleEvents: []string{"invalidate"},
		},
	}
	p.Hooks = map[string]Hook{
		EventAfterDeploy: p.invalidate,
		EventInvalidate:  p.invalidate,
	}
	return p, nil
}

// Events は登録済みのライフサイクルイベント名を返す
func (p *Plugin) Events() []string {
	events := make([]string, 0, len(p.Hooks))
	for name := range p.Hooks {
		events = append(events, name)
	}
	sort.Strings(events)
	return events
}

// Run は指定したライフサイクルイベントのフックを実行する
func (p *Plugin) Run(ctx context.Context, event string) error {
	hook, ok := p.Hooks[event]
	if !ok {
		return fmt.Errorf("未登録のライフサイクルイベントです: %s (登録済み: %v)", event, p.Events())
	}
	p.log.V(1).Info("running hook", "event", event)
	return hook(ctx)
}

// StackName はスタック出力を参照するスタック名を返す
func (p *Plugin) StackName() string {
	return p.provider.Naming().GetStackName()
}

// Resolver はスタック出力を参照するResolverを返す
func (p *Plugin) Resolver(ctx context.Context) (*cfn.Resolver, error) {
	if err := p.ensureAPIs(ctx); err != nil {
		return nil, err
	}
	return cfn.NewResolver(p.stacks), nil
}

func (p *Plugin) invalidate(ctx context.Context) error {
	trigger, err := p.newTrigger(ctx)
	if err != nil {
		return err
	}

	result, err := trigger.Invalidate(ctx)
	p.log.V(1).Info("invalidation finished",
		"outcome", result.Outcome.String(),
		"distributionId", result.DistributionId,
		"callerReference", result.CallerReference)
	return err
}

func (p *Plugin) newTrigger(ctx context.Context) (*invalidate.Trigger, error) {
	opts := invalidate.Options{
		Config:    p.config,
		StackName: p.StackName(),
		WaitLimit: p.waitLimit,
		Console:   p.console,
		Log:       p.log,
	}

	// IDもキーも未指定の場合はAWS設定を読み込まない
	if p.config.Mode() == serverless.ModeNone {
		opts.Submitter = noopSubmitter{}
		return invalidate.NewTrigger(opts)
	}

	if err := p.ensureAPIs(ctx); err != nil {
		return nil, err
	}

	cdn := p.cdn
	opts.Resolver = cfn.NewResolver(p.stacks)
	opts.Submitter = cfsvc.NewSubmitter(cdn, p.console, p.log)
	opts.Waiter = func(ctx context.Context, distributionId, invalidationId string, maxWait time.Duration) error {
		return cfsvc.WaitForInvalidation(ctx, cdn, distributionId, invalidationId, maxWait)
	}
	return invalidate.NewTrigger(opts)
}

// ensureAPIs はホストの認証情報でAWSクライアントを用意する
func (p *Plugin) ensureAPIs(ctx context.Context) error {
	if p.stacks != nil && p.cdn != nil {
		return nil
	}

	clients, err := awsctx.NewAwsClients(ctx, &p.awsCtx)
	if err != nil {
		return fmt.Errorf("AWS設定の読み込みエラー: %w", err)
	}
	if p.stacks == nil {
		p.stacks = clients.Cfn()
	}
	if p.cdn == nil {
		p.cdn = clients.CloudFront()
	}
	return nil
}

// noopSubmitter は送信が起こり得ない設定で使う
type noopSubmitter struct{}

func (noopSubmitter) Submit(context.Context, cfsvc.Request) (string, error) {
	return "", nil
}

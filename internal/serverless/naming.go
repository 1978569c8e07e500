package serverless

import "fmt"

const (
	// DefaultStage はstage未指定時の値
	DefaultStage = "dev"
	// DefaultRegion はregion未指定時の値
	DefaultRegion = "us-east-1"
)

// Naming はホストのスタック命名規則
type Naming struct {
	Service   string
	Stage     string
	StackName string // provider.stackName（指定時は命名規則より優先）
}

// GetStackName はデプロイ済みスタックの名前を返す
func (n Naming) GetStackName() string {
	if n.StackName != "" {
		return n.StackName
	}
	stage := n.Stage
	if stage == "" {
		stage = DefaultStage
	}
	return fmt.Sprintf("%s-%s", n.Service, stage)
}

package serverless

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile はホストの設定ファイル名
const DefaultConfigFile = "serverless.yml"

// LoadService は設定ファイルを読み込んでServiceを返す
func LoadService(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイル '%s' の読み込みに失敗: %w", path, err)
	}

	svc, err := ParseService(data)
	if err != nil {
		return nil, fmt.Errorf("設定ファイル '%s' の解析に失敗: %w", path, err)
	}
	return svc, nil
}

// ParseService はYAMLをServiceに変換する
func ParseService(data []byte) (*Service, error) {
	var svc Service
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// UnmarshalYAML は service: name と service: {name: name} の両形式を受け付ける
func (n *ServiceName) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*n = ServiceName(value.Value)
		return nil
	case yaml.MappingNode:
		var obj struct {
			Name string `yaml:"name"`
		}
		if err := value.Decode(&obj); err != nil {
			return err
		}
		*n = ServiceName(obj.Name)
		return nil
	default:
		return fmt.Errorf("service は文字列または {name: ...} で指定してください (line %d)", value.Line)
	}
}

// Mode はディストリビューションIDの決定方法を返す
// distributionId が指定されていれば distributionIdKey より優先する
func (c InvalidateConfig) Mode() Mode {
	if c.DistributionId != "" {
		return ModeDirectId
	}
	if c.DistributionIdKey != "" {
		return ModeResolveId
	}
	return ModeNone
}

// Warnings は items の記述で気になる点を返す
// CloudFrontの判断に任せるため、送信は止めない
func (c InvalidateConfig) Warnings() []string {
	if c.Mode() == ModeNone {
		return nil
	}

	var warnings []string
	if len(c.Items) == 0 {
		warnings = append(warnings, "custom.cloudfrontInvalidate.items が空です")
	}
	for i, item := range c.Items {
		if !strings.HasPrefix(item, "/") {
			warnings = append(warnings, fmt.Sprintf("custom.cloudfrontInvalidate.items[%d] '%s' が / で始まっていません", i, item))
		}
	}
	return warnings
}

package aws

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
)

// NewCABundleClient は指定したCA証明書のみを信頼するHTTPクライアントを作成する
func NewCABundleClient(caCertPath string) (*awshttp.BuildableClient, error) {
	if _, err := os.Stat(caCertPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("Supplied cacert option to a file that does not exist: %s", caCertPath)
		}
		return nil, fmt.Errorf("CA証明書の確認に失敗: %w", err)
	}

	pem, err := os.ReadFile(caCertPath)
	if err != nil {
		return nil, fmt.Errorf("CA証明書の読み込みに失敗: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("CA証明書 '%s' に有効なPEM証明書がありません", caCertPath)
	}

	client := awshttp.NewBuildableClient().WithTransportOptions(func(tr *http.Transport) {
		if tr.TLSClientConfig == nil {
			tr.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		tr.TLSClientConfig.RootCAs = pool
	})
	return client, nil
}

// Package logging はデバッグ用の構造化ロガーを提供する
package logging

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// New は指定した出力先に書き込むlogr.Loggerを作成する
// verbosity が 0 の場合は Info(V(0)) のみ、1 以上で V(1) 以降のデバッグ出力も行う
func New(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{
		LogTimestamp: true,
		Verbosity:    verbosity,
	}).WithName("cloudfrontInvalidate")
}

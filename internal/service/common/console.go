package common

import (
	"fmt"
	"io"

	"github.com/mitchellh/colorstring"
)

// ConsolePrefix はプラグインが出力する行の接頭辞
const ConsolePrefix = "CloudfrontInvalidate"

// Console はホストのコンソールログチャネルに相当する出力先
type Console struct {
	w         io.Writer
	colorizer colorstring.Colorize
}

// NewConsole は出力先とカラー出力の有無を指定してConsoleを作成する
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{
		w: w,
		colorizer: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !color,
			Reset:   true,
		},
	}
}

// Log は1行出力する
func (c *Console) Log(msg string) {
	fmt.Fprintln(c.w, msg)
}

// Logf はフォーマットして1行出力する
func (c *Console) Logf(format string, args ...any) {
	fmt.Fprintf(c.w, format+"\n", args...)
}

// Plugin はプラグイン接頭辞付きで強調表示した状態メッセージを出力する
func (c *Console) Plugin(status string) {
	c.Logf("%s: %s", ConsolePrefix, c.Yellow(status))
}

// Yellow は値を黄色で強調した文字列を返す
func (c *Console) Yellow(s string) string {
	return c.colorizer.Color("[yellow]" + s)
}

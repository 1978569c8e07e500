package common

import (
	"fmt"
	"io"
)

// ListOutput はリスト表示の共通構造体
type ListOutput struct {
	Title        string   // 例: "スタック出力一覧"
	Items        []string // 表示するアイテムのリスト
	ResourceName string   // 例: "出力"
}

// PrintNumberedList は番号付きリストを表示
func PrintNumberedList(w io.Writer, output ListOutput) {
	// タイトル表示（件数付き）
	fmt.Fprintf(w, "%s: (全%d件)\n", output.Title, len(output.Items))

	// アイテムがない場合
	if len(output.Items) == 0 {
		fmt.Fprintf(w, "%sが見つかりませんでした\n", output.ResourceName)
		return
	}

	for i, item := range output.Items {
		fmt.Fprintf(w, "  %3d. %s\n", i+1, item)
	}
}


package common

import "fmt"

// ListOutput はリスト表示の共通構造体
type ListOutput struct {
	Title        string   // 例: "ディストリビューション一覧"
	Items        []string // 表示するアイテムのリスト
	ResourceName string   // 例: "ディストリビューション", "バケット"
	ShowCount    bool     // 合計数を表示するか
}

// PrintSimpleList はシンプルな箇条書きリストを表示します
func PrintSimpleList(output ListOutput) {
	fmt.Printf("%s:\n", output.Title)

	if len(output.Items) == 0 {
		fmt.Printf("該当する%sはありませんでした\n", output.ResourceName)
		return
	}

	for _, item := range output.Items {
		fmt.Printf("  - %s\n", item)
	}

	if output.ShowCount {
		fmt.Printf("\n合計: %d個の%s\n", len(output.Items), output.ResourceName)
	}
}

// PrintNumberedList は番号付きリストを表示します
func PrintNumberedList(output ListOutput) {
	fmt.Printf("%s: (全%d件)\n", output.Title, len(output.Items))

	if len(output.Items) == 0 {
		fmt.Printf("%sが見つかりませんでした\n", output.ResourceName)
		return
	}

	for i, item := range output.Items {
		fmt.Printf("  %3d. %s\n", i+1, item)
	}
}

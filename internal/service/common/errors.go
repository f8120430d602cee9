package common

import "fmt"

// メッセージの絵文字定数
const (
	ErrorIcon   = "❌"
	SuccessIcon = "✅"
	WarningIcon = "⚠️"
	SearchIcon  = "🔍"
	ProcessIcon = "🚀"
	WaitIcon    = "⏳"
)

// FormatListError は一覧取得エラーを統一フォーマットで返します
func FormatListError(resourceName string, err error) error {
	return fmt.Errorf("%s %s一覧の取得に失敗: %w", ErrorIcon, resourceName, err)
}

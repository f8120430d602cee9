package common

import (
	"strings"

	"github.com/gobwas/glob"
)

// MatchKeyPattern はS3オブジェクトキーのパターンマッチングを行います。
// ワイルドカードを含む場合はglob形式（`/`区切り、`**`対応）でマッチング、
// 含まない場合は部分一致で判定します
func MatchKeyPattern(key, pattern string) bool {
	if pattern == "" {
		return true
	}
	if strings.ContainsAny(pattern, "*?[") {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return false
		}
		return g.Match(key)
	}
	return strings.Contains(key, pattern)
}

package common

import (
	"strings"

	"github.com/gobwas/glob"
)

// MatchesFilter はオブジェクト名のパターンマッチングを行う
// ワイルドカード（* ? [）を含む場合はglob形式でマッチング、
// 含まない場合は部分一致（大文字小文字を区別）で判定する
func MatchesFilter(name, pattern string) bool {
	if strings.ContainsAny(pattern, "*?[") {
		g, err := glob.Compile(pattern)
		if err != nil {
			return false
		}
		return g.Match(name)
	}
	return strings.Contains(name, pattern)
}

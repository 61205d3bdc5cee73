package common

// ListOutput はリスト表示の共通構造体
type ListOutput struct {
	Title        string   // 例: "オブジェクト一覧"
	Items        []string // 表示するアイテムのリスト
	ResourceName string   // 例: "オブジェクト", "ファイル"
	ShowCount    bool     // 合計数を表示するか
}

// TableColumn はテーブルの列定義
type TableColumn struct {
	Header string
}

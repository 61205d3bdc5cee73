package cmd

import (
	"github.com/schollz/progressbar/v3"

	s3svc "s3cli/internal/service/s3"
)

// newDownloadProgress はダウンロード進捗をプログレスバーで表示するProgressFuncを返す
// 合計サイズは初回コールバック時に確定する
func newDownloadProgress(name string) s3svc.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(transferred, total int64) {
		if bar == nil {
			bar = progressbar.NewOptions64(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(true),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription(name),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "=",
					SaucerHead:    ">",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionShowElapsedTimeOnFinish(),
			)
		}
		_ = bar.Set64(transferred)
	}
}

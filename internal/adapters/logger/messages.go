// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Startup and shutdown
		"%d images in %s":                                             "%[2]s に %[1]d 枚の画像",
		"Cannot open window: %v":                                      "ウィンドウを開けません: %v",
		"Cannot read %s: %v":                                          "%s を読み込めません: %v",
		"Viewer stopped: %v":                                          "ビューアが停止しました: %v",
		"Exiting after %d frames":                                     "%d フレーム後に終了します",
		"Using the %s backend":                                        "%s バックエンドを使用します",
		"Frame loop stopped after %d frames":                          "%d フレーム後にフレームループが停止しました",
		"Quit requested":                                              "終了が要求されました",
		"%d textures still live at close":                             "終了時に %d 個のテクスチャが残っています",
		"Decoding with libvips, falling back to the standard library": "libvips でデコードし、失敗時は標準ライブラリを使用します",

		// Gallery
		"%d images found in %s":          "%[2]s で %[1]d 枚の画像が見つかりました",
		"%s (index %d): loading...":      "%s (インデックス %d): 読み込み中...",
		"%s (index %d): loaded %d x %d":  "%s (インデックス %d): %d x %d で読み込みました",
		"Unloading %s, index %d":         "%s (インデックス %d) を解放します",
		"No preview for %s: %v":          "%s のプレビューがありません: %v",
		"%d previews loaded, %d missing": "プレビュー %d 枚を読み込み、%d 枚が欠落",
		"%s: using embedded thumbnail":   "%s: 埋め込みサムネイルを使用します",

		// Input
		"Key: %s":                             "キー: %s",
		"Resize to %d x %d (current %d x %d)": "%d x %d にリサイズ (現在 %d x %d)",
		"Cannot load %s: %v":                  "%s を読み込めません: %v",
	})
}

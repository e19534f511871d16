package model

import (
	"io"

	"github.com/YuminosukeSato/statgo/dataset"
)

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit は構築時に渡されたデータでモデルを推定する
	Fit() error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力テーブルに対する予測値を返す
	Predict(x *dataset.Table) ([]float64, error)
}

// Summarizer は推定結果の要約テーブルを出力できるモデルのインターフェース
type Summarizer interface {
	// WriteSummary は人間が読める要約テーブルをwに書き込む
	WriteSummary(w io.Writer) error
}

package model

import "github.com/YuminosukeSato/statgo/dataset"

// Transformer はデータ変換のインターフェース
type Transformer interface {
	// Fit は変換に必要なパラメータを学習する
	Fit(t *dataset.Table) error

	// Transform はテーブルを変換する
	Transform(t *dataset.Table) (*dataset.Table, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(t *dataset.Table) (*dataset.Table, error)
}

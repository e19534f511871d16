package preprocessing

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/statgo/core/model"
	"github.com/YuminosukeSato/statgo/dataset"
	"github.com/YuminosukeSato/statgo/pkg/errors"
)

// StandardScaler はテーブルの各列を平均0、標準偏差1に変換する。
// 推定器はスケーリングを暗黙には行わないため、最適化の条件数を
// 整えたい場合に呼び出し側が明示的に適用する。
type StandardScaler struct {
	model.StateManager

	// Mean は各列の平均値
	Mean []float64

	// Scale は各列の標準偏差
	Scale []float64

	// Names は学習時の列名。Transformは同じ名前・同じ順序の
	// テーブルだけを受け付ける
	Names []string

	// WithMean は平均を引くかどうか (デフォルト: true)
	WithMean bool

	// WithStd は標準偏差で割るかどうか (デフォルト: true)
	WithStd bool
}

var _ model.Transformer = (*StandardScaler)(nil)

// NewStandardScaler は新しいStandardScalerを作成する
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler(true, true)
//	err := scaler.Fit(tab)
//	scaled, err := scaler.Transform(tab)
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		WithMean: withMean,
		WithStd:  withStd,
	}
}

// NewStandardScalerDefault はデフォルト設定でStandardScalerを作成する
func NewStandardScalerDefault() *StandardScaler {
	return NewStandardScaler(true, true)
}

// Fit は各列の平均と標準偏差を計算する
func (s *StandardScaler) Fit(t *dataset.Table) error {
	if t == nil || t.Len() == 0 || t.Width() == 0 {
		return errors.Wrap(errors.ErrEmptyData, "StandardScaler.Fit")
	}

	cols := t.Columns()
	s.Names = t.Names()
	s.Mean = make([]float64, len(cols))
	s.Scale = make([]float64, len(cols))
	n := float64(t.Len())

	for j, col := range cols {
		if s.WithMean {
			sum := 0.0
			for _, v := range col.Values {
				sum += v
			}
			s.Mean[j] = sum / n
		}

		if s.WithStd {
			sumSquares := 0.0
			for _, v := range col.Values {
				diff := v - s.Mean[j]
				sumSquares += diff * diff
			}
			s.Scale[j] = math.Sqrt(sumSquares / n)

			// 定数列はスケール1のまま通す（ゼロ除算を避ける）
			if s.Scale[j] < 1e-8 {
				s.Scale[j] = 1.0
			}
		} else {
			s.Scale[j] = 1.0
		}
	}

	s.SetFitted()
	s.SetDimensions(t.Len(), t.Width())
	return nil
}

// Transform は学習済みの統計量でテーブルを標準化する。
// 列名と順序が学習時と一致しないテーブルはエラーになる
func (s *StandardScaler) Transform(t *dataset.Table) (*dataset.Table, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}
	if err := s.checkLayout("StandardScaler.Transform", t); err != nil {
		return nil, err
	}

	out := dataset.NewTable()
	for j, col := range t.Columns() {
		scaled := make([]float64, len(col.Values))
		for i, v := range col.Values {
			scaled[i] = (v - s.Mean[j]) / s.Scale[j]
		}
		if err := out.Add(col.Name, scaled); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FitTransform は学習と変換を同時に実行する
func (s *StandardScaler) FitTransform(t *dataset.Table) (*dataset.Table, error) {
	if err := s.Fit(t); err != nil {
		return nil, err
	}
	return s.Transform(t)
}

// InverseTransform は標準化されたテーブルを元のスケールに戻す
func (s *StandardScaler) InverseTransform(t *dataset.Table) (*dataset.Table, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "InverseTransform")
	}
	if err := s.checkLayout("StandardScaler.InverseTransform", t); err != nil {
		return nil, err
	}

	out := dataset.NewTable()
	for j, col := range t.Columns() {
		restored := make([]float64, len(col.Values))
		for i, v := range col.Values {
			restored[i] = v*s.Scale[j] + s.Mean[j]
		}
		if err := out.Add(col.Name, restored); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *StandardScaler) checkLayout(op string, t *dataset.Table) error {
	if t == nil {
		return errors.NewValueError(op, "table is nil")
	}
	if t.Width() != len(s.Names) {
		return errors.NewDimensionError(op, len(s.Names), t.Width(), 1)
	}
	for j, name := range t.Names() {
		if name != s.Names[j] {
			return errors.NewValueError(op, fmt.Sprintf("column %d is %q, want %q", j, name, s.Names[j]))
		}
	}
	return nil
}

// GetParams はスケーラーのパラメータを取得する
func (s *StandardScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"with_mean": s.WithMean,
		"with_std":  s.WithStd,
	}
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t)", s.WithMean, s.WithStd)
	}
	return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t, n_columns=%d)",
		s.WithMean, s.WithStd, len(s.Names))
}

// MinMaxScaler はテーブルの各列を指定した範囲（デフォルト[0,1]）に
// スケーリングする
type MinMaxScaler struct {
	model.StateManager

	// DataMin は学習データの各列の最小値
	DataMin []float64

	// DataMax は学習データの各列の最大値
	DataMax []float64

	// Names は学習時の列名
	Names []string

	// FeatureRange はスケーリング後の範囲 [min, max]
	FeatureRange [2]float64
}

var _ model.Transformer = (*MinMaxScaler)(nil)

// NewMinMaxScaler は新しいMinMaxScalerを作成する
func NewMinMaxScaler(featureRange [2]float64) *MinMaxScaler {
	return &MinMaxScaler{FeatureRange: featureRange}
}

// NewMinMaxScalerDefault は範囲[0,1]でMinMaxScalerを作成する
func NewMinMaxScalerDefault() *MinMaxScaler {
	return NewMinMaxScaler([2]float64{0.0, 1.0})
}

// Fit は各列の最小値と最大値を計算する
func (m *MinMaxScaler) Fit(t *dataset.Table) error {
	if t == nil || t.Len() == 0 || t.Width() == 0 {
		return errors.Wrap(errors.ErrEmptyData, "MinMaxScaler.Fit")
	}
	if m.FeatureRange[0] >= m.FeatureRange[1] {
		return errors.NewValueError("MinMaxScaler.Fit",
			fmt.Sprintf("feature range [%g, %g] is not increasing", m.FeatureRange[0], m.FeatureRange[1]))
	}

	cols := t.Columns()
	m.Names = t.Names()
	m.DataMin = make([]float64, len(cols))
	m.DataMax = make([]float64, len(cols))

	for j, col := range cols {
		lo, hi := col.Values[0], col.Values[0]
		for _, v := range col.Values[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		m.DataMin[j] = lo
		m.DataMax[j] = hi
	}

	m.SetFitted()
	m.SetDimensions(t.Len(), t.Width())
	return nil
}

// Transform は学習済みの最小値・最大値でテーブルをスケーリングする。
// 定数列は範囲の下限に写す
func (m *MinMaxScaler) Transform(t *dataset.Table) (*dataset.Table, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "Transform")
	}
	if err := m.checkLayout("MinMaxScaler.Transform", t); err != nil {
		return nil, err
	}

	span := m.FeatureRange[1] - m.FeatureRange[0]
	out := dataset.NewTable()
	for j, col := range t.Columns() {
		scaled := make([]float64, len(col.Values))
		dataSpan := m.DataMax[j] - m.DataMin[j]
		for i, v := range col.Values {
			if dataSpan == 0 {
				scaled[i] = m.FeatureRange[0]
				continue
			}
			scaled[i] = m.FeatureRange[0] + (v-m.DataMin[j])/dataSpan*span
		}
		if err := out.Add(col.Name, scaled); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FitTransform は学習と変換を同時に実行する
func (m *MinMaxScaler) FitTransform(t *dataset.Table) (*dataset.Table, error) {
	if err := m.Fit(t); err != nil {
		return nil, err
	}
	return m.Transform(t)
}

// InverseTransform はスケーリングされたテーブルを元のスケールに戻す。
// 定数列は学習時の値に戻る
func (m *MinMaxScaler) InverseTransform(t *dataset.Table) (*dataset.Table, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "InverseTransform")
	}
	if err := m.checkLayout("MinMaxScaler.InverseTransform", t); err != nil {
		return nil, err
	}

	span := m.FeatureRange[1] - m.FeatureRange[0]
	out := dataset.NewTable()
	for j, col := range t.Columns() {
		restored := make([]float64, len(col.Values))
		dataSpan := m.DataMax[j] - m.DataMin[j]
		for i, v := range col.Values {
			if dataSpan == 0 {
				restored[i] = m.DataMin[j]
				continue
			}
			restored[i] = m.DataMin[j] + (v-m.FeatureRange[0])/span*dataSpan
		}
		if err := out.Add(col.Name, restored); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (m *MinMaxScaler) checkLayout(op string, t *dataset.Table) error {
	if t == nil {
		return errors.NewValueError(op, "table is nil")
	}
	if t.Width() != len(m.Names) {
		return errors.NewDimensionError(op, len(m.Names), t.Width(), 1)
	}
	for j, name := range t.Names() {
		if name != m.Names[j] {
			return errors.NewValueError(op, fmt.Sprintf("column %d is %q, want %q", j, name, m.Names[j]))
		}
	}
	return nil
}

// GetParams はスケーラーのパラメータを取得する
func (m *MinMaxScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"feature_range": m.FeatureRange,
	}
}

// String はスケーラーの文字列表現を返す
func (m *MinMaxScaler) String() string {
	if !m.IsFitted() {
		return fmt.Sprintf("MinMaxScaler(feature_range=[%g, %g])", m.FeatureRange[0], m.FeatureRange[1])
	}
	return fmt.Sprintf("MinMaxScaler(feature_range=[%g, %g], n_columns=%d)",
		m.FeatureRange[0], m.FeatureRange[1], len(m.Names))
}

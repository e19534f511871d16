package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	推定処理特有のエラー型
//
// ===========================================================================

// SingularMatrixError は正規方程式のクロス積行列 XᵀX が逆行列を持たない場合のエラーです。
// 完全な多重共線性（列の重複、定数列と切片の併用など）が典型的な原因です。
type SingularMatrixError struct {
	Op   string
	Rows int
	Cols int
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("statgo: %s: design matrix cross-product is singular (%dx%d matrix with %d columns). Check for perfectly collinear regressors", e.Op, e.Rows, e.Cols, e.Cols)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *SingularMatrixError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("rows", e.Rows).
		Int("cols", e.Cols).
		Str("type", "SingularMatrixError")
}

// NewSingularMatrixError は新しいSingularMatrixErrorを作成し、スタックトレースを付与します。
func NewSingularMatrixError(op string, rows, cols int) error {
	err := &SingularMatrixError{Op: op, Rows: rows, Cols: cols}
	return errors.WithStack(err)
}

// InsufficientDataError は観測数がパラメータ数に対して少なすぎ、
// 残差自由度 n - k が正にならない場合のエラーです。
type InsufficientDataError struct {
	Op           string
	Observations int
	Parameters   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("statgo: %s: insufficient data: %d observations with %d parameters leaves %d residual degrees of freedom", e.Op, e.Observations, e.Parameters, e.Observations-e.Parameters)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InsufficientDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("observations", e.Observations).
		Int("parameters", e.Parameters).
		Str("type", "InsufficientDataError")
}

// NewInsufficientDataError は新しいInsufficientDataErrorを作成し、スタックトレースを付与します。
func NewInsufficientDataError(op string, observations, parameters int) error {
	err := &InsufficientDataError{Op: op, Observations: observations, Parameters: parameters}
	return errors.WithStack(err)
}

// NumericDomainError は入力が推定問題を数学的に未定義にする場合のエラーです。
// 例えば、応答変数に分散が全くない場合や、確率が単位区間の外にある場合など。
type NumericDomainError struct {
	Op     string
	Reason string
}

func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("statgo: %s: %s", e.Op, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NumericDomainError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "NumericDomainError")
}

// NewNumericDomainError は新しいNumericDomainErrorを作成し、スタックトレースを付与します。
func NewNumericDomainError(op, reason string) error {
	err := &NumericDomainError{Op: op, Reason: reason}
	return errors.WithStack(err)
}

// OptimizationFailedError は数値最適化が使用可能な解を返さなかった場合のエラーです。
// 非収束とは異なり、最適化器の結果が非有限（NaN/Inf）あるいは空で、推定を続行できません。
type OptimizationFailedError struct {
	Algorithm  string
	Iterations int
	Reason     string
}

func (e *OptimizationFailedError) Error() string {
	return fmt.Sprintf("statgo: optimization with %s failed after %d iterations: %s", e.Algorithm, e.Iterations, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *OptimizationFailedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("algorithm", e.Algorithm).
		Int("iterations", e.Iterations).
		Str("reason", e.Reason).
		Str("type", "OptimizationFailedError")
}

// NewOptimizationFailedError は新しいOptimizationFailedErrorを作成し、スタックトレースを付与します。
func NewOptimizationFailedError(algorithm string, iterations int, reason string) error {
	err := &OptimizationFailedError{Algorithm: algorithm, Iterations: iterations, Reason: reason}
	return errors.WithStack(err)
}

// ShapeMismatchError は整列済みであるべき系列群の長さが一致しない場合のエラーです。
// 結果の組み立て時に係数・標準誤差・統計量・p値の長さが変数名と揃わない場合に発生します。
type ShapeMismatchError struct {
	Op       string
	Field    string
	Expected int
	Got      int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("statgo: %s: shape mismatch: %s has length %d, want %d", e.Op, e.Field, e.Got, e.Expected)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ShapeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("field", e.Field).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "ShapeMismatchError")
}

// NewShapeMismatchError は新しいShapeMismatchErrorを作成し、スタックトレースを付与します。
func NewShapeMismatchError(op, field string, expected, got int) error {
	err := &ShapeMismatchError{Op: op, Field: field, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// Package metrics は回帰・分類モデルの予測精度を測る評価指標を提供します。
//
// すべての関数は観測値と予測値のスライスを受け取り、値とエラーのペアを
// 返します。長さの不一致や空入力は計算前に検出され、型付きエラーに
// なります。
package metrics

import (
	"math"

	"github.com/YuminosukeSato/statgo/pkg/errors"
)

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred []float64) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty slice")
	}

	if len(yPred) != n {
		return 0, errors.NewDimensionError("MSE", n, len(yPred), 0)
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred []float64) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("MAE", "empty slice")
	}

	if len(yPred) != n {
		return 0, errors.NewDimensionError("MAE", n, len(yPred), 0)
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue[i] - yPred[i])
	}

	return sum / float64(n), nil
}

// R2Score は決定係数（R²）を計算する
func R2Score(yTrue, yPred []float64) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("R2Score", "empty slice")
	}

	if len(yPred) != n {
		return 0, errors.NewDimensionError("R2Score", n, len(yPred), 0)
	}

	// yTrueの平均を計算
	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue[i]
	}
	yMean /= float64(n)

	// 全変動（TSS）と残差変動（RSS）を計算
	var tss, rss float64
	for i := 0; i < n; i++ {
		tss += (yTrue[i] - yMean) * (yTrue[i] - yMean)
		rss += (yTrue[i] - yPred[i]) * (yTrue[i] - yPred[i])
	}

	// 全変動が0の場合（すべてのyTrueが同じ値）
	if tss == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}

	// R² = 1 - RSS/TSS
	return 1 - rss/tss, nil
}

// MAPE は平均絶対パーセンテージ誤差（Mean Absolute Percentage Error）を計算する
func MAPE(yTrue, yPred []float64) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("MAPE", "empty slice")
	}

	if len(yPred) != n {
		return 0, errors.NewDimensionError("MAPE", n, len(yPred), 0)
	}

	// MAPE = (100/n) * Σ|yTrue - yPred|/|yTrue|
	var sum float64
	validCount := 0

	for i := 0; i < n; i++ {
		if yTrue[i] != 0 { // ゼロ除算を避ける
			sum += math.Abs(yTrue[i]-yPred[i]) / math.Abs(yTrue[i])
			validCount++
		}
	}

	if validCount == 0 {
		return 0, errors.Newf("MAPE: all yTrue values are zero")
	}

	return (sum / float64(validCount)) * 100, nil
}

// ExplainedVarianceScore は説明分散スコアを計算する
func ExplainedVarianceScore(yTrue, yPred []float64) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("ExplainedVarianceScore", "empty slice")
	}

	if len(yPred) != n {
		return 0, errors.NewDimensionError("ExplainedVarianceScore", n, len(yPred), 0)
	}

	// 平均を計算
	var yTrueMean, diffMean float64
	for i := 0; i < n; i++ {
		yTrueMean += yTrue[i]
		diffMean += yTrue[i] - yPred[i]
	}
	yTrueMean /= float64(n)
	diffMean /= float64(n)

	// 分散を計算
	var varYTrue, varDiff float64
	for i := 0; i < n; i++ {
		diff := yTrue[i] - yPred[i]
		varYTrue += (yTrue[i] - yTrueMean) * (yTrue[i] - yTrueMean)
		varDiff += (diff - diffMean) * (diff - diffMean)
	}
	varYTrue /= float64(n)
	varDiff /= float64(n)

	if varYTrue == 0 {
		return 0, errors.Newf("ExplainedVarianceScore: no variance in yTrue")
	}

	return 1 - varDiff/varYTrue, nil
}

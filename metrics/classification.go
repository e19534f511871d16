package metrics

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/statgo/pkg/errors"
)

// Accuracy は予測確率をしきい値で0/1に丸め、正解率を計算する。
// yTrueは0と1のみを含む必要があり、thresholdは(0, 1)の範囲で指定する。
func Accuracy(yTrue, yPred []float64, threshold float64) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty slice")
	}

	if len(yPred) != n {
		return 0, errors.NewDimensionError("Accuracy", n, len(yPred), 0)
	}

	if threshold <= 0 || threshold >= 1 {
		return 0, errors.NewValueError("Accuracy", fmt.Sprintf("threshold must lie strictly between 0 and 1, got %g", threshold))
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue[i] != 0 && yTrue[i] != 1 {
			return 0, errors.NewValueError("Accuracy", fmt.Sprintf("binary labels must contain only 0 and 1 values, found %g at row %d", yTrue[i], i))
		}
		label := 0.0
		if yPred[i] >= threshold {
			label = 1.0
		}
		if label == yTrue[i] {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// LogLoss は二値分類の対数損失（負の平均対数尤度）を計算する。
// 予測確率は[0, 1]に収まっている必要がある。端点の0と1はStabilizeLogが
// クランプするため損失は常に有限になる。
func LogLoss(yTrue, yPred []float64) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("LogLoss", "empty slice")
	}

	if len(yPred) != n {
		return 0, errors.NewDimensionError("LogLoss", n, len(yPred), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		if yTrue[i] != 0 && yTrue[i] != 1 {
			return 0, errors.NewValueError("LogLoss", fmt.Sprintf("binary labels must contain only 0 and 1 values, found %g at row %d", yTrue[i], i))
		}
		p := yPred[i]
		if p < 0 || p > 1 || math.IsNaN(p) {
			return 0, errors.NewNumericDomainError("LogLoss", fmt.Sprintf("predicted probability %g at row %d lies outside [0, 1]", p, i))
		}
		sum -= yTrue[i]*errors.StabilizeLog(p) + (1-yTrue[i])*errors.StabilizeLog(1-p)
	}

	return sum / float64(n), nil
}

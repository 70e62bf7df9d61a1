package eval

import (
	"fmt"
	"math"
	"strings"
)

const bannerWidth = 100

// Report renders the run outcome as the text artifact of the run.
// The trailing reference points at the decision region chart.
func Report(r Result, chartPath string) string {
	banner := strings.Repeat("=", bannerWidth)

	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("Digit classification algorithm comparison results\n")
	b.WriteString(banner + "\n\n")

	fmt.Fprintf(&b, "Date and time: %s\n", r.Time.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Run id: %s\n\n", r.ID)

	b.WriteString("Dataset:\n")
	fmt.Fprintf(&b, "  - total samples: %d\n", r.Samples)
	fmt.Fprintf(&b, "  - training set: %d samples\n", r.Train)
	fmt.Fprintf(&b, "  - test set: %d samples\n", r.Test)
	fmt.Fprintf(&b, "  - classes: %d\n", r.Classes)
	fmt.Fprintf(&b, "  - features after PCA: %d\n\n", r.Components)

	b.WriteString("Model results:\n")
	b.WriteString("  1. Softmax regression (supervised):\n")
	fmt.Fprintf(&b, "     accuracy: %.4f (%.2f%%)\n\n", r.Classifier, r.Classifier*100)
	b.WriteString("  2. K-means (unsupervised):\n")
	fmt.Fprintf(&b, "     accuracy: %.4f (%.2f%%)\n\n", r.Clusterer, r.Clusterer*100)

	b.WriteString("Conclusions:\n")
	diff := r.Classifier - r.Clusterer
	fmt.Fprintf(&b, "  - accuracy difference: %.4f (%.2f%%)\n", math.Abs(diff), math.Abs(diff)*100)
	if diff > 0 {
		fmt.Fprintf(&b, "  - softmax regression scored higher by %.2f%%\n", diff*100)
	} else {
		fmt.Fprintf(&b, "  - k-means scored higher by %.2f%%\n", math.Abs(diff)*100)
	}

	fmt.Fprintf(&b, "\nCharts saved to: %s\n", chartPath)
	return b.String()
}

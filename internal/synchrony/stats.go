package synchrony

// Stats summarizes a downsampled synchrony series after transient discard.
// A small Lambda with nonzero Chi and Phi strictly between 0 and 1 is the
// signature of a metastable chimera state.
type Stats struct {
	// Lambda (metastability): mean over communities of the temporal
	// variance of that community's synchrony series.
	Lambda float64 `json:"metastability"`

	// Chi (chimera index): mean over time of the cross-community variance
	// of synchrony at each instant.
	Chi float64 `json:"chimera_index"`

	// Phi: grand mean of all retained synchrony values.
	Phi float64 `json:"mean_synchrony"`
}

// Compute derives run statistics from a downsampled series, skipping the
// first discard rows as transient. Degenerate inputs (nothing retained,
// or a single community) yield zero for the affected statistics rather
// than an error; interpretation is the caller's concern.
func Compute(series [][]float64, discard int) Stats {
	if discard > len(series) {
		discard = len(series)
	}
	retained := series[discard:]
	if len(retained) == 0 || len(retained[0]) == 0 {
		return Stats{}
	}

	nt := len(retained)
	nc := len(retained[0])

	var grand float64
	lambda := 0.0
	for c := 0; c < nc; c++ {
		var sum, sumSq float64
		for t := 0; t < nt; t++ {
			v := retained[t][c]
			sum += v
			sumSq += v * v
			grand += v
		}
		mean := sum / float64(nt)
		lambda += sumSq/float64(nt) - mean*mean
	}
	lambda /= float64(nc)

	chi := 0.0
	for t := 0; t < nt; t++ {
		var sum, sumSq float64
		for c := 0; c < nc; c++ {
			v := retained[t][c]
			sum += v
			sumSq += v * v
		}
		mean := sum / float64(nc)
		chi += sumSq/float64(nc) - mean*mean
	}
	chi /= float64(nt)

	return Stats{
		Lambda: lambda,
		Chi:    chi,
		Phi:    grand / float64(nt*nc),
	}
}

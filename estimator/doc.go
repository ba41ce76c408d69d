// Package estimator computes, for every organism in a sample, the share of
// the sample's total rRNA gene signal it could plausibly account for.
//
// rRNA copy number per genome is only known as a small set of candidate
// values. Each organism's share is therefore reported as a distribution: for
// every candidate copy number d of the organism O, and for each of three
// assumptions about the rest of the community (every other organism held at
// its minimum, maximum or modal copy number), the fraction
//
//	own(O, d) / (background_S(O) + own(O, d))
//
// where own(O, d) = genes(O) / d and background_S(O) is the sum over every
// other organism I of genes(I) / ref_S(I).
//
// Estimate is a pure function of an immutable sample.Sample. Organisms whose
// largest fraction falls below the cutoff are left out of the Result.
package estimator

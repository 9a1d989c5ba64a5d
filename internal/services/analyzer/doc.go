/*
Package analyzer turns a transaction into a risk analysis: an additive score,
a banded assessment with a recommended action, an ordered factor list, a
narrative rationale and a four-section agent sub-report.

Scoring starts from a base of 50 and adds randomized contributions for the
risk indicator, the country tier, the amount relative to the per-type
threshold, and the customer profile, then clamps to [5, 95]. The shape of the
output is deterministic; the values are not — analyzing the same transaction
twice may produce different scores. That is intentional: the randomness stands
in for the judgment of an agent pipeline this demo does not run.
*/
package analyzer

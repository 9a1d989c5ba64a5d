/*
Package generator produces self-consistent synthetic transactions.

Every attribute of a generated transaction is correlated with its risk level:
the country is drawn from a tier distribution conditioned on risk, the amount
from a (type, risk)-specific range, the status and customer risk profile from
risk-skewed weights, and the description text carries an optional risk-flavor
fragment for high-risk records.

Usage:

	svc := generator.NewService(random.NewSource())

	// One transaction, optionally constrained
	tx, err := svc.Generate(generator.Options{RiskLevel: models.RiskHigh})

	// A batch with a fixed high-risk fraction, newest first
	txs, err := svc.GenerateBatch(20, 0.3)

Explicit Options values outside the known vocabularies are rejected with
DomainErrors rather than silently replaced.
*/
package generator
